package game

import "math"

// Stats are cumulative results across games.
type Stats struct {
	GamesPlayed       int         `json:"gamesPlayed"`
	GamesWon          int         `json:"gamesWon"`
	CurrentStreak     int         `json:"currentStreak"`
	MaxStreak         int         `json:"maxStreak"`
	GuessDistribution map[int]int `json:"guessDistribution"`
}

// Record returns s updated with one finished game. s is not modified.
// A win bumps the streak and the attemptsUsed bucket; a loss resets the streak.
func (s Stats) Record(won bool, attemptsUsed int) Stats {
	out := s.clone()
	out.GamesPlayed++
	if won {
		out.GamesWon++
		out.CurrentStreak++
		if out.CurrentStreak > out.MaxStreak {
			out.MaxStreak = out.CurrentStreak
		}
		out.GuessDistribution[attemptsUsed]++
	} else {
		out.CurrentStreak = 0
	}
	return out
}

// WinRate returns the rounded win percentage, 0 when no games were played.
func (s Stats) WinRate() int {
	if s.GamesPlayed == 0 {
		return 0
	}
	return int(math.Round(float64(s.GamesWon) / float64(s.GamesPlayed) * 100))
}

// StatsSaver persists Stats after each recorded game.
type StatsSaver interface {
	SaveStats(Stats) error
}

// StatsTracker applies finished games to a Stats value and hands the result
// to an optional saver.
type StatsTracker struct {
	stats Stats
	saver StatsSaver
}

// NewStatsTracker starts from initial. saver may be nil.
func NewStatsTracker(initial Stats, saver StatsSaver) *StatsTracker {
	return &StatsTracker{stats: initial.clone(), saver: saver}
}

// RecordResult records one finished game and returns the updated Stats.
// The in-memory value is updated even when the saver fails.
func (t *StatsTracker) RecordResult(won bool, attemptsUsed int) (Stats, error) {
	t.stats = t.stats.Record(won, attemptsUsed)
	snapshot := t.Stats()
	if t.saver != nil {
		if err := t.saver.SaveStats(snapshot); err != nil {
			return snapshot, err
		}
	}
	return snapshot, nil
}

// Stats returns a copy of the current value.
func (t *StatsTracker) Stats() Stats { return t.stats.clone() }

// clone copies s with its own distribution map (never nil).
func (s Stats) clone() Stats {
	out := s
	out.GuessDistribution = make(map[int]int, len(s.GuessDistribution)+1)
	for k, v := range s.GuessDistribution {
		out.GuessDistribution[k] = v
	}
	return out
}
