package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStats_Record(t *testing.T) {
	tests := []struct {
		name     string
		start    Stats
		won      bool
		attempts int
		want     Stats
	}{
		{
			name:     "first win creates the bucket",
			start:    Stats{},
			won:      true,
			attempts: 4,
			want:     Stats{GamesPlayed: 1, GamesWon: 1, CurrentStreak: 1, MaxStreak: 1, GuessDistribution: map[int]int{4: 1}},
		},
		{
			name:     "win extends streak past max",
			start:    Stats{GamesPlayed: 3, GamesWon: 2, CurrentStreak: 2, MaxStreak: 2, GuessDistribution: map[int]int{3: 2}},
			won:      true,
			attempts: 3,
			want:     Stats{GamesPlayed: 4, GamesWon: 3, CurrentStreak: 3, MaxStreak: 3, GuessDistribution: map[int]int{3: 3}},
		},
		{
			name:     "win below max keeps max",
			start:    Stats{GamesPlayed: 9, GamesWon: 6, CurrentStreak: 0, MaxStreak: 5, GuessDistribution: map[int]int{}},
			won:      true,
			attempts: 12,
			want:     Stats{GamesPlayed: 10, GamesWon: 7, CurrentStreak: 1, MaxStreak: 5, GuessDistribution: map[int]int{12: 1}},
		},
		{
			name:     "loss resets streak and leaves distribution",
			start:    Stats{GamesPlayed: 2, GamesWon: 2, CurrentStreak: 2, MaxStreak: 2, GuessDistribution: map[int]int{5: 2}},
			won:      false,
			attempts: 6,
			want:     Stats{GamesPlayed: 3, GamesWon: 2, CurrentStreak: 0, MaxStreak: 2, GuessDistribution: map[int]int{5: 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.start.Record(tt.won, tt.attempts)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStats_RecordDoesNotMutateReceiver(t *testing.T) {
	start := Stats{GuessDistribution: map[int]int{3: 1}}
	_ = start.Record(true, 3)

	assert.Equal(t, 0, start.GamesPlayed)
	assert.Equal(t, map[int]int{3: 1}, start.GuessDistribution)
}

func TestStats_WinRate(t *testing.T) {
	assert.Equal(t, 0, Stats{}.WinRate())
	assert.Equal(t, 67, Stats{GamesPlayed: 3, GamesWon: 2}.WinRate())
	assert.Equal(t, 100, Stats{GamesPlayed: 4, GamesWon: 4}.WinRate())
}

type memorySaver struct {
	saved []Stats
	err   error
}

func (m *memorySaver) SaveStats(s Stats) error {
	m.saved = append(m.saved, s)
	return m.err
}

func TestStatsTracker_RecordResult(t *testing.T) {
	saver := &memorySaver{}
	tr := NewStatsTracker(Stats{GamesPlayed: 1}, saver)

	got, err := tr.RecordResult(true, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, got.GamesPlayed)
	assert.Equal(t, map[int]int{2: 1}, got.GuessDistribution)
	require.Len(t, saver.saved, 1)
	assert.Equal(t, got, saver.saved[0])
	assert.Equal(t, got, tr.Stats())
}

func TestStatsTracker_SaverFailureKeepsValue(t *testing.T) {
	boom := errors.New("disk full")
	tr := NewStatsTracker(Stats{}, &memorySaver{err: boom})

	got, err := tr.RecordResult(false, 6)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, got.GamesPlayed)
	assert.Equal(t, 1, tr.Stats().GamesPlayed)
}

func TestStatsTracker_NilSaver(t *testing.T) {
	tr := NewStatsTracker(Stats{}, nil)
	_, err := tr.RecordResult(true, 1)
	assert.NoError(t, err)
}
