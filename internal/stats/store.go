// internal/stats/store.go
//
// SQL persistence for per-owner statistics and finished-game history.
// Responsibilities:
//   - Loading an owner's Stats (zero value when none are stored).
//   - Recording a finished game: stats update + history row in one transaction.
//   - Moving anonymous data to a user account after login/signup.
//
// An owner is a user ID or an anonymous cookie ID.

package stats

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/robalobadob/wordle/apps/multiboard/internal/database"
	"github.com/robalobadob/wordle/apps/multiboard/internal/game"
)

// GameRecord describes one finished game for the history table.
type GameRecord struct {
	ID             string      `json:"id"`
	Boards         int         `json:"boards"`
	HardMode       bool        `json:"hardMode"`
	Won            bool        `json:"won"`
	CompletedCount int         `json:"completedCount"`
	Attempts       int         `json:"attempts"`
	Targets        []game.Word `json:"targets"`
	FinishedAt     time.Time   `json:"finishedAt"`
}

// RecordFromOutcome builds a GameRecord from a terminal outcome.
func RecordFromOutcome(id string, cfg game.GameConfig, out game.SubmitOutcome, targets []game.Word) GameRecord {
	return GameRecord{
		ID:             id,
		Boards:         cfg.BoardCount,
		HardMode:       cfg.HardMode,
		Won:            out.CountsAsWin(),
		CompletedCount: out.CompletedCount,
		Attempts:       out.AttemptsUsed,
		Targets:        targets,
		FinishedAt:     time.Now().UTC(),
	}
}

// Store reads and writes stats, settings and game history.
type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Load returns the stats for owner, or zero Stats if none are stored.
func (s *Store) Load(ctx context.Context, owner string) (game.Stats, error) {
	return loadStats(ctx, s.db, owner)
}

func loadStats(ctx context.Context, q queryer, owner string) (game.Stats, error) {
	st := game.Stats{GuessDistribution: map[int]int{}}
	err := q.QueryRowContext(ctx,
		`SELECT games_played, games_won, current_streak, max_streak FROM stats WHERE owner_id=?`, owner,
	).Scan(&st.GamesPlayed, &st.GamesWon, &st.CurrentStreak, &st.MaxStreak)
	if errors.Is(err, sql.ErrNoRows) {
		return st, nil
	}
	if err != nil {
		return game.Stats{}, fmt.Errorf("load stats: %w", err)
	}

	rows, err := q.QueryContext(ctx,
		`SELECT attempts, count FROM guess_distribution WHERE owner_id=?`, owner)
	if err != nil {
		return game.Stats{}, fmt.Errorf("load distribution: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var attempts, count int
		if err := rows.Scan(&attempts, &count); err != nil {
			return game.Stats{}, fmt.Errorf("scan distribution: %w", err)
		}
		st.GuessDistribution[attempts] = count
	}
	return st, rows.Err()
}

// txSaver writes Stats for one owner inside an open transaction.
type txSaver struct {
	ctx   context.Context
	tx    *sql.Tx
	owner string
}

// SaveStats implements game.StatsSaver.
func (t txSaver) SaveStats(st game.Stats) error {
	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := t.tx.ExecContext(t.ctx, `
        INSERT INTO stats (owner_id, games_played, games_won, current_streak, max_streak, updated_at)
        VALUES (?,?,?,?,?,?)
        ON CONFLICT(owner_id) DO UPDATE SET
            games_played=excluded.games_played,
            games_won=excluded.games_won,
            current_streak=excluded.current_streak,
            max_streak=excluded.max_streak,
            updated_at=excluded.updated_at`,
		t.owner, st.GamesPlayed, st.GamesWon, st.CurrentStreak, st.MaxStreak, now,
	); err != nil {
		return fmt.Errorf("save stats: %w", err)
	}
	for attempts, count := range st.GuessDistribution {
		if _, err := t.tx.ExecContext(t.ctx, `
            INSERT INTO guess_distribution (owner_id, attempts, count) VALUES (?,?,?)
            ON CONFLICT(owner_id, attempts) DO UPDATE SET count=excluded.count`,
			t.owner, attempts, count,
		); err != nil {
			return fmt.Errorf("save distribution: %w", err)
		}
	}
	return nil
}

// RecordGame applies a finished game to owner's stats and appends it to the
// history, both in one transaction. It returns the updated stats.
func (s *Store) RecordGame(ctx context.Context, owner string, rec GameRecord) (game.Stats, error) {
	var updated game.Stats
	err := database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		current, err := loadStats(ctx, tx, owner)
		if err != nil {
			return err
		}
		tracker := game.NewStatsTracker(current, txSaver{ctx: ctx, tx: tx, owner: owner})
		if updated, err = tracker.RecordResult(rec.Won, rec.Attempts); err != nil {
			return err
		}
		return insertGame(ctx, tx, owner, rec)
	})
	if err != nil {
		return game.Stats{}, err
	}
	return updated, nil
}

func insertGame(ctx context.Context, tx *sql.Tx, owner string, rec GameRecord) error {
	targets := make([]string, len(rec.Targets))
	for i, w := range rec.Targets {
		targets[i] = w.String()
	}
	_, err := tx.ExecContext(ctx, `
        INSERT INTO games (id, owner_id, boards, hard_mode, won, completed_count, attempts, targets, finished_at)
        VALUES (?,?,?,?,?,?,?,?,?)`,
		rec.ID, owner, rec.Boards, rec.HardMode, rec.Won, rec.CompletedCount, rec.Attempts,
		strings.Join(targets, ","), rec.FinishedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert game %s: %w", rec.ID, err)
	}
	return nil
}

// RecentGames returns up to limit finished games for owner, newest first.
func (s *Store) RecentGames(ctx context.Context, owner string, limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, boards, hard_mode, won, completed_count, attempts, targets, finished_at
        FROM games WHERE owner_id=?
        ORDER BY finished_at DESC, rowid DESC
        LIMIT ?`, owner, limit)
	if err != nil {
		return nil, fmt.Errorf("query games: %w", err)
	}
	defer rows.Close()

	out := []GameRecord{}
	for rows.Next() {
		var (
			rec      GameRecord
			targets  string
			finished string
		)
		if err := rows.Scan(&rec.ID, &rec.Boards, &rec.HardMode, &rec.Won, &rec.CompletedCount,
			&rec.Attempts, &targets, &finished); err != nil {
			return nil, fmt.Errorf("scan game: %w", err)
		}
		for _, w := range strings.Split(targets, ",") {
			if w != "" {
				rec.Targets = append(rec.Targets, game.Word(w))
			}
		}
		rec.FinishedAt, _ = time.Parse(time.RFC3339, finished)
		out = append(out, rec)
	}
	return out, rows.Err()
}

// ClaimOwner moves anonymous history to a user account. Stats and settings
// move only when the user has none of their own; games always move.
func (s *Store) ClaimOwner(ctx context.Context, anonID, userID string) error {
	if anonID == "" || userID == "" || anonID == userID {
		return nil
	}
	return database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		stmts := []string{
			`UPDATE games SET owner_id=? WHERE owner_id=?`,
			`UPDATE stats SET owner_id=?1 WHERE owner_id=?2
                AND NOT EXISTS (SELECT 1 FROM stats WHERE owner_id=?1)`,
			`UPDATE settings SET owner_id=?1 WHERE owner_id=?2
                AND NOT EXISTS (SELECT 1 FROM settings WHERE owner_id=?1)`,
			`UPDATE OR IGNORE daily_results SET owner_id=? WHERE owner_id=?`,
		}
		for _, q := range stmts {
			if _, err := tx.ExecContext(ctx, q, userID, anonID); err != nil {
				return fmt.Errorf("claim %s: %w", anonID, err)
			}
		}
		return nil
	})
}
