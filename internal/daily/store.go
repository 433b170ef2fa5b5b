package daily

import (
	"context"
	"database/sql"
	"fmt"
)

// Result is one owner's finished daily game for a date and board count.
type Result struct {
	OwnerID        string `json:"ownerId"`
	Date           string `json:"date"`
	Boards         int    `json:"boards"`
	Attempts       int    `json:"attempts"`
	CompletedCount int    `json:"completedCount"`
	Won            bool   `json:"won"`
	ElapsedMs      int    `json:"elapsedMs"`
}

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// AlreadyPlayed reports whether owner finished the daily game for date and boards.
func (s *Store) AlreadyPlayed(ctx context.Context, owner, date string, boards int) (bool, error) {
	var cnt int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM daily_results WHERE owner_id=? AND date=? AND boards=?`,
		owner, date, boards,
	).Scan(&cnt)
	return cnt > 0, err
}

// InsertResult stores r. A second result for the same owner/date/boards is ignored.
func (s *Store) InsertResult(ctx context.Context, r Result) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT OR IGNORE INTO daily_results
            (owner_id, date, boards, attempts, completed_count, won, elapsed_ms)
        VALUES (?,?,?,?,?,?,?)`,
		r.OwnerID, r.Date, r.Boards, r.Attempts, r.CompletedCount, r.Won, r.ElapsedMs,
	)
	if err != nil {
		return fmt.Errorf("insert daily result: %w", err)
	}
	return nil
}

// LBRow is one leaderboard entry. Username is empty for guests. OwnerID is
// never serialized: for guests it is the anonymous cookie value.
type LBRow struct {
	OwnerID        string `json:"-"`
	Username       string `json:"username,omitempty"`
	Attempts       int    `json:"attempts"`
	CompletedCount int    `json:"completedCount"`
	ElapsedMs      int    `json:"elapsedMs"`
}

// Leaderboard returns the best results for date and boards: most boards
// solved, then fewest attempts, then fastest.
func (s *Store) Leaderboard(ctx context.Context, date string, boards, limit int) ([]LBRow, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT d.owner_id, COALESCE(u.username, ''), d.attempts, d.completed_count, d.elapsed_ms
        FROM daily_results d
        LEFT JOIN users u ON u.id = d.owner_id
        WHERE d.date=? AND d.boards=?
        ORDER BY d.completed_count DESC, d.attempts ASC, d.elapsed_ms ASC, d.created_at ASC
        LIMIT ?`, date, boards, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query leaderboard: %w", err)
	}
	defer rows.Close()

	out := make([]LBRow, 0, limit)
	for rows.Next() {
		var r LBRow
		if err := rows.Scan(&r.OwnerID, &r.Username, &r.Attempts, &r.CompletedCount, &r.ElapsedMs); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
