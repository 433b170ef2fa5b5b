package stats

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/robalobadob/wordle/apps/multiboard/internal/game"
)

// Settings are an owner's saved preferences.
type Settings struct {
	HardMode bool `json:"hardMode"`
	Boards   int  `json:"boards"`
}

// DefaultSettings are returned for owners with nothing saved.
func DefaultSettings() Settings { return Settings{Boards: 1} }

// Config returns the game configuration these settings select.
func (s Settings) Config() game.GameConfig {
	return game.GameConfig{BoardCount: s.Boards, HardMode: s.HardMode}
}

// LoadSettings returns owner's settings, or DefaultSettings.
func (s *Store) LoadSettings(ctx context.Context, owner string) (Settings, error) {
	var st Settings
	err := s.db.QueryRowContext(ctx,
		`SELECT hard_mode, boards FROM settings WHERE owner_id=?`, owner,
	).Scan(&st.HardMode, &st.Boards)
	if errors.Is(err, sql.ErrNoRows) {
		return DefaultSettings(), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("load settings: %w", err)
	}
	return st, nil
}

// SaveSettings validates and stores owner's settings.
func (s *Store) SaveSettings(ctx context.Context, owner string, st Settings) error {
	if err := st.Config().Validate(); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO settings (owner_id, hard_mode, boards, updated_at) VALUES (?,?,?,?)
        ON CONFLICT(owner_id) DO UPDATE SET
            hard_mode=excluded.hard_mode,
            boards=excluded.boards,
            updated_at=excluded.updated_at`,
		owner, st.HardMode, st.Boards, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
