package database

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "nested", "app.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestMigrate_CreatesSchema(t *testing.T) {
	db := openTemp(t)
	require.NoError(t, Migrate(db))

	for _, table := range []string{"users", "stats", "guess_distribution", "settings", "games", "daily_results"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTemp(t)
	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
	assert.NoError(t, db.Ping(), "db stays open after migrating")
}

func TestOpen_ForeignKeysEnabled(t *testing.T) {
	db := openTemp(t)

	var on int
	require.NoError(t, db.QueryRow(`PRAGMA foreign_keys`).Scan(&on))
	assert.Equal(t, 1, on)
}

func TestWithTx(t *testing.T) {
	db := openTemp(t)
	require.NoError(t, Migrate(db))
	ctx := context.Background()

	err := WithTx(ctx, db, func(tx *sql.Tx) error {
		_, err := tx.Exec(`INSERT INTO settings(owner_id, hard_mode, boards, updated_at) VALUES ('a', 1, 2, 'now')`)
		return err
	})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = WithTx(ctx, db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO settings(owner_id, hard_mode, boards, updated_at) VALUES ('b', 0, 1, 'now')`); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM settings`).Scan(&n))
	assert.Equal(t, 1, n, "rolled back insert is not visible")
}
