package daily

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/multiboard/internal/database"
)

var day = time.Date(2026, 3, 14, 23, 30, 0, 0, time.FixedZone("X", -5*3600))

func TestDateKey(t *testing.T) {
	assert.Equal(t, "2026-03-15", DateKey(day), "keyed in UTC")
}

func TestWordIndex_Deterministic(t *testing.T) {
	a := WordIndex(day, "salt", 100)
	assert.Equal(t, a, WordIndex(day, "salt", 100))
	assert.GreaterOrEqual(t, a, 0)
	assert.Less(t, a, 100)
	assert.Equal(t, 0, WordIndex(day, "salt", 0))
}

func TestWordIndices(t *testing.T) {
	for _, boards := range []int{1, 2, 4, 8} {
		got := WordIndices(day, "salt", 48, boards)
		require.Len(t, got, boards)
		assert.Equal(t, got, WordIndices(day, "salt", 48, boards), "stable for the same inputs")

		seen := map[int]bool{}
		for _, idx := range got {
			assert.False(t, seen[idx], "index %d repeated", idx)
			assert.Less(t, idx, 48)
			seen[idx] = true
		}
	}
}

func TestWordIndices_SmallList(t *testing.T) {
	got := WordIndices(day, "salt", 2, 4)
	require.Len(t, got, 4)
	assert.ElementsMatch(t, []int{0, 1}, got[:2])
	assert.Nil(t, WordIndices(day, "salt", 0, 4))
}

func TestWordIndices_VaryBySalt(t *testing.T) {
	differs := false
	for i := 0; i < 5 && !differs; i++ {
		d := day.AddDate(0, 0, i)
		differs = WordIndex(d, "a", 1000) != WordIndex(d, "b", 1000)
	}
	assert.True(t, differs)
}

func TestStore(t *testing.T) {
	db, err := database.Open(filepath.Join(t.TempDir(), "daily.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.Migrate(db))

	s := NewStore(db)
	ctx := context.Background()
	date := DateKey(day)

	_, err = db.Exec(`INSERT INTO users (id, username, password_hash, created_at) VALUES ('u1', 'alice', 'x', 'now')`)
	require.NoError(t, err)

	require.NoError(t, s.InsertResult(ctx, Result{OwnerID: "u1", Date: date, Boards: 2, Attempts: 5, CompletedCount: 2, Won: true, ElapsedMs: 9000}))
	require.NoError(t, s.InsertResult(ctx, Result{OwnerID: "anon", Date: date, Boards: 2, Attempts: 7, CompletedCount: 1, Won: true, ElapsedMs: 1000}))
	require.NoError(t, s.InsertResult(ctx, Result{OwnerID: "fast", Date: date, Boards: 2, Attempts: 5, CompletedCount: 2, Won: true, ElapsedMs: 4000}))
	require.NoError(t, s.InsertResult(ctx, Result{OwnerID: "quad", Date: date, Boards: 4, Attempts: 9, CompletedCount: 4, Won: true, ElapsedMs: 100}))
	// second result for the same day is ignored
	require.NoError(t, s.InsertResult(ctx, Result{OwnerID: "u1", Date: date, Boards: 2, Attempts: 1, CompletedCount: 2, Won: true, ElapsedMs: 1}))

	played, err := s.AlreadyPlayed(ctx, "u1", date, 2)
	require.NoError(t, err)
	assert.True(t, played)
	played, err = s.AlreadyPlayed(ctx, "u1", date, 4)
	require.NoError(t, err)
	assert.False(t, played)

	top, err := s.Leaderboard(ctx, date, 2, 0)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, "fast", top[0].OwnerID)
	assert.Equal(t, "u1", top[1].OwnerID)
	assert.Equal(t, "alice", top[1].Username)
	assert.Equal(t, 5, top[1].Attempts)
	assert.Equal(t, "anon", top[2].OwnerID)
	assert.Empty(t, top[2].Username)
}
