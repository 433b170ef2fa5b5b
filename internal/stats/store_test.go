package stats

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/multiboard/internal/database"
	"github.com/robalobadob/wordle/apps/multiboard/internal/game"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "stats.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.Migrate(db))
	return NewStore(db)
}

func rec(id string, won bool, attempts int) GameRecord {
	return GameRecord{
		ID:         id,
		Boards:     2,
		Won:        won,
		Attempts:   attempts,
		Targets:    []game.Word{"BEACH", "CHAIR"},
		FinishedAt: time.Now().UTC(),
	}
}

func TestLoad_Empty(t *testing.T) {
	s := newTestStore(t)

	st, err := s.Load(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Equal(t, 0, st.GamesPlayed)
	assert.NotNil(t, st.GuessDistribution)
}

func TestRecordGame(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.RecordGame(ctx, "u1", rec("g1", true, 3))
	require.NoError(t, err)
	_, err = s.RecordGame(ctx, "u1", rec("g2", true, 3))
	require.NoError(t, err)
	st, err := s.RecordGame(ctx, "u1", rec("g3", false, 7))
	require.NoError(t, err)

	want := game.Stats{GamesPlayed: 3, GamesWon: 2, CurrentStreak: 0, MaxStreak: 2, GuessDistribution: map[int]int{3: 2}}
	assert.Equal(t, want, st)

	loaded, err := s.Load(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, want, loaded)
	assert.Equal(t, 67, loaded.WinRate())

	games, err := s.RecentGames(ctx, "u1", 10)
	require.NoError(t, err)
	require.Len(t, games, 3)
	assert.ElementsMatch(t, []string{"g1", "g2", "g3"}, []string{games[0].ID, games[1].ID, games[2].ID})
	assert.Equal(t, []game.Word{"BEACH", "CHAIR"}, games[0].Targets)
}

func TestRecordGame_DuplicateIDRollsBack(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.RecordGame(ctx, "u1", rec("g1", true, 4))
	require.NoError(t, err)
	_, err = s.RecordGame(ctx, "u1", rec("g1", true, 4))
	require.Error(t, err)

	st, err := s.Load(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, st.GamesPlayed, "failed insert leaves stats untouched")
}

func TestRecordFromOutcome(t *testing.T) {
	out := game.SubmitOutcome{Kind: game.OutcomeGameOver, AttemptsUsed: 7, MaxAttempts: 7, CompletedCount: 1}
	r := RecordFromOutcome("g", game.GameConfig{BoardCount: 2, HardMode: true}, out, []game.Word{"BEACH", "CHAIR"})

	assert.True(t, r.Won, "partial game over counts as a win")
	assert.Equal(t, 2, r.Boards)
	assert.True(t, r.HardMode)
	assert.Equal(t, 7, r.Attempts)
}

func TestClaimOwner(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.RecordGame(ctx, "anon", rec("g1", true, 2))
	require.NoError(t, err)
	require.NoError(t, s.SaveSettings(ctx, "anon", Settings{HardMode: true, Boards: 4}))

	require.NoError(t, s.ClaimOwner(ctx, "anon", "user"))

	st, err := s.Load(ctx, "user")
	require.NoError(t, err)
	assert.Equal(t, 1, st.GamesWon)
	assert.Equal(t, map[int]int{2: 1}, st.GuessDistribution)

	set, err := s.LoadSettings(ctx, "user")
	require.NoError(t, err)
	assert.Equal(t, Settings{HardMode: true, Boards: 4}, set)

	games, err := s.RecentGames(ctx, "user", 0)
	require.NoError(t, err)
	assert.Len(t, games, 1)

	left, err := s.Load(ctx, "anon")
	require.NoError(t, err)
	assert.Equal(t, 0, left.GamesPlayed)
}

func TestClaimOwner_KeepsExistingUserStats(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.RecordGame(ctx, "user", rec("g1", false, 6))
	require.NoError(t, err)
	_, err = s.RecordGame(ctx, "anon", rec("g2", true, 2))
	require.NoError(t, err)

	require.NoError(t, s.ClaimOwner(ctx, "anon", "user"))

	st, err := s.Load(ctx, "user")
	require.NoError(t, err)
	assert.Equal(t, 0, st.GamesWon)

	games, err := s.RecentGames(ctx, "user", 0)
	require.NoError(t, err)
	assert.Len(t, games, 2)
}

func TestSettings(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	got, err := s.LoadSettings(ctx, "u")
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), got)

	require.NoError(t, s.SaveSettings(ctx, "u", Settings{HardMode: true, Boards: 8}))
	got, err = s.LoadSettings(ctx, "u")
	require.NoError(t, err)
	assert.Equal(t, Settings{HardMode: true, Boards: 8}, got)

	err = s.SaveSettings(ctx, "u", Settings{Boards: 3})
	assert.ErrorIs(t, err, game.ErrInvalidConfiguration)
}
