package users

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/robalobadob/wordle/apps/multiboard/internal/database"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "users.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.Migrate(db))
	return NewStore(db).WithCost(bcrypt.MinCost)
}

func TestValidateSignup(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantErr  bool
	}{
		{"ok", "player_1", "password123", false},
		{"short username", "ab", "password123", true},
		{"long username", strings.Repeat("a", 25), "password123", true},
		{"bad charset", "bad name", "password123", true},
		{"short password", "player", "short", true},
		{"long password", "player", strings.Repeat("p", 101), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSignup(tt.username, tt.password)
			if tt.wantErr {
				var ve *ValidationError
				assert.ErrorAs(t, err, &ve)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCreateAndFind(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u, err := s.Create(ctx, "  Alice ", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, "Alice", u.Username)
	assert.Len(t, u.ID, 36)
	assert.NotEqual(t, "correct horse", u.PasswordHash)

	byName, err := s.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byName.ID)

	byID, err := s.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", byID.Username)
	assert.Equal(t, u.CreatedAt, byID.CreatedAt)

	_, err = s.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreate_UsernameTaken(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Create(ctx, "bob", "password123")
	require.NoError(t, err)
	_, err = s.Create(ctx, "BOB", "password456")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestAuthenticate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.Create(ctx, "carol", "password123")
	require.NoError(t, err)

	u, err := s.Authenticate(ctx, "carol", "password123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, u.ID)

	_, err = s.Authenticate(ctx, "carol", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.Authenticate(ctx, "dave", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
