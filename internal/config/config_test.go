package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, kv := range envKeys {
		t.Setenv(kv[1], "")
	}

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5175", c.Port)
	assert.Equal(t, ":5175", c.Addr())
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "./data/app.db", c.DatabasePath)
	assert.False(t, c.Production)
	assert.Equal(t, "wordle_token", c.Auth.CookieName)
	assert.Equal(t, 14*24*time.Hour, c.Auth.JWTTTL())
	assert.False(t, c.Words.Remote)
	assert.Equal(t, 3*time.Second, c.Words.Timeout)
	assert.Equal(t, 10, c.Words.Retries)
	assert.Equal(t, 3, c.Words.FallbackAfter)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_LEVEL", " DEBUG ")
	t.Setenv("PRODUCTION", "true")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_EXPIRES_DAYS", "2")
	t.Setenv("WORDS_REMOTE", "true")
	t.Setenv("WORDS_TIMEOUT", "500ms")
	t.Setenv("WORDS_RETRIES", "4")

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9000", c.Addr())
	assert.Equal(t, "debug", c.LogLevel)
	assert.True(t, c.Production)
	assert.Equal(t, "s3cret", c.Auth.JWTSecret)
	assert.Equal(t, 48*time.Hour, c.Auth.JWTTTL())
	assert.True(t, c.Words.Remote)
	assert.Equal(t, 500*time.Millisecond, c.Words.Timeout)
	assert.Equal(t, 4, c.Words.Retries)
}
