// Package config loads runtime settings from defaults and the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port         string `mapstructure:"port"`
	LogLevel     string `mapstructure:"log_level"`
	DatabasePath string `mapstructure:"database_path"`
	Production   bool   `mapstructure:"production"`
	ClientOrigin string `mapstructure:"client_origin"`
	DailySalt    string `mapstructure:"daily_salt"`
	Auth         AuthConfig
	Words        WordsConfig
}

// AuthConfig holds JWT and cookie settings.
type AuthConfig struct {
	JWTSecret      string `mapstructure:"jwt_secret"`
	JWTExpiresDays int    `mapstructure:"jwt_expires_days"`
	CookieName     string `mapstructure:"cookie_name"`
}

// WordsConfig selects word lists and the optional remote word APIs.
type WordsConfig struct {
	AnswersFile   string        `mapstructure:"answers_file"`
	AllowedFile   string        `mapstructure:"allowed_file"`
	Remote        bool          `mapstructure:"remote"`
	RandomURL     string        `mapstructure:"random_url"`
	DictionaryURL string        `mapstructure:"dictionary_url"`
	Timeout       time.Duration `mapstructure:"timeout"`
	Retries       int           `mapstructure:"retries"`
	FallbackAfter int           `mapstructure:"fallback_after"`
}

// envKeys pairs config keys with the environment variables that override them.
var envKeys = [][2]string{
	{"port", "PORT"},
	{"log_level", "LOG_LEVEL"},
	{"database_path", "DATABASE_PATH"},
	{"production", "PRODUCTION"},
	{"client_origin", "CLIENT_ORIGIN"},
	{"daily_salt", "DAILY_SALT"},
	{"auth.jwt_secret", "JWT_SECRET"},
	{"auth.jwt_expires_days", "JWT_EXPIRES_DAYS"},
	{"auth.cookie_name", "COOKIE_NAME"},
	{"words.answers_file", "WORDS_ANSWERS_FILE"},
	{"words.allowed_file", "WORDS_ALLOWED_FILE"},
	{"words.remote", "WORDS_REMOTE"},
	{"words.random_url", "WORDS_RANDOM_URL"},
	{"words.dictionary_url", "WORDS_DICTIONARY_URL"},
	{"words.timeout", "WORDS_TIMEOUT"},
	{"words.retries", "WORDS_RETRIES"},
	{"words.fallback_after", "WORDS_FALLBACK_AFTER"},
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("port", "5175")
	v.SetDefault("log_level", "info")
	v.SetDefault("database_path", "./data/app.db")
	v.SetDefault("production", false)
	v.SetDefault("client_origin", "http://localhost:5173")
	v.SetDefault("daily_salt", "local_dev_salt")
	v.SetDefault("auth.jwt_secret", "dev_secret_change_me")
	v.SetDefault("auth.jwt_expires_days", 14)
	v.SetDefault("auth.cookie_name", "wordle_token")
	v.SetDefault("words.answers_file", "")
	v.SetDefault("words.allowed_file", "")
	v.SetDefault("words.remote", false)
	v.SetDefault("words.random_url", "")
	v.SetDefault("words.dictionary_url", "")
	v.SetDefault("words.timeout", 3*time.Second)
	v.SetDefault("words.retries", 10)
	v.SetDefault("words.fallback_after", 3)

	for _, kv := range envKeys {
		if err := v.BindEnv(kv[0], kv[1]); err != nil {
			return Config{}, fmt.Errorf("bind %s: %w", kv[1], err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.Auth.JWTExpiresDays <= 0 {
		c.Auth.JWTExpiresDays = 14
	}
	return c, nil
}

// Addr returns the listen address for Port.
func (c Config) Addr() string { return ":" + c.Port }

// JWTTTL returns the token lifetime.
func (c AuthConfig) JWTTTL() time.Duration {
	return time.Duration(c.JWTExpiresDays) * 24 * time.Hour
}
