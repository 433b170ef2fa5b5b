package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/multiboard/internal/config"
	"github.com/robalobadob/wordle/apps/multiboard/internal/daily"
	"github.com/robalobadob/wordle/apps/multiboard/internal/database"
	"github.com/robalobadob/wordle/apps/multiboard/internal/httpserver"
	"github.com/robalobadob/wordle/apps/multiboard/internal/stats"
	"github.com/robalobadob/wordle/apps/multiboard/internal/store"
	"github.com/robalobadob/wordle/apps/multiboard/internal/users"
	"github.com/robalobadob/wordle/apps/multiboard/internal/words"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if !cfg.Production {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	list, err := words.Load(cfg.Words.AnswersFile, cfg.Words.AllowedFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}
	answers, allowed := list.Stats()
	log.Info().Int("answers", answers).Int("allowed", allowed).Msg("word lists loaded")

	db, err := database.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DatabasePath).Msg("failed to open database")
	}
	defer db.Close()
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	source, validator := wordServices(cfg.Words, list)

	srv := httpserver.New(httpserver.Deps{
		Config:    cfg,
		Sessions:  store.NewMemoryStore(),
		Stats:     stats.NewStore(db),
		Users:     users.NewStore(db),
		Daily:     daily.NewStore(db),
		Words:     list,
		Source:    source,
		Validator: validator,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Str("addr", cfg.Addr()).Bool("remoteWords", cfg.Words.Remote).Msg("starting multiboard server")
	if err := srv.Start(ctx, cfg.Addr()); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server exited")
	}
	log.Info().Msg("server stopped")
}

// wordServices picks local list services, or remote APIs that fall back to
// the local list.
func wordServices(cfg config.WordsConfig, list *words.List) (words.Source, words.Validator) {
	local := words.NewListSource(list)
	if !cfg.Remote {
		return local, words.NewListValidator(list)
	}
	client := &http.Client{Timeout: cfg.Timeout}
	validator := words.NewDictionaryValidator(client, cfg.DictionaryURL, list, cfg.Timeout)
	remote := words.NewRemoteSource(client, cfg.RandomURL, validator)
	return words.NewRetryingSource(remote, local, cfg.Retries, cfg.FallbackAfter, 0), validator
}
