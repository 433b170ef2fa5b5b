package words

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/multiboard/internal/game"
)

const (
	defaultRetryAttempts = 10
	defaultFallbackAfter = 3
	defaultBackoff       = 200 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// RetryingSource asks inner for a word up to maxAttempts times. Rejected
// candidates are retried immediately; transport failures back off linearly.
// After fallbackAfter failures, or once attempts run out, it answers from
// fallback instead.
type RetryingSource struct {
	inner         Source
	fallback      Source
	maxAttempts   int
	fallbackAfter int
	backoffFn     backoffFunc
}

// NewRetryingSource wraps inner. Values <= 0 select the defaults
// (10 attempts, fallback after 3 failures, 200ms backoff step).
func NewRetryingSource(inner, fallback Source, maxAttempts, fallbackAfter int, backoff time.Duration) *RetryingSource {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if fallbackAfter <= 0 {
		fallbackAfter = defaultFallbackAfter
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &RetryingSource{
		inner:         inner,
		fallback:      fallback,
		maxAttempts:   maxAttempts,
		fallbackAfter: fallbackAfter,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

// ProvideTargetWord implements Source.
func (r *RetryingSource) ProvideTargetWord(ctx context.Context) (game.Word, error) {
	var lastErr error
	failures := 0

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		w, err := r.inner.ProvideTargetWord(ctx)
		if err == nil {
			return w, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		if errors.Is(err, ErrRejected) {
			continue
		}

		failures++
		log.Warn().Err(err).Int("attempt", attempt).Int("failures", failures).Msg("word source retry")
		if failures >= r.fallbackAfter {
			break
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(r.backoffFn(failures)):
		}
	}

	if r.fallback == nil {
		return "", lastErr
	}
	log.Warn().Err(lastErr).Msg("word source exhausted; using fallback")
	return r.fallback.ProvideTargetWord(ctx)
}
