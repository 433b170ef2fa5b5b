// internal/httpserver/server.go
//
// HTTP server wiring for the multiboard backend.
// Responsibilities:
//   - Router + middleware (access log, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Game endpoints (optional auth): /game/*, /settings, /stats/me.
//   - Daily Challenge endpoints (optional auth): mounted under /daily.
//   - Auth endpoints: /auth/*, and /games/mine (require auth).
//   - Mapping engine errors onto JSON error bodies.
//
// Notes:
//   - CORS is origin-aware and credentials-enabled (so cookies work).
//   - Every request has an owner: the authenticated user ID, else an
//     anonymous cookie ID. Sessions, stats and settings are keyed by owner.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/multiboard/internal/config"
	"github.com/robalobadob/wordle/apps/multiboard/internal/daily"
	"github.com/robalobadob/wordle/apps/multiboard/internal/game"
	"github.com/robalobadob/wordle/apps/multiboard/internal/stats"
	"github.com/robalobadob/wordle/apps/multiboard/internal/store"
	"github.com/robalobadob/wordle/apps/multiboard/internal/users"
	"github.com/robalobadob/wordle/apps/multiboard/internal/words"
)

// Deps are the collaborators a Server needs.
type Deps struct {
	Config    config.Config
	Sessions  store.Store
	Stats     *stats.Store
	Users     *users.Store
	Daily     *daily.Store
	Words     *words.List
	Source    words.Source
	Validator words.Validator
}

// Server bundles the router and its collaborators.
type Server struct {
	r     *chi.Mux
	deps  Deps
	cfg   config.Config
	now   func() time.Time
	daily *dailyServer
}

// New constructs a Server, installs middleware, and registers routes.
func New(deps Deps) *Server {
	if deps.Source == nil {
		deps.Source = words.NewListSource(deps.Words)
	}
	if deps.Validator == nil {
		deps.Validator = words.NewListValidator(deps.Words)
	}
	s := &Server{r: chi.NewRouter(), deps: deps, cfg: deps.Config, now: time.Now}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(hlog.NewHandler(log.Logger))
	s.r.Use(accessLog)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)
	s.r.Use(cors(s.cfg.ClientOrigin))

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service":   "wordle-multiboard",
			"endpoints": []string{"/health", "POST /game/new", "POST /game/guess", "/daily/*", "/auth/*"},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		a, g := s.deps.Words.Stats()
		writeJSON(w, http.StatusOK, map[string]int{"answers": a, "allowed": g})
	})

	// Game endpoints (guests can play)
	s.r.Group(func(r chi.Router) {
		r.Use(s.withOptionalAuth())
		r.Post("/game/new", s.handleNewGame)
		r.Post("/game/guess", s.handleGuess)
		r.Get("/game/{id}", s.handleGetGame)
		r.Post("/game/{id}/restart", s.handleRestart)
		r.Get("/settings", s.handleGetSettings)
		r.Put("/settings", s.handlePutSettings)
		r.Get("/stats/me", s.handleMyStats)
		s.mountDaily(r)
	})

	s.mountAuthRoutes()

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Start begins serving HTTP on addr until ctx is cancelled.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.r, ReadHeaderTimeout: 5 * time.Second}
	go s.pruneSessions(ctx, time.Hour, 24*time.Hour)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// pruneSessions drops live sessions older than maxAge every interval.
func (s *Server) pruneSessions(ctx context.Context, interval, maxAge time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := s.deps.Sessions.Prune(ctx, s.now().Add(-maxAge)); n > 0 {
				log.Info().Int("sessions", n).Msg("pruned stale sessions")
			}
			s.daily.sweep(ctx)
		}
	}
}

// ----------------------------- middleware ----------------------------------

// accessLog writes one structured line per request.
var accessLog = hlog.AccessHandler(func(r *http.Request, status, size int, d time.Duration) {
	hlog.FromRequest(r).Info().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Str("req_id", chimw.GetReqID(r.Context())).
		Int("status", status).
		Int("size", size).
		Dur("duration", d).
		Msg("request")
})

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ------------------------------ responses ----------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, errorBody{Error: code, Message: msg})
}

// writeEngineError maps engine and store errors onto status codes.
func writeEngineError(w http.ResponseWriter, r *http.Request, err error) {
	var hm *game.HardModeError
	switch {
	case errors.As(err, &hm):
		writeError(w, http.StatusBadRequest, "hard_mode_violation", hm.Error())
	case errors.Is(err, game.ErrIncompleteGuess):
		writeError(w, http.StatusBadRequest, "incomplete_guess", "")
	case errors.Is(err, game.ErrInvalidWord):
		writeError(w, http.StatusBadRequest, "invalid_word", "")
	case errors.Is(err, game.ErrInvalidConfiguration):
		writeError(w, http.StatusBadRequest, "invalid_configuration", "")
	case errors.Is(err, game.ErrGameFinished), errors.Is(err, game.ErrWrongPhase):
		writeError(w, http.StatusConflict, "wrong_phase", "")
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", "")
	default:
		logFor(r).Error().Err(err).Msg("request failed")
		writeError(w, http.StatusInternalServerError, "internal", "")
	}
}

// logFor returns the request-scoped logger.
func logFor(r *http.Request) *zerolog.Logger {
	return hlog.FromRequest(r)
}

// decodeJSON decodes an optional request body; an empty body is not an error.
func decodeJSON(r *http.Request, v any) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
