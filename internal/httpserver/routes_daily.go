// internal/httpserver/routes_daily.go
//
// HTTP routes for the "Daily Challenge" mode.
// Exposes three endpoints under /daily:
//   - POST /daily/new         → start (or resume) today's game for a board count
//   - POST /daily/guess       → submit a guess for today's daily game
//   - GET  /daily/leaderboard → top 20 results for a date and board count
//
// Each owner can finish one daily game per date and board count (enforced by
// the UNIQUE constraint on daily_results). Targets are deterministic per
// date + board count + salt, so every player gets the same boards.

package httpserver

import (
	"context"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/wordle/apps/multiboard/internal/daily"
	"github.com/robalobadob/wordle/apps/multiboard/internal/game"
	"github.com/robalobadob/wordle/apps/multiboard/internal/store"
)

// dailyServer tracks which live session serves each owner|date|boards key.
type dailyServer struct {
	srv  *Server
	mu   sync.Mutex
	live map[string]liveRef
}

type liveRef struct {
	id    string
	owner string
}

func dailyKey(owner, date string, boards int) string {
	return owner + "|" + date + "|" + strconv.Itoa(boards)
}

// mountDaily registers all /daily routes on r.
func (s *Server) mountDaily(r chi.Router) {
	dd := &dailyServer{srv: s, live: make(map[string]liveRef)}
	s.daily = dd
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", dd.handleNew)
		r.Post("/guess", dd.handleGuess)
		r.Get("/leaderboard", dd.handleLeaderboard)
	})
}

// targets returns today's date key and deterministic targets for boards.
func (d *dailyServer) targets(boards int) (string, []game.Word) {
	now := d.srv.now()
	answers := d.srv.deps.Words.Answers()
	idx := daily.WordIndices(now, d.srv.cfg.DailySalt, len(answers), boards)
	out := make([]game.Word, len(idx))
	for i, n := range idx {
		out[i] = answers[n]
	}
	return daily.DateKey(now), out
}

type dailyNewReq struct {
	Boards   int  `json:"boards"`
	HardMode bool `json:"hardMode"`
}

type dailyNewRes struct {
	Date   string   `json:"date"`
	Played bool     `json:"played"`
	Game   *gameRes `json:"game,omitempty"`
}

// handleNew creates or resumes a daily session.
// - If the owner already finished today's game for this board count → Played=true.
// - Otherwise reuse the live session for the key, or start a new one.
func (d *dailyServer) handleNew(w http.ResponseWriter, r *http.Request) {
	req := dailyNewReq{Boards: 1}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "")
		return
	}
	cfg := game.GameConfig{BoardCount: req.Boards, HardMode: req.HardMode}
	if err := cfg.Validate(); err != nil {
		writeEngineError(w, r, err)
		return
	}
	owner := d.srv.owner(w, r)
	date, targets := d.targets(cfg.BoardCount)

	played, err := d.srv.deps.Daily.AlreadyPlayed(r.Context(), owner, date, cfg.BoardCount)
	if err != nil {
		writeEngineError(w, r, err)
		return
	}
	if played {
		writeJSON(w, http.StatusOK, dailyNewRes{Date: date, Played: true})
		return
	}

	key := dailyKey(owner, date, cfg.BoardCount)
	d.mu.Lock()
	defer d.mu.Unlock()

	if ref, ok := d.live[key]; ok {
		if e, err := d.srv.deps.Sessions.Get(r.Context(), ref.id, ref.owner); err == nil {
			var st game.SessionState
			_ = e.With(func(sess *game.Session) error {
				st = sess.State()
				return nil
			})
			res := snapshot(e, st)
			writeJSON(w, http.StatusOK, dailyNewRes{Date: date, Game: &res})
			return
		}
		delete(d.live, key)
	}

	sess := game.NewSession(nil)
	if err := sess.Start(cfg, targets); err != nil {
		writeEngineError(w, r, err)
		return
	}
	e := store.NewEntry(owner, store.KindDaily, sess)
	e.StartedAt = d.srv.now()
	e.Date = date
	if err := d.srv.deps.Sessions.Save(r.Context(), e); err != nil {
		writeEngineError(w, r, err)
		return
	}
	d.live[key] = liveRef{id: e.ID, owner: owner}

	res := snapshot(e, sess.State())
	writeJSON(w, http.StatusCreated, dailyNewRes{Date: date, Game: &res})
}

// forget drops the live session for key once its game has finished.
func (d *dailyServer) forget(key string) {
	d.mu.Lock()
	delete(d.live, key)
	d.mu.Unlock()
}

// sweep drops keys whose session was pruned or moved to another owner.
func (d *dailyServer) sweep(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for key, ref := range d.live {
		if _, err := d.srv.deps.Sessions.Get(ctx, ref.id, ref.owner); err != nil {
			delete(d.live, key)
		}
	}
}

// handleGuess applies a guess to a daily session.
func (d *dailyServer) handleGuess(w http.ResponseWriter, r *http.Request) {
	d.srv.submit(w, r, store.KindDaily)
}

type lbRes struct {
	Date   string        `json:"date"`
	Boards int           `json:"boards"`
	Top    []daily.LBRow `json:"top"`
}

// handleLeaderboard returns the leaderboard for the given date (default today)
// and board count (default 1).
func (d *dailyServer) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = daily.DateKey(d.srv.now())
	}
	boards := 1
	if v := r.URL.Query().Get("boards"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || (game.GameConfig{BoardCount: n}).Validate() != nil {
			writeError(w, http.StatusBadRequest, "invalid_configuration", "")
			return
		}
		boards = n
	}
	rows, err := d.srv.deps.Daily.Leaderboard(r.Context(), date, boards, 20)
	if err != nil {
		writeEngineError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, lbRes{Date: date, Boards: boards, Top: rows})
}
