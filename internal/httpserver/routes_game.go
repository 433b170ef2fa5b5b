// internal/httpserver/routes_game.go
//
// Free-play game endpoints:
//   - POST /game/new            → start a session (boards/hardMode default to saved settings)
//   - POST /game/guess          → submit a guess
//   - GET  /game/{id}           → session snapshot
//   - POST /game/{id}/restart   → reset a finished session and start again
//
// Guesses pass the word validator before reaching the engine. Finished games
// are recorded in the owner's stats and history.

package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/wordle/apps/multiboard/internal/daily"
	"github.com/robalobadob/wordle/apps/multiboard/internal/game"
	"github.com/robalobadob/wordle/apps/multiboard/internal/stats"
	"github.com/robalobadob/wordle/apps/multiboard/internal/store"
	"github.com/robalobadob/wordle/apps/multiboard/internal/words"
)

// ------------------------------- payloads ----------------------------------

type newGameReq struct {
	Boards   *int  `json:"boards"`
	HardMode *bool `json:"hardMode"`
}

type guessReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"`
}

type rowDTO struct {
	Guess    game.Word      `json:"guess"`
	Verdicts []game.Verdict `json:"verdicts"`
}

type boardDTO struct {
	Index     int       `json:"index"`
	Completed bool      `json:"completed"`
	Rows      []rowDTO  `json:"rows"`
	Target    game.Word `json:"target,omitempty"`
}

// gameRes is the session snapshot. Targets appear only once finished.
type gameRes struct {
	GameID         string                  `json:"gameId"`
	Kind           store.Kind              `json:"kind"`
	Date           string                  `json:"date,omitempty"`
	Phase          game.Phase              `json:"phase"`
	Title          string                  `json:"title"`
	Boards         int                     `json:"boards"`
	HardMode       bool                    `json:"hardMode"`
	MaxAttempts    int                     `json:"maxAttempts"`
	CurrentRow     int                     `json:"currentRow"`
	CompletedCount int                     `json:"completedCount"`
	Won            bool                    `json:"won"`
	Board          []boardDTO              `json:"board"`
	Keyboard       map[string]game.Verdict `json:"keyboard"`
}

type boardResultDTO struct {
	Board    int            `json:"board"`
	Verdicts []game.Verdict `json:"verdicts"`
	Solved   bool           `json:"solved"`
}

// guessRes answers one accepted guess.
type guessRes struct {
	GameID         string                  `json:"gameId"`
	State          game.OutcomeKind        `json:"state"`
	Guess          game.Word               `json:"guess"`
	Results        []boardResultDTO        `json:"results"`
	AttemptsUsed   int                     `json:"attemptsUsed"`
	MaxAttempts    int                     `json:"maxAttempts"`
	CompletedCount int                     `json:"completedCount"`
	Keyboard       map[string]game.Verdict `json:"keyboard"`
	CompletedWords []game.Word             `json:"completedWords,omitempty"`
	RemainingWords []game.Word             `json:"remainingWords,omitempty"`
	Stats          *statsRes               `json:"stats,omitempty"`
}

func snapshot(e *store.Entry, st game.SessionState) gameRes {
	res := gameRes{
		GameID:         e.ID,
		Kind:           e.Kind,
		Date:           e.Date,
		Phase:          st.Phase,
		Title:          st.Title,
		Boards:         st.Config.BoardCount,
		HardMode:       st.Config.HardMode,
		MaxAttempts:    st.MaxAttempts,
		CurrentRow:     st.CurrentRow,
		CompletedCount: st.CompletedCount,
		Won:            st.Won,
		Board:          make([]boardDTO, 0, len(st.Boards)),
		Keyboard:       st.Keyboard.Letters(),
	}
	for _, b := range st.Boards {
		d := boardDTO{Index: b.Index, Completed: b.Completed, Rows: make([]rowDTO, 0, len(b.History))}
		for _, row := range b.History {
			d.Rows = append(d.Rows, rowDTO{Guess: row.Guess, Verdicts: row.Verdicts})
		}
		if st.Phase == game.PhaseFinished {
			d.Target = b.Target
		}
		res.Board = append(res.Board, d)
	}
	return res
}

// ------------------------------- handlers ----------------------------------

func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "")
		return
	}
	owner := s.owner(w, r)
	cfg, err := s.resolveConfig(r, owner, req, nil)
	if err != nil {
		writeEngineError(w, r, err)
		return
	}

	targets, err := words.Targets(r.Context(), s.deps.Source, cfg.BoardCount)
	if err != nil {
		logFor(r).Error().Err(err).Msg("draw targets")
		writeError(w, http.StatusServiceUnavailable, "no_words", "")
		return
	}
	sess := game.NewSession(nil)
	if err := sess.Start(cfg, targets); err != nil {
		writeEngineError(w, r, err)
		return
	}
	e := store.NewEntry(owner, store.KindClassic, sess)
	e.StartedAt = s.now()
	if err := s.deps.Sessions.Save(r.Context(), e); err != nil {
		writeEngineError(w, r, err)
		return
	}
	logFor(r).Info().Str("gameId", e.ID).Int("boards", cfg.BoardCount).Bool("hardMode", cfg.HardMode).Msg("game started")
	writeJSON(w, http.StatusCreated, snapshot(e, sess.State()))
}

func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	s.submit(w, r, store.KindClassic)
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	e, err := s.deps.Sessions.Get(r.Context(), chi.URLParam(r, "id"), s.owner(w, r))
	if err != nil {
		writeEngineError(w, r, err)
		return
	}
	var st game.SessionState
	_ = e.With(func(sess *game.Session) error {
		st = sess.State()
		return nil
	})
	writeJSON(w, http.StatusOK, snapshot(e, st))
}

func (s *Server) handleRestart(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "")
		return
	}
	owner := s.owner(w, r)
	e, err := s.deps.Sessions.Get(r.Context(), chi.URLParam(r, "id"), owner)
	if err != nil {
		writeEngineError(w, r, err)
		return
	}
	if e.Kind != store.KindClassic {
		writeError(w, http.StatusConflict, "wrong_kind", "daily games cannot be restarted")
		return
	}

	var prev game.SessionState
	_ = e.With(func(sess *game.Session) error {
		prev = sess.State()
		return nil
	})
	if prev.Phase == game.PhasePlaying {
		writeEngineError(w, r, game.ErrWrongPhase)
		return
	}
	cfg, err := s.resolveConfig(r, owner, req, &prev.Config)
	if err != nil {
		writeEngineError(w, r, err)
		return
	}
	targets, err := words.Targets(r.Context(), s.deps.Source, cfg.BoardCount)
	if err != nil {
		logFor(r).Error().Err(err).Msg("draw targets")
		writeError(w, http.StatusServiceUnavailable, "no_words", "")
		return
	}

	var st game.SessionState
	err = e.With(func(sess *game.Session) error {
		if err := sess.Reset(); err != nil {
			return err
		}
		if err := sess.Start(cfg, targets); err != nil {
			return err
		}
		st = sess.State()
		return nil
	})
	if err != nil {
		writeEngineError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshot(e, st))
}

// resolveConfig fills unset request fields from prev, else the owner's settings.
func (s *Server) resolveConfig(r *http.Request, owner string, req newGameReq, prev *game.GameConfig) (game.GameConfig, error) {
	var cfg game.GameConfig
	if prev != nil && prev.BoardCount != 0 {
		cfg = *prev
	} else {
		set, err := s.deps.Stats.LoadSettings(r.Context(), owner)
		if err != nil {
			return game.GameConfig{}, err
		}
		cfg = set.Config()
	}
	if req.Boards != nil {
		cfg.BoardCount = *req.Boards
	}
	if req.HardMode != nil {
		cfg.HardMode = *req.HardMode
	}
	return cfg, cfg.Validate()
}

// submit validates a guess, applies it to the owner's session of kind, and
// records the result when the game ends.
func (s *Server) submit(w http.ResponseWriter, r *http.Request, kind store.Kind) {
	var req guessReq
	if err := decodeJSON(r, &req); err != nil || req.GameID == "" {
		writeError(w, http.StatusBadRequest, "invalid_json", "")
		return
	}
	owner := s.owner(w, r)
	e, err := s.deps.Sessions.Get(r.Context(), req.GameID, owner)
	if err != nil || e.Kind != kind {
		writeError(w, http.StatusNotFound, "not_found", "")
		return
	}

	guess, err := game.ParseWord(req.Guess)
	if err != nil {
		writeEngineError(w, r, err)
		return
	}
	if !s.deps.Validator.IsAcceptableGuess(r.Context(), guess) {
		msg := ""
		if hint, ok := s.deps.Words.Suggest(guess); ok {
			msg = "did you mean " + hint.String() + "?"
		}
		writeError(w, http.StatusBadRequest, "not_in_word_list", msg)
		return
	}

	var (
		out     game.SubmitOutcome
		state   game.SessionState
		targets []game.Word
	)
	err = e.With(func(sess *game.Session) error {
		var err error
		out, err = sess.SubmitGuess(guess.String())
		if err != nil {
			return err
		}
		state = sess.State()
		targets = sess.Targets()
		return nil
	})
	if err != nil {
		writeEngineError(w, r, err)
		return
	}

	res := guessRes{
		GameID:         e.ID,
		State:          out.Kind,
		Guess:          out.Guess,
		Results:        make([]boardResultDTO, 0, len(out.Results)),
		AttemptsUsed:   out.AttemptsUsed,
		MaxAttempts:    out.MaxAttempts,
		CompletedCount: out.CompletedCount,
		Keyboard:       state.Keyboard.Letters(),
	}
	for _, br := range out.Results {
		res.Results = append(res.Results, boardResultDTO{Board: br.Board, Verdicts: br.Verdicts, Solved: br.Solved})
	}
	if out.Terminal() {
		res.CompletedWords = out.CompletedWords
		res.RemainingWords = out.RemainingWords
		res.Stats = s.recordFinished(r, e, owner, state.Config, out, targets)
	}
	writeJSON(w, http.StatusOK, res)
}

// recordFinished persists a terminal outcome. Failures are logged, not returned:
// the guess itself was accepted.
func (s *Server) recordFinished(r *http.Request, e *store.Entry, owner string, cfg game.GameConfig, out game.SubmitOutcome, targets []game.Word) *statsRes {
	l := logFor(r).With().Str("gameId", e.ID).Str("owner", owner).Logger()
	l.Info().Str("outcome", string(out.Kind)).Int("attempts", out.AttemptsUsed).Int("completed", out.CompletedCount).Msg("game finished")

	if e.Kind == store.KindDaily {
		err := s.deps.Daily.InsertResult(r.Context(), daily.Result{
			OwnerID:        owner,
			Date:           e.Date,
			Boards:         cfg.BoardCount,
			Attempts:       out.AttemptsUsed,
			CompletedCount: out.CompletedCount,
			Won:            out.CountsAsWin(),
			ElapsedMs:      int(s.now().Sub(e.StartedAt).Milliseconds()),
		})
		if err != nil {
			l.Warn().Err(err).Msg("insert daily result")
		}
		if s.daily != nil {
			s.daily.forget(dailyKey(owner, e.Date, cfg.BoardCount))
		}
		return nil
	}

	updated, err := s.deps.Stats.RecordGame(r.Context(), owner, stats.RecordFromOutcome(e.ID, cfg, out, targets))
	if err != nil {
		l.Warn().Err(err).Msg("record game")
		return nil
	}
	res := newStatsRes(updated)
	return &res
}
