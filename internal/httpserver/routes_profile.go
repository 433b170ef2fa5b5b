package httpserver

import (
	"net/http"

	"github.com/robalobadob/wordle/apps/multiboard/internal/game"
	"github.com/robalobadob/wordle/apps/multiboard/internal/stats"
)

// statsRes is the stats payload, with the derived win rate.
type statsRes struct {
	game.Stats
	WinRate int `json:"winRate"`
}

func newStatsRes(st game.Stats) statsRes {
	if st.GuessDistribution == nil {
		st.GuessDistribution = map[int]int{}
	}
	return statsRes{Stats: st, WinRate: st.WinRate()}
}

func (s *Server) handleMyStats(w http.ResponseWriter, r *http.Request) {
	st, err := s.deps.Stats.Load(r.Context(), s.owner(w, r))
	if err != nil {
		writeEngineError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newStatsRes(st))
}

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	set, err := s.deps.Stats.LoadSettings(r.Context(), s.owner(w, r))
	if err != nil {
		writeEngineError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, set)
}

// handlePutSettings replaces the owner's settings; omitted fields keep their value.
func (s *Server) handlePutSettings(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "")
		return
	}
	owner := s.owner(w, r)
	set, err := s.deps.Stats.LoadSettings(r.Context(), owner)
	if err != nil {
		writeEngineError(w, r, err)
		return
	}
	if req.Boards != nil {
		set.Boards = *req.Boards
	}
	if req.HardMode != nil {
		set.HardMode = *req.HardMode
	}
	if err := s.deps.Stats.SaveSettings(r.Context(), owner, set); err != nil {
		writeEngineError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, set)
}

// handleMyGames lists the signed-in user's recent finished games.
func (s *Server) handleMyGames(w http.ResponseWriter, r *http.Request) {
	games, err := s.deps.Stats.RecentGames(r.Context(), userFrom(r.Context()).ID, 50)
	if err != nil {
		writeEngineError(w, r, err)
		return
	}
	if games == nil {
		games = []stats.GameRecord{}
	}
	writeJSON(w, http.StatusOK, games)
}
