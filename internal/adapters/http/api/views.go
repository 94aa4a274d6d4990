package api

import (
	"fmt"
	"net/http"

	"github.com/wikiscout/scoutcore/internal/domain/matchview"
)

func (s *Server) handleRankings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.Rankings(r.Context()))
}

func (s *Server) handleTeams(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.Teams(r.Context()))
}

// handleMatches handles GET /matches?filter=all|my-team|upcoming. No filter means my-team.
func (s *Server) handleMatches(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("filter")
	f, ok := matchview.ParseFilter(raw)
	if !ok {
		badRequest(w, fmt.Errorf("%w: unknown filter %q", ErrBadRequest, raw))
		return
	}
	writeJSON(w, http.StatusOK, s.engine.Matches(r.Context(), f))
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	team, err := teamParam(r)
	if err != nil {
		badRequest(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.engine.History(r.Context(), team))
}

// handleTeamStats handles GET /teams/{team}/stats. Unknown teams get an empty card with found=false.
func (s *Server) handleTeamStats(w http.ResponseWriter, r *http.Request) {
	team, err := teamParam(r)
	if err != nil {
		badRequest(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.engine.TeamStats(r.Context(), team))
}
