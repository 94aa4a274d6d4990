package api

import (
	"errors"
	"net/http"

	"github.com/wikiscout/scoutcore/internal/adapters/scoutapi"
	service "github.com/wikiscout/scoutcore/internal/app"
	"github.com/wikiscout/scoutcore/internal/domain/model"
)

type scoutingRequest struct {
	Team  int                 `json:"team"`
	Entry model.ScoutingEntry `json:"entry"`
}

// handleScouting handles POST /scouting.
func (s *Server) handleScouting(w http.ResponseWriter, r *http.Request) {
	var req scoutingRequest
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, err)
		return
	}
	err := s.engine.SubmitScouting(r.Context(), req.Team, req.Entry)
	switch {
	case err == nil:
		writeJSON(w, http.StatusCreated, statusResponse{Status: "submitted"})
	case errors.Is(err, service.ErrInvalidTeam):
		badRequest(w, err)
	case errors.Is(err, service.ErrNoEvent):
		writeError(w, http.StatusConflict, "no_event", err)
	case errors.Is(err, scoutapi.ErrWriteFailed):
		writeError(w, http.StatusBadGateway, "write_failed", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
