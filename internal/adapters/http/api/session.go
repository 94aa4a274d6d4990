package api

import (
	"errors"
	"net/http"

	service "github.com/wikiscout/scoutcore/internal/app"
)

type selectEventRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type statusResponse struct {
	Status string `json:"status"`
}

func (s *Server) handleSession(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.Session())
}

// handleSelectEvent handles POST /session/event. The response carries the load outcome.
func (s *Server) handleSelectEvent(w http.ResponseWriter, r *http.Request) {
	var req selectEventRequest
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, err)
		return
	}
	res, err := s.engine.SelectEvent(r.Context(), req.Code, req.Name)
	switch {
	case errors.Is(err, service.ErrInvalidEvent):
		badRequest(w, err)
	case err != nil:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	default:
		writeJSON(w, http.StatusOK, res)
	}
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.engine.Logout(r.Context())
	writeJSON(w, http.StatusOK, statusResponse{Status: "logged_out"})
}
