package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/wikiscout/scoutcore/internal/domain/directory"
)

type modeRequest struct {
	Mode string `json:"mode"`
}

type seasonRequest struct {
	Season int `json:"season"`
}

type queryRequest struct {
	Query string `json:"query"`
	// Immediate skips the debounce delay.
	Immediate bool `json:"immediate"`
}

func (s *Server) handleDirectory(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.DirectoryResults())
}

func (s *Server) handleDirectorySeasons(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.DirectorySeasons())
}

func (s *Server) handleDirectoryOpen(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.OpenDirectory(r.Context()))
}

func (s *Server) handleDirectoryMode(w http.ResponseWriter, r *http.Request) {
	var req modeRequest
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, err)
		return
	}
	m, ok := directory.ParseMode(strings.TrimSpace(req.Mode))
	if !ok {
		badRequest(w, fmt.Errorf("%w: unknown mode %q", ErrBadRequest, req.Mode))
		return
	}
	writeJSON(w, http.StatusOK, s.engine.SetDirectoryMode(r.Context(), m))
}

func (s *Server) handleDirectorySeason(w http.ResponseWriter, r *http.Request) {
	var req seasonRequest
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, err)
		return
	}
	if req.Season <= 0 {
		badRequest(w, fmt.Errorf("%w: invalid season %d", ErrBadRequest, req.Season))
		return
	}
	writeJSON(w, http.StatusOK, s.engine.SetDirectorySeason(r.Context(), req.Season))
}

// handleDirectoryQuery handles POST /directory/query. A debounced query is accepted and
// applied later; results are then read from GET /directory.
func (s *Server) handleDirectoryQuery(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, err)
		return
	}
	if req.Immediate {
		writeJSON(w, http.StatusOK, s.engine.ApplyDirectoryQuery(r.Context(), req.Query))
		return
	}
	s.engine.SetDirectoryQuery(req.Query)
	writeJSON(w, http.StatusAccepted, statusResponse{Status: "scheduled"})
}
