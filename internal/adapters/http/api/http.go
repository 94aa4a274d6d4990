// Package api exposes the engine's view models as a JSON API for the presentation layer.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/rs/cors"

	service "github.com/wikiscout/scoutcore/internal/app"
	"github.com/wikiscout/scoutcore/internal/domain/directory"
	"github.com/wikiscout/scoutcore/internal/domain/matchview"
	"github.com/wikiscout/scoutcore/internal/domain/model"
	"github.com/wikiscout/scoutcore/pkg/logger"
)

const maxBodyBytes = 1 << 20

// Engine is the set of engine operations served over HTTP.
type Engine interface {
	Session() service.Session
	SelectEvent(ctx context.Context, code, name string) (service.LoadResult, error)
	Logout(ctx context.Context)

	Rankings(ctx context.Context) []model.Ranking
	Teams(ctx context.Context) []model.Team
	Matches(ctx context.Context, f matchview.Filter) matchview.View
	History(ctx context.Context, team int) []matchview.HistoryEntry
	TeamStats(ctx context.Context, team int) matchview.Stats

	DirectoryResults() directory.Results
	DirectorySeasons() []directory.Season
	OpenDirectory(ctx context.Context) directory.Results
	SetDirectoryMode(ctx context.Context, m directory.Mode) directory.Results
	SetDirectorySeason(ctx context.Context, year int) directory.Results
	SetDirectoryQuery(q string)
	ApplyDirectoryQuery(ctx context.Context, q string) directory.Results

	SubmitScouting(ctx context.Context, team int, entry model.ScoutingEntry) error
}

// Option configures a Server.
type Option func(*Server)

// WithCORSOrigins sets the origins allowed to call the API.
func WithCORSOrigins(origins []string) Option {
	return func(s *Server) {
		if len(origins) > 0 {
			s.origins = origins
		}
	}
}

// WithLogger sets the request logger.
func WithLogger(l logger.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// Server wires HTTP routes for the engine API.
type Server struct {
	engine  Engine
	health  *HealthHandler
	origins []string
	logger  logger.Logger
}

// NewServer creates a new API server.
func NewServer(engine Engine, opts ...Option) *Server {
	s := &Server{
		engine:  engine,
		health:  NewHealthHandler(),
		origins: []string{"*"},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Nop()
	}
	return s
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}
	route := func(pattern, endpoint string, h http.HandlerFunc) {
		mux.HandleFunc(pattern, MetricsMiddleware(LoggingMiddleware(h, endpoint, s.logger), endpoint))
	}

	route("GET /healthz", "healthz", s.health.HandleHealth)

	route("GET /session", "session", s.handleSession)
	route("POST /session/event", "session_event", s.handleSelectEvent)
	route("POST /session/logout", "session_logout", s.handleLogout)

	route("GET /rankings", "rankings", s.handleRankings)
	route("GET /teams", "teams", s.handleTeams)
	route("GET /teams/{team}/history", "team_history", s.handleHistory)
	route("GET /teams/{team}/stats", "team_stats", s.handleTeamStats)
	route("GET /matches", "matches", s.handleMatches)

	route("GET /directory", "directory", s.handleDirectory)
	route("GET /directory/seasons", "directory_seasons", s.handleDirectorySeasons)
	route("POST /directory/open", "directory_open", s.handleDirectoryOpen)
	route("POST /directory/mode", "directory_mode", s.handleDirectoryMode)
	route("POST /directory/season", "directory_season", s.handleDirectorySeason)
	route("POST /directory/query", "directory_query", s.handleDirectoryQuery)

	route("POST /scouting", "scouting", s.handleScouting)

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", fmt.Errorf("%w: %s %s", ErrNotFound, r.Method, r.URL.Path))
	})
}

// Handler returns mux wrapped with the configured CORS policy.
func (s *Server) Handler(mux *http.ServeMux) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"*"},
	})
	return c.Handler(mux)
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// decodeBody reads a single JSON object into v.
func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrBadRequest, err)
	}
	return nil
}

// teamParam parses the {team} path segment.
func teamParam(r *http.Request) (int, error) {
	raw := r.PathValue("team")
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: invalid team number %q", ErrBadRequest, raw)
	}
	return n, nil
}

func badRequest(w http.ResponseWriter, err error) {
	if !errors.Is(err, ErrBadRequest) {
		err = fmt.Errorf("%w: %w", ErrBadRequest, err)
	}
	writeError(w, http.StatusBadRequest, "bad_request", err)
}
