// Package config defines the engine configuration and its loading hooks.
//
// Conventions:
// - All functions accept context.Context as the first parameter.
// - Validation failures wrap ErrInvalidConfig; loader failures wrap ErrLoadConfig.
package config

import (
	"context"
	"fmt"
	"time"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`
	// LogFormat selects the slog handler: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`
	// CORSOrigins lists origins allowed to call the JSON API.
	CORSOrigins []string `koanf:"cors_origins"`

	// APIBaseURL is the root of the remote event-information service.
	APIBaseURL string `koanf:"api_base_url"`
	// APIToken is sent as a bearer token when set.
	APIToken string `koanf:"api_token"`
	// RequestTimeoutMS bounds a single upstream round trip.
	RequestTimeoutMS int `koanf:"request_timeout_ms"`
	// UpstreamRPS and UpstreamBurst configure the outbound token bucket.
	UpstreamRPS   float64 `koanf:"upstream_rps"`
	UpstreamBurst int     `koanf:"upstream_burst"`

	// DebounceMS is the quiet period for directory text queries.
	DebounceMS int `koanf:"debounce_ms"`
	// FallbackTeamNumber is used when the auth service cannot resolve a team.
	FallbackTeamNumber int `koanf:"fallback_team_number"`
	// StatePath is the sqlite file remembering the selected event. Empty keeps it in memory.
	StatePath string `koanf:"state_path"`
	// PastEventLimit caps the past bucket of the event directory.
	PastEventLimit int `koanf:"past_event_limit"`
	// FirstSeason is the oldest season offered by the directory season list.
	FirstSeason int `koanf:"first_season"`
}

// New creates a Config populated with defaults.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:           "info",
		LogFormat:          "text",
		Addr:               ":9080",
		CORSOrigins:        []string{"*"},
		APIBaseURL:         "http://localhost:8080/api",
		RequestTimeoutMS:   10_000,
		UpstreamRPS:        10,
		UpstreamBurst:      5,
		DebounceMS:         250,
		FallbackTeamNumber: 16072,
		PastEventLimit:     50,
		FirstSeason:        2019,
	}
}

// RequestTimeout returns RequestTimeoutMS as a duration.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutMS) * time.Millisecond
}

// Debounce returns DebounceMS as a duration.
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.DebounceMS) * time.Millisecond
}

// Validate checks the invariants the rest of the engine relies on.
func (c *Config) Validate(_ context.Context) error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.APIBaseURL == "":
		return fmt.Errorf("%w: api_base_url must not be empty", ErrInvalidConfig)
	case c.RequestTimeoutMS <= 0:
		return fmt.Errorf("%w: request_timeout_ms must be positive", ErrInvalidConfig)
	case c.UpstreamRPS <= 0 || c.UpstreamBurst <= 0:
		return fmt.Errorf("%w: upstream_rps and upstream_burst must be positive", ErrInvalidConfig)
	case c.DebounceMS < 0:
		return fmt.Errorf("%w: debounce_ms must not be negative", ErrInvalidConfig)
	case c.FallbackTeamNumber <= 0:
		return fmt.Errorf("%w: fallback_team_number must be positive", ErrInvalidConfig)
	case c.PastEventLimit <= 0:
		return fmt.Errorf("%w: past_event_limit must be positive", ErrInvalidConfig)
	}
	return nil
}
