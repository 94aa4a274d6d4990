// Package scoutapi is the HTTP client for the remote event-information service.
package scoutapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/wikiscout/scoutcore/internal/domain/model"
	"github.com/wikiscout/scoutcore/internal/domain/normalize"
	"github.com/wikiscout/scoutcore/pkg/logger"
	"github.com/wikiscout/scoutcore/pkg/metrics"
)

const (
	defaultTimeout = 10 * time.Second
	maxBodyBytes   = 8 << 20
	userAgent      = "scoutcore/1.0"
)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the underlying http.Client. The client is copied, never modified.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithToken sets the bearer token sent on every request.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = strings.TrimSpace(token)
	}
}

// WithTimeout sets the per-request timeout, whichever http.Client is in use.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithRateLimit caps outgoing requests with a token bucket. A non-positive rps disables limiting.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithLogger sets the client logger.
func WithLogger(l logger.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// Client talks to the event-information service.
type Client struct {
	base    *url.URL
	token   string
	http    *http.Client
	timeout time.Duration
	limiter *rate.Limiter
	log     logger.Logger
}

// New creates a Client for the service rooted at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, baseURL)
	}
	c := &Client{
		base: u,
		http: &http.Client{Timeout: defaultTimeout},
		log:  logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		hc := *c.http
		hc.Timeout = c.timeout
		c.http = &hc
	}
	return c, nil
}

// ValidateToken resolves the caller's identity.
func (c *Client) ValidateToken(ctx context.Context) (Identity, error) {
	var out Identity
	err := c.do(ctx, "validate_token", http.MethodGet, "/auth/validate", nil, nil, &out)
	return out, err
}

// GetMe returns the caller's registered event.
func (c *Client) GetMe(ctx context.Context) (Me, error) {
	var out Me
	err := c.do(ctx, "get_me", http.MethodGet, "/events/me", nil, nil, &out)
	return out, err
}

// GetTodayEvents lists events happening today.
func (c *Client) GetTodayEvents(ctx context.Context) ([]model.Event, error) {
	var out EventList
	if err := c.do(ctx, "today_events", http.MethodGet, "/events/today", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Events, nil
}

// SearchEvents searches the event directory.
func (c *Client) SearchEvents(ctx context.Context, p SearchParams) ([]model.Event, error) {
	q := url.Values{}
	if p.Season > 0 {
		q.Set("season", strconv.Itoa(p.Season))
	}
	if p.Team > 0 {
		q.Set("team", strconv.Itoa(p.Team))
	}
	if p.Query != "" {
		q.Set("query", p.Query)
	}
	var out EventList
	if err := c.do(ctx, "search_events", http.MethodGet, "/events/search", q, nil, &out); err != nil {
		return nil, err
	}
	return out.Events, nil
}

// GetTeams fetches an event roster.
func (c *Client) GetTeams(ctx context.Context, eventCode string) (normalize.TeamsPayload, error) {
	var out normalize.TeamsPayload
	err := c.do(ctx, "teams", http.MethodGet, eventPath(eventCode, "teams"), nil, nil, &out)
	return out, err
}

// GetRankings fetches event standings.
func (c *Client) GetRankings(ctx context.Context, eventCode string) (normalize.RankingsPayload, error) {
	var out normalize.RankingsPayload
	err := c.do(ctx, "rankings", http.MethodGet, eventPath(eventCode, "rankings"), nil, nil, &out)
	return out, err
}

// GetMatches fetches an event schedule.
func (c *Client) GetMatches(ctx context.Context, eventCode string) (normalize.MatchesPayload, error) {
	var out normalize.MatchesPayload
	err := c.do(ctx, "matches", http.MethodGet, eventPath(eventCode, "matches"), nil, nil, &out)
	return out, err
}

// AddScoutingData submits a scouting entry for team at event. Any failure wraps ErrWriteFailed.
func (c *Client) AddScoutingData(ctx context.Context, team int, eventCode string, entry model.ScoutingEntry) error {
	body := scoutingRequest{Team: team, Event: eventCode, Data: entry.Values()}
	if err := c.do(ctx, "add_scouting", http.MethodPost, "/scouting", nil, body, nil); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	return nil
}

// Logout ends the upstream session.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, "logout", http.MethodPost, "/auth/logout", nil, nil, nil)
}

func eventPath(code, resource string) string {
	return "/events/" + url.PathEscape(code) + "/" + resource
}

func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrTransport, op, err)
		}
	}

	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + path
	u.RawQuery = query.Encode()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrDecode, op, err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrTransport, op, err)
	}
	reqID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Request-ID", reqID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	latency := float64(time.Since(start).Milliseconds())
	if err != nil {
		metrics.RecordUpstreamRequest(op, "error", latency)
		return fmt.Errorf("%w: %s: %w", ErrTransport, op, err)
	}
	defer resp.Body.Close()
	metrics.RecordUpstreamRequest(op, strconv.Itoa(resp.StatusCode), latency)

	c.log.Debug(ctx, "upstream call",
		logger.String("op", op),
		logger.String("request_id", reqID),
		logger.Int("status", resp.StatusCode),
		logger.Any("latency_ms", latency),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return &StatusError{Op: op, Code: resp.StatusCode}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(out); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDecode, op, err)
	}
	return nil
}
