// Package directory implements the event directory: search modes, seasons, the today
// filter and result bucketing.
package directory

import (
	"strings"

	"github.com/jonboulle/clockwork"

	"github.com/wikiscout/scoutcore/internal/domain/model"
)

// Mode is the directory tab.
type Mode string

const (
	ModeToday   Mode = "today"
	ModeMyTeam  Mode = "my-team"
	ModeAllTime Mode = "all-time"
)

// ParseMode maps a request value to a Mode. "all" is accepted for all-time.
func ParseMode(s string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(ModeToday):
		return ModeToday, true
	case string(ModeMyTeam):
		return ModeMyTeam, true
	case string(ModeAllTime), "all":
		return ModeAllTime, true
	default:
		return "", false
	}
}

// Params is one event search request. A zero Team or empty Query is omitted upstream.
type Params struct {
	Season int    `json:"season"`
	Team   int    `json:"team,omitempty"`
	Query  string `json:"query,omitempty"`
}

// Action tells the caller what a query change requires.
type Action int

const (
	// ActionLocal re-filters the fetched set; no request is needed.
	ActionLocal Action = iota
	// ActionFetch requires a new search with Browser.Params.
	ActionFetch
	// ActionDev bypasses search and selects the dev event.
	ActionDev
)

func (a Action) String() string {
	switch a {
	case ActionLocal:
		return "local"
	case ActionFetch:
		return "fetch"
	case ActionDev:
		return "dev"
	default:
		return "unknown"
	}
}

const (
	defaultPastLimit   = 50
	defaultFirstSeason = 2019
	catalogLimit       = 500
)

// Option configures a Browser.
type Option func(*Browser)

// WithClock sets the clock used for the current season and today's date.
func WithClock(c clockwork.Clock) Option {
	return func(b *Browser) {
		if c != nil {
			b.clock = c
		}
	}
}

// WithPastLimit caps the past bucket.
func WithPastLimit(n int) Option {
	return func(b *Browser) {
		b.pastLimit = n
	}
}

// WithFirstSeason sets the oldest selectable season.
func WithFirstSeason(year int) Option {
	return func(b *Browser) {
		if year > 0 {
			b.firstSeason = year
		}
	}
}

// Browser is the state of one directory session. It is not safe for concurrent use.
type Browser struct {
	clock       clockwork.Clock
	pastLimit   int
	firstSeason int
	team        int

	mode    Mode
	season  int
	query   string
	fetched []model.Event
	catalog []model.Event
	known   map[string]struct{}
}

// NewBrowser creates a directory for team, opened on today's events.
func NewBrowser(team int, opts ...Option) *Browser {
	b := &Browser{
		clock:       clockwork.NewRealClock(),
		pastLimit:   defaultPastLimit,
		firstSeason: defaultFirstSeason,
		team:        team,
		known:       make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.Open()
	return b
}

// CurrentSeason is the season of the clock's current time.
func (b *Browser) CurrentSeason() int {
	return SeasonFor(b.clock.Now())
}

// Seasons lists the selectable seasons.
func (b *Browser) Seasons() []Season {
	return Seasons(b.CurrentSeason(), b.firstSeason)
}

// Open resets the directory to today's events of the current season with no query.
func (b *Browser) Open() Params {
	b.mode = ModeToday
	b.season = b.CurrentSeason()
	b.query = ""
	b.fetched = nil
	return b.Params()
}

// SetMode switches tab and clears the query. A new search is always needed.
func (b *Browser) SetMode(m Mode) Params {
	b.mode = m
	b.query = ""
	return b.Params()
}

// SetSeason selects the season used by the all-time tab. A new search is always needed.
func (b *Browser) SetSeason(year int) Params {
	b.season = year
	return b.Params()
}

// SetQuery records a new query and reports what it requires.
func (b *Browser) SetQuery(q string) Action {
	if IsDevSentinel(q) {
		return ActionDev
	}
	b.query = strings.ToLower(strings.TrimSpace(q))
	if b.mode == ModeToday {
		return ActionLocal
	}
	return ActionFetch
}

// Mode is the active tab.
func (b *Browser) Mode() Mode { return b.mode }

// Season is the selected season.
func (b *Browser) Season() int { return b.season }

// Query is the normalized query.
func (b *Browser) Query() string { return b.query }

// Params returns the search request for the current state. Today and my-team search the
// current season; only all-time uses the selected one. The team is sent in my-team mode only.
// Today's query is applied locally and never sent.
func (b *Browser) Params() Params {
	p := Params{Season: b.CurrentSeason()}
	switch b.mode {
	case ModeMyTeam:
		p.Team = b.team
		p.Query = b.query
	case ModeAllTime:
		p.Season = b.season
		p.Query = b.query
	}
	return p
}

// Apply stores a search response issued with p. Responses for anything but the current
// params are stale and dropped; Apply reports whether the events were kept.
func (b *Browser) Apply(p Params, events []model.Event) bool {
	if p != b.Params() {
		return false
	}
	b.remember(events)
	if b.mode == ModeToday {
		events = Today(events, b.clock.Now())
	}
	b.fetched = events
	return true
}

func (b *Browser) remember(events []model.Event) {
	for _, e := range events {
		if _, ok := b.known[e.Code]; ok || len(b.catalog) >= catalogLimit {
			continue
		}
		b.known[e.Code] = struct{}{}
		b.catalog = append(b.catalog, e)
	}
}

// Results is the rendered directory.
type Results struct {
	Mode        Mode          `json:"mode"`
	Season      int           `json:"season"`
	Query       string        `json:"query"`
	Buckets     Buckets       `json:"buckets"`
	Suggestions []model.Event `json:"suggestions,omitempty"`
}

// Results groups the fetched events. The text query filters locally in today mode only,
// since the other tabs already searched with it. Empty results with a query carry fuzzy
// suggestions from every event seen so far.
func (b *Browser) Results() Results {
	events := b.fetched
	if b.mode == ModeToday {
		events = MatchText(events, b.query)
	}
	r := Results{
		Mode:    b.mode,
		Season:  b.Params().Season,
		Query:   b.query,
		Buckets: Bucket(events, b.pastLimit),
	}
	if r.Buckets.Len() == 0 && b.query != "" {
		r.Suggestions = Suggest(b.query, b.catalog, maxSuggestions)
	}
	return r
}
