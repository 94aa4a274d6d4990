// Package service is the event-data engine: it owns the session, loads event data with
// per-call fallbacks, and serves the derived views consumed by the HTTP API.
package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/wikiscout/scoutcore/internal/adapters/debounce"
	"github.com/wikiscout/scoutcore/internal/adapters/kvstore"
	"github.com/wikiscout/scoutcore/internal/adapters/repository"
	"github.com/wikiscout/scoutcore/internal/domain/demo"
	"github.com/wikiscout/scoutcore/internal/domain/directory"
	"github.com/wikiscout/scoutcore/internal/domain/model"
	"github.com/wikiscout/scoutcore/pkg/logger"
	"github.com/wikiscout/scoutcore/pkg/metrics"
)

const (
	defaultFallbackTeam = 16072
	defaultDebounce     = 250 * time.Millisecond
	defaultPastLimit    = 50
	defaultFirstSeason  = 2019
	demoUserName        = "Demo User"
	defaultUserName     = "Team Member"
)

// Service implements the engine operations.
type Service struct {
	mu sync.Mutex

	// Collaborators
	backend Backend
	kv      kvstore.Store
	store   repository.Store
	synth   *demo.Synthesizer
	clock   clockwork.Clock

	// Configuration
	fallbackTeam  int
	debounceDelay time.Duration
	pastLimit     int
	firstSeason   int

	// State
	session   Session
	loadGen   uint64
	browser   *directory.Browser
	debouncer *debounce.Debouncer
	baseCtx   context.Context
	cancel    context.CancelFunc
	started   bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithKVStore sets the store remembering the last active event.
func WithKVStore(kv kvstore.Store) Option {
	return func(s *Service) {
		if kv != nil {
			s.kv = kv
		}
	}
}

// WithRepository sets the snapshot store holding the active dataset.
func WithRepository(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithSynthesizer sets the demo data generator.
func WithSynthesizer(synth *demo.Synthesizer) Option {
	return func(s *Service) {
		if synth != nil {
			s.synth = synth
		}
	}
}

// WithClock sets the clock used for seasons, today's date and debouncing.
func WithClock(c clockwork.Clock) Option {
	return func(s *Service) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithFallbackTeam sets the team used when the caller cannot be identified.
func WithFallbackTeam(team int) Option {
	return func(s *Service) {
		if team > 0 {
			s.fallbackTeam = team
		}
	}
}

// WithDebounce sets the quiet period before a directory query is applied.
func WithDebounce(d time.Duration) Option {
	return func(s *Service) {
		if d >= 0 {
			s.debounceDelay = d
		}
	}
}

// WithPastEventLimit caps the past bucket of the directory.
func WithPastEventLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.pastLimit = n
		}
	}
}

// WithFirstSeason sets the oldest season offered by the directory.
func WithFirstSeason(year int) Option {
	return func(s *Service) {
		if year > 0 {
			s.firstSeason = year
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service on top of backend.
func New(backend Backend, opts ...Option) *Service {
	s := &Service{
		backend:       backend,
		fallbackTeam:  defaultFallbackTeam,
		debounceDelay: defaultDebounce,
		pastLimit:     defaultPastLimit,
		firstSeason:   defaultFirstSeason,
		clock:         clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.kv == nil {
		s.kv = kvstore.NewMemory()
	}
	if s.store == nil {
		s.store = repository.NewSnapshotStore(repository.WithClock(s.clock))
	}
	if s.synth == nil {
		s.synth = demo.New()
	}
	if s.logger == nil {
		s.logger = logger.Nop()
	}
	s.logger = s.logger.Named("engine")
	s.session.TeamNumber = s.fallbackTeam
	s.session.TodayEvents = []model.Event{}
	s.browser = s.newBrowser(s.fallbackTeam)
	s.debouncer = debounce.New(s.debounceDelay,
		debounce.WithClock(s.clock),
		debounce.WithOnSuppress(metrics.RecordDebouncedQuery),
	)
	s.baseCtx, s.cancel = context.WithCancel(context.Background())
	return s
}

func (s *Service) newBrowser(team int) *directory.Browser {
	return directory.NewBrowser(team,
		directory.WithClock(s.clock),
		directory.WithPastLimit(s.pastLimit),
		directory.WithFirstSeason(s.firstSeason),
	)
}

// Start resolves the caller and the initial event, then loads it. It never fails on
// backend errors; they degrade to the fallback team, the demo event list or demo data.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return nil
	}
	s.started = true
	s.cancel()
	s.baseCtx, s.cancel = context.WithCancel(context.WithoutCancel(ctx))
	s.mu.Unlock()

	s.logger.Info(ctx, "starting engine...")
	s.authenticate(ctx)
	if code, name := s.resolveInitialEvent(ctx); code != "" {
		if _, err := s.SelectEvent(ctx, code, name); err != nil {
			s.logger.Warn(ctx, "initial event selection failed", logger.Error(err))
		}
	}

	sess := s.Session()
	s.logger.Info(ctx, "engine started",
		logger.Int("team", sess.TeamNumber),
		logger.Bool("demo", sess.Demo),
		logger.String("event", sess.EventCode),
	)
	return nil
}

// Stop cancels pending debounced work.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return
	}
	s.debouncer.Stop()
	s.cancel()
	s.started = false
	s.logger.Info(context.Background(), "engine stopped")
}

// Session returns a copy of the session.
func (s *Service) Session() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.clone()
}

func (s *Service) authenticate(ctx context.Context) {
	id, err := s.backend.ValidateToken(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil || id.TeamNumber <= 0 {
		if err != nil {
			s.logger.Warn(ctx, "token validation failed, using demo team", logger.Error(err))
		}
		s.session.TeamNumber = s.fallbackTeam
		s.session.UserName = demoUserName
		s.session.Demo = true
	} else {
		s.session.TeamNumber = id.TeamNumber
		s.session.UserName = id.Name
		if s.session.UserName == "" {
			s.session.UserName = defaultUserName
		}
		s.session.Demo = false
	}
	s.browser = s.newBrowser(s.session.TeamNumber)
}

// resolveInitialEvent picks the backend's event for the caller, then the remembered one,
// then the first of today's events.
func (s *Service) resolveInitialEvent(ctx context.Context) (code, name string) {
	me, err := s.backend.GetMe(ctx)
	if err != nil {
		s.logger.Warn(ctx, "fetching own event failed", logger.Error(err))
		metrics.RecordFetchFailure("get_me")
	} else if me.Found && me.Event.Code != "" {
		code, name = me.Event.Code, me.Event.Name
	}
	if code == "" {
		code = s.rememberedEvent(ctx)
	}

	today, err := s.backend.GetTodayEvents(ctx)
	if err != nil {
		s.logger.Warn(ctx, "fetching today's events failed", logger.Error(err))
		metrics.RecordFetchFailure("today_events")
	}
	if len(today) == 0 {
		today = demo.TodayEvents()
	}
	s.mu.Lock()
	s.session.TodayEvents = today
	s.mu.Unlock()

	if code == "" {
		code, name = today[0].Code, today[0].Name
	}
	if name == "" {
		for _, e := range today {
			if e.Code == code {
				name = e.Name
				break
			}
		}
	}
	return code, name
}

func (s *Service) rememberedEvent(ctx context.Context) string {
	code, err := s.kv.Get(ctx, kvstore.KeyCurrentEvent)
	if err != nil {
		if !errors.Is(err, kvstore.ErrNotFound) {
			s.logger.Warn(ctx, "reading remembered event failed", logger.Error(err))
		}
		return ""
	}
	return code
}

// Logout ends the upstream session, forgets the remembered event and drops the active
// dataset. In-flight loads are discarded.
func (s *Service) Logout(ctx context.Context) {
	if err := s.backend.Logout(ctx); err != nil {
		s.logger.Debug(ctx, "upstream logout failed", logger.Error(err))
	}
	if err := s.kv.Clear(ctx); err != nil {
		s.logger.Warn(ctx, "clearing local state failed", logger.Error(err))
	}
	s.debouncer.Cancel()

	s.mu.Lock()
	s.loadGen++
	s.session.EventCode = ""
	s.session.EventName = ""
	s.session.LoadID = ""
	s.session.Source = ""
	s.browser = s.newBrowser(s.session.TeamNumber)
	s.store.Clear(ctx)
	s.mu.Unlock()

	s.logger.Info(ctx, "logged out")
}
