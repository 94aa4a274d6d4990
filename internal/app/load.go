package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/wikiscout/scoutcore/internal/adapters/kvstore"
	"github.com/wikiscout/scoutcore/internal/domain/model"
	"github.com/wikiscout/scoutcore/internal/domain/normalize"
	"github.com/wikiscout/scoutcore/pkg/logger"
	"github.com/wikiscout/scoutcore/pkg/metrics"
)

// Names of the three event data calls, as used in logs, metrics and LoadResult.Failures.
const (
	CallTeams    = "teams"
	CallRankings = "rankings"
	CallMatches  = "matches"
)

// LoadResult reports the outcome of one event load.
type LoadResult struct {
	EventCode string       `json:"eventCode"`
	LoadID    string       `json:"loadId,omitempty"`
	Source    model.Source `json:"source,omitempty"`
	// Applied is false when a newer selection superseded this load.
	Applied  bool     `json:"applied"`
	Failures []string `json:"failures,omitempty"`
	Partial  int      `json:"partial,omitempty"`
}

// SelectEvent makes code the active event, remembers it, and loads its data. Only the most
// recent selection is ever applied; older loads still in flight are discarded on arrival.
func (s *Service) SelectEvent(ctx context.Context, code, name string) (LoadResult, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return LoadResult{}, fmt.Errorf("%w: empty", ErrInvalidEvent)
	}
	if name == "" {
		name = code
	}

	s.mu.Lock()
	s.loadGen++
	gen := s.loadGen
	s.session.EventCode = code
	s.session.EventName = name
	s.mu.Unlock()

	if err := s.kv.Set(ctx, kvstore.KeyCurrentEvent, code); err != nil {
		s.logger.Warn(ctx, "remembering event failed", logger.String("event", code), logger.Error(err))
	}
	return s.load(ctx, gen, code, name)
}

func (s *Service) load(ctx context.Context, gen uint64, code, name string) (LoadResult, error) {
	start := s.clock.Now()
	log := s.logger.With(logger.String("event", code))
	log.Debug(ctx, "loading event")

	// A failed call leaves its payload nil, which normalizes to an empty slice.
	var (
		teams    *normalize.TeamsPayload
		rankings *normalize.RankingsPayload
		matches  *normalize.MatchesPayload
		failed   [3]bool
	)
	fetch := func(i int, call string, fn func(context.Context) error) func() error {
		return func() error {
			if err := fn(ctx); err != nil {
				log.Warn(ctx, "event data call failed, using empty result",
					logger.String("call", call), logger.Error(err))
				metrics.RecordFetchFailure(call)
				failed[i] = true
			}
			return nil
		}
	}

	var g errgroup.Group
	g.Go(fetch(0, CallTeams, func(ctx context.Context) error {
		p, err := s.backend.GetTeams(ctx, code)
		if err == nil {
			teams = &p
		}
		return err
	}))
	g.Go(fetch(1, CallRankings, func(ctx context.Context) error {
		p, err := s.backend.GetRankings(ctx, code)
		if err == nil {
			rankings = &p
		}
		return err
	}))
	g.Go(fetch(2, CallMatches, func(ctx context.Context) error {
		p, err := s.backend.GetMatches(ctx, code)
		if err == nil {
			matches = &p
		}
		return err
	}))
	_ = g.Wait()

	res := LoadResult{EventCode: code}
	for i, call := range []string{CallTeams, CallRankings, CallMatches} {
		if failed[i] {
			res.Failures = append(res.Failures, call)
		}
	}

	norm := normalize.Normalize(teams, rankings, matches)
	res.Partial = norm.Partial
	for i := 0; i < norm.Partial; i++ {
		metrics.RecordPartialMatch()
	}
	dataset := norm.Dataset
	if dataset.Empty() {
		log.Info(ctx, "no event data available, using demo dataset")
		dataset = s.synth.Dataset()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.loadGen {
		metrics.RecordStaleLoadDropped()
		log.Info(ctx, "dropping superseded event load")
		return res, nil
	}

	loadID := uuid.NewString()
	if _, err := s.store.Replace(ctx, code, name, loadID, dataset); err != nil {
		return res, fmt.Errorf("store event %s: %w", code, err)
	}
	s.session.LoadID = loadID
	s.session.Source = dataset.Source

	elapsed := s.clock.Since(start)
	metrics.RecordEventLoad(string(dataset.Source))
	metrics.RecordEventLoadDuration(float64(elapsed.Milliseconds()))
	log.Info(ctx, "event loaded",
		logger.String("source", string(dataset.Source)),
		logger.Int("teams", len(dataset.Teams)),
		logger.Int("matches", len(dataset.Matches)),
		logger.Int("partial", norm.Partial),
		logger.Duration("took", elapsed),
	)

	res.LoadID = loadID
	res.Source = dataset.Source
	res.Applied = true
	return res, nil
}
