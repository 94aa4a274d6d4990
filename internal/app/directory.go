package service

import (
	"context"

	"github.com/wikiscout/scoutcore/internal/adapters/scoutapi"
	"github.com/wikiscout/scoutcore/internal/domain/demo"
	"github.com/wikiscout/scoutcore/internal/domain/directory"
	"github.com/wikiscout/scoutcore/internal/domain/model"
	"github.com/wikiscout/scoutcore/pkg/logger"
	"github.com/wikiscout/scoutcore/pkg/metrics"
)

const callSearchEvents = "search_events"

// OpenDirectory resets the event directory to today's events and searches.
func (s *Service) OpenDirectory(ctx context.Context) directory.Results {
	s.debouncer.Cancel()
	s.mu.Lock()
	p := s.browser.Open()
	s.mu.Unlock()
	return s.search(ctx, p)
}

// SetDirectoryMode switches the directory tab, clearing the query, and searches.
func (s *Service) SetDirectoryMode(ctx context.Context, m directory.Mode) directory.Results {
	s.debouncer.Cancel()
	s.mu.Lock()
	p := s.browser.SetMode(m)
	s.mu.Unlock()
	return s.search(ctx, p)
}

// SetDirectorySeason selects the all-time season and searches. A pending query is dropped.
func (s *Service) SetDirectorySeason(ctx context.Context, year int) directory.Results {
	s.debouncer.Cancel()
	s.mu.Lock()
	p := s.browser.SetSeason(year)
	s.mu.Unlock()
	return s.search(ctx, p)
}

// DirectoryResults renders the directory as last applied.
func (s *Service) DirectoryResults() directory.Results {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.browser.Results()
}

// DirectorySeasons lists the selectable seasons.
func (s *Service) DirectorySeasons() []directory.Season {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.browser.Seasons()
}

// SetDirectoryQuery applies q once typing has been quiet for the debounce delay. Only the
// last query of a burst runs; results are read back with DirectoryResults.
func (s *Service) SetDirectoryQuery(q string) {
	s.mu.Lock()
	ctx := s.baseCtx
	s.mu.Unlock()
	s.debouncer.Schedule(ctx, func(ctx context.Context) {
		s.ApplyDirectoryQuery(ctx, q)
	})
}

// ApplyDirectoryQuery applies q immediately. Today's tab filters locally; the other tabs
// search with it. The dev sentinel activates the synthetic test event instead.
func (s *Service) ApplyDirectoryQuery(ctx context.Context, q string) directory.Results {
	s.mu.Lock()
	action := s.browser.SetQuery(q)
	p := s.browser.Params()
	s.mu.Unlock()

	switch action {
	case directory.ActionDev:
		return s.activateDev(ctx)
	case directory.ActionFetch:
		return s.search(ctx, p)
	default:
		return s.DirectoryResults()
	}
}

func (s *Service) activateDev(ctx context.Context) directory.Results {
	metrics.RecordDevActivation()
	ev := demo.DevEvent(s.clock.Now())
	s.logger.Info(ctx, "dev event activated", logger.String("event", ev.Code))
	if _, err := s.SelectEvent(ctx, ev.Code, ev.Name); err != nil {
		s.logger.Warn(ctx, "dev event selection failed", logger.Error(err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return directory.Results{
		Mode:    s.browser.Mode(),
		Season:  s.browser.Params().Season,
		Buckets: directory.Bucket([]model.Event{ev}, s.pastLimit),
	}
}

// search runs p against the backend outside the lock. The response is applied only if p is
// still current when it arrives.
func (s *Service) search(ctx context.Context, p directory.Params) directory.Results {
	s.mu.Lock()
	mode := s.browser.Mode()
	s.mu.Unlock()
	metrics.RecordDirectorySearch(string(mode))

	events, err := s.backend.SearchEvents(ctx, scoutapi.SearchParams{
		Season: p.Season,
		Team:   p.Team,
		Query:  p.Query,
	})
	if err != nil {
		s.logger.Warn(ctx, "event search failed, showing no events",
			logger.String("mode", string(mode)), logger.Error(err))
		metrics.RecordFetchFailure(callSearchEvents)
		events = nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.browser.Apply(p, events) {
		s.logger.Debug(ctx, "dropping stale search response")
	}
	return s.browser.Results()
}
