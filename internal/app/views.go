package service

import (
	"context"

	"github.com/wikiscout/scoutcore/internal/adapters/repository"
	"github.com/wikiscout/scoutcore/internal/domain/matchview"
	"github.com/wikiscout/scoutcore/internal/domain/model"
)

// snapshot returns the active snapshot. Views render empty before the first load.
func (s *Service) snapshot(ctx context.Context) *repository.Snapshot {
	snap, err := s.store.Current(ctx)
	if err != nil {
		return &repository.Snapshot{Dataset: model.Dataset{
			Teams:    []model.Team{},
			Rankings: []model.Ranking{},
			Matches:  []model.Match{},
		}}
	}
	return snap
}

// Dataset returns the active event's dataset.
func (s *Service) Dataset(ctx context.Context) model.Dataset {
	return s.snapshot(ctx).Dataset
}

// Rankings returns the standings in rank order.
func (s *Service) Rankings(ctx context.Context) []model.Ranking {
	return s.snapshot(ctx).Dataset.Rankings
}

// Teams returns the event roster.
func (s *Service) Teams(ctx context.Context) []model.Team {
	return s.snapshot(ctx).Dataset.Teams
}

// Matches renders the match list under f from the session team's point of view.
func (s *Service) Matches(ctx context.Context, f matchview.Filter) matchview.View {
	team := s.Session().TeamNumber
	return matchview.Build(s.snapshot(ctx).Dataset.Matches, f, team)
}

// History lists team's completed matches.
func (s *Service) History(ctx context.Context, team int) []matchview.HistoryEntry {
	return matchview.History(s.snapshot(ctx).Dataset.Matches, team)
}

// TeamStats returns the team card for team, looked up through the snapshot's rank index.
func (s *Service) TeamStats(ctx context.Context, team int) matchview.Stats {
	snap := s.snapshot(ctx)
	r, ok := snap.Ranking(team)
	return matchview.TeamCard(snap.Dataset.Matches, team, r, ok)
}
