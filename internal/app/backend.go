package service

import (
	"context"

	"github.com/wikiscout/scoutcore/internal/adapters/scoutapi"
	"github.com/wikiscout/scoutcore/internal/domain/model"
	"github.com/wikiscout/scoutcore/internal/domain/normalize"
)

// Backend is the remote event-information service.
type Backend interface {
	ValidateToken(ctx context.Context) (scoutapi.Identity, error)
	GetMe(ctx context.Context) (scoutapi.Me, error)
	GetTodayEvents(ctx context.Context) ([]model.Event, error)
	SearchEvents(ctx context.Context, p scoutapi.SearchParams) ([]model.Event, error)
	GetTeams(ctx context.Context, eventCode string) (normalize.TeamsPayload, error)
	GetRankings(ctx context.Context, eventCode string) (normalize.RankingsPayload, error)
	GetMatches(ctx context.Context, eventCode string) (normalize.MatchesPayload, error)
	AddScoutingData(ctx context.Context, team int, eventCode string, entry model.ScoutingEntry) error
	Logout(ctx context.Context) error
}
