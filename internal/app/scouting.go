package service

import (
	"context"
	"fmt"

	"github.com/wikiscout/scoutcore/internal/domain/model"
	"github.com/wikiscout/scoutcore/pkg/logger"
)

// SubmitScouting records entry about team at the active event. Backend failures wrap
// scoutapi.ErrWriteFailed.
func (s *Service) SubmitScouting(ctx context.Context, team int, entry model.ScoutingEntry) error {
	if team <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTeam, team)
	}
	code := s.Session().EventCode
	if code == "" {
		return ErrNoEvent
	}
	if err := s.backend.AddScoutingData(ctx, team, code, entry); err != nil {
		s.logger.Warn(ctx, "scouting submission failed",
			logger.Int("team", team), logger.String("event", code), logger.Error(err))
		return fmt.Errorf("submit scouting for team %d: %w", team, err)
	}
	s.logger.Info(ctx, "scouting submitted", logger.Int("team", team), logger.String("event", code))
	return nil
}
