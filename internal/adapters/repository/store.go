// Package repository holds the active event's dataset as an atomically replaced snapshot.
package repository

import (
	"context"

	"github.com/wikiscout/scoutcore/internal/domain/model"
)

// Snapshot is the complete, immutable state of one event load.
type Snapshot struct {
	EventCode string
	EventName string
	LoadID    string
	Dataset   model.Dataset
	LoadedAt  int64 // unix milliseconds

	rankByTeam map[int]int
}

// Ranking returns the standings row of team.
func (s *Snapshot) Ranking(team int) (model.Ranking, bool) {
	i, ok := s.rankByTeam[team]
	if !ok {
		return model.Ranking{}, false
	}
	return s.Dataset.Rankings[i], true
}

// Store provides access to the active event snapshot.
type Store interface {
	// Replace swaps in a new snapshot for the given event. The previous dataset is discarded whole.
	Replace(ctx context.Context, eventCode, eventName, loadID string, d model.Dataset) (*Snapshot, error)

	// Current returns the active snapshot. Returns ErrNotFound if nothing has been loaded.
	Current(ctx context.Context) (*Snapshot, error)

	// Clear drops the active snapshot.
	Clear(ctx context.Context)
}
