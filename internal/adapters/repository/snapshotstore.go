package repository

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/jonboulle/clockwork"

	"github.com/wikiscout/scoutcore/internal/domain/model"
	"github.com/wikiscout/scoutcore/pkg/metrics"
)

// SnapshotStore is an in-memory Store. Readers never block writers: each Replace publishes a
// freshly built snapshot through an atomic pointer.
type SnapshotStore struct {
	clock    clockwork.Clock
	snapshot atomic.Pointer[Snapshot]
}

// NewSnapshotStore constructs an empty store.
func NewSnapshotStore(opts ...Option) *SnapshotStore {
	s := &SnapshotStore{clock: clockwork.NewRealClock()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Replace implements Store.Replace.
func (s *SnapshotStore) Replace(_ context.Context, eventCode, eventName, loadID string, d model.Dataset) (*Snapshot, error) {
	if strings.TrimSpace(eventCode) == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidEvent)
	}
	if eventName == "" {
		eventName = eventCode
	}

	snap := &Snapshot{
		EventCode:  eventCode,
		EventName:  eventName,
		LoadID:     loadID,
		Dataset:    d,
		LoadedAt:   s.clock.Now().UnixMilli(),
		rankByTeam: make(map[int]int, len(d.Rankings)),
	}
	for i, r := range d.Rankings {
		if _, dup := snap.rankByTeam[r.TeamNumber]; !dup {
			snap.rankByTeam[r.TeamNumber] = i
		}
	}

	s.snapshot.Store(snap)
	metrics.UpdateDatasetSize(len(d.Teams), len(d.Rankings), len(d.Matches))
	return snap, nil
}

// Current implements Store.Current.
func (s *SnapshotStore) Current(_ context.Context) (*Snapshot, error) {
	snap := s.snapshot.Load()
	if snap == nil {
		return nil, ErrNotFound
	}
	return snap, nil
}

// Clear implements Store.Clear.
func (s *SnapshotStore) Clear(_ context.Context) {
	s.snapshot.Store(nil)
	metrics.UpdateDatasetSize(0, 0, 0)
}
