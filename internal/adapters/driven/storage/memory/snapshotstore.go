package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/tawa-digital/tawa-content/internal/core/domain"
	"github.com/tawa-digital/tawa-content/internal/core/ports/driven"
)

// Ensure SnapshotStore implements the interface.
var _ driven.SnapshotStore = (*SnapshotStore)(nil)

// SnapshotStore is an in-memory implementation of driven.SnapshotStore.
type SnapshotStore struct {
	mu        sync.RWMutex
	runs      map[string]domain.ExportRun
	snapshots map[string]map[string]domain.Snapshot
}

// NewSnapshotStore creates a new in-memory snapshot store.
func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{
		runs:      make(map[string]domain.ExportRun),
		snapshots: make(map[string]map[string]domain.Snapshot),
	}
}

// BeginRun records the start of an export run.
func (s *SnapshotStore) BeginRun(_ context.Context, run domain.ExportRun) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[run.ID] = run
	s.snapshots[run.ID] = make(map[string]domain.Snapshot)
	return nil
}

// SaveSnapshot stores or replaces the view-model of one route.
func (s *SnapshotStore) SaveSnapshot(_ context.Context, snapshot domain.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	routes, ok := s.snapshots[snapshot.RunID]
	if !ok {
		return domain.ErrNotFound
	}
	snapshot.Payload = append([]byte(nil), snapshot.Payload...)
	routes[snapshot.Route] = snapshot
	return nil
}

// FinishRun marks a run complete.
func (s *SnapshotStore) FinishRun(_ context.Context, runID string, finishedAt time.Time, routes int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	run, ok := s.runs[runID]
	if !ok {
		return domain.ErrNotFound
	}
	run.FinishedAt = finishedAt
	run.Routes = routes
	s.runs[runID] = run
	return nil
}

// DeleteRun removes a run and its snapshots.
func (s *SnapshotStore) DeleteRun(_ context.Context, runID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.runs, runID)
	delete(s.snapshots, runID)
	return nil
}

// LatestRun returns the most recently finished run.
func (s *SnapshotStore) LatestRun(_ context.Context) (*domain.ExportRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var latest *domain.ExportRun
	for id := range s.runs {
		run := s.runs[id]
		if run.FinishedAt.IsZero() {
			continue
		}
		if latest == nil || run.FinishedAt.After(latest.FinishedAt) {
			latest = &run
		}
	}
	if latest == nil {
		return nil, domain.ErrNotFound
	}
	return latest, nil
}

// GetSnapshot returns the snapshot of a route within a run.
func (s *SnapshotStore) GetSnapshot(_ context.Context, runID, route string) (*domain.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot, ok := s.snapshots[runID][route]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &snapshot, nil
}

// ListSnapshots returns every snapshot of a run ordered by route.
func (s *SnapshotStore) ListSnapshots(_ context.Context, runID string) ([]domain.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	routes := s.snapshots[runID]
	result := make([]domain.Snapshot, 0, len(routes))
	for _, snapshot := range routes {
		result = append(result, snapshot)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Route < result[j].Route
	})
	return result, nil
}
