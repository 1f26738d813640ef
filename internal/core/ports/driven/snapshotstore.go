package driven

import (
	"context"
	"time"

	"github.com/tawa-digital/tawa-content/internal/core/domain"
)

// SnapshotStore persists static exports of the site.
type SnapshotStore interface {
	// BeginRun records the start of an export run.
	BeginRun(ctx context.Context, run domain.ExportRun) error

	// SaveSnapshot stores or replaces the view-model of one route.
	SaveSnapshot(ctx context.Context, snapshot domain.Snapshot) error

	// FinishRun marks a run complete with the number of routes written.
	FinishRun(ctx context.Context, runID string, finishedAt time.Time, routes int) error

	// DeleteRun removes a run and its snapshots. Deleting an unknown run
	// is not an error.
	DeleteRun(ctx context.Context, runID string) error

	// LatestRun returns the most recently finished run.
	// Returns domain.ErrNotFound if no run has finished.
	LatestRun(ctx context.Context) (*domain.ExportRun, error)

	// GetSnapshot returns the snapshot of a route within a run.
	GetSnapshot(ctx context.Context, runID, route string) (*domain.Snapshot, error)

	// ListSnapshots returns every snapshot of a run ordered by route.
	ListSnapshots(ctx context.Context, runID string) ([]domain.Snapshot, error)
}
