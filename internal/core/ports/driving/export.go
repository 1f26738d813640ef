package driving

import (
	"context"

	"github.com/tawa-digital/tawa-content/internal/core/domain"
)

// ExportService writes every route's view-model to a snapshot store.
type ExportService interface {
	// Export runs a full export and returns the finished run.
	Export(ctx context.Context) (*domain.ExportRun, error)

	// Routes lists the routes an export would write, without writing them.
	Routes(ctx context.Context) ([]string, error)

	// View assembles one route's view-model without persisting it.
	View(ctx context.Context, route string) (*domain.RouteView, error)

	// Watch re-exports after each burst of changes until ctx is cancelled.
	Watch(ctx context.Context, changes <-chan string) error
}
