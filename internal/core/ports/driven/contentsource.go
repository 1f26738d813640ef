package driven

import (
	"context"

	"github.com/tawa-digital/tawa-content/internal/core/domain"
)

// ContentSource queries typed documents from the headless CMS.
// Implementations must be safe for concurrent use.
type ContentSource interface {
	// Query returns one page of documents matching every predicate.
	Query(ctx context.Context, q domain.Query) (*domain.QueryResult, error)

	// GetSingle returns the only document of a singleton type.
	// Returns domain.ErrNotFound if none exists.
	GetSingle(ctx context.Context, docType domain.DocumentType) (*domain.Document, error)

	// GetByUID returns the document of docType with the given UID.
	// Returns domain.ErrNotFound if none exists.
	GetByUID(ctx context.Context, docType domain.DocumentType, uid string) (*domain.Document, error)

	// GetByIDs fetches several documents in one lookup. Unknown IDs are
	// omitted from the result rather than reported as errors.
	GetByIDs(ctx context.Context, ids []string) ([]domain.Document, error)
}

// ContentWatcher is implemented by content sources that can report local
// changes, such as the filesystem source.
type ContentWatcher interface {
	// Watch emits the path of each changed document until ctx is cancelled.
	Watch(ctx context.Context) (<-chan string, error)
}
