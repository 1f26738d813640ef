package driving

import (
	"context"

	"github.com/tawa-digital/tawa-content/internal/core/domain"
)

// ContentService assembles render-ready view-models for each page type.
// Every call is one-shot: nothing is cached between calls.
type ContentService interface {
	// HomePage returns the site root view-model.
	HomePage(ctx context.Context) (*domain.HomePage, error)

	// Page returns a general page by UID.
	Page(ctx context.Context, uid string) (*domain.GeneralPage, error)

	// PageIDs enumerates general page UIDs for static path generation.
	PageIDs(ctx context.Context) ([]domain.PageID, error)

	// BlogIndex returns the article listing page view-model.
	BlogIndex(ctx context.Context) (*domain.BlogIndex, error)

	// Post returns a blog post by UID with its related posts.
	Post(ctx context.Context, uid string) (*domain.Post, error)

	// PostIDs enumerates blog post UIDs for static path generation.
	PostIDs(ctx context.Context) ([]domain.PageID, error)

	// AllPosts lists every blog post, newest first.
	AllPosts(ctx context.Context) ([]domain.Post, error)

	// Header returns the site header view-model.
	Header(ctx context.Context) (*domain.Header, error)

	// Footer returns the site footer view-model.
	Footer(ctx context.Context) (*domain.Footer, error)

	// Events lists events from today onwards, soonest first.
	Events(ctx context.Context) ([]domain.Event, error)
}
