package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tawa-digital/tawa-content/internal/core/domain"
	"github.com/tawa-digital/tawa-content/internal/core/ports/driven"
	"github.com/tawa-digital/tawa-content/internal/core/ports/driving"
	"github.com/tawa-digital/tawa-content/internal/logger"
)

// Ensure ExportService implements the interface.
var _ driving.ExportService = (*ExportService)(nil)

// DefaultDebounce is how long Watch waits for changes to settle.
const DefaultDebounce = 250 * time.Millisecond

// ExportService writes every route's view-model into a snapshot store.
type ExportService struct {
	content  driving.ContentService
	store    driven.SnapshotStore
	now      func() time.Time
	debounce time.Duration
	onRun    func(*domain.ExportRun, error)

	// mu serialises runs so Watch never overlaps an export.
	mu sync.Mutex
}

// NewExportService creates a new export service.
func NewExportService(content driving.ContentService, store driven.SnapshotStore) *ExportService {
	return &ExportService{
		content:  content,
		store:    store,
		now:      time.Now,
		debounce: DefaultDebounce,
	}
}

// SetClock replaces the time source used to stamp runs.
func (s *ExportService) SetClock(now func() time.Time) {
	s.now = now
}

// SetDebounce sets the quiet period Watch waits for before exporting.
func (s *ExportService) SetDebounce(d time.Duration) {
	s.debounce = d
}

// SetReporter registers a callback invoked after each watched export.
func (s *ExportService) SetReporter(fn func(*domain.ExportRun, error)) {
	s.onRun = fn
}

// route is one unit of export work.
type route struct {
	path  string
	kind  string
	build func(ctx context.Context) (any, error)
}

// Export runs a full export and returns the finished run.
func (s *ExportService) Export(ctx context.Context) (*domain.ExportRun, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	logger.Section("Export")

	routes, err := s.plan(ctx)
	if err != nil {
		return nil, err
	}

	run := domain.ExportRun{ID: uuid.NewString(), StartedAt: s.now()}
	if err := s.store.BeginRun(ctx, run); err != nil {
		return nil, fmt.Errorf("begin run: %w", err)
	}
	logger.Debug("Run %s: %d route(s)", run.ID, len(routes))

	if err := s.writeRoutes(ctx, run.ID, routes); err != nil {
		if derr := s.store.DeleteRun(context.WithoutCancel(ctx), run.ID); derr != nil {
			logger.Warn("Failed to discard run %s: %v", run.ID, derr)
		}
		return nil, err
	}

	run.FinishedAt = s.now()
	run.Routes = len(routes)
	if err := s.store.FinishRun(ctx, run.ID, run.FinishedAt, run.Routes); err != nil {
		return nil, fmt.Errorf("finish run: %w", err)
	}
	logger.Info("Export %s finished: %d route(s)", run.ID, run.Routes)
	return &run, nil
}

// writeRoutes assembles and saves every route of a run, stopping at the
// first failure.
func (s *ExportService) writeRoutes(ctx context.Context, runID string, routes []route) error {
	for _, r := range routes {
		view, err := r.build(ctx)
		if err != nil {
			return fmt.Errorf("export %s: %w", r.path, err)
		}
		payload, err := json.Marshal(view)
		if err != nil {
			return fmt.Errorf("encode %s: %w", r.path, err)
		}
		if err := s.store.SaveSnapshot(ctx, domain.Snapshot{
			RunID:   runID,
			Route:   r.path,
			Kind:    r.kind,
			Payload: payload,
		}); err != nil {
			return fmt.Errorf("save %s: %w", r.path, err)
		}
		logger.Debug("Saved %s (%s, %d bytes)", r.path, r.kind, len(payload))
	}
	return nil
}

// Routes lists the routes an export would write.
func (s *ExportService) Routes(ctx context.Context) ([]string, error) {
	routes, err := s.plan(ctx)
	if err != nil {
		return nil, err
	}
	paths := make([]string, len(routes))
	for i, r := range routes {
		paths[i] = r.path
	}
	return paths, nil
}

// Watch re-exports once changes stop arriving for the debounce period.
// It returns nil when changes is closed and ctx.Err() on cancellation.
// Export failures are reported, not returned, so watching continues.
func (s *ExportService) Watch(ctx context.Context, changes <-chan string) error {
	var settle <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case path, ok := <-changes:
			if !ok {
				return nil
			}
			logger.Debug("Change: %s", path)
			settle = time.After(s.debounce)

		case <-settle:
			settle = nil
			run, err := s.Export(ctx)
			if err != nil {
				logger.Error("export failed: %v", err)
			}
			if s.onRun != nil {
				s.onRun(run, err)
			}
		}
	}
}

// View assembles the view-model of a single route without persisting it.
// Unknown route shapes return domain.ErrInvalidInput.
func (s *ExportService) View(ctx context.Context, path string) (*domain.RouteView, error) {
	r, err := s.routeFor(path)
	if err != nil {
		return nil, err
	}
	view, err := r.build(ctx)
	if err != nil {
		return nil, fmt.Errorf("view %s: %w", path, err)
	}
	return &domain.RouteView{Route: r.path, Kind: r.kind, View: view}, nil
}

// plan enumerates every route with the builder of its view-model.
func (s *ExportService) plan(ctx context.Context) ([]route, error) {
	pages, err := s.content.PageIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("plan pages: %w", err)
	}
	posts, err := s.content.PostIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("plan posts: %w", err)
	}

	routes := s.fixedRoutes()
	for _, id := range pages {
		routes = append(routes, s.pageRoute(id.Params.ID))
	}
	for _, id := range posts {
		routes = append(routes, s.postRoute(id.Params.ID))
	}
	return routes, nil
}

func (s *ExportService) fixedRoutes() []route {
	return []route{
		{domain.RouteHome, domain.KindHome, func(ctx context.Context) (any, error) { return s.content.HomePage(ctx) }},
		{domain.RouteArticles, domain.KindBlogIndex, func(ctx context.Context) (any, error) { return s.content.BlogIndex(ctx) }},
		{domain.RoutePosts, domain.KindPosts, func(ctx context.Context) (any, error) { return s.content.AllPosts(ctx) }},
		{domain.RouteHeader, domain.KindHeader, func(ctx context.Context) (any, error) { return s.content.Header(ctx) }},
		{domain.RouteFooter, domain.KindFooter, func(ctx context.Context) (any, error) { return s.content.Footer(ctx) }},
		{domain.RouteEvents, domain.KindEvents, func(ctx context.Context) (any, error) { return s.content.Events(ctx) }},
	}
}

func (s *ExportService) pageRoute(uid string) route {
	return route{
		path:  domain.ResolvePath(domain.TypeGeneralPage, uid),
		kind:  domain.KindPage,
		build: func(ctx context.Context) (any, error) { return s.content.Page(ctx, uid) },
	}
}

func (s *ExportService) postRoute(uid string) route {
	return route{
		path:  domain.ResolvePath(domain.TypeBlogPost, uid),
		kind:  domain.KindPost,
		build: func(ctx context.Context) (any, error) { return s.content.Post(ctx, uid) },
	}
}

// routeFor maps a route path back to its builder.
func (s *ExportService) routeFor(path string) (route, error) {
	for _, r := range s.fixedRoutes() {
		if r.path == path {
			return r, nil
		}
	}

	if uid, ok := strings.CutPrefix(path, domain.RouteArticles+"/"); ok {
		if isSlug(uid) {
			return s.postRoute(uid), nil
		}
	} else if uid, ok := strings.CutPrefix(path, domain.PathRoot); ok && isSlug(uid) {
		return s.pageRoute(uid), nil
	}
	return route{}, fmt.Errorf("%w: unknown route %q", domain.ErrInvalidInput, path)
}

func isSlug(s string) bool {
	return s != "" && !strings.Contains(s, "/")
}
