package mcp

import (
	"context"

	"github.com/tawa-digital/tawa-content/internal/core/domain"
)

// mockContentService is a mock implementation of driving.ContentService.
type mockContentService struct {
	home    *domain.HomePage
	pages   map[string]*domain.GeneralPage
	posts   map[string]*domain.Post
	listing []domain.Post
	ids     []domain.PageID
	header  *domain.Header
	footer  *domain.Footer
	events  []domain.Event
	err     error
}

func (m *mockContentService) HomePage(_ context.Context) (*domain.HomePage, error) {
	return m.home, m.err
}

func (m *mockContentService) Page(_ context.Context, uid string) (*domain.GeneralPage, error) {
	if m.err != nil {
		return nil, m.err
	}
	page, ok := m.pages[uid]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return page, nil
}

func (m *mockContentService) PageIDs(_ context.Context) ([]domain.PageID, error) {
	return m.ids, m.err
}

func (m *mockContentService) BlogIndex(_ context.Context) (*domain.BlogIndex, error) {
	return &domain.BlogIndex{Title: "Articles"}, m.err
}

func (m *mockContentService) Post(_ context.Context, uid string) (*domain.Post, error) {
	if m.err != nil {
		return nil, m.err
	}
	post, ok := m.posts[uid]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return post, nil
}

func (m *mockContentService) PostIDs(_ context.Context) ([]domain.PageID, error) {
	return m.ids, m.err
}

func (m *mockContentService) AllPosts(_ context.Context) ([]domain.Post, error) {
	return m.listing, m.err
}

func (m *mockContentService) Header(_ context.Context) (*domain.Header, error) {
	return m.header, m.err
}

func (m *mockContentService) Footer(_ context.Context) (*domain.Footer, error) {
	return m.footer, m.err
}

func (m *mockContentService) Events(_ context.Context) ([]domain.Event, error) {
	return m.events, m.err
}

// mockExportService is a mock implementation of driving.ExportService.
type mockExportService struct {
	routes []string
	err    error
}

func (m *mockExportService) Export(_ context.Context) (*domain.ExportRun, error) {
	return &domain.ExportRun{ID: "run"}, m.err
}

func (m *mockExportService) Routes(_ context.Context) ([]string, error) {
	return m.routes, m.err
}

func (m *mockExportService) Watch(ctx context.Context, _ <-chan string) error {
	<-ctx.Done()
	return ctx.Err()
}

func (m *mockExportService) View(_ context.Context, route string) (*domain.RouteView, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.RouteView{Route: route, Kind: "page"}, nil
}
