package tui

import (
	"context"
	"sync"

	"github.com/tawa-digital/tawa-content/internal/core/domain"
)

// MockExportService is a mock implementation of driving.ExportService.
type MockExportService struct {
	mu        sync.Mutex
	routes    []string
	views     map[string]*domain.RouteView
	routesErr error
	viewErr   error
	viewCalls []string
}

func (m *MockExportService) Export(_ context.Context) (*domain.ExportRun, error) {
	return &domain.ExportRun{ID: "run"}, nil
}

func (m *MockExportService) Routes(_ context.Context) ([]string, error) {
	return m.routes, m.routesErr
}

func (m *MockExportService) View(_ context.Context, route string) (*domain.RouteView, error) {
	m.mu.Lock()
	m.viewCalls = append(m.viewCalls, route)
	m.mu.Unlock()
	if m.viewErr != nil {
		return nil, m.viewErr
	}
	if v, ok := m.views[route]; ok {
		return v, nil
	}
	return nil, domain.ErrNotFound
}

func (m *MockExportService) Watch(ctx context.Context, _ <-chan string) error {
	<-ctx.Done()
	return ctx.Err()
}
