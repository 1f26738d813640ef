package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tawa-digital/tawa-content/internal/core/domain"
)

// stubContent is a mock implementation of driving.ContentService.
type stubContent struct {
	posts map[string]*domain.Post
	err   error
}

func (s *stubContent) HomePage(_ context.Context) (*domain.HomePage, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.HomePage{Title: domain.PlainText("Tawa"), ShowEvents: true}, nil
}

func (s *stubContent) Page(_ context.Context, uid string) (*domain.GeneralPage, error) {
	if s.err != nil {
		return nil, s.err
	}
	if uid != "about" {
		return nil, fmt.Errorf("get page %q: %w", uid, domain.ErrNotFound)
	}
	return &domain.GeneralPage{UID: uid, HeadingType: domain.HeadingTypeStandard}, nil
}

func (s *stubContent) PageIDs(_ context.Context) ([]domain.PageID, error) {
	return []domain.PageID{domain.NewPageID("about")}, s.err
}

func (s *stubContent) BlogIndex(_ context.Context) (*domain.BlogIndex, error) {
	return &domain.BlogIndex{Title: "Articles"}, s.err
}

func (s *stubContent) Post(_ context.Context, uid string) (*domain.Post, error) {
	if s.err != nil {
		return nil, s.err
	}
	post, ok := s.posts[uid]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return post, nil
}

func (s *stubContent) PostIDs(_ context.Context) ([]domain.PageID, error) {
	return []domain.PageID{domain.NewPageID("hello")}, s.err
}

func (s *stubContent) AllPosts(_ context.Context) ([]domain.Post, error) {
	return []domain.Post{}, s.err
}

func (s *stubContent) Header(_ context.Context) (*domain.Header, error) {
	return &domain.Header{HeaderLinks: []domain.LinkDescriptor{}}, s.err
}

func (s *stubContent) Footer(_ context.Context) (*domain.Footer, error) {
	return &domain.Footer{FooterLinks: []domain.LinkDescriptor{}}, s.err
}

func (s *stubContent) Events(_ context.Context) ([]domain.Event, error) {
	return []domain.Event{}, s.err
}

func setupTestServer(t *testing.T, content *stubContent) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return NewServer(":0", content)
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, path, http.NoBody)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func TestServer_Health(t *testing.T) {
	s := setupTestServer(t, &stubContent{})

	w := get(t, s, "/health")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestServer_Routes(t *testing.T) {
	s := setupTestServer(t, &stubContent{
		posts: map[string]*domain.Post{
			"hello": {URL: "/articles/hello", Title: "Hello", Tags: []string{}, Related: []domain.Post{}},
		},
	})

	tests := []struct {
		path     string
		contains string
	}{
		{path: "/api/home", contains: `"showEvents":true`},
		{path: "/api/pages/about", contains: `"headingType":"Standard"`},
		{path: "/api/paths/pages", contains: `[{"params":{"id":"about"}}]`},
		{path: "/api/blog", contains: `{"title":"Articles"}`},
		{path: "/api/posts", contains: `[]`},
		{path: "/api/posts/hello", contains: `"related":[]`},
		{path: "/api/paths/posts", contains: `[{"params":{"id":"hello"}}]`},
		{path: "/api/layout/header", contains: `"headerLinks":[]`},
		{path: "/api/layout/footer", contains: `"footerLinks":[]`},
		{path: "/api/events", contains: `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := get(t, s, tt.path)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
			assert.Contains(t, w.Body.String(), tt.contains)
		})
	}
}

func TestServer_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		path   string
		status int
	}{
		{name: "unknown page", path: "/api/pages/missing", status: http.StatusNotFound},
		{name: "unknown post", path: "/api/posts/missing", status: http.StatusNotFound},
		{
			name:   "invalid input",
			err:    fmt.Errorf("get page: %w", domain.ErrInvalidInput),
			path:   "/api/pages/about",
			status: http.StatusBadRequest,
		},
		{
			name:   "source unavailable",
			err:    fmt.Errorf("get home: %w", domain.ErrSourceUnavailable),
			path:   "/api/home",
			status: http.StatusBadGateway,
		},
		{
			name:   "rate limited",
			err:    fmt.Errorf("get events: %w", domain.ErrRateLimited),
			path:   "/api/events",
			status: http.StatusBadGateway,
		},
		{
			name:   "unclassified",
			err:    errors.New("boom"),
			path:   "/api/layout/header",
			status: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := setupTestServer(t, &stubContent{err: tt.err})

			w := get(t, s, tt.path)

			assert.Equal(t, tt.status, w.Code)
			var body errorBody
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestServer_UnknownRouteIs404(t *testing.T) {
	s := setupTestServer(t, &stubContent{})

	w := get(t, s, "/api/nope")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_Metrics(t *testing.T) {
	s := setupTestServer(t, &stubContent{})

	get(t, s, "/api/home")
	get(t, s, "/api/pages/missing")

	w := get(t, s, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)

	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	text := string(body)
	assert.True(t, strings.Contains(text, `tawa_http_requests_total{route="/api/home",status="200"} 1`), text)
	assert.Contains(t, text, `tawa_content_errors_total{kind="page",reason="not_found"} 1`)
	assert.Contains(t, text, "tawa_http_request_duration_seconds")
}

func TestClassify(t *testing.T) {
	tests := []struct {
		err    error
		status int
		reason string
	}{
		{err: domain.ErrNotFound, status: http.StatusNotFound, reason: "not_found"},
		{err: domain.ErrInvalidInput, status: http.StatusBadRequest, reason: "invalid_input"},
		{err: domain.ErrRateLimited, status: http.StatusBadGateway, reason: "rate_limited"},
		{err: domain.ErrPlaceholder, status: http.StatusBadGateway, reason: "placeholder"},
		{err: domain.ErrSourceUnavailable, status: http.StatusBadGateway, reason: "source"},
	}

	for _, tt := range tests {
		t.Run(tt.reason, func(t *testing.T) {
			status, reason := classify(fmt.Errorf("wrapped: %w", tt.err))
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.reason, reason)
		})
	}
}

func TestServer_RunStopsOnCancel(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := NewServer("127.0.0.1:0", &stubContent{})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()
	cancel()

	assert.NoError(t, <-done)
}
