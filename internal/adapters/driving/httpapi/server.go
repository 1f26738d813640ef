package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tawa-digital/tawa-content/internal/core/ports/driving"
)

// DefaultShutdownTimeout bounds graceful shutdown.
const DefaultShutdownTimeout = 10 * time.Second

// Server is the JSON API server.
type Server struct {
	router  *gin.Engine
	server  *http.Server
	metrics *Metrics
}

// NewServer builds the router over the content service.
func NewServer(addr string, content driving.ContentService) *Server {
	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics := NewMetrics()
	router := gin.New()
	router.Use(recoveryMiddleware())
	router.Use(observeMiddleware(metrics))

	h := &handler{content: content, metrics: metrics}
	router.GET("/health", h.health)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := router.Group("/api")
	api.GET("/home", h.home)
	api.GET("/pages/:uid", h.page)
	api.GET("/paths/pages", h.pageIDs)
	api.GET("/blog", h.blogIndex)
	api.GET("/posts", h.posts)
	api.GET("/posts/:uid", h.post)
	api.GET("/paths/posts", h.postIDs)
	api.GET("/layout/header", h.header)
	api.GET("/layout/footer", h.footer)
	api.GET("/events", h.events)

	return &Server{
		router:  router,
		metrics: metrics,
		server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Router returns the underlying Gin engine.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Metrics returns the server's metrics.
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.server.Addr
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info("listening on %s", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	//nolint:contextcheck // the request context is already cancelled
	shutdownCtx, cancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}
	return nil
}
