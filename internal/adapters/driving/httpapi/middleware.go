package httpapi

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tawa-digital/tawa-content/internal/logger"
)

var log = logger.For("http")

// recoveryMiddleware turns handler panics into 500 responses.
func recoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("panic serving %s: %v", c.Request.URL.Path, recovered)
		c.AbortWithStatusJSON(500, errorBody{Error: "internal error"})
	})
}

// observeMiddleware logs each request and records its metrics.
func observeMiddleware(m *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		elapsed := time.Since(start)

		m.RequestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
		m.RequestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
		log.Debug("%s %s %d %s", c.Request.Method, c.Request.URL.Path, status, elapsed)
	}
}
