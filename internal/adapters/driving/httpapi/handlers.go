package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tawa-digital/tawa-content/internal/core/domain"
	"github.com/tawa-digital/tawa-content/internal/core/ports/driving"
)

type errorBody struct {
	Error string `json:"error"`
}

type handler struct {
	content driving.ContentService
	metrics *Metrics
}

func (h *handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *handler) home(c *gin.Context) {
	home, err := h.content.HomePage(c.Request.Context())
	h.respond(c, domain.KindHome, home, err)
}

func (h *handler) page(c *gin.Context) {
	page, err := h.content.Page(c.Request.Context(), c.Param("uid"))
	h.respond(c, domain.KindPage, page, err)
}

func (h *handler) pageIDs(c *gin.Context) {
	ids, err := h.content.PageIDs(c.Request.Context())
	h.respond(c, domain.KindPage, ids, err)
}

func (h *handler) blogIndex(c *gin.Context) {
	index, err := h.content.BlogIndex(c.Request.Context())
	h.respond(c, domain.KindBlogIndex, index, err)
}

func (h *handler) posts(c *gin.Context) {
	posts, err := h.content.AllPosts(c.Request.Context())
	h.respond(c, domain.KindPosts, posts, err)
}

func (h *handler) post(c *gin.Context) {
	post, err := h.content.Post(c.Request.Context(), c.Param("uid"))
	h.respond(c, domain.KindPost, post, err)
}

func (h *handler) postIDs(c *gin.Context) {
	ids, err := h.content.PostIDs(c.Request.Context())
	h.respond(c, domain.KindPost, ids, err)
}

func (h *handler) header(c *gin.Context) {
	header, err := h.content.Header(c.Request.Context())
	h.respond(c, domain.KindHeader, header, err)
}

func (h *handler) footer(c *gin.Context) {
	footer, err := h.content.Footer(c.Request.Context())
	h.respond(c, domain.KindFooter, footer, err)
}

func (h *handler) events(c *gin.Context) {
	events, err := h.content.Events(c.Request.Context())
	h.respond(c, domain.KindEvents, events, err)
}

func (h *handler) respond(c *gin.Context, kind string, body any, err error) {
	if err == nil {
		c.JSON(http.StatusOK, body)
		return
	}

	status, reason := classify(err)
	h.metrics.ContentErrors.WithLabelValues(kind, reason).Inc()
	if status == http.StatusBadGateway {
		log.Warn("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(status, errorBody{Error: err.Error()})
}

// classify maps an assembly error to a status code and a metric reason.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, "invalid_input"
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusBadGateway, "rate_limited"
	case errors.Is(err, domain.ErrPlaceholder):
		return http.StatusBadGateway, "placeholder"
	default:
		return http.StatusBadGateway, "source"
	}
}
