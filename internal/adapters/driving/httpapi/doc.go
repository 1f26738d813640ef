// Package httpapi serves assembled view-models as a JSON API for the
// presentation layer.
//
// # Routes
//
//	GET /health                 liveness
//	GET /metrics                Prometheus metrics
//	GET /api/home               home page
//	GET /api/pages/:uid         general page
//	GET /api/paths/pages        general page slugs
//	GET /api/blog               article listing page
//	GET /api/posts              every post, newest first
//	GET /api/posts/:uid         post with related posts
//	GET /api/paths/posts        post slugs
//	GET /api/layout/header      site header
//	GET /api/layout/footer      site footer
//	GET /api/events             upcoming events
//
// # Errors
//
// domain.ErrNotFound maps to 404, domain.ErrInvalidInput to 400 and every
// other failure to 502. Error bodies are {"error": "..."}.
package httpapi
