package domain

import "time"

// Snapshot kinds.
const (
	KindHome      = "home"
	KindPage      = "page"
	KindBlogIndex = "blog_index"
	KindPost      = "post"
	KindPosts     = "posts"
	KindHeader    = "header"
	KindFooter    = "footer"
	KindEvents    = "events"
)

// Routes that are not derived from a document UID.
const (
	RouteHome     = PathRoot
	RouteArticles = PathArticles
	RoutePosts    = "posts"
	RouteHeader   = "layout/header"
	RouteFooter   = "layout/footer"
	RouteEvents   = "events"
)

// ExportRun records one static export of the site.
type ExportRun struct {
	ID         string
	StartedAt  time.Time
	FinishedAt time.Time
	Routes     int
}

// Snapshot is one exported view-model.
type Snapshot struct {
	RunID   string
	Route   string
	Kind    string
	Payload []byte
}

// RouteView is the assembled view-model of one route.
type RouteView struct {
	Route string
	Kind  string
	View  any
}
