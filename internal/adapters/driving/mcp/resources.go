package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tawa-digital/tawa-content/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for site resources.
	uriScheme = "tawa://"

	mimeJSON = "application/json"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "routes",
		Name:        "routes",
		Description: "Every route of the site",
		MIMEType:    mimeJSON,
	}, s.handleRoutesResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "pages/{uid}",
		Name:        "page",
		Description: "View-model of a general content page",
		MIMEType:    mimeJSON,
	}, s.handlePageResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "articles/{uid}",
		Name:        "article",
		Description: "View-model of a blog post",
		MIMEType:    mimeJSON,
	}, s.handleArticleResource)
}

// handleRoutesResource returns every route of the site.
func (s *Server) handleRoutesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Export == nil {
		return jsonResource(req.Params.URI, []string{})
	}

	routes, err := s.ports.Export.Routes(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing routes: %w", err)
	}
	return jsonResource(req.Params.URI, routes)
}

// handlePageResource returns a general page by UID.
func (s *Server) handlePageResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	uid := extractUID(req.Params.URI, "pages/")
	if uid == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	page, err := s.ports.Content.Page(ctx, uid)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting page: %w", err)
	}
	return jsonResource(req.Params.URI, page)
}

// handleArticleResource returns a blog post by UID.
func (s *Server) handleArticleResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	uid := extractUID(req.Params.URI, "articles/")
	if uid == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	post, err := s.ports.Content.Post(ctx, uid)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting post: %w", err)
	}
	return jsonResource(req.Params.URI, post)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: mimeJSON,
			Text:     string(data),
		}},
	}, nil
}

// extractUID extracts the slug from a URI like tawa://pages/{uid}.
func extractUID(uri, collection string) string {
	prefix := uriScheme + collection
	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	uid := strings.TrimPrefix(uri, prefix)
	if strings.Contains(uid, "/") {
		return ""
	}
	return uid
}
