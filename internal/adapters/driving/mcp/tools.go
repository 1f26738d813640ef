package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tawa-digital/tawa-content/internal/core/domain"
)

// NoInput is the input schema for tools without arguments.
type NoInput struct{}

// UIDInput is the input schema for tools addressing one document.
type UIDInput struct {
	UID string `json:"uid" jsonschema:"the document slug, e.g. about-us"`
}

// PostsOutput is the output of the list_posts tool.
type PostsOutput struct {
	Posts []domain.Post `json:"posts"`
	Count int           `json:"count"`
}

// IDsOutput is the output of the route enumeration tools.
type IDsOutput struct {
	Paths []domain.PageID `json:"paths"`
}

// EventsOutput is the output of the list_events tool.
type EventsOutput struct {
	Events []domain.Event `json:"events"`
	Count  int            `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
// View-models are recursive (posts embed related posts), so tools declare no
// output schema and return their result as structured JSON.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_home",
		Description: "Get the home page view-model",
	}, s.handleHome)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_page",
		Description: "Get a general content page by slug",
	}, s.handlePage)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_blog_index",
		Description: "Get the article listing page title",
	}, s.handleBlogIndex)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_post",
		Description: "Get a blog post by slug with its related posts",
	}, s.handlePost)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_posts",
		Description: "List every blog post, newest first",
	}, s.handlePosts)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_page_ids",
		Description: "List the slugs of every general page",
	}, s.handlePageIDs)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_post_ids",
		Description: "List the slugs of every blog post",
	}, s.handlePostIDs)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_header",
		Description: "Get the site header: tagline, logo and navigation links",
	}, s.handleHeader)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_footer",
		Description: "Get the site footer: text, links and icon",
	}, s.handleFooter)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_events",
		Description: "List upcoming events from today onwards, soonest first",
	}, s.handleEvents)
}

func (s *Server) handleHome(ctx context.Context, _ *mcp.CallToolRequest, _ NoInput) (*mcp.CallToolResult, any, error) {
	home, err := s.ports.Content.HomePage(ctx)
	if err != nil {
		return nil, nil, err
	}
	return nil, home, nil
}

func (s *Server) handlePage(ctx context.Context, _ *mcp.CallToolRequest, in UIDInput) (*mcp.CallToolResult, any, error) {
	uid, err := requireUID(in)
	if err != nil {
		return nil, nil, err
	}
	page, err := s.ports.Content.Page(ctx, uid)
	if err != nil {
		return nil, nil, err
	}
	return nil, page, nil
}

func (s *Server) handleBlogIndex(ctx context.Context, _ *mcp.CallToolRequest, _ NoInput) (*mcp.CallToolResult, any, error) {
	index, err := s.ports.Content.BlogIndex(ctx)
	if err != nil {
		return nil, nil, err
	}
	return nil, index, nil
}

func (s *Server) handlePost(ctx context.Context, _ *mcp.CallToolRequest, in UIDInput) (*mcp.CallToolResult, any, error) {
	uid, err := requireUID(in)
	if err != nil {
		return nil, nil, err
	}
	post, err := s.ports.Content.Post(ctx, uid)
	if err != nil {
		return nil, nil, err
	}
	return nil, post, nil
}

func (s *Server) handlePosts(ctx context.Context, _ *mcp.CallToolRequest, _ NoInput) (*mcp.CallToolResult, any, error) {
	posts, err := s.ports.Content.AllPosts(ctx)
	if err != nil {
		return nil, nil, err
	}
	return nil, PostsOutput{Posts: posts, Count: len(posts)}, nil
}

func (s *Server) handlePageIDs(ctx context.Context, _ *mcp.CallToolRequest, _ NoInput) (*mcp.CallToolResult, any, error) {
	ids, err := s.ports.Content.PageIDs(ctx)
	if err != nil {
		return nil, nil, err
	}
	return nil, IDsOutput{Paths: ids}, nil
}

func (s *Server) handlePostIDs(ctx context.Context, _ *mcp.CallToolRequest, _ NoInput) (*mcp.CallToolResult, any, error) {
	ids, err := s.ports.Content.PostIDs(ctx)
	if err != nil {
		return nil, nil, err
	}
	return nil, IDsOutput{Paths: ids}, nil
}

func (s *Server) handleHeader(ctx context.Context, _ *mcp.CallToolRequest, _ NoInput) (*mcp.CallToolResult, any, error) {
	header, err := s.ports.Content.Header(ctx)
	if err != nil {
		return nil, nil, err
	}
	return nil, header, nil
}

func (s *Server) handleFooter(ctx context.Context, _ *mcp.CallToolRequest, _ NoInput) (*mcp.CallToolResult, any, error) {
	footer, err := s.ports.Content.Footer(ctx)
	if err != nil {
		return nil, nil, err
	}
	return nil, footer, nil
}

func (s *Server) handleEvents(ctx context.Context, _ *mcp.CallToolRequest, _ NoInput) (*mcp.CallToolResult, any, error) {
	events, err := s.ports.Content.Events(ctx)
	if err != nil {
		return nil, nil, err
	}
	return nil, EventsOutput{Events: events, Count: len(events)}, nil
}

func requireUID(in UIDInput) (string, error) {
	uid := strings.TrimSpace(in.UID)
	if uid == "" {
		return "", fmt.Errorf("%w: uid is required", domain.ErrInvalidInput)
	}
	return uid, nil
}
