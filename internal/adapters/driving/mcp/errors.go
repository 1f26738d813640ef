// Package mcp provides an MCP (Model Context Protocol) server adapter for the
// site content. It lets AI assistants read assembled pages, posts and layout.
package mcp

import "errors"

// ErrMissingContentService is returned when the content service is not provided.
var ErrMissingContentService = errors.New("mcp: content service is required")
