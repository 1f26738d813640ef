// Package domain defines the core content model for the Tawa site.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: A typed record returned by the content source
//   - Fields: The type-specific field bag of a document
//   - RichText, SliceZone: Structured body content
//   - HomePage, GeneralPage, BlogIndex, Post, Header, Footer, Event: View-models
//
// It also holds the pure rules that shape view-models: link resolution,
// reading time estimation and heading layout selection.
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
