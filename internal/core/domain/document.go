package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// DocumentType is the custom type tag the content source assigns to a document.
type DocumentType string

// Document types known to the site.
const (
	TypeHomePage    DocumentType = "homepage"
	TypeGeneralPage DocumentType = "general_page"
	TypeBlogIndex   DocumentType = "blog_page"
	TypeBlogPost    DocumentType = "blog_post"
	TypeLayout      DocumentType = "layout"
	TypeEvent       DocumentType = "event"
)

// IsSingleton returns true for types that have exactly one document.
func (t DocumentType) IsSingleton() bool {
	switch t {
	case TypeHomePage, TypeBlogIndex, TypeLayout:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t DocumentType) String() string {
	return string(t)
}

// Document is a typed record returned by the content source.
// It is read-only to the normalization layer.
type Document struct {
	// ID is the unique identifier assigned by the content source.
	ID string `json:"id"`

	// UID is the human-readable slug, unique per type.
	UID string `json:"uid"`

	// Type is the custom type tag.
	Type DocumentType `json:"type"`

	// Tags are the document-level tags.
	Tags []string `json:"tags"`

	// Lang is the locale of this document variant.
	Lang string `json:"lang"`

	// FirstPublicationDate is when the document was first published.
	FirstPublicationDate Timestamp `json:"first_publication_date"`

	// LastPublicationDate is when the document was last published.
	LastPublicationDate Timestamp `json:"last_publication_date"`

	// Data is the type-specific field bag.
	Data Fields `json:"data"`
}

// Path resolves the site-relative URL of the document.
func (d Document) Path() string {
	return ResolvePath(d.Type, d.UID)
}

// timestampLayout is the publication timestamp format used by the content source.
const timestampLayout = "2006-01-02T15:04:05-0700"

// Timestamp is a publication time that tolerates the content source format
// as well as RFC 3339.
type Timestamp struct {
	time.Time
}

// UnmarshalJSON parses either layout. Null and empty strings yield the zero time.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, ok := ParseTimestamp(s)
	if !ok && s != "" {
		return &time.ParseError{Layout: timestampLayout, Value: s}
	}
	t.Time = parsed
	return nil
}

// MarshalJSON writes the content source layout, or null for the zero time.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Format(timestampLayout))
}

// ParseTimestamp parses a timestamp in any accepted layout, or a bare date.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{timestampLayout, time.RFC3339, dateLayout} {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}
