package domain

import (
	"encoding/json"
	"strings"
)

// Block types that carry no text.
const (
	BlockImage = "image"
	BlockEmbed = "embed"
)

// RichText is an ordered sequence of structured text blocks.
type RichText []RichTextBlock

// RichTextBlock is a single paragraph, heading, list item, image or embed.
type RichTextBlock struct {
	Type       string          `json:"type"`
	Text       string          `json:"text"`
	Spans      []Span          `json:"spans"`
	URL        string          `json:"url,omitempty"`
	Alt        string          `json:"alt,omitempty"`
	Dimensions *Dimensions     `json:"dimensions,omitempty"`
	Oembed     json.RawMessage `json:"oembed,omitempty"`
}

// Span marks up a range of a block's text (strong, em, hyperlink, label).
type Span struct {
	Start int             `json:"start"`
	End   int             `json:"end"`
	Type  string          `json:"type"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// HasText reports whether the block is a text-bearing block.
func (b RichTextBlock) HasText() bool {
	return b.Type != BlockImage && b.Type != BlockEmbed
}

// AsText flattens the blocks to plain text joined by a single space.
func (rt RichText) AsText() string {
	parts := make([]string, 0, len(rt))
	for _, block := range rt {
		if block.HasText() {
			parts = append(parts, block.Text)
		}
	}
	return strings.Join(parts, " ")
}

// IsEmpty reports whether the rich text has no visible text.
func (rt RichText) IsEmpty() bool {
	return strings.TrimSpace(rt.AsText()) == ""
}

// ReadingTime estimates the minutes needed to read the text.
func (rt RichText) ReadingTime() int {
	return ReadingTime(rt.AsText())
}

// PlainText builds a single-paragraph rich text value.
func PlainText(text string) RichText {
	return RichText{{Type: "paragraph", Text: text, Spans: []Span{}}}
}
