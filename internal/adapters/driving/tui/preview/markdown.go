package preview

import (
	"fmt"
	"strings"

	"github.com/tawa-digital/tawa-content/internal/core/domain"
)

// Markdown converts rich text blocks to markdown. Consecutive list items
// stay in one list; other blocks are separated by a blank line.
func Markdown(rt domain.RichText) string {
	var b strings.Builder
	ordinal := 0
	prevList := ""

	for _, block := range rt {
		list := ""
		if block.Type == "list-item" || block.Type == "o-list-item" {
			list = block.Type
		}
		if b.Len() > 0 {
			if list != "" && list == prevList {
				b.WriteString("\n")
			} else {
				b.WriteString("\n\n")
			}
		}
		if list != "o-list-item" || prevList != "o-list-item" {
			ordinal = 0
		}
		prevList = list

		switch {
		case strings.HasPrefix(block.Type, "heading"):
			level := 1
			if _, err := fmt.Sscanf(block.Type, "heading%d", &level); err != nil || level < 1 || level > 6 {
				level = 1
			}
			b.WriteString(strings.Repeat("#", level) + " " + block.Text)
		case block.Type == "list-item":
			b.WriteString("- " + block.Text)
		case block.Type == "o-list-item":
			ordinal++
			fmt.Fprintf(&b, "%d. %s", ordinal, block.Text)
		case block.Type == "preformatted":
			b.WriteString("```\n" + block.Text + "\n```")
		case block.Type == domain.BlockImage:
			fmt.Fprintf(&b, "![%s](%s)", block.Alt, block.URL)
		case block.Type == domain.BlockEmbed:
			b.WriteString("[embed](" + block.URL + ")")
		default:
			b.WriteString(block.Text)
		}
	}
	return b.String()
}

// SliceMarkdown converts a slice zone to markdown, one section per slice.
func SliceMarkdown(zone domain.SliceZone) string {
	sections := make([]string, 0, len(zone))
	for _, slice := range zone {
		switch s := slice.(type) {
		case domain.TextSlice:
			sections = append(sections, Markdown(s.Text))
		case domain.ImageSlice:
			section := fmt.Sprintf("![%s](%s)", s.Image.Alt, s.Image.URL)
			if caption := s.Caption.AsText(); caption != "" {
				section += "\n\n*" + caption + "*"
			}
			sections = append(sections, section)
		case domain.QuoteSlice:
			section := "> " + s.Quote.AsText()
			if who := s.Attribution.AsText(); who != "" {
				section += "\n>\n> — " + who
			}
			sections = append(sections, section)
		case domain.EmbedSlice:
			title := s.Embed.Title
			if title == "" {
				title = s.Embed.ProviderName
			}
			sections = append(sections, fmt.Sprintf("[%s](%s)", title, s.Embed.URL))
		default:
			sections = append(sections, fmt.Sprintf("_[%s slice]_", slice.SliceType()))
		}
	}
	return strings.Join(sections, "\n\n")
}

// videoURL returns the first embedded video of a page body.
func videoURL(zone domain.SliceZone) string {
	for _, slice := range zone {
		if s, ok := slice.(domain.EmbedSlice); ok && s.Embed.URL != "" {
			return s.Embed.URL
		}
	}
	return ""
}
