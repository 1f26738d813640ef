// Package preview renders assembled view-models for the terminal.
// Rich text is converted to markdown and rendered with glamour; structure
// and metadata use the TUI's lipgloss styles.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	glamourstyles "github.com/charmbracelet/glamour/styles"

	"github.com/tawa-digital/tawa-content/internal/adapters/driving/tui/styles"
	"github.com/tawa-digital/tawa-content/internal/core/domain"
)

// DefaultWidth is the wrap width when the terminal size is unknown.
const DefaultWidth = 80

// Renderer turns route view-models into styled terminal text.
type Renderer struct {
	styles *styles.Styles
	md     *glamour.TermRenderer
}

// NewRenderer creates a renderer wrapping at width. Plain disables colour
// in the markdown output.
func NewRenderer(s *styles.Styles, width int, plain bool) (*Renderer, error) {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if width <= 0 {
		width = DefaultWidth
	}

	style := glamour.WithAutoStyle()
	if plain {
		style = glamour.WithStandardStyle(glamourstyles.NoTTYStyle)
	}
	md, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return nil, fmt.Errorf("creating markdown renderer: %w", err)
	}
	return &Renderer{styles: s, md: md}, nil
}

// Render renders one route's view-model.
func (r *Renderer) Render(view *domain.RouteView) (string, error) {
	var b strings.Builder
	b.WriteString(r.styles.Muted.Render(view.Route+" · "+view.Kind) + "\n\n")

	var err error
	switch v := view.View.(type) {
	case *domain.HomePage:
		err = r.home(&b, v)
	case *domain.GeneralPage:
		err = r.page(&b, v)
	case *domain.BlogIndex:
		b.WriteString(r.styles.Title.Render(v.Title) + "\n")
	case *domain.Post:
		err = r.post(&b, v)
	case []domain.Post:
		r.listing(&b, v)
	case *domain.Header:
		err = r.header(&b, v)
	case *domain.Footer:
		err = r.footer(&b, v)
	case []domain.Event:
		err = r.events(&b, v)
	default:
		return "", fmt.Errorf("%w: cannot render %T", domain.ErrInvalidInput, view.View)
	}
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

func (r *Renderer) home(b *strings.Builder, v *domain.HomePage) error {
	b.WriteString(r.styles.Title.Render(v.Title.AsText()) + "\n")
	if !v.Subtitle.IsEmpty() {
		b.WriteString(r.styles.Subtitle.Render(v.Subtitle.AsText()) + "\n")
	}
	r.image(b, "hero", v.Image)
	if v.TextColor != "" {
		b.WriteString(r.field("text colour", v.TextColor))
	}
	b.WriteString(r.field("events", fmt.Sprintf("%t", v.ShowEvents)))
	return nil
}

func (r *Renderer) page(b *strings.Builder, v *domain.GeneralPage) error {
	layout := domain.SelectHeading(domain.HeadingInput{
		Type:     v.HeadingType,
		ImageSrc: v.HeroImage.URL,
		VideoURL: videoURL(v.Body),
	})

	if layout != domain.HeadingNone {
		b.WriteString(r.styles.Title.Render(v.Title.AsText()) + "\n")
		if !v.Subtitle.IsEmpty() {
			b.WriteString(r.styles.Subtitle.Render(v.Subtitle.AsText()) + "\n")
		}
	}
	b.WriteString(r.field("heading", layout.String()))
	if layout == domain.HeadingFullBleed {
		r.image(b, "hero", v.HeroImage)
	}
	return r.markdown(b, SliceMarkdown(v.Body))
}

func (r *Renderer) post(b *strings.Builder, v *domain.Post) error {
	b.WriteString(r.styles.Title.Render(v.Title) + "\n")
	meta := []string{}
	if v.DatePublished != "" {
		meta = append(meta, v.DatePublished)
	}
	meta = append(meta, fmt.Sprintf("%d min read", v.ReadingTime))
	b.WriteString(r.styles.Muted.Render(strings.Join(meta, " · ")) + "\n")
	if len(v.Tags) > 0 {
		b.WriteString(r.styles.Tag.Render("#"+strings.Join(v.Tags, " #")) + "\n")
	}
	r.image(b, "title image", v.TitleImage)

	if err := r.markdown(b, Markdown(v.Summary)); err != nil {
		return err
	}
	if err := r.markdown(b, SliceMarkdown(v.Body)); err != nil {
		return err
	}

	if len(v.Related) > 0 {
		b.WriteString(r.styles.Subtitle.Render("Related") + "\n")
		for _, rel := range v.Related {
			b.WriteString("  " + rel.Title + " " + r.styles.Muted.Render(rel.URL) + "\n")
		}
	}
	return nil
}

func (r *Renderer) listing(b *strings.Builder, posts []domain.Post) {
	if len(posts) == 0 {
		b.WriteString(r.styles.Muted.Render("No posts.") + "\n")
		return
	}
	for i, p := range posts {
		fmt.Fprintf(b, "%3d. %s %s\n", i+1, p.Title, r.styles.Muted.Render(p.DatePublished+" "+p.URL))
	}
}

func (r *Renderer) header(b *strings.Builder, v *domain.Header) error {
	r.image(b, "logo", v.SiteLogo)
	if err := r.markdown(b, Markdown(v.SiteTagline)); err != nil {
		return err
	}
	r.links(b, v.HeaderLinks)
	return nil
}

func (r *Renderer) footer(b *strings.Builder, v *domain.Footer) error {
	if err := r.markdown(b, Markdown(v.FooterText)); err != nil {
		return err
	}
	r.links(b, v.FooterLinks)
	r.image(b, "icon", v.FooterIcon)
	return nil
}

func (r *Renderer) events(b *strings.Builder, events []domain.Event) error {
	if len(events) == 0 {
		b.WriteString(r.styles.Muted.Render("No upcoming events.") + "\n")
		return nil
	}
	for _, e := range events {
		b.WriteString(r.styles.Subtitle.Render(e.Title.AsText()) + "\n")
		b.WriteString(r.styles.Muted.Render(e.Time+" · "+e.Presenter.AsText()) + "\n")
		if err := r.markdown(b, Markdown(e.Description)); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) links(b *strings.Builder, links []domain.LinkDescriptor) {
	for _, l := range links {
		b.WriteString("  " + r.styles.Text.Render(l.Label) + " → " + r.styles.Link.Render(l.URL) + "\n")
	}
}

func (r *Renderer) image(b *strings.Builder, label string, img domain.ImageDescriptor) {
	if img.URL == "" {
		return
	}
	line := img.URL
	if img.BlurDataURL != "" {
		line += " (blur preview)"
	}
	b.WriteString(r.field(label, line))
}

func (r *Renderer) field(label, value string) string {
	return r.styles.Muted.Render(label+":") + " " + value + "\n"
}

func (r *Renderer) markdown(b *strings.Builder, md string) error {
	if strings.TrimSpace(md) == "" {
		return nil
	}
	out, err := r.md.Render(md)
	if err != nil {
		return fmt.Errorf("rendering markdown: %w", err)
	}
	b.WriteString(out)
	return nil
}
