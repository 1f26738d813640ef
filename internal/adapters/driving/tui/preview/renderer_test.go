package preview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tawa-digital/tawa-content/internal/core/domain"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer(nil, 60, true)
	require.NoError(t, err)
	return r
}

func TestRenderer_Render(t *testing.T) {
	r := newTestRenderer(t)

	tests := []struct {
		name     string
		view     *domain.RouteView
		contains []string
	}{
		{
			name: "home",
			view: &domain.RouteView{Route: "/", Kind: domain.KindHome, View: &domain.HomePage{
				Title:      domain.PlainText("Tawa"),
				Subtitle:   domain.PlainText("Digital"),
				Image:      domain.ImageDescriptor{URL: "https://img/hero.jpg", BlurDataURL: "data:image/jpeg;base64,AA=="},
				ShowEvents: true,
			}},
			contains: []string{"/ · home", "Tawa", "Digital", "https://img/hero.jpg (blur preview)", "events: true"},
		},
		{
			name: "full bleed page",
			view: &domain.RouteView{Route: "/about", Kind: domain.KindPage, View: &domain.GeneralPage{
				Title:       domain.PlainText("About"),
				HeroImage:   domain.ImageDescriptor{URL: "https://img/about.jpg"},
				HeadingType: domain.HeadingTypeFullBleed,
				Body:        domain.SliceZone{domain.TextSlice{Text: domain.PlainText("We build things.")}},
			}},
			contains: []string{"About", "heading: full-bleed", "https://img/about.jpg", "We build things."},
		},
		{
			name: "youtube page without video renders no heading",
			view: &domain.RouteView{Route: "/video", Kind: domain.KindPage, View: &domain.GeneralPage{
				Title:       domain.PlainText("Hidden title"),
				HeadingType: domain.HeadingTypeYouTube,
			}},
			contains: []string{"heading: none"},
		},
		{
			name: "post",
			view: &domain.RouteView{Route: "/articles/hello", Kind: domain.KindPost, View: &domain.Post{
				URL:           "/articles/hello",
				Title:         "Hello",
				Summary:       domain.PlainText("A short summary."),
				Tags:          []string{"go", "cms"},
				DatePublished: "2024-01-10",
				ReadingTime:   2,
				Related:       []domain.Post{{Title: "Other", URL: "/articles/other"}},
			}},
			contains: []string{"Hello", "2024-01-10 · 2 min read", "#go #cms", "A short summary.", "Related", "/articles/other"},
		},
		{
			name:     "empty listing",
			view:     &domain.RouteView{Route: "posts", Kind: domain.KindPosts, View: []domain.Post{}},
			contains: []string{"No posts."},
		},
		{
			name: "header",
			view: &domain.RouteView{Route: "layout/header", Kind: domain.KindHeader, View: &domain.Header{
				SiteTagline: domain.PlainText("Tagline"),
				HeaderLinks: []domain.LinkDescriptor{{Label: "About", URL: "/about"}},
			}},
			contains: []string{"Tagline", "About → /about"},
		},
		{
			name: "events",
			view: &domain.RouteView{Route: "events", Kind: domain.KindEvents, View: []domain.Event{{
				Title:     domain.PlainText("Meetup"),
				Presenter: domain.PlainText("Aroha"),
				Time:      "2024-05-02T18:00:00+0000",
			}}},
			contains: []string{"Meetup", "2024-05-02T18:00:00+0000 · Aroha"},
		},
		{
			name:     "no events",
			view:     &domain.RouteView{Route: "events", Kind: domain.KindEvents, View: []domain.Event{}},
			contains: []string{"No upcoming events."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := r.Render(tt.view)
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestRenderer_Render_NoHeadingHidesTitle(t *testing.T) {
	r := newTestRenderer(t)

	out, err := r.Render(&domain.RouteView{Route: "/video", Kind: domain.KindPage, View: &domain.GeneralPage{
		Title:       domain.PlainText("Hidden title"),
		HeadingType: domain.HeadingTypeYouTube,
	}})

	require.NoError(t, err)
	assert.NotContains(t, out, "Hidden title")
}

func TestRenderer_Render_UnknownView(t *testing.T) {
	r := newTestRenderer(t)

	_, err := r.Render(&domain.RouteView{Route: "x", View: 42})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
