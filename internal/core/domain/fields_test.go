package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustFields(t *testing.T, raw string) Fields {
	t.Helper()
	var f Fields
	require.NoError(t, json.Unmarshal([]byte(raw), &f))
	return f
}

func TestFields_MissingValuesReadAsZero(t *testing.T) {
	f := mustFields(t, `{"nothing": null}`)

	assert.False(t, f.Has("nothing"))
	assert.False(t, f.Has("absent"))
	assert.Equal(t, "", f.Text("absent"))
	assert.False(t, f.Bool("absent"))
	assert.NotNil(t, f.RichText("absent"))
	assert.Empty(t, f.RichText("nothing"))
	assert.True(t, f.Image("absent").IsEmpty())
	assert.Equal(t, "", f.Link("absent").TargetID())
	assert.NotNil(t, f.Group("absent"))
	assert.NotNil(t, f.Slices("absent"))

	_, ok := f.Date("absent")
	assert.False(t, ok)
}

func TestFields_MistypedValuesReadAsZero(t *testing.T) {
	f := mustFields(t, `{"flag": "yes", "title": 42, "hero": "url"}`)

	assert.False(t, f.Bool("flag"))
	assert.Empty(t, f.RichText("title"))
	assert.True(t, f.Image("hero").IsEmpty())
}

func TestFields_TypedValues(t *testing.T) {
	f := mustFields(t, `{
		"title_color": "#ffffff",
		"show_events": true,
		"hero_image": {"url": "https://images.example/hero.png", "alt": "Hero", "dimensions": {"width": 1200, "height": 600}},
		"event_date": "2024-05-01T09:30:00+0000",
		"release_date": "2024-04-30",
		"footer_links": [{"link_label": [{"type": "paragraph", "text": "About", "spans": []}]}, 7]
	}`)

	assert.Equal(t, "#ffffff", f.Text("title_color"))
	assert.True(t, f.Bool("show_events"))

	img := f.Image("hero_image")
	assert.Equal(t, "https://images.example/hero.png", img.URL)
	assert.Equal(t, "Hero", img.Alt)
	assert.Equal(t, 1200, img.Dimensions.Width)

	eventDate, ok := f.Date("event_date")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC), eventDate.UTC())

	releaseDate, ok := f.Date("release_date")
	require.True(t, ok)
	assert.Equal(t, 30, releaseDate.Day())

	group := f.Group("footer_links")
	require.Len(t, group, 1, "non-object items are skipped")
	assert.Equal(t, "About", group[0].RichText("link_label").AsText())
}
