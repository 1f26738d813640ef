package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// jsonKeys marshals v and returns its top-level keys.
func jsonKeys(t *testing.T, v any) map[string]any {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	var keys map[string]any
	require.NoError(t, json.Unmarshal(data, &keys))
	return keys
}

// TestViewModels_AllFieldsSerialised tests that empty view-models keep every declared field
func TestViewModels_AllFieldsSerialised(t *testing.T) {
	tests := []struct {
		name   string
		model  any
		fields []string
	}{
		{"home page", HomePage{}, []string{"title", "subtitle", "image", "textColor", "showEvents"}},
		{"general page", GeneralPage{}, []string{"uid", "title", "subtitle", "heroImage", "headingType", "textColor", "body"}},
		{"blog index", BlogIndex{}, []string{"title"}},
		{"post", Post{}, []string{"url", "title", "titleImage", "summary", "body", "tags", "datePublished", "readingTime", "related"}},
		{"header", Header{}, []string{"siteTagLine", "siteLogo", "headerLinks"}},
		{"footer", Footer{}, []string{"footerText", "footerLinks", "footerIcon"}},
		{"event", Event{}, []string{"title", "presenter", "description", "time"}},
		{"image", ImageDescriptor{}, []string{"url", "alt", "blurDataURL"}},
		{"link", LinkDescriptor{}, []string{"label", "url"}},
		{"page id", PageID{}, []string{"params"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys := jsonKeys(t, tt.model)
			for _, field := range tt.fields {
				assert.Contains(t, keys, field)
			}
			assert.Len(t, keys, len(tt.fields))
		})
	}
}

func TestPost_RoundTrip(t *testing.T) {
	var body SliceZone
	require.NoError(t, json.Unmarshal([]byte(
		`[{"slice_type":"text","slice_label":null,"items":[],"primary":{"text":[{"type":"paragraph","text":"Body","spans":[]}]}}]`,
	), &body))

	post := Post{
		URL:           "/articles/abc",
		Title:         "Abc",
		TitleImage:    ImageDescriptor{URL: "https://images.example/a.png", Alt: "A", BlurDataURL: "data:image/jpeg;base64,AA=="},
		Summary:       PlainText("Summary"),
		Body:          body,
		Tags:          []string{"news"},
		DatePublished: "2024-01-02",
		ReadingTime:   1,
		Related:       []Post{},
	}

	data, err := json.Marshal(post)
	require.NoError(t, err)

	var out Post
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, post, out)
}

func TestPost_EmptyRelatedIsArray(t *testing.T) {
	keys := jsonKeys(t, Post{Related: []Post{}, Tags: []string{}})
	assert.Equal(t, []any{}, keys["related"])
	assert.Equal(t, []any{}, keys["tags"])
}

func TestNewPageID(t *testing.T) {
	data, err := json.Marshal(NewPageID("about"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"params": {"id": "about"}}`, string(data))
}
