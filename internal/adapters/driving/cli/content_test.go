package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tawa-digital/tawa-content/internal/core/domain"
)

func TestContentCommands_JSON(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains []string
	}{
		{"home", []string{"home"}, []string{`"showEvents": true`, "Kia ora"}},
		{"page", []string{"page", "about"}, []string{`"uid": "about"`, `"headingType": "Standard"`}},
		{"blog", []string{"blog"}, []string{`"title": "Articles"`}},
		{"post", []string{"post", "hello"}, []string{`"url": "/articles/hello"`, `"readingTime": 2`, `"related": []`}},
		{"posts", []string{"posts"}, []string{"Hello world"}},
		{"header", []string{"header"}, []string{`"url": "/about"`}},
		{"footer", []string{"footer"}, []string{`"footerLinks": []`}},
		{"events", []string{"events"}, []string{"[]"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestServices(t, &stubContent{})

			out, err := execute(t, tt.args...)

			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestContentCommands_RequireArgs(t *testing.T) {
	for _, name := range []string{"page", "post"} {
		t.Run(name, func(t *testing.T) {
			setupTestServices(t, &stubContent{})

			_, err := execute(t, name)

			assert.ErrorContains(t, err, "accepts 1 arg(s)")
		})
	}
}

func TestContentCommands_NotFound(t *testing.T) {
	setupTestServices(t, &stubContent{})

	_, err := execute(t, "post", "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestContentCommands_SourceError(t *testing.T) {
	setupTestServices(t, &stubContent{err: errBoom})

	_, err := execute(t, "home")

	assert.ErrorIs(t, err, errBoom)
}

func TestContentCommands_Pretty(t *testing.T) {
	setupTestServices(t, &stubContent{})

	out, err := execute(t, "post", "hello", "--pretty")

	require.NoError(t, err)
	assert.Contains(t, out, "/articles/hello · post")
	assert.Contains(t, out, "Hello world")
	assert.NotContains(t, out, `"url"`)
}

func TestIDsCmd(t *testing.T) {
	tests := []struct {
		collection string
		want       string
	}{
		{"pages", "about"},
		{"posts", "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.collection, func(t *testing.T) {
			setupTestServices(t, &stubContent{})

			out, err := execute(t, "ids", tt.collection)
			require.NoError(t, err)

			var ids []domain.PageID
			require.NoError(t, json.Unmarshal([]byte(out), &ids))
			assert.Equal(t, []domain.PageID{domain.NewPageID(tt.want)}, ids)
		})
	}
}

func TestIDsCmd_InvalidCollection(t *testing.T) {
	setupTestServices(t, &stubContent{})

	_, err := execute(t, "ids", "events")

	assert.ErrorContains(t, err, "invalid argument")
}

func TestContentCommands_NoServices(t *testing.T) {
	original := builder
	t.Cleanup(func() { builder = original })
	SetBuilder(func(BuildOptions) (*Services, error) {
		return &Services{}, nil
	})

	_, err := execute(t, "home")

	assert.ErrorContains(t, err, "content service not configured")
}
