package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tawa-digital/tawa-content/internal/adapters/driven/config/file"
	"github.com/tawa-digital/tawa-content/internal/core/domain"
)

func setupConfigServices(t *testing.T) *file.ConfigStore {
	t.Helper()
	store := file.NewConfigStore(filepath.Join(t.TempDir(), "tawa.toml"))
	store.SetEnvFiles()
	setupTestServices(t, &stubContent{})
	deps.Config = store
	return store
}

func TestConfigShow(t *testing.T) {
	setupConfigServices(t)
	deps.Settings.Prismic.Token = "abcd1234secretwxyz"
	deps.Settings.Prismic.Locale = "en-nz"

	out, err := execute(t, "config", "show")
	require.NoError(t, err)

	assert.Contains(t, out, "Repository: "+domain.DefaultRepository)
	assert.Contains(t, out, "Token: abcd...wxyz")
	assert.NotContains(t, out, "secret")
	assert.Contains(t, out, "Locale: en-nz")
	assert.Contains(t, out, "Kind: Prismic (hosted CMS)")
}

func TestConfigShow_IsDefault(t *testing.T) {
	setupConfigServices(t)

	out, err := execute(t, "config")
	require.NoError(t, err)

	assert.Contains(t, out, "Token: (not set)")
	assert.Contains(t, out, "Locale: (all)")
}

func TestConfigInit(t *testing.T) {
	store := setupConfigServices(t)

	out, err := execute(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+store.Path())

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), loaded)
}

func TestConfigInit_RefusesOverwrite(t *testing.T) {
	store := setupConfigServices(t)
	require.NoError(t, os.WriteFile(store.Path(), []byte("[prismic]\nrepository = \"mine\"\n"), 0o600))

	_, err := execute(t, "config", "init")
	assert.ErrorContains(t, err, "already exists")

	setupConfigServices(t)
	deps.Config = store
	_, err = execute(t, "config", "init", "--force")
	require.NoError(t, err)

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultRepository, loaded.Prismic.Repository)
}

func TestMaskToken(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"short", "****"},
		{"12345678", "****"},
		{"123456789", "1234...6789"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, maskToken(tt.token))
		})
	}
}
