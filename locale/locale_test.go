package locale

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogYaml = `
language: de
texts:
  kind: Art
  Image: Bild
  Video: ""
`

func TestCatalog_Resolve(t *testing.T) {
	cat, err := Parse([]byte(catalogYaml))
	require.NoError(t, err)

	assert.Equal(t, "de", cat.Language)
	assert.Equal(t, "Art", cat.Resolve("kind"))
	assert.Equal(t, "Bild", cat.Resolve("Image"))
	assert.Equal(t, "Video", cat.Resolve("Video"), "empty text falls back to key")
	assert.Equal(t, "Audio", cat.Resolve("Audio"), "missing text falls back to key")
}

func TestCatalog_NilResolves(t *testing.T) {
	var cat *Catalog
	assert.Equal(t, "kind", cat.Resolve("kind"))
}

func TestParse_Empty(t *testing.T) {
	cat, err := Parse([]byte("language: en\n"))
	require.NoError(t, err)
	assert.NotNil(t, cat.Texts)
	assert.Equal(t, "kind", cat.Resolve("kind"))
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("texts: [unclosed"))
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "de.yaml")
	require.NoError(t, os.WriteFile(path, []byte(catalogYaml), 0o600))

	cat, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Art", cat.Resolve("kind"))

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestIdentity(t *testing.T) {
	assert.Equal(t, "kind", Identity{}.Resolve("kind"))
}
