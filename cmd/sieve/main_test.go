package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sieve"
)

const recordsNdjson = `{"name":"cat.png","object":{"kind":5},"path":{"extension":"png"}}
{"name":"dog.jpg","object":{"kind":5},"path":{"extension":"jpg"}}
{"name":"clip.mp4","object":{"kind":7},"path":{"extension":"mp4"}}
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	dir := t.TempDir()
	records := filepath.Join(dir, "records.ndjson")
	require.NoError(t, os.WriteFile(records, []byte(recordsNdjson), 0o600))

	cfg := filepath.Join(dir, "sieve.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("log_path: "+filepath.Join(dir, "sieve.log")+"\n"), 0o600))

	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetArgs(append(append([]string{"-c", cfg}, args...), records))

	err := cmd.Execute()
	return out.String(), err
}

func TestSearch_Kind(t *testing.T) {
	out, err := run(t, "search", "--kind", "Image")
	require.NoError(t, err)

	assert.Contains(t, out, "where kind in Image")
	assert.Contains(t, out, "2 matching")
	assert.Contains(t, out, "cat.png")
	assert.Contains(t, out, "dog.jpg")
	assert.NotContains(t, out, "clip.mp4")
}

func TestSearch_NotExt(t *testing.T) {
	out, err := run(t, "search", "--not-ext", "jpg,mp4")
	require.NoError(t, err)

	assert.Contains(t, out, "where extension not in .jpg, .mp4")
	assert.Contains(t, out, "1 matching")
	assert.Contains(t, out, "cat.png")
}

func TestSearch_RepeatedValues(t *testing.T) {
	out, err := run(t, "search", "--kind", "Image,Image")
	require.NoError(t, err)
	assert.Contains(t, out, "where kind in Image")
	assert.Contains(t, out, "2 matching")

	out, err = run(t, "search", "--ext", "png", "--ext", "png")
	require.NoError(t, err)
	assert.Contains(t, out, "1 matching")
	assert.NotContains(t, out, "dog.jpg")
}

func TestSearch_UnknownKind(t *testing.T) {
	_, err := run(t, "search", "--kind", "Hologram")
	require.Error(t, err)
}

func TestSearch_BothModes(t *testing.T) {
	_, err := run(t, "search", "--kind", "Image", "--not-kind", "Video")
	require.Error(t, err)
}

func TestFilters(t *testing.T) {
	out, err := run(t, "filters")
	require.NoError(t, err)

	assert.Contains(t, out, "kind (kind)")
	assert.Contains(t, out, "5 Image")
	assert.Contains(t, out, ".png")
}

func TestAddKinds(t *testing.T) {
	search := sieve.NewSearch()
	require.NoError(t, addKinds(search, "kind", []string{"Image", "Video"}))

	cond, ok := search.Active("kind")
	require.True(t, ok)
	assert.Equal(t, []any{5, 7}, cond.Values)

	require.NoError(t, addKinds(search, "kind", []string{"Image"}))
	cond, ok = search.Active("kind")
	require.True(t, ok)
	assert.Equal(t, []any{5, 7}, cond.Values, "repeat keeps the kind")
}
