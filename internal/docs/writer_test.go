package docs

import (
	"encoding/json"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWriter() *Writer {
	return NewWriter(log.New(io.Discard, "", 0))
}

func TestWritePage(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "release-notes")
	writer := testWriter()

	path, err := writer.WritePage(dir, "v1.2.0", "# body\n")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "v1.2.0.md"), path)
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# body\n", string(raw))
}

func TestWritePageRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	writer := testWriter()
	_, err := writer.WritePage(dir, "v1.2.0", "first\n")
	require.NoError(t, err)

	_, err = writer.WritePage(dir, "v1.2.0", "second\n")

	assert.ErrorContains(t, err, "already exists")
}

func TestUpdateNavigation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mint.json")
	original := `{
  "name": "Revive Docs",
  "theme": "prism",
  "navigation": [
    {"group": "Guides", "pages": ["guides/intro"]},
    {"group": "Release notes", "pages": ["release-notes/v1.1.0"]}
  ]
}`
	require.NoError(t, os.WriteFile(path, []byte(original), 0o644))
	writer := testWriter()

	err := writer.UpdateNavigation(path, "Release notes", "release-notes/v1.2.0")

	require.NoError(t, err)
	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	// Unrelated fields survive the rewrite.
	assert.Equal(t, "Revive Docs", doc["name"])
	assert.Equal(t, "prism", doc["theme"])

	groups := doc["navigation"].([]any)
	var pages []any
	for _, g := range groups {
		entry := g.(map[string]any)
		if entry["group"] == "Release notes" {
			pages = entry["pages"].([]any)
		}
	}
	require.Equal(t, []any{"release-notes/v1.2.0", "release-notes/v1.1.0"}, pages)
}

func TestUpdateNavigationIsIdempotentPerPage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mint.json")
	original := `{"navigation": [{"group": "Release notes", "pages": ["release-notes/v1.2.0"]}]}`
	require.NoError(t, os.WriteFile(path, []byte(original), 0o644))
	writer := testWriter()

	require.NoError(t, writer.UpdateNavigation(path, "Release notes", "release-notes/v1.2.0"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	pages := doc["navigation"].([]any)[0].(map[string]any)["pages"].([]any)
	assert.Len(t, pages, 1)
}

func TestUpdateNavigationMissingGroup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mint.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"navigation": []}`), 0o644))

	err := testWriter().UpdateNavigation(path, "Release notes", "release-notes/v1.2.0")

	assert.ErrorContains(t, err, `navigation group "Release notes" not found`)
}
