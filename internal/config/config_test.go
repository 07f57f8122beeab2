package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "revivehq", cfg.Org)
	assert.Equal(t, []string{"revive-web", "revive-mobile", "revive-api"}, cfg.Repositories)
	assert.Equal(t, 200, cfg.MaxSummaryLength)
	assert.Equal(t, 6, cfg.HighlightCount)
	assert.Equal(t, 4, cfg.SummaryItemCap)
	assert.Equal(t, 2, cfg.SummarySectionCap)
	assert.False(t, cfg.DedupeFixPrefix)
	assert.Equal(t, "docs/release-notes", cfg.DocsDir)
	assert.Equal(t, "Release notes", cfg.NavigationGroup)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "release-notes.yaml")
	raw := `org: acme
repositories:
  - acme-api
  - acme-web
max_summary_length: 120
highlight_count: 3
dedupe_fix_prefix: true
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "acme", cfg.Org)
	assert.Equal(t, []string{"acme-api", "acme-web"}, cfg.Repositories)
	assert.Equal(t, 120, cfg.MaxSummaryLength)
	assert.Equal(t, 3, cfg.HighlightCount)
	assert.True(t, cfg.DedupeFixPrefix)
	// Unset fields still default.
	assert.Equal(t, 4, cfg.SummaryItemCap)
	assert.Equal(t, "docs/release-notes", cfg.DocsDir)
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

	require.NoError(t, err)
	assert.Equal(t, "revivehq", cfg.Org)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("repositories: [unterminated"), 0o644))

	_, err := Load(path)

	assert.Error(t, err)
}

func TestLoadReadsTokenFromEnv(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "test-token")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "test-token", cfg.Token)
}
