// Package config loads the generator configuration from an optional YAML
// file, applying defaults for anything left unset.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds everything the pipeline and the docs writer need. The
// repository list is ordered: it defines both the working set and the
// order of the per-repository sections in the output.
type Config struct {
	Org          string   `yaml:"org"`
	Repositories []string `yaml:"repositories"`

	DocsDir         string `yaml:"docs_dir"`
	NavigationPath  string `yaml:"navigation_path"`
	NavigationGroup string `yaml:"navigation_group"`

	MaxSummaryLength  int  `yaml:"max_summary_length"`
	HighlightCount    int  `yaml:"highlight_count"`
	SummaryItemCap    int  `yaml:"summary_item_cap"`
	SummarySectionCap int  `yaml:"summary_section_cap"`
	DedupeFixPrefix   bool `yaml:"dedupe_fix_prefix"`

	// Token is read from the environment, never from the file.
	Token string `yaml:"-"`
}

// Load reads the YAML file at path when it exists and fills in defaults.
// An empty path yields the default configuration.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	if cfg.Org == "" {
		cfg.Org = "revivehq"
	}
	if len(cfg.Repositories) == 0 {
		cfg.Repositories = []string{"revive-web", "revive-mobile", "revive-api"}
	}
	if cfg.DocsDir == "" {
		cfg.DocsDir = "docs/release-notes"
	}
	if cfg.NavigationPath == "" {
		cfg.NavigationPath = "docs/mint.json"
	}
	if cfg.NavigationGroup == "" {
		cfg.NavigationGroup = "Release notes"
	}
	if cfg.MaxSummaryLength <= 0 {
		cfg.MaxSummaryLength = 200
	}
	if cfg.HighlightCount <= 0 {
		cfg.HighlightCount = 6
	}
	if cfg.SummaryItemCap <= 0 {
		cfg.SummaryItemCap = 4
	}
	if cfg.SummarySectionCap <= 0 {
		cfg.SummarySectionCap = 2
	}

	cfg.Token = os.Getenv("GITHUB_TOKEN")
	return &cfg, nil
}
