// Package docs writes rendered release pages to the documentation tree and
// keeps the site navigation in sync.
package docs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Writer persists release documents. It refuses to overwrite a page that
// already exists; regenerating a published release is an operator decision.
type Writer struct {
	logger *log.Logger
}

// NewWriter creates a Writer.
func NewWriter(logger *log.Logger) *Writer {
	return &Writer{logger: logger}
}

// WritePage writes the document body to <dir>/<version>.md and returns the
// path. Fails when the page already exists.
func (w *Writer) WritePage(dir, version, body string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create docs dir: %w", err)
	}
	path := filepath.Join(dir, version+".md")
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("release page already exists: %s", path)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return "", fmt.Errorf("write release page: %w", err)
	}
	w.logger.Printf("wrote %s", path)
	return path, nil
}

// UpdateNavigation inserts the page reference at the front of the named
// navigation group in the site config. Every unrelated field of the JSON
// document passes through untouched.
func (w *Writer) UpdateNavigation(path, group, page string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read navigation config: %w", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse navigation config: %w", err)
	}

	groups, ok := doc["navigation"].([]any)
	if !ok {
		return fmt.Errorf("navigation config %s has no navigation array", path)
	}
	found := false
	for _, g := range groups {
		entry, ok := g.(map[string]any)
		if !ok || entry["group"] != group {
			continue
		}
		found = true
		pages, _ := entry["pages"].([]any)
		for _, p := range pages {
			if p == page {
				w.logger.Printf("navigation already lists %s", page)
				return nil
			}
		}
		entry["pages"] = append([]any{page}, pages...)
	}
	if !found {
		return fmt.Errorf("navigation group %q not found in %s", group, path)
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode navigation config: %w", err)
	}
	if err := os.WriteFile(path, append(out, '\n'), 0o644); err != nil {
		return fmt.Errorf("write navigation config: %w", err)
	}
	w.logger.Printf("added %s to navigation group %q", page, group)
	return nil
}
