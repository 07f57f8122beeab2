// Package domain contains the core data structures and domain logic for the application.
package domain

import "time"

// PullRequestRecord is a merged pull request as supplied by a gateway or
// fixture. It is never mutated after construction.
type PullRequestRecord struct {
	Number     int       `json:"number"`
	Title      string    `json:"title"`
	Body       string    `json:"body,omitempty"`
	URL        string    `json:"url"`
	MergedAt   time.Time `json:"merged_at"`
	Repository string    `json:"repository"`
}

// Category is the release-note bucket a pull request falls into.
type Category int

const (
	CategoryFeature Category = iota
	CategoryFix
	CategoryMaintenance
)

// String returns the lowercase label used in logs and fixtures.
func (c Category) String() string {
	switch c {
	case CategoryFix:
		return "fix"
	case CategoryMaintenance:
		return "maintenance"
	default:
		return "feature"
	}
}

// DisplayEntry is the one-line, user-facing rendition of a pull request.
// Title holds the display summary, not the raw PR title, and is always
// non-empty, single-line and bounded in length.
type DisplayEntry struct {
	Number   int       `json:"number"`
	Title    string    `json:"title"`
	URL      string    `json:"url"`
	MergedAt time.Time `json:"merged_at"`
	Category Category  `json:"category"`
}

// RepoGroup pairs a configured repository name with its entries, already
// ordered by merge time descending. Entries may be empty; the repository
// still renders in the document.
type RepoGroup struct {
	Repository string
	Entries    []DisplayEntry
}
