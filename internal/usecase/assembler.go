package usecase

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/revivehq/release-notes/internal/domain"
)

const (
	noUpdatesLine    = "No updates in this release."
	noFixesLine      = "No bug fixes in this release."
	maintenanceLine  = "This release focuses on routine maintenance and internal improvements."
	fixesOnlyLine    = "This release focuses on bug fixes and stability improvements."
	noBreakingLine   = "No breaking changes in this release."
	sprintAnnotation = " (sprint-cadence maintenance)"
)

// Titles that are exactly "Sprint <N>" say nothing on their own; they get a
// descriptive suffix before rendering.
var bareSprintTitle = regexp.MustCompile(`^Sprint \d+$`)

// Assembler renders the final release document from grouped display
// entries. Section order and headings are fixed; only the entries vary.
type Assembler struct {
	highlightCount int
}

// NewAssembler creates an Assembler that shows up to highlightCount
// feature entries in the Highlights section.
func NewAssembler(highlightCount int) *Assembler {
	if highlightCount <= 0 {
		highlightCount = 6
	}
	return &Assembler{highlightCount: highlightCount}
}

// Render produces the full Markdown document body, front matter included.
func (a *Assembler) Render(version string, groups []domain.RepoGroup) string {
	var b strings.Builder
	fmt.Fprintf(&b, "---\ntitle: %s\ndescription: Release notes for %s\n---\n", version, version)

	a.writeHighlights(&b, groups)
	a.writeChanges(&b, groups)
	a.writeFixes(&b, groups)

	b.WriteString("\n## Breaking changes\n\n")
	b.WriteString(noBreakingLine + "\n")
	return b.String()
}

func (a *Assembler) writeHighlights(b *strings.Builder, groups []domain.RepoGroup) {
	b.WriteString("\n## Highlights\n\n")
	features := collect(groups, domain.CategoryFeature)
	if len(features) > a.highlightCount {
		features = features[:a.highlightCount]
	}
	switch {
	case len(features) > 0:
		for _, entry := range features {
			fmt.Fprintf(b, "- %s\n", displayTitle(entry))
		}
	case len(collect(groups, domain.CategoryFix)) > 0:
		b.WriteString(fixesOnlyLine + "\n")
	default:
		b.WriteString(maintenanceLine + "\n")
	}
}

func (a *Assembler) writeChanges(b *strings.Builder, groups []domain.RepoGroup) {
	b.WriteString("\n## Changes shipped to production\n")
	for _, group := range groups {
		fmt.Fprintf(b, "\n### %s\n\n", group.Repository)
		if len(group.Entries) == 0 {
			b.WriteString(noUpdatesLine + "\n")
			continue
		}
		for _, entry := range group.Entries {
			writeEntry(b, entry)
		}
	}
}

func (a *Assembler) writeFixes(b *strings.Builder, groups []domain.RepoGroup) {
	b.WriteString("\n## Fixes\n\n")
	fixes := collect(groups, domain.CategoryFix)
	if len(fixes) == 0 {
		b.WriteString(noFixesLine + "\n")
		return
	}
	for _, entry := range fixes {
		writeEntry(b, entry)
	}
}

func writeEntry(b *strings.Builder, entry domain.DisplayEntry) {
	fmt.Fprintf(b, "- %s (#%d, %s)\n", displayTitle(entry), entry.Number, entry.URL)
}

// collect gathers entries of one category across all groups, preserving
// group order and the per-group merge ordering.
func collect(groups []domain.RepoGroup, category domain.Category) []domain.DisplayEntry {
	var out []domain.DisplayEntry
	for _, group := range groups {
		for _, entry := range group.Entries {
			if entry.Category == category {
				out = append(out, entry)
			}
		}
	}
	return out
}

func displayTitle(entry domain.DisplayEntry) string {
	if bareSprintTitle.MatchString(entry.Title) {
		return entry.Title + sprintAnnotation
	}
	return entry.Title
}
