package summary

import (
	"regexp"
	"strings"
)

// LinePredicate tests a single line against one textual heuristic. Each
// heuristic lives behind this interface so it can be unit-tested and
// swapped without touching the extraction pipeline.
type LinePredicate interface {
	Match(line string) bool
}

type regexPredicate struct {
	re *regexp.Regexp
}

func (p regexPredicate) Match(line string) bool {
	return p.re.MatchString(strings.TrimSpace(line))
}

var (
	// SummaryHeading matches lines like "Summary", "## TL;DR" or
	// "### Overview" after trimming.
	SummaryHeading LinePredicate = regexPredicate{regexp.MustCompile(`(?i)^(?:#{2,3}\s*)?(?:summary|tl;?dr|overview)$`)}

	// SectionBoundary matches any markdown heading of level 2 through 6.
	SectionBoundary LinePredicate = regexPredicate{regexp.MustCompile(`^#{2,6}\s`)}
)

// ExtractSection returns the text block beneath the first line matching the
// heading predicate, ending at the next markdown heading or at end of text.
// Returns the empty string when no line matches.
func ExtractSection(text string, heading LinePredicate) string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	start := -1
	for i, line := range lines {
		if heading.Match(line) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return ""
	}
	end := len(lines)
	for i := start; i < len(lines); i++ {
		if SectionBoundary.Match(lines[i]) {
			end = i
			break
		}
	}
	return strings.Join(lines[start:end], "\n")
}
