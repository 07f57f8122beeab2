// Package summary turns free-form pull-request descriptions into one-line
// display summaries. Every function in this package is a pure text
// transformation: total over any input string and safe to call concurrently.
package summary

import (
	"regexp"
	"strings"
)

var (
	listMarker = regexp.MustCompile(`^\s*(?:[-*]|\d+\.)\s+`)
	blankRuns  = regexp.MustCompile(`\n{3,}`)
)

// Normalize canonicalizes a block of text: CRLF line endings become LF,
// leading list markers are stripped from each line, runs of three or more
// newlines collapse to exactly two, and surrounding whitespace is trimmed.
// Idempotent: Normalize(Normalize(x)) == Normalize(x).
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		// Strip until no marker remains so repeated application is a no-op.
		for {
			stripped := listMarker.ReplaceAllString(line, "")
			if stripped == line {
				break
			}
			line = stripped
		}
		lines[i] = line
	}
	text = blankRuns.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	return strings.TrimSpace(text)
}
