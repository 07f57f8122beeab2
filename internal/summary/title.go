package summary

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	// Conventional-commit prefixes such as "feat(auth): " or "fix: ".
	conventionalPrefix = regexp.MustCompile(`(?i)^(?:feat|feature|fix|bugfix|hotfix|chore|refactor|docs|doc|ci|style|perf|test|tests|build)(?:\([^)]*\))?:\s*`)

	// Branch names of the form "TEC-7097/Some-Change/First-Last".
	ticketBranch  = regexp.MustCompile(`^[A-Z][A-Z0-9]*-\d+/`)
	ticketToken   = regexp.MustCompile(`^[A-Z][A-Z0-9]*-\d+$`)
	authorSegment = regexp.MustCompile(`^[A-Z][a-z]+-[A-Z][a-z]+$`)

	spaceRuns = regexp.MustCompile(`\s+`)
)

// CleanTitle converts a raw pull-request title, which is often a
// conventional-commit subject or a pasted branch name, into a readable
// phrase. The result is non-empty whenever the input is non-empty.
func CleanTitle(raw string) string {
	title := strings.TrimSpace(raw)
	title = conventionalPrefix.ReplaceAllString(title, "")

	if ticketBranch.MatchString(title) {
		segments := strings.Split(title, "/")
		kept := make([]string, 0, len(segments))
		for i, seg := range segments {
			if ticketToken.MatchString(seg) {
				continue
			}
			if i == len(segments)-1 && authorSegment.MatchString(seg) {
				continue
			}
			kept = append(kept, seg)
		}
		if len(kept) > 0 {
			// Branch segments are dash-cased words; fold them to lower
			// case so the final capitalization produces a sentence.
			title = strings.ToLower(strings.Join(kept, " "))
		}
	}

	title = strings.ReplaceAll(title, "-", " ")
	title = strings.TrimSpace(spaceRuns.ReplaceAllString(title, " "))
	if title == "" {
		return strings.TrimSpace(raw)
	}

	runes := []rune(title)
	if len(runes) > 3 && title == strings.ToUpper(title) && title != strings.ToLower(title) {
		return string(runes[0]) + strings.ToLower(string(runes[1:]))
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
