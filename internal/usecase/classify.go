// Package usecase contains the business logic of the application.
package usecase

import (
	"regexp"
	"strings"

	"github.com/revivehq/release-notes/internal/domain"
)

var (
	fixPrefix   = regexp.MustCompile(`(?i)^fix`)
	fixWord     = regexp.MustCompile(`(?i)\bfix\b`)
	sprintTitle = regexp.MustCompile(`(?i)^sprint \d+`)
	stagingWord = regexp.MustCompile(`(?i)\bstaging\b`)
)

// Classify buckets a pull request by its original, uncleaned title. The
// second return is false when the pull request is excluded from release
// notes entirely (staging-only changes). Classification never looks at the
// body or the derived display summary.
func Classify(title string) (domain.Category, bool) {
	title = strings.TrimSpace(title)
	lower := strings.ToLower(title)
	if stagingWord.MatchString(title) ||
		strings.HasPrefix(lower, "update staging") ||
		strings.HasPrefix(lower, "staging") {
		return domain.CategoryFeature, false
	}
	switch {
	case fixPrefix.MatchString(title) || fixWord.MatchString(title):
		return domain.CategoryFix, true
	case sprintTitle.MatchString(title):
		return domain.CategoryMaintenance, true
	default:
		return domain.CategoryFeature, true
	}
}
