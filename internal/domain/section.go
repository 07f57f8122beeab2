package domain

import "strings"

// SummarySection is one of the closed set of category labels used by the
// review bot's structured summary blocks. The zero value is SectionUnknown.
type SummarySection int

const (
	SectionUnknown SummarySection = iota
	SectionNewFeatures
	SectionEnhancements
	SectionBreakingChanges
	SectionBugFixes
	SectionImprovements
	SectionValidation
	SectionRefactor
	SectionPerformance
	SectionChores
	SectionData
	SectionDocumentation
	SectionTests
	SectionStyle
	SectionOtherChanges
)

var sectionLabels = map[string]SummarySection{
	"new features":     SectionNewFeatures,
	"enhancements":     SectionEnhancements,
	"breaking changes": SectionBreakingChanges,
	"bug fixes":        SectionBugFixes,
	"improvements":     SectionImprovements,
	"validation":       SectionValidation,
	"refactor":         SectionRefactor,
	"performance":      SectionPerformance,
	"chores":           SectionChores,
	"data":             SectionData,
	"documentation":    SectionDocumentation,
	"tests":            SectionTests,
	"style":            SectionStyle,
	"other changes":    SectionOtherChanges,
}

// ParseSummarySection maps a label line (already stripped of markdown
// markers) to its section. ok is false for anything outside the closed set.
func ParseSummarySection(label string) (SummarySection, bool) {
	s, ok := sectionLabels[strings.ToLower(strings.TrimSpace(label))]
	return s, ok
}

// Rank returns the selection priority of the section; lower ranks are
// selected first. Unknown sections rank last.
func (s SummarySection) Rank() int {
	switch s {
	case SectionNewFeatures, SectionEnhancements, SectionBreakingChanges:
		return 0
	case SectionBugFixes:
		return 1
	case SectionImprovements:
		return 2
	case SectionValidation:
		return 3
	case SectionRefactor, SectionPerformance:
		return 4
	case SectionChores:
		return 5
	case SectionData:
		return 6
	case SectionDocumentation, SectionTests:
		return 7
	case SectionStyle:
		return 8
	case SectionOtherChanges:
		return 9
	default:
		return 99
	}
}

// Prefix returns the verbal transform applied to an item of this section
// when it is rendered into the summary sentence. Empty for sections whose
// items read well as-is.
func (s SummarySection) Prefix() string {
	switch s {
	case SectionBugFixes:
		return "fixed "
	case SectionImprovements:
		return "improved "
	case SectionValidation:
		return "added validation for "
	default:
		return ""
	}
}

// SummaryItem is a single bullet from a sectioned structured-summary block.
type SummaryItem struct {
	Section SummarySection
	Text    string
}
