package summary

import (
	"sort"
	"strings"
	"unicode"

	"github.com/revivehq/release-notes/internal/domain"
)

// Options tunes the structured-summary extraction. The zero value is
// replaced by the observed defaults: at most 4 items per sentence, at most
// 2 per section.
type Options struct {
	// ItemCap bounds the total number of items in the rendered sentence.
	ItemCap int
	// SectionCap bounds the number of items taken from a single section.
	SectionCap int
	// DedupeFixPrefix suppresses the per-section verbal prefix when the
	// item text already begins with it ("Fixed crash" would otherwise
	// render as "fixed fixed crash"). Off by default to match the
	// long-standing output.
	DedupeFixPrefix bool
}

func (o Options) withDefaults() Options {
	if o.ItemCap <= 0 {
		o.ItemCap = 4
	}
	if o.SectionCap <= 0 {
		o.SectionCap = 2
	}
	return o
}

// Extractor condenses the structured summary block that the review bot
// appends to pull-request descriptions into a single prose sentence.
type Extractor struct {
	opts Options
}

// NewExtractor creates an Extractor, filling unset options with defaults.
func NewExtractor(opts Options) *Extractor {
	return &Extractor{opts: opts.withDefaults()}
}

// markerTrimSet covers the markdown emphasis, heading and list characters
// that may wrap the bot's marker line ("## Summary by CodeRabbit", etc).
const markerTrimSet = "#*_~`-: \t"

func isMarkerLine(line string) bool {
	return strings.EqualFold(strings.Trim(line, markerTrimSet), "summary by coderabbit")
}

// labelOf reports whether a trimmed line is one of the closed set of
// category labels, ignoring any emphasis or heading decoration.
func labelOf(trimmed string) (domain.SummarySection, bool) {
	return domain.ParseSummarySection(strings.Trim(trimmed, "#*_~`: \t"))
}

// Extract returns the condensed sentence, or the empty string when the body
// carries no recognizable structured summary. Never fails: malformed blocks
// degrade to an empty result and the caller falls back.
func (e *Extractor) Extract(body string) string {
	lines := strings.Split(strings.ReplaceAll(body, "\r\n", "\n"), "\n")
	start := -1
	for i, line := range lines {
		if isMarkerLine(line) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return ""
	}

	block := captureBlock(lines[start:])
	if !hasSectionLabel(block) {
		return Normalize(strings.Join(block, "\n"))
	}

	items := parseItems(block)
	if len(items) == 0 {
		return ""
	}
	return Normalize(e.render(e.selectItems(rank(items))))
}

// captureBlock collects the bot-authored block: everything up to the next
// marker, the next markdown heading, a pasted "image" artifact line, or a
// comment delimiter. Blank lines are structural separators, not ends.
func captureBlock(lines []string) []string {
	var block []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if isMarkerLine(line) ||
			SectionBoundary.Match(trimmed) ||
			strings.EqualFold(trimmed, "image") ||
			strings.HasPrefix(trimmed, "<!--") ||
			strings.HasPrefix(trimmed, "-->") {
			break
		}
		block = append(block, line)
	}
	return block
}

func hasSectionLabel(block []string) bool {
	for _, line := range block {
		if _, ok := labelOf(strings.TrimSpace(line)); ok {
			return true
		}
	}
	return false
}

// parseItems walks a sectioned block: category-label lines switch the
// current section, every other non-empty line becomes an item under it.
// Lines preceding the first label are discarded.
func parseItems(block []string) []domain.SummaryItem {
	var items []domain.SummaryItem
	current := domain.SectionUnknown
	seenLabel := false
	for _, line := range block {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if section, ok := labelOf(trimmed); ok {
			current = section
			seenLabel = true
			continue
		}
		if !seenLabel {
			continue
		}
		text := strings.Trim(listMarker.ReplaceAllString(trimmed, ""), "*_~` ")
		if text == "" {
			continue
		}
		items = append(items, domain.SummaryItem{Section: current, Text: text})
	}
	return items
}

// rank orders items by ascending section priority; ties keep source order.
func rank(items []domain.SummaryItem) []domain.SummaryItem {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Section.Rank() < items[j].Section.Rank()
	})
	return items
}

// selectItems takes up to ItemCap items from the ranked list, skipping (but
// not stopping at) items whose section already reached SectionCap.
func (e *Extractor) selectItems(ranked []domain.SummaryItem) []domain.SummaryItem {
	perSection := make(map[domain.SummarySection]int)
	var selected []domain.SummaryItem
	for _, item := range ranked {
		if len(selected) >= e.opts.ItemCap {
			break
		}
		if perSection[item.Section] >= e.opts.SectionCap {
			continue
		}
		perSection[item.Section]++
		selected = append(selected, item)
	}
	return selected
}

// render joins the selected items into one sentence: each item is
// lower-cased at its first character, clipped, given its section's verbal
// prefix, then the fragments are joined Oxford-comma style with the first
// fragment re-capitalized.
func (e *Extractor) render(selected []domain.SummaryItem) string {
	fragments := make([]string, 0, len(selected))
	for _, item := range selected {
		fragments = append(fragments, e.fragment(item))
	}
	switch len(fragments) {
	case 0:
		return ""
	case 1:
		return upperFirst(fragments[0])
	case 2:
		return upperFirst(fragments[0]) + " and " + fragments[1]
	default:
		last := fragments[len(fragments)-1]
		return upperFirst(strings.Join(fragments[:len(fragments)-1], ", ")) + ", and " + last
	}
}

func (e *Extractor) fragment(item domain.SummaryItem) string {
	text := clipFragment(lowerFirst(item.Text))
	prefix := item.Section.Prefix()
	if prefix != "" && e.opts.DedupeFixPrefix && strings.HasPrefix(text, prefix) {
		prefix = ""
	}
	return prefix + text
}

// clipFragment bounds a fragment to 80 runes, cutting at the nearest
// preceding space when one exists past position 40, otherwise hard-cutting
// at 77 runes with an ellipsis. Positions are rune positions throughout.
func clipFragment(text string) string {
	runes := []rune(text)
	if len(runes) <= 80 {
		return text
	}
	cut := -1
	for i, r := range runes[:80] {
		if r == ' ' {
			cut = i
		}
	}
	if cut >= 40 {
		return strings.TrimRight(string(runes[:cut]), " ")
	}
	return string(runes[:77]) + "…"
}

func lowerFirst(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

func upperFirst(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
