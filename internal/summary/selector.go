package summary

import "strings"

// Source is one strategy for deriving a summary from a pull-request body.
// Sources are consulted in order; the first non-empty result wins.
type Source interface {
	Name() string
	Extract(body string) string
}

type structuredSource struct {
	extractor *Extractor
}

func (s structuredSource) Name() string               { return "structured" }
func (s structuredSource) Extract(body string) string { return s.extractor.Extract(body) }

type headingSource struct{}

func (headingSource) Name() string { return "heading" }
func (headingSource) Extract(body string) string {
	return ExtractSection(body, SummaryHeading)
}

// Selector chains summary sources: the bot's structured summary first, then
// any "Summary"/"TLDR"/"Overview" heading section. An empty result means
// the caller should fall back to the cleaned title.
type Selector struct {
	sources []Source
}

// NewSelector builds the standard source chain.
func NewSelector(opts Options) *Selector {
	return &Selector{sources: []Source{
		structuredSource{extractor: NewExtractor(opts)},
		headingSource{},
	}}
}

// Select returns the first non-empty summary produced by the source chain,
// trimmed of surrounding whitespace.
func (s *Selector) Select(body string) string {
	for _, src := range s.sources {
		if out := strings.TrimSpace(src.Extract(body)); out != "" {
			return out
		}
	}
	return ""
}

// TruncateToOneLine flattens text to a single line and bounds it to maxLen
// runes, the trailing ellipsis counting as one. The cut lands on the last
// word boundary past 60% of maxLen when one exists, otherwise it is hard.
func TruncateToOneLine(text string, maxLen int) string {
	text = strings.TrimSpace(spaceRuns.ReplaceAllString(text, " "))
	runes := []rune(text)
	if maxLen <= 0 || len(runes) <= maxLen {
		return text
	}
	head := runes[:maxLen-1]
	cut := -1
	for i, r := range head {
		if r == ' ' {
			cut = i
		}
	}
	if cut >= maxLen*6/10 {
		head = head[:cut]
	}
	return strings.TrimRight(string(head), " ") + "…"
}
