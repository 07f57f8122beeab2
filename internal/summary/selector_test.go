package summary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectorSelect(t *testing.T) {
	testCases := []struct {
		name     string
		body     string
		expected string
	}{
		{
			name:     "structured summary wins over a heading section",
			body:     "## Summary\nhand-written summary\n\nSummary by CodeRabbit\n\nNew Features\n- Added exports\n",
			expected: "Added exports",
		},
		{
			name:     "heading section is the fallback",
			body:     "## Summary\nhand-written summary\n\n## Details\nrest",
			expected: "hand-written summary",
		},
		{
			name:     "no marker and no heading yields empty",
			body:     "just a plain body\nwith text",
			expected: "",
		},
		{
			name:     "empty body yields empty",
			body:     "",
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			selector := NewSelector(Options{})
			assert.Equal(t, tc.expected, selector.Select(tc.body))
		})
	}
}

func TestTruncateToOneLine(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{
			name:     "newlines flatten to single spaces",
			input:    "line one\nline two\n\nline three",
			maxLen:   200,
			expected: "line one line two line three",
		},
		{
			name:     "short text passes through",
			input:    "short",
			maxLen:   200,
			expected: "short",
		},
		{
			name:     "cut lands on a word boundary",
			input:    "aaaa bbbb cccc dddd",
			maxLen:   12,
			expected: "aaaa bbbb…",
		},
		{
			name:     "no usable boundary forces a hard cut",
			input:    strings.Repeat("x", 30),
			maxLen:   12,
			expected: strings.Repeat("x", 11) + "…",
		},
		{
			name:     "boundary check counts runes, not bytes",
			input:    "ééééé " + strings.Repeat("é", 20),
			maxLen:   12,
			expected: "ééééé ééééé…",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, TruncateToOneLine(tc.input, tc.maxLen))
		})
	}
}

func TestTruncateToOneLineBound(t *testing.T) {
	inputs := []string{
		strings.Repeat("word ", 100),
		strings.Repeat("y", 500),
		"short",
		"",
	}
	for _, maxLen := range []int{10, 60, 200} {
		for _, input := range inputs {
			got := TruncateToOneLine(input, maxLen)
			assert.LessOrEqual(t, len([]rune(got)), maxLen, "maxLen %d input %q", maxLen, input)
		}
	}
}
