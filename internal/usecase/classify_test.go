package usecase

import (
	"testing"

	"github.com/revivehq/release-notes/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		name     string
		title    string
		category domain.Category
		included bool
	}{
		{
			name:     "fix prefix",
			title:    "Fix login redirect",
			category: domain.CategoryFix,
			included: true,
		},
		{
			name:     "whole word fix mid-title",
			title:    "Quick fix for the exporter",
			category: domain.CategoryFix,
			included: true,
		},
		{
			name:     "fixes is not the whole word fix but still matches the prefix",
			title:    "Fixes flaky upload",
			category: domain.CategoryFix,
			included: true,
		},
		{
			name:     "prefix is not required to be a word",
			title:    "Fixture data refresh",
			category: domain.CategoryFix,
			included: true,
		},
		{
			name:     "sprint title is maintenance",
			title:    "Sprint 42",
			category: domain.CategoryMaintenance,
			included: true,
		},
		{
			name:     "sprint with trailing text is still maintenance",
			title:    "sprint 7 cleanup",
			category: domain.CategoryMaintenance,
			included: true,
		},
		{
			name:     "everything else is a feature",
			title:    "Allow exporting reports",
			category: domain.CategoryFeature,
			included: true,
		},
		{
			name:     "update staging is excluded",
			title:    "Update staging config",
			included: false,
		},
		{
			name:     "staging prefix is excluded",
			title:    "Staging rollout tweaks",
			included: false,
		},
		{
			name:     "staging as a word anywhere is excluded",
			title:    "Point deploys at staging",
			included: false,
		},
		{
			name:     "restaging is not the word staging",
			title:    "Restaging the queue worker",
			category: domain.CategoryFeature,
			included: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			category, ok := Classify(tc.title)
			assert.Equal(t, tc.included, ok)
			if tc.included {
				assert.Equal(t, tc.category, category)
			}
		})
	}
}
