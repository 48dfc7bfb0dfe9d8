// Package categories derives, validates, and reconciles skill-category
// sets for resume/job analysis. The fallback extractor is the safety net
// used when no external categorizer is configured or its output is
// unusable; the reconciler enforces the category-set invariants no matter
// which source produced the categories.
package categories

import (
	"github.com/jonathan/resume-analyzer/internal/textproc"
	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	// maxKeyCategories caps the key category set.
	maxKeyCategories = 6
	// maxFallbackBonus caps bonus categories on the fallback path.
	maxFallbackBonus = 6
	// maxBonusCategories caps bonus categories after reconciliation.
	maxBonusCategories = 8
)

// Fallback derives category sets locally from the two documents. It is
// deliberately crude: the first maxKeyCategories unique job tokens become
// the key set, matched by normalized-token presence in the resume. It
// never fails; tiny or empty inputs yield empty sets.
func Fallback(resumeText, jobText string) types.CategoryMatch {
	jobTokens := textproc.UniqueTokens(jobText)
	resumeTokens := textproc.UniqueTokenSet(resumeText)

	match := types.CategoryMatch{
		KeyCategories:     []string{},
		MatchedCategories: []string{},
		MissingCategories: []string{},
		BonusCategories:   []string{},
	}

	keySet := make(map[string]bool, maxKeyCategories)
	for _, tok := range jobTokens {
		if len(match.KeyCategories) >= maxKeyCategories {
			break
		}
		display := textproc.FormatCategoryDisplay(tok)
		match.KeyCategories = append(match.KeyCategories, display)
		keySet[textproc.NormalizeCategory(tok)] = true

		if resumeTokens[tok] {
			match.MatchedCategories = append(match.MatchedCategories, display)
		} else {
			match.MissingCategories = append(match.MissingCategories, display)
		}
	}

	for _, tok := range jobTokens {
		if len(match.BonusCategories) >= maxFallbackBonus {
			break
		}
		if keySet[textproc.NormalizeCategory(tok)] {
			continue
		}
		if resumeTokens[tok] {
			match.BonusCategories = append(match.BonusCategories, textproc.FormatCategoryDisplay(tok))
		}
	}

	return match
}
