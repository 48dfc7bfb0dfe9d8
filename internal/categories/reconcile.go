package categories

import (
	"math"

	"github.com/jonathan/resume-analyzer/internal/textproc"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Reconcile builds the final category sets from a key category list and an
// untrusted assessment. Matched claims are kept only when their normalized
// form exists in the key set (display form taken from the key set, not the
// claim); the missing set is always recomputed locally as the exact set
// complement; bonus claims colliding with the key set are discarded.
func Reconcile(keyCategories []string, assessment *types.Assessment) types.CategoryMatch {
	if assessment == nil {
		assessment = &types.Assessment{}
	}

	// Normalized form -> canonical display form, first occurrence wins.
	keyDisplay := make(map[string]string, len(keyCategories))
	keyOrder := make([]string, 0, len(keyCategories))
	for _, key := range keyCategories {
		norm := textproc.NormalizeCategory(key)
		if norm == "" {
			continue
		}
		if _, ok := keyDisplay[norm]; !ok {
			keyDisplay[norm] = key
			keyOrder = append(keyOrder, norm)
		}
	}

	matchedSet := make(map[string]bool, len(assessment.MatchedCategories))
	for _, claim := range assessment.MatchedCategories {
		norm := textproc.NormalizeCategory(claim)
		if _, ok := keyDisplay[norm]; ok {
			matchedSet[norm] = true
		}
	}

	match := types.CategoryMatch{
		KeyCategories:     []string{},
		MatchedCategories: []string{},
		MissingCategories: []string{},
		BonusCategories:   []string{},
	}
	for _, norm := range keyOrder {
		display := keyDisplay[norm]
		match.KeyCategories = append(match.KeyCategories, display)
		if matchedSet[norm] {
			match.MatchedCategories = append(match.MatchedCategories, display)
		} else {
			match.MissingCategories = append(match.MissingCategories, display)
		}
	}

	bonusSeen := make(map[string]bool, len(assessment.BonusCategories))
	for _, claim := range assessment.BonusCategories {
		if len(match.BonusCategories) >= maxBonusCategories {
			break
		}
		norm := textproc.NormalizeCategory(claim)
		if norm == "" || bonusSeen[norm] {
			continue
		}
		if _, collides := keyDisplay[norm]; collides {
			continue
		}
		bonusSeen[norm] = true
		match.BonusCategories = append(match.BonusCategories, textproc.FormatCategoryDisplay(claim))
	}

	return match
}

// MatchScore returns round(100 * matched / total), or 0 when total is 0.
func MatchScore(matched, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(matched) / float64(total)))
}
