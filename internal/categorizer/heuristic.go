package categorizer

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-analyzer/internal/categories"
	"github.com/jonathan/resume-analyzer/internal/textproc"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Heuristic is the local categorizer used when no external service is
// configured. It derives categories from token statistics only, so it
// never fails and never needs a network.
type Heuristic struct{}

// NewHeuristic creates the local heuristic categorizer.
func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

// ProposeCategories derives key categories from the job text alone, using
// the fallback extractor's first-N rule.
func (h *Heuristic) ProposeCategories(_ context.Context, jobText string) ([]string, error) {
	return categories.Fallback("", jobText).KeyCategories, nil
}

// AssessFit matches the given key categories against the resume's
// normalized token set and reports resume-side extras as bonus claims.
// The summary names the heuristic mode so the executed path stays
// detectable in the output.
func (h *Heuristic) AssessFit(_ context.Context, keyCategories []string, resumeText, jobText string) (*types.Assessment, error) {
	resumeTokens := textproc.UniqueTokenSet(resumeText)

	matched := make([]string, 0, len(keyCategories))
	for _, key := range keyCategories {
		if resumeTokens[textproc.NormalizeCategory(key)] {
			matched = append(matched, key)
		}
	}

	bonus := categories.Fallback(resumeText, jobText).BonusCategories

	return &types.Assessment{
		Summary: fmt.Sprintf(
			"Heuristic analysis: your resume matches %d of %d key skill areas from the job description.",
			len(matched), len(keyCategories)),
		MatchedCategories: matched,
		BonusCategories:   bonus,
	}, nil
}

// Source reports the local heuristic analysis path.
func (h *Heuristic) Source() types.AnalysisSource {
	return types.SourceHeuristic
}
