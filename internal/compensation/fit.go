// Package compensation scores how well a candidate's salary expectations
// fit a role's advertised range.
package compensation

import (
	"math"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Score computes the 0-100 overlap fit between the candidate's expected
// range and the role's range. When the ranges overlap, the score is the
// overlap as a share of the role's span. When they do not, the score
// decays linearly with the size of the gap relative to the role's span.
// A nil range on either side yields a nil score.
func Score(candidate, role *types.SalaryRange) types.CompensationFit {
	if candidate == nil || role == nil {
		return types.CompensationFit{
			Score: nil,
			Notes: []string{"Salary range missing for one or both inputs."},
		}
	}

	span := math.Max(1, role.Span())
	overlap := math.Min(candidate.Max, role.Max) - math.Max(candidate.Min, role.Min)

	var score int
	notes := make([]string, 0, 2)
	if overlap > 0 {
		score = int(math.Round(100 * overlap / span))
		notes = append(notes, "Candidate and role salary ranges overlap.")
	} else {
		var gap float64
		if candidate.Min > role.Max {
			gap = candidate.Min - role.Max
		} else {
			gap = role.Min - candidate.Max
		}
		score = int(math.Round(100 - 100*gap/span))
		if score < 0 {
			score = 0
		}
		notes = append(notes, "Candidate and role salary ranges do not overlap.")
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	if candidate.Min > role.Max {
		notes = append(notes, "Candidate expectations sit above the role's maximum.")
	} else if candidate.Max < role.Min {
		notes = append(notes, "Candidate expectations sit below the role's minimum.")
	}

	return types.CompensationFit{Score: types.IntPtr(score), Notes: notes}
}
