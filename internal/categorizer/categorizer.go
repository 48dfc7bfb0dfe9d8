// Package categorizer defines the skill-category capability behind the
// analyzer: propose key categories for a job description, then assess a
// resume's fit against them. Two implementations satisfy it, a remote
// Gemini adapter and a local heuristic, selected by configuration. The
// external implementation is best-effort: its output is always validated
// and reconciled downstream, never trusted as-is.
package categorizer

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Categorizer proposes skill categories and assesses resume fit.
//
// ProposeCategories returns the candidate key categories for a job
// description. A transport-level failure is returned as an error; a
// malformed or unusable response returns an empty slice and no error so
// the caller can decide to fall back.
//
// AssessFit returns the qualitative assessment for the given key
// categories. Shape problems degrade to an empty assessment rather than
// an error.
type Categorizer interface {
	ProposeCategories(ctx context.Context, jobText string) ([]string, error)
	AssessFit(ctx context.Context, keyCategories []string, resumeText, jobText string) (*types.Assessment, error)
	// Source identifies which analysis path this implementation represents.
	Source() types.AnalysisSource
}

// TransportError indicates the external categorizer endpoint itself
// failed. Unlike shape errors, transport errors are surfaced to the
// caller as hard failures.
type TransportError struct {
	Op    string
	Cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("categorizer %s failed: %v", e.Op, e.Cause)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}
