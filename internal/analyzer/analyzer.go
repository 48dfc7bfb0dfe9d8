// Package analyzer provides the high-level orchestration for one
// resume/job analysis: tokenization, keyword statistics, category
// reconciliation, compensation fit, and score composition. Each call is
// an independent unit of work with no shared mutable state, so concurrent
// analyses never interfere.
package analyzer

import (
	"context"
	"fmt"
	"math"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-analyzer/internal/categories"
	"github.com/jonathan/resume-analyzer/internal/categorizer"
	"github.com/jonathan/resume-analyzer/internal/compensation"
	"github.com/jonathan/resume-analyzer/internal/keywords"
	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	// DefaultWeight blends category match vs compensation fit in the
	// overall score when no valid weight is configured.
	DefaultWeight = 0.8

	// minKeyCategories is the smallest external proposal worth trusting;
	// below this the whole request falls back to the heuristic path.
	minKeyCategories = 3

	// maxGeneratedSuggestions caps suggestions built from the missing list.
	maxGeneratedSuggestions = 5
)

// InputError reports a missing required input. No partial analysis is
// attempted when one occurs.
type InputError struct {
	Field string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("missing required input: %s", e.Field)
}

// Request carries the raw inputs for one analysis. Salary bounds are
// loosely formatted strings; empty strings mean absent. Weight, when in
// (0, 1), overrides the Analyzer's configured blend for this request.
type Request struct {
	ResumeText string
	JobText    string

	CandidateSalaryMin string
	CandidateSalaryMax string
	RoleSalaryMin      string
	RoleSalaryMax      string

	Weight float64
}

// Analyzer runs the scoring pipeline. Construct with New; the zero value
// is not usable.
type Analyzer struct {
	cat    categorizer.Categorizer
	weight float64
}

// New creates an Analyzer. A nil categorizer selects the local heuristic.
// Weights outside (0, 1) fall back to DefaultWeight.
func New(cat categorizer.Categorizer, weight float64) *Analyzer {
	if cat == nil {
		cat = categorizer.NewHeuristic()
	}
	if weight <= 0 || weight >= 1 {
		weight = DefaultWeight
	}
	return &Analyzer{cat: cat, weight: weight}
}

// Analyze runs the full pipeline for one request. Transport failures of
// the external categorizer are returned as errors; shape failures degrade
// silently to the heuristic path or to defaults, detectable only in the
// result content.
func (a *Analyzer) Analyze(ctx context.Context, req Request) (*types.AnalysisResult, error) {
	resumeText := strings.TrimSpace(req.ResumeText)
	jobText := strings.TrimSpace(req.JobText)
	if resumeText == "" {
		return nil, &InputError{Field: "resume text"}
	}
	if jobText == "" {
		return nil, &InputError{Field: "job text"}
	}

	// The local computations are pure and independent; only their outputs
	// join at composition time.
	var stats keywords.Stats
	var comp types.CompensationFit
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		stats = keywords.Extract(jobText, resumeText)
		return nil
	})
	g.Go(func() error {
		candidate := types.ParseSalaryRange(req.CandidateSalaryMin, req.CandidateSalaryMax)
		role := types.ParseSalaryRange(req.RoleSalaryMin, req.RoleSalaryMax)
		comp = compensation.Score(candidate, role)
		return nil
	})
	_ = g.Wait() // the local goroutines never return errors

	match, assessment, source, err := a.categorize(ctx, resumeText, jobText)
	if err != nil {
		return nil, err
	}

	matchScore := categories.MatchScore(len(match.MatchedCategories), len(match.KeyCategories))

	weight := a.weight
	if req.Weight > 0 && req.Weight < 1 {
		weight = req.Weight
	}

	result := &types.AnalysisResult{
		MatchScore:      types.IntPtr(matchScore),
		OverallScore:    ComposeOverall(types.IntPtr(matchScore), comp.Score, weight),
		CategoryMatch:   match,
		MatchedKeywords: stats.Matched,
		MissingKeywords: stats.Missing,
		Compensation:    comp,
		Summary:         assessment.Summary,
		Suggestions:     assessment.Suggestions,
		BulletRewrites:  assessment.BulletRewrites,
		ATSNotes:        assessment.ATSNotes,
		Source:          source,
	}
	fillDefaults(result)
	return result, nil
}

// categorize selects between the external proposal and the whole-request
// fallback, then reconciles whatever assessment was obtained.
func (a *Analyzer) categorize(ctx context.Context, resumeText, jobText string) (types.CategoryMatch, *types.Assessment, types.AnalysisSource, error) {
	keys, err := a.cat.ProposeCategories(ctx, jobText)
	if err != nil {
		return types.CategoryMatch{}, nil, "", err
	}

	if len(keys) < minKeyCategories && a.cat.Source() != types.SourceHeuristic {
		// The external source degraded too severely to partially trust;
		// abandon it for this request entirely.
		match := categories.Fallback(resumeText, jobText)
		return match, &types.Assessment{}, types.SourceHeuristic, nil
	}

	assessment, err := a.cat.AssessFit(ctx, keys, resumeText, jobText)
	if err != nil {
		return types.CategoryMatch{}, nil, "", err
	}
	if assessment == nil {
		assessment = &types.Assessment{}
	}

	return categories.Reconcile(keys, assessment), assessment, a.cat.Source(), nil
}

// ComposeOverall blends the category match score with the compensation
// fit score. A nil match score yields nil; a nil compensation score
// passes the match score through unchanged. Weights outside (0, 1) use
// DefaultWeight.
func ComposeOverall(matchScore, compensationScore *int, weight float64) *int {
	if matchScore == nil {
		return nil
	}
	if compensationScore == nil {
		v := *matchScore
		return &v
	}
	if weight <= 0 || weight >= 1 {
		weight = DefaultWeight
	}
	blended := float64(*matchScore)*weight + float64(*compensationScore)*(1-weight)
	return types.IntPtr(int(math.Round(blended)))
}

// fillDefaults backfills any derivable field the categorizer left absent:
// a result never ships with an empty summary or suggestion list when the
// local engines can provide one.
func fillDefaults(result *types.AnalysisResult) {
	if result.MatchedKeywords == nil {
		result.MatchedKeywords = []string{}
	}
	if result.MissingKeywords == nil {
		result.MissingKeywords = []string{}
	}

	if result.Summary == "" {
		mode := ""
		if result.Source == types.SourceHeuristic {
			mode = " (heuristic analysis)"
		}
		result.Summary = fmt.Sprintf(
			"Your resume matches %d of %d key skill categories from the job description%s.",
			len(result.CategoryMatch.MatchedCategories), len(result.CategoryMatch.KeyCategories), mode)
	}

	if len(result.Suggestions) == 0 {
		suggestions := make([]string, 0, maxGeneratedSuggestions)
		for _, missing := range result.CategoryMatch.MissingCategories {
			if len(suggestions) >= maxGeneratedSuggestions {
				break
			}
			suggestions = append(suggestions, fmt.Sprintf("Add evidence of %s to your resume.", missing))
		}
		result.Suggestions = suggestions
	}

	if result.Compensation.Notes == nil {
		result.Compensation.Notes = []string{}
	}
}
