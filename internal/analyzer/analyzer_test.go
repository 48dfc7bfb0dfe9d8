package analyzer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/categories"
	"github.com/jonathan/resume-analyzer/internal/categorizer"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// fakeCategorizer scripts the external path without any network traffic.
type fakeCategorizer struct {
	keys        []string
	assessment  *types.Assessment
	proposeErr  error
	assessErr   error
	assessCalls int
}

func (f *fakeCategorizer) ProposeCategories(ctx context.Context, jobText string) ([]string, error) {
	if f.proposeErr != nil {
		return nil, f.proposeErr
	}
	return f.keys, nil
}

func (f *fakeCategorizer) AssessFit(ctx context.Context, keyCategories []string, resumeText, jobText string) (*types.Assessment, error) {
	f.assessCalls++
	if f.assessErr != nil {
		return nil, f.assessErr
	}
	if f.assessment != nil {
		return f.assessment, nil
	}
	return &types.Assessment{}, nil
}

func (f *fakeCategorizer) Source() types.AnalysisSource {
	return types.SourceLLM
}

const (
	testResume = `Senior engineer with five years of python development,
building services deployed on kubernetes clusters with docker containers.
Led incident response and postgres schema design.`

	testJob = `We need a backend engineer fluent in python and kubernetes.
Experience with terraform is required. Exposure to docker and postgres
deployment pipelines is a plus. Python used daily.`
)

func TestAnalyze_FullExternalPath(t *testing.T) {
	fake := &fakeCategorizer{
		keys: []string{"Python", "Kubernetes", "Terraform"},
		assessment: &types.Assessment{
			Summary:           "Strong backend match.",
			MatchedCategories: []string{"python", "kubernetes"},
			BonusCategories:   []string{"Incident Response"},
			Suggestions:       []string{"Mention terraform modules you have authored."},
		},
	}
	a := New(fake, 0.8)

	result, err := a.Analyze(context.Background(), Request{
		ResumeText: testResume,
		JobText:    testJob,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Python", "Kubernetes", "Terraform"}, result.CategoryMatch.KeyCategories)
	assert.Equal(t, []string{"Python", "Kubernetes"}, result.CategoryMatch.MatchedCategories)
	assert.Equal(t, []string{"Terraform"}, result.CategoryMatch.MissingCategories)
	assert.Equal(t, []string{"Incident Response"}, result.CategoryMatch.BonusCategories)

	require.NotNil(t, result.MatchScore)
	assert.Equal(t, 67, *result.MatchScore) // round(100 * 2/3)

	// No compensation data, so the overall score passes through.
	assert.Nil(t, result.Compensation.Score)
	require.NotNil(t, result.OverallScore)
	assert.Equal(t, 67, *result.OverallScore)

	assert.Equal(t, "Strong backend match.", result.Summary)
	assert.Equal(t, types.SourceLLM, result.Source)
	assert.Contains(t, result.MatchedKeywords, "python")
	assert.Contains(t, result.MissingKeywords, "terraform")
}

func TestAnalyze_BlendsCompensation(t *testing.T) {
	fake := &fakeCategorizer{
		keys: []string{"Python", "Kubernetes", "Terraform"},
		assessment: &types.Assessment{
			MatchedCategories: []string{"python", "kubernetes"},
		},
	}
	a := New(fake, 0.8)

	result, err := a.Analyze(context.Background(), Request{
		ResumeText:         testResume,
		JobText:            testJob,
		CandidateSalaryMin: "100000",
		CandidateSalaryMax: "120000",
		RoleSalaryMin:      "90000",
		RoleSalaryMax:      "110000",
	})
	require.NoError(t, err)

	require.NotNil(t, result.Compensation.Score)
	assert.Equal(t, 50, *result.Compensation.Score) // overlap 10000 over span 20000

	require.NotNil(t, result.OverallScore)
	assert.Equal(t, 64, *result.OverallScore) // round(67*0.8 + 50*0.2)
}

func TestAnalyze_RequestWeightOverride(t *testing.T) {
	newFake := func() *fakeCategorizer {
		return &fakeCategorizer{
			keys: []string{"Python", "Kubernetes", "Terraform"},
			assessment: &types.Assessment{
				MatchedCategories: []string{"python", "kubernetes"},
			},
		}
	}
	base := Request{
		ResumeText:         testResume,
		JobText:            testJob,
		CandidateSalaryMin: "100000",
		CandidateSalaryMax: "120000",
		RoleSalaryMin:      "90000",
		RoleSalaryMax:      "110000",
	}

	tests := []struct {
		name        string
		weight      float64
		wantOverall int
	}{
		{"override favors compensation", 0.2, 53}, // round(67*0.2 + 50*0.8)
		{"zero keeps configured weight", 0, 64},   // round(67*0.8 + 50*0.2)
		{"out of range keeps configured weight", 1.5, 64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New(newFake(), 0.8)
			req := base
			req.Weight = tt.weight

			result, err := a.Analyze(context.Background(), req)
			require.NoError(t, err)
			require.NotNil(t, result.OverallScore)
			assert.Equal(t, tt.wantOverall, *result.OverallScore)
		})
	}
}

func TestAnalyze_SparseProposalFallsBack(t *testing.T) {
	fake := &fakeCategorizer{keys: []string{"Python", "Kubernetes"}}
	a := New(fake, 0.8)

	result, err := a.Analyze(context.Background(), Request{
		ResumeText: testResume,
		JobText:    testJob,
	})
	require.NoError(t, err)

	// Two categories is below the trust threshold, so the whole request
	// runs on the local extractor and the scripted pair is discarded.
	assert.Equal(t, types.SourceHeuristic, result.Source)
	assert.Zero(t, fake.assessCalls)
	assert.Equal(t, categories.Fallback(testResume, testJob).KeyCategories, result.CategoryMatch.KeyCategories)
	assert.NotContains(t, result.Summary, "Strong")
	assert.Contains(t, result.Summary, "heuristic")
}

func TestAnalyze_TransportErrorIsTerminal(t *testing.T) {
	cause := errors.New("context deadline exceeded")
	fake := &fakeCategorizer{
		proposeErr: &categorizer.TransportError{Op: "category proposal", Cause: cause},
	}
	a := New(fake, 0.8)

	_, err := a.Analyze(context.Background(), Request{
		ResumeText: testResume,
		JobText:    testJob,
	})
	require.Error(t, err)

	var transportErr *categorizer.TransportError
	assert.ErrorAs(t, err, &transportErr)
	assert.ErrorIs(t, err, cause)
}

func TestAnalyze_AssessTransportErrorIsTerminal(t *testing.T) {
	fake := &fakeCategorizer{
		keys:      []string{"Python", "Kubernetes", "Terraform"},
		assessErr: &categorizer.TransportError{Op: "fit assessment", Cause: errors.New("503")},
	}
	a := New(fake, 0.8)

	_, err := a.Analyze(context.Background(), Request{
		ResumeText: testResume,
		JobText:    testJob,
	})
	require.Error(t, err)
}

func TestAnalyze_MissingInputs(t *testing.T) {
	a := New(nil, 0.8)

	_, err := a.Analyze(context.Background(), Request{JobText: testJob})
	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "resume text", inputErr.Field)

	_, err = a.Analyze(context.Background(), Request{ResumeText: "   \n "})
	require.Error(t, err)
}

func TestAnalyze_HeuristicEndToEnd(t *testing.T) {
	a := New(categorizer.NewHeuristic(), 0.8)

	result, err := a.Analyze(context.Background(), Request{
		ResumeText: testResume,
		JobText:    testJob,
	})
	require.NoError(t, err)

	assert.Equal(t, types.SourceHeuristic, result.Source)
	assert.NotEmpty(t, result.CategoryMatch.KeyCategories)
	assert.NotNil(t, result.MatchScore)
	assert.NotEmpty(t, result.Summary)
}

func TestAnalyze_Deterministic(t *testing.T) {
	req := Request{
		ResumeText:         testResume,
		JobText:            testJob,
		CandidateSalaryMin: "100000",
		CandidateSalaryMax: "120000",
		RoleSalaryMin:      "90000",
		RoleSalaryMax:      "110000",
	}

	run := func() *types.AnalysisResult {
		fake := &fakeCategorizer{
			keys: []string{"Python", "Kubernetes", "Terraform"},
			assessment: &types.Assessment{
				MatchedCategories: []string{"python", "kubernetes"},
				BonusCategories:   []string{"Incident Response"},
			},
		}
		result, err := New(fake, 0.8).Analyze(context.Background(), req)
		require.NoError(t, err)
		return result
	}

	assert.Equal(t, run(), run())
}

func TestAnalyze_FillsDefaultSuggestions(t *testing.T) {
	fake := &fakeCategorizer{
		keys: []string{"Python", "Kubernetes", "Terraform"},
		assessment: &types.Assessment{
			MatchedCategories: []string{"python"},
		},
	}
	a := New(fake, 0.8)

	result, err := a.Analyze(context.Background(), Request{
		ResumeText: testResume,
		JobText:    testJob,
	})
	require.NoError(t, err)

	require.NotEmpty(t, result.Suggestions)
	assert.Contains(t, result.Suggestions[0], "Add evidence of")
}

func TestComposeOverall(t *testing.T) {
	tests := []struct {
		name   string
		match  *int
		comp   *int
		weight float64
		want   *int
	}{
		{"nil match", nil, types.IntPtr(50), 0.8, nil},
		{"nil compensation passes match through", types.IntPtr(75), nil, 0.8, types.IntPtr(75)},
		{"standard blend", types.IntPtr(80), types.IntPtr(40), 0.8, types.IntPtr(72)},
		{"invalid weight uses default", types.IntPtr(80), types.IntPtr(40), 1.5, types.IntPtr(72)},
		{"zero weight uses default", types.IntPtr(80), types.IntPtr(40), 0, types.IntPtr(72)},
		{"both zero", types.IntPtr(0), types.IntPtr(0), 0.5, types.IntPtr(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComposeOverall(tt.match, tt.comp, tt.weight))
		})
	}
}
