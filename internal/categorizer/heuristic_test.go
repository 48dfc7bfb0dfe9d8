package categorizer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeuristicProposeCategories(t *testing.T) {
	cats, err := NewHeuristic().ProposeCategories(context.Background(), "python kubernetes terraform docker")

	require.NoError(t, err)
	assert.Equal(t, []string{"Python", "Kubernetes", "Terraform", "Docker"}, cats)
}

func TestHeuristicAssessFit(t *testing.T) {
	h := NewHeuristic()
	keys := []string{"Python", "Kubernetes", "Terraform"}

	assessment, err := h.AssessFit(context.Background(), keys, "I deploy python on kubernetes", "python kubernetes terraform")

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Python", "Kubernetes"}, assessment.MatchedCategories)
	assert.Contains(t, assessment.Summary, "Heuristic analysis")
	assert.Contains(t, assessment.Summary, "2 of 3")
}

func TestHeuristicAssessFit_EmptyInputs(t *testing.T) {
	assessment, err := NewHeuristic().AssessFit(context.Background(), nil, "", "")

	require.NoError(t, err)
	assert.Empty(t, assessment.MatchedCategories)
}
