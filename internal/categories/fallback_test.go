package categories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFallback_KeyCategoriesAreFirstSixJobTokens(t *testing.T) {
	jobText := "python kubernetes terraform docker ansible prometheus grafana elasticsearch"

	match := Fallback("", jobText)

	assert.Equal(t, []string{"Python", "Kubernetes", "Terraform", "Docker", "Ansible", "Prometheus"}, match.KeyCategories)
}

func TestFallback_MatchedAgainstResumeTokens(t *testing.T) {
	jobText := "python kubernetes terraform"
	resumeText := "Production python and kubernetes deployments"

	match := Fallback(resumeText, jobText)

	assert.Equal(t, []string{"Python", "Kubernetes"}, match.MatchedCategories)
	assert.Equal(t, []string{"Terraform"}, match.MissingCategories)
}

func TestFallback_BonusExcludesKeySetAndCapsAtSix(t *testing.T) {
	// Key set is the first six tokens; everything after that shared with
	// the resume becomes bonus, capped at six.
	jobText := "aaa1 bbb1 ccc1 ddd1 eee1 fff1 ggg1 hhh1 iii1 jjj1 kkk1 lll1 mmm1 nnn1"
	resumeText := jobText

	match := Fallback(resumeText, jobText)

	assert.Len(t, match.KeyCategories, 6)
	assert.Len(t, match.BonusCategories, 6)
	for _, bonus := range match.BonusCategories {
		assert.NotContains(t, match.KeyCategories, bonus)
	}
}

func TestFallback_EmptyInputs(t *testing.T) {
	match := Fallback("", "")

	assert.Empty(t, match.KeyCategories)
	assert.Empty(t, match.MatchedCategories)
	assert.Empty(t, match.MissingCategories)
	assert.Empty(t, match.BonusCategories)
}

func TestFallback_TinyJobText(t *testing.T) {
	match := Fallback("python", "go")

	// "go" is only two characters, so no tokens survive.
	assert.Empty(t, match.KeyCategories)
}
