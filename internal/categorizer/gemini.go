package categorizer

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/prompts"
	"github.com/jonathan/resume-analyzer/internal/schemas"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Truncation limits keep prompts inside model context comfortably.
const (
	maxResumeChars = 4000
	maxJobChars    = 2500
)

// Gemini is the remote categorizer backed by an LLM client. Category
// proposal runs on the lite tier, assessment on the standard tier.
type Gemini struct {
	client llm.Client
}

// NewGemini creates a remote categorizer on top of an LLM client.
func NewGemini(client llm.Client) *Gemini {
	return &Gemini{client: client}
}

// categoryProposal mirrors the category_proposal.schema.json shape. The
// elements stay untyped so one wrong-typed entry does not discard the
// valid ones around it.
type categoryProposal struct {
	KeyCategories []any `json:"key_categories"`
}

// ProposeCategories asks the model for the job's key skill categories.
// Unusable responses (no JSON object, schema mismatch) return an empty
// slice with no error; only the API call itself failing is an error.
func (g *Gemini) ProposeCategories(ctx context.Context, jobText string) ([]string, error) {
	prompt := prompts.MustGet("analyzer.json", "system") + "\n\n" +
		prompts.Format(prompts.MustGet("analyzer.json", "category_proposal"), map[string]string{
			"JobText": truncate(jobText, maxJobChars),
		})

	raw, err := g.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return nil, &TransportError{Op: "category proposal", Cause: err}
	}

	jsonStr, ok := llm.ExtractJSONObject(raw)
	if !ok {
		log.Printf("categorizer: no JSON object in category proposal response")
		return []string{}, nil
	}
	if err := schemas.Validate(schemas.CategoryProposal, jsonStr); err != nil {
		log.Printf("categorizer: category proposal failed schema validation: %v", err)
		return []string{}, nil
	}

	var proposal categoryProposal
	if err := json.Unmarshal([]byte(jsonStr), &proposal); err != nil {
		return []string{}, nil
	}

	// Keep only non-empty strings; anything else the model slipped into
	// the array is dropped element by element.
	valid := make([]string, 0, len(proposal.KeyCategories))
	for _, item := range proposal.KeyCategories {
		cat, ok := item.(string)
		if !ok {
			continue
		}
		if trimmed := strings.TrimSpace(cat); trimmed != "" {
			valid = append(valid, trimmed)
		}
	}
	return valid, nil
}

// AssessFit asks the model for the qualitative assessment. Any shape
// problem degrades to an empty assessment; downstream reconciliation and
// default-filling cope with every field being absent.
func (g *Gemini) AssessFit(ctx context.Context, keyCategories []string, resumeText, jobText string) (*types.Assessment, error) {
	prompt := prompts.MustGet("analyzer.json", "system") + "\n\n" +
		prompts.Format(prompts.MustGet("analyzer.json", "assessment"), map[string]string{
			"KeyCategories": strings.Join(keyCategories, ", "),
			"JobText":       truncate(jobText, maxJobChars),
			"ResumeText":    truncate(resumeText, maxResumeChars),
		})

	raw, err := g.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &TransportError{Op: "assessment", Cause: err}
	}

	jsonStr, ok := llm.ExtractJSONObject(raw)
	if !ok {
		log.Printf("categorizer: no JSON object in assessment response")
		return &types.Assessment{}, nil
	}
	if err := schemas.Validate(schemas.Assessment, jsonStr); err != nil {
		log.Printf("categorizer: assessment failed schema validation: %v", err)
		return &types.Assessment{}, nil
	}

	var assessment types.Assessment
	if err := json.Unmarshal([]byte(jsonStr), &assessment); err != nil {
		return &types.Assessment{}, nil
	}
	return &assessment, nil
}

// Source reports the external-LLM analysis path.
func (g *Gemini) Source() types.AnalysisSource {
	return types.SourceLLM
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
