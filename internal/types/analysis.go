package types

// AnalysisSource identifies which categorizer path produced a result.
type AnalysisSource string

// Analysis sources.
const (
	// SourceLLM means the external categorizer supplied the category sets.
	SourceLLM AnalysisSource = "llm"
	// SourceHeuristic means the local fallback extractor supplied them.
	SourceHeuristic AnalysisSource = "heuristic"
)

// CategoryMatch holds the reconciled category sets for one analysis.
// MatchedCategories is always a subset of KeyCategories, and
// MissingCategories is exactly KeyCategories minus MatchedCategories;
// both are recomputed locally regardless of what the external
// categorizer claimed. BonusCategories never collide with the key set
// by normalized form.
type CategoryMatch struct {
	KeyCategories     []string `json:"key_categories"`
	MatchedCategories []string `json:"matched_categories"`
	MissingCategories []string `json:"missing_categories"`
	BonusCategories   []string `json:"bonus_categories"`
}

// CompensationFit holds the salary-range overlap score and qualitative
// notes. Score is nil when either range was absent.
type CompensationFit struct {
	Score *int     `json:"score"`
	Notes []string `json:"notes"`
}

// Assessment is the untrusted qualitative payload returned by an external
// categorizer. Every field is optional; it is only ever consumed through
// the reconciliation and default-filling steps, never copied directly into
// an AnalysisResult.
type Assessment struct {
	Summary           string   `json:"summary,omitempty"`
	MatchedCategories []string `json:"matched_categories,omitempty"`
	MissingCategories []string `json:"missing_categories,omitempty"`
	BonusCategories   []string `json:"bonus_categories,omitempty"`
	Suggestions       []string `json:"suggestions,omitempty"`
	BulletRewrites    []string `json:"bullet_rewrites,omitempty"`
	ATSNotes          []string `json:"ats_notes,omitempty"`
}

// AnalysisResult is the aggregate output of one analysis call. It is a
// pure value computed fresh per request; consumers only read it. Scores
// are pointers so that 0 and "not computable" stay distinct.
type AnalysisResult struct {
	OverallScore    *int            `json:"overall_score"`
	MatchScore      *int            `json:"match_score"`
	CategoryMatch   CategoryMatch   `json:"category_match"`
	MatchedKeywords []string        `json:"matched_keywords"`
	MissingKeywords []string        `json:"missing_keywords"`
	Compensation    CompensationFit `json:"compensation"`
	Summary         string          `json:"summary"`
	Suggestions     []string        `json:"suggestions"`
	BulletRewrites  []string        `json:"bullet_rewrites,omitempty"`
	ATSNotes        []string        `json:"ats_notes,omitempty"`
	Source          AnalysisSource  `json:"source"`
}

// IntPtr returns a pointer to v. Convenience for optional score fields.
func IntPtr(v int) *int {
	return &v
}
