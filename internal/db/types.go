package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// AnalysisInput holds the fields persisted for one completed analysis.
// Score columns are duplicated out of the result so listings can filter
// without unpacking JSONB.
type AnalysisInput struct {
	JobURL       string
	Source       string
	OverallScore *int
	MatchScore   *int
	Result       *types.AnalysisResult
}

// Analysis is a full stored analysis record
type Analysis struct {
	ID           uuid.UUID             `json:"id"`
	JobURL       string                `json:"job_url,omitempty"`
	Source       string                `json:"source"`
	OverallScore *int                  `json:"overall_score"`
	MatchScore   *int                  `json:"match_score"`
	Result       *types.AnalysisResult `json:"result,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
}

// AnalysisSummary is a lightweight view for listings
type AnalysisSummary struct {
	ID           uuid.UUID `json:"id"`
	JobURL       string    `json:"job_url,omitempty"`
	Source       string    `json:"source"`
	OverallScore *int      `json:"overall_score"`
	MatchScore   *int      `json:"match_score"`
	CreatedAt    time.Time `json:"created_at"`
}
