package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jonathan/resume-analyzer/internal/analyzer"
	"github.com/jonathan/resume-analyzer/internal/db"
	"github.com/jonathan/resume-analyzer/internal/fetch"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// AnalyzeResponse represents the response for /analyze
type AnalyzeResponse struct {
	*types.AnalysisResult
	AnalysisID string `json:"analysis_id,omitempty"`
}

// handleAnalyze runs one analysis and returns the full result
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	ctx := r.Context()

	resumeText := req.ResumeText
	if resumeText == "" {
		text, err := fetch.PageText(ctx, req.ResumeURL, nil)
		if err != nil {
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
		resumeText = text
	}

	jobText := req.JobText
	if jobText == "" {
		text, err := fetch.JobText(ctx, req.JobURL, nil)
		if err != nil {
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
		jobText = text
	}

	result, err := s.analyzer.Analyze(ctx, analyzer.Request{
		ResumeText:         resumeText,
		JobText:            jobText,
		CandidateSalaryMin: req.SalaryMin,
		CandidateSalaryMax: req.SalaryMax,
		RoleSalaryMin:      req.RoleSalaryMin,
		RoleSalaryMax:      req.RoleSalaryMax,
		Weight:             req.Weight,
	})
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	response := AnalyzeResponse{AnalysisResult: result}

	// Persist best effort; the client still gets the analysis on failure
	if s.db != nil {
		id, err := s.db.SaveAnalysis(ctx, db.AnalysisInput{
			JobURL:       req.JobURL,
			Source:       string(result.Source),
			OverallScore: result.OverallScore,
			MatchScore:   result.MatchScore,
			Result:       result,
		})
		if err != nil {
			log.Printf("Failed to save analysis: %v", err)
		} else {
			response.AnalysisID = id.String()
		}
	}

	s.jsonResponse(w, http.StatusOK, response)
}

// handleListAnalyses returns recent analysis summaries
func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &ErrHistoryDisabled{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	filters := db.AnalysisFilters{
		Source: r.URL.Query().Get("source"),
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		filters.Limit = limit
	}
	if minStr := r.URL.Query().Get("min_score"); minStr != "" {
		minScore, err := strconv.Atoi(minStr)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid min_score")
			return
		}
		filters.MinScore = &minScore
	}

	analyses, err := s.db.ListAnalyses(r.Context(), filters)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if analyses == nil {
		analyses = []db.AnalysisSummary{}
	}
	s.jsonResponse(w, http.StatusOK, analyses)
}

// handleGetAnalysis returns one stored analysis with its full result
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &ErrHistoryDisabled{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid analysis ID format")
		return
	}

	analysis, err := s.db.GetAnalysis(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if analysis == nil {
		notFound := &ErrAnalysisNotFound{ID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, analysis)
}

// handleDeleteAnalysis removes one stored analysis
func (s *Server) handleDeleteAnalysis(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &ErrHistoryDisabled{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid analysis ID format")
		return
	}

	if err := s.db.DeleteAnalysis(r.Context(), id); err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}
