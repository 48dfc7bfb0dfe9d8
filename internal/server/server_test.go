package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/analyzer"
	"github.com/jonathan/resume-analyzer/internal/categorizer"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// newTestServer builds a server on the heuristic path with no database,
// so handlers run without any network or connection setup.
func newTestServer() *Server {
	return &Server{
		analyzer: analyzer.New(categorizer.NewHeuristic(), 0.8),
	}
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	s.handleHealth(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, "disabled", resp["history"])
}

func TestAnalyzeEndpoint(t *testing.T) {
	s := newTestServer()

	body := `{
		"resume_text": "Senior engineer with python and kubernetes experience building docker deployments.",
		"job_text": "Looking for a python engineer with kubernetes and terraform skills.",
		"salary_min": "100000",
		"salary_max": "120000",
		"role_salary_min": "90000",
		"role_salary_max": "110000"
	}`
	req := httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	s.handleAnalyze(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.AnalysisResult)
	assert.Equal(t, types.SourceHeuristic, resp.Source)
	assert.NotNil(t, resp.OverallScore)
	assert.NotNil(t, resp.MatchScore)
	assert.NotNil(t, resp.Compensation.Score)
	assert.Empty(t, resp.AnalysisID) // no database configured
}

func TestAnalyzeEndpoint_ResumeURL(t *testing.T) {
	s := newTestServer()

	resumePage := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><nav>menu</nav><article>
			Senior engineer with python and kubernetes experience.
		</article></body></html>`))
	}))
	defer resumePage.Close()

	body := `{
		"resume_url": "` + resumePage.URL + `",
		"job_text": "Looking for a python engineer with kubernetes and terraform skills."
	}`
	req := httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	s.handleAnalyze(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.AnalysisResult)
	assert.Contains(t, resp.CategoryMatch.MatchedCategories, "Python")
}

func TestAnalyzeEndpoint_ResumeURLUnreachable(t *testing.T) {
	s := newTestServer()

	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	dead.Close()

	body := `{"resume_url": "` + dead.URL + `", "job_text": "python engineer"}`
	req := httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	s.handleAnalyze(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestAnalyzeEndpoint_WeightOverride(t *testing.T) {
	s := newTestServer() // configured weight 0.8

	body := `{
		"resume_text": "Senior engineer with python and kubernetes experience building docker deployments.",
		"job_text": "Looking for a python engineer with kubernetes and terraform skills.",
		"salary_min": "100000",
		"salary_max": "120000",
		"role_salary_min": "100000",
		"role_salary_max": "120000",
		"weight": 0.2
	}`
	req := httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	s.handleAnalyze(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.MatchScore)
	require.NotNil(t, resp.Compensation.Score)
	require.NotNil(t, resp.OverallScore)

	want := analyzer.ComposeOverall(resp.MatchScore, resp.Compensation.Score, 0.2)
	assert.Equal(t, *want, *resp.OverallScore)
	configured := analyzer.ComposeOverall(resp.MatchScore, resp.Compensation.Score, 0.8)
	assert.NotEqual(t, *configured, *resp.OverallScore)
}

func TestAnalyzeEndpoint_InvalidBody(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewBufferString("{not json"))
	w := httptest.NewRecorder()
	s.handleAnalyze(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyzeEndpoint_MissingFields(t *testing.T) {
	s := newTestServer()

	tests := []struct {
		name string
		body string
	}{
		{"missing resume", `{"job_text": "posting"}`},
		{"missing job", `{"resume_text": "resume"}`},
		{"both job sources", `{"resume_text": "r", "job_text": "j", "job_url": "https://x.test/job"}`},
		{"bad job url", `{"resume_text": "r", "job_url": "not-a-url"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			s.handleAnalyze(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestHistoryEndpoints_Disabled(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/analyses", nil)
	w := httptest.NewRecorder()
	s.handleListAnalyses(w, req)
	assert.Equal(t, http.StatusNotImplemented, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/analyses/abc", nil)
	req.SetPathValue("id", "8f14e45f-ceea-467f-9d02-1a8b3f8d34aa")
	w = httptest.NewRecorder()
	s.handleGetAnalysis(w, req)
	assert.Equal(t, http.StatusNotImplemented, w.Code)

	req = httptest.NewRequest(http.MethodDelete, "/analyses/abc", nil)
	req.SetPathValue("id", "8f14e45f-ceea-467f-9d02-1a8b3f8d34aa")
	w = httptest.NewRecorder()
	s.handleDeleteAnalysis(w, req)
	assert.Equal(t, http.StatusNotImplemented, w.Code)
}

func TestCORSMiddleware(t *testing.T) {
	s := newTestServer()

	handler := s.withCORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodOptions, "/analyze", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
