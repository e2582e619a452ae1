package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jeffawe/JobScanner/internal/analyzer"
	"github.com/Jeffawe/JobScanner/internal/cache"
	"github.com/Jeffawe/JobScanner/internal/config"
	"github.com/Jeffawe/JobScanner/internal/nlp"
	"github.com/Jeffawe/JobScanner/internal/parsers"
	"github.com/Jeffawe/JobScanner/internal/types"
)

type fakeFinder struct {
	page  *types.CareerPageResult
	calls int
}

func (f *fakeFinder) FindCareerPage(_ context.Context, _ string, _ bool) *types.CareerPageResult {
	f.calls++
	return f.page
}

type fakeCache struct {
	store   map[string]*types.JobAnalysisResult
	pingErr error
	sets    int
}

func (f *fakeCache) Get(_ context.Context, key string) (*types.JobAnalysisResult, error) {
	return f.store[key], nil
}

func (f *fakeCache) Set(_ context.Context, key string, result *types.JobAnalysisResult) error {
	f.sets++
	f.store[key] = result
	return nil
}

func (f *fakeCache) Ping(_ context.Context) error { return f.pingErr }

func newFakeCache() *fakeCache {
	return &fakeCache{store: make(map[string]*types.JobAnalysisResult)}
}

func newTestServer() *Server {
	return &Server{
		cfg:      &config.Config{Port: 8000, Environment: "test"},
		analyzer: analyzer.New(nlp.NewTermFrequencyRanker(), nlp.NewOrgRecognizer()),
		registry: parsers.NewRegistry(),
		validate: validator.New(),
	}
}

func postJSON(t *testing.T, s *Server, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router().ServeHTTP(rec, req)
	return rec
}

func decodeResult(t *testing.T, rec *httptest.ResponseRecorder) *types.JobAnalysisResult {
	t.Helper()
	var result types.JobAnalysisResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	return &result
}

func TestAnalyzeRejectsEmptyContent(t *testing.T) {
	s := newTestServer()

	rec := postJSON(t, s, "/analyze", types.JobPostingRequest{Content: "   "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Content cannot be empty")
}

func TestAnalyzeRejectsInvalidJSON(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest("POST", "/analyze", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	s.router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyzeParserPath(t *testing.T) {
	s := newTestServer()

	rawHTML := `<html><body>
		<h1 class="top-card-layout__title">Backend Engineer</h1>
		<a class="topcard__org-name-redirect">Hooli</a>
		<div class="jobs-box__html-content">
			We use Python daily. 5+ years of experience with Python required.
		</div>
	</body></html>`

	rec := postJSON(t, s, "/analyze", types.JobPostingRequest{
		Content: "Backend Engineer at Hooli",
		URL:     "https://www.linkedin.com/jobs/view/12345",
		RawHTML: rawHTML,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	result := decodeResult(t, rec)
	assert.True(t, result.Success)
	assert.Equal(t, "Backend Engineer", result.JobTitle)
	assert.Equal(t, "Hooli", result.CompanyName)
	assert.InDelta(t, 0.95, result.ConfidenceScores["parsing"], 0.001)
}

func TestAnalyzeFallsBackToAnalyzerWithoutRawHTML(t *testing.T) {
	s := newTestServer()

	rec := postJSON(t, s, "/analyze", types.JobPostingRequest{
		Content: "plain description mentioning python and docker",
		URL:     "https://www.linkedin.com/jobs/view/12345",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	result := decodeResult(t, rec)
	// No rawHTML means the generic analyzer runs even for a known site.
	assert.NotContains(t, result.ConfidenceScores, "parsing")
	assert.Contains(t, result.ConfidenceScores, "company_name")
}

func TestAnalyzeUsesHintsWhenExtractionMisses(t *testing.T) {
	s := newTestServer()

	rec := postJSON(t, s, "/analyze", types.JobPostingRequest{
		Content:      "nothing useful here",
		URL:          "https://jobs.example.com/42",
		Title:        "Platform Engineer",
		CompanyGuess: "Acme Inc",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	result := decodeResult(t, rec)
	assert.Equal(t, "Platform Engineer", result.JobTitle)
	assert.Equal(t, "Acme Inc", result.CompanyName)
}

func TestAnalyzeReturnsCachedResult(t *testing.T) {
	s := newTestServer()
	fc := newFakeCache()
	finder := &fakeFinder{}
	s.cache = fc
	s.finder = finder

	content := "job description for caching"
	url := "https://jobs.example.com/cached"
	fc.store[cache.Key(content, url)] = &types.JobAnalysisResult{
		Success:  true,
		JobTitle: "Cached Title",
	}

	rec := postJSON(t, s, "/analyze", types.JobPostingRequest{Content: content, URL: url})
	require.Equal(t, http.StatusOK, rec.Code)

	result := decodeResult(t, rec)
	assert.Equal(t, "Cached Title", result.JobTitle)
	assert.Zero(t, finder.calls, "cache hits must not trigger enrichment")
	assert.Zero(t, fc.sets, "cache hits must not rewrite the entry")
}

func TestAnalyzeCachesFreshResults(t *testing.T) {
	s := newTestServer()
	fc := newFakeCache()
	s.cache = fc

	rec := postJSON(t, s, "/analyze", types.JobPostingRequest{
		Content: "fresh description with python",
		URL:     "https://jobs.example.com/fresh",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, fc.sets)
}

func TestAnalyzeEnrichesCompanyURL(t *testing.T) {
	s := newTestServer()
	finder := &fakeFinder{page: &types.CareerPageResult{
		CareerURL: "https://acme.com/careers",
		Source:    types.SourceTargetedSearch,
	}}
	s.finder = finder

	rec := postJSON(t, s, "/analyze", types.JobPostingRequest{
		Content:      "nothing extractable",
		CompanyGuess: "Acme Inc",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	result := decodeResult(t, rec)
	assert.Equal(t, "https://acme.com/careers", result.CompanyURL)
	assert.Equal(t, 1, finder.calls)
}

func TestAnalyzeSkipsEnrichmentWithoutCompany(t *testing.T) {
	s := newTestServer()
	finder := &fakeFinder{}
	s.finder = finder

	rec := postJSON(t, s, "/analyze", types.JobPostingRequest{
		Content: "nothing extractable",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, finder.calls)
}

func TestCheckParserSupport(t *testing.T) {
	s := newTestServer()

	tests := []struct {
		name       string
		url        string
		supported  bool
		parserType string
	}{
		{"linkedin", "https://www.linkedin.com/jobs/view/1", true, "format-specific"},
		{"indeed", "https://www.indeed.com/viewjob?jk=1", true, "format-specific"},
		{"unknown site", "https://jobs.example.com/1", false, "nlp-analysis"},
		{"empty url", "", false, "nlp-analysis"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, s, "/check-parser-support", ParserSupportRequest{URL: tt.url})
			require.Equal(t, http.StatusOK, rec.Code)

			var resp ParserSupportResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, tt.supported, resp.Supported)
			assert.Equal(t, tt.parserType, resp.ParserType)
			assert.Equal(t, tt.url, resp.URL)
		})
	}
}

func TestTestEndpoint(t *testing.T) {
	s := newTestServer()

	rec := postJSON(t, s, "/test", types.JobPostingRequest{Content: ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postJSON(t, s, "/test", types.JobPostingRequest{Content: "hello", URL: "https://x.test"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "received", resp["status"])
	assert.Equal(t, float64(5), resp["content_length"])
}

func TestHealthWithoutIntegrations(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	s.router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Status      string            `json:"status"`
		Environment string            `json:"environment"`
		Services    map[string]string `json:"services"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "test", resp.Environment)
	assert.Equal(t, "not configured", resp.Services["redis"])
	assert.Equal(t, "not configured", resp.Services["database"])
	assert.Equal(t, "missing", resp.Services["google_api"])
}

func TestHealthDegradedOnCacheFailure(t *testing.T) {
	s := newTestServer()
	s.cache = &fakeCache{pingErr: errors.New("connection refused")}

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	s.router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Status   string            `json:"status"`
		Services map[string]string `json:"services"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "degraded", resp.Status)
	assert.Contains(t, resp.Services["redis"], "error")
}

func TestRootEndpoint(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	s.router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Job Scanner API")
}

func TestCareerPageStatsWithoutDatabase(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest("GET", "/career-page-stats", nil)
	rec := httptest.NewRecorder()
	s.router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
