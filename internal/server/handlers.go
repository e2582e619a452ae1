package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Jeffawe/JobScanner/internal/cache"
	"github.com/Jeffawe/JobScanner/internal/types"
)

// ParserSupportRequest represents the request body for
// /check-parser-support.
type ParserSupportRequest struct {
	URL string `json:"url"`
}

// ParserSupportResponse reports which extraction path a URL would take.
type ParserSupportResponse struct {
	URL        string `json:"url"`
	Supported  bool   `json:"supported"`
	ParserType string `json:"parser_type"`
}

// handleAnalyze runs the full extraction pipeline: cache lookup,
// parser dispatch or generic analysis, hint backfill, career page
// enrichment, then cache write-through.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req types.JobPostingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validate.Struct(&req); err != nil || strings.TrimSpace(req.Content) == "" {
		s.errorResponse(w, http.StatusBadRequest, "Content cannot be empty")
		return
	}

	ctx := r.Context()

	cacheKey := cache.Key(req.Content, req.URL)
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, cacheKey)
		if err != nil {
			log.Printf("Cache read failed: %v", err)
		} else if cached != nil {
			log.Printf("Returning cached analysis for %s", req.URL)
			s.jsonResponse(w, http.StatusOK, cached)
			return
		}
	}

	result, err := s.analyzePosting(&req)
	if err != nil {
		log.Printf("Analysis failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Analysis failed")
		return
	}

	// Hints fill fields the extraction could not. The parser path does
	// not see them, so they apply here.
	if result.JobTitle == "" && req.Title != "" {
		result.JobTitle = req.Title
	}
	if result.CompanyName == "" && req.CompanyGuess != "" {
		result.CompanyName = req.CompanyGuess
	}

	if result.CompanyURL == "" && result.CompanyName != "" && s.finder != nil {
		if page := s.finder.FindCareerPage(ctx, result.CompanyName, false); page != nil {
			result.CompanyURL = page.CareerURL
		}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, result); err != nil {
			log.Printf("Cache write failed: %v", err)
		}
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// analyzePosting selects the extraction path: a site parser when the
// URL matches one and raw HTML is available, the generic analyzer
// otherwise.
func (s *Server) analyzePosting(req *types.JobPostingRequest) (*types.JobAnalysisResult, error) {
	if parser := s.registry.Select(req.URL); parser != nil && req.RawHTML != "" {
		log.Printf("Using %s parser for %s", parser.Name(), req.URL)
		return parser.Parse(req.RawHTML, req.URL)
	}
	return s.analyzer.Analyze(req.Content, req.URL, req.Title, req.CompanyGuess)
}

// handleTest validates a request without running the full pipeline.
func (s *Server) handleTest(w http.ResponseWriter, r *http.Request) {
	var req types.JobPostingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		s.errorResponse(w, http.StatusBadRequest, "Content cannot be empty")
		return
	}

	log.Printf("Test request: url=%s content_length=%d", req.URL, len(req.Content))
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":         "received",
		"url":            req.URL,
		"content_length": len(req.Content),
	})
}

// handleCheckParserSupport reports whether a URL gets a site-specific
// parser or falls back to generic analysis.
func (s *Server) handleCheckParserSupport(w http.ResponseWriter, r *http.Request) {
	var req ParserSupportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp := ParserSupportResponse{URL: req.URL, ParserType: "nlp-analysis"}
	if s.registry.IsSupported(req.URL) {
		resp.Supported = true
		resp.ParserType = "format-specific"
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleHealth reports service status. Integration failures mark the
// service degraded but never unhealthy: analysis works without them.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := "healthy"
	services := map[string]string{}

	if s.cache != nil {
		if err := s.cache.Ping(ctx); err != nil {
			services["redis"] = "error: " + err.Error()
			status = "degraded"
		} else {
			services["redis"] = "connected"
		}
	} else {
		services["redis"] = "not configured"
	}

	if s.database != nil {
		if err := s.database.Ping(ctx); err != nil {
			services["database"] = "error: " + err.Error()
			status = "degraded"
		} else {
			services["database"] = "connected"
		}
	} else {
		services["database"] = "not configured"
	}

	if s.cfg.SearchConfigured() {
		services["google_api"] = "configured"
		services["search_engine"] = "configured"
	} else {
		services["google_api"] = "missing"
		services["search_engine"] = "missing"
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":      status,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": s.cfg.Environment,
		"services":    services,
	})
}

// handleCareerPageStats returns aggregate counts for stored career
// pages.
func (s *Server) handleCareerPageStats(w http.ResponseWriter, r *http.Request) {
	if s.database == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Database not configured")
		return
	}

	stats, err := s.database.GetCareerPageStats(r.Context())
	if err != nil {
		log.Printf("Failed to load career page stats: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load stats")
		return
	}
	s.jsonResponse(w, http.StatusOK, stats)
}

// handleRoot returns basic API information.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"name":    "Job Scanner API",
		"version": "1.0.0",
		"endpoints": []string{
			"POST /analyze",
			"POST /test",
			"POST /check-parser-support",
			"GET /health",
			"GET /career-page-stats",
		},
	})
}
