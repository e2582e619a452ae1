// Package server provides the HTTP REST API for the job posting
// analyzer.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/Jeffawe/JobScanner/internal/analyzer"
	"github.com/Jeffawe/JobScanner/internal/cache"
	"github.com/Jeffawe/JobScanner/internal/config"
	"github.com/Jeffawe/JobScanner/internal/db"
	"github.com/Jeffawe/JobScanner/internal/nlp"
	"github.com/Jeffawe/JobScanner/internal/parsers"
	"github.com/Jeffawe/JobScanner/internal/research"
	"github.com/Jeffawe/JobScanner/internal/server/ratelimit"
	"github.com/Jeffawe/JobScanner/internal/types"
)

// CareerPageFinder resolves a company's career page. A nil result is
// normal absence, not an error.
type CareerPageFinder interface {
	FindCareerPage(ctx context.Context, companyName string, forceRefresh bool) *types.CareerPageResult
}

// ResultCache stores serialized analysis results.
type ResultCache interface {
	Get(ctx context.Context, key string) (*types.JobAnalysisResult, error)
	Set(ctx context.Context, key string, result *types.JobAnalysisResult) error
	Ping(ctx context.Context) error
}

// Server represents the HTTP server. The cache, database and finder
// are optional: requests degrade gracefully when an integration is
// not configured.
type Server struct {
	httpServer  *http.Server
	cfg         *config.Config
	analyzer    *analyzer.Analyzer
	registry    *parsers.Registry
	finder      CareerPageFinder
	cache       ResultCache
	database    *db.DB
	rateLimiter *ratelimit.Limiter
	validate    *validator.Validate
}

// New creates a server instance and wires the configured
// integrations.
func New(cfg *config.Config) (*Server, error) {
	s := &Server{
		cfg:         cfg,
		analyzer:    analyzer.New(nlp.NewTermFrequencyRanker(), nlp.NewOrgRecognizer()),
		registry:    parsers.NewRegistry(),
		rateLimiter: ratelimit.NewLimiter(ratelimit.LoadConfig()),
		validate:    validator.New(),
	}

	if cfg.DatabaseURL != "" {
		database, err := db.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		s.database = database
	}

	// Caching is best-effort: an unreachable Redis disables it rather
	// than failing startup.
	if cfg.RedisURL != "" {
		if c, err := cache.New(cfg.RedisURL); err != nil {
			log.Printf("Cache disabled: %v", err)
		} else {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			if err := c.Ping(ctx); err != nil {
				log.Printf("Cache disabled, redis unreachable: %v", err)
			} else {
				s.cache = c
			}
			cancel()
		}
	}

	// Career page resolution needs search credentials and a store for
	// the resolved results.
	if cfg.SearchConfigured() && s.database != nil {
		searcher, err := research.NewGoogleSearcher(context.Background(), cfg.GoogleAPIKey, cfg.SearchEngineID)
		if err != nil {
			return nil, fmt.Errorf("failed to create search client: %w", err)
		}
		var domains research.DomainLookup
		if cfg.ClearbitAPIKey != "" {
			domains = research.NewClearbitClient(cfg.ClearbitAPIKey)
		}
		s.finder = research.NewFinder(s.database, searcher, domains)
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(s.router()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

func (s *Server) router() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("POST /analyze", s.handleAnalyze)
	mux.HandleFunc("POST /test", s.handleTest)
	mux.HandleFunc("POST /check-parser-support", s.handleCheckParserSupport)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /career-page-stats", s.handleCareerPageStats)
	return mux
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	if s.database != nil {
		s.database.Close()
	}

	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers for configured origins
func (s *Server) withCORS(next http.Handler) http.Handler {
	allowed := make(map[string]bool, len(s.cfg.AllowedOrigins))
	for _, origin := range s.cfg.AllowedOrigins {
		allowed[origin] = true
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin := r.Header.Get("Origin"); allowed[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)

		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request IDs, request logging and a processing-time
// header
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()
		w.Header().Set("X-Request-ID", requestID)
		tw := &timingWriter{ResponseWriter: w, start: start}

		next.ServeHTTP(tw, r)
		log.Printf("[%s] %s - %d - %v - %s", r.Method, r.URL.Path, tw.status, time.Since(start), requestID)
	})
}

// timingWriter stamps X-Process-Time just before the status line is
// written, when the handler time is known.
type timingWriter struct {
	http.ResponseWriter
	start       time.Time
	status      int
	wroteHeader bool
}

func (w *timingWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.Header().Set("X-Process-Time", fmt.Sprintf("%.3f", time.Since(w.start).Seconds()))
		w.wroteHeader = true
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *timingWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

// extractClientID identifies the client for rate limiting, preferring
// the first X-Forwarded-For hop.
func (s *Server) extractClientID(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.Index(fwd, ","); i >= 0 {
			return strings.TrimSpace(fwd[:i])
		}
		return strings.TrimSpace(fwd)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit <= 0 {
		return
	}
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))
}

func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	retryAfter := int(info.RetryAfter.Seconds()) + 1
	w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
	s.jsonResponse(w, http.StatusTooManyRequests, map[string]any{
		"error":       "Rate limit exceeded",
		"retry_after": retryAfter,
	})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
