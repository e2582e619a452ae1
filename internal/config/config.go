// Package config provides environment-based configuration for the API
// server.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds the service configuration. External integrations are
// optional: a missing Redis URL disables caching, missing search
// credentials disable career page resolution, and a missing database
// URL disables persistence of resolved pages.
type Config struct {
	Port        int
	Environment string

	DatabaseURL string
	RedisURL    string

	GoogleAPIKey   string
	SearchEngineID string
	ClearbitAPIKey string

	AllowedOrigins []string
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	port := 8000
	if raw := os.Getenv("PORT"); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT value %q: %w", raw, err)
		}
		port = p
	}

	cfg := &Config{
		Port:           port,
		Environment:    getEnv("ENVIRONMENT", "development"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		RedisURL:       getEnv("REDIS_URL", "redis://localhost:6379"),
		GoogleAPIKey:   os.Getenv("GOOGLE_API_KEY"),
		SearchEngineID: os.Getenv("SEARCH_ENGINE_ID"),
		ClearbitAPIKey: os.Getenv("CLEARBIT_API_KEY"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8080")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for inconsistent values.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config error: port %d out of range", c.Port)
	}
	// Search needs both halves of the credential pair.
	if (c.GoogleAPIKey == "") != (c.SearchEngineID == "") {
		return fmt.Errorf("config error: GOOGLE_API_KEY and SEARCH_ENGINE_ID must be set together")
	}
	return nil
}

// SearchConfigured reports whether career page search can run.
func (c *Config) SearchConfigured() bool {
	return c.GoogleAPIKey != "" && c.SearchEngineID != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
