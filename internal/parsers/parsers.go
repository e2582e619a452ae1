// Package parsers holds site-specific job posting parsers and the
// registry that routes a posting URL to the parser claiming it.
package parsers

import (
	"net/url"
	"strings"

	"github.com/Jeffawe/JobScanner/internal/types"
)

// Parser extracts a complete analysis result from raw markup known to
// originate from one specific site format.
type Parser interface {
	// Name identifies the parser in API responses and logs.
	Name() string
	// CanHandle reports whether the parser claims the given posting URL.
	CanHandle(rawURL string) bool
	// Parse extracts all fields from the raw HTML using format-specific
	// rules. Field misses yield absent fields, not errors.
	Parse(rawHTML string, rawURL string) (*types.JobAnalysisResult, error)
}

// structuredParsingConfidence is reported by every site parser:
// structured extraction is trusted more than the NLP fallback.
const structuredParsingConfidence = 0.95

// Registry keeps an ordered list of parsers; registration order is
// selection precedence.
type Registry struct {
	parsers []Parser
}

// NewRegistry returns a registry with all known site parsers.
func NewRegistry() *Registry {
	return &Registry{
		parsers: []Parser{
			NewLinkedInParser(),
			NewIndeedParser(),
		},
	}
}

// Select returns the first parser claiming the URL, or nil when the URL
// is empty or no parser matches. Selection is a pure function of the
// URL.
func (r *Registry) Select(rawURL string) Parser {
	if rawURL == "" {
		return nil
	}
	for _, p := range r.parsers {
		if p.CanHandle(rawURL) {
			return p
		}
	}
	return nil
}

// IsSupported reports whether any registered parser claims the URL.
func (r *Registry) IsSupported(rawURL string) bool {
	return r.Select(rawURL) != nil
}

// hostContains reports whether the URL's host contains the given domain
// fragment. Unparseable URLs match nothing.
func hostContains(rawURL, domain string) bool {
	if rawURL == "" {
		return false
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return strings.Contains(strings.ToLower(u.Host), domain)
}
