// Package research discovers official company career pages through a
// layered strategy: persisted cache, domain lookup plus site-scoped
// search, then broad web search with URL scoring.
package research

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"time"

	"github.com/Jeffawe/JobScanner/internal/types"
)

// cacheMaxAge is how long a persisted career page stays fresh before it
// is re-derived on the next lookup.
const cacheMaxAge = 30 * 24 * time.Hour

const maxSearchResults = 10

// The targeted threshold is lower: domain provenance is itself
// evidence.
const (
	targetedScoreThreshold = 30
	broadScoreThreshold    = 50
)

// SearchResult is one ranked web search hit.
type SearchResult struct {
	URL     string
	Title   string
	Snippet string
}

// Searcher performs a web search and returns ranked results. An empty
// slice means no results; failures may also surface as errors, which
// the finder treats as no results.
type Searcher interface {
	Search(ctx context.Context, query string, maxResults int) ([]SearchResult, error)
}

// DomainLookup resolves a company name to its official domain. Not
// found is ("", nil).
type DomainLookup interface {
	LookupDomain(ctx context.Context, companyName string) (string, error)
}

// Store persists resolved career pages keyed by company name.
type Store interface {
	GetFreshCareerPage(ctx context.Context, companyName string, maxAge time.Duration) (*types.CareerPageResult, error)
	UpsertCareerPage(ctx context.Context, companyName string, result *types.CareerPageResult) error
}

// Finder resolves company career pages. All collaborator failures are
// logged and treated as "no answer"; a nil result is a normal outcome.
type Finder struct {
	store    Store
	searcher Searcher
	domains  DomainLookup
}

// NewFinder creates a Finder. domains may be nil when no domain lookup
// provider is configured; the finder then goes straight to broad
// search.
func NewFinder(store Store, searcher Searcher, domains DomainLookup) *Finder {
	return &Finder{store: store, searcher: searcher, domains: domains}
}

// FindCareerPage resolves the career page for a company, strictly
// ordered: fresh cache entry (unless forceRefresh), then targeted
// site-scoped search when a domain is known, then broad search. Any
// search hit is persisted before being returned. Nil means no page was
// found anywhere, which is not an error.
func (f *Finder) FindCareerPage(ctx context.Context, companyName string, forceRefresh bool) *types.CareerPageResult {
	if !forceRefresh {
		cached, err := f.store.GetFreshCareerPage(ctx, companyName, cacheMaxAge)
		if err != nil {
			log.Printf("career page cache lookup failed for %q: %v", companyName, err)
		} else if cached != nil {
			cached.Source = types.SourceCache
			return cached
		}
	}

	domain := ""
	if f.domains != nil {
		d, err := f.domains.LookupDomain(ctx, companyName)
		if err != nil {
			log.Printf("domain lookup failed for %q: %v", companyName, err)
		} else {
			domain = d
		}
	}

	var result *types.CareerPageResult
	if domain != "" {
		result = f.targetedSearch(ctx, companyName, domain)
	}
	if result == nil {
		result = f.broadSearch(ctx, companyName)
	}
	if result == nil {
		return nil
	}

	result.LastVerified = time.Now()
	if err := f.store.UpsertCareerPage(ctx, companyName, result); err != nil {
		log.Printf("failed to persist career page for %q: %v", companyName, err)
	}
	return result
}

// targetedSearch issues site-scoped queries against a known company
// domain, returning on the first query with a qualifying result.
func (f *Finder) targetedSearch(ctx context.Context, companyName, domain string) *types.CareerPageResult {
	queries := []string{
		fmt.Sprintf("site:%s careers", domain),
		fmt.Sprintf("site:%s jobs", domain),
		fmt.Sprintf("site:%s hiring", domain),
		fmt.Sprintf(`site:%s "careers" OR "jobs" OR "hiring"`, domain),
	}

	for _, query := range queries {
		results, err := f.searcher.Search(ctx, query, maxSearchResults)
		if err != nil {
			log.Printf("targeted search failed for %q: %v", query, err)
			continue
		}
		if best, ok := bestCareerURL(results, companyName, true); ok {
			return &types.CareerPageResult{
				Domain:          domain,
				CareerURL:       best.url,
				Source:          types.SourceTargetedSearch,
				ConfidenceScore: best.score,
			}
		}
	}
	return nil
}

// broadSearch queries the open web with quoted company-name queries.
func (f *Finder) broadSearch(ctx context.Context, companyName string) *types.CareerPageResult {
	queries := []string{
		fmt.Sprintf("%q careers", companyName),
		fmt.Sprintf("%q jobs", companyName),
		fmt.Sprintf("%q careers OR jobs OR hiring", companyName),
	}

	for _, query := range queries {
		results, err := f.searcher.Search(ctx, query, maxSearchResults)
		if err != nil {
			log.Printf("broad search failed for %q: %v", query, err)
			continue
		}
		if best, ok := bestCareerURL(results, companyName, false); ok {
			domain := ""
			if u, err := url.Parse(best.url); err == nil {
				domain = u.Host
			}
			return &types.CareerPageResult{
				Domain:          domain,
				CareerURL:       best.url,
				Source:          types.SourceBroadSearch,
				ConfidenceScore: best.score,
			}
		}
	}
	return nil
}
