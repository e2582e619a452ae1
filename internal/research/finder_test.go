package research

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jeffawe/JobScanner/internal/types"
)

type fakeStore struct {
	fresh   map[string]*types.CareerPageResult
	getErr  error
	upErr   error
	gets    int
	upserts int
}

func newFakeStore() *fakeStore {
	return &fakeStore{fresh: make(map[string]*types.CareerPageResult)}
}

func (s *fakeStore) GetFreshCareerPage(_ context.Context, companyName string, _ time.Duration) (*types.CareerPageResult, error) {
	s.gets++
	if s.getErr != nil {
		return nil, s.getErr
	}
	if r, ok := s.fresh[companyName]; ok {
		copied := *r
		return &copied, nil
	}
	return nil, nil
}

func (s *fakeStore) UpsertCareerPage(_ context.Context, companyName string, result *types.CareerPageResult) error {
	s.upserts++
	if s.upErr != nil {
		return s.upErr
	}
	copied := *result
	s.fresh[companyName] = &copied
	return nil
}

type fakeSearcher struct {
	results map[string][]SearchResult
	queries []string
}

func (s *fakeSearcher) Search(_ context.Context, query string, _ int) ([]SearchResult, error) {
	s.queries = append(s.queries, query)
	return s.results[query], nil
}

type fakeDomains struct {
	domain string
	err    error
	calls  int
}

func (d *fakeDomains) LookupDomain(_ context.Context, _ string) (string, error) {
	d.calls++
	return d.domain, d.err
}

func TestFindCareerPageCacheHit(t *testing.T) {
	store := newFakeStore()
	store.fresh["Acme Inc"] = &types.CareerPageResult{
		Domain:          "acme.com",
		CareerURL:       "https://acme.com/careers",
		Source:          types.SourceTargetedSearch,
		ConfidenceScore: 300,
	}
	searcher := &fakeSearcher{}
	domains := &fakeDomains{domain: "acme.com"}

	finder := NewFinder(store, searcher, domains)
	result := finder.FindCareerPage(context.Background(), "Acme Inc", false)

	require.NotNil(t, result)
	assert.Equal(t, "https://acme.com/careers", result.CareerURL)
	assert.Equal(t, types.SourceCache, result.Source)
	assert.Empty(t, searcher.queries)
	assert.Zero(t, domains.calls)
}

func TestFindCareerPageTargetedFlow(t *testing.T) {
	store := newFakeStore()
	searcher := &fakeSearcher{results: map[string][]SearchResult{
		"site:acme.com careers": {
			{URL: "https://acme.com/careers", Title: "Careers at Acme"},
		},
	}}
	domains := &fakeDomains{domain: "acme.com"}

	finder := NewFinder(store, searcher, domains)
	result := finder.FindCareerPage(context.Background(), "Acme Inc", false)

	require.NotNil(t, result)
	assert.Equal(t, types.SourceTargetedSearch, result.Source)
	assert.Equal(t, "acme.com", result.Domain)
	assert.Equal(t, "https://acme.com/careers", result.CareerURL)
	assert.Equal(t, ScoreCareerURL("https://acme.com/careers", "Careers at Acme", "Acme Inc", true), result.ConfidenceScore)
	assert.False(t, result.LastVerified.IsZero())

	// The first qualifying query short-circuits the rest, and the
	// result is persisted.
	assert.Equal(t, []string{"site:acme.com careers"}, searcher.queries)
	assert.Equal(t, 1, store.upserts)
}

func TestFindCareerPageIdempotence(t *testing.T) {
	store := newFakeStore()
	searcher := &fakeSearcher{results: map[string][]SearchResult{
		"site:acme.com careers": {
			{URL: "https://acme.com/careers", Title: "Careers at Acme"},
		},
	}}
	domains := &fakeDomains{domain: "acme.com"}
	finder := NewFinder(store, searcher, domains)

	first := finder.FindCareerPage(context.Background(), "Acme Inc", false)
	require.NotNil(t, first)
	searchesAfterFirst := len(searcher.queries)
	lookupsAfterFirst := domains.calls

	second := finder.FindCareerPage(context.Background(), "Acme Inc", false)
	require.NotNil(t, second)

	// The second call is served from the store: no new search or
	// domain lookup.
	assert.Equal(t, first.CareerURL, second.CareerURL)
	assert.Len(t, searcher.queries, searchesAfterFirst)
	assert.Equal(t, lookupsAfterFirst, domains.calls)
}

func TestFindCareerPageForceRefreshSkipsCache(t *testing.T) {
	store := newFakeStore()
	store.fresh["Acme Inc"] = &types.CareerPageResult{CareerURL: "https://stale.example.com/careers"}
	searcher := &fakeSearcher{results: map[string][]SearchResult{
		"site:acme.com careers": {
			{URL: "https://acme.com/careers", Title: "Careers at Acme"},
		},
	}}
	domains := &fakeDomains{domain: "acme.com"}

	finder := NewFinder(store, searcher, domains)
	result := finder.FindCareerPage(context.Background(), "Acme Inc", true)

	require.NotNil(t, result)
	assert.Equal(t, "https://acme.com/careers", result.CareerURL)
	assert.NotEmpty(t, searcher.queries)
}

func TestFindCareerPageBroadFallback(t *testing.T) {
	store := newFakeStore()
	searcher := &fakeSearcher{results: map[string][]SearchResult{
		`"Acme Inc" careers`: {
			{URL: "https://www.acme.com/careers", Title: "Careers at Acme"},
		},
	}}
	// No domain found: targeted search is skipped entirely.
	domains := &fakeDomains{domain: ""}

	finder := NewFinder(store, searcher, domains)
	result := finder.FindCareerPage(context.Background(), "Acme Inc", false)

	require.NotNil(t, result)
	assert.Equal(t, types.SourceBroadSearch, result.Source)
	assert.Equal(t, "www.acme.com", result.Domain)
	assert.Equal(t, []string{`"Acme Inc" careers`}, searcher.queries)
}

func TestFindCareerPageTargetedMissFallsToBroad(t *testing.T) {
	store := newFakeStore()
	searcher := &fakeSearcher{results: map[string][]SearchResult{
		// Targeted queries only surface an aggregator, which scores 0.
		"site:acme.com careers": {
			{URL: "https://www.indeed.com/cmp/acme/jobs", Title: "Acme Jobs"},
		},
		`"Acme Inc" careers`: {
			{URL: "https://acme.com/careers", Title: "Careers at Acme"},
		},
	}}
	domains := &fakeDomains{domain: "acme.com"}

	finder := NewFinder(store, searcher, domains)
	result := finder.FindCareerPage(context.Background(), "Acme Inc", false)

	require.NotNil(t, result)
	assert.Equal(t, types.SourceBroadSearch, result.Source)
}

func TestFindCareerPageNothingFound(t *testing.T) {
	store := newFakeStore()
	finder := NewFinder(store, &fakeSearcher{}, &fakeDomains{})

	result := finder.FindCareerPage(context.Background(), "Obscure Co", false)

	assert.Nil(t, result)
	assert.Zero(t, store.upserts)
}

func TestFindCareerPageSwallowsStoreFailures(t *testing.T) {
	store := newFakeStore()
	store.getErr = errors.New("store down")
	store.upErr = errors.New("store down")
	searcher := &fakeSearcher{results: map[string][]SearchResult{
		"site:acme.com careers": {
			{URL: "https://acme.com/careers", Title: "Careers at Acme"},
		},
	}}
	domains := &fakeDomains{domain: "acme.com"}

	finder := NewFinder(store, searcher, domains)
	result := finder.FindCareerPage(context.Background(), "Acme Inc", false)

	// Store failures never fail the lookup.
	require.NotNil(t, result)
	assert.Equal(t, types.SourceTargetedSearch, result.Source)
}

func TestFindCareerPageNilDomainLookup(t *testing.T) {
	store := newFakeStore()
	searcher := &fakeSearcher{results: map[string][]SearchResult{
		`"Acme Inc" careers`: {
			{URL: "https://acme.com/careers", Title: "Careers at Acme"},
		},
	}}

	finder := NewFinder(store, searcher, nil)
	result := finder.FindCareerPage(context.Background(), "Acme Inc", false)

	require.NotNil(t, result)
	assert.Equal(t, types.SourceBroadSearch, result.Source)
}
