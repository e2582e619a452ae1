package research

import (
	"context"
	"fmt"

	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"
)

// GoogleSearcher implements Searcher on top of Google Custom Search.
type GoogleSearcher struct {
	svc *customsearch.Service
	cx  string
}

// NewGoogleSearcher creates a GoogleSearcher for the given API key and
// search engine id.
func NewGoogleSearcher(ctx context.Context, apiKey string, cx string) (*GoogleSearcher, error) {
	svc, err := customsearch.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create customsearch service: %w", err)
	}
	return &GoogleSearcher{svc: svc, cx: cx}, nil
}

// Search runs one query and maps the ranked items. The API caps a
// single page at 10 results.
func (s *GoogleSearcher) Search(ctx context.Context, query string, maxResults int) ([]SearchResult, error) {
	if maxResults > 10 {
		maxResults = 10
	}

	resp, err := s.svc.Cse.List().Cx(s.cx).Q(query).Num(int64(maxResults)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	results := make([]SearchResult, 0, len(resp.Items))
	for _, item := range resp.Items {
		results = append(results, SearchResult{
			URL:     item.Link,
			Title:   item.Title,
			Snippet: item.Snippet,
		})
	}
	return results, nil
}
