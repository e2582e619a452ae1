package research

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const clearbitBaseURL = "https://company.clearbit.com/v1/domains/find"

// ClearbitClient implements DomainLookup against the Clearbit
// name-to-domain API.
type ClearbitClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewClearbitClient creates a client with a bounded request timeout.
func NewClearbitClient(apiKey string) *ClearbitClient {
	return &ClearbitClient{
		apiKey:  apiKey,
		baseURL: clearbitBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// LookupDomain resolves a company name to its official domain. Any
// non-200 response, including not-found, yields ("", nil).
func (c *ClearbitClient) LookupDomain(ctx context.Context, companyName string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build clearbit request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.URL.RawQuery = url.Values{"name": {companyName}}.Encode()

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("clearbit request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", nil
	}

	var body struct {
		Domain string `json:"domain"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode clearbit response: %w", err)
	}
	return body.Domain, nil
}
