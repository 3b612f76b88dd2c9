// Package google implements introduced.Searcher over the Google Custom
// Search JSON API, scoped to the MathWorks documentation host.
package google

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/introduced"
)

// searchBase is the Custom Search JSON API endpoint. Declared as a var so
// tests can substitute an httptest server.
var searchBase = "https://www.googleapis.com/customsearch/v1"

// docHost is the host search results are constrained to.
const docHost = "www.mathworks.com"

// defaultTimeout bounds a search call when the caller supplies no client.
const defaultTimeout = 10 * time.Second

// Config carries the credentials the Custom Search API requires. Both
// values are injected at the boundary; the core packages never see them.
type Config struct {
	// APIKey authenticates requests.
	APIKey string

	// EngineID identifies the programmable search engine (the "cx"
	// parameter).
	EngineID string
}

// Ensure Searcher implements introduced.Searcher at compile time.
var _ introduced.Searcher = (*Searcher)(nil)

// Searcher queries the Custom Search JSON API.
type Searcher struct {
	client *http.Client
	config Config
}

// NewSearcher creates a Searcher with the given credentials.
func NewSearcher(config Config) *Searcher {
	return &Searcher{
		client: &http.Client{Timeout: defaultTimeout},
		config: config,
	}
}

// Name returns the engine identifier.
func (s *Searcher) Name() string { return "google" }

// searchResponse mirrors the slice of the API response we consume.
type searchResponse struct {
	Items []struct {
		Title   string `json:"title"`
		Link    string `json:"link"`
		Snippet string `json:"snippet"`
	} `json:"items"`
}

// Search queries for the exact term, constrained to the documentation
// host, and returns the hits in engine order.
func (s *Searcher) Search(ctx context.Context, query string) ([]introduced.SearchResult, error) {
	params := url.Values{
		"key": {s.config.APIKey},
		"cx":  {s.config.EngineID},
		"q":   {fmt.Sprintf("site:%s %q", docHost, query)},
	}
	reqURL := searchBase + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("custom search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("custom search returned HTTP %d", resp.StatusCode)
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("parsing custom search response: %w", err)
	}

	results := make([]introduced.SearchResult, 0, len(sr.Items))
	for _, item := range sr.Items {
		results = append(results, introduced.SearchResult{
			Title:   item.Title,
			URL:     item.Link,
			Snippet: item.Snippet,
		})
	}
	return results, nil
}
