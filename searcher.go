package introduced

import "context"

// SearchResult represents a single web search hit.
type SearchResult struct {
	Title   string
	URL     string
	Snippet string
}

// Searcher abstracts a web search engine.
// Implementations scope results to the documentation host themselves; the
// query passed in is the raw term being looked up.
type Searcher interface {
	// Search performs a web search and returns results in engine order.
	Search(ctx context.Context, query string) ([]SearchResult, error)

	// Name returns the engine identifier (e.g. "google").
	Name() string
}
