package introduced

import "context"

// Fetcher retrieves raw HTML from URLs.
// Implementations follow redirects transparently, so a fetch that lands on
// a different page than the one requested still counts as success.
type Fetcher interface {
	// Fetch performs a GET request and returns the response body.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)
}
