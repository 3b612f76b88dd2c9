package http

import (
	"context"
	"regexp"

	"github.com/fwojciec/introduced"
)

// LatestReleaseURL is the page the newest release token is scraped from.
// Declared as a var so tests can substitute an httptest server.
var LatestReleaseURL = "https://www.mathworks.com/products/new_products/latest_features.html"

// releaseToken matches a MathWorks release token like "R2024b".
var releaseToken = regexp.MustCompile(`R20\d\d[ab]`)

// Ensure ReleaseSource implements introduced.ReleaseSource at compile time.
var _ introduced.ReleaseSource = (*ReleaseSource)(nil)

// ReleaseSource scrapes the newest shipped release token from the
// MathWorks latest-features page. The first token on the page wins.
type ReleaseSource struct {
	Fetcher introduced.Fetcher
}

// NewReleaseSource creates a ReleaseSource fetching through f.
func NewReleaseSource(f introduced.Fetcher) *ReleaseSource {
	return &ReleaseSource{Fetcher: f}
}

// Latest returns the newest release token, e.g. "R2024b".
func (s *ReleaseSource) Latest(ctx context.Context) (string, error) {
	html, err := s.Fetcher.Fetch(ctx, LatestReleaseURL)
	if err != nil {
		return "", err
	}
	token := releaseToken.FindString(html)
	if token == "" {
		return "", introduced.Errorf(introduced.ENOTFOUND, "no release token found at %s", LatestReleaseURL)
	}
	return token, nil
}
