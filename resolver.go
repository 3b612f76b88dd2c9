package introduced

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strings"
)

// Documentation URL templates, tried in order. MATLAB's own reference
// pages first, then the Simulink block/function reference.
const (
	matlabRefTemplate   = "https://www.mathworks.com/help/matlab/ref/%s.html"
	simulinkRefTemplate = "https://www.mathworks.com/help/simulink/slref/%s.html"
)

// searchEpoch is the first release that ships the web search API the
// fallback strategy depends on. Older installations cannot search.
const searchEpoch = "R2014b"

// Resolver locates the documentation page(s) for a function name.
// Strategies run in a fixed order, stopping at the first that yields a
// result: direct URL guess against the MATLAB reference, direct guess
// against the Simulink reference, then a scoped web search.
type Resolver struct {
	Fetcher      Fetcher
	Searcher     Searcher
	Installation Installation

	// ForceSearch skips the direct guesses and goes straight to the
	// search fallback. Used for exercising the search path.
	ForceSearch bool
}

// resolveStrategy tries one way of locating a page for name.
// ok reports whether the strategy produced a terminal resolution; a false
// ok with a nil error means fall through to the next strategy.
type resolveStrategy func(ctx context.Context, name string) (res Resolution, ok bool, err error)

// Resolve returns the candidate pages for name, in strategy order.
// The name is lowercased before any lookup; no other validation happens,
// since nonexistent names are a normal input.
//
// The only error returned is the search-availability precondition
// (EUNAVAILABLE); every other failure mode degrades into the returned
// Resolution. Given unchanged remote content, repeated calls return the
// same candidates in the same order.
func (r *Resolver) Resolve(ctx context.Context, name string) (Resolution, error) {
	name = strings.ToLower(name)

	strategies := []resolveStrategy{
		r.guessURL(matlabRefTemplate),
		r.guessURL(simulinkRefTemplate),
		r.searchFallback,
	}
	if r.ForceSearch {
		strategies = strategies[2:]
	}

	for _, s := range strategies {
		res, ok, err := s(ctx, name)
		if err != nil {
			return Resolution{}, err
		}
		if ok {
			return res, nil
		}
	}
	return Resolution{}, nil
}

// guessURL returns a strategy that fetches the template's predicted URL.
// Any non-error fetch is a hit, even when a redirect landed elsewhere; a
// fetch error falls through silently to the next strategy.
func (r *Resolver) guessURL(template string) resolveStrategy {
	return func(ctx context.Context, name string) (Resolution, bool, error) {
		u := fmt.Sprintf(template, name)
		html, err := r.Fetcher.Fetch(ctx, u)
		if err != nil {
			return Resolution{}, false, nil
		}
		return Resolution{
			Candidates: []Candidate{{URL: u, HTML: html, Name: name}},
		}, true, nil
	}
}

// searchFallback issues the scoped web search and fetches every surviving
// result link. It is the terminal strategy: it always resolves, either to
// candidates, to an empty resolution ("even search found nothing"), or to
// a SearchFailed resolution when the search call itself died.
func (r *Resolver) searchFallback(ctx context.Context, name string) (Resolution, bool, error) {
	cur, err := ParseRelease(r.Installation.Release())
	if err != nil {
		return Resolution{}, false, err
	}
	epoch, err := ParseRelease(searchEpoch)
	if err != nil {
		return Resolution{}, false, err
	}
	if cur.Compare(epoch) < 0 {
		return Resolution{}, false, Errorf(EUNAVAILABLE,
			"web search requires %s or newer, this installation is %s", searchEpoch, r.Installation.Release())
	}

	results, err := r.Searcher.Search(ctx, name)
	if err != nil {
		return Resolution{SearchFailed: true}, true, nil
	}

	var res Resolution
	seen := make(map[string]bool)
	for _, hit := range results {
		if !keepResultLink(name, hit.URL) || seen[hit.URL] {
			continue
		}
		seen[hit.URL] = true

		html, err := r.Fetcher.Fetch(ctx, hit.URL)
		if err != nil {
			continue
		}
		res.Candidates = append(res.Candidates, Candidate{
			URL:  hit.URL,
			HTML: html,
			Name: nameFromURL(hit.URL, name),
		})
	}
	return res, true, nil
}

// keepResultLink reports whether a search hit is the documentation page
// for name, as opposed to a page that merely mentions it. The link's path
// must end in "<name>.html" with a "/" or "." boundary immediately before
// the name.
//
// A renamed function fails this filter: its page link carries the new
// name while the query carries the old one. Only the direct-guess path
// survives renames, and only when the site redirects the old URL.
func keepResultLink(name, rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	re := regexp.MustCompile(`(?i)(/|\.)` + regexp.QuoteMeta(name) + `\.html$`)
	return re.MatchString(u.Path)
}

// nameFromURL recovers the function name from a documentation link,
// falling back to the queried name when the URL does not parse.
func nameFromURL(rawURL, fallback string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fallback
	}
	base := strings.TrimSuffix(path.Base(u.Path), ".html")
	if base == "" || base == "." || base == "/" {
		return fallback
	}
	return strings.ToLower(base)
}
