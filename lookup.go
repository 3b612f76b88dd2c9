package introduced

import (
	"context"
	"strings"
)

// PlaceholderLatest is substituted for the newest-release token when the
// latest-release lookup itself fails.
const PlaceholderLatest = "the latest version"

// Lookup runs the full pipeline for one function name: resolve candidate
// pages, extract facts from each, and classify names with no page at all
// against the local installation.
type Lookup struct {
	Resolver     *Resolver
	Extractor    FactExtractor
	Installation Installation
	Releases     ReleaseSource
}

// Run processes a single name to completion and returns its outcomes:
// one per fetched candidate page, or exactly one for the whole query when
// no page was fetched. The returned error is fatal for this name (the
// search-availability precondition); every other failure mode is already
// folded into an outcome.
func (l *Lookup) Run(ctx context.Context, name string) ([]Outcome, error) {
	name = strings.ToLower(name)

	res, err := l.Resolver.Resolve(ctx, name)
	if err != nil {
		return nil, err
	}

	if res.SearchFailed {
		return []Outcome{{Name: name, Kind: ConnectionError}}, nil
	}

	if len(res.Candidates) > 0 {
		outcomes := make([]Outcome, 0, len(res.Candidates))
		for _, c := range res.Candidates {
			outcomes = append(outcomes, l.extract(c))
		}
		return outcomes, nil
	}

	return []Outcome{l.classifyMissing(ctx, name)}, nil
}

// extract turns one fetched candidate into its outcome. The canonical
// name, when recovered, overrides the candidate's display name.
func (l *Lookup) extract(c Candidate) Outcome {
	facts, err := l.Extractor.Extract(c.HTML)
	if err != nil {
		facts = Facts{}
	}

	name := c.Name
	if facts.CanonicalName != "" {
		name = facts.CanonicalName
	}

	if facts.Version == "" {
		return Outcome{Name: name, Kind: NoVersion}
	}
	return Outcome{
		Name:      name,
		Kind:      VersionFound,
		Version:   facts.Version,
		Rename:    facts.Rename,
		Canonical: facts.CanonicalName,
	}
}

// classifyMissing handles the no-page terminus: the name either exists
// locally (and may have been removed from the documented product at some
// point) or does not exist at all.
func (l *Lookup) classifyMissing(ctx context.Context, name string) Outcome {
	current := l.Installation.Release()

	if _, ok := l.Installation.Which(name); !ok {
		return Outcome{Name: name, Kind: NotFound, CurrentRelease: current}
	}

	latest, err := l.Releases.Latest(ctx)
	if err != nil || latest == "" {
		latest = PlaceholderLatest
	}
	return Outcome{
		Name:           name,
		Kind:           LocalOnly,
		CurrentRelease: current,
		LatestRelease:  latest,
	}
}
