package introduced

// Candidate is a documentation page located for a queried name.
type Candidate struct {
	// URL the page was fetched from.
	URL string

	// HTML is the raw page content.
	HTML string

	// Name is the display name for this candidate: the queried name for
	// direct guesses, the name parsed from the link for search hits, and
	// the canonical name once extraction recovers one.
	Name string
}

// Facts holds what extraction recovered from a documentation page.
// Empty string / nil means the marker was absent, which is a normal
// outcome, not an error.
type Facts struct {
	// Version is the introduction phrase verbatim, e.g.
	// "Introduced before R2006a".
	Version string

	// Rename records a rename annotation when the page carries one.
	Rename *Rename

	// CanonicalName is the function's current name per the page's
	// canonical link, when it could be recovered.
	CanonicalName string
}

// Rename records that a function was renamed in some release.
type Rename struct {
	OldName string
	Version string // release token, e.g. "R2022a"
}

// OutcomeKind classifies the result of a lookup.
type OutcomeKind int

// Lookup result categories.
const (
	// VersionFound: page exists and carries an introduction phrase.
	VersionFound OutcomeKind = iota

	// NoVersion: page exists but carries no recognizable version token.
	NoVersion

	// LocalOnly: the name resolves locally but no documentation page was
	// found by any strategy.
	LocalOnly

	// NotFound: the name neither resolves locally nor has documentation.
	NotFound

	// ConnectionError: the search fallback itself failed transport-wise.
	ConnectionError
)

// Outcome is one reportable result. Exactly one Outcome is produced per
// successfully fetched candidate; when nothing was fetched at all, exactly
// one Outcome is produced for the whole query.
type Outcome struct {
	Name    string
	Kind    OutcomeKind
	Version string  // set when Kind == VersionFound
	Rename  *Rename // optionally set alongside VersionFound

	// Canonical is the authoritative current name when extraction
	// recovered one; empty otherwise. Used to phrase rename lines.
	Canonical string

	// CurrentRelease and LatestRelease feed the LocalOnly / NotFound
	// message templates.
	CurrentRelease string
	LatestRelease  string
}

// Resolution is the resolver's result for one name: zero or more
// candidates, plus a flag distinguishing "the search fallback itself died"
// from "even search found nothing".
type Resolution struct {
	Candidates []Candidate

	// SearchFailed is set when the search call failed transport- or
	// parse-wise. Reported as a connection error rather than falling
	// through to local-existence classification.
	SearchFailed bool
}
