package introduced

// FactExtractor pulls structured facts out of a documentation page.
// Each fact is independent and best-effort: an absent marker yields the
// zero value, never an error. Errors are reserved for content that cannot
// be parsed at all.
type FactExtractor interface {
	Extract(html string) (Facts, error)
}
