package mock

import "github.com/fwojciec/introduced"

var _ introduced.FactExtractor = (*FactExtractor)(nil)

// FactExtractor is a mock implementation of introduced.FactExtractor.
type FactExtractor struct {
	ExtractFn func(html string) (introduced.Facts, error)
}

func (e *FactExtractor) Extract(html string) (introduced.Facts, error) {
	return e.ExtractFn(html)
}
