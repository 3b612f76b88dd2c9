package mock

import (
	"context"

	"github.com/fwojciec/introduced"
)

var _ introduced.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of introduced.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, query string) ([]introduced.SearchResult, error)
	NameFn   func() string
}

func (s *Searcher) Search(ctx context.Context, query string) ([]introduced.SearchResult, error) {
	return s.SearchFn(ctx, query)
}

func (s *Searcher) Name() string {
	if s.NameFn == nil {
		return "mock"
	}
	return s.NameFn()
}
