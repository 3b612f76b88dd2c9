package mock

import (
	"context"

	"github.com/fwojciec/introduced"
)

var _ introduced.Installation = (*Installation)(nil)

// Installation is a mock implementation of introduced.Installation.
type Installation struct {
	WhichFn   func(name string) (string, bool)
	ReleaseFn func() string
}

func (i *Installation) Which(name string) (string, bool) {
	return i.WhichFn(name)
}

func (i *Installation) Release() string {
	return i.ReleaseFn()
}

var _ introduced.ReleaseSource = (*ReleaseSource)(nil)

// ReleaseSource is a mock implementation of introduced.ReleaseSource.
type ReleaseSource struct {
	LatestFn func(ctx context.Context) (string, error)
}

func (s *ReleaseSource) Latest(ctx context.Context) (string, error) {
	return s.LatestFn(ctx)
}
