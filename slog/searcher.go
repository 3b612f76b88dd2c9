package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/introduced"
)

// Ensure LoggingSearcher implements introduced.Searcher.
var _ introduced.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with debug logging.
type LoggingSearcher struct {
	next   introduced.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next introduced.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the operation.
func (s *LoggingSearcher) Search(ctx context.Context, query string) (results []introduced.SearchResult, err error) {
	defer func(begin time.Time) {
		s.logger.Info("search",
			"engine", s.next.Name(),
			"query", query,
			"count", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, query)
}

// Name returns the wrapped searcher's identifier.
func (s *LoggingSearcher) Name() string {
	return s.next.Name()
}
