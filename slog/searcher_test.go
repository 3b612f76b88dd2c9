package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/introduced"
	"github.com/fwojciec/introduced/mock"
	introslog "github.com/fwojciec/introduced/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSearcher_Search(t *testing.T) {
	t.Parallel()

	t.Run("logs search with result count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Searcher{
			SearchFn: func(ctx context.Context, query string) ([]introduced.SearchResult, error) {
				return []introduced.SearchResult{
					{URL: "https://www.mathworks.com/help/matlab/ref/rand.html"},
				}, nil
			},
			NameFn: func() string { return "google" },
		}

		searcher := introslog.NewLoggingSearcher(inner, logger)
		results, err := searcher.Search(context.Background(), "rand")

		require.NoError(t, err)
		assert.Len(t, results, 1)
		output := buf.String()
		assert.Contains(t, output, "search")
		assert.Contains(t, output, "engine=google")
		assert.Contains(t, output, "query=rand")
		assert.Contains(t, output, "count=1")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Searcher{
			SearchFn: func(ctx context.Context, query string) ([]introduced.SearchResult, error) {
				return nil, errors.New("connection refused")
			},
		}

		searcher := introslog.NewLoggingSearcher(inner, logger)
		_, err := searcher.Search(context.Background(), "rand")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"connection refused\"")
	})

	t.Run("passes through the engine name", func(t *testing.T) {
		t.Parallel()

		inner := &mock.Searcher{NameFn: func() string { return "google" }}
		searcher := introslog.NewLoggingSearcher(inner, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

		assert.Equal(t, "google", searcher.Name())
	})
}
