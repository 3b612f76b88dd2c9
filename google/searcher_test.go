package google

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearcher_Search(t *testing.T) {
	t.Run("scopes the query and passes credentials", func(t *testing.T) {
		var gotQuery, gotKey, gotCX string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query().Get("q")
			gotKey = r.URL.Query().Get("key")
			gotCX = r.URL.Query().Get("cx")
			_, _ = w.Write([]byte(`{"items":[]}`))
		}))
		defer srv.Close()

		orig := searchBase
		searchBase = srv.URL
		defer func() { searchBase = orig }()

		s := NewSearcher(Config{APIKey: "test-key", EngineID: "test-cx"})
		_, err := s.Search(context.Background(), "rand")

		require.NoError(t, err)
		assert.Equal(t, `site:www.mathworks.com "rand"`, gotQuery)
		assert.Equal(t, "test-key", gotKey)
		assert.Equal(t, "test-cx", gotCX)
	})

	t.Run("returns hits in engine order", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"items":[
				{"title":"rand","link":"https://www.mathworks.com/help/matlab/ref/rand.html","snippet":"Uniformly distributed"},
				{"title":"randn","link":"https://www.mathworks.com/help/matlab/ref/randn.html","snippet":"Normally distributed"}
			]}`))
		}))
		defer srv.Close()

		orig := searchBase
		searchBase = srv.URL
		defer func() { searchBase = orig }()

		s := NewSearcher(Config{})
		results, err := s.Search(context.Background(), "rand")

		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "https://www.mathworks.com/help/matlab/ref/rand.html", results[0].URL)
		assert.Equal(t, "rand", results[0].Title)
		assert.Equal(t, "https://www.mathworks.com/help/matlab/ref/randn.html", results[1].URL)
	})

	t.Run("non-200 status is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "quota exceeded", http.StatusForbidden)
		}))
		defer srv.Close()

		orig := searchBase
		searchBase = srv.URL
		defer func() { searchBase = orig }()

		s := NewSearcher(Config{})
		_, err := s.Search(context.Background(), "rand")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP 403")
	})

	t.Run("malformed response body is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}))
		defer srv.Close()

		orig := searchBase
		searchBase = srv.URL
		defer func() { searchBase = orig }()

		s := NewSearcher(Config{})
		_, err := s.Search(context.Background(), "rand")

		require.Error(t, err)
	})
}
