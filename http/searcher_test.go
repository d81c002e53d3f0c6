package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/fwojciec/pantry"
	"github.com/fwojciec/pantry/goquery"
	pantryhttp "github.com/fwojciec/pantry/http"
	"github.com/fwojciec/pantry/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearcher_Search(t *testing.T) {
	t.Parallel()

	t.Run("fetches and parses results from the search endpoint", func(t *testing.T) {
		t.Parallel()

		var gotQuery string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query().Get("q")
			_, _ = w.Write([]byte(`<div class="result"><a class="result__a" href="https://shop.example/paneer">Fresh Paneer</a>
				<a class="result__snippet">Soft cottage cheese</a></div>`))
		}))
		defer server.Close()

		parser, err := goquery.NewSearchParser(server.URL, nil)
		require.NoError(t, err)

		searcher := &pantryhttp.Searcher{
			Fetcher:     pantryhttp.NewFetcher(),
			Parser:      parser,
			RateLimiter: pantryhttp.NewHostLimiter(100),
			BaseURL:     server.URL + "/html/",
			RetryDelays: []time.Duration{},
		}

		results, err := searcher.Search(context.Background(), "  AMUL PANR grocery ")
		require.NoError(t, err)
		assert.Equal(t, "AMUL PANR grocery", gotQuery)
		require.Len(t, results, 1)
		assert.Equal(t, "Fresh Paneer", results[0].Title)
		assert.Equal(t, "https://shop.example/paneer", results[0].URL)
		assert.Equal(t, "Soft cottage cheese", results[0].Snippet)
	})

	t.Run("waits on the limiter for the search host", func(t *testing.T) {
		t.Parallel()

		var hosts []string
		searcher := &pantryhttp.Searcher{
			Fetcher: &mock.Fetcher{
				FetchFn: func(context.Context, string) (string, error) { return "", nil },
			},
			Parser: &mock.SearchParser{
				ParseResultsFn: func(string) ([]pantry.SearchResult, error) { return nil, nil },
			},
			RateLimiter: &mock.RateLimiter{
				WaitFn: func(_ context.Context, host string) error {
					hosts = append(hosts, host)
					return nil
				},
			},
			BaseURL:     "https://search.example/html/",
			RetryDelays: []time.Duration{},
		}

		_, err := searcher.Search(context.Background(), "milk")
		require.NoError(t, err)
		assert.Equal(t, []string{"search.example"}, hosts)
	})

	t.Run("does not fetch when the limiter gives up", func(t *testing.T) {
		t.Parallel()

		searcher := &pantryhttp.Searcher{
			Fetcher: &mock.Fetcher{
				FetchFn: func(context.Context, string) (string, error) {
					t.Fatal("fetch must not be called")
					return "", nil
				},
			},
			RateLimiter: &mock.RateLimiter{
				WaitFn: func(context.Context, string) error { return context.DeadlineExceeded },
			},
			BaseURL:     "https://search.example/html/",
			RetryDelays: []time.Duration{},
		}

		_, err := searcher.Search(context.Background(), "milk")
		require.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("returns EINVALID for empty query", func(t *testing.T) {
		t.Parallel()

		searcher := &pantryhttp.Searcher{}

		_, err := searcher.Search(context.Background(), "   ")
		require.Error(t, err)
		assert.Equal(t, pantry.EINVALID, pantry.ErrorCode(err))
	})

	t.Run("caps results at MaxResults", func(t *testing.T) {
		t.Parallel()

		searcher := &pantryhttp.Searcher{
			Fetcher: &mock.Fetcher{
				FetchFn: func(context.Context, string) (string, error) { return "<html></html>", nil },
			},
			Parser: &mock.SearchParser{
				ParseResultsFn: func(string) ([]pantry.SearchResult, error) {
					return []pantry.SearchResult{{Title: "a"}, {Title: "b"}, {Title: "c"}}, nil
				},
			},
			MaxResults:  2,
			RetryDelays: []time.Duration{},
		}

		results, err := searcher.Search(context.Background(), "milk")
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("uses default endpoint with encoded query", func(t *testing.T) {
		t.Parallel()

		var gotURL string
		searcher := &pantryhttp.Searcher{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, u string) (string, error) {
					gotURL = u
					return "", nil
				},
			},
			Parser: &mock.SearchParser{
				ParseResultsFn: func(string) ([]pantry.SearchResult, error) { return nil, nil },
			},
			RetryDelays: []time.Duration{},
		}

		_, err := searcher.Search(context.Background(), "mac & cheese")
		require.NoError(t, err)

		u, err := url.Parse(gotURL)
		require.NoError(t, err)
		assert.Equal(t, "html.duckduckgo.com", u.Host)
		assert.Equal(t, "mac & cheese", u.Query().Get("q"))
	})

	t.Run("retries failed fetches", func(t *testing.T) {
		t.Parallel()

		calls := 0
		searcher := &pantryhttp.Searcher{
			Fetcher: &mock.Fetcher{
				FetchFn: func(context.Context, string) (string, error) {
					calls++
					if calls == 1 {
						return "", errors.New("HTTP 503")
					}
					return "<html></html>", nil
				},
			},
			Parser: &mock.SearchParser{
				ParseResultsFn: func(string) ([]pantry.SearchResult, error) {
					return []pantry.SearchResult{{Title: "ok"}}, nil
				},
			},
			RetryDelays: []time.Duration{time.Millisecond},
		}

		results, err := searcher.Search(context.Background(), "milk")
		require.NoError(t, err)
		assert.Len(t, results, 1)
		assert.Equal(t, 2, calls)
	})
}
