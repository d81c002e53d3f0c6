package http

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/pantry"
)

// DefaultSearchURL is the DuckDuckGo HTML endpoint.
const DefaultSearchURL = "https://html.duckduckgo.com/html/"

// DefaultMaxResults caps the number of results returned per query.
const DefaultMaxResults = 5

// Ensure Searcher implements pantry.Searcher at compile time.
var _ pantry.Searcher = (*Searcher)(nil)

// Searcher queries a search engine's HTML endpoint and parses the results.
type Searcher struct {
	Fetcher pantry.Fetcher
	Parser  pantry.SearchParser

	// RateLimiter, if set, is waited on before every request attempt.
	RateLimiter pantry.RateLimiter

	// BaseURL defaults to DefaultSearchURL. The query is sent as "q".
	BaseURL string

	// MaxResults defaults to DefaultMaxResults.
	MaxResults int

	// RetryDelays defaults to DefaultRetryDelays when nil. An empty,
	// non-nil slice disables retries.
	RetryDelays []time.Duration

	Logf LogFunc
}

// Search returns the top results for the query.
func (s *Searcher) Search(ctx context.Context, query string) ([]pantry.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, pantry.Errorf(pantry.EINVALID, "search query required")
	}

	searchURL, host, err := s.buildURL(query)
	if err != nil {
		return nil, err
	}

	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	fetch := func(ctx context.Context, u string) (string, error) {
		if s.RateLimiter != nil {
			if err := s.RateLimiter.Wait(ctx, host); err != nil {
				return "", err
			}
		}
		return s.Fetcher.Fetch(ctx, u)
	}

	html, err := FetchWithRetry(ctx, searchURL, fetch, s.Logf, delays)
	if err != nil {
		return nil, err
	}

	results, err := s.Parser.ParseResults(html)
	if err != nil {
		return nil, err
	}

	limit := s.MaxResults
	if limit <= 0 {
		limit = DefaultMaxResults
	}
	if len(results) > limit {
		results = results[:limit]
	}

	return results, nil
}

func (s *Searcher) buildURL(query string) (string, string, error) {
	base := s.BaseURL
	if base == "" {
		base = DefaultSearchURL
	}

	u, err := url.Parse(base)
	if err != nil {
		return "", "", pantry.Errorf(pantry.EINVALID, "invalid search URL: %v", err)
	}

	q := u.Query()
	q.Set("q", query)
	u.RawQuery = q.Encode()

	return u.String(), u.Host, nil
}
