package mock

import (
	"context"

	"github.com/fwojciec/pantry"
)

var (
	_ pantry.Searcher    = (*Searcher)(nil)
	_ pantry.Converter   = (*Converter)(nil)
	_ pantry.RateLimiter = (*RateLimiter)(nil)
)

// Searcher is a mock implementation of pantry.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, query string) ([]pantry.SearchResult, error)
}

func (s *Searcher) Search(ctx context.Context, query string) ([]pantry.SearchResult, error) {
	return s.SearchFn(ctx, query)
}

// Converter is a mock implementation of pantry.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var (
	_ pantry.SearchParser = (*SearchParser)(nil)
	_ pantry.Fetcher      = (*Fetcher)(nil)
)

// SearchParser is a mock implementation of pantry.SearchParser.
type SearchParser struct {
	ParseResultsFn func(html string) ([]pantry.SearchResult, error)
}

func (p *SearchParser) ParseResults(html string) ([]pantry.SearchResult, error) {
	return p.ParseResultsFn(html)
}

// Fetcher is a mock implementation of pantry.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

// RateLimiter is a mock implementation of pantry.RateLimiter.
type RateLimiter struct {
	WaitFn func(ctx context.Context, host string) error
}

func (l *RateLimiter) Wait(ctx context.Context, host string) error {
	return l.WaitFn(ctx, host)
}
