package pantry

import "context"

// SearchResult is a single web search hit.
type SearchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// Searcher queries a web search engine.
type Searcher interface {
	// Search returns the top results for the query.
	// Returns EINVALID if the query is empty.
	Search(ctx context.Context, query string) ([]SearchResult, error)
}

// Converter transforms HTML fragments into Markdown.
type Converter interface {
	Convert(html string) (string, error)
}

// SearchParser extracts results from a search engine's HTML result page.
type SearchParser interface {
	ParseResults(html string) ([]SearchResult, error)
}

// RateLimiter paces requests per host.
type RateLimiter interface {
	// Wait blocks until a request to host is allowed or ctx is done.
	Wait(ctx context.Context, host string) error
}

// Fetcher retrieves the body of a web page.
type Fetcher interface {
	// Fetch returns the response body for the URL.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (body string, err error)
}
