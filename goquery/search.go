// Package goquery parses web search result pages with goquery.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pantry"
)

// Ensure SearchParser implements pantry.SearchParser at compile time.
var _ pantry.SearchParser = (*SearchParser)(nil)

// SelectorConfig names the CSS selectors of a search result page layout.
type SelectorConfig struct {
	Result  string
	Title   string
	Snippet string
	Skip    string
}

// DuckDuckGoSelectors matches the html.duckduckgo.com result page.
var DuckDuckGoSelectors = SelectorConfig{
	Result:  "div.result",
	Title:   "a.result__a",
	Snippet: ".result__snippet",
	Skip:    ".result--ad",
}

// SearchParser extracts search results from an HTML result page.
type SearchParser struct {
	selectors SelectorConfig
	base      *url.URL
	converter pantry.Converter
}

// NewSearchParser creates a parser for the DuckDuckGo HTML layout.
// Relative links are resolved against baseURL. When converter is non-nil,
// snippet HTML is converted to Markdown; otherwise its text is used.
func NewSearchParser(baseURL string, converter pantry.Converter) (*SearchParser, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, pantry.Errorf(pantry.EINVALID, "invalid base URL: %v", err)
	}
	return &SearchParser{selectors: DuckDuckGoSelectors, base: base, converter: converter}, nil
}

// ParseResults returns results in page order, skipping ads, duplicates and
// entries without a usable link.
func (p *SearchParser) ParseResults(html string) ([]pantry.SearchResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, pantry.Errorf(pantry.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	var results []pantry.SearchResult

	doc.Find(p.selectors.Result).Each(func(_ int, sel *goquery.Selection) {
		if p.selectors.Skip != "" && sel.Is(p.selectors.Skip) {
			return
		}

		anchor := sel.Find(p.selectors.Title).First()
		href, ok := anchor.Attr("href")
		if !ok {
			return
		}
		link := p.resolveLink(href)
		if link == "" || seen[link] {
			return
		}

		title := strings.Join(strings.Fields(anchor.Text()), " ")
		if title == "" {
			return
		}

		seen[link] = true
		results = append(results, pantry.SearchResult{
			Title:   title,
			URL:     link,
			Snippet: p.snippet(sel.Find(p.selectors.Snippet).First()),
		})
	})

	return results, nil
}

func (p *SearchParser) snippet(sel *goquery.Selection) string {
	if sel.Length() == 0 {
		return ""
	}
	if p.converter != nil {
		if inner, err := sel.Html(); err == nil && strings.TrimSpace(inner) != "" {
			if md, err := p.converter.Convert(inner); err == nil {
				return md
			}
		}
	}
	return strings.Join(strings.Fields(sel.Text()), " ")
}

// resolveLink returns the absolute target of a result link, unwrapping
// DuckDuckGo's /l/?uddg= redirect. Non-HTTP links yield "".
func (p *SearchParser) resolveLink(href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	resolved := p.base.ResolveReference(ref)

	if target := resolved.Query().Get("uddg"); target != "" {
		if resolved, err = url.Parse(target); err != nil {
			return ""
		}
	}

	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return ""
	}
	resolved.Fragment = ""
	return resolved.String()
}
