package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/pantry"
	"google.golang.org/genai"
)

// Ensure Resolver implements pantry.Resolver at compile time.
var _ pantry.Resolver = (*Resolver)(nil)

// Resolver implements pantry.Resolver by grounding Gemini on web search results.
type Resolver struct {
	client *genai.Client
	search pantry.Searcher
	model  string
}

// NewResolver creates a new Resolver.
func NewResolver(client *genai.Client, search pantry.Searcher, model string) *Resolver {
	return &Resolver{client: client, search: search, model: model}
}

// Resolve names an ambiguous receipt line using web search results.
// Items with nothing to search for, or with no search hits, come back
// unchanged apart from Ambiguous being cleared.
func (r *Resolver) Resolve(ctx context.Context, item *pantry.ScannedItem) (*pantry.ScannedItem, error) {
	if item == nil {
		return nil, pantry.Errorf(pantry.EINVALID, "item required")
	}

	out := *item
	out.Ambiguous = false

	query := SearchQuery(item)
	if query == "" {
		return &out, nil
	}

	results, err := r.search.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return &out, nil
	}

	text, err := generate(ctx, r.client, r.model, []*genai.Part{{Text: BuildResolvePrompt(item, results)}}, BuildResolveConfig())
	if err != nil {
		return nil, err
	}

	res, err := ParseResolution(text)
	if err != nil {
		return nil, err
	}
	if res.CleanName != "" {
		out.CleanName = res.CleanName
	}
	if res.Category != "" {
		out.Category = res.Category
	}

	return &out, nil
}

// SearchQuery returns the web query used to identify a receipt line.
func SearchQuery(item *pantry.ScannedItem) string {
	name := strings.TrimSpace(item.RawName)
	if name == "" {
		name = strings.TrimSpace(item.CleanName)
	}
	if name == "" {
		return ""
	}
	return name + " grocery"
}

// BuildResolveConfig returns the GenerateContentConfig for disambiguation.
func BuildResolveConfig() *genai.GenerateContentConfig {
	temp := float32(0.1)
	return &genai.GenerateContentConfig{
		SystemInstruction: systemInstruction(
			"You identify grocery products from abbreviated receipt text using the search results provided.",
		),
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"clean_name": stringSchema("Common product name"),
				"category":   stringSchema("Product category"),
			},
			Required: []string{"clean_name", "category"},
		},
	}
}

// BuildResolvePrompt builds the disambiguation prompt for one receipt line.
func BuildResolvePrompt(item *pantry.ScannedItem, results []pantry.SearchResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Receipt line: %q\n", item.RawName)
	if item.CleanName != "" {
		fmt.Fprintf(&sb, "Scanner guess: %q\n", item.CleanName)
	}
	sb.WriteString("\n<results>\n")
	for i, res := range results {
		sb.WriteString("<result>\n")
		fmt.Fprintf(&sb, "<index>%d</index>\n", i+1)
		fmt.Fprintf(&sb, "<title>%s</title>\n", res.Title)
		fmt.Fprintf(&sb, "<url>%s</url>\n", res.URL)
		fmt.Fprintf(&sb, "<snippet>%s</snippet>\n", res.Snippet)
		sb.WriteString("</result>\n")
	}
	sb.WriteString("</results>\n\n")
	sb.WriteString("What product is this? Answer with the common name a person would use at home and its category.")
	return sb.String()
}

// Resolution is the model's answer for one receipt line.
type Resolution struct {
	CleanName string `json:"clean_name"`
	Category  string `json:"category"`
}

// ParseResolution decodes the model's JSON answer.
func ParseResolution(text string) (*Resolution, error) {
	var res Resolution
	if err := json.Unmarshal([]byte(pantry.StripCodeFence(text)), &res); err != nil {
		return nil, pantry.Errorf(pantry.EINTERNAL, "could not decode resolution: %v", err)
	}
	res.CleanName = strings.TrimSpace(res.CleanName)
	res.Category = strings.TrimSpace(res.Category)
	return &res, nil
}
