package gemini_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/pantry"
	"github.com/fwojciec/pantry/gemini"
	"github.com/fwojciec/pantry/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver_Resolve_ReturnsErrorForNilItem(t *testing.T) {
	t.Parallel()

	resolver := gemini.NewResolver(nil, nil, "")

	_, err := resolver.Resolve(context.Background(), nil)

	require.Error(t, err)
	assert.Equal(t, pantry.EINVALID, pantry.ErrorCode(err))
}

func TestResolver_Resolve_ClearsAmbiguityWhenNoResults(t *testing.T) {
	t.Parallel()

	var gotQuery string
	search := &mock.Searcher{
		SearchFn: func(_ context.Context, query string) ([]pantry.SearchResult, error) {
			gotQuery = query
			return nil, nil
		},
	}

	resolver := gemini.NewResolver(nil, search, "") // nil client is never reached
	in := &pantry.ScannedItem{RawName: "KRKR 200", Quantity: "1", Ambiguous: true}

	out, err := resolver.Resolve(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, "KRKR 200 grocery", gotQuery)
	assert.False(t, out.Ambiguous)
	assert.Equal(t, "KRKR 200", out.RawName)
	assert.True(t, in.Ambiguous, "input must not be modified")
}

func TestResolver_Resolve_PropagatesSearchError(t *testing.T) {
	t.Parallel()

	search := &mock.Searcher{
		SearchFn: func(context.Context, string) ([]pantry.SearchResult, error) {
			return nil, errors.New("network down")
		},
	}

	resolver := gemini.NewResolver(nil, search, "")

	_, err := resolver.Resolve(context.Background(), &pantry.ScannedItem{RawName: "KRKR"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "network down")
}

func TestSearchQuery(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "AMUL TAZA grocery", gemini.SearchQuery(&pantry.ScannedItem{RawName: " AMUL TAZA "}))
	assert.Equal(t, "Milk grocery", gemini.SearchQuery(&pantry.ScannedItem{CleanName: "Milk"}))
	assert.Empty(t, gemini.SearchQuery(&pantry.ScannedItem{}))
}

func TestBuildResolvePrompt_ContainsResults(t *testing.T) {
	t.Parallel()

	prompt := gemini.BuildResolvePrompt(
		&pantry.ScannedItem{RawName: "KRKR 200", CleanName: "Crackers"},
		[]pantry.SearchResult{{Title: "Kurkure Masala Munch 200g", URL: "https://shop.example/kurkure", Snippet: "Spicy snack"}},
	)

	assert.Contains(t, prompt, `Receipt line: "KRKR 200"`)
	assert.Contains(t, prompt, `Scanner guess: "Crackers"`)
	assert.Contains(t, prompt, "<title>Kurkure Masala Munch 200g</title>")
	assert.Contains(t, prompt, "<snippet>Spicy snack</snippet>")
}

func TestParseResolution(t *testing.T) {
	t.Parallel()

	res, err := gemini.ParseResolution(`{"clean_name": " Kurkure ", "category": "Snacks"}`)
	require.NoError(t, err)
	assert.Equal(t, "Kurkure", res.CleanName)
	assert.Equal(t, "Snacks", res.Category)

	_, err = gemini.ParseResolution("not json")
	require.Error(t, err)
	assert.Equal(t, pantry.EINTERNAL, pantry.ErrorCode(err))
}
