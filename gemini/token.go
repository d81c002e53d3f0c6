package gemini

import (
	"context"
	"strings"

	"github.com/fwojciec/pantry"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

var _ pantry.TokenCounter = (*TokenCounter)(nil)

// TokenCounter counts prompt tokens locally, without calling the API.
type TokenCounter struct {
	tok   *tokenizer.LocalTokenizer
	model string
}

// NewTokenCounter creates a TokenCounter for model. Models the local
// tokenizer does not know yet are counted with DefaultModel's vocabulary.
func NewTokenCounter(model string) (*TokenCounter, error) {
	if model == "" {
		model = DefaultModel
	}

	tok, err := tokenizer.NewLocalTokenizer(model)
	if err != nil && model != DefaultModel {
		model = DefaultModel
		tok, err = tokenizer.NewLocalTokenizer(model)
	}
	if err != nil {
		return nil, err
	}
	return &TokenCounter{tok: tok, model: model}, nil
}

// Model returns the model whose vocabulary is used for counting.
func (tc *TokenCounter) Model() string {
	return tc.model
}

// CountTokens counts the tokens of text sent as a single user turn.
func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if strings.TrimSpace(text) == "" {
		return 0, nil
	}

	result, err := tc.tok.CountTokens([]*genai.Content{
		genai.NewContentFromText(text, genai.RoleUser),
	}, nil)
	if err != nil {
		return 0, err
	}

	return int(result.TotalTokens), nil
}
