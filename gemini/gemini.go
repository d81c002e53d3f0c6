// Package gemini implements the pantry's model-backed services using
// Google Gemini: receipt scanning, item disambiguation and recipe suggestions.
package gemini

import (
	"context"

	"github.com/fwojciec/pantry"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// generate runs a single GenerateContent call and returns the response text.
func generate(ctx context.Context, client *genai.Client, model string, parts []*genai.Part, config *genai.GenerateContentConfig) (string, error) {
	if model == "" {
		model = DefaultModel
	}

	result, err := client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{Parts: parts}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", pantry.Errorf(pantry.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

func systemInstruction(text string) *genai.Content {
	return &genai.Content{Parts: []*genai.Part{{Text: text}}}
}

func stringSchema(description string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeString, Description: description}
}
