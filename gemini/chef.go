package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/pantry"
	"google.golang.org/genai"
)

// RecipeCount is the number of recipes requested per suggestion.
const RecipeCount = 3

// Ensure Chef implements pantry.Chef at compile time.
var _ pantry.Chef = (*Chef)(nil)

// Chef implements pantry.Chef using Google Gemini.
type Chef struct {
	client *genai.Client
	items  pantry.ItemService
	model  string

	// Now returns the current time. Used to pick the meal when the
	// preferences leave it unset.
	Now func() time.Time
}

// NewChef creates a new Chef.
func NewChef(client *genai.Client, items pantry.ItemService, model string) *Chef {
	return &Chef{client: client, items: items, model: model, Now: time.Now}
}

// SuggestRecipes returns recipes built around the current inventory.
func (c *Chef) SuggestRecipes(ctx context.Context, prefs pantry.Preferences) ([]*pantry.Recipe, error) {
	prompt, err := c.Prompt(ctx, prefs)
	if err != nil {
		return nil, err
	}

	text, err := generate(ctx, c.client, c.model, []*genai.Part{{Text: prompt}}, BuildRecipeConfig())
	if err != nil {
		return nil, err
	}

	return ParseRecipes(text)
}

// Prompt loads the inventory and returns the prompt SuggestRecipes would send.
// Returns ENOTFOUND if the pantry is empty.
func (c *Chef) Prompt(ctx context.Context, prefs pantry.Preferences) (string, error) {
	items, err := c.items.FindItems(ctx, pantry.ItemFilter{})
	if err != nil {
		return "", err
	}
	if len(items) == 0 {
		return "", pantry.Errorf(pantry.ENOTFOUND, "pantry is empty")
	}

	if prefs.Meal == "" {
		prefs.Meal = pantry.MealAt(c.Now())
	}

	return BuildRecipePrompt(items, prefs), nil
}

// BuildRecipeConfig returns the GenerateContentConfig for recipe suggestions.
func BuildRecipeConfig() *genai.GenerateContentConfig {
	temp := float32(0.7)
	return &genai.GenerateContentConfig{
		SystemInstruction: systemInstruction(
			"You are a Michelin-star home chef. Suggest real, well-known dishes; never invent odd combinations.",
		),
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
		ResponseSchema:   recipeSchema(),
	}
}

// BuildRecipePrompt builds the user prompt from the inventory and preferences.
func BuildRecipePrompt(items []*pantry.Item, prefs pantry.Preferences) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "I have these ingredients: %s.\n\n", pantry.FormatInventory(items))

	sb.WriteString("CONTEXT:\n")
	fmt.Fprintf(&sb, "- Meal: %s\n", prefs.Meal)
	fmt.Fprintf(&sb, "- Pace: %s\n", prefs.Pace.Label())
	fmt.Fprintf(&sb, "- Craving: %s\n", prefs.Occasion())
	if prefs.People > 0 {
		fmt.Fprintf(&sb, "- Servings: %d people\n", prefs.People)
	}

	sb.WriteString("\nTASK:\n")
	fmt.Fprintf(&sb, "Suggest %d high-quality, real recipes that fit the pace and mostly use what I have.\n", RecipeCount)
	sb.WriteString("If I have paneer, suggest real Indian dishes. If I have pasta, suggest real Italian dishes.\n")

	sb.WriteString("\nREQUIREMENTS:\n")
	sb.WriteString("1. youtube_query: a specific search term for the best video, e.g. \"Authentic Paneer Butter Masala restaurant style recipe\" rather than \"Paneer recipe\".\n")
	sb.WriteString("2. steps: step-by-step instructions, each with a heat level (Low/Medium/High) and exact timing (e.g. \"5 mins\").\n")
	sb.WriteString("3. used_ingredients lists pantry items used; missing_ingredients lists what must be bought.")

	return sb.String()
}

func recipeSchema() *genai.Schema {
	step := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"step": stringSchema("Instruction"),
			"heat": stringSchema("Low, Medium or High"),
			"time": stringSchema("Exact timing, e.g. 5 mins"),
		},
		Required: []string{"step", "heat", "time"},
	}
	list := &genai.Schema{Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}}
	recipe := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name":                stringSchema("Dish name"),
			"time_minutes":        {Type: genai.TypeInteger},
			"difficulty":          stringSchema("Easy, Medium or Hard"),
			"description":         stringSchema("Appetizing one-line description"),
			"used_ingredients":    list,
			"missing_ingredients": list,
			"youtube_query":       stringSchema("Specific video search query"),
			"steps":               {Type: genai.TypeArray, Items: step},
		},
		Required: []string{"name", "time_minutes", "description", "used_ingredients", "missing_ingredients", "youtube_query", "steps"},
	}
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"recipes": {Type: genai.TypeArray, Items: recipe},
		},
		Required: []string{"recipes"},
	}
}

// ParseRecipes decodes the model's JSON answer.
// Returns EINTERNAL when the answer is malformed or empty.
func ParseRecipes(text string) ([]*pantry.Recipe, error) {
	var wire struct {
		Recipes []*pantry.Recipe `json:"recipes"`
	}
	if err := json.Unmarshal([]byte(pantry.StripCodeFence(text)), &wire); err != nil {
		return nil, pantry.Errorf(pantry.EINTERNAL, "could not decode recipes: %v", err)
	}

	recipes := wire.Recipes[:0]
	for _, r := range wire.Recipes {
		if r != nil && strings.TrimSpace(r.Name) != "" {
			recipes = append(recipes, r)
		}
	}
	if len(recipes) == 0 {
		return nil, pantry.Errorf(pantry.EINTERNAL, "chef returned no recipes")
	}

	return recipes, nil
}
