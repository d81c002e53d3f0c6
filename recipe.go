package pantry

import (
	"context"
	"net/url"
	"strings"
)

// Recipe is a dish suggested from the current inventory.
type Recipe struct {
	Name               string   `json:"name"`
	TimeMinutes        int      `json:"time_minutes"`
	Difficulty         string   `json:"difficulty"`
	Description        string   `json:"description"`
	UsedIngredients    []string `json:"used_ingredients"`
	MissingIngredients []string `json:"missing_ingredients"`
	YouTubeQuery       string   `json:"youtube_query"`
	Steps              []Step   `json:"steps"`
}

// Step is one instruction of a recipe.
type Step struct {
	Text string `json:"step"`
	Heat string `json:"heat"`
	Time string `json:"time"`
}

// TutorialQuery returns the video search query for the recipe.
func (r *Recipe) TutorialQuery() string {
	if q := strings.TrimSpace(r.YouTubeQuery); q != "" {
		return q
	}
	return r.Name + " recipe"
}

// TutorialURL returns a YouTube search link for the recipe.
func (r *Recipe) TutorialURL() string {
	return "https://www.youtube.com/results?search_query=" + url.QueryEscape(r.TutorialQuery())
}

// Pace is how much time the cook has available.
type Pace string

// Pace constants.
const (
	PaceFast   Pace = "fast"
	PaceMedium Pace = "medium"
	PaceSlow   Pace = "slow"
)

// Label returns the human description sent to the model.
func (p Pace) Label() string {
	switch p {
	case PaceMedium:
		return "Medium (40m)"
	case PaceSlow:
		return "Slow (1h+)"
	default:
		return "Fast (20m)"
	}
}

// ParsePace parses a pace name. Returns EINVALID for unknown values.
func ParsePace(s string) (Pace, error) {
	switch p := Pace(strings.ToLower(strings.TrimSpace(s))); p {
	case PaceFast, PaceMedium, PaceSlow:
		return p, nil
	case "":
		return PaceFast, nil
	default:
		return "", Errorf(EINVALID, "unknown pace %q (want fast, medium or slow)", s)
	}
}

// Preferences steer recipe suggestions.
type Preferences struct {
	Pace    Pace   `json:"pace"`
	People  int    `json:"people"`
	Craving string `json:"craving"`
	Meal    Meal   `json:"meal"`
}

// Occasion returns the craving, or the meal when nothing specific is wanted.
func (p Preferences) Occasion() string {
	if c := strings.TrimSpace(p.Craving); c != "" {
		return c
	}
	if p.Meal != "" {
		return string(p.Meal)
	}
	return "Any"
}

// Chef suggests recipes from the pantry inventory.
type Chef interface {
	// SuggestRecipes returns recipes built around the current inventory.
	// Returns ENOTFOUND if the pantry is empty.
	SuggestRecipes(ctx context.Context, prefs Preferences) ([]*Recipe, error)
}

// RecipeWriter persists recipes outside the database.
type RecipeWriter interface {
	// WriteRecipe stores the recipe and returns where it was written.
	WriteRecipe(ctx context.Context, recipe *Recipe) (string, error)
}

// Renderer formats Markdown for display in a terminal.
type Renderer interface {
	Render(markdown string) (string, error)
}
