package mock

import (
	"context"

	"github.com/fwojciec/pantry"
)

var _ pantry.Chef = (*Chef)(nil)

// Chef is a mock implementation of pantry.Chef.
type Chef struct {
	SuggestRecipesFn func(ctx context.Context, prefs pantry.Preferences) ([]*pantry.Recipe, error)
}

func (c *Chef) SuggestRecipes(ctx context.Context, prefs pantry.Preferences) ([]*pantry.Recipe, error) {
	return c.SuggestRecipesFn(ctx, prefs)
}
