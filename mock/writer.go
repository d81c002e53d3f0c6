package mock

import (
	"context"

	"github.com/fwojciec/pantry"
)

var _ pantry.RecipeWriter = (*RecipeWriter)(nil)

// RecipeWriter is a mock implementation of pantry.RecipeWriter.
type RecipeWriter struct {
	WriteRecipeFn func(ctx context.Context, recipe *pantry.Recipe) (string, error)
}

func (w *RecipeWriter) WriteRecipe(ctx context.Context, recipe *pantry.Recipe) (string, error) {
	return w.WriteRecipeFn(ctx, recipe)
}
