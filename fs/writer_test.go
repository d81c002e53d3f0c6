package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/pantry"
	"github.com/fwojciec/pantry/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "simple", in: "Egg Fried Rice", want: "egg-fried-rice"},
		{name: "punctuation collapses", in: "Masala Omelette (Quick!)", want: "masala-omelette-quick"},
		{name: "leading and trailing separators", in: "  --Dal--  ", want: "dal"},
		{name: "digits kept", in: "5 Minute Toast", want: "5-minute-toast"},
		{name: "unicode letters kept", in: "Crème Brûlée", want: "crème-brûlée"},
		{name: "nothing usable", in: "!!!", want: "recipe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, fs.Slug(tt.in))
		})
	}
}

func testRecipe() *pantry.Recipe {
	return &pantry.Recipe{
		Name:               "Egg Fried Rice",
		TimeMinutes:        15,
		Difficulty:         "Easy",
		Description:        "Leftover rice, crisped.",
		UsedIngredients:    []string{"Rice", "Eggs"},
		MissingIngredients: []string{"Spring Onion"},
		YouTubeQuery:       "egg fried rice",
		Steps: []pantry.Step{
			{Text: "Scramble the eggs", Heat: "medium", Time: "2 min"},
			{Text: "Add rice and toss"},
		},
	}
}

func TestFormatRecipe(t *testing.T) {
	t.Parallel()

	generated := time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC)

	got, err := fs.FormatRecipe(testRecipe(), generated)
	require.NoError(t, err)

	want := `---
name: Egg Fried Rice
minutes: 15
difficulty: Easy
generated: "2026-03-14"
---

# Egg Fried Rice

Leftover rice, crisped.

## From the pantry

- Rice
- Eggs

## To buy

- Spring Onion

## Steps

1. Scramble the eggs (heat: medium, time: 2 min)
2. Add rice and toss

[Watch a tutorial](https://www.youtube.com/results?search_query=egg+fried+rice)
`
	assert.Equal(t, want, got)
}

func TestFormatRecipe_OmitsEmptySections(t *testing.T) {
	t.Parallel()

	got := fs.FormatRecipeBody(&pantry.Recipe{Name: "Toast"})

	assert.NotContains(t, got, "## From the pantry")
	assert.NotContains(t, got, "## To buy")
	assert.NotContains(t, got, "## Steps")
	assert.Contains(t, got, "search_query=Toast+recipe")
}

func TestFormatRecipe_QuotesFrontmatterValues(t *testing.T) {
	t.Parallel()

	got, err := fs.FormatRecipe(&pantry.Recipe{Name: "Dal: Tadka", Difficulty: "Easy"}, time.Now())
	require.NoError(t, err)

	assert.Contains(t, got, `name: 'Dal: Tadka'`)
	assert.Contains(t, got, "# Dal: Tadka\n")
}

func TestRecipeWriter_WriteRecipe(t *testing.T) {
	t.Parallel()

	t.Run("writes recipe to slug path", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "recipes")
		w := fs.NewRecipeWriter(dir)
		w.Now = func() time.Time { return time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC) }

		path, err := w.WriteRecipe(context.Background(), testRecipe())
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "egg-fried-rice.md"), path)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "name: Egg Fried Rice")
		assert.Contains(t, string(content), `generated: "2026-03-14"`)
	})

	t.Run("overwrites existing card", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewRecipeWriter(dir)

		r := testRecipe()
		_, err := w.WriteRecipe(context.Background(), r)
		require.NoError(t, err)

		r.TimeMinutes = 20
		path, err := w.WriteRecipe(context.Background(), r)
		require.NoError(t, err)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "minutes: 20")
	})

	t.Run("keeps both cards when names share a slug", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewRecipeWriter(dir)

		first, err := w.WriteRecipe(context.Background(), &pantry.Recipe{Name: "Paneer Tikka"})
		require.NoError(t, err)
		second, err := w.WriteRecipe(context.Background(), &pantry.Recipe{Name: "Paneer-Tikka"})
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(dir, "paneer-tikka.md"), first)
		assert.Equal(t, filepath.Join(dir, "paneer-tikka-2.md"), second)

		content, err := os.ReadFile(first)
		require.NoError(t, err)
		assert.Contains(t, string(content), "# Paneer Tikka\n")

		again, err := w.WriteRecipe(context.Background(), &pantry.Recipe{Name: "Paneer-Tikka"})
		require.NoError(t, err)
		assert.Equal(t, second, again)
	})

	t.Run("does not replace files that are not recipe cards", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "egg-fried-rice.md"), []byte("my notes\n"), 0644))

		path, err := fs.NewRecipeWriter(dir).WriteRecipe(context.Background(), testRecipe())
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "egg-fried-rice-2.md"), path)

		notes, err := os.ReadFile(filepath.Join(dir, "egg-fried-rice.md"))
		require.NoError(t, err)
		assert.Equal(t, "my notes\n", string(notes))
	})

	t.Run("rejects unnamed recipe", func(t *testing.T) {
		t.Parallel()

		w := fs.NewRecipeWriter(t.TempDir())

		_, err := w.WriteRecipe(context.Background(), &pantry.Recipe{})
		require.Error(t, err)
		assert.Equal(t, pantry.EINVALID, pantry.ErrorCode(err))
	})

	t.Run("returns error when directory cannot be created", func(t *testing.T) {
		t.Parallel()

		file := filepath.Join(t.TempDir(), "blocker")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

		w := fs.NewRecipeWriter(filepath.Join(file, "recipes"))

		_, err := w.WriteRecipe(context.Background(), testRecipe())
		require.Error(t, err)
	})
}
