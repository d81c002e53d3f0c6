package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/pantry"
	"github.com/fwojciec/pantry/fs"
)

// Run executes the recipes command.
func (c *RecipesCmd) Run(deps *Dependencies) error {
	pace, err := pantry.ParsePace(c.Pace)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pantry.ErrorMessage(err))
		return err
	}
	if c.People < 1 {
		fmt.Fprintln(deps.Stderr, "error: people must be at least 1")
		return pantry.Errorf(pantry.EINVALID, "people must be at least 1")
	}

	prefs := pantry.Preferences{
		Pace:    pace,
		People:  c.People,
		Craving: c.Craving,
		Meal:    pantry.MealAt(deps.Now()),
	}

	if c.Prompt {
		return c.printPrompt(deps, prefs)
	}

	recipes, err := deps.Chef.SuggestRecipes(deps.Ctx, prefs)
	if err != nil {
		if pantry.ErrorCode(err) == pantry.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: %s. Use 'pantry scan' or 'pantry add' first.\n", pantry.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", pantry.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s | %s | %d people\n\n", prefs.Occasion(), pace.Label(), prefs.People)
	for i, r := range recipes {
		if deps.Renderer != nil {
			out, err := deps.Renderer.Render(fs.FormatRecipeBody(r))
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: rendering %q: %s\n", r.Name, pantry.ErrorMessage(err))
				return err
			}
			fmt.Fprint(deps.Stdout, out)
			continue
		}
		if i > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		printRecipe(deps.Stdout, i+1, r)
	}

	if deps.Writer == nil {
		return nil
	}

	fmt.Fprintln(deps.Stdout)
	for _, r := range recipes {
		path, err := deps.Writer.WriteRecipe(deps.Ctx, r)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: saving %q: %s\n", r.Name, pantry.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Saved %s\n", path)
	}
	return nil
}

func (c *RecipesCmd) printPrompt(deps *Dependencies, prefs pantry.Preferences) error {
	prompt, err := deps.Prompter.Prompt(deps.Ctx, prefs)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pantry.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, prompt)

	if deps.Tokens != nil {
		count, err := deps.Tokens.CountTokens(deps.Ctx, prompt)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: counting tokens: %s\n", pantry.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "\n%d tokens\n", count)
	}
	return nil
}

func printRecipe(w io.Writer, n int, r *pantry.Recipe) {
	fmt.Fprintf(w, "%d. %s  (%d min, %s)\n", n, r.Name, r.TimeMinutes, r.Difficulty)
	if r.Description != "" {
		fmt.Fprintf(w, "   %s\n", r.Description)
	}
	if len(r.UsedIngredients) > 0 {
		fmt.Fprintf(w, "   Uses: %s\n", strings.Join(r.UsedIngredients, ", "))
	}
	if len(r.MissingIngredients) > 0 {
		fmt.Fprintf(w, "   Missing: %s\n", strings.Join(r.MissingIngredients, ", "))
	}
	for i, s := range r.Steps {
		var meta []string
		if s.Heat != "" {
			meta = append(meta, s.Heat)
		}
		if s.Time != "" {
			meta = append(meta, s.Time)
		}
		if len(meta) > 0 {
			fmt.Fprintf(w, "   %d) %s [%s]\n", i+1, s.Text, strings.Join(meta, ", "))
		} else {
			fmt.Fprintf(w, "   %d) %s\n", i+1, s.Text)
		}
	}
	fmt.Fprintf(w, "   Tutorial: %s\n", r.TutorialURL())
}
