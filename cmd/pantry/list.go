package main

import (
	"fmt"

	"github.com/fwojciec/pantry"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := pantry.ItemFilter{}
	if c.Category != "" {
		category := pantry.NormalizeName(c.Category)
		filter.Category = &category
	}

	items, err := deps.Items.FindItems(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pantry.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, pantry.Greeting(pantry.MealAt(deps.Now())))
	fmt.Fprintln(deps.Stdout)

	if len(items) == 0 {
		fmt.Fprintln(deps.Stdout, "Pantry is empty. Use 'pantry scan' or 'pantry add' to stock it.")
		return nil
	}

	category := ""
	for _, item := range items {
		if item.Category != category {
			if category != "" {
				fmt.Fprintln(deps.Stdout)
			}
			category = item.Category
			fmt.Fprintf(deps.Stdout, "%s\n", category)
		}
		fmt.Fprintf(deps.Stdout, "  %s  x%d  [%d]\n", item.Name, item.Quantity, item.ID)
	}

	return nil
}
