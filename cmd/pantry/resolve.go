package main

import (
	"fmt"

	"github.com/fwojciec/pantry"
)

// Run executes the resolve command.
func (c *ResolveCmd) Run(deps *Dependencies) error {
	item, err := deps.Resolver.Resolve(deps.Ctx, &pantry.ScannedItem{RawName: c.Text, Ambiguous: true})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pantry.ErrorMessage(err))
		return err
	}

	if item.CleanName == "" {
		fmt.Fprintf(deps.Stdout, "No match found for %q\n", c.Text)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "%s -> %s (%s)\n", c.Text, item.CleanName, item.Category)
	return nil
}
