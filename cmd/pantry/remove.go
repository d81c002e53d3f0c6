package main

import (
	"fmt"

	"github.com/fwojciec/pantry"
)

// Run executes the remove command.
func (c *RemoveCmd) Run(deps *Dependencies) error {
	item, err := deps.Items.FindItemByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pantry.ErrorMessage(err))
		return err
	}

	if err := deps.Items.DeleteItem(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pantry.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Removed %s [%d]\n", item.Name, item.ID)
	return nil
}
