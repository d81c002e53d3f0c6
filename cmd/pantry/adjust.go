package main

import (
	"fmt"

	"github.com/fwojciec/pantry"
)

// Run executes the inc command.
func (c *IncCmd) Run(deps *Dependencies) error {
	return adjust(deps, c.ID, 1)
}

// Run executes the dec command.
func (c *DecCmd) Run(deps *Dependencies) error {
	return adjust(deps, c.ID, -1)
}

func adjust(deps *Dependencies, id int64, delta int) error {
	item, err := deps.Items.AdjustQuantity(deps.Ctx, id, delta)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pantry.ErrorMessage(err))
		return err
	}

	if item == nil {
		fmt.Fprintf(deps.Stdout, "Item %d used up and removed\n", id)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "%s  x%d  [%d]\n", item.Name, item.Quantity, item.ID)
	return nil
}
