package main

import (
	"fmt"
	"strconv"

	"github.com/fwojciec/pantry"
)

// Run executes the add command.
func (c *AddCmd) Run(deps *Dependencies) error {
	if c.Quantity < 1 {
		fmt.Fprintln(deps.Stderr, "error: quantity must be at least 1")
		return pantry.Errorf(pantry.EINVALID, "quantity must be at least 1")
	}

	item := &pantry.ScannedItem{
		RawName:   c.Name,
		CleanName: c.Name,
		Category:  c.Category,
		Quantity:  strconv.Itoa(c.Quantity),
	}

	result, err := deps.Items.MergeItems(deps.Ctx, []*pantry.ScannedItem{item})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pantry.ErrorMessage(err))
		return err
	}

	for _, o := range result.Outcomes {
		if o.Created {
			fmt.Fprintf(deps.Stdout, "Added %s  x%d  [%d]\n", o.Name, o.After, o.ItemID)
		} else {
			fmt.Fprintf(deps.Stdout, "Updated %s  x%d -> x%d  [%d]\n", o.Name, o.Before, o.After, o.ItemID)
		}
	}
	return nil
}
