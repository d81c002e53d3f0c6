package main

import (
	"fmt"

	"github.com/fwojciec/pantry"
)

// Run executes the receipts command.
func (c *ReceiptsCmd) Run(deps *Dependencies) error {
	receipts, err := deps.Receipts.FindReceipts(deps.Ctx, pantry.ReceiptFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pantry.ErrorMessage(err))
		return err
	}

	if len(receipts) == 0 {
		fmt.Fprintln(deps.Stdout, "No receipts scanned yet. Use 'pantry scan' to add one.")
		return nil
	}

	for _, r := range receipts {
		fmt.Fprintf(deps.Stdout, "%s  %s  %d items\n", r.ID, r.ScannedAt.Local().Format("2006-01-02 15:04"), r.ItemCount)
	}
	return nil
}
