package main

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/pantry"
	"github.com/fwojciec/pantry/ingest"
)

// Run executes the scan command.
func (c *ScanCmd) Run(deps *Dependencies) error {
	image, err := os.ReadFile(c.Image)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	mimeType := mime.TypeByExtension(strings.ToLower(filepath.Ext(c.Image)))

	result, err := deps.Ingester.IngestReceipt(deps.Ctx, image, mimeType, ingest.Options{Force: c.Force}, scanProgress(deps))
	if err != nil {
		if pantry.ErrorCode(err) == pantry.ECONFLICT {
			fmt.Fprintf(deps.Stderr, "error: %s. Use --force to merge it again.\n", pantry.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", pantry.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Merged %d items (%d new, %d updated)\n", result.Merge.Total(), result.Merge.Inserted, result.Merge.Updated)
	if result.Failed > 0 {
		fmt.Fprintf(deps.Stdout, "%d unclear lines were kept as scanned\n", result.Failed)
	}
	return nil
}

func scanProgress(deps *Dependencies) ingest.ProgressFunc {
	return func(e ingest.ProgressEvent) {
		switch e.Type {
		case ingest.ProgressScanned:
			fmt.Fprintf(deps.Stdout, "Scanned %d items\n", e.Count)
		case ingest.ProgressResolved:
			fmt.Fprintf(deps.Stdout, "  resolved %q as %s (%s)\n", e.Item.RawName, e.Item.CleanName, e.Item.Category)
		case ingest.ProgressResolveFailed:
			fmt.Fprintf(deps.Stderr, "  could not resolve %q: %v\n", e.Item.RawName, e.Error)
		}
	}
}
