// Package ingest turns a receipt photo into inventory. It coordinates
// duplicate detection, scanning, disambiguation of unclear lines and the
// merge into the pantry.
package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/pantry"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds parallel disambiguation lookups.
const DefaultConcurrency = 4

// Ingester orchestrates receipt ingestion.
type Ingester struct {
	Scanner  pantry.Scanner
	Resolver pantry.Resolver // optional; ambiguous items are merged as scanned when nil
	Items    pantry.ItemService
	Receipts pantry.ReceiptService

	Concurrency int
	Now         func() time.Time
}

// Options controls a single ingestion.
type Options struct {
	// Force merges the receipt even if the same image was ingested before.
	Force bool
}

// Result holds the outcome of an ingestion.
type Result struct {
	Receipt  *pantry.Receipt
	Merge    *pantry.MergeResult
	Scanned  int
	Resolved int
	Failed   int
}

// ProgressEvent reports progress during an ingestion.
type ProgressEvent struct {
	Type  ProgressType
	Item  *pantry.ScannedItem
	Count int
	Error error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressScanned ProgressType = iota
	ProgressResolved
	ProgressResolveFailed
	ProgressMerged
)

// ProgressFunc is a callback for reporting ingestion progress.
type ProgressFunc func(event ProgressEvent)

// Hash returns the content hash used to detect re-scanned receipts.
func Hash(image []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(image))
}

// IngestReceipt scans the image and merges its items into the pantry.
// Returns ECONFLICT if the same image was already ingested and opts.Force is unset.
func (in *Ingester) IngestReceipt(ctx context.Context, image []byte, mimeType string, opts Options, progress ProgressFunc) (*Result, error) {
	if len(image) == 0 {
		return nil, pantry.Errorf(pantry.EINVALID, "receipt image required")
	}
	if progress == nil {
		progress = func(ProgressEvent) {}
	}

	hash := Hash(image)
	existing, err := in.Receipts.FindReceiptByHash(ctx, hash)
	switch {
	case err == nil && !opts.Force:
		return nil, pantry.Errorf(pantry.ECONFLICT, "receipt already scanned on %s", existing.ScannedAt.Format("2006-01-02"))
	case err != nil && pantry.ErrorCode(err) != pantry.ENOTFOUND:
		return nil, err
	}

	items, err := in.Scanner.Scan(ctx, image, mimeType)
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	progress(ProgressEvent{Type: ProgressScanned, Count: len(items)})

	result := &Result{Scanned: len(items)}
	if in.Resolver != nil {
		result.Resolved, result.Failed = in.resolve(ctx, items, progress)
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	// A forced re-scan keeps the original receipt record.
	if existing != nil {
		merge, err := in.Items.MergeItems(ctx, items)
		if err != nil {
			return nil, fmt.Errorf("merge: %w", err)
		}
		result.Merge = merge
		result.Receipt = existing
		progress(ProgressEvent{Type: ProgressMerged, Count: merge.Total()})
		return result, nil
	}

	receipt := &pantry.Receipt{Hash: hash, ItemCount: len(items)}
	if in.Now != nil {
		receipt.ScannedAt = in.Now()
	}
	// The receipt and its items commit together.
	merge, err := in.Receipts.MergeReceipt(ctx, receipt, items)
	if err != nil {
		return nil, fmt.Errorf("merge: %w", err)
	}
	result.Merge = merge
	result.Receipt = receipt
	progress(ProgressEvent{Type: ProgressMerged, Count: merge.Total()})

	return result, nil
}

// resolve replaces ambiguous items in place. Failed lookups keep the
// scanned item and are reported, never aborting the batch.
func (in *Ingester) resolve(ctx context.Context, items []*pantry.ScannedItem, progress ProgressFunc) (resolved, failed int) {
	concurrency := in.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	type outcome struct {
		item *pantry.ScannedItem
		err  error
	}
	outcomes := make([]*outcome, len(items))

	var g errgroup.Group
	g.SetLimit(concurrency)

	for i, item := range items {
		if item == nil || !item.Ambiguous {
			continue
		}
		g.Go(func() error {
			out, err := in.Resolver.Resolve(ctx, item)
			outcomes[i] = &outcome{item: out, err: err}
			return nil
		})
	}
	_ = g.Wait()

	// Report in receipt order so output is deterministic.
	for i, o := range outcomes {
		if o == nil {
			continue
		}
		if o.err != nil || o.item == nil {
			failed++
			progress(ProgressEvent{Type: ProgressResolveFailed, Item: items[i], Error: o.err})
			continue
		}
		resolved++
		items[i] = o.item
		progress(ProgressEvent{Type: ProgressResolved, Item: o.item})
	}

	return resolved, failed
}
