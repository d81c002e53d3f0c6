package pantry

import (
	"context"
	"time"
)

// Receipt records a scanned receipt image so the same photo is not merged twice.
type Receipt struct {
	ID        string    `json:"id"`
	Hash      string    `json:"hash"`
	ItemCount int       `json:"itemCount"`
	ScannedAt time.Time `json:"scannedAt"`
}

// Validate returns an error if the receipt contains invalid fields.
func (r *Receipt) Validate() error {
	if r.Hash == "" {
		return Errorf(EINVALID, "receipt hash required")
	}
	if r.ItemCount < 0 {
		return Errorf(EINVALID, "receipt item count must not be negative")
	}
	return nil
}

// ReceiptService represents a service for managing scanned receipts.
type ReceiptService interface {
	// CreateReceipt records a receipt. Returns ECONFLICT if a receipt with
	// the same hash already exists.
	CreateReceipt(ctx context.Context, receipt *Receipt) error

	// MergeReceipt records the receipt and merges its items atomically.
	// Returns ECONFLICT, with nothing merged, if a receipt with the same
	// hash already exists.
	MergeReceipt(ctx context.Context, receipt *Receipt, items []*ScannedItem) (*MergeResult, error)

	// FindReceiptByHash retrieves a receipt by image hash.
	// Returns ENOTFOUND if no receipt has that hash.
	FindReceiptByHash(ctx context.Context, hash string) (*Receipt, error)

	// FindReceipts retrieves receipts, newest first.
	FindReceipts(ctx context.Context, filter ReceiptFilter) ([]*Receipt, error)
}

// ReceiptFilter represents a filter for FindReceipts.
type ReceiptFilter struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
