package pantry

import "context"

// ScannedItem is a receipt line as understood by the vision model.
// Quantity is free text ("3 bottles", "x2") and is reduced to a count when
// the item is merged into the inventory.
type ScannedItem struct {
	RawName   string `json:"raw_name"`
	CleanName string `json:"clean_name"`
	Category  string `json:"category"`
	Quantity  string `json:"quantity"`
	Unit      string `json:"unit"`
	Ambiguous bool   `json:"ambiguous"`
}

// Scanner extracts items from a photographed receipt.
type Scanner interface {
	// Scan reads the receipt image and returns the purchased items.
	// Returns EINVALID if the image is empty.
	Scan(ctx context.Context, image []byte, mimeType string) ([]*ScannedItem, error)
}

// Resolver disambiguates receipt lines the scanner could not name with confidence.
type Resolver interface {
	// Resolve returns a copy of the item with a clean name and category
	// filled in and Ambiguous cleared. The input is not modified.
	Resolve(ctx context.Context, item *ScannedItem) (*ScannedItem, error)
}
