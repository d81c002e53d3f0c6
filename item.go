package pantry

import (
	"context"
	"time"
)

// DefaultCategory is assigned to items the scanner could not categorize.
const DefaultCategory = "Other"

// Item represents a row of the pantry inventory.
type Item struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Quantity    int       `json:"quantity"`
	Unit        string    `json:"unit"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// Validate returns an error if the item contains invalid fields.
func (i *Item) Validate() error {
	if i.Name == "" {
		return Errorf(EINVALID, "item name required")
	}
	if i.Quantity < 1 {
		return Errorf(EINVALID, "item quantity must be positive")
	}
	return nil
}

// NewItemFromScan converts a scanned receipt line into an inventory item.
// The clean name wins over the raw receipt text; the quantity is reduced to
// a count with CleanQuantity.
func NewItemFromScan(s *ScannedItem) *Item {
	name := NormalizeName(s.CleanName)
	if name == "" {
		name = NormalizeName(s.RawName)
	}
	if name == "" {
		name = "Unknown"
	}

	category := NormalizeName(s.Category)
	if category == "" {
		category = DefaultCategory
	}

	return &Item{
		Name:     name,
		Category: category,
		Quantity: CleanQuantity(s.Quantity),
		Unit:     s.Unit,
	}
}

// ItemService represents a service for managing the pantry inventory.
type ItemService interface {
	// MergeItems upserts scanned items by name. Items whose name already
	// exists have their quantity increased; new names are inserted.
	// The batch is applied atomically.
	MergeItems(ctx context.Context, items []*ScannedItem) (*MergeResult, error)

	// AdjustQuantity adds delta to an item's quantity. When the result drops
	// to zero or below, the item is removed and a nil item is returned.
	// Returns ENOTFOUND if the item does not exist.
	AdjustQuantity(ctx context.Context, id int64, delta int) (*Item, error)

	// FindItemByID retrieves an item by ID.
	// Returns ENOTFOUND if the item does not exist.
	FindItemByID(ctx context.Context, id int64) (*Item, error)

	// FindItems retrieves items matching the filter, ordered by category
	// and name.
	FindItems(ctx context.Context, filter ItemFilter) ([]*Item, error)

	// DeleteItem permanently removes an item.
	// Returns ENOTFOUND if the item does not exist.
	DeleteItem(ctx context.Context, id int64) error
}

// ItemFilter represents a filter for FindItems.
type ItemFilter struct {
	ID       *int64  `json:"id"`
	Name     *string `json:"name"`
	Category *string `json:"category"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// MergeResult summarizes a MergeItems call.
type MergeResult struct {
	Inserted int            `json:"inserted"`
	Updated  int            `json:"updated"`
	Outcomes []MergeOutcome `json:"outcomes"`
}

// Total returns the number of scanned items applied to the inventory.
func (r *MergeResult) Total() int {
	return r.Inserted + r.Updated
}

// MergeOutcome describes what happened to a single merged item.
type MergeOutcome struct {
	ItemID  int64  `json:"itemId"`
	Name    string `json:"name"`
	Before  int    `json:"before"`
	After   int    `json:"after"`
	Created bool   `json:"created"`
}
