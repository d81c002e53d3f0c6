package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/fwojciec/pantry"
)

// Compile-time interface verification.
var _ pantry.ItemService = (*ItemService)(nil)

// ItemService implements pantry.ItemService using SQLite.
type ItemService struct {
	db *DB
}

// NewItemService creates a new ItemService.
func NewItemService(db *DB) *ItemService {
	return &ItemService{db: db}
}

const itemColumns = "id, item_name, category, quantity, unit, last_updated"

// MergeItems upserts scanned items by name inside a single transaction.
func (s *ItemService) MergeItems(ctx context.Context, items []*pantry.ScannedItem) (*pantry.MergeResult, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	result, err := mergeItems(ctx, tx, items)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return result, nil
}

// mergeItems upserts items within tx. The caller owns commit and rollback,
// so any error leaves the whole batch unapplied.
func mergeItems(ctx context.Context, tx *sql.Tx, items []*pantry.ScannedItem) (*pantry.MergeResult, error) {
	now := formatTime(time.Now())
	result := &pantry.MergeResult{}

	for _, scanned := range items {
		if scanned == nil {
			continue
		}
		item := pantry.NewItemFromScan(scanned)
		if err := item.Validate(); err != nil {
			return nil, err
		}

		var id int64
		var quantity int
		err := tx.QueryRowContext(ctx, "SELECT id, quantity FROM pantry WHERE item_name = ?", item.Name).
			Scan(&id, &quantity)

		switch {
		case errors.Is(err, sql.ErrNoRows):
			res, err := tx.ExecContext(ctx, `
				INSERT INTO pantry (item_name, category, quantity, unit, last_updated)
				VALUES (?, ?, ?, ?, ?)
			`, item.Name, item.Category, item.Quantity, item.Unit, now)
			if err != nil {
				return nil, err
			}
			if id, err = res.LastInsertId(); err != nil {
				return nil, err
			}
			result.Inserted++
			result.Outcomes = append(result.Outcomes, pantry.MergeOutcome{
				ItemID:  id,
				Name:    item.Name,
				After:   item.Quantity,
				Created: true,
			})

		case err != nil:
			return nil, err

		default:
			total, ok := addQuantity(quantity, item.Quantity)
			if !ok {
				return nil, pantry.Errorf(pantry.EINVALID, "quantity of %s would exceed %d", item.Name, math.MaxInt)
			}
			if _, err := tx.ExecContext(ctx,
				"UPDATE pantry SET quantity = ?, last_updated = ? WHERE id = ?",
				total, now, id); err != nil {
				return nil, err
			}
			result.Updated++
			result.Outcomes = append(result.Outcomes, pantry.MergeOutcome{
				ItemID: id,
				Name:   item.Name,
				Before: quantity,
				After:  total,
			})
		}
	}

	return result, nil
}

// addQuantity returns q+delta, or false if the sum overflows an int.
func addQuantity(q, delta int) (int, bool) {
	if (delta > 0 && q > math.MaxInt-delta) || (delta < 0 && q < math.MinInt-delta) {
		return 0, false
	}
	return q + delta, true
}

// AdjustQuantity adds delta to an item's quantity, deleting it at zero.
func (s *ItemService) AdjustQuantity(ctx context.Context, id int64, delta int) (*pantry.Item, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	item, err := scanItem(tx.QueryRowContext(ctx, "SELECT "+itemColumns+" FROM pantry WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pantry.Errorf(pantry.ENOTFOUND, "item %d not found", id)
	}
	if err != nil {
		return nil, err
	}

	total, ok := addQuantity(item.Quantity, delta)
	if !ok {
		return nil, pantry.Errorf(pantry.EINVALID, "quantity of %s would exceed %d", item.Name, math.MaxInt)
	}
	item.Quantity = total
	if item.Quantity <= 0 {
		if _, err := tx.ExecContext(ctx, "DELETE FROM pantry WHERE id = ?", id); err != nil {
			return nil, err
		}
		return nil, tx.Commit()
	}

	item.LastUpdated = time.Now().UTC().Truncate(time.Second)
	if _, err := tx.ExecContext(ctx,
		"UPDATE pantry SET quantity = ?, last_updated = ? WHERE id = ?",
		item.Quantity, formatTime(item.LastUpdated), id); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return item, nil
}

// FindItemByID retrieves an item by ID.
func (s *ItemService) FindItemByID(ctx context.Context, id int64) (*pantry.Item, error) {
	item, err := scanItem(s.db.QueryRowContext(ctx, "SELECT "+itemColumns+" FROM pantry WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pantry.Errorf(pantry.ENOTFOUND, "item %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

// FindItems retrieves items matching the filter, ordered by category and name.
func (s *ItemService) FindItems(ctx context.Context, filter pantry.ItemFilter) ([]*pantry.Item, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + itemColumns + " FROM pantry WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND item_name = ?")
		args = append(args, *filter.Name)
	}
	if filter.Category != nil {
		query.WriteString(" AND category = ?")
		args = append(args, *filter.Category)
	}

	query.WriteString(" ORDER BY category, item_name")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*pantry.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// DeleteItem permanently removes an item.
func (s *ItemService) DeleteItem(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM pantry WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return pantry.Errorf(pantry.ENOTFOUND, "item %d not found", id)
	}

	return nil
}

func scanItem(row rowScanner) (*pantry.Item, error) {
	var item pantry.Item
	var lastUpdated string

	if err := row.Scan(&item.ID, &item.Name, &item.Category, &item.Quantity, &item.Unit, &lastUpdated); err != nil {
		return nil, err
	}

	var err error
	if item.LastUpdated, err = parseTime(lastUpdated, "last_updated"); err != nil {
		return nil, err
	}

	return &item, nil
}
