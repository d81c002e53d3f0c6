package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/pantry"
	"github.com/google/uuid"
	"github.com/ncruces/go-sqlite3"
)

// Compile-time interface verification.
var _ pantry.ReceiptService = (*ReceiptService)(nil)

// ReceiptService implements pantry.ReceiptService using SQLite.
type ReceiptService struct {
	db *DB
}

// NewReceiptService creates a new ReceiptService.
func NewReceiptService(db *DB) *ReceiptService {
	return &ReceiptService{db: db}
}

// CreateReceipt records a receipt with a generated ID.
func (s *ReceiptService) CreateReceipt(ctx context.Context, receipt *pantry.Receipt) error {
	if err := receipt.Validate(); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := createReceipt(ctx, tx, receipt); err != nil {
		return err
	}

	return tx.Commit()
}

// MergeReceipt records the receipt and merges its items in one transaction.
func (s *ReceiptService) MergeReceipt(ctx context.Context, receipt *pantry.Receipt, items []*pantry.ScannedItem) (*pantry.MergeResult, error) {
	if err := receipt.Validate(); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	// The receipt goes first so a duplicate fails before any item is touched.
	if err := createReceipt(ctx, tx, receipt); err != nil {
		return nil, err
	}

	result, err := mergeItems(ctx, tx, items)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return result, nil
}

func createReceipt(ctx context.Context, tx *sql.Tx, receipt *pantry.Receipt) error {
	var n int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM receipts WHERE hash = ?", receipt.Hash).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return pantry.Errorf(pantry.ECONFLICT, "receipt already scanned")
	}

	receipt.ID = uuid.New().String()
	if receipt.ScannedAt.IsZero() {
		receipt.ScannedAt = time.Now().UTC()
	}
	receipt.ScannedAt = receipt.ScannedAt.UTC().Truncate(time.Second)

	_, err := tx.ExecContext(ctx, `
		INSERT INTO receipts (id, hash, item_count, scanned_at)
		VALUES (?, ?, ?, ?)
	`, receipt.ID, receipt.Hash, receipt.ItemCount, formatTime(receipt.ScannedAt))
	// Another process may have recorded the same hash since the check.
	if errors.Is(err, sqlite3.CONSTRAINT_UNIQUE) {
		return pantry.Errorf(pantry.ECONFLICT, "receipt already scanned")
	}
	return err
}

// FindReceiptByHash retrieves a receipt by image hash.
func (s *ReceiptService) FindReceiptByHash(ctx context.Context, hash string) (*pantry.Receipt, error) {
	receipt, err := scanReceipt(s.db.QueryRowContext(ctx, `
		SELECT id, hash, item_count, scanned_at
		FROM receipts
		WHERE hash = ?
	`, hash))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pantry.Errorf(pantry.ENOTFOUND, "receipt not found")
	}
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

// FindReceipts retrieves receipts, newest first.
func (s *ReceiptService) FindReceipts(ctx context.Context, filter pantry.ReceiptFilter) ([]*pantry.Receipt, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, hash, item_count, scanned_at FROM receipts ORDER BY scanned_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var receipts []*pantry.Receipt
	for rows.Next() {
		receipt, err := scanReceipt(rows)
		if err != nil {
			return nil, err
		}
		receipts = append(receipts, receipt)
	}

	return receipts, rows.Err()
}

func scanReceipt(row rowScanner) (*pantry.Receipt, error) {
	var receipt pantry.Receipt
	var scannedAt string

	if err := row.Scan(&receipt.ID, &receipt.Hash, &receipt.ItemCount, &scannedAt); err != nil {
		return nil, err
	}

	var err error
	if receipt.ScannedAt, err = parseTime(scannedAt, "scanned_at"); err != nil {
		return nil, err
	}

	return &receipt, nil
}
