package mock

import (
	"context"

	"github.com/fwojciec/pantry"
)

var _ pantry.ReceiptService = (*ReceiptService)(nil)

// ReceiptService is a mock implementation of pantry.ReceiptService.
type ReceiptService struct {
	CreateReceiptFn     func(ctx context.Context, receipt *pantry.Receipt) error
	MergeReceiptFn      func(ctx context.Context, receipt *pantry.Receipt, items []*pantry.ScannedItem) (*pantry.MergeResult, error)
	FindReceiptByHashFn func(ctx context.Context, hash string) (*pantry.Receipt, error)
	FindReceiptsFn      func(ctx context.Context, filter pantry.ReceiptFilter) ([]*pantry.Receipt, error)
}

func (s *ReceiptService) CreateReceipt(ctx context.Context, receipt *pantry.Receipt) error {
	return s.CreateReceiptFn(ctx, receipt)
}

func (s *ReceiptService) MergeReceipt(ctx context.Context, receipt *pantry.Receipt, items []*pantry.ScannedItem) (*pantry.MergeResult, error) {
	return s.MergeReceiptFn(ctx, receipt, items)
}

func (s *ReceiptService) FindReceiptByHash(ctx context.Context, hash string) (*pantry.Receipt, error) {
	return s.FindReceiptByHashFn(ctx, hash)
}

func (s *ReceiptService) FindReceipts(ctx context.Context, filter pantry.ReceiptFilter) ([]*pantry.Receipt, error) {
	return s.FindReceiptsFn(ctx, filter)
}
