package mock

import (
	"context"

	"github.com/fwojciec/pantry"
)

var _ pantry.ItemService = (*ItemService)(nil)

// ItemService is a mock implementation of pantry.ItemService.
type ItemService struct {
	MergeItemsFn     func(ctx context.Context, items []*pantry.ScannedItem) (*pantry.MergeResult, error)
	AdjustQuantityFn func(ctx context.Context, id int64, delta int) (*pantry.Item, error)
	FindItemByIDFn   func(ctx context.Context, id int64) (*pantry.Item, error)
	FindItemsFn      func(ctx context.Context, filter pantry.ItemFilter) ([]*pantry.Item, error)
	DeleteItemFn     func(ctx context.Context, id int64) error
}

func (s *ItemService) MergeItems(ctx context.Context, items []*pantry.ScannedItem) (*pantry.MergeResult, error) {
	return s.MergeItemsFn(ctx, items)
}

func (s *ItemService) AdjustQuantity(ctx context.Context, id int64, delta int) (*pantry.Item, error) {
	return s.AdjustQuantityFn(ctx, id, delta)
}

func (s *ItemService) FindItemByID(ctx context.Context, id int64) (*pantry.Item, error) {
	return s.FindItemByIDFn(ctx, id)
}

func (s *ItemService) FindItems(ctx context.Context, filter pantry.ItemFilter) ([]*pantry.Item, error) {
	return s.FindItemsFn(ctx, filter)
}

func (s *ItemService) DeleteItem(ctx context.Context, id int64) error {
	return s.DeleteItemFn(ctx, id)
}
