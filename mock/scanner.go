package mock

import (
	"context"

	"github.com/fwojciec/pantry"
)

var (
	_ pantry.Scanner  = (*Scanner)(nil)
	_ pantry.Resolver = (*Resolver)(nil)
)

// Scanner is a mock implementation of pantry.Scanner.
type Scanner struct {
	ScanFn func(ctx context.Context, image []byte, mimeType string) ([]*pantry.ScannedItem, error)
}

func (s *Scanner) Scan(ctx context.Context, image []byte, mimeType string) ([]*pantry.ScannedItem, error) {
	return s.ScanFn(ctx, image, mimeType)
}

// Resolver is a mock implementation of pantry.Resolver.
type Resolver struct {
	ResolveFn func(ctx context.Context, item *pantry.ScannedItem) (*pantry.ScannedItem, error)
}

func (r *Resolver) Resolve(ctx context.Context, item *pantry.ScannedItem) (*pantry.ScannedItem, error) {
	return r.ResolveFn(ctx, item)
}
