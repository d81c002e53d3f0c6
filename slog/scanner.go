package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pantry"
)

// Ensure LoggingScanner implements pantry.Scanner.
var _ pantry.Scanner = (*LoggingScanner)(nil)

// LoggingScanner wraps a Scanner with debug logging.
type LoggingScanner struct {
	next   pantry.Scanner
	logger *slog.Logger
}

// NewLoggingScanner creates a new LoggingScanner.
func NewLoggingScanner(next pantry.Scanner, logger *slog.Logger) *LoggingScanner {
	return &LoggingScanner{next: next, logger: logger}
}

// Scan delegates to the wrapped scanner and logs the operation.
func (s *LoggingScanner) Scan(ctx context.Context, image []byte, mimeType string) (items []*pantry.ScannedItem, err error) {
	defer func(begin time.Time) {
		ambiguous := 0
		for _, item := range items {
			if item != nil && item.Ambiguous {
				ambiguous++
			}
		}
		s.logger.Info("receipt scan",
			"bytes", len(image),
			"mime", mimeType,
			"items", len(items),
			"ambiguous", ambiguous,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Scan(ctx, image, mimeType)
}

// Ensure LoggingResolver implements pantry.Resolver.
var _ pantry.Resolver = (*LoggingResolver)(nil)

// LoggingResolver wraps a Resolver with debug logging.
type LoggingResolver struct {
	next   pantry.Resolver
	logger *slog.Logger
}

// NewLoggingResolver creates a new LoggingResolver.
func NewLoggingResolver(next pantry.Resolver, logger *slog.Logger) *LoggingResolver {
	return &LoggingResolver{next: next, logger: logger}
}

// Resolve delegates to the wrapped resolver and logs the operation.
func (r *LoggingResolver) Resolve(ctx context.Context, item *pantry.ScannedItem) (out *pantry.ScannedItem, err error) {
	defer func(begin time.Time) {
		var raw, resolved string
		if item != nil {
			raw = item.RawName
		}
		if out != nil {
			resolved = out.CleanName
		}
		r.logger.Info("resolve",
			"raw", raw,
			"resolved", resolved,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Resolve(ctx, item)
}
