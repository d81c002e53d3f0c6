package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pantry"
)

// Ensure LoggingChef implements pantry.Chef.
var _ pantry.Chef = (*LoggingChef)(nil)

// LoggingChef wraps a Chef with debug logging.
type LoggingChef struct {
	next   pantry.Chef
	logger *slog.Logger
}

// NewLoggingChef creates a new LoggingChef.
func NewLoggingChef(next pantry.Chef, logger *slog.Logger) *LoggingChef {
	return &LoggingChef{next: next, logger: logger}
}

// SuggestRecipes delegates to the wrapped chef and logs the operation.
func (c *LoggingChef) SuggestRecipes(ctx context.Context, prefs pantry.Preferences) (recipes []*pantry.Recipe, err error) {
	defer func(begin time.Time) {
		c.logger.Info("recipe suggestion",
			"pace", string(prefs.Pace),
			"occasion", prefs.Occasion(),
			"people", prefs.People,
			"count", len(recipes),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.SuggestRecipes(ctx, prefs)
}
