// Package glamour renders recipe cards for the terminal.
package glamour

import (
	"github.com/charmbracelet/glamour"
	"github.com/fwojciec/pantry"
)

// DefaultWordWrap is the column at which rendered text wraps.
const DefaultWordWrap = 80

// Ensure Renderer implements pantry.Renderer at compile time.
var _ pantry.Renderer = (*Renderer)(nil)

// Renderer renders Markdown with ANSI styling.
type Renderer struct {
	term *glamour.TermRenderer
}

// NewRenderer creates a Renderer. An empty style picks one from the
// terminal background; "notty" disables styling.
func NewRenderer(style string, width int) (*Renderer, error) {
	if width <= 0 {
		width = DefaultWordWrap
	}

	styleOpt := glamour.WithAutoStyle()
	if style != "" {
		styleOpt = glamour.WithStylePath(style)
	}

	term, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return nil, err
	}
	return &Renderer{term: term}, nil
}

// Render returns the styled form of markdown.
func (r *Renderer) Render(markdown string) (string, error) {
	return r.term.Render(markdown)
}
