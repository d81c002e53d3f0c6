package mock

import "github.com/fwojciec/pantry"

var _ pantry.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of pantry.Renderer.
type Renderer struct {
	RenderFn func(markdown string) (string, error)
}

func (r *Renderer) Render(markdown string) (string, error) {
	return r.RenderFn(markdown)
}
