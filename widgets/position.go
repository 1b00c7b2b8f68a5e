package widgets

import "github.com/odvcencio/cellframe/runtime"

// Position draws its children at a fixed offset and layer from its own origin.
type Position struct {
	runtime.Container
	X, Y, Layer int
}

// NewPosition creates a positioned group.
func NewPosition(x, y, layer int, children ...runtime.Widget) *Position {
	p := &Position{X: x, Y: y, Layer: layer}
	for _, child := range children {
		p.Add(child)
	}
	return p
}

func (p *Position) AsFocusable() runtime.Focusable { return p }

// Render draws every child in one context offset by X, Y and Layer.
func (p *Position) Render(ctx *runtime.RenderContext) {
	p.Container.Render(ctx.Derive(p.X, p.Y, p.Layer))
}
