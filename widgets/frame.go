package widgets

import (
	"github.com/odvcencio/cellframe/backend"
	"github.com/odvcencio/cellframe/runtime"
)

// Frame draws a double-line border and a background around its children.
// Children render one layer above the frame's own context so the background
// never covers them.
type Frame struct {
	runtime.Container
	style      backend.Style
	background backend.Color
}

// NewFrame creates a frame with the decoration style and default background.
func NewFrame(children ...runtime.Widget) *Frame {
	f := &Frame{style: backend.StyleDecoration, background: backend.ColorDefault}
	for _, child := range children {
		f.Add(child)
	}
	return f
}

// SetStyle sets the border style.
func (f *Frame) SetStyle(style backend.Style) {
	f.style = style
}

// SetBackground sets the fill color inside and under the border.
func (f *Frame) SetBackground(c backend.Color) {
	f.background = c
}

func (f *Frame) AsFocusable() runtime.Focusable { return f }

// Render draws the children inset by one cell, then the border around the
// area they used. Nothing is drawn when the children draw nothing.
func (f *Frame) Render(ctx *runtime.RenderContext) {
	inner := ctx.Derive(1, 1, 1)
	f.Container.Render(inner)
	w, h := inner.Size()
	if w == 0 && h == 0 {
		return
	}
	right, bottom := w+1, h+1

	border := ctx.Derive(0, 0, 1)
	edge := func(x, y int, r rune) {
		border.Set(x, y, runtime.NewCell(f.style, r))
	}
	for x := 1; x <= w; x++ {
		edge(x, 0, '═')
		edge(x, bottom, '═')
	}
	for y := 1; y <= h; y++ {
		edge(0, y, '║')
		edge(right, y, '║')
	}
	edge(0, 0, '╔')
	edge(right, 0, '╗')
	edge(0, bottom, '╚')
	edge(right, bottom, '╝')

	ctx.Fill(right+1, bottom+1, runtime.NewCell(backend.NewStyle(f.background, f.background), ' '))
}
