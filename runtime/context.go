package runtime

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/cellframe/backend"
)

// RenderContext is the coordinate frame handed to a widget for one render call.
//
// Writes use local coordinates; the context translates them to the canvas,
// biases the layer, and records the covered area in its own Size and in the
// Size of every ancestor it was derived from. Containers lay children out by
// deriving a context per child and reading its Size after rendering it.
//
// A RenderContext is only valid during the render pass it was created for.
type RenderContext struct {
	x, y, layer int
	canvas      *Canvas
	cursor      backend.CursorDevice

	parent     *RenderContext
	relX, relY int

	// maxX and maxY are the furthest local coordinates written; -1 means nothing drawn.
	maxX, maxY int
}

// NewRenderContext creates a root context over canvas at the origin.
// cursor may be nil when the caret is never parked.
func NewRenderContext(canvas *Canvas, cursor backend.CursorDevice) *RenderContext {
	return &RenderContext{
		canvas: canvas,
		cursor: cursor,
		maxX:   -1,
		maxY:   -1,
	}
}

// Derive creates a child context offset by (dx, dy) with an additional layer bias.
func (c *RenderContext) Derive(dx, dy, dlayer int) *RenderContext {
	return &RenderContext{
		x:      c.x + dx,
		y:      c.y + dy,
		layer:  c.layer + dlayer,
		canvas: c.canvas,
		cursor: c.cursor,
		parent: c,
		relX:   dx,
		relY:   dy,
		maxX:   -1,
		maxY:   -1,
	}
}

// Size reports the area drawn through this context and its descendants as
// (max x + 1, max y + 1). An untouched context reports (0, 0).
func (c *RenderContext) Size() (w, h int) {
	return c.maxX + 1, c.maxY + 1
}

// Offset returns the absolute position and layer bias of the local origin.
func (c *RenderContext) Offset() (x, y, layer int) {
	return c.x, c.y, c.layer
}

// Get returns the cell under local (x, y).
func (c *RenderContext) Get(x, y int) (Cell, bool) {
	if c.canvas == nil {
		return Cell{}, false
	}
	return c.canvas.Get(c.x+x, c.y+y)
}

// Set writes cell at local (x, y). The cell's layer is raised by the context bias.
// Negative coordinates are a caller bug and panic with ErrOutOfRange.
func (c *RenderContext) Set(x, y int, cell Cell) {
	if x < 0 || y < 0 {
		panic(fmt.Errorf("%w: set (%d, %d)", ErrOutOfRange, x, y))
	}
	c.grow(x, y)
	if c.layer != 0 {
		cell.Layer += c.layer
	}
	if c.canvas != nil {
		c.canvas.TrySet(c.x+x, c.y+y, cell)
	}
}

// PlaceString writes text on one line starting at local (0, 0) on layer 0.
func (c *RenderContext) PlaceString(text string, style backend.Style) {
	c.PlaceLayeredString(text, style, 0)
}

// PlaceLayeredString writes text on one line starting at local (0, 0).
// Zero-width runes are dropped. A double-width rune takes its own cell plus
// a trailing backend.WideTail cell, so canvas columns match device columns.
func (c *RenderContext) PlaceLayeredString(text string, style backend.Style, layer int) {
	x := 0
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		c.Set(x, 0, Cell{Style: style, Rune: r, Layer: layer})
		x++
		if w > 1 {
			c.Set(x, 0, Cell{Style: style, Rune: backend.WideTail, Layer: layer})
			x++
		}
	}
}

// Fill writes cell over a w by h rectangle starting at the local origin.
func (c *RenderContext) Fill(w, h int, cell Cell) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c.Set(x, y, cell)
		}
	}
}

// CursorPosition returns the device cursor in local coordinates.
func (c *RenderContext) CursorPosition() backend.Point {
	if c.cursor == nil {
		return backend.Point{}
	}
	p := c.cursor.Cursor()
	return backend.Point{X: p.X - c.x, Y: p.Y - c.y}
}

// SetCursorPosition parks the device cursor at local p.
func (c *RenderContext) SetCursorPosition(p backend.Point) {
	if c.cursor == nil {
		return
	}
	c.cursor.SetCursor(backend.Point{X: c.x + p.X, Y: c.y + p.Y})
}

func (c *RenderContext) grow(x, y int) {
	for ctx := c; ctx != nil; ctx = ctx.parent {
		if x > ctx.maxX {
			ctx.maxX = x
		}
		if y > ctx.maxY {
			ctx.maxY = y
		}
		x += ctx.relX
		y += ctx.relY
	}
}
