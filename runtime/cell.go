package runtime

import (
	"math"

	"github.com/odvcencio/cellframe/backend"
)

// Cell is one screen position: style, character and layer.
// Layer is a priority; only relative comparison matters.
type Cell struct {
	Style backend.Style
	Rune  rune
	Layer int
}

// NewCell creates a cell at layer 0.
func NewCell(style backend.Style, r rune) Cell {
	return Cell{Style: style, Rune: r}
}

// EmptyCell is a fully transparent space at the lowest possible layer.
func EmptyCell() Cell {
	return Cell{Style: backend.TransparentStyle(), Rune: ' ', Layer: math.MinInt}
}

// WithLayer returns a copy of the cell on the given layer.
func (c Cell) WithLayer(layer int) Cell {
	c.Layer = layer
	return c
}

// FlatEquals compares appearance only. Layer never affects what is shown.
func (c Cell) FlatEquals(other Cell) bool {
	return c.Style == other.Style && c.Rune == other.Rune
}
