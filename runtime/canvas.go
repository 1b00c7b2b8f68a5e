package runtime

// Canvas rendering model:
//
// Widgets draw into a Canvas through RenderContext. A Canvas composites every
// write against what is already there using layers and transparency, so draw
// order only matters within one layer. Display keeps two canvases and sends
// the renderer only the runs that differ between them.

import (
	"fmt"

	"github.com/odvcencio/cellframe/backend"
)

// cursorMoveCost is roughly how many characters it costs to reposition the
// device cursor. Unchanged gaps up to this length are redrawn through.
const cursorMoveCost = 8

// Canvas is a fixed-size, fully populated grid of cells.
type Canvas struct {
	cells  []Cell
	width  int
	height int
}

// NewCanvas creates a cleared canvas with the given dimensions.
func NewCanvas(w, h int) *Canvas {
	w = max(0, w)
	h = max(0, h)
	c := &Canvas{
		cells:  make([]Cell, w*h),
		width:  w,
		height: h,
	}
	c.Clear()
	return c
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (w, h int) {
	return c.width, c.height
}

// SameSize reports whether other has identical dimensions.
func (c *Canvas) SameSize(other *Canvas) bool {
	return other != nil && c.width == other.width && c.height == other.height
}

// Clear resets every cell to EmptyCell.
func (c *Canvas) Clear() {
	c.Fill(EmptyCell())
}

// Fill sets every cell to filler, bypassing compositing.
func (c *Canvas) Fill(filler Cell) {
	for i := range c.cells {
		c.cells[i] = filler
	}
}

// Get returns the cell at (x, y). ok is false when out of bounds.
func (c *Canvas) Get(x, y int) (cell Cell, ok bool) {
	if !c.inBounds(x, y) {
		return Cell{}, false
	}
	return c.cells[y*c.width+x], true
}

// TrySet composites cell onto (x, y).
// It returns false only when the coordinates are out of bounds; writes that
// are dropped by layering or transparency still report true.
func (c *Canvas) TrySet(x, y int, cell Cell) bool {
	if !c.inBounds(x, y) {
		return false
	}
	fg := cell.Style.Foreground == backend.ColorTransparent
	bg := cell.Style.Background == backend.ColorTransparent
	if fg && bg {
		return true
	}
	idx := y*c.width + x
	old := c.cells[idx]
	if old.Layer > cell.Layer {
		return true
	}
	switch {
	case fg:
		c.cells[idx] = Cell{
			Style: backend.Style{Foreground: old.Style.Foreground, Background: cell.Style.Background},
			Rune:  cell.Rune,
			Layer: cell.Layer,
		}
	case bg:
		c.cells[idx] = Cell{
			Style: backend.Style{Foreground: cell.Style.Foreground, Background: old.Style.Background},
			Rune:  cell.Rune,
			Layer: cell.Layer,
		}
	default:
		c.cells[idx] = cell
	}
	return true
}

// Apply writes a difference run verbatim, without compositing.
// Cells past the right edge are dropped.
func (c *Canvas) Apply(d Difference) {
	y := d.Position.Y
	if y < 0 || y >= c.height {
		return
	}
	for i, cell := range d.Cells {
		x := d.Position.X + i
		if x < 0 {
			continue
		}
		if x >= c.width {
			break
		}
		c.cells[y*c.width+x] = cell
	}
}

// Difference is one contiguous horizontal run that changed between two canvases.
type Difference struct {
	Position backend.Point
	Cells    []Cell
}

// FindDifferences returns the runs where c differs from other, in row-major order.
//
// Cells are compared with FlatEquals. A run stays open across short unchanged
// gaps and is closed once more than cursorMoveCost consecutive cells match,
// with the unchanged tail trimmed off.
func (c *Canvas) FindDifferences(other *Canvas) ([]Difference, error) {
	if other == nil || !c.SameSize(other) {
		ow, oh := 0, 0
		if other != nil {
			ow, oh = other.Size()
		}
		return nil, fmt.Errorf("%w: %dx%d vs %dx%d", ErrSizeMismatch, c.width, c.height, ow, oh)
	}
	if c == other {
		return nil, nil
	}

	var diffs []Difference
	for y := 0; y < c.height; y++ {
		row := y * c.width
		gap := 0
		open := false
		var run Difference
		for x := 0; x < c.width; x++ {
			cell := c.cells[row+x]
			if cell.FlatEquals(other.cells[row+x]) {
				gap++
				if open && gap > cursorMoveCost {
					run.Cells = run.Cells[:len(run.Cells)-(gap-1)]
					diffs = append(diffs, run)
					open = false
				}
			} else {
				gap = 0
				if !open {
					run = Difference{Position: backend.Point{X: x, Y: y}}
					open = true
				}
			}
			if open {
				run.Cells = append(run.Cells, cell)
			}
		}
		if open {
			run.Cells = run.Cells[:len(run.Cells)-gap]
			diffs = append(diffs, run)
		}
	}
	return diffs, nil
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}
