package runtime

import (
	"fmt"

	"github.com/odvcencio/cellframe/backend"
)

// DrawStats summarizes one Display.Draw call.
type DrawStats struct {
	Runs       int
	Cells      int
	FullRedraw bool
}

// Display owns the current and previous canvases and redraws only what changed.
type Display struct {
	renderer backend.Renderer
	current  *Canvas
	previous *Canvas
}

// NewDisplay creates a display sized to the renderer.
func NewDisplay(renderer backend.Renderer) *Display {
	w, h := renderer.Size()
	return &Display{
		renderer: renderer,
		current:  NewCanvas(w, h),
	}
}

// Current returns the canvas to draw the next frame into.
func (d *Display) Current() *Canvas {
	return d.current
}

// Clear resets the device and forgets what was shown, forcing a full redraw.
func (d *Display) Clear() {
	d.renderer.Reset()
	w, h := d.current.Size()
	d.previous = NewCanvas(w, h)
}

// Draw sends the difference between the current and previous frame to the
// renderer, then swaps the canvases and clears the new current one.
//
// A missing previous frame or a size change resets the device first.
func (d *Display) Draw() (DrawStats, error) {
	var stats DrawStats
	cursor := d.renderer.Cursor()

	d.renderer.BeginShow()
	if !d.current.SameSize(d.previous) {
		d.Clear()
		stats.FullRedraw = true
	}

	diffs, err := d.current.FindDifferences(d.previous)
	if err != nil {
		d.renderer.EndShow()
		return stats, fmt.Errorf("diff frame: %w", err)
	}
	runWriter, hasRunWriter := d.renderer.(backend.RunWriter)
	for _, diff := range diffs {
		stats.Runs++
		stats.Cells += len(diff.Cells)
		if hasRunWriter {
			d.writeRuns(runWriter, diff)
			continue
		}
		d.renderer.SetCursor(diff.Position)
		forEachStyleRun(diff.Cells, func(_ int, style backend.Style, text string) {
			d.renderer.ShowString(style, text)
		})
	}

	d.renderer.SetCursor(cursor)
	d.renderer.EndShow()

	d.swap()
	return stats, nil
}

func (d *Display) writeRuns(w backend.RunWriter, diff Difference) {
	forEachStyleRun(diff.Cells, func(start int, style backend.Style, text string) {
		w.ShowRun(diff.Position.X+start, diff.Position.Y, style, text)
	})
}

func (d *Display) swap() {
	w, h := d.renderer.Size()
	if pw, ph := d.previous.Size(); pw == w && ph == h {
		d.current, d.previous = d.previous, d.current
		d.current.Clear()
		return
	}
	d.previous = nil
	d.current = NewCanvas(w, h)
}

// forEachStyleRun groups cells into maximal runs of identical style.
func forEachStyleRun(cells []Cell, fn func(start int, style backend.Style, text string)) {
	if len(cells) == 0 {
		return
	}
	start := 0
	runes := make([]rune, 0, len(cells))
	style := cells[0].Style
	for i, cell := range cells {
		if cell.Style != style {
			fn(start, style, string(runes))
			start = i
			style = cell.Style
			runes = runes[:0]
		}
		runes = append(runes, cell.Rune)
	}
	fn(start, style, string(runes))
}
