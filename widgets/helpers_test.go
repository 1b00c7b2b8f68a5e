package widgets

import (
	"strings"

	"github.com/odvcencio/cellframe/backend"
	"github.com/odvcencio/cellframe/runtime"
	"github.com/odvcencio/cellframe/terminal"
)

type cursorStub struct {
	at backend.Point
}

func (c *cursorStub) Cursor() backend.Point     { return c.at }
func (c *cursorStub) SetCursor(p backend.Point) { c.at = p }

// draw renders w onto a fresh canvas.
func draw(w runtime.Widget, width, height int) *runtime.Canvas {
	c := runtime.NewCanvas(width, height)
	w.Render(runtime.NewRenderContext(c, nil))
	return c
}

// rows returns each canvas row with trailing spaces trimmed.
func rows(c *runtime.Canvas) []string {
	w, h := c.Size()
	out := make([]string, h)
	for y := 0; y < h; y++ {
		var b strings.Builder
		for x := 0; x < w; x++ {
			cell, _ := c.Get(x, y)
			b.WriteRune(cell.Rune)
		}
		out[y] = strings.TrimRight(b.String(), " ")
	}
	return out
}

func row(c *runtime.Canvas, y int) string {
	return rows(c)[y]
}

func press(f runtime.Focusable, events ...terminal.KeyEvent) []bool {
	out := make([]bool, len(events))
	for i, ev := range events {
		out[i] = f.BubbleDown(ev)
	}
	return out
}

func typeText(f runtime.Focusable, text string) {
	for _, r := range text {
		f.BubbleDown(terminal.RunePress(r))
	}
}
