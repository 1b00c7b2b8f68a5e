package widgets

import (
	"testing"

	"github.com/odvcencio/cellframe/backend"
	"github.com/odvcencio/cellframe/runtime"
	"github.com/odvcencio/cellframe/terminal"
)

func TestButton_ActivationKeys(t *testing.T) {
	b := NewButton("ok")
	clicks := 0
	b.OnClick(func(*Button) { clicks++ })

	got := press(b,
		terminal.KeyPress(terminal.KeyEnter),
		terminal.RunePress(' '),
		terminal.RunePress('x'),
		terminal.KeyPress(terminal.KeyTab),
	)
	want := []bool{true, true, false, false}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("key %d: expected handled=%v, got %v", i, want[i], got[i])
		}
	}
	if clicks != 2 {
		t.Fatalf("expected 2 clicks, got %d", clicks)
	}
}

func TestButton_FocusStyleAndCursor(t *testing.T) {
	b := NewButton("go")
	canvas := runtime.NewCanvas(10, 4)
	cursor := &cursorStub{at: backend.Point{X: 9, Y: 3}}

	b.Render(runtime.NewRenderContext(canvas, cursor).Derive(3, 2, 0))
	cell, _ := canvas.Get(3, 2)
	if cell.Style != backend.StyleInactive {
		t.Fatalf("expected inactive style, got %v", cell.Style)
	}
	if cursor.at != (backend.Point{X: 9, Y: 3}) {
		t.Fatalf("unfocused button moved the cursor to %v", cursor.at)
	}

	b.FocusChange(true)
	b.Render(runtime.NewRenderContext(canvas, cursor).Derive(3, 2, 0))
	cell, _ = canvas.Get(3, 2)
	if cell.Style != backend.StyleActive || cell.Rune != 'g' {
		t.Fatalf("expected active g, got %v %q", cell.Style, cell.Rune)
	}
	if cursor.at != (backend.Point{X: 3, Y: 2}) {
		t.Fatalf("expected cursor parked at (3,2), got %v", cursor.at)
	}
}
