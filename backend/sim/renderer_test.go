package sim

import (
	"testing"

	"github.com/odvcencio/cellframe/backend"
	"github.com/odvcencio/cellframe/terminal"
)

func TestRenderer_ShowStringAdvancesCursor(t *testing.T) {
	r := New(5, 2)
	r.SetCursor(backend.Point{X: 3, Y: 0})
	r.ShowString(backend.DefaultStyle(), "abcd")

	if got := r.Line(0); got != "   ab" {
		t.Fatalf("expected wrapped first row, got %q", got)
	}
	if got := r.Line(1); got != "cd   " {
		t.Fatalf("expected wrapped second row, got %q", got)
	}
	if c := r.Cursor(); c != (backend.Point{X: 2, Y: 1}) {
		t.Fatalf("unexpected cursor %+v", c)
	}
}

func TestRenderer_WideTailHiddenFromText(t *testing.T) {
	r := New(4, 1)
	r.ShowString(backend.DefaultStyle(), "日"+string(backend.WideTail)+"x")

	if got := r.Line(0); got != "日x " {
		t.Fatalf("expected tail column hidden, got %q", got)
	}
	if c := r.Cursor(); c != (backend.Point{X: 3, Y: 0}) {
		t.Fatalf("expected cursor at column 3, got %+v", c)
	}
}

func TestRenderer_TransparentFallbacks(t *testing.T) {
	r := New(3, 1)
	r.ShowString(backend.NewStyle(backend.ColorTransparent, backend.ColorRed), "xyz")
	if got := r.Line(0); got != "   " {
		t.Fatalf("expected transparent foreground to render spaces, got %q", got)
	}

	r.SetCursor(backend.Point{})
	r.ShowString(backend.NewStyle(backend.ColorRed, backend.ColorTransparent), "q")
	style, _ := r.StyleAt(0, 0)
	if style.Background != backend.ColorDefault {
		t.Fatalf("expected transparent background to fall back to default, got %v", style.Background)
	}
}

func TestRenderer_InputDrains(t *testing.T) {
	r := New(1, 1)
	r.PushKeys(terminal.RunePress('a'), terminal.KeyPress(terminal.KeyEnter))
	r.PushClicks(backend.Point{X: 1, Y: 2})

	if keys := r.Keys(); len(keys) != 2 || keys[0].Rune != 'a' {
		t.Fatalf("unexpected keys %v", keys)
	}
	if keys := r.Keys(); len(keys) != 0 {
		t.Fatalf("expected keys drained, got %v", keys)
	}
	if clicks := r.Clicks(); len(clicks) != 1 {
		t.Fatalf("unexpected clicks %v", clicks)
	}
}

func TestRenderer_Reset(t *testing.T) {
	r := New(2, 1)
	r.ShowString(backend.DefaultStyle(), "hi")
	r.Reset()
	if got := r.Text(); got != "" {
		t.Fatalf("expected blank grid, got %q", got)
	}
	if r.Count(OpReset) != 1 {
		t.Fatalf("expected one reset recorded")
	}
}
