package widgets

import (
	"strconv"
	"testing"

	"github.com/odvcencio/cellframe/runtime"
	"github.com/odvcencio/cellframe/terminal"
)

func TestStack_VerticalLayout(t *testing.T) {
	s := NewStack(Vertical, NewLabel("a"), NewLabel("bb"), NewLabel("c"))
	s.SetMargin(1)
	got := rows(draw(s, 4, 6))
	want := []string{"a", "", "bb", "", "c", ""}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestStack_HorizontalLayout(t *testing.T) {
	s := NewStack(Horizontal, NewLabel("a"), NewLabel("bb"), NewLabel("c"))
	s.SetMargin(1)
	if got := row(draw(s, 10, 1), 0); got != "a bb c" {
		t.Fatalf("expected %q, got %q", "a bb c", got)
	}
}

func buttons(n int) []runtime.Widget {
	out := make([]runtime.Widget, n)
	for i := range out {
		out[i] = NewButton(strconv.Itoa(i))
	}
	return out
}

func TestStack_NavigationDoesNotWrap(t *testing.T) {
	s := NewStack(Vertical, buttons(3)...)
	s.FocusChange(true)
	moves := 0
	s.OnMove(func(*Stack) { moves++ })

	steps := []struct {
		ev      terminal.KeyEvent
		handled bool
		pos     int
	}{
		{terminal.KeyPress(terminal.KeyTab), true, 1},
		{terminal.KeyPress(terminal.KeyDown), true, 2},
		{terminal.KeyPress(terminal.KeyDown), false, 2},
		{terminal.KeyPress(terminal.KeyTab, terminal.ModShift), true, 1},
		{terminal.KeyPress(terminal.KeyUp), true, 0},
		{terminal.KeyPress(terminal.KeyUp), false, 0},
		{terminal.KeyPress(terminal.KeyLeft), false, 0},
		{terminal.KeyPress(terminal.KeyEnd), true, 2},
		{terminal.KeyPress(terminal.KeyPageUp), true, 0},
	}
	for i, step := range steps {
		if got := s.BubbleDown(step.ev); got != step.handled {
			t.Fatalf("step %d (%s): expected handled=%v, got %v", i, step.ev, step.handled, got)
		}
		if s.Position() != step.pos {
			t.Fatalf("step %d (%s): expected position %d, got %d", i, step.ev, step.pos, s.Position())
		}
	}
	if moves != 6 {
		t.Fatalf("expected 6 moves, got %d", moves)
	}
	if !s.Child(0).AsFocusable().(*Button).IsFocused() {
		t.Fatalf("expected first button focused")
	}
	if s.Child(2).AsFocusable().(*Button).IsFocused() {
		t.Fatalf("expected last button unfocused")
	}
}

func TestStack_HorizontalArrows(t *testing.T) {
	s := NewStack(Horizontal, buttons(2)...)
	if s.BubbleDown(terminal.KeyPress(terminal.KeyDown)) {
		t.Fatalf("expected Down declined by a horizontal stack")
	}
	if !s.BubbleDown(terminal.KeyPress(terminal.KeyRight)) || s.Position() != 1 {
		t.Fatalf("expected Right to move to 1, got %d", s.Position())
	}
}

func TestStack_SkipsUnfocusable(t *testing.T) {
	s := NewStack(Vertical, NewLabel("title"), NewButton("a"), NewLabel("-"), NewButton("b"))
	if s.FocusedIndex() != 1 {
		t.Fatalf("expected first focusable child focused, got %d", s.FocusedIndex())
	}
	s.BubbleDown(terminal.KeyPress(terminal.KeyTab))
	if s.FocusedIndex() != 3 {
		t.Fatalf("expected Tab to skip the label, got %d", s.FocusedIndex())
	}
}

func TestStack_EnterMovesPastInputs(t *testing.T) {
	first, second := NewInput(), NewInput()
	s := NewStack(Vertical, first, second)
	if !s.BubbleDown(terminal.KeyPress(terminal.KeyEnter)) {
		t.Fatalf("expected Enter handled")
	}
	if s.Focused() != second {
		t.Fatalf("expected second input focused")
	}
	typeText(s, "x")
	if second.Text() != "x" || first.Text() != "" {
		t.Fatalf("expected typing to reach the focused input")
	}
}

func TestStack_MaxVisibleFollowsFocus(t *testing.T) {
	s := NewStack(Vertical, buttons(5)...)
	s.SetMaxVisible(3)

	check := func(want ...string) {
		t.Helper()
		got := rows(draw(s, 2, 3))
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("expected %v, got %v", want, got)
			}
		}
	}
	check("0", "1", "2")
	_ = s.FocusIndex(2)
	check("1", "2", "3")
	s.BubbleDown(terminal.KeyPress(terminal.KeyEnd))
	check("2", "3", "4")
}
