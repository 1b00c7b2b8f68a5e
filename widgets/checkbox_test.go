package widgets

import (
	"testing"

	"github.com/odvcencio/cellframe/backend"
	"github.com/odvcencio/cellframe/runtime"
	"github.com/odvcencio/cellframe/terminal"
)

func TestCheckbox_ToggleOnActivation(t *testing.T) {
	c := NewCheckbox("wifi", false)
	var toggles []bool
	clicks := 0
	c.OnToggle(func(checked bool) { toggles = append(toggles, checked) })
	c.OnClick(func(*Button) { clicks++ })

	if got := row(draw(c, 10, 1), 0); got != "[ ] wifi" {
		t.Fatalf("expected unchecked marker, got %q", got)
	}
	handled := press(c, terminal.RunePress(' '), terminal.RunePress('x'))
	if !handled[0] || handled[1] {
		t.Fatalf("expected only space handled, got %v", handled)
	}
	if !c.Checked() || len(toggles) != 1 || !toggles[0] || clicks != 1 {
		t.Fatalf("expected one toggle to checked, got checked=%v toggles=%v clicks=%d", c.Checked(), toggles, clicks)
	}
	if got := row(draw(c, 10, 1), 0); got != "[x] wifi" {
		t.Fatalf("expected checked marker, got %q", got)
	}

	c.SetMarker('v')
	if got := row(draw(c, 10, 1), 0); got != "[v] wifi" {
		t.Fatalf("expected custom marker, got %q", got)
	}
	c.SetChecked(false)
	if c.Checked() || len(toggles) != 1 {
		t.Fatalf("expected SetChecked to stay silent, got toggles=%v", toggles)
	}
}

func TestCheckbox_FocusParksCursorOnMark(t *testing.T) {
	c := NewCheckbox("on", true)
	c.FocusChange(true)
	canvas := runtime.NewCanvas(8, 1)
	cursor := &cursorStub{}
	c.Render(runtime.NewRenderContext(canvas, cursor))

	if cursor.at != (backend.Point{X: 1}) {
		t.Fatalf("expected cursor on the mark, got %+v", cursor.at)
	}
	cell, _ := canvas.Get(5, 0)
	if cell.Style != backend.StyleActive {
		t.Fatalf("expected focused style, got %v", cell.Style)
	}
}

func TestRadioSet_OneChecked(t *testing.T) {
	set := NewRadioSet[string]()
	red := set.Add("red", "r")
	set.Add("blue", "b")
	var changes []string
	set.OnChange(func(v string) { changes = append(changes, v) })

	s := set.Stack()
	s.FocusChange(true)
	if _, ok := set.Checked(); ok {
		t.Fatalf("expected nothing checked initially")
	}
	if got := rows(draw(s, 10, 2)); got[0] != "( ) red" || got[1] != "( ) blue" {
		t.Fatalf("unexpected initial rows %q", got)
	}

	press(s, terminal.KeyPress(terminal.KeyDown), terminal.KeyPress(terminal.KeyEnter))
	if v, ok := set.Checked(); !ok || v != "b" {
		t.Fatalf("expected b checked, got %q %v", v, ok)
	}
	if got := rows(draw(s, 10, 2)); got[0] != "( ) red" || got[1] != "(*) blue" {
		t.Fatalf("unexpected rows after selecting blue %q", got)
	}

	red.Click()
	if set.CheckedIndex() != 0 || set.Selection().Get() != 0 {
		t.Fatalf("expected red checked, got %d", set.CheckedIndex())
	}
	if got := rows(draw(s, 10, 2)); got[0] != "(*) red" || got[1] != "( ) blue" {
		t.Fatalf("expected previous option unchecked, got %q", got)
	}

	set.Check(5)
	if len(changes) != 2 || changes[0] != "b" || changes[1] != "r" {
		t.Fatalf("unexpected change sequence %v", changes)
	}
}
