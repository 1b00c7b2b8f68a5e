package widgets

import (
	"github.com/odvcencio/cellframe/backend"
	"github.com/odvcencio/cellframe/runtime"
	"github.com/odvcencio/cellframe/terminal"
)

// Checkbox is a button prefixed with a "[x] " marker. Activating it flips
// the checked state before the OnClick callback runs.
type Checkbox struct {
	Button
	checked  bool
	marker   rune
	onToggle func(checked bool)
}

// NewCheckbox creates a checkbox with the given initial state.
func NewCheckbox(text string, checked bool) *Checkbox {
	c := &Checkbox{checked: checked, marker: 'x'}
	c.Button = *NewButton(text)
	return c
}

// Checked reports the current state.
func (c *Checkbox) Checked() bool {
	return c.checked
}

// SetChecked changes the state without firing OnToggle.
func (c *Checkbox) SetChecked(checked bool) {
	c.checked = checked
}

// SetMarker sets the rune shown between the brackets when checked.
func (c *Checkbox) SetMarker(r rune) {
	c.marker = r
}

// OnToggle sets a callback fired with the new state after each toggle.
func (c *Checkbox) OnToggle(fn func(checked bool)) {
	c.onToggle = fn
}

// Toggle flips the state and fires OnToggle.
func (c *Checkbox) Toggle() {
	c.checked = !c.checked
	if c.onToggle != nil {
		c.onToggle(c.checked)
	}
}

func (c *Checkbox) AsFocusable() runtime.Focusable { return c }

// Render draws the marker and the label after it. The cursor sits on the mark.
func (c *Checkbox) Render(ctx *runtime.RenderContext) {
	mark := ' '
	if c.checked {
		mark = c.marker
	}
	prefix := "[" + string(mark) + "] "
	ctx.PlaceString(prefix, c.currentStyle())
	c.Button.Render(ctx.Derive(len([]rune(prefix)), 0, 0))
	if c.focused {
		ctx.SetCursorPosition(backend.Point{X: 1})
	}
}

func (c *Checkbox) BubbleDown(ev terminal.KeyEvent) bool {
	if !terminal.MatchAny(terminal.SelectItem, ev) {
		return false
	}
	c.Toggle()
	c.Click()
	return true
}
