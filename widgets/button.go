package widgets

import (
	"github.com/odvcencio/cellframe/backend"
	"github.com/odvcencio/cellframe/runtime"
	"github.com/odvcencio/cellframe/terminal"
)

// Button is a focusable label that fires OnClick on Enter or Space.
type Button struct {
	Label
	focused        bool
	focusedStyle   backend.Style
	unfocusedStyle backend.Style
	onClick        func(*Button)
}

// NewButton creates a button.
func NewButton(text string) *Button {
	b := &Button{
		focusedStyle:   backend.StyleActive,
		unfocusedStyle: backend.StyleInactive,
	}
	b.style = backend.DefaultStyle()
	b.SetText(text)
	return b
}

// OnClick sets the activation callback.
func (b *Button) OnClick(fn func(*Button)) {
	b.onClick = fn
}

// SetStyles sets the focused and unfocused styles.
func (b *Button) SetStyles(focused, unfocused backend.Style) {
	b.focusedStyle = focused
	b.unfocusedStyle = unfocused
}

// Click fires the callback as if the button was activated.
func (b *Button) Click() {
	if b.onClick != nil {
		b.onClick(b)
	}
}

// Render draws the label in the style matching the focus state and parks
// the cursor on the button while focused.
func (b *Button) Render(ctx *runtime.RenderContext) {
	if b.focused {
		ctx.SetCursorPosition(backend.Point{})
	}
	b.render(ctx, b.currentStyle())
}

func (b *Button) currentStyle() backend.Style {
	if b.focused {
		return b.focusedStyle
	}
	return b.unfocusedStyle
}

func (b *Button) AsFocusable() runtime.Focusable { return b }

func (b *Button) CanFocus() bool { return true }

func (b *Button) FocusChange(focused bool) {
	b.focused = focused
}

// IsFocused reports whether the button has focus.
func (b *Button) IsFocused() bool {
	return b.focused
}

func (b *Button) BubbleDown(ev terminal.KeyEvent) bool {
	if !terminal.MatchAny(terminal.SelectItem, ev) {
		return false
	}
	b.Click()
	return true
}
