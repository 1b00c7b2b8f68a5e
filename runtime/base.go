package runtime

import "github.com/odvcencio/cellframe/terminal"

// WidgetBase provides the no-op defaults of Widget.
// Embed it and implement Render.
type WidgetBase struct{}

// OnRegistered does nothing by default.
func (WidgetBase) OnRegistered(*Loop) {}

// OnUnregistered does nothing by default.
func (WidgetBase) OnUnregistered() {}

// Update does nothing by default.
func (WidgetBase) Update() error { return nil }

// FPS returns 0: update every tick.
func (WidgetBase) FPS() int { return 0 }

// AsFocusable returns nil: plain widgets cannot take focus.
func (WidgetBase) AsFocusable() Focusable { return nil }

// FocusBase extends WidgetBase with focus tracking.
// Focusable widgets still implement AsFocusable themselves so it returns the
// outer widget rather than the embedded base.
type FocusBase struct {
	WidgetBase
	focused bool
}

// CanFocus returns true.
func (f *FocusBase) CanFocus() bool {
	return true
}

// FocusChange records the focus state.
func (f *FocusBase) FocusChange(focused bool) {
	f.focused = focused
}

// IsFocused reports the last state passed to FocusChange.
func (f *FocusBase) IsFocused() bool {
	return f.focused
}

// BubbleDown handles nothing by default.
func (f *FocusBase) BubbleDown(terminal.KeyEvent) bool {
	return false
}

// KeyHandlerBase extends FocusBase with an action registry that drives BubbleDown.
type KeyHandlerBase struct {
	FocusBase
	actions Actions
}

// Actions returns the widget's action registry.
func (k *KeyHandlerBase) Actions() *Actions {
	return &k.actions
}

// BubbleDown fires every matching action.
func (k *KeyHandlerBase) BubbleDown(ev terminal.KeyEvent) bool {
	return k.actions.Handle(ev)
}
