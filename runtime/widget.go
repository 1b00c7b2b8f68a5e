package runtime

import (
	"github.com/odvcencio/cellframe/backend"
	"github.com/odvcencio/cellframe/terminal"
)

// Widget is anything that can draw itself.
//
// The capabilities are layered: Focusable adds focus and key dispatch,
// KeyHandler adds an action registry. Embed WidgetBase, FocusBase or
// KeyHandlerBase to get the default behavior for everything but Render.
type Widget interface {
	// Render draws the widget into ctx. ctx must not be retained.
	Render(ctx *RenderContext)
	// OnRegistered is called when the widget joins a loop.
	OnRegistered(loop *Loop)
	// OnUnregistered is called when the widget leaves its loop.
	OnUnregistered()
	// Update advances widget state. It runs FPS times per second,
	// or every tick when FPS is 0. An error stops the loop.
	Update() error
	// FPS is the desired update rate; 0 means every tick.
	FPS() int
	// AsFocusable returns the widget's Focusable capability, or nil.
	AsFocusable() Focusable
}

// Focusable widgets take part in the focus chain and receive keys.
type Focusable interface {
	Widget
	// CanFocus reports whether the widget accepts focus right now.
	CanFocus() bool
	// FocusChange notifies the widget that it gained or lost focus.
	FocusChange(focused bool)
	// BubbleDown offers a key to the widget and reports whether it was handled.
	BubbleDown(ev terminal.KeyEvent) bool
}

// KeyHandler is a Focusable driven by an action registry.
type KeyHandler interface {
	Focusable
	Actions() *Actions
}

// ClickHandler is implemented by root widgets that accept pointer presses.
type ClickHandler interface {
	HandleClick(p backend.Point) bool
}

// ChildProvider exposes child widgets for tree walks.
type ChildProvider interface {
	ChildWidgets() []Widget
}
