package widgets

import (
	"github.com/odvcencio/cellframe/runtime"
	"github.com/odvcencio/cellframe/terminal"
)

// Expandable shows one widget while unfocused and another while focused,
// for example a one-line summary that opens into a full editor.
// Keys go to whichever widget is showing.
type Expandable struct {
	runtime.FocusBase
	collapsed runtime.Widget
	expanded  runtime.Widget
	loop      *runtime.Loop
}

// NewExpandable creates an expandable from its two faces.
func NewExpandable(collapsed, expanded runtime.Widget) *Expandable {
	return &Expandable{collapsed: collapsed, expanded: expanded}
}

// Current returns the widget being shown.
func (e *Expandable) Current() runtime.Widget {
	if e.IsFocused() {
		return e.expanded
	}
	return e.collapsed
}

func (e *Expandable) AsFocusable() runtime.Focusable { return e }

// ChildWidgets returns both faces.
func (e *Expandable) ChildWidgets() []runtime.Widget {
	return []runtime.Widget{e.collapsed, e.expanded}
}

// OnRegistered registers both faces so each keeps updating while hidden.
func (e *Expandable) OnRegistered(loop *runtime.Loop) {
	e.loop = loop
	loop.Register(e.collapsed)
	loop.Register(e.expanded)
}

// OnUnregistered unregisters both faces.
func (e *Expandable) OnUnregistered() {
	loop := e.loop
	e.loop = nil
	if loop == nil {
		return
	}
	loop.Unregister(e.collapsed)
	loop.Unregister(e.expanded)
}

func (e *Expandable) Render(ctx *runtime.RenderContext) {
	e.Current().Render(ctx)
}

// FocusChange switches faces and forwards the change to the expanded face.
func (e *Expandable) FocusChange(focused bool) {
	if e.IsFocused() == focused {
		return
	}
	e.FocusBase.FocusChange(focused)
	if f := e.expanded.AsFocusable(); f != nil {
		f.FocusChange(focused)
	}
}

func (e *Expandable) BubbleDown(ev terminal.KeyEvent) bool {
	if f := e.Current().AsFocusable(); f != nil {
		return f.BubbleDown(ev)
	}
	return false
}
