package widgets

import "github.com/odvcencio/cellframe/runtime"

// PopupHost is a container a popup can open over. *runtime.Container and
// the layouts embedding it qualify; a plain Container is the usual choice
// because its children overlay each other.
type PopupHost interface {
	AddFocused(w runtime.Focusable)
	Remove(w runtime.Widget) bool
	Focused() runtime.Focusable
	SetFocused(f runtime.Focusable) error
}

// Popup is a framed window drawn over its host on a high layer. Showing it
// takes the host's focus; closing it gives focus back to whatever had it.
type Popup struct {
	stack       *Stack
	maxWidth    int
	x, y, layer int
	last        runtime.Widget
	host        PopupHost
	previous    runtime.Focusable
	wrapped     *Position
}

// NewPopup creates an empty popup 70 cells wide and up to 19 rows tall,
// placed at (5, 5) on layer 10.
func NewPopup() *Popup {
	p := &Popup{stack: NewStack(Vertical), maxWidth: 70, x: 5, y: 5, layer: 10}
	p.stack.SetMaxVisible(19)
	return p
}

// SetPosition moves the popup relative to its host.
func (p *Popup) SetPosition(x, y, layer int) *Popup {
	p.x, p.y, p.layer = x, y, layer
	return p
}

// SetMaxSize limits the width given to text widgets and the number of rows shown.
func (p *Popup) SetMaxSize(width, height int) *Popup {
	p.maxWidth = max(width, 1)
	p.stack.SetMaxVisible(height)
	return p
}

// Add appends w. Labels and inputs are sized to the popup width.
func (p *Popup) Add(w runtime.Widget) *Popup {
	switch w := w.(type) {
	case *Label:
		w.SetMaxWidth(p.maxWidth)
	case *MultilineLabel:
		w.SetMaxWidth(p.maxWidth)
	case *Input:
		w.SetMaxLength(p.maxWidth)
	}
	p.stack.Add(w)
	p.last = w
	return p
}

// AndFocus focuses the widget added last, when it can take focus.
func (p *Popup) AndFocus() *Popup {
	if p.last == nil {
		return p
	}
	if f := p.last.AsFocusable(); f != nil {
		_ = p.stack.SetFocused(f)
	}
	return p
}

// AddClose appends a button that closes the popup.
func (p *Popup) AddClose(text string) *Popup {
	b := NewButton(text)
	b.OnClick(func(*Button) { p.Close() })
	return p.Add(b)
}

// IsOpen reports whether the popup is showing.
func (p *Popup) IsOpen() bool {
	return p.wrapped != nil
}

// Show opens the popup over host and focuses it. Showing an open popup
// does nothing.
func (p *Popup) Show(host PopupHost) {
	if p.wrapped != nil {
		return
	}
	p.host = host
	p.previous = host.Focused()
	p.wrapped = NewPosition(p.x, p.y, p.layer, NewFrame(p.stack))
	host.AddFocused(p.wrapped)
}

// Close removes the popup and restores the host's previous focus.
func (p *Popup) Close() {
	if p.wrapped == nil {
		return
	}
	_ = p.host.SetFocused(p.previous)
	p.host.Remove(p.wrapped)
	p.host, p.previous, p.wrapped = nil, nil, nil
}
