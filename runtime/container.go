package runtime

import (
	"slices"

	"github.com/odvcencio/cellframe/terminal"
)

// Container owns an ordered list of children and routes keys to one of them.
//
// The focused child is tracked by position, never as a second owner: focus
// holds the child's index plus one, and zero means no child is focused.
//
// Layout containers embed Container, override Render, and install navigation
// with SetBubbleUp. They must also implement AsFocusable to return themselves.
type Container struct {
	children []Widget
	focus    int
	active   bool
	loop     *Loop
	actions  Actions
	bubbleUp func(terminal.KeyEvent) bool
}

// NewContainer creates an empty container.
func NewContainer(children ...Widget) *Container {
	c := &Container{}
	for _, child := range children {
		c.Add(child)
	}
	return c
}

// Render draws every child into the same context.
func (c *Container) Render(ctx *RenderContext) {
	for _, child := range c.children {
		child.Render(ctx)
	}
}

// OnRegistered registers every child with loop and remembers it so children
// added later are registered too.
func (c *Container) OnRegistered(loop *Loop) {
	for _, child := range c.children {
		loop.Register(child)
	}
	c.loop = loop
}

// OnUnregistered unregisters every child.
func (c *Container) OnUnregistered() {
	loop := c.loop
	c.loop = nil
	if loop == nil {
		return
	}
	for _, child := range c.children {
		loop.Unregister(child)
	}
}

// Update does nothing; children are updated by the loop directly.
func (c *Container) Update() error { return nil }

// FPS returns 0.
func (c *Container) FPS() int { return 0 }

// AsFocusable returns the container.
func (c *Container) AsFocusable() Focusable { return c }

// Actions returns the container's own action registry, consulted by BubbleUp.
func (c *Container) Actions() *Actions {
	return &c.actions
}

// ChildWidgets returns the children in order.
func (c *Container) ChildWidgets() []Widget {
	return slices.Clone(c.children)
}

// Len returns the number of children.
func (c *Container) Len() int {
	return len(c.children)
}

// Child returns the child at index i, or nil.
func (c *Container) Child(i int) Widget {
	if i < 0 || i >= len(c.children) {
		return nil
	}
	return c.children[i]
}

// IndexOf returns the position of w, or -1.
func (c *Container) IndexOf(w Widget) int {
	if w == nil {
		return -1
	}
	for i, child := range c.children {
		if child == w {
			return i
		}
	}
	return -1
}

// Loop returns the loop the container is registered with, if any.
func (c *Container) Loop() *Loop {
	return c.loop
}

// IsFocused reports whether the container is on the active focus chain.
func (c *Container) IsFocused() bool {
	return c.active
}

// CanFocus reports whether the focused child can take focus.
func (c *Container) CanFocus() bool {
	f := c.Focused()
	return f != nil && f.CanFocus()
}

// FocusChange records the flag and forwards it to the focused child.
func (c *Container) FocusChange(focused bool) {
	c.active = focused
	if f := c.Focused(); f != nil {
		f.FocusChange(focused)
	}
}

// Focused returns the focused child, or nil.
func (c *Container) Focused() Focusable {
	idx := c.FocusedIndex()
	if idx < 0 {
		return nil
	}
	return c.children[idx].AsFocusable()
}

// FocusedIndex returns the position of the focused child, or -1.
func (c *Container) FocusedIndex() int {
	return c.focus - 1
}

// SetFocused moves focus to f, which must be one of the children, or clears it when f is nil.
func (c *Container) SetFocused(f Focusable) error {
	if f == nil {
		c.setFocus(-1)
		return nil
	}
	for i, child := range c.children {
		if child.AsFocusable() == f {
			c.setFocus(i)
			return nil
		}
	}
	return ErrNotChild
}

// FocusIndex moves focus to the child at index i.
func (c *Container) FocusIndex(i int) error {
	if i < 0 || i >= len(c.children) || c.children[i].AsFocusable() == nil {
		return ErrNotChild
	}
	c.setFocus(i)
	return nil
}

// setFocus notifies the old and new child only while the container is active,
// so subtrees assembled off the focus chain see no spurious callbacks.
func (c *Container) setFocus(i int) {
	if i+1 == c.focus {
		return
	}
	if c.active {
		if prev := c.Focused(); prev != nil {
			prev.FocusChange(false)
		}
		if i >= 0 {
			c.children[i].AsFocusable().FocusChange(true)
		}
	}
	c.focus = i + 1
}

// BubbleDown offers ev to the focused child first, then falls back to BubbleUp.
func (c *Container) BubbleDown(ev terminal.KeyEvent) bool {
	if f := c.Focused(); f != nil && f.BubbleDown(ev) {
		return true
	}
	return c.BubbleUp(ev)
}

// BubbleUp handles a key the focused child declined. By default it consults
// the container's own actions; SetBubbleUp replaces that.
func (c *Container) BubbleUp(ev terminal.KeyEvent) bool {
	if c.bubbleUp != nil {
		return c.bubbleUp(ev)
	}
	return c.HandleActions(ev)
}

// HandleActions runs the container's own actions against ev.
func (c *Container) HandleActions(ev terminal.KeyEvent) bool {
	return c.actions.Handle(ev)
}

// SetBubbleUp installs the fallback used when the focused child declines a key.
func (c *Container) SetBubbleUp(fn func(terminal.KeyEvent) bool) {
	c.bubbleUp = fn
}

// Add appends w. If nothing is focused and w is focusable, w becomes focused.
func (c *Container) Add(w Widget) {
	c.Insert(len(c.children), w)
}

// AddFocused appends w and focuses it.
func (c *Container) AddFocused(w Focusable) {
	c.Add(w)
	c.setFocus(len(c.children) - 1)
}

// Insert places w at index i, clamped to the valid range.
func (c *Container) Insert(i int, w Widget) {
	if w == nil {
		return
	}
	i = min(max(i, 0), len(c.children))
	if c.loop != nil {
		c.loop.Register(w)
	}
	c.children = slices.Insert(c.children, i, w)
	if c.focus > i {
		c.focus++
	}
	if c.focus == 0 && w.AsFocusable() != nil {
		c.setFocus(i)
	}
}

// Remove drops w and reports whether it was a child.
func (c *Container) Remove(w Widget) bool {
	return c.RemoveAt(c.IndexOf(w)) != nil
}

// RemoveAt drops the child at index i and returns it, or nil when out of range.
func (c *Container) RemoveAt(i int) Widget {
	if i < 0 || i >= len(c.children) {
		return nil
	}
	w := c.children[i]
	if c.FocusedIndex() == i {
		c.setFocus(-1)
	}
	if c.loop != nil {
		c.loop.Unregister(w)
	}
	c.children = slices.Delete(c.children, i, i+1)
	if c.focus > i+1 {
		c.focus--
	}
	return w
}

// Clear drops every child.
func (c *Container) Clear() {
	c.setFocus(-1)
	if c.loop != nil {
		for _, child := range c.children {
			c.loop.Unregister(child)
		}
	}
	c.children = nil
}
