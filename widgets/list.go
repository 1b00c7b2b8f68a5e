package widgets

import (
	"slices"

	"github.com/odvcencio/cellframe/runtime"
)

// ListOf keeps a slice of items and a stack of widgets built from them in
// step. Every mutation of the items rebuilds the matching widget with the
// converter.
type ListOf[T any] struct {
	stack   *Stack
	convert func(T) runtime.Widget
	items   []T
	widgets []runtime.Widget
}

// NewListOf fills stack with a widget per item. The stack should start empty.
func NewListOf[T any](stack *Stack, convert func(T) runtime.Widget, items ...T) *ListOf[T] {
	l := &ListOf[T]{stack: stack, convert: convert}
	for _, item := range items {
		l.Add(item)
	}
	return l
}

// Widget returns the stack the list drives.
func (l *ListOf[T]) Widget() *Stack {
	return l.stack
}

// Len returns the number of items.
func (l *ListOf[T]) Len() int {
	return len(l.items)
}

// At returns item i.
func (l *ListOf[T]) At(i int) T {
	return l.items[i]
}

// Items returns a copy of the items.
func (l *ListOf[T]) Items() []T {
	return slices.Clone(l.items)
}

// IndexFunc returns the first index whose item satisfies fn, or -1.
func (l *ListOf[T]) IndexFunc(fn func(T) bool) int {
	return slices.IndexFunc(l.items, fn)
}

// Add appends item.
func (l *ListOf[T]) Add(item T) {
	l.Insert(len(l.items), item)
}

// Insert places item at index i, clamped to the valid range.
func (l *ListOf[T]) Insert(i int, item T) {
	i = min(max(i, 0), len(l.items))
	w := l.convert(item)
	l.stack.Insert(l.stackIndex(i), w)
	l.items = slices.Insert(l.items, i, item)
	l.widgets = slices.Insert(l.widgets, i, w)
}

// Set replaces item i and rebuilds its widget. It reports false when i is
// out of range.
func (l *ListOf[T]) Set(i int, item T) bool {
	if i < 0 || i >= len(l.items) {
		return false
	}
	l.items[i] = item
	l.rebuild(i)
	return true
}

// RemoveAt drops item i. It reports false when i is out of range.
func (l *ListOf[T]) RemoveAt(i int) bool {
	if i < 0 || i >= len(l.items) {
		return false
	}
	l.stack.Remove(l.widgets[i])
	l.items = slices.Delete(l.items, i, i+1)
	l.widgets = slices.Delete(l.widgets, i, i+1)
	return true
}

// Clear drops every item.
func (l *ListOf[T]) Clear() {
	for _, w := range l.widgets {
		l.stack.Remove(w)
	}
	l.items = nil
	l.widgets = nil
}

// Refresh rebuilds every widget, for converters that read outside state.
func (l *ListOf[T]) Refresh() {
	for i := range l.items {
		l.rebuild(i)
	}
}

// RefreshAt rebuilds the widget of item i.
func (l *ListOf[T]) RefreshAt(i int) {
	if i >= 0 && i < len(l.items) {
		l.rebuild(i)
	}
}

func (l *ListOf[T]) rebuild(i int) {
	at := l.stack.IndexOf(l.widgets[i])
	w := l.convert(l.items[i])
	l.stack.RemoveAt(at)
	l.stack.Insert(at, w)
	l.widgets[i] = w
}

// stackIndex maps item position i to a stack position, so lists sharing a
// stack with other widgets keep their relative order.
func (l *ListOf[T]) stackIndex(i int) int {
	if i < len(l.widgets) {
		return l.stack.IndexOf(l.widgets[i])
	}
	if n := len(l.widgets); n > 0 {
		return l.stack.IndexOf(l.widgets[n-1]) + 1
	}
	return l.stack.Len()
}
