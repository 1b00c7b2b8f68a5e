package runtime

import (
	"slices"

	"github.com/odvcencio/cellframe/terminal"
)

type binding struct {
	selectors []terminal.KeySelector
	fn        func()
}

// Actions maps selector sets to callbacks.
// Several sets may match one event; every matching callback fires,
// in registration order.
type Actions struct {
	bindings []binding
}

// Add binds fn to the set of selectors. Duplicate selectors collapse.
func (a *Actions) Add(fn func(), selectors ...terminal.KeySelector) *Actions {
	if a == nil || fn == nil || len(selectors) == 0 {
		return a
	}
	set := make([]terminal.KeySelector, 0, len(selectors))
	for _, s := range selectors {
		if !slices.Contains(set, s) {
			set = append(set, s)
		}
	}
	a.bindings = append(a.bindings, binding{selectors: set, fn: fn})
	return a
}

// Handle fires every binding with a selector matching ev.
func (a *Actions) Handle(ev terminal.KeyEvent) bool {
	if a == nil {
		return false
	}
	handled := false
	for _, b := range a.bindings {
		if terminal.MatchAny(b.selectors, ev) {
			b.fn()
			handled = true
		}
	}
	return handled
}

// Len returns the number of bindings.
func (a *Actions) Len() int {
	if a == nil {
		return 0
	}
	return len(a.bindings)
}

// Clear removes all bindings.
func (a *Actions) Clear() {
	if a == nil {
		return
	}
	a.bindings = nil
}
