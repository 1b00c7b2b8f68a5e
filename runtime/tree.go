package runtime

// FocusOwner is implemented by widgets that route keys to one of their children.
type FocusOwner interface {
	Focused() Focusable
}

// Walk visits root and its descendants depth-first, parents before children.
// Returning false from fn skips the widget's children.
func Walk(root Widget, fn func(w Widget) bool) {
	if root == nil || fn == nil {
		return
	}
	if !fn(root) {
		return
	}
	if parent, ok := root.(ChildProvider); ok {
		for _, child := range parent.ChildWidgets() {
			Walk(child, fn)
		}
	}
}

// FocusChain returns the path keys travel from root to the innermost focused widget.
func FocusChain(root Widget) []Focusable {
	if root == nil {
		return nil
	}
	var chain []Focusable
	f := root.AsFocusable()
	for f != nil {
		chain = append(chain, f)
		owner, ok := f.(FocusOwner)
		if !ok {
			break
		}
		f = owner.Focused()
	}
	return chain
}
