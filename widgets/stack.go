package widgets

import (
	"github.com/odvcencio/cellframe/runtime"
	"github.com/odvcencio/cellframe/terminal"
)

// Stack lays its children out one after another and moves focus between them.
//
// Tab, Enter and the arrow along the orientation move to the next focusable
// child; Shift+Tab and the opposite arrow move back; Home/PgUp and End/PgDn
// jump to the ends. Navigation does not wrap, so a key that would run off the
// end stays unhandled and reaches the enclosing container.
type Stack struct {
	runtime.Container
	orientation Orientation
	margin      int
	maxVisible  int
	position    int
	onMove      func(*Stack)
}

// NewStack creates a stack with the given children.
func NewStack(orientation Orientation, children ...runtime.Widget) *Stack {
	s := &Stack{orientation: orientation}
	s.SetBubbleUp(s.navigate)
	for _, child := range children {
		s.Add(child)
	}
	return s
}

// SetMargin sets the gap between children.
func (s *Stack) SetMargin(margin int) {
	s.margin = max(margin, 0)
}

// SetMaxVisible limits how many children are drawn; 0 means all.
// The drawn window follows the focused child.
func (s *Stack) SetMaxVisible(n int) {
	s.maxVisible = max(n, 0)
}

// OnMove sets a callback fired after navigation moves focus.
func (s *Stack) OnMove(fn func(*Stack)) {
	s.onMove = fn
}

// Orientation returns the layout direction.
func (s *Stack) Orientation() Orientation {
	return s.orientation
}

// Position returns the index of the focused child, or of the last focused
// child when nothing is focused now.
func (s *Stack) Position() int {
	if idx := s.FocusedIndex(); idx >= 0 {
		s.position = idx
	}
	return s.position
}

func (s *Stack) AsFocusable() runtime.Focusable { return s }

// Render draws the visible children, each in its own derived context,
// advancing by the size the previous child used plus the margin.
func (s *Stack) Render(ctx *runtime.RenderContext) {
	offset := 0
	for _, child := range s.visible() {
		var sub *runtime.RenderContext
		if s.orientation == Horizontal {
			sub = ctx.Derive(offset, 0, 0)
		} else {
			sub = ctx.Derive(0, offset, 0)
		}
		child.Render(sub)
		w, h := sub.Size()
		if s.orientation == Horizontal {
			offset += w + s.margin
		} else {
			offset += h + s.margin
		}
	}
}

func (s *Stack) visible() []runtime.Widget {
	children := s.ChildWidgets()
	if s.maxVisible == 0 || len(children) <= s.maxVisible {
		return children
	}
	before := s.maxVisible / 2
	after := s.maxVisible - before
	pos := s.Position()
	start, end := pos-before, pos+after
	switch {
	case start < 0:
		return children[:s.maxVisible]
	case end > len(children):
		return children[len(children)-s.maxVisible:]
	default:
		return children[start:end]
	}
}

func (s *Stack) navigate(ev terminal.KeyEvent) bool {
	if s.HandleActions(ev) {
		return true
	}
	back, forward := terminal.KeyUp, terminal.KeyDown
	if s.orientation == Horizontal {
		back, forward = terminal.KeyLeft, terminal.KeyRight
	}
	switch ev.Key {
	case terminal.KeyTab:
		if ev.Mod.Has(terminal.ModShift) {
			return s.move(-1)
		}
		return s.move(1)
	case back:
		return s.move(-1)
	case forward, terminal.KeyEnter:
		return s.move(1)
	case terminal.KeyHome, terminal.KeyPageUp:
		return s.jump(true)
	case terminal.KeyEnd, terminal.KeyPageDown:
		return s.jump(false)
	}
	return false
}

// focusable returns the indices of children that can take focus now.
func (s *Stack) focusable() []int {
	var out []int
	for i, child := range s.ChildWidgets() {
		if f := child.AsFocusable(); f != nil && f.CanFocus() {
			out = append(out, i)
		}
	}
	return out
}

func (s *Stack) move(dir int) bool {
	candidates := s.focusable()
	if len(candidates) == 0 {
		return false
	}
	current := -1
	for n, idx := range candidates {
		if idx == s.FocusedIndex() {
			current = n
			break
		}
	}
	if current < 0 {
		// Nothing focusable is focused: land on the candidate nearest the last position.
		pos := s.Position()
		nearest := 0
		for n, idx := range candidates {
			if abs(idx-pos) < abs(candidates[nearest]-pos) {
				nearest = n
			}
		}
		return s.focus(candidates[nearest])
	}
	next := current + dir
	if next < 0 || next >= len(candidates) {
		return false
	}
	return s.focus(candidates[next])
}

func (s *Stack) jump(first bool) bool {
	candidates := s.focusable()
	if len(candidates) == 0 {
		return false
	}
	if first {
		return s.focus(candidates[0])
	}
	return s.focus(candidates[len(candidates)-1])
}

func (s *Stack) focus(idx int) bool {
	if err := s.FocusIndex(idx); err != nil {
		return false
	}
	s.position = idx
	if s.onMove != nil {
		s.onMove(s)
	}
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
