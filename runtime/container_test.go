package runtime

import (
	"errors"
	"testing"

	"github.com/odvcencio/cellframe/terminal"
)

func TestContainer_AddFocusesFirstFocusable(t *testing.T) {
	plain := &textWidget{text: "x"}
	a := &keyWidget{name: "a"}
	b := &keyWidget{name: "b"}
	c := NewContainer(plain, a, b)

	if c.Focused() != a {
		t.Fatalf("expected first focusable child focused, got %v", c.Focused())
	}
	if c.FocusedIndex() != 1 {
		t.Fatalf("expected focus index 1, got %d", c.FocusedIndex())
	}
}

func TestContainer_InactiveFocusIsSilent(t *testing.T) {
	a := &keyWidget{name: "a"}
	b := &keyWidget{name: "b"}
	c := NewContainer(a, b)

	if err := c.SetFocused(b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(a.changes) != 0 || len(b.changes) != 0 {
		t.Fatalf("expected no notifications off the focus chain, got a=%v b=%v", a.changes, b.changes)
	}
	if c.Focused() != b {
		t.Fatalf("expected b focused")
	}
}

func TestContainer_ActiveFocusNotifies(t *testing.T) {
	a := &keyWidget{name: "a"}
	b := &keyWidget{name: "b"}
	c := NewContainer(a, b)
	c.FocusChange(true)

	if len(a.changes) != 1 || !a.changes[0] {
		t.Fatalf("expected focus forwarded to a, got %v", a.changes)
	}
	if err := c.FocusIndex(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(a.changes) != 2 || a.changes[1] {
		t.Fatalf("expected a to lose focus, got %v", a.changes)
	}
	if len(b.changes) != 1 || !b.changes[0] {
		t.Fatalf("expected b to gain focus, got %v", b.changes)
	}
	if !b.IsFocused() || a.IsFocused() {
		t.Fatalf("unexpected focus flags a=%v b=%v", a.IsFocused(), b.IsFocused())
	}

	if err := c.FocusIndex(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(b.changes) != 1 {
		t.Fatalf("expected refocusing the same child to be silent, got %v", b.changes)
	}
}

func TestContainer_FocusChangeReachesLeaf(t *testing.T) {
	leaf := &keyWidget{name: "leaf"}
	inner := NewContainer(leaf)
	outer := NewContainer(inner)

	outer.FocusChange(true)
	if !leaf.IsFocused() || !inner.IsFocused() {
		t.Fatalf("expected focus to reach the leaf")
	}
	chain := FocusChain(outer)
	if len(chain) != 3 || chain[2] != leaf {
		t.Fatalf("unexpected focus chain %v", chain)
	}
	outer.FocusChange(false)
	if leaf.IsFocused() {
		t.Fatalf("expected leaf unfocused")
	}
}

func TestContainer_FocusErrors(t *testing.T) {
	c := NewContainer(&textWidget{}, &keyWidget{})
	if err := c.SetFocused(&keyWidget{}); !errors.Is(err, ErrNotChild) {
		t.Fatalf("expected ErrNotChild, got %v", err)
	}
	if err := c.FocusIndex(0); !errors.Is(err, ErrNotChild) {
		t.Fatalf("expected non-focusable index to fail, got %v", err)
	}
	if err := c.FocusIndex(5); !errors.Is(err, ErrNotChild) {
		t.Fatalf("expected out of range index to fail, got %v", err)
	}
	if err := c.SetFocused(nil); err != nil || c.Focused() != nil {
		t.Fatalf("expected focus cleared, got %v %v", err, c.Focused())
	}
}

func TestContainer_BubbleDownFallsBackToActions(t *testing.T) {
	child := &keyWidget{}
	c := NewContainer(child)
	fired := 0
	c.Actions().Add(func() { fired++ }, terminal.OnKey(terminal.KeyF1))

	if !c.BubbleDown(terminal.KeyPress(terminal.KeyF1)) {
		t.Fatalf("expected container action to handle the key")
	}
	if fired != 1 || len(child.received) != 1 {
		t.Fatalf("expected child offered the key first, fired=%d received=%d", fired, len(child.received))
	}

	child.consume = true
	c.BubbleDown(terminal.KeyPress(terminal.KeyF1))
	if fired != 1 {
		t.Fatalf("expected consumed key not to reach container actions")
	}
}

func TestContainer_SetBubbleUp(t *testing.T) {
	c := NewContainer()
	var got terminal.KeyEvent
	c.SetBubbleUp(func(ev terminal.KeyEvent) bool {
		got = ev
		return true
	})
	if !c.BubbleDown(terminal.KeyPress(terminal.KeyTab)) || got.Key != terminal.KeyTab {
		t.Fatalf("expected custom bubble up to receive the key")
	}
}

func TestContainer_RemoveAdjustsFocus(t *testing.T) {
	a := &keyWidget{name: "a"}
	b := &keyWidget{name: "b"}
	x := &keyWidget{name: "x"}
	c := NewContainer(a, b)
	c.FocusIndex(1)

	c.Insert(0, x)
	if c.Focused() != b || c.FocusedIndex() != 2 {
		t.Fatalf("expected focus to follow b to index 2, got %d", c.FocusedIndex())
	}
	if !c.Remove(x) {
		t.Fatalf("expected x removed")
	}
	if c.Focused() != b {
		t.Fatalf("expected b still focused")
	}
	if c.RemoveAt(1) != b {
		t.Fatalf("expected b returned")
	}
	if c.Focused() != nil {
		t.Fatalf("expected focus cleared when focused child removed")
	}
	if c.RemoveAt(7) != nil || c.Remove(b) {
		t.Fatalf("expected missing children to be ignored")
	}
	c.Clear()
	if c.Len() != 0 {
		t.Fatalf("expected empty container")
	}
}

func TestContainer_RegistrationCascades(t *testing.T) {
	loop := NewLoop(LoopConfig{Clock: newFakeClock()})
	early := &textWidget{}
	c := NewContainer(early)
	loop.Register(c)

	if _, ok := loop.ID(early); !ok {
		t.Fatalf("expected existing child registered with the container")
	}
	late := &textWidget{}
	c.Add(late)
	if _, ok := loop.ID(late); !ok {
		t.Fatalf("expected child added later to be registered")
	}
	c.Remove(late)
	if _, ok := loop.ID(late); ok {
		t.Fatalf("expected removed child unregistered")
	}
	loop.Unregister(c)
	if len(loop.Registered()) != 0 {
		t.Fatalf("expected everything unregistered, got %d", len(loop.Registered()))
	}
	if c.Loop() != nil {
		t.Fatalf("expected container detached")
	}
}

func TestContainer_RenderSharesContext(t *testing.T) {
	canvas := NewCanvas(5, 1)
	c := NewContainer(&textWidget{text: "abc", style: red}, &textWidget{text: "X", style: blue})
	ctx := NewRenderContext(canvas, nil)
	c.Render(ctx)
	if cell, _ := canvas.Get(0, 0); cell.Rune != 'X' {
		t.Fatalf("expected later child drawn over the same origin, got %q", cell.Rune)
	}
	if w, _ := ctx.Size(); w != 3 {
		t.Fatalf("expected union size 3, got %d", w)
	}
}
