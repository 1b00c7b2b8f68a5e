package runtime

import (
	"time"

	"github.com/odvcencio/cellframe/backend"
	"github.com/odvcencio/cellframe/terminal"
)

type fakeClock struct {
	now   time.Time
	slept time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(1_700_000_000, 0)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(d time.Duration) {
	c.now = c.now.Add(d)
	c.slept += d
}

type textWidget struct {
	WidgetBase
	text    string
	style   backend.Style
	fps     int
	updates int
	err     error
}

func (w *textWidget) Render(ctx *RenderContext) {
	ctx.PlaceString(w.text, w.style)
}

func (w *textWidget) FPS() int { return w.fps }

func (w *textWidget) Update() error {
	w.updates++
	return w.err
}

type keyWidget struct {
	KeyHandlerBase
	name     string
	noFocus  bool
	changes  []bool
	received []terminal.KeyEvent
	consume  bool
}

func (w *keyWidget) Render(*RenderContext) {}

func (w *keyWidget) AsFocusable() Focusable { return w }

func (w *keyWidget) CanFocus() bool { return !w.noFocus }

func (w *keyWidget) FocusChange(focused bool) {
	w.KeyHandlerBase.FocusChange(focused)
	w.changes = append(w.changes, focused)
}

func (w *keyWidget) BubbleDown(ev terminal.KeyEvent) bool {
	w.received = append(w.received, ev)
	if w.consume {
		return true
	}
	return w.KeyHandlerBase.BubbleDown(ev)
}
