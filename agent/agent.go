// Package agent drives a widget tree headlessly. It owns an in-memory
// renderer and a loop on a manual clock, so scripted input and ticks are
// fully deterministic.
package agent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/cellframe/backend"
	"github.com/odvcencio/cellframe/backend/sim"
	"github.com/odvcencio/cellframe/runtime"
	"github.com/odvcencio/cellframe/terminal"
	"github.com/odvcencio/cellframe/widgets"
)

// ErrWidgetNotFound is returned when a lookup matches nothing.
var ErrWidgetNotFound = errors.New("widget not found")

// Config configures an Agent.
type Config struct {
	// Root is the widget tree to drive.
	Root runtime.Widget

	// Width and Height set the screen dimensions (default 80x24).
	Width, Height int

	// MinFPS is passed to the loop; 0 uses the loop default.
	MinFPS int

	// Logger receives loop logs. Nil discards them.
	Logger *log.Logger
}

// Agent steps a loop over a simulated screen.
type Agent struct {
	mu      sync.Mutex
	sim     *sim.Renderer
	clock   *manualClock
	loop    *runtime.Loop
	started bool
}

// New creates an agent. The loop starts on the first Tick.
func New(cfg Config) *Agent {
	width, height := cfg.Width, cfg.Height
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}
	clock := &manualClock{now: time.Unix(0, 0).UTC()}
	renderer := sim.New(width, height)
	return &Agent{
		sim:   renderer,
		clock: clock,
		loop: runtime.NewLoop(runtime.LoopConfig{
			Renderer: renderer,
			Root:     cfg.Root,
			MinFPS:   cfg.MinFPS,
			Clock:    clock,
			Logger:   cfg.Logger,
		}),
	}
}

// Loop returns the driven loop.
func (a *Agent) Loop() *runtime.Loop {
	return a.loop
}

// Renderer returns the simulated screen.
func (a *Agent) Renderer() *sim.Renderer {
	return a.sim
}

// Now returns the agent's clock.
func (a *Agent) Now() time.Time {
	return a.clock.Now()
}

// Press queues key events for the next tick.
func (a *Agent) Press(events ...terminal.KeyEvent) {
	a.sim.PushKeys(events...)
}

// Type queues one key press per rune of text.
func (a *Agent) Type(text string) {
	events := make([]terminal.KeyEvent, 0, len(text))
	for _, r := range text {
		events = append(events, terminal.RunePress(r))
	}
	a.sim.PushKeys(events...)
}

// Click queues a pointer press at (x, y).
func (a *Agent) Click(x, y int) {
	a.sim.PushClicks(backend.Point{X: x, Y: y})
}

// Tick runs n loop steps, advancing the clock by one frame after each.
func (a *Agent) Tick(n int) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.started {
		if err := a.loop.Start(context.Background()); err != nil {
			return fmt.Errorf("start loop: %w", err)
		}
		a.started = true
	}
	for i := 0; i < n; i++ {
		if err := a.loop.Step(); err != nil {
			return err
		}
		a.clock.Sleep(time.Second / time.Duration(max(a.loop.FPS(), 1)))
	}
	return nil
}

// Close stops the loop and restores the renderer.
func (a *Agent) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.loop.Close()
}

// Text returns the screen with trailing spaces trimmed from each row.
func (a *Agent) Text() string {
	return a.sim.Text()
}

// ContainsText reports whether text appears on one row of the screen.
func (a *Agent) ContainsText(text string) bool {
	x, _ := a.FindText(text)
	return x >= 0
}

// FindText returns the cell where text starts, or (-1, -1).
func (a *Agent) FindText(text string) (x, y int) {
	if text == "" {
		return -1, -1
	}
	_, h := a.sim.Size()
	for row := 0; row < h; row++ {
		line := a.sim.Line(row)
		if idx := strings.Index(line, text); idx >= 0 {
			return runewidth.StringWidth(line[:idx]), row
		}
	}
	return -1, -1
}

// Snapshot returns a structured view of the screen and widget tree.
func (a *Agent) Snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()

	snap := Snapshot{
		Timestamp: a.clock.Now(),
		Tick:      a.loop.Ticks(),
		FPS:       a.loop.FPS(),
		Text:      a.sim.Text(),
	}
	snap.Width, snap.Height = a.sim.Size()

	root := a.loop.Root()
	if root == nil {
		return snap
	}
	chain := runtime.FocusChain(root)
	onChain := make(map[runtime.Focusable]bool, len(chain))
	for _, f := range chain {
		onChain[f] = true
		snap.FocusChain = append(snap.FocusChain, a.id(f))
	}
	snap.Widgets = []WidgetInfo{a.describe(root, onChain)}

	if n := len(chain); n > 0 {
		snap.FocusedID = snap.FocusChain[n-1]
		snap.Focused = findByID(snap.Widgets, snap.FocusedID)
	}
	return snap
}

// Focused returns the innermost focused widget, or nil.
func (a *Agent) Focused() *WidgetInfo {
	return a.Snapshot().Focused
}

// FindByLabel returns the first widget whose label contains label, ignoring case.
func (a *Agent) FindByLabel(label string) (*WidgetInfo, error) {
	if w := findByLabel(a.Snapshot().Widgets, strings.ToLower(label)); w != nil {
		return w, nil
	}
	return nil, fmt.Errorf("%w: label %q", ErrWidgetNotFound, label)
}

// FindByID returns the widget with the given registration ID.
func (a *Agent) FindByID(id string) (*WidgetInfo, error) {
	if w := findByID(a.Snapshot().Widgets, id); w != nil {
		return w, nil
	}
	return nil, fmt.Errorf("%w: id %s", ErrWidgetNotFound, id)
}

func (a *Agent) id(w runtime.Widget) string {
	if id, ok := a.loop.ID(w); ok {
		return id.String()
	}
	return ""
}

func (a *Agent) describe(w runtime.Widget, onChain map[runtime.Focusable]bool) WidgetInfo {
	info := WidgetInfo{
		ID:   a.id(w),
		Type: strings.TrimPrefix(fmt.Sprintf("%T", w), "*"),
		FPS:  w.FPS(),
	}
	switch v := w.(type) {
	case *widgets.Input:
		info.Value = v.Text()
	case interface{ Text() string }:
		info.Label = v.Text()
	}
	if f := w.AsFocusable(); f != nil {
		info.Focusable = f.CanFocus()
		info.Focused = onChain[f]
	}
	if parent, ok := w.(runtime.ChildProvider); ok {
		for _, child := range parent.ChildWidgets() {
			info.Children = append(info.Children, a.describe(child, onChain))
		}
	}
	return info
}

func findByLabel(list []WidgetInfo, label string) *WidgetInfo {
	for i := range list {
		w := &list[i]
		if w.Label != "" && strings.Contains(strings.ToLower(w.Label), label) {
			return w
		}
		if found := findByLabel(w.Children, label); found != nil {
			return found
		}
	}
	return nil
}

func findByID(list []WidgetInfo, id string) *WidgetInfo {
	for i := range list {
		w := &list[i]
		if w.ID == id {
			return w
		}
		if found := findByID(w.Children, id); found != nil {
			return found
		}
	}
	return nil
}

// manualClock only moves when slept.
type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Sleep(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}
