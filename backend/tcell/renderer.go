// Package tcell implements backend.Renderer on a tcell screen.
package tcell

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/odvcencio/cellframe/backend"
	"github.com/odvcencio/cellframe/terminal"
)

const eventBuffer = 256

// Renderer draws to a tcell screen.
//
// A goroutine started by Init polls the screen and feeds a buffered channel;
// Keys and Clicks drain it without blocking.
type Renderer struct {
	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}
	wg     sync.WaitGroup

	cursor  backend.Point
	keys    []terminal.KeyEvent
	clicks  []backend.Point
	pressed tcell.ButtonMask
}

// New creates a renderer on the terminal.
func New() (*Renderer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(screen), nil
}

// NewWithScreen wraps an existing screen, such as tcell.NewSimulationScreen.
func NewWithScreen(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Screen returns the underlying tcell screen.
func (r *Renderer) Screen() tcell.Screen {
	return r.screen
}

// Init initializes the screen, enables mouse input and starts polling.
func (r *Renderer) Init() error {
	if err := r.screen.Init(); err != nil {
		return err
	}
	r.screen.EnableMouse()
	r.screen.HideCursor()
	r.events = make(chan tcell.Event, eventBuffer)
	r.done = make(chan struct{})
	r.wg.Add(1)
	go r.poll()
	return nil
}

// Fini restores the terminal and waits for the poller to exit.
func (r *Renderer) Fini() {
	if r.done == nil {
		return
	}
	close(r.done)
	r.screen.Fini()
	r.wg.Wait()
	r.done = nil
}

func (r *Renderer) poll() {
	defer r.wg.Done()
	for {
		ev := r.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case r.events <- ev:
		case <-r.done:
			return
		}
	}
}

// Suspend hands the terminal back to the shell.
func (r *Renderer) Suspend() error {
	return r.screen.Suspend()
}

// Resume takes the terminal back after Suspend.
func (r *Renderer) Resume() error {
	return r.screen.Resume()
}

// Size returns the screen size.
func (r *Renderer) Size() (int, int) {
	return r.screen.Size()
}

// Cursor returns the write position.
func (r *Renderer) Cursor() backend.Point {
	return r.cursor
}

// SetCursor moves the write position.
func (r *Renderer) SetCursor(p backend.Point) {
	r.cursor = p
}

// BeginShow hides the cursor while the frame is written.
func (r *Renderer) BeginShow() {
	r.screen.HideCursor()
}

// EndShow shows the cursor where it was left and flushes the frame.
func (r *Renderer) EndShow() {
	r.screen.ShowCursor(r.cursor.X, r.cursor.Y)
	r.screen.Show()
}

// ShowString writes text at the cursor and advances it one column per rune.
func (r *Renderer) ShowString(style backend.Style, text string) {
	r.cursor.X = r.put(r.cursor.X, r.cursor.Y, style, text)
}

// ShowRun writes text at x, y without moving the cursor.
func (r *Renderer) ShowRun(x, y int, style backend.Style, text string) {
	r.put(x, y, style, text)
}

func (r *Renderer) put(x, y int, style backend.Style, text string) int {
	st := toStyle(style)
	blank := style.Foreground == backend.ColorTransparent
	for _, ch := range text {
		switch {
		case blank:
			r.screen.SetContent(x, y, ' ', nil, st)
		case ch != backend.WideTail:
			r.screen.SetContent(x, y, ch, nil, st)
		}
		x++
	}
	return x
}

// Reset clears the screen and homes the cursor.
func (r *Renderer) Reset() {
	r.screen.Clear()
	r.cursor = backend.Point{}
}

// Keys returns key events received since the last call.
func (r *Renderer) Keys() []terminal.KeyEvent {
	r.drain()
	keys := r.keys
	r.keys = nil
	return keys
}

// Clicks returns primary-button presses received since the last call.
func (r *Renderer) Clicks() []backend.Point {
	r.drain()
	clicks := r.clicks
	r.clicks = nil
	return clicks
}

func (r *Renderer) drain() {
	for {
		select {
		case ev := <-r.events:
			r.handle(ev)
		default:
			return
		}
	}
}

func (r *Renderer) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if key, ok := translateKey(ev); ok {
			r.keys = append(r.keys, key)
		}
	case *tcell.EventMouse:
		buttons := ev.Buttons()
		if buttons&tcell.Button1 != 0 && r.pressed&tcell.Button1 == 0 {
			x, y := ev.Position()
			r.clicks = append(r.clicks, backend.Point{X: x, Y: y})
		}
		r.pressed = buttons
	case *tcell.EventResize:
		r.screen.Sync()
	}
}
