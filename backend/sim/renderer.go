// Package sim provides an in-memory Renderer for tests and headless drivers.
package sim

import (
	"strings"
	"sync"

	"github.com/odvcencio/cellframe/backend"
	"github.com/odvcencio/cellframe/terminal"
)

// Op names a recorded renderer call.
type Op string

const (
	OpBeginShow  Op = "begin"
	OpEndShow    Op = "end"
	OpShowString Op = "show"
	OpReset      Op = "reset"
	OpSetCursor  Op = "cursor"
)

// Call is one recorded renderer call.
type Call struct {
	Op    Op
	At    backend.Point
	Style backend.Style
	Text  string
}

// Renderer keeps a character grid in memory and serves scripted input.
// Input may be pushed from any goroutine.
type Renderer struct {
	mu      sync.Mutex
	width   int
	height  int
	runes   [][]rune
	styles  [][]backend.Style
	cursor  backend.Point
	keys    []terminal.KeyEvent
	clicks  []backend.Point
	calls   []Call
	inFrame bool

	// InitErr is returned from Init when set.
	InitErr error

	inits    int
	finis    int
	suspends int
	resumes  int
}

// New creates a renderer of the given size.
func New(width, height int) *Renderer {
	r := &Renderer{}
	r.Resize(width, height)
	return r
}

// Resize changes the device size and blanks it.
func (r *Renderer) Resize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.width = max(width, 0)
	r.height = max(height, 0)
	r.blank()
}

func (r *Renderer) blank() {
	r.runes = make([][]rune, r.height)
	r.styles = make([][]backend.Style, r.height)
	for y := range r.runes {
		r.runes[y] = []rune(strings.Repeat(" ", r.width))
		r.styles[y] = make([]backend.Style, r.width)
		for x := range r.styles[y] {
			r.styles[y][x] = backend.DefaultStyle()
		}
	}
}

// Init records the call and returns InitErr.
func (r *Renderer) Init() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inits++
	return r.InitErr
}

// Fini records the call.
func (r *Renderer) Fini() {
	r.mu.Lock()
	r.finis++
	r.mu.Unlock()
}

// Suspend records the call.
func (r *Renderer) Suspend() error {
	r.mu.Lock()
	r.suspends++
	r.mu.Unlock()
	return nil
}

// Resume records the call.
func (r *Renderer) Resume() error {
	r.mu.Lock()
	r.resumes++
	r.mu.Unlock()
	return nil
}

// Size returns the device size.
func (r *Renderer) Size() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.width, r.height
}

// Cursor returns the cursor position.
func (r *Renderer) Cursor() backend.Point {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cursor
}

// SetCursor moves the cursor.
func (r *Renderer) SetCursor(p backend.Point) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cursor = p
	r.record(Call{Op: OpSetCursor, At: p})
}

// BeginShow marks the start of a frame.
func (r *Renderer) BeginShow() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inFrame = true
	r.record(Call{Op: OpBeginShow})
}

// EndShow marks the end of a frame.
func (r *Renderer) EndShow() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inFrame = false
	r.record(Call{Op: OpEndShow})
}

// ShowString writes text at the cursor and advances it, wrapping at the right edge.
func (r *Renderer) ShowString(style backend.Style, text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record(Call{Op: OpShowString, At: r.cursor, Style: style, Text: text})
	if style.Background == backend.ColorTransparent {
		style.Background = backend.ColorDefault
	}
	blank := style.Foreground == backend.ColorTransparent
	for _, ch := range text {
		if blank {
			ch = ' '
		}
		x, y := r.cursor.X, r.cursor.Y
		if x >= 0 && y >= 0 && x < r.width && y < r.height {
			r.runes[y][x] = ch
			r.styles[y][x] = style
		}
		r.cursor.X++
		if r.cursor.X >= r.width {
			r.cursor.X = 0
			r.cursor.Y++
		}
	}
}

// Reset blanks the grid and homes the cursor.
func (r *Renderer) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.blank()
	r.cursor = backend.Point{}
	r.record(Call{Op: OpReset})
}

// Keys returns and clears pending key events.
func (r *Renderer) Keys() []terminal.KeyEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	keys := r.keys
	r.keys = nil
	return keys
}

// Clicks returns and clears pending clicks.
func (r *Renderer) Clicks() []backend.Point {
	r.mu.Lock()
	defer r.mu.Unlock()
	clicks := r.clicks
	r.clicks = nil
	return clicks
}

// PushKeys queues key events for the next Keys call.
func (r *Renderer) PushKeys(events ...terminal.KeyEvent) {
	r.mu.Lock()
	r.keys = append(r.keys, events...)
	r.mu.Unlock()
}

// PushClicks queues clicks for the next Clicks call.
func (r *Renderer) PushClicks(points ...backend.Point) {
	r.mu.Lock()
	r.clicks = append(r.clicks, points...)
	r.mu.Unlock()
}

// Line returns row y of the grid, or "" when out of range.
func (r *Renderer) Line(y int) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if y < 0 || y >= r.height {
		return ""
	}
	return visible(r.runes[y])
}

// Text returns the grid as newline-separated rows with trailing spaces trimmed.
func (r *Renderer) Text() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	lines := make([]string, r.height)
	for y, row := range r.runes {
		lines[y] = strings.TrimRight(visible(row), " ")
	}
	return strings.Join(lines, "\n")
}

// StyleAt returns the style shown at x, y.
func (r *Renderer) StyleAt(x, y int) (backend.Style, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return backend.Style{}, false
	}
	return r.styles[y][x], true
}

// Calls returns the recorded calls.
func (r *Renderer) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

// ClearCalls forgets recorded calls.
func (r *Renderer) ClearCalls() {
	r.mu.Lock()
	r.calls = nil
	r.mu.Unlock()
}

// Count returns how many recorded calls have op.
func (r *Renderer) Count(op Op) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// InFrame reports whether BeginShow was called without a matching EndShow.
func (r *Renderer) InFrame() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.inFrame
}

// Lifecycle returns how many times Init, Fini, Suspend and Resume were called.
func (r *Renderer) Lifecycle() (inits, finis, suspends, resumes int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.inits, r.finis, r.suspends, r.resumes
}

func (r *Renderer) record(c Call) {
	r.calls = append(r.calls, c)
}

// visible drops the WideTail columns so a row reads as the text it shows.
func visible(row []rune) string {
	var b strings.Builder
	for _, ch := range row {
		if ch != backend.WideTail {
			b.WriteRune(ch)
		}
	}
	return b.String()
}
