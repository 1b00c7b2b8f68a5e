package backend

import "github.com/odvcencio/cellframe/terminal"

// WideTail fills the second column of a double-width rune in a run of text.
const WideTail rune = 0

// Point is a column/row position on the device.
type Point struct {
	X, Y int
}

// Renderer turns styled text into visible output and serves buffered input.
//
// All methods are called from the loop goroutine. Keys and Clicks must not
// block: they return whatever input has already arrived, possibly nothing.
type Renderer interface {
	// Init prepares the device. Called once when the loop starts.
	Init() error
	// Fini restores the device. Called once when the loop stops.
	Fini()

	// Size returns the device dimensions in cells.
	Size() (width, height int)

	CursorDevice

	// BeginShow and EndShow bracket one frame of ShowString calls.
	BeginShow()
	EndShow()

	// ShowString writes text at the cursor and advances it one column per
	// rune. A WideTail rune marks the column covered by the double-width rune
	// before it and is not drawn.
	// A transparent foreground renders the run as spaces; a transparent
	// background falls back to the ambient default.
	ShowString(style Style, text string)

	// Reset clears device content and state.
	Reset()

	// Keys returns pending key events in arrival order.
	Keys() []terminal.KeyEvent
	// Clicks returns pending pointer presses in arrival order.
	Clicks() []Point
}

// CursorDevice exposes the device cursor.
type CursorDevice interface {
	Cursor() Point
	SetCursor(p Point)
}
