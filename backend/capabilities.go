package backend

// RunWriter is an optional Renderer capability for writing a styled run at an
// absolute position without a separate cursor move.
type RunWriter interface {
	ShowRun(x, y int, style Style, text string)
}

// Suspender is an optional Renderer capability for handing the terminal back
// to the shell temporarily, used while a loop is paused.
type Suspender interface {
	Suspend() error
	Resume() error
}
