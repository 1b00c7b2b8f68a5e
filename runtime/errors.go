package runtime

import "errors"

var (
	// ErrSizeMismatch is returned when two canvases of different sizes are compared.
	ErrSizeMismatch = errors.New("canvas size mismatch")
	// ErrOutOfRange marks a negative local coordinate passed to a RenderContext write.
	ErrOutOfRange = errors.New("coordinate out of range")
	// ErrNoRenderer is returned when a loop starts without a renderer.
	ErrNoRenderer = errors.New("renderer is required")
	// ErrLoopRunning is returned when starting a loop that is already running.
	ErrLoopRunning = errors.New("loop already running")
	// ErrLoopStopped is returned when starting or stepping a loop that has stopped.
	ErrLoopStopped = errors.New("loop stopped")
	// ErrLoopIdle is returned when stepping a loop that was never started.
	ErrLoopIdle = errors.New("loop not started")
	// ErrNotChild is returned when focusing a widget the container does not own.
	ErrNotChild = errors.New("widget is not a child of this container")
)
