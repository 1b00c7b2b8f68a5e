package runtime

import "time"

// FrameStats describes one completed tick.
type FrameStats struct {
	Tick      uint64
	FPS       int
	Updates   int
	Keys      int
	Clicks    int
	Flushed   int
	Draw      DrawStats
	UpdateDur time.Duration
	RenderDur time.Duration
	DrawDur   time.Duration
}

// FrameObserver is notified after each frame is drawn.
type FrameObserver interface {
	ObserveFrame(stats FrameStats)
}

// FrameObserverFunc adapts a function into a FrameObserver.
type FrameObserverFunc func(FrameStats)

// ObserveFrame calls f.
func (f FrameObserverFunc) ObserveFrame(stats FrameStats) {
	if f != nil {
		f(stats)
	}
}
