package widgets

import (
	"github.com/odvcencio/cellframe/runtime"
	"github.com/odvcencio/cellframe/state"
)

// SignalLabel is a label bound to a signal.
// It subscribes when registered with a loop, through the loop's scheduler so
// the text only changes on the loop goroutine, and releases the subscription
// when unregistered.
type SignalLabel struct {
	Label
	source state.Readable[string]
	subs   state.Subscriptions
}

// NewSignalLabel creates a label showing source.
func NewSignalLabel(source state.Readable[string]) *SignalLabel {
	s := &SignalLabel{source: source}
	s.Label = *NewLabel("")
	if source != nil {
		s.SetText(source.Get())
	}
	return s
}

// OnRegistered subscribes to the source.
func (s *SignalLabel) OnRegistered(loop *runtime.Loop) {
	if s.source == nil {
		return
	}
	s.subs.SetScheduler(loop.Scheduler())
	s.subs.Observe(s.source, s.refresh)
	s.refresh()
}

// OnUnregistered releases the subscription.
func (s *SignalLabel) OnUnregistered() {
	s.subs.Clear()
}

func (s *SignalLabel) refresh() {
	if text := s.source.Get(); text != s.Text() {
		s.SetText(text)
	}
}
