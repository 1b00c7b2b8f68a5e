package widgets

import (
	"testing"

	"github.com/odvcencio/cellframe/runtime"
	"github.com/odvcencio/cellframe/state"
)

func TestSignalLabel_LifecycleQueue(t *testing.T) {
	sig := state.NewSignal("start")
	queue := state.NewQueue()
	loop := runtime.NewLoop(runtime.LoopConfig{Queue: queue})
	label := NewSignalLabel(sig)

	loop.Register(label)
	if label.Text() != "start" {
		t.Fatalf("expected initial text start, got %q", label.Text())
	}

	sig.Set("next")
	if label.Text() != "start" {
		t.Fatalf("expected text to update after flush, got %q", label.Text())
	}
	if flushed := queue.Flush(); flushed != 1 {
		t.Fatalf("expected 1 queued callback, got %d", flushed)
	}
	if label.Text() != "next" {
		t.Fatalf("expected updated text next, got %q", label.Text())
	}

	loop.Unregister(label)
	sig.Set("final")
	if flushed := queue.Flush(); flushed != 0 {
		t.Fatalf("expected no queued callbacks after unregister, got %d", flushed)
	}
	if label.Text() != "next" {
		t.Fatalf("expected text to remain next after unregister, got %q", label.Text())
	}
}
