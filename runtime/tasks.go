package runtime

import (
	"context"
	"time"
)

// PostFunc hands a callback to the loop goroutine.
type PostFunc func(fn func())

// Task is background work bound to the loop's lifetime.
// It runs on its own goroutine; ctx is cancelled when the loop closes.
// Anything that touches widgets must go through post.
type Task func(ctx context.Context, post PostFunc)

// Go starts task. Tasks started before Start wait until the loop starts.
func (l *Loop) Go(task Task) {
	if task == nil {
		return
	}
	l.pendingMu.Lock()
	ctx := l.taskCtx
	if ctx == nil {
		l.pendingTasks = append(l.pendingTasks, task)
	}
	l.pendingMu.Unlock()
	if ctx != nil {
		l.runTask(ctx, task)
	}
}

// After runs fn on the loop goroutine once delay has passed.
func (l *Loop) After(delay time.Duration, fn func()) {
	l.Go(AfterTask(delay, fn))
}

// Every runs fn on the loop goroutine at a fixed interval until the loop closes.
func (l *Loop) Every(interval time.Duration, fn func(time.Time)) {
	l.Go(EveryTask(interval, fn))
}

// AfterTask returns a task that posts fn after delay.
func AfterTask(delay time.Duration, fn func()) Task {
	return func(ctx context.Context, post PostFunc) {
		if fn == nil {
			return
		}
		if delay <= 0 {
			post(fn)
			return
		}
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
		case <-timer.C:
			post(fn)
		}
	}
}

// EveryTask returns a task that posts fn on a fixed interval.
func EveryTask(interval time.Duration, fn func(time.Time)) Task {
	return func(ctx context.Context, post PostFunc) {
		if interval <= 0 || fn == nil {
			return
		}
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				post(func() { fn(now) })
			}
		}
	}
}

func (l *Loop) runTask(ctx context.Context, task Task) {
	go task(ctx, l.queue.Schedule)
}

// startTasks binds the task context and releases the tasks queued before
// Start. Both happen under pendingMu so a concurrent Go either queues before
// the swap or sees the context after it.
func (l *Loop) startTasks(parent context.Context) {
	ctx, cancel := context.WithCancel(parent)
	l.pendingMu.Lock()
	l.taskCtx, l.taskCancel = ctx, cancel
	tasks := l.pendingTasks
	l.pendingTasks = nil
	l.pendingMu.Unlock()
	for _, task := range tasks {
		l.runTask(ctx, task)
	}
}

func (l *Loop) cancelTasks() {
	l.pendingMu.Lock()
	cancel := l.taskCancel
	l.pendingMu.Unlock()
	if cancel != nil {
		cancel()
	}
}
