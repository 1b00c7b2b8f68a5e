package runtime

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"log"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/odvcencio/cellframe/backend"
	"github.com/odvcencio/cellframe/state"
)

// LoopState is the lifecycle phase of a Loop.
type LoopState int32

const (
	LoopIdle LoopState = iota
	LoopRunning
	LoopPaused
	LoopStopped
)

func (s LoopState) String() string {
	switch s {
	case LoopIdle:
		return "idle"
	case LoopRunning:
		return "running"
	case LoopPaused:
		return "paused"
	case LoopStopped:
		return "stopped"
	default:
		return fmt.Sprintf("LoopState(%d)", int32(s))
	}
}

// highRateWarning is the tick rate above which the loop logs a warning.
// Large coprime widget rates multiply into very fast ticks.
const highRateWarning = 240

// LoopConfig configures a Loop. Zero values pick defaults.
type LoopConfig struct {
	Renderer backend.Renderer
	Root     Widget
	// MinFPS is the tick-rate floor. Defaults to DefaultMinFPS.
	MinFPS   int
	Clock    Clock
	Logger   *log.Logger
	Observer FrameObserver
	// Queue receives callbacks from background work and is flushed every tick.
	Queue *state.Queue
}

type registration struct {
	id     ulid.ULID
	widget Widget
}

// Loop is the single-threaded scheduler that drives a widget tree.
//
// Each tick drains input, flushes the callback queue, updates the widgets that
// are due, renders the root and draws the difference. The tick rate is derived
// from the registered widgets' FPS and recomputed after every cycle.
type Loop struct {
	renderer backend.Renderer
	root     Widget
	minFPS   int
	clock    Clock
	logger   *log.Logger
	observer FrameObserver
	queue    *state.Queue
	entropy  io.Reader

	display *Display
	regs    []registration
	state   atomic.Int32

	fps        int
	counter    int
	maxDivisor int
	cycleDone  bool
	tick       uint64

	mu       sync.Mutex
	onPause  func()
	onStop   func()
	stopping bool

	// taskCtx and taskCancel are guarded by pendingMu.
	taskCtx      context.Context
	taskCancel   context.CancelFunc
	pendingMu    sync.Mutex
	pendingTasks []Task
}

// NewLoop creates an idle loop.
func NewLoop(cfg LoopConfig) *Loop {
	clock := cfg.Clock
	if clock == nil {
		clock = wallClock{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	queue := cfg.Queue
	if queue == nil {
		queue = state.NewQueue()
	}
	minFPS := cfg.MinFPS
	if minFPS <= 0 {
		minFPS = DefaultMinFPS
	}
	return &Loop{
		renderer:  cfg.Renderer,
		root:      cfg.Root,
		minFPS:    minFPS,
		clock:     clock,
		logger:    logger,
		observer:  cfg.Observer,
		queue:     queue,
		entropy:   ulid.Monotonic(rand.Reader, 0),
		cycleDone: true,
	}
}

// State returns the current lifecycle phase. Safe for concurrent use.
func (l *Loop) State() LoopState {
	return LoopState(l.state.Load())
}

func (l *Loop) setState(s LoopState) {
	l.state.Store(int32(s))
}

// FPS returns the tick rate of the current cycle, or 0 before the first tick.
func (l *Loop) FPS() int {
	return l.fps
}

// Ticks returns the number of ticks run so far.
func (l *Loop) Ticks() uint64 {
	return l.tick
}

// Root returns the root widget.
func (l *Loop) Root() Widget {
	return l.root
}

// Renderer returns the loop's renderer.
func (l *Loop) Renderer() backend.Renderer {
	return l.renderer
}

// Display returns the display, or nil before Start.
func (l *Loop) Display() *Display {
	return l.display
}

// Logger returns the loop's logger.
func (l *Loop) Logger() *log.Logger {
	return l.logger
}

// Queue returns the callback queue flushed once per tick.
func (l *Loop) Queue() *state.Queue {
	return l.queue
}

// Scheduler returns a scheduler whose callbacks run on the loop goroutine.
func (l *Loop) Scheduler() state.Scheduler {
	return l.queue
}

// Register adds w to the loop and returns its registration ID.
// Registering a widget twice returns the existing ID.
func (l *Loop) Register(w Widget) ulid.ULID {
	if w == nil {
		return ulid.ULID{}
	}
	if id, ok := l.ID(w); ok {
		return id
	}
	id := ulid.MustNew(ulid.Timestamp(l.clock.Now()), l.entropy)
	w.OnRegistered(l)
	l.regs = append(l.regs, registration{id: id, widget: w})
	l.logger.Printf("register %T %s", w, id)
	return id
}

// Unregister removes w and reports whether it was registered.
func (l *Loop) Unregister(w Widget) bool {
	if l.indexOf(w) < 0 {
		return false
	}
	w.OnUnregistered()
	// OnUnregistered may have removed children, so look again.
	if i := l.indexOf(w); i >= 0 {
		l.regs = slices.Delete(l.regs, i, i+1)
	}
	l.logger.Printf("unregister %T", w)
	return true
}

// ID returns the registration ID of w.
func (l *Loop) ID(w Widget) (ulid.ULID, bool) {
	if i := l.indexOf(w); i >= 0 {
		return l.regs[i].id, true
	}
	return ulid.ULID{}, false
}

// Registered returns the registered widgets in registration order.
func (l *Loop) Registered() []Widget {
	out := make([]Widget, len(l.regs))
	for i, reg := range l.regs {
		out[i] = reg.widget
	}
	return out
}

func (l *Loop) indexOf(w Widget) int {
	if w == nil {
		return -1
	}
	return slices.IndexFunc(l.regs, func(reg registration) bool { return reg.widget == w })
}

// Pause asks the loop to run fn once at the start of the next tick with the
// display cleared and the renderer suspended, then resume.
func (l *Loop) Pause(fn func()) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	l.onPause = fn
	l.mu.Unlock()
}

// Stop asks the loop to exit. fn, if not nil, runs once after the renderer is
// restored. Safe for concurrent use.
func (l *Loop) Stop(fn func()) {
	l.mu.Lock()
	l.stopping = true
	l.onStop = fn
	l.mu.Unlock()
}

func (l *Loop) stopRequested() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stopping
}

func (l *Loop) takePause() func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn := l.onPause
	l.onPause = nil
	return fn
}

// Start initializes the renderer, registers the root and gives it focus.
func (l *Loop) Start(ctx context.Context) error {
	switch l.State() {
	case LoopRunning, LoopPaused:
		return ErrLoopRunning
	case LoopStopped:
		return ErrLoopStopped
	}
	if l.renderer == nil {
		return ErrNoRenderer
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := l.renderer.Init(); err != nil {
		return fmt.Errorf("init renderer: %w", err)
	}
	l.display = NewDisplay(l.renderer)
	l.setState(LoopRunning)

	if l.root != nil {
		l.Register(l.root)
		if f := l.root.AsFocusable(); f != nil {
			f.FocusChange(true)
		}
	}
	l.display.Clear()
	l.startTasks(ctx)

	w, h := l.renderer.Size()
	l.logger.Printf("loop started %dx%d", w, h)
	return nil
}

// Step runs one tick. A widget Update error is returned wrapped and leaves
// the loop running; Run treats it as fatal.
func (l *Loop) Step() error {
	switch l.State() {
	case LoopIdle:
		return ErrLoopIdle
	case LoopStopped:
		return ErrLoopStopped
	}
	if fn := l.takePause(); fn != nil {
		l.runPaused(fn)
	}
	if l.cycleDone {
		l.recomputeRate()
	}
	l.counter++
	l.tick++
	stats := FrameStats{Tick: l.tick, FPS: l.fps}

	keys := l.renderer.Keys()
	stats.Keys = len(keys)
	if l.root != nil {
		if f := l.root.AsFocusable(); f != nil {
			for _, ev := range keys {
				f.BubbleDown(ev)
			}
		}
	}
	clicks := l.renderer.Clicks()
	stats.Clicks = len(clicks)
	if ch, ok := l.root.(ClickHandler); ok {
		for _, p := range clicks {
			ch.HandleClick(p)
		}
	}
	stats.Flushed = l.queue.Flush()

	start := l.clock.Now()
	for _, reg := range slices.Clone(l.regs) {
		if l.counter%tickDivisor(l.fps, reg.widget.FPS()) != 0 {
			continue
		}
		if err := reg.widget.Update(); err != nil {
			return fmt.Errorf("update %T %s: %w", reg.widget, reg.id, err)
		}
		stats.Updates++
	}
	renderStart := l.clock.Now()
	stats.UpdateDur = renderStart.Sub(start)

	if l.root != nil {
		l.root.Render(NewRenderContext(l.display.Current(), l.renderer))
	}
	drawStart := l.clock.Now()
	stats.RenderDur = drawStart.Sub(renderStart)

	draw, err := l.display.Draw()
	if err != nil {
		return err
	}
	stats.Draw = draw
	stats.DrawDur = l.clock.Now().Sub(drawStart)

	if l.counter > l.maxDivisor {
		l.cycleDone = true
	}
	if l.observer != nil {
		l.observer.ObserveFrame(stats)
	}
	return nil
}

func (l *Loop) recomputeRate() {
	fps := make([]int, len(l.regs))
	for i, reg := range l.regs {
		fps[i] = reg.widget.FPS()
	}
	rate := TickRate(fps, l.minFPS)
	maxDivisor := 1
	for _, f := range fps {
		maxDivisor = max(maxDivisor, tickDivisor(rate, f))
	}
	if rate != l.fps {
		l.logger.Printf("tick rate %d fps (widgets: %d)", rate, len(l.regs))
		if rate > highRateWarning {
			l.logger.Printf("warning: tick rate %d fps exceeds %d", rate, highRateWarning)
		}
	}
	l.fps = rate
	l.maxDivisor = maxDivisor
	l.counter = 0
	l.cycleDone = false
}

func (l *Loop) runPaused(fn func()) {
	l.setState(LoopPaused)
	l.logger.Printf("loop paused")
	l.display.Clear()
	suspender, canSuspend := l.renderer.(backend.Suspender)
	if canSuspend {
		if err := suspender.Suspend(); err != nil {
			l.logger.Printf("suspend renderer: %v", err)
			canSuspend = false
		}
	}
	fn()
	if canSuspend {
		if err := suspender.Resume(); err != nil {
			l.logger.Printf("resume renderer: %v", err)
		}
	}
	l.display.Clear()
	l.setState(LoopRunning)
	l.logger.Printf("loop resumed")
}

// Run starts the loop and ticks it until Stop is called, a widget update
// fails, or ctx is cancelled. It returns nil after Stop and ctx.Err() after
// cancellation.
func (l *Loop) Run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := l.Start(ctx); err != nil {
		return err
	}
	defer l.Close()

	for {
		if l.stopRequested() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		start := l.clock.Now()
		if err := l.Step(); err != nil {
			return err
		}
		deadline := start.Add(time.Second / time.Duration(max(l.fps, 1)))
		for l.clock.Now().Before(deadline) {
			if l.stopRequested() || ctx.Err() != nil {
				break
			}
			l.clock.Sleep(time.Millisecond)
		}
	}
}

// Close clears the display, cancels background tasks, unregisters the root,
// restores the renderer and runs the Stop callback, if any. The loop cannot
// be restarted.
func (l *Loop) Close() {
	switch l.State() {
	case LoopStopped:
		return
	case LoopIdle:
		l.setState(LoopStopped)
		return
	}
	l.display.Clear()
	l.cancelTasks()
	if l.root != nil {
		l.Unregister(l.root)
	}
	l.renderer.Fini()
	l.setState(LoopStopped)
	l.logger.Printf("loop stopped after %d ticks", l.tick)

	l.mu.Lock()
	fn := l.onStop
	l.onStop = nil
	l.stopping = true
	l.mu.Unlock()
	if fn != nil {
		fn()
	}
}
