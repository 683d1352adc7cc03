package timer

import (
	"sync"
	"time"

	"github.com/akyairhashvil/pomo/internal/config"
)

// Runner drives a Controller from a Clock. It holds at most one live timer
// handle and stops it before scheduling another.
type Runner struct {
	mu     sync.Mutex
	cbMu   sync.Mutex
	ctrl   Controller
	clock  Clock
	handle Handle
	closed bool

	onTick     func(State)
	onComplete func(PhaseCompleted)
}

type RunnerOption func(*Runner)

func WithClock(c Clock) RunnerOption {
	return func(r *Runner) { r.clock = c }
}

func WithPhase(p Phase) RunnerOption {
	return func(r *Runner) { r.ctrl = NewControllerAt(p) }
}

// OnTick is called after every accepted tick with the new state.
func OnTick(f func(State)) RunnerOption {
	return func(r *Runner) { r.onTick = f }
}

// OnComplete is called once per finished phase, after OnTick.
func OnComplete(f func(PhaseCompleted)) RunnerOption {
	return func(r *Runner) { r.onComplete = f }
}

func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{ctrl: NewController(), clock: SystemClock}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Runner) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	if r.ctrl.Start() {
		r.scheduleLocked()
	}
}

func (r *Runner) Pause() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ctrl.Pause()
	r.cancelLocked()
}

func (r *Runner) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ctrl.Reset()
	r.cancelLocked()
}

// Stop tears the runner down. Later Start calls are ignored.
func (r *Runner) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	r.ctrl.Stop()
	r.cancelLocked()
}

func (r *Runner) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ctrl.State()
}

func (r *Runner) Now() time.Time {
	return r.clock.Now()
}

func (r *Runner) scheduleLocked() {
	r.cancelLocked()
	t, ok := r.ctrl.Arm()
	if !ok {
		return
	}
	r.handle = r.clock.AfterFunc(config.TickInterval, func() { r.fire(t) })
}

func (r *Runner) cancelLocked() {
	if r.handle != nil {
		r.handle.Stop()
		r.handle = nil
	}
}

func (r *Runner) fire(t Ticket) {
	// Callbacks run in tick order and may call back into the runner.
	r.cbMu.Lock()
	defer r.cbMu.Unlock()

	r.mu.Lock()
	if r.closed || !r.ctrl.Accept(t) {
		r.mu.Unlock()
		return
	}
	r.handle = nil
	done, completed := r.ctrl.Tick()
	state := r.ctrl.State()
	if state.Running {
		r.scheduleLocked()
	}
	onTick, onComplete := r.onTick, r.onComplete
	r.mu.Unlock()
	if onTick != nil {
		onTick(state)
	}
	if completed && onComplete != nil {
		onComplete(done)
	}
}
