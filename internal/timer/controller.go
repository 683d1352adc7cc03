// Package timer implements the Pomodoro countdown: a work/break state machine
// that advances one second per tick and stops at every phase boundary.
//
// The Controller is a plain value with no goroutines; whoever drives it owns the
// tick source. Arm and Accept let the driver keep at most one tick in flight:
// every transition that leaves the running state invalidates the outstanding
// ticket, so a late tick from before a pause, reset or phase change is dropped.
package timer

import (
	"fmt"
	"time"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/models"
)

// Phase is either the focused work interval or the break.
type Phase int

const (
	PhaseWork Phase = iota
	PhaseBreak
)

// Duration is the full length of the phase.
func (p Phase) Duration() time.Duration {
	if p == PhaseBreak {
		return config.BreakDuration
	}
	return config.WorkDuration
}

// Seconds is Duration in whole seconds.
func (p Phase) Seconds() int {
	return int(p.Duration() / time.Second)
}

// Next returns the phase that follows p.
func (p Phase) Next() Phase {
	if p == PhaseWork {
		return PhaseBreak
	}
	return PhaseWork
}

func (p Phase) String() string {
	if p == PhaseBreak {
		return models.SessionBreak
	}
	return models.SessionWork
}

// ParsePhase accepts "work" or "break".
func ParsePhase(s string) (Phase, error) {
	switch s {
	case models.SessionWork:
		return PhaseWork, nil
	case models.SessionBreak:
		return PhaseBreak, nil
	}
	return PhaseWork, fmt.Errorf("unknown phase %q", s)
}

// State is a snapshot of the countdown.
type State struct {
	SecondsRemaining int
	Phase            Phase
	Running          bool
}

// PhaseCompleted is emitted when a phase's countdown reaches zero.
type PhaseCompleted struct {
	Phase Phase
}

// Ticket identifies one scheduled tick.
type Ticket struct {
	gen uint64
}

// Controller owns the countdown state and the single pending tick.
type Controller struct {
	state   State
	gen     uint64
	pending bool
}

// NewController returns an idle controller at the start of a work phase.
func NewController() Controller {
	return NewControllerAt(PhaseWork)
}

// NewControllerAt returns an idle controller at the start of phase p.
func NewControllerAt(p Phase) Controller {
	return Controller{state: State{SecondsRemaining: p.Seconds(), Phase: p}}
}

func (c *Controller) State() State {
	return c.state
}

// Start begins counting. It reports false when already running.
func (c *Controller) Start() bool {
	if c.state.Running {
		return false
	}
	c.state.Running = true
	return true
}

// Pause stops counting. It reports false when already paused.
func (c *Controller) Pause() bool {
	if !c.state.Running {
		return false
	}
	c.state.Running = false
	c.cancel()
	return true
}

// Reset pauses and restores the full duration of the current phase.
func (c *Controller) Reset() {
	c.state.Running = false
	c.state.SecondsRemaining = c.state.Phase.Seconds()
	c.cancel()
}

// Stop is called on teardown; no ticket issued before it is ever accepted.
func (c *Controller) Stop() {
	c.state.Running = false
	c.cancel()
}

// Tick advances the countdown by one second. When the countdown reaches zero,
// or was already zero, the phase flips, the countdown is refilled and the
// controller pauses. Ticks on a paused controller are ignored.
func (c *Controller) Tick() (PhaseCompleted, bool) {
	if !c.state.Running {
		return PhaseCompleted{}, false
	}
	if c.state.SecondsRemaining > 0 {
		c.state.SecondsRemaining--
	}
	if c.state.SecondsRemaining > 0 {
		return PhaseCompleted{}, false
	}

	done := PhaseCompleted{Phase: c.state.Phase}
	c.state.Phase = c.state.Phase.Next()
	c.state.SecondsRemaining = c.state.Phase.Seconds()
	c.state.Running = false
	c.cancel()
	return done, true
}

// Arm issues the ticket for the next tick and invalidates any earlier one.
// Nothing is armed while paused.
func (c *Controller) Arm() (Ticket, bool) {
	if !c.state.Running {
		return Ticket{}, false
	}
	c.gen++
	c.pending = true
	return Ticket{gen: c.gen}, true
}

// Accept consumes t if it is the pending ticket.
func (c *Controller) Accept(t Ticket) bool {
	if !c.pending || !c.state.Running || t.gen != c.gen {
		return false
	}
	c.pending = false
	return true
}

// Pending reports whether a ticket is outstanding.
func (c *Controller) Pending() bool {
	return c.pending
}

func (c *Controller) cancel() {
	c.pending = false
	c.gen++
}

// Display formats the remaining time.
func (c *Controller) Display() string {
	return Format(c.state.SecondsRemaining)
}

// Progress is the elapsed fraction of the current phase in [0, 1].
func (c *Controller) Progress() float64 {
	total := c.state.Phase.Seconds()
	if total == 0 {
		return 0
	}
	return float64(total-c.state.SecondsRemaining) / float64(total)
}

// Format renders seconds as zero-padded MM:SS.
func Format(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
