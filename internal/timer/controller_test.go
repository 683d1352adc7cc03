package timer

import "testing"

func checkBounds(t *testing.T, s State) {
	t.Helper()
	if s.SecondsRemaining < 0 || s.SecondsRemaining > s.Phase.Seconds() {
		t.Fatalf("seconds remaining %d out of range for %v", s.SecondsRemaining, s.Phase)
	}
}

func TestNewControllerDefaults(t *testing.T) {
	c := NewController()
	s := c.State()
	if s.Phase != PhaseWork || s.SecondsRemaining != 1500 || s.Running {
		t.Fatalf("unexpected initial state %+v", s)
	}
	if c.Pending() {
		t.Fatalf("expected no pending tick")
	}
}

func TestStartPauseAreIdempotent(t *testing.T) {
	c := NewController()
	if !c.Start() {
		t.Fatalf("first Start should change state")
	}
	if c.Start() {
		t.Fatalf("second Start should be a no-op")
	}
	if !c.Pause() {
		t.Fatalf("first Pause should change state")
	}
	if c.Pause() {
		t.Fatalf("second Pause should be a no-op")
	}
	if got := c.State().SecondsRemaining; got != 1500 {
		t.Fatalf("start then pause changed countdown to %d", got)
	}
}

func TestTickIgnoredWhilePaused(t *testing.T) {
	c := NewController()
	if _, done := c.Tick(); done {
		t.Fatalf("paused tick must not complete")
	}
	if got := c.State().SecondsRemaining; got != 1500 {
		t.Fatalf("paused tick changed countdown to %d", got)
	}
}

func TestFullWorkPhase(t *testing.T) {
	c := NewController()
	c.Start()
	completions := 0
	var last PhaseCompleted
	for i := 0; i < 1500; i++ {
		if ev, done := c.Tick(); done {
			completions++
			last = ev
		}
		checkBounds(t, c.State())
	}
	s := c.State()
	if s.Phase != PhaseBreak || s.SecondsRemaining != 300 || s.Running {
		t.Fatalf("expected (Break, 300, paused), got %+v", s)
	}
	if completions != 1 || last.Phase != PhaseWork {
		t.Fatalf("expected exactly one PhaseCompleted(Work), got %d %+v", completions, last)
	}
}

func TestFullBreakPhaseReturnsToWork(t *testing.T) {
	c := NewControllerAt(PhaseBreak)
	c.Start()
	var ev PhaseCompleted
	var done bool
	for i := 0; i < 300; i++ {
		ev, done = c.Tick()
	}
	if !done || ev.Phase != PhaseBreak {
		t.Fatalf("expected break completion on the last tick, got %v %+v", done, ev)
	}
	if s := c.State(); s.Phase != PhaseWork || s.SecondsRemaining != 1500 || s.Running {
		t.Fatalf("expected (Work, 1500, paused), got %+v", s)
	}
}

func TestTickAtZeroCompletes(t *testing.T) {
	c := NewController()
	c.state.SecondsRemaining = 0
	c.Start()
	ev, done := c.Tick()
	if !done || ev.Phase != PhaseWork {
		t.Fatalf("tick at zero should complete the phase, got %v %+v", done, ev)
	}
	if s := c.State(); s.Phase != PhaseBreak || s.SecondsRemaining != 300 || s.Running {
		t.Fatalf("unexpected state %+v", s)
	}
}

func TestResetFromAnyState(t *testing.T) {
	cases := []struct {
		name  string
		setup func(*Controller)
	}{
		{"idle work", func(c *Controller) {}},
		{"running work", func(c *Controller) { c.Start(); c.Tick(); c.Tick() }},
		{"paused work", func(c *Controller) { c.Start(); c.Tick(); c.Pause() }},
		{"running break", func(c *Controller) {
			c.Start()
			for i := 0; i < 1500; i++ {
				c.Tick()
			}
			c.Start()
			c.Tick()
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewController()
			tc.setup(&c)
			phase := c.State().Phase
			c.Reset()
			s := c.State()
			if s.Running || s.Phase != phase || s.SecondsRemaining != phase.Seconds() {
				t.Fatalf("unexpected state after reset %+v", s)
			}
			if c.Pending() {
				t.Fatalf("reset must cancel the pending tick")
			}
		})
	}
}

func TestTicketLifecycle(t *testing.T) {
	c := NewController()
	if _, ok := c.Arm(); ok {
		t.Fatalf("paused controller must not arm")
	}
	c.Start()
	first, ok := c.Arm()
	if !ok || !c.Pending() {
		t.Fatalf("expected armed ticket")
	}
	second, _ := c.Arm()
	if c.Accept(first) {
		t.Fatalf("superseded ticket must be rejected")
	}
	if !c.Accept(second) {
		t.Fatalf("current ticket must be accepted")
	}
	if c.Accept(second) {
		t.Fatalf("ticket must only be accepted once")
	}

	third, _ := c.Arm()
	c.Pause()
	c.Start()
	if c.Accept(third) {
		t.Fatalf("ticket issued before pause must be rejected")
	}

	fourth, _ := c.Arm()
	c.Reset()
	c.Start()
	if c.Accept(fourth) {
		t.Fatalf("ticket issued before reset must be rejected")
	}

	c.state.SecondsRemaining = 1
	fifth, _ := c.Arm()
	c.Tick()
	c.Start()
	if c.Accept(fifth) {
		t.Fatalf("ticket issued before a phase change must be rejected")
	}

	sixth, _ := c.Arm()
	c.Stop()
	if c.Accept(sixth) || c.Pending() {
		t.Fatalf("stop must cancel the pending ticket")
	}
}

func TestFormat(t *testing.T) {
	cases := map[int]string{
		0:    "00:00",
		1500: "25:00",
		65:   "01:05",
		300:  "05:00",
		59:   "00:59",
		-3:   "00:00",
	}
	for in, want := range cases {
		if got := Format(in); got != want {
			t.Fatalf("Format(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestProgress(t *testing.T) {
	c := NewControllerAt(PhaseBreak)
	if c.Progress() != 0 {
		t.Fatalf("expected zero progress")
	}
	c.Start()
	for i := 0; i < 150; i++ {
		c.Tick()
	}
	if got := c.Progress(); got != 0.5 {
		t.Fatalf("expected half progress, got %v", got)
	}
	if c.Display() != "02:30" {
		t.Fatalf("unexpected display %q", c.Display())
	}
}

func TestParsePhase(t *testing.T) {
	if p, err := ParsePhase("break"); err != nil || p != PhaseBreak {
		t.Fatalf("ParsePhase(break) = %v, %v", p, err)
	}
	if _, err := ParsePhase("nap"); err == nil {
		t.Fatalf("expected error for unknown phase")
	}
	if PhaseWork.String() != "work" || PhaseBreak.Next() != PhaseWork {
		t.Fatalf("unexpected phase helpers")
	}
}
