package timer

import (
	"sync"
	"time"
)

// MinResumeDelay is the countdown used when a resumed timer has no time left.
// Resuming with zero or negative time would refire immediately.
const MinResumeDelay = 100 * time.Microsecond

// State is the lifecycle stage of a PausableTimer.
type State uint8

const (
	Idle State = iota
	Running
	Paused
	Disposed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Disposed:
		return "disposed"
	default:
		return "unknown"
	}
}

// PausableTimer is a countdown that can be frozen and resumed without losing
// the time already elapsed. With repeat set it rearms with the original
// interval after every expiry.
type PausableTimer struct {
	mu sync.Mutex

	clock    Clock
	initial  time.Duration
	interval time.Duration
	repeat   bool
	fire     func()

	state   State
	started time.Time
	elapsed time.Duration
	handle  Stopper
	gen     uint64
}

// NewPausable configures a timer. It does not start counting until Start.
func NewPausable(clock Clock, interval time.Duration, repeat bool, fire func()) *PausableTimer {
	if clock == nil {
		clock = SystemClock{}
	}
	if fire == nil {
		fire = func() {}
	}
	return &PausableTimer{
		clock:    clock,
		initial:  interval,
		interval: interval,
		repeat:   repeat,
		fire:     fire,
	}
}

// Start begins the countdown. It is a no-op unless the timer is idle.
func (t *PausableTimer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != Idle {
		return
	}
	t.state = Running
	t.started = t.clock.Now()
	t.schedule(t.interval)
}

// Pause freezes the remaining time.
func (t *PausableTimer) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != Running {
		return
	}
	t.elapsed = t.clock.Now().Sub(t.started)
	t.cancel()
	t.state = Paused
}

// Resume continues the countdown from where Pause froze it.
func (t *PausableTimer) Resume() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != Paused {
		return
	}
	remaining := t.interval - t.elapsed
	if remaining <= 0 {
		remaining = MinResumeDelay
	}
	t.interval = remaining
	t.elapsed = 0
	t.state = Running
	t.started = t.clock.Now()
	t.schedule(remaining)
}

// Dispose stops the timer permanently. No callback fires afterwards.
func (t *PausableTimer) Dispose() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == Disposed {
		return
	}
	t.cancel()
	t.state = Disposed
}

// IsPaused reports whether the countdown is frozen.
func (t *PausableTimer) IsPaused() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state == Paused
}

// State returns the current lifecycle stage.
func (t *PausableTimer) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Remaining returns the time left before the next expiry.
func (t *PausableTimer) Remaining() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	switch t.state {
	case Running:
		return t.interval - t.clock.Now().Sub(t.started)
	case Paused:
		return t.interval - t.elapsed
	case Idle:
		return t.interval
	default:
		return 0
	}
}

// schedule must be called with mu held.
func (t *PausableTimer) schedule(d time.Duration) {
	t.gen++
	gen := t.gen
	t.handle = t.clock.AfterFunc(d, func() { t.expire(gen) })
}

// cancel must be called with mu held.
func (t *PausableTimer) cancel() {
	t.gen++
	if t.handle != nil {
		t.handle.Stop()
		t.handle = nil
	}
}

func (t *PausableTimer) expire(gen uint64) {
	t.mu.Lock()
	if gen != t.gen || t.state != Running {
		t.mu.Unlock()
		return
	}
	t.handle = nil
	if t.repeat {
		t.interval = t.initial
		t.started = t.clock.Now()
	} else {
		t.interval = t.initial
		t.state = Idle
	}
	t.mu.Unlock()

	t.fire()

	if !t.repeat {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	// Pause, Dispose or a restart during fire bumps gen.
	if gen == t.gen && t.state == Running {
		next := t.interval - t.clock.Now().Sub(t.started)
		if next <= 0 {
			next = MinResumeDelay
		}
		t.schedule(next)
	}
}
