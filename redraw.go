package paint

import "time"

// DefaultRedrawInterval is the minimum time between display refreshes while
// a stroke is in progress.
const DefaultRedrawInterval = 50 * time.Millisecond

// Clock abstracts wall time so redraw throttling can be tested without
// sleeping.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time { return time.Now() }

// RedrawState is the state of a Scheduler.
type RedrawState uint8

const (
	// RedrawIdle means the display shows the latest redraw and no move event
	// has been skipped since.
	RedrawIdle RedrawState = iota
	// RedrawSuppressed means at least one move event skipped its redraw.
	RedrawSuppressed
)

// String returns the state name.
func (s RedrawState) String() string {
	if s == RedrawSuppressed {
		return "suppressed"
	}
	return "idle"
}

// Scheduler rate-limits display refreshes during a stroke. It only decides
// whether to composite; pixel writes into layers are never skipped.
type Scheduler struct {
	clock      Clock
	interval   time.Duration
	last       time.Time
	drawn      bool
	state      RedrawState
	suppressed int
}

// NewScheduler returns a scheduler that allows at most one move-triggered
// redraw per interval. A nil clock uses SystemClock.
func NewScheduler(clock Clock, interval time.Duration) *Scheduler {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Scheduler{clock: clock, interval: interval}
}

// Interval returns the minimum time between move-triggered redraws.
func (s *Scheduler) Interval() time.Duration { return s.interval }

// State returns the current state.
func (s *Scheduler) State() RedrawState { return s.state }

// Suppressed returns how many move events skipped their redraw since the
// last redraw.
func (s *Scheduler) Suppressed() int { return s.suppressed }

// Move is called for each pointer move during a stroke. It reports whether
// the caller should redraw now. A true result counts as a redraw.
func (s *Scheduler) Move() bool {
	now := s.clock.Now()
	if !s.drawn || now.Sub(s.last) >= s.interval {
		s.record(now)
		return true
	}
	s.state = RedrawSuppressed
	s.suppressed++
	return false
}

// Force records an unconditional redraw, as done on pointer up, load,
// resize and layer changes.
func (s *Scheduler) Force() {
	s.record(s.clock.Now())
}

func (s *Scheduler) record(now time.Time) {
	if s.suppressed > 0 {
		Logger().Debug("redraw after suppression", "skipped", s.suppressed)
	}
	s.last = now
	s.drawn = true
	s.state = RedrawIdle
	s.suppressed = 0
}
