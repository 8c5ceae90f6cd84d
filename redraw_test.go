package paint

import (
	"testing"
	"time"
)

// fakeClock is a manually advanced Clock.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func TestSchedulerThrottlesMoves(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	s := NewScheduler(clock, 50*time.Millisecond)

	steps := []struct {
		advance time.Duration
		want    bool
		state   RedrawState
	}{
		{0, true, RedrawIdle}, // first move always redraws
		{10 * time.Millisecond, false, RedrawSuppressed},
		{20 * time.Millisecond, false, RedrawSuppressed},
		{19 * time.Millisecond, false, RedrawSuppressed},
		{1 * time.Millisecond, true, RedrawIdle}, // exactly 50ms since the last redraw
		{49 * time.Millisecond, false, RedrawSuppressed},
		{100 * time.Millisecond, true, RedrawIdle},
	}
	for i, st := range steps {
		clock.Advance(st.advance)
		if got := s.Move(); got != st.want {
			t.Errorf("step %d: Move() = %v, want %v", i, got, st.want)
		}
		if s.State() != st.state {
			t.Errorf("step %d: State() = %v, want %v", i, s.State(), st.state)
		}
	}
}

func TestSchedulerCountsSuppressed(t *testing.T) {
	clock := &fakeClock{}
	s := NewScheduler(clock, time.Second)
	s.Move()
	for range 5 {
		s.Move()
	}
	if s.Suppressed() != 5 {
		t.Errorf("Suppressed() = %d, want 5", s.Suppressed())
	}
	s.Force()
	if s.Suppressed() != 0 || s.State() != RedrawIdle {
		t.Errorf("after Force: suppressed %d state %v", s.Suppressed(), s.State())
	}
}

func TestSchedulerForceRestartsInterval(t *testing.T) {
	clock := &fakeClock{}
	s := NewScheduler(clock, 50*time.Millisecond)
	s.Force()
	clock.Advance(30 * time.Millisecond)
	if s.Move() {
		t.Error("Move() redrew 30ms after a forced redraw")
	}
	clock.Advance(20 * time.Millisecond)
	if !s.Move() {
		t.Error("Move() did not redraw 50ms after a forced redraw")
	}
}

func TestSchedulerZeroInterval(t *testing.T) {
	s := NewScheduler(&fakeClock{}, 0)
	for i := range 3 {
		if !s.Move() {
			t.Errorf("move %d suppressed with zero interval", i)
		}
	}
}

func TestSchedulerNilClock(t *testing.T) {
	s := NewScheduler(nil, DefaultRedrawInterval)
	if !s.Move() {
		t.Error("first Move() did not redraw")
	}
}

func TestRedrawStateString(t *testing.T) {
	if RedrawIdle.String() != "idle" || RedrawSuppressed.String() != "suppressed" {
		t.Errorf("String() = %q, %q", RedrawIdle, RedrawSuppressed)
	}
}
