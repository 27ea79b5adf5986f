package clock

import "time"

// Clock allows injecting time in domain/services.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// NewSystem returns a clock backed by time.Now.
func NewSystem() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

type fixedClock struct {
	now time.Time
}

// NewFixed returns a clock that always returns the same instant (useful for tests).
func NewFixed(t time.Time) Clock {
	return fixedClock{now: t.UTC()}
}

func (f fixedClock) Now() time.Time {
	return f.now
}

type steppingClock struct {
	now  time.Time
	step time.Duration
}

// NewStepping returns a clock that advances by step on every read, so
// consecutive timestamps are strictly increasing (useful for tests that
// compare creation and cancellation times).
func NewStepping(start time.Time, step time.Duration) Clock {
	return &steppingClock{now: start.UTC(), step: step}
}

func (s *steppingClock) Now() time.Time {
	t := s.now
	s.now = s.now.Add(s.step)
	return t
}
