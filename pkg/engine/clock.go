package engine

import "time"

// Clock is the loop's source of wall-clock time
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type realClock struct{}

// RealClock returns a Clock backed by the time package
func RealClock() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) Sleep(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}

// Limiter caps the loop rate: Wait sleeps until at least one frame
// duration has passed since the previous Wait returned.
type Limiter struct {
	clock Clock
	frame time.Duration
	last  time.Time
}

// NewLimiter creates a Limiter for frames of the given duration. A zero
// duration never sleeps.
func NewLimiter(clock Clock, frame time.Duration) *Limiter {
	return &Limiter{clock: clock, frame: frame}
}

// Wait blocks for the rest of the current frame and returns the time
// elapsed since the previous call. The first call returns zero at once.
func (l *Limiter) Wait() time.Duration {
	now := l.clock.Now()
	if l.last.IsZero() {
		l.last = now
		return 0
	}

	if elapsed := now.Sub(l.last); elapsed < l.frame {
		l.clock.Sleep(l.frame - elapsed)
		now = l.clock.Now()
	}

	elapsed := now.Sub(l.last)
	l.last = now
	return elapsed
}
