// Package clock supplies the time source used for journal names and run
// timing, so both can be pinned in tests.
package clock

import "time"

// Clock provides the current time.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system time.
type RealClock struct{}

// Now returns the current system time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// StepClock returns a fixed start time that moves forward by a constant
// step on every call to Now. A zero step gives a frozen clock.
type StepClock struct {
	next time.Time
	step time.Duration
}

// NewStepClock creates a StepClock starting at start.
func NewStepClock(start time.Time, step time.Duration) *StepClock {
	return &StepClock{next: start, step: step}
}

// NewFixedClock creates a clock that always reports t.
func NewFixedClock(t time.Time) *StepClock {
	return NewStepClock(t, 0)
}

// Now returns the current reading and advances the clock by one step.
func (c *StepClock) Now() time.Time {
	now := c.next
	c.next = c.next.Add(c.step)
	return now
}

// Elapsed returns the time passed since start according to c.
func Elapsed(c Clock, start time.Time) time.Duration {
	return c.Now().Sub(start)
}
