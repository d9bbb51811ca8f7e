package clock

import (
	"testing"
	"time"
)

func TestRealClock_Now(t *testing.T) {
	before := time.Now()
	actual := RealClock{}.Now()
	after := time.Now()

	if actual.Before(before) || actual.After(after) {
		t.Errorf("RealClock.Now() = %v, want between %v and %v", actual, before, after)
	}
}

func TestStepClock(t *testing.T) {
	start := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		step  time.Duration
		calls int
		want  time.Time
	}{
		{name: "first reading is start", step: time.Second, calls: 1, want: start},
		{name: "advances per call", step: time.Second, calls: 3, want: start.Add(2 * time.Second)},
		{name: "fixed clock never moves", step: 0, calls: 5, want: start},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewStepClock(start, tt.step)
			var got time.Time
			for i := 0; i < tt.calls; i++ {
				got = c.Now()
			}
			if !got.Equal(tt.want) {
				t.Errorf("Now() after %d calls = %v, want %v", tt.calls, got, tt.want)
			}
		})
	}
}

func TestElapsed(t *testing.T) {
	start := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	c := NewStepClock(start, 250*time.Millisecond)
	begin := c.Now()
	if got := Elapsed(c, begin); got != 250*time.Millisecond {
		t.Errorf("Elapsed() = %v, want 250ms", got)
	}

	fixed := NewFixedClock(start)
	if got := Elapsed(fixed, fixed.Now()); got != 0 {
		t.Errorf("Elapsed() on fixed clock = %v, want 0", got)
	}
}
