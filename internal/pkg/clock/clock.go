package clock

import "time"

// Clock supplies the current instant. The hours engine never reads the wall
// clock directly; callers inject a Clock so results are reproducible.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// System returns a Clock backed by the wall clock.
func System() Clock {
	return systemClock{}
}

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time {
	return c.t
}

// Fixed returns a Clock frozen at t. Used in tests and replays.
func Fixed(t time.Time) Clock {
	return fixedClock{t: t}
}
