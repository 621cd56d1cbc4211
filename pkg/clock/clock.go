// Package clock provides the wall-clock collaborator used by the
// "current time" conversions. The conversion packages never read the
// system clock directly; they take a Clock so callers can substitute a
// fixed instant for testing and replay.
package clock

import "time"

// Clock supplies the current UTC instant.
type Clock interface {
	// Now returns the current instant. Implementations must return a
	// time.Time in UTC.
	Now() time.Time
}

// System returns a Clock backed by the system clock.
func System() Clock {
	return systemClock{}
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// Fixed returns a Clock frozen at t. Intended for tests and for
// reprocessing recorded data at a known instant.
func Fixed(t time.Time) Clock {
	return fixedClock{t: t.UTC()}
}

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time {
	return c.t
}
