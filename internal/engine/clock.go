package engine

import "time"

// Clock abstracts time.Now() to allow deterministic testing.
// Every operation that depends on "today" (ages, birthday countdowns,
// age ranges) reads the current date through it.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}
