package engine

import "time"

// Clock abstracts time.Now so "today" is deterministic in tests. The
// Generator uses it to stamp events, find transitions happening today and
// locate the active period of each chart.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}
