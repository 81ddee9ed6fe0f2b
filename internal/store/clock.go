package store

import "time"

// Clock abstracts time.Now() to allow deterministic testing.
// The store uses it for "today" resolution, day-transition detection, and
// timestamping journal and charity writes.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}
