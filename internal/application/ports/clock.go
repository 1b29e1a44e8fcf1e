package ports

import "time"

// Clock supplies the current time so the core stays testable without
// wall-clock coupling.
type Clock interface {
	Now() time.Time
}

// UTCClock is the production Clock.
type UTCClock struct{}

// Now returns the current time in UTC.
func (UTCClock) Now() time.Time { return time.Now().UTC() }
