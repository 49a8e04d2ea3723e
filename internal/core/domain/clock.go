package domain

import "time"

// Clock supplies the current instant. Injected so the due-run processor can be
// tested against a fixed reference time.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock, reporting UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
