package domain

import "time"

// Clock supplies the current instant. Services read it once per operation
// so tests can pin "now" deterministically.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
