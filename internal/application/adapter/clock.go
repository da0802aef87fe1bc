// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "time"

// Clock supplies the current time to use cases that apply date rules.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns the current local time. The current budget month follows the
// server's time zone.
func (SystemClock) Now() time.Time {
	return time.Now()
}
