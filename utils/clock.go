// File: utils/clock.go
package utils

import "time"

// Clock supplies "today" so the reservation timeline can be evaluated
// deterministically in tests and previewed at arbitrary dates by admins.
type Clock interface {
	Today() time.Time
}

// SystemClock reports the actual calendar date, truncated to UTC midnight.
type SystemClock struct{}

func (SystemClock) Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// FixedClock always reports the same date. Used by tests and by the
// today-override request path outside production.
type FixedClock struct {
	Date time.Time
}

func (c FixedClock) Today() time.Time {
	return c.Date
}
