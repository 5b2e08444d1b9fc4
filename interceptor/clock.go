package interceptor

import "time"

// Clock supplies the timestamps taken around each call. Readings must be
// comparable with time.Time.Sub; the system clock's readings carry the
// monotonic clock, so wall clock adjustments do not affect elapsed times.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}
