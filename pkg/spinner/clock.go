package spinner

import "time"

// Clock supplies the time used for elapsed-time reporting.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads the monotonic system clock.
func SystemClock() Clock {
	return systemClock{}
}

// Elapsed is the time from start to now, floored to whole milliseconds.
// It is never negative.
func Elapsed(start, now time.Time) time.Duration {
	d := now.Sub(start)
	if d < 0 {
		return 0
	}

	return d.Truncate(time.Millisecond)
}
