package spacedrep

import "time"

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the wall clock.
var SystemClock Clock = ClockFunc(time.Now)

// Rand picks uniformly from [0, n). *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}
