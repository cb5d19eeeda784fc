package lruk

import "time"

// Clock supplies the monotonically non-decreasing timestamps RecordAccess
// stamps onto a frame's history.
type Clock interface {
	Now() int64
}

// System is the default Clock: coarse, seconds-granularity wall-clock
// time, matching the original's time(&timestamp) call. Multiple
// RecordAccess calls within the same second share a timestamp; ordering
// among them then falls back to arrival order via move-to-tail-on-touch.
var System Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() int64 { return time.Now().Unix() }

// CounterClock is a monotonic counter Clock for deterministic tests: each
// call to Now returns a strictly increasing value. spec.md §9 explicitly
// sanctions substituting a per-call counter for wall-clock seconds when
// the substitution is documented and held consistently, which is what
// NewWithClock is for.
type CounterClock struct {
	n int64
}

func (c *CounterClock) Now() int64 {
	c.n++
	return c.n
}
