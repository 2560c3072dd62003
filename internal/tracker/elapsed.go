package tracker

import (
	"time"

	"github.com/joaopnk/ignite-timer/internal/util"
)

// Observation is one derivation of a cycle's progress.
type Observation struct {
	Elapsed int
	Total   int
	Reached bool
}

// Remaining returns the seconds left before the target.
func (o Observation) Remaining() int {
	return o.Total - o.Elapsed
}

// TotalSeconds converts a cycle duration in minutes to its target in seconds.
func TotalSeconds(minutes int) int {
	return minutes * 60
}

// Observe derives whole elapsed seconds from wall-clock readings. Monotonic
// readings are stripped so time spent suspended still counts. The result is
// truncated, never negative, and capped at the target.
func Observe(start time.Time, minutes int, now time.Time) Observation {
	total := TotalSeconds(minutes)
	elapsed := int(now.Round(0).Sub(start.Round(0)) / time.Second)
	if total < 0 {
		total = 0
	}
	elapsed = util.Clamp(elapsed, 0, total)
	return Observation{
		Elapsed: elapsed,
		Total:   total,
		Reached: elapsed >= total,
	}
}
