package core

import "math"

// Scale is the timeline granularity: the number of seconds covered by
// one slot of the virtual list.
const Scale = 60

// ExtraTicks is how many empty future slots are reserved above "now" so
// the live timeline has room to scroll.
const ExtraTicks = 10

// RoundUpToScale rounds a duration in seconds up to the nearest
// multiple of Scale.
func RoundUpToScale(seconds int64) int64 {
	return int64(math.Ceil(float64(seconds)/Scale)) * Scale
}
