package core

// PositionToTime converts a pixel offset inside the timeline container
// to a timestamp. Ticks are drawn centered in their row, so the first
// and last rows carry a half-slot margin and the interpolation runs
// from Start+Scale/2 down to End-Scale/2. Positions outside
// [0, height] produce times outside the range; cursor drags past the
// visible area depend on that, so there is no clamping.
func PositionToTime(r *Range, position, height float64) float64 {
	top := float64(r.Start) + Scale/2
	bottom := float64(r.End) - Scale/2
	return top + (bottom-top)*(position/height)
}

// TimeToPosition converts a timestamp to a Y offset in pixels. A range
// with Start == End divides by zero; the NaN or ±Inf result is
// propagated as is rather than validated away.
func TimeToPosition(r *Range, timestamp, height float64) float64 {
	return (timestamp - float64(r.Start)) / (float64(r.End) - float64(r.Start)) * height
}
