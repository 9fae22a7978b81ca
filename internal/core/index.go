package core

import (
	"math"
	"time"
)

// SlotTime returns the timestamp of the slot at the given index. Slot 0
// is the range start; each following slot steps Scale seconds back in
// time.
func SlotTime(r *Range, index int) int64 {
	return r.Start - int64(index)*Scale
}

// SlotIndex maps a timestamp to its nearest slot index. A nil timestamp
// means the current time. Exact midpoints resolve by standard half-up
// rounding.
func SlotIndex(r *Range, timestamp *int64) int {
	ts := time.Now().Unix()
	if timestamp != nil {
		ts = *timestamp
	}
	return int(math.Round(float64(r.Start-ts) / Scale))
}

// SlotCount returns the number of rows in the virtual list, inclusive
// of both endpoints.
func SlotCount(r *Range) int {
	return int((r.Start-r.End)/Scale) + 1
}
