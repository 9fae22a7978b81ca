package core

import "time"

// Range holds the current timeline bounds in epoch seconds. The
// timeline is rendered newest-at-top, so Start is the later timestamp
// (slot 0) and End the earlier one; all index math assumes Start > End.
// The caller owns the Range and mutates it as the user changes dates;
// the core only reads the current values at call time.
type Range struct {
	Start int64
	End   int64
}

// RangeStart derives the upper timeline bound for the selected date.
// With no selection, or today selected, it is now rounded up to the
// scale plus ExtraTicks slots of lookahead. For a past date it is
// midnight of the day after, so the view spans that entire day.
func RangeStart(selected *time.Time, now time.Time) int64 {
	if selected == nil || sameDay(*selected, now) {
		return RoundUpToScale(now.Unix()) + ExtraTicks*Scale
	}
	return midnight(*selected).AddDate(0, 0, 1).Unix()
}

// RangeEnd derives the lower timeline bound: midnight of the selected
// date, or midnight of today when nothing is selected.
func RangeEnd(selected *time.Time, now time.Time) int64 {
	if selected == nil {
		return midnight(now).Unix()
	}
	return midnight(*selected).Unix()
}

// NewRange builds a Range for the selected date. RangeStart > RangeEnd
// holds for any in-bounds selection; dates outside expected bounds are
// an unchecked caller precondition.
func NewRange(selected *time.Time, now time.Time) Range {
	return Range{
		Start: RangeStart(selected, now),
		End:   RangeEnd(selected, now),
	}
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
