package core

import (
	"sort"

	"github.com/samber/lo"
)

// set writes the span payload into rec according to the selected field.
func (f SpanField) set(rec *SlotRecord, event *Event, span *Timespan) {
	switch f {
	case FieldAvailableTimespan:
		rec.AvailableTimespan = span
	case FieldTimedEvent:
		rec.TimedEvent = event
	}
}

// ExpandSpan expands one span covering slots indexEnd..indexStart into
// one record per covered slot. Earlier times have larger indices, so
// indexStart >= indexEnd. A single-slot span is tagged "round";
// otherwise indexStart gets "first", indexEnd gets "last" and every
// slot between gets "middle". The returned map never consults existing
// slots; merging with prior state is the caller's job.
func ExpandSpan(r *Range, indexStart, indexEnd int, field SpanField, event *Event, span *Timespan) SlotMap {
	items := make(SlotMap, indexStart-indexEnd+1)

	if indexStart == indexEnd {
		rec := SlotRecord{Time: SlotTime(r, indexStart), Variant: VariantRound}
		field.set(&rec, event, span)
		items[rec.Time] = rec
		return items
	}

	for i := indexEnd; i <= indexStart; i++ {
		rec := SlotRecord{Time: SlotTime(r, i)}
		switch i {
		case indexStart:
			rec.Variant = VariantFirst
		case indexEnd:
			rec.Variant = VariantLast
		default:
			rec.Variant = VariantMiddle
		}
		field.set(&rec, event, span)
		items[rec.Time] = rec
	}
	return items
}

// BuildSlotMap folds availability spans and camera events into one
// sparse slot map in three passes: availability spans first, then timed
// motion/recording events (recording processed after motion so
// recording bars win shared slots), then object events, which merge
// their snapshot onto whatever record is already at the slot.
//
// A timed event landing on a slot already holding an availability span
// replaces the whole record, dropping the span reference. That matches
// the shipped behavior; see DESIGN.md before changing it.
func BuildSlotMap(r *Range, events []Event, spans []Timespan) SlotMap {
	items := make(SlotMap)

	for i := range spans {
		span := &spans[i]
		indexStart := SlotIndex(r, &span.Start)
		indexEnd := SlotIndex(r, &span.End)
		mergeReplace(items, ExpandSpan(r, indexStart, indexEnd, FieldAvailableTimespan, nil, span))
	}

	timed := lo.Filter(events, func(ev Event, _ int) bool {
		return ev.Category == EventMotion || ev.Category == EventRecording
	})
	sort.SliceStable(timed, func(i, j int) bool {
		return timed[i].Category != EventRecording && timed[j].Category == EventRecording
	})
	for i := range timed {
		ev := &timed[i]
		indexStart := SlotIndex(r, &ev.StartTime)
		indexEnd := SlotIndex(r, &ev.EndTime)
		mergeReplace(items, ExpandSpan(r, indexStart, indexEnd, FieldTimedEvent, ev, nil))
	}

	for i := range events {
		ev := &events[i]
		if ev.Category != EventObject {
			continue
		}
		slotTime := SlotTime(r, SlotIndex(r, &ev.Timestamp))
		rec := items[slotTime]
		rec.Time = slotTime
		rec.SnapshotEvent = ev
		items[slotTime] = rec
	}

	return items
}

// mergeReplace copies records from src into dst, replacing whole
// records at matching keys.
func mergeReplace(dst, src SlotMap) {
	for k, v := range src {
		dst[k] = v
	}
}

// SlotAt returns the record stored at the given slot time, or a default
// empty record stamped with that time. The map is never mutated on a
// miss.
func SlotAt(items SlotMap, slotTime int64) SlotRecord {
	if rec, ok := items[slotTime]; ok {
		return rec
	}
	return SlotRecord{Time: slotTime}
}
