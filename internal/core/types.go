package core

// EventCategory discriminates camera events.
type EventCategory string

const (
	EventMotion          EventCategory = "motion"
	EventRecording       EventCategory = "recording"
	EventObject          EventCategory = "object"
	EventFaceRecognition EventCategory = "face_recognition"
)

// Event is a single camera event. Motion and recording events carry a
// start and end time; object events carry one timestamp plus detection
// metadata.
type Event struct {
	Category   EventCategory `json:"type"`
	StartTime  int64         `json:"start_time,omitempty"`
	EndTime    int64         `json:"end_time,omitempty"`
	Timestamp  int64         `json:"timestamp,omitempty"`
	Label      string        `json:"label,omitempty"`
	Confidence float64       `json:"confidence,omitempty"`
	Snapshot   string        `json:"snapshot_path,omitempty"`
	Box        *BoundingBox  `json:"box,omitempty"`
}

// Timespan is a contiguous range of time for which recorded video
// segments exist.
type Timespan struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}

// Variant tags a slot for activity-line rendering: span endpoints get
// distinct caps, interior slots a uniform fill, and single-slot spans a
// rounded cap.
type Variant string

const (
	VariantNone   Variant = ""
	VariantFirst  Variant = "first"
	VariantMiddle Variant = "middle"
	VariantLast   Variant = "last"
	VariantRound  Variant = "round"
)

// SpanField selects which field of a SlotRecord a span expansion
// populates.
type SpanField int

const (
	FieldAvailableTimespan SpanField = iota
	FieldTimedEvent
)

// SlotRecord is the value stored for an occupied slot. A slot holds at
// most one timed event and at most one availability span; a snapshot
// event may coexist with either.
type SlotRecord struct {
	Time              int64
	TimedEvent        *Event
	SnapshotEvent     *Event
	AvailableTimespan *Timespan
	Variant           Variant
}

// SlotMap is the sparse slot-timestamp → record mapping. Absent keys
// mean "empty slot at this time".
type SlotMap map[int64]SlotRecord
