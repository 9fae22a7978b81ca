package core

import "testing"

func TestConfidenceToPercent(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{0.8567, 86},
		{0.004, 0},
		{0.005, 1},
		{0, 0},
		{1, 100},
		{0.5, 50},
	}
	for _, tt := range tests {
		if got := ConfidenceToPercent(tt.in); got != tt.want {
			t.Errorf("ConfidenceToPercent(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestAspectHeight(t *testing.T) {
	tests := []struct {
		w, h, targetW float64
		want          float64
	}{
		{1920, 1080, 960, 540},
		{1920, 1080, 1920, 1080},
		{640, 480, 320, 240},
		{100, 300, 50, 150},
	}
	for _, tt := range tests {
		if got := AspectHeight(tt.w, tt.h, tt.targetW); got != tt.want {
			t.Errorf("AspectHeight(%v, %v, %v) = %v, want %v", tt.w, tt.h, tt.targetW, got, tt.want)
		}
	}
}

func TestBoundingBoxAbsolute(t *testing.T) {
	box := BoundingBox{X1: 0.25, Y1: 0.5, X2: 0.75, Y2: 1.0}
	x1, y1, x2, y2 := box.Absolute(1920, 1080)

	if x1 != 480 || y1 != 540 || x2 != 1440 || y2 != 1080 {
		t.Errorf("Absolute() = (%d, %d, %d, %d), want (480, 540, 1440, 1080)", x1, y1, x2, y2)
	}
}

func TestRelativeBoxRoundTrip(t *testing.T) {
	box := RelativeBox(480, 540, 1440, 1080, 1920, 1080)
	want := BoundingBox{X1: 0.25, Y1: 0.5, X2: 0.75, Y2: 1.0}
	if box != want {
		t.Errorf("RelativeBox() = %+v, want %+v", box, want)
	}
}

func TestScaleBox(t *testing.T) {
	x1, y1, x2, y2 := ScaleBox(100, 100, 200, 200, 1920, 1080, 960, 540)
	if x1 != 50 || y1 != 50 || x2 != 100 || y2 != 100 {
		t.Errorf("ScaleBox() = (%v, %v, %v, %v), want (50, 50, 100, 100)", x1, y1, x2, y2)
	}
}

func TestObjectFilterMatch(t *testing.T) {
	filter := ObjectFilter{
		Label:      "person",
		Confidence: 0.7,
		WidthMin:   0.1,
		WidthMax:   0.9,
		HeightMin:  0.1,
		HeightMax:  0.9,
	}
	box := &BoundingBox{X1: 0.2, Y1: 0.2, X2: 0.7, Y2: 0.7}

	tests := []struct {
		name string
		ev   Event
		want bool
	}{
		{"passes all gates", Event{Label: "person", Confidence: 0.8, Box: box}, true},
		{"wrong label", Event{Label: "car", Confidence: 0.8, Box: box}, false},
		{"confidence at threshold", Event{Label: "person", Confidence: 0.7, Box: box}, false},
		{"no box passes on confidence", Event{Label: "person", Confidence: 0.8}, true},
		{"box too wide", Event{Label: "person", Confidence: 0.8,
			Box: &BoundingBox{X1: 0, Y1: 0.2, X2: 0.95, Y2: 0.7}}, false},
		{"box too short", Event{Label: "person", Confidence: 0.8,
			Box: &BoundingBox{X1: 0.2, Y1: 0.2, X2: 0.7, Y2: 0.25}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := filter.Match(tt.ev); got != tt.want {
				t.Errorf("Match(%+v) = %v, want %v", tt.ev, got, tt.want)
			}
		})
	}
}

func TestFilterObjectEvents(t *testing.T) {
	filters := []ObjectFilter{{Confidence: 0.5}}
	events := []Event{
		{Category: EventObject, Label: "person", Confidence: 0.9},
		{Category: EventObject, Label: "cat", Confidence: 0.2},
		{Category: EventMotion, StartTime: 100, EndTime: 200},
	}

	got := FilterObjectEvents(events, filters)

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Label != "person" {
		t.Errorf("got[0].Label = %q, want %q", got[0].Label, "person")
	}
	if got[1].Category != EventMotion {
		t.Errorf("got[1].Category = %q, want motion to pass through", got[1].Category)
	}

	// No filters configured keeps everything.
	if got := FilterObjectEvents(events, nil); len(got) != 3 {
		t.Errorf("no filters: len = %d, want 3", len(got))
	}
}
