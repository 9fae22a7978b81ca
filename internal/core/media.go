package core

import "math"

// ConfidenceToPercent converts a 0-1 confidence to a whole percentage.
func ConfidenceToPercent(confidence float64) int {
	return int(math.Round(confidence * 100))
}

// AspectHeight returns the height that preserves the source aspect
// ratio at the target width. A zero source width divides by zero, same
// as the rest of the pixel math.
func AspectHeight(sourceWidth, sourceHeight, targetWidth float64) float64 {
	return targetWidth * sourceHeight / sourceWidth
}

// BoundingBox is a detection box in relative coordinates, each corner a
// 0-1 fraction of the frame.
type BoundingBox struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// Width returns the relative width of the box.
func (b BoundingBox) Width() float64 {
	return b.X2 - b.X1
}

// Height returns the relative height of the box.
func (b BoundingBox) Height() float64 {
	return b.Y2 - b.Y1
}

// Absolute converts the box to pixel coordinates at the given frame
// resolution, flooring the way the drawing layer expects.
func (b BoundingBox) Absolute(frameWidth, frameHeight int) (x1, y1, x2, y2 int) {
	x1 = int(math.Floor(b.X1 * float64(frameWidth)))
	y1 = int(math.Floor(b.Y1 * float64(frameHeight)))
	x2 = int(math.Floor(b.X2 * float64(frameWidth)))
	y2 = int(math.Floor(b.Y2 * float64(frameHeight)))
	return x1, y1, x2, y2
}

// RelativeBox converts a pixel-space box at the given resolution back
// to relative coordinates.
func RelativeBox(x1, y1, x2, y2 int, frameWidth, frameHeight int) BoundingBox {
	return BoundingBox{
		X1: float64(x1) / float64(frameWidth),
		Y1: float64(y1) / float64(frameHeight),
		X2: float64(x2) / float64(frameWidth),
		Y2: float64(y2) / float64(frameHeight),
	}
}

// ScaleBox maps a pixel-space box from one resolution to another.
func ScaleBox(x1, y1, x2, y2 float64, fromWidth, fromHeight, toWidth, toHeight float64) (float64, float64, float64, float64) {
	return x1 / fromWidth * toWidth,
		y1 / fromHeight * toHeight,
		x2 / fromWidth * toWidth,
		y2 / fromHeight * toHeight
}

// ObjectFilter drops object detections outside the configured
// confidence and size windows. Size bounds apply to the relative box
// dimensions; an event without a box passes on confidence alone.
type ObjectFilter struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
	WidthMin   float64 `json:"width_min"`
	WidthMax   float64 `json:"width_max"`
	HeightMin  float64 `json:"height_min"`
	HeightMax  float64 `json:"height_max"`
}

// Match reports whether the event clears the filter. A non-empty Label
// restricts the filter to events with the same label.
func (f ObjectFilter) Match(ev Event) bool {
	if f.Label != "" && ev.Label != f.Label {
		return false
	}
	if ev.Confidence <= f.Confidence {
		return false
	}
	if ev.Box == nil {
		return true
	}
	if !(f.WidthMax > ev.Box.Width() && ev.Box.Width() > f.WidthMin) {
		return false
	}
	if !(f.HeightMax > ev.Box.Height() && ev.Box.Height() > f.HeightMin) {
		return false
	}
	return true
}

// FilterObjectEvents keeps the object events that clear at least one of
// the given filters. Non-object events pass through untouched, and an
// empty filter list keeps everything.
func FilterObjectEvents(events []Event, filters []ObjectFilter) []Event {
	if len(filters) == 0 {
		return events
	}
	out := make([]Event, 0, len(events))
	for _, ev := range events {
		if ev.Category != EventObject {
			out = append(out, ev)
			continue
		}
		for _, f := range filters {
			if f.Match(ev) {
				out = append(out, ev)
				break
			}
		}
	}
	return out
}
