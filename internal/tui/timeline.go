package tui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/camview/camview/internal/core"
)

// tickEvery controls how often a row gets a time label: one labeled
// tick per five slots, like the web timeline.
const tickEvery = 5 * core.Scale

// TimeLabel formats the tick label for a slot, or blanks for in-between
// rows so the column stays aligned.
func TimeLabel(slotTime int64) string {
	if slotTime%tickEvery != 0 {
		return "     "
	}
	return time.Unix(slotTime, 0).Format("15:04")
}

// BarCell renders the one-character activity column for a slot. Timed
// events paint over availability, which matches how the slot map is
// built.
func BarCell(rec core.SlotRecord) string {
	glyph := variantGlyphs[rec.Variant]
	switch {
	case rec.TimedEvent != nil:
		return lipgloss.NewStyle().Foreground(categoryColor(rec.TimedEvent.Category)).Render(glyph)
	case rec.AvailableTimespan != nil:
		return dimStyle.Render(glyph)
	default:
		return " "
	}
}

// SnapshotCell renders the point-marker column: the detection label and
// its confidence as a whole percentage.
func SnapshotCell(rec core.SlotRecord) string {
	if rec.SnapshotEvent == nil {
		return ""
	}
	ev := rec.SnapshotEvent
	label := ev.Label
	if label == "" {
		label = "object"
	}
	pct := core.ConfidenceToPercent(ev.Confidence)
	return snapshotStyle.Render("◆ " + label + " " + strconv.Itoa(pct) + "%")
}

// RenderRow draws one virtual-list row for the slot record.
func RenderRow(rec core.SlotRecord, selected, isNow bool) string {
	label := TimeLabel(rec.Time)
	if rec.Time%tickEvery == 0 {
		label = tickStyle.Render(label)
	}

	row := fmt.Sprintf("%s %s %s", label, BarCell(rec), SnapshotCell(rec))
	if isNow {
		row += nowStyle.Render(" ◀ now")
	}
	if selected {
		return cursorStyle.Render(row)
	}
	return row
}
