package tui

import (
	"github.com/NimbleMarkets/ntcharts/sparkline"
	"github.com/charmbracelet/lipgloss"

	"github.com/camview/camview/internal/core"
)

// densityValues buckets the slot map into the given number of bins and
// counts occupied slots per bin, ordered oldest to newest so the
// sparkline reads left to right.
func densityValues(r *core.Range, items core.SlotMap, bins int) []float64 {
	if bins < 1 {
		return nil
	}
	total := core.SlotCount(r)
	perBin := total / bins
	if perBin < 1 {
		perBin = 1
		bins = total
	}

	values := make([]float64, bins)
	for index := 0; index < total; index++ {
		rec, ok := items[core.SlotTime(r, index)]
		if !ok || (rec.TimedEvent == nil && rec.SnapshotEvent == nil) {
			continue
		}
		// Oldest slots have the largest indices and land in bin 0.
		bin := (total - 1 - index) / perBin
		if bin >= bins {
			bin = bins - 1
		}
		values[bin]++
	}
	return values
}

// RenderDensity draws a one-line activity sparkline over the whole
// range.
func RenderDensity(r *core.Range, items core.SlotMap, width int) string {
	if width < 4 {
		return ""
	}
	values := densityValues(r, items, width)

	sl := sparkline.New(width, 1,
		sparkline.WithStyle(lipgloss.NewStyle().Foreground(colorYellow)))
	for _, v := range values {
		sl.Push(v)
	}
	sl.Draw()
	return sl.View()
}
