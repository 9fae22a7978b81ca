package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/camview/camview/internal/core"
)

var (
	colorText    = lipgloss.Color("#CDD6F4")
	colorSubtext = lipgloss.Color("#A6ADC8")
	colorDim     = lipgloss.Color("#585B70")
	colorSurface = lipgloss.Color("#45475A")
	colorAccent  = lipgloss.Color("#CBA6F7")
	colorBlue    = lipgloss.Color("#89B4FA")
	colorGreen   = lipgloss.Color("#A6E3A1")
	colorYellow  = lipgloss.Color("#F9E2AF")
	colorRed     = lipgloss.Color("#F38BA8")
	colorTeal    = lipgloss.Color("#94E2D5")
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorSubtext)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	tickStyle = lipgloss.NewStyle().
			Foreground(colorSubtext)

	cursorStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorSurface)

	nowStyle = lipgloss.NewStyle().
			Foreground(colorTeal).
			Bold(true)

	snapshotStyle = lipgloss.NewStyle().
			Foreground(colorBlue)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)

// Bar glyphs per activity-line variant. Rows run newest-at-top, so the
// "last" slot of a span (its latest time) is the top cap and "first"
// the bottom cap.
var variantGlyphs = map[core.Variant]string{
	core.VariantRound:  "●",
	core.VariantLast:   "╻",
	core.VariantMiddle: "┃",
	core.VariantFirst:  "╹",
	core.VariantNone:   " ",
}

func categoryColor(category core.EventCategory) lipgloss.Color {
	switch category {
	case core.EventRecording:
		return colorRed
	case core.EventMotion:
		return colorYellow
	default:
		return colorGreen
	}
}
