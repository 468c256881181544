package sink

import "github.com/matzehuels/dashgrid/pkg/grid"

// Board colors.
const (
	colorSurface   = "#111827"
	colorDot       = "#ffffff"
	colorCardLine  = "#ffffff"
	colorText      = "#ffffff"
	colorGhostOK   = "#22c55e"
	colorGhostBad  = "#ef4444"
	colorHintPill  = "#000000"
	colorHintText  = "#e5e7eb"
	cardRadius     = 32.0
	cardOpacity    = 0.85
	dragOpacity    = 0.95
	ghostOpacity   = 0.2
	dotOpacity     = 0.1
	labelFontSize  = 14.0
	hintFontSize   = 14.0
	hintPillHeight = 40.0
	hintMargin     = 32.0
)

// kindStyle is the fill and label of a widget kind.
type kindStyle struct {
	fill  string
	label string
}

var kindStyles = map[grid.Kind]kindStyle{
	grid.KindBattery:    {fill: "#14532d", label: "Battery"},
	grid.KindWeather:    {fill: "#1e3a8a", label: "Weather"},
	grid.KindCalendar:   {fill: "#dc2626", label: "Calendar"},
	grid.KindReminders:  {fill: "#262626", label: "Reminders"},
	grid.KindCar:        {fill: "#18181b", label: "Car"},
	grid.KindStickyNote: {fill: "#ca8a04", label: "Note"},
}

func styleFor(k grid.Kind) kindStyle {
	if s, ok := kindStyles[k]; ok {
		return s
	}
	return kindStyle{fill: "#374151", label: string(k)}
}
