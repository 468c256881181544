package cli

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/dashgrid/pkg/grid"
)

// Canvas styles, indexed by canvasCell.style. Zero is unstyled.
const (
	stylePlain = iota
	styleDot
	styleGhostOK
	styleGhostBad
	styleSelected
	styleLabel
	styleDetail
	styleValue
	styleBattery
	styleWeather
	styleCalendar
	styleReminders
	styleCar
	styleNote
)

var canvasStyles = []lipgloss.Style{
	stylePlain:     lipgloss.NewStyle(),
	styleDot:       lipgloss.NewStyle().Foreground(colorDim),
	styleGhostOK:   lipgloss.NewStyle().Foreground(colorGreen),
	styleGhostBad:  lipgloss.NewStyle().Foreground(colorRed),
	styleSelected:  lipgloss.NewStyle().Bold(true).Foreground(colorCyan),
	styleLabel:     lipgloss.NewStyle().Bold(true).Foreground(colorWhite),
	styleDetail:    lipgloss.NewStyle().Foreground(colorGray),
	styleValue:     lipgloss.NewStyle().Foreground(colorWhite),
	styleBattery:   lipgloss.NewStyle().Foreground(colorGreen),
	styleWeather:   lipgloss.NewStyle().Foreground(colorBlue),
	styleCalendar:  lipgloss.NewStyle().Foreground(colorRed),
	styleReminders: lipgloss.NewStyle().Foreground(colorGray),
	styleCar:       lipgloss.NewStyle().Foreground(colorWhite),
	styleNote:      lipgloss.NewStyle().Foreground(colorYellow),
}

var kindCanvasStyles = map[grid.Kind]int{
	grid.KindBattery:    styleBattery,
	grid.KindWeather:    styleWeather,
	grid.KindCalendar:   styleCalendar,
	grid.KindReminders:  styleReminders,
	grid.KindCar:        styleCar,
	grid.KindStickyNote: styleNote,
}

var kindTitles = map[grid.Kind]string{
	grid.KindBattery:    "Battery",
	grid.KindWeather:    "Weather",
	grid.KindCalendar:   "Calendar",
	grid.KindReminders:  "Reminders",
	grid.KindCar:        "Car",
	grid.KindStickyNote: "Note",
}

func kindCanvasStyle(k grid.Kind) int {
	if st, ok := kindCanvasStyles[k]; ok {
		return st
	}
	return styleDetail
}

func kindTitle(k grid.Kind) string {
	if t, ok := kindTitles[k]; ok {
		return t
	}
	return string(k)
}

// termRect is an inclusive rectangle of terminal cells.
type termRect struct {
	x0, y0, x1, y1 int
}

func (r termRect) width() int  { return r.x1 - r.x0 + 1 }
func (r termRect) height() int { return r.y1 - r.y0 + 1 }

// termRectOf converts a pixel rectangle to the terminal cells it covers.
func termRectOf(x, y, w, h float64) termRect {
	return termRect{
		x0: int(math.Floor(x / pxPerCol)),
		y0: int(math.Floor(y / pxPerRow)),
		x1: int(math.Ceil((x+w)/pxPerCol)) - 1,
		y1: int(math.Ceil((y+h)/pxPerRow)) - 1,
	}
}

type canvasCell struct {
	r     rune
	style int
}

// canvas is a fixed-size grid of styled runes. Writes outside it are dropped.
type canvas struct {
	w, h  int
	cells []canvasCell
}

func newCanvas(w, h int) *canvas {
	w, h = max(0, w), max(0, h)
	c := &canvas{w: w, h: h, cells: make([]canvasCell, w*h)}
	for i := range c.cells {
		c.cells[i] = canvasCell{r: ' '}
	}
	return c
}

func (c *canvas) set(x, y int, r rune, style int) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y*c.w+x] = canvasCell{r: r, style: style}
}

func (c *canvas) at(x, y int) rune {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return 0
	}
	return c.cells[y*c.w+x].r
}

// box draws a rounded border around r and blanks its interior.
func (c *canvas) box(r termRect, style int, dashed bool) {
	if r.width() < 2 || r.height() < 2 {
		return
	}
	horiz, vert := '─', '│'
	if dashed {
		horiz, vert = '┄', '┆'
	}
	for y := r.y0 + 1; y < r.y1; y++ {
		for x := r.x0 + 1; x < r.x1; x++ {
			c.set(x, y, ' ', stylePlain)
		}
	}
	for x := r.x0 + 1; x < r.x1; x++ {
		c.set(x, r.y0, horiz, style)
		c.set(x, r.y1, horiz, style)
	}
	for y := r.y0 + 1; y < r.y1; y++ {
		c.set(r.x0, y, vert, style)
		c.set(r.x1, y, vert, style)
	}
	c.set(r.x0, r.y0, '╭', style)
	c.set(r.x1, r.y0, '╮', style)
	c.set(r.x0, r.y1, '╰', style)
	c.set(r.x1, r.y1, '╯', style)
}

// text writes s starting at (x, y), cut to maxWidth runes.
func (c *canvas) text(x, y int, s string, style int, maxWidth int) {
	runes := []rune(s)
	if maxWidth <= 0 {
		return
	}
	if len(runes) > maxWidth {
		runes = append(runes[:max(0, maxWidth-1)], '…')
	}
	for i, r := range runes {
		c.set(x+i, y, r, style)
	}
}

// String renders the canvas row by row, styling runs of equal style at once.
func (c *canvas) String() string {
	var b strings.Builder
	for y := 0; y < c.h; y++ {
		row := c.cells[y*c.w : (y+1)*c.w]
		for i := 0; i < len(row); {
			j := i
			var run strings.Builder
			for j < len(row) && row[j].style == row[i].style {
				run.WriteRune(row[j].r)
				j++
			}
			if row[i].style == stylePlain {
				b.WriteString(run.String())
			} else {
				b.WriteString(canvasStyles[row[i].style].Render(run.String()))
			}
			i = j
		}
		if y < c.h-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
