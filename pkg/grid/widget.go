package grid

import (
	"strings"

	errs "github.com/matzehuels/dashgrid/pkg/errors"
)

// Size selects a widget's footprint.
type Size string

// Widget sizes.
const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// Sizes lists every known size in ascending order.
var Sizes = []Size{SizeSmall, SizeMedium, SizeLarge}

// Footprint is the number of cells a widget occupies along each axis.
type Footprint struct {
	ColSpan int `json:"col_span"`
	RowSpan int `json:"row_span"`
}

// Footprint maps s to its cell footprint. Unrecognized sizes occupy a single
// cell; use [ParseSize] at input boundaries to reject them instead.
func (s Size) Footprint() Footprint {
	switch s {
	case SizeMedium:
		return Footprint{ColSpan: 2, RowSpan: 1}
	case SizeLarge:
		return Footprint{ColSpan: 2, RowSpan: 2}
	default:
		return Footprint{ColSpan: 1, RowSpan: 1}
	}
}

// Known reports whether s is one of [Sizes].
func (s Size) Known() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return true
	}
	return false
}

// ParseSize converts a case-insensitive size name to a Size.
func ParseSize(s string) (Size, error) {
	size := Size(strings.ToLower(strings.TrimSpace(s)))
	if !size.Known() {
		return "", errs.New(errs.ErrCodeInvalidSize, "unknown widget size %q (must be small, medium or large)", s)
	}
	return size, nil
}

// Kind selects which content renderer draws a widget. The engine never
// looks at it.
type Kind string

// Widget kinds.
const (
	KindBattery    Kind = "battery"
	KindWeather    Kind = "weather"
	KindCalendar   Kind = "calendar"
	KindReminders  Kind = "reminders"
	KindCar        Kind = "car"
	KindStickyNote Kind = "sticky-note"
)

// Kinds lists every known widget kind.
var Kinds = []Kind{KindBattery, KindWeather, KindCalendar, KindReminders, KindCar, KindStickyNote}

// Known reports whether k is one of [Kinds].
func (k Kind) Known() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// ParseKind converts a case-insensitive kind name to a Kind.
func ParseKind(s string) (Kind, error) {
	kind := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !kind.Known() {
		return "", errs.New(errs.ErrCodeInvalidKind, "unknown widget kind %q", s)
	}
	return kind, nil
}

// Widget is a card placed on the grid.
type Widget struct {
	ID   string `json:"id" toml:"id"`
	Kind Kind   `json:"kind" toml:"kind"`
	Size Size   `json:"size" toml:"size"`
	Col  int    `json:"col" toml:"col"`
	Row  int    `json:"row" toml:"row"`
	Text string `json:"text,omitempty" toml:"text,omitempty"`
}

// Cell returns the widget's top-left cell.
func (w Widget) Cell() Cell { return Cell{Col: w.Col, Row: w.Row} }

// Rect returns the cells the widget occupies at its committed position.
func (w Widget) Rect() Rect { return w.RectAt(w.Cell()) }

// RectAt returns the cells the widget would occupy with its top-left at c.
func (w Widget) RectAt(c Cell) Rect {
	f := w.Size.Footprint()
	return Rect{Col: c.Col, Row: c.Row, ColSpan: f.ColSpan, RowSpan: f.RowSpan}
}

// DefaultWidgets returns the seed board: a battery, weather, calendar,
// reminders and car widget spread over a five column grid.
func DefaultWidgets() []Widget {
	return []Widget{
		{ID: "1", Kind: KindBattery, Size: SizeSmall, Col: 0, Row: 0},
		{ID: "2", Kind: KindWeather, Size: SizeMedium, Col: 2, Row: 0},
		{ID: "3", Kind: KindCalendar, Size: SizeLarge, Col: 0, Row: 2},
		{ID: "4", Kind: KindReminders, Size: SizeSmall, Col: 4, Row: 0},
		{ID: "5", Kind: KindCar, Size: SizeMedium, Col: 4, Row: 2},
	}
}
