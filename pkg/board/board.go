// Package board reads and writes board files: the geometry, container size
// and seed widget list a grid engine starts from.
//
// Board files are start-up input only. An engine built from a board keeps its
// layout in memory for the life of the process; nothing is written back.
//
// Two encodings are supported, chosen by file extension:
//
//	.toml  TOML
//	.json  JSON
//
// A minimal TOML board:
//
//	width  = 1280
//	height = 800
//
//	[geometry]
//	cell = 160
//	gap  = 24
//
//	[[widgets]]
//	id   = "1"
//	kind = "battery"
//	size = "small"
//	col  = 0
//	row  = 0
//
// Omitted geometry and container fields take the defaults of [Default].
package board

import (
	errs "github.com/matzehuels/dashgrid/pkg/errors"
	"github.com/matzehuels/dashgrid/pkg/grid"
)

// Default container size in pixels.
const (
	DefaultWidth  = 1280.0
	DefaultHeight = 800.0
)

// Board is the decoded form of a board file.
type Board struct {
	Geometry grid.Geometry `json:"geometry" toml:"geometry"`
	Width    float64       `json:"width" toml:"width"`
	Height   float64       `json:"height" toml:"height"`
	Widgets  []grid.Widget `json:"widgets" toml:"widgets"`
}

// Default returns the seed board: the default widgets on a 1280x800
// container with the default geometry.
func Default() Board {
	return Board{
		Geometry: grid.DefaultGeometry(),
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		Widgets:  grid.DefaultWidgets(),
	}
}

// empty returns a board holding only defaults, ready to be decoded onto.
// Fields missing from the file keep their default value.
func empty() Board {
	return Board{Geometry: grid.DefaultGeometry(), Width: DefaultWidth, Height: DefaultHeight}
}

// Validate checks the board's fields and its widget collection. Kind and
// size names must be known and canonical, ids well formed, and the widgets must satisfy
// [grid.Check] for the board's container.
func (b Board) Validate() error {
	if err := b.Geometry.Validate(); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidBoard, err, "invalid geometry")
	}
	if err := errs.ValidateDimension("width", b.Width); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidBoard, err, "invalid container")
	}
	if err := errs.ValidateDimension("height", b.Height); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidBoard, err, "invalid container")
	}
	for _, w := range b.Widgets {
		if err := errs.ValidateWidgetID(w.ID); err != nil {
			return err
		}
		if !w.Kind.Known() {
			return errs.New(errs.ErrCodeInvalidBoard, "widget %q: unknown kind %q", w.ID, w.Kind)
		}
		if !w.Size.Known() {
			return errs.New(errs.ErrCodeInvalidBoard, "widget %q: unknown size %q", w.ID, w.Size)
		}
	}
	return grid.Check(b.Widgets, b.Geometry, b.Width, b.Height)
}

// normalize rewrites kind and size names to their canonical lowercase form,
// so "Large" in a file means [grid.SizeLarge] and gets its footprint.
func (b *Board) normalize() error {
	for i := range b.Widgets {
		w := &b.Widgets[i]
		kind, err := grid.ParseKind(string(w.Kind))
		if err != nil {
			return errs.Wrap(errs.ErrCodeInvalidBoard, err, "widget %q", w.ID)
		}
		size, err := grid.ParseSize(string(w.Size))
		if err != nil {
			return errs.Wrap(errs.ErrCodeInvalidBoard, err, "widget %q", w.ID)
		}
		w.Kind, w.Size = kind, size
	}
	return nil
}

// Engine builds an engine seeded with the board's widgets.
func (b Board) Engine() (*grid.Engine, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	e := grid.New(b.Geometry, b.Width, b.Height)
	for _, w := range b.Widgets {
		if err := e.Add(w); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// FromEngine captures an engine's committed state as a board.
func FromEngine(e *grid.Engine) Board {
	c := e.Container()
	return Board{
		Geometry: e.Geometry(),
		Width:    c.W,
		Height:   c.H,
		Widgets:  e.Widgets(),
	}
}
