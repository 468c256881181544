package grid

import (
	"slices"

	errs "github.com/matzehuels/dashgrid/pkg/errors"
	"github.com/matzehuels/dashgrid/pkg/observability"
)

// Engine owns a widget collection laid out on a snap grid inside a container
// of a given pixel size. The zero value is not usable; create engines with
// [New].
type Engine struct {
	geom    Geometry
	width   float64
	height  float64
	widgets []Widget
	drag    *dragState
}

// New returns an empty engine for geometry g and a container of width x
// height pixels. It panics if g fails [Geometry.Validate].
func New(g Geometry, width, height float64) *Engine {
	if err := g.Validate(); err != nil {
		panic("grid: " + err.Error())
	}
	e := &Engine{geom: g}
	e.SetContainerSize(width, height)
	return e
}

// Geometry returns the engine's grid geometry.
func (e *Engine) Geometry() Geometry { return e.geom }

// Container returns the container size in pixels.
func (e *Engine) Container() Extent { return Extent{W: e.width, H: e.height} }

// Capacity returns the number of columns and rows the container holds.
func (e *Engine) Capacity() (cols, rows int) { return e.geom.Capacity(e.width, e.height) }

// SetContainerSize records a new container size. Capacity is derived from it
// on every validation. Committed widgets are not moved when the container
// shrinks; [Engine.Overflowing] lists the ones left outside.
func (e *Engine) SetContainerSize(width, height float64) {
	e.width = max(width, 0)
	e.height = max(height, 0)
}

// Len returns the number of committed widgets.
func (e *Engine) Len() int { return len(e.widgets) }

// Widgets returns a copy of the committed collection in insertion order.
func (e *Engine) Widgets() []Widget { return slices.Clone(e.widgets) }

// Widget returns the committed widget with the given id.
func (e *Engine) Widget(id string) (Widget, bool) {
	i := e.index(id)
	if i < 0 {
		return Widget{}, false
	}
	return e.widgets[i], true
}

// Add commits a new widget at its own (Col, Row). It fails if the id is
// invalid or already taken, or if the footprint does not fit.
func (e *Engine) Add(w Widget) error {
	if err := errs.ValidateWidgetID(w.ID); err != nil {
		return err
	}
	if e.index(w.ID) >= 0 {
		return errs.New(errs.ErrCodeDuplicateWidget, "widget %q already exists", w.ID)
	}
	if !e.valid(w.ID, w.Rect()) {
		return errs.New(errs.ErrCodePlacementRejected, "widget %q cannot be placed at %s", w.ID, w.Cell())
	}
	e.widgets = append(e.widgets, w)
	observability.Grid().OnAdd(w.ID, w.Col, w.Row)
	return nil
}

// Place commits w at the first free cell, scanning rows top to bottom and
// columns left to right, and returns the widget as placed. w's own Col and
// Row are ignored.
func (e *Engine) Place(w Widget) (Widget, error) {
	if err := errs.ValidateWidgetID(w.ID); err != nil {
		return Widget{}, err
	}
	if e.index(w.ID) >= 0 {
		return Widget{}, errs.New(errs.ErrCodeDuplicateWidget, "widget %q already exists", w.ID)
	}
	c, ok := e.FreeCell(w.Size)
	if !ok {
		return Widget{}, errs.New(errs.ErrCodeNoSpace, "no free cell for a %s widget", w.Size)
	}
	w.Col, w.Row = c.Col, c.Row
	e.widgets = append(e.widgets, w)
	observability.Grid().OnAdd(w.ID, w.Col, w.Row)
	return w, nil
}

// FreeCell returns the first cell, in row-major order, where a widget of the
// given size fits.
func (e *Engine) FreeCell(size Size) (Cell, bool) {
	cols, rows := e.Capacity()
	probe := Widget{Size: size}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			c := Cell{Col: col, Row: row}
			if e.valid("", probe.RectAt(c)) {
				return c, true
			}
		}
	}
	return Cell{}, false
}

// Remove deletes the widget with the given id and reports whether it
// existed. Removing the widget being dragged cancels the drag.
func (e *Engine) Remove(id string) bool {
	i := e.index(id)
	if i < 0 {
		return false
	}
	if e.drag != nil && e.drag.id == id {
		e.drag = nil
		observability.Grid().OnDragCancel(id)
	}
	e.widgets = slices.Delete(e.widgets, i, i+1)
	observability.Grid().OnRemove(id)
	return true
}

// Resize changes a widget's size in place. The new footprint, anchored at the
// widget's current cell, must pass the same checks as a drop; otherwise the
// widget keeps its size and Resize returns false. Unknown sizes are
// rejected.
func (e *Engine) Resize(id string, size Size) bool {
	i := e.index(id)
	if i < 0 || !size.Known() {
		return false
	}
	w := e.widgets[i]
	w.Size = size
	ok := e.valid(id, w.Rect())
	if ok {
		e.widgets[i] = w
	}
	observability.Grid().OnResize(id, string(size), ok)
	return ok
}

// Overflowing returns the ids of committed widgets that no longer fit the
// current container.
func (e *Engine) Overflowing() []string {
	var ids []string
	for _, w := range e.widgets {
		if e.geom.OutOfBounds(w.Rect(), e.width, e.height) {
			ids = append(ids, w.ID)
		}
	}
	return ids
}

// WidgetAt returns the widget drawn under pixel p. The dragged widget is drawn
// on top of the others and wins ties.
func (e *Engine) WidgetAt(p Point) (Widget, bool) {
	if e.drag != nil {
		if w, ok := e.Widget(e.drag.id); ok && e.contains(w, e.drag.pos, p) {
			return w, true
		}
	}
	for i := len(e.widgets) - 1; i >= 0; i-- {
		w := e.widgets[i]
		if e.drag != nil && w.ID == e.drag.id {
			continue
		}
		if e.contains(w, e.geom.CellToPixel(w.Col, w.Row), p) {
			return w, true
		}
	}
	return Widget{}, false
}

func (e *Engine) contains(w Widget, origin, p Point) bool {
	ext := e.geom.Dimensions(w.Size.Footprint())
	return p.X >= origin.X && p.X < origin.X+ext.W &&
		p.Y >= origin.Y && p.Y < origin.Y+ext.H
}

func (e *Engine) valid(id string, r Rect) bool {
	return e.geom.ValidPlacement(id, r, e.widgets, e.width, e.height)
}

func (e *Engine) index(id string) int {
	return slices.IndexFunc(e.widgets, func(w Widget) bool { return w.ID == id })
}
