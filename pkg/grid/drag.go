package grid

import "github.com/matzehuels/dashgrid/pkg/observability"

// Button identifies the pointer button behind a PointerDown.
type Button int

// Pointer buttons.
const (
	ButtonPrimary Button = iota
	ButtonMiddle
	ButtonSecondary
)

// Region is the part of a widget a pointer landed on.
type Region int

const (
	// RegionSurface is the card's draggable surface.
	RegionSurface Region = iota
	// RegionNoDrag covers sub-regions that own the pointer themselves, such
	// as a sticky note's text area or a nested gesture handle.
	RegionNoDrag
)

// PointerEvent describes a pointer press on a widget. X and Y are in
// container pixels.
type PointerEvent struct {
	WidgetID string
	X, Y     float64
	Button   Button
	Region   Region
}

// Drop is the outcome of ending a drag.
type Drop struct {
	WidgetID string `json:"widget_id"`
	// Target is the snapped candidate cell at the time the drag ended.
	Target Cell `json:"target"`
	// Committed is true when the widget moved to Target.
	Committed bool `json:"committed"`
}

// Ghost is the preview of where the dragged widget would land.
type Ghost struct {
	WidgetID string `json:"widget_id"`
	Cell     Cell   `json:"cell"`
	Origin   Point  `json:"origin"`
	Extent   Extent `json:"extent"`
	Valid    bool   `json:"valid"`
}

// dragState is the Dragging state: which widget is tracked, where inside the
// card the pointer grabbed it, and the card's current free position.
type dragState struct {
	id     string
	offset Point
	pos    Point
}

// Dragging returns the id of the widget being dragged.
func (e *Engine) Dragging() (string, bool) {
	if e.drag == nil {
		return "", false
	}
	return e.drag.id, true
}

// PointerDown starts dragging the widget under the pointer and reports
// whether a drag began. Only the primary button on a widget's draggable
// surface starts a drag. A press while a drag is already in progress is
// ignored.
func (e *Engine) PointerDown(ev PointerEvent) bool {
	if e.drag != nil || ev.Button != ButtonPrimary || ev.Region != RegionSurface {
		return false
	}
	w, ok := e.Widget(ev.WidgetID)
	if !ok {
		return false
	}
	origin := e.geom.CellToPixel(w.Col, w.Row)
	e.drag = &dragState{
		id:     w.ID,
		offset: Point{X: ev.X, Y: ev.Y}.Sub(origin),
		pos:    origin,
	}
	observability.Grid().OnDragStart(w.ID)
	return true
}

// PointerMove moves the dragged widget so that it keeps the same offset from
// the pointer it had when grabbed. The position is free-form; snapping only
// happens in the ghost. Without a drag in progress it does nothing.
func (e *Engine) PointerMove(x, y float64) {
	if e.drag == nil {
		return
	}
	e.drag.pos = Point{X: x, Y: y}.Sub(e.drag.offset)
}

// PointerUp ends the drag. If the ghost is valid the widget is committed to
// the ghost's cell and every other widget is left as it was; otherwise the
// collection is unchanged. Without a drag in progress it returns a zero Drop.
func (e *Engine) PointerUp() Drop {
	g, ok := e.Ghost()
	if !ok {
		return Drop{}
	}
	e.drag = nil

	d := Drop{WidgetID: g.WidgetID, Target: g.Cell}
	if g.Valid {
		i := e.index(g.WidgetID)
		e.widgets[i].Col, e.widgets[i].Row = g.Cell.Col, g.Cell.Row
		d.Committed = true
	}
	observability.Grid().OnDrop(d.WidgetID, d.Target.Col, d.Target.Row, d.Committed)
	return d
}

// PointerLeave cancels the drag when the pointer leaves the container. The
// collection is never changed.
func (e *Engine) PointerLeave() Drop {
	g, ok := e.Ghost()
	if !ok {
		return Drop{}
	}
	e.drag = nil
	observability.Grid().OnDragCancel(g.WidgetID)
	return Drop{WidgetID: g.WidgetID, Target: g.Cell}
}

// Ghost returns the drop preview for the widget being dragged.
func (e *Engine) Ghost() (Ghost, bool) {
	if e.drag == nil {
		return Ghost{}, false
	}
	w, ok := e.Widget(e.drag.id)
	if !ok {
		return Ghost{}, false
	}
	c := e.geom.PixelToCell(e.drag.pos.X, e.drag.pos.Y)
	return Ghost{
		WidgetID: w.ID,
		Cell:     c,
		Origin:   e.geom.CellToPixel(c.Col, c.Row),
		Extent:   e.geom.Dimensions(w.Size.Footprint()),
		Valid:    e.valid(w.ID, w.RectAt(c)),
	}, true
}

// Position returns where the widget should be drawn: its free position while
// dragged, its committed cell's pixel position otherwise.
func (e *Engine) Position(id string) (Point, bool) {
	if e.drag != nil && e.drag.id == id {
		return e.drag.pos, true
	}
	w, ok := e.Widget(id)
	if !ok {
		return Point{}, false
	}
	return e.geom.CellToPixel(w.Col, w.Row), true
}
