package grid

// Status hints shown under the board.
const (
	HintIdle     = "Drag widgets to organize"
	HintDragging = "Release to snap"
)

// Placed is a widget together with the pixel rectangle it is drawn in.
type Placed struct {
	Widget
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	W        float64 `json:"w"`
	H        float64 `json:"h"`
	Dragging bool    `json:"dragging,omitempty"`
}

// Snapshot is everything a presentation layer needs to draw one frame.
type Snapshot struct {
	Geometry Geometry `json:"geometry"`
	Width    float64  `json:"width"`
	Height   float64  `json:"height"`
	Cols     int      `json:"cols"`
	Rows     int      `json:"rows"`
	// Widgets are in paint order: the dragged widget, if any, comes last.
	Widgets []Placed `json:"widgets"`
	Ghost   *Ghost   `json:"ghost,omitempty"`
	Hint    string   `json:"hint"`
}

// Hint returns the status line for the current drag state.
func (e *Engine) Hint() string {
	if e.drag != nil {
		return HintDragging
	}
	return HintIdle
}

// Snapshot captures the current frame.
func (e *Engine) Snapshot() Snapshot {
	cols, rows := e.Capacity()
	s := Snapshot{
		Geometry: e.geom,
		Width:    e.width,
		Height:   e.height,
		Cols:     cols,
		Rows:     rows,
		Widgets:  make([]Placed, 0, len(e.widgets)),
		Hint:     e.Hint(),
	}

	var dragged *Placed
	for _, w := range e.widgets {
		pos, _ := e.Position(w.ID)
		ext := e.geom.Dimensions(w.Size.Footprint())
		p := Placed{Widget: w, X: pos.X, Y: pos.Y, W: ext.W, H: ext.H}
		if e.drag != nil && e.drag.id == w.ID {
			p.Dragging = true
			dragged = &p
			continue
		}
		s.Widgets = append(s.Widgets, p)
	}
	if dragged != nil {
		s.Widgets = append(s.Widgets, *dragged)
	}

	if g, ok := e.Ghost(); ok {
		s.Ghost = &g
	}
	return s
}
