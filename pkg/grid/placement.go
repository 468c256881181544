package grid

import (
	errs "github.com/matzehuels/dashgrid/pkg/errors"
)

// Rect is an axis-aligned block of cells.
type Rect struct {
	Col     int `json:"col"`
	Row     int `json:"row"`
	ColSpan int `json:"col_span"`
	RowSpan int `json:"row_span"`
}

// Intersects reports whether r and o share at least one cell. Rects whose
// edges touch without crossing do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return !(r.Col+r.ColSpan <= o.Col || // left of o
		r.Col >= o.Col+o.ColSpan || // right of o
		r.Row+r.RowSpan <= o.Row || // above o
		r.Row >= o.Row+o.RowSpan) // below o
}

// Overlaps reports whether r intersects the footprint of any widget other
// than the one identified by id.
func Overlaps(id string, r Rect, widgets []Widget) bool {
	for _, w := range widgets {
		if w.ID == id {
			continue
		}
		if r.Intersects(w.Rect()) {
			return true
		}
	}
	return false
}

// OutOfBounds reports whether r leaves a container of width x height pixels:
// either it starts at a negative cell, or its far edge passes the container's
// capacity.
func (g Geometry) OutOfBounds(r Rect, width, height float64) bool {
	if r.Col < 0 || r.Row < 0 {
		return true
	}
	cols, rows := g.Capacity(width, height)
	return r.Col+r.ColSpan > cols || r.Row+r.RowSpan > rows
}

// ValidPlacement reports whether the widget identified by id may occupy r:
// r must stay inside the container and must not overlap any other widget.
func (g Geometry) ValidPlacement(id string, r Rect, widgets []Widget, width, height float64) bool {
	return !Overlaps(id, r, widgets) && !g.OutOfBounds(r, width, height)
}

// Check verifies that widgets form a committed collection for a container of
// the given size: ids are unique, every footprint is in bounds, and no two
// footprints overlap. The first violation is returned.
func Check(widgets []Widget, g Geometry, width, height float64) error {
	seen := make(map[string]bool, len(widgets))
	for i, w := range widgets {
		if seen[w.ID] {
			return errs.New(errs.ErrCodeDuplicateWidget, "duplicate widget id %q", w.ID)
		}
		seen[w.ID] = true

		if g.OutOfBounds(w.Rect(), width, height) {
			cols, rows := g.Capacity(width, height)
			return errs.New(errs.ErrCodePlacementRejected,
				"widget %q at %s does not fit a %dx%d grid", w.ID, w.Cell(), cols, rows)
		}
		// Each pair is visited once, from its later member.
		for _, other := range widgets[:i] {
			if w.Rect().Intersects(other.Rect()) {
				return errs.New(errs.ErrCodePlacementRejected,
					"widget %q at %s overlaps widget %q at %s", w.ID, w.Cell(), other.ID, other.Cell())
			}
		}
	}
	return nil
}
