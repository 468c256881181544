package grid

import (
	"fmt"
	"math"
)

// Default geometry, in pixels.
const (
	DefaultCell = 160.0
	DefaultGap  = 24.0
)

// Geometry describes the snap grid: the edge length of one cell and the
// spacing between neighbouring cells. Both are in pixels.
type Geometry struct {
	Cell float64 `json:"cell" toml:"cell"`
	Gap  float64 `json:"gap" toml:"gap"`
}

// DefaultGeometry returns the 160px cell / 24px gap grid.
func DefaultGeometry() Geometry {
	return Geometry{Cell: DefaultCell, Gap: DefaultGap}
}

// Validate reports whether g can be used by an engine.
func (g Geometry) Validate() error {
	if !(g.Cell > 0) || math.IsInf(g.Cell, 0) {
		return fmt.Errorf("cell size must be positive, got %g", g.Cell)
	}
	if !(g.Gap >= 0) || math.IsInf(g.Gap, 0) {
		return fmt.Errorf("gap must be non-negative, got %g", g.Gap)
	}
	return nil
}

// Pitch is the distance between the origins of two adjacent cells.
func (g Geometry) Pitch() float64 { return g.Cell + g.Gap }

// Point is a pixel position relative to the container's top-left corner.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Cell is a grid coordinate.
type Cell struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.Col, c.Row) }

// Extent is a pixel width and height.
type Extent struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// CellToPixel returns the top-left pixel of the cell at (col, row).
func (g Geometry) CellToPixel(col, row int) Point {
	return Point{
		X: g.Gap + float64(col)*g.Pitch(),
		Y: g.Gap + float64(row)*g.Pitch(),
	}
}

// PixelToCell snaps a pixel position to the nearest cell. It is not a
// containment test: a position just past a boundary rounds to whichever cell
// origin is closest, and positions left of or above the first cell yield
// negative coordinates.
func (g Geometry) PixelToCell(x, y float64) Cell {
	return Cell{
		Col: snap((x - g.Gap) / g.Pitch()),
		Row: snap((y - g.Gap) / g.Pitch()),
	}
}

// Capacity returns how many whole cells fit in a container of the given
// pixel size along each axis. Containers smaller than one gap hold nothing.
func (g Geometry) Capacity(width, height float64) (cols, rows int) {
	return g.fit(width), g.fit(height)
}

func (g Geometry) fit(dim float64) int {
	n := math.Floor((dim - g.Gap) / g.Pitch())
	if n < 0 || math.IsNaN(n) {
		return 0
	}
	return int(n)
}

// Dimensions returns the pixel size of a footprint. Interior gaps are part of
// the card; the gap after the last cell is not.
func (g Geometry) Dimensions(f Footprint) Extent {
	return Extent{
		W: float64(f.ColSpan)*g.Cell + float64(f.ColSpan-1)*g.Gap,
		H: float64(f.RowSpan)*g.Cell + float64(f.RowSpan-1)*g.Gap,
	}
}

// snap rounds half up, so -0.5 snaps to 0 and 0.5 snaps to 1.
func snap(v float64) int {
	return int(math.Floor(v + 0.5))
}
