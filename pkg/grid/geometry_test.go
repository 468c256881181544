package grid

import "testing"

func TestCellToPixel(t *testing.T) {
	g := DefaultGeometry()
	tests := []struct {
		name     string
		col, row int
		want     Point
	}{
		{"origin", 0, 0, Point{X: 24, Y: 24}},
		{"one right", 1, 0, Point{X: 208, Y: 24}},
		{"one down", 0, 1, Point{X: 24, Y: 208}},
		{"diagonal", 3, 2, Point{X: 576, Y: 392}},
		{"negative", -1, 0, Point{X: -160, Y: 24}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.CellToPixel(tt.col, tt.row); got != tt.want {
				t.Errorf("CellToPixel(%d, %d) = %v, want %v", tt.col, tt.row, got, tt.want)
			}
		})
	}
}

func TestPixelToCell(t *testing.T) {
	g := DefaultGeometry()
	tests := []struct {
		name string
		x, y float64
		want Cell
	}{
		{"exact origin", 24, 24, Cell{0, 0}},
		{"just before midpoint", 24 + 91, 24, Cell{0, 0}},
		{"midpoint rounds up", 24 + 92, 24, Cell{1, 0}},
		{"slightly past boundary", 210, 30, Cell{1, 0}},
		{"top-left corner of container", 0, 0, Cell{0, 0}},
		{"left of the grid", -100, 24, Cell{-1, 0}},
		{"negative midpoint rounds up", 24 - 92, 24, Cell{0, 0}},
		{"far cell", 24 + 4*184 + 30, 24 + 2*184 - 30, Cell{4, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.PixelToCell(tt.x, tt.y); got != tt.want {
				t.Errorf("PixelToCell(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestPixelToCellInvertsCellToPixel(t *testing.T) {
	geometries := []Geometry{DefaultGeometry(), {Cell: 10, Gap: 0}, {Cell: 33.5, Gap: 7}}
	for _, g := range geometries {
		for col := -3; col <= 12; col++ {
			for row := -3; row <= 12; row++ {
				p := g.CellToPixel(col, row)
				if got := g.PixelToCell(p.X, p.Y); got != (Cell{col, row}) {
					t.Fatalf("%+v: PixelToCell(CellToPixel(%d, %d)) = %v", g, col, row, got)
				}
			}
		}
	}
}

func TestCapacity(t *testing.T) {
	g := DefaultGeometry()
	tests := []struct {
		name          string
		width, height float64
		cols, rows    int
	}{
		{"exact five by five", 944, 944, 5, 5},
		{"one pixel short", 943, 943, 4, 4},
		{"wide", 1280, 800, 6, 4},
		{"empty container", 0, 0, 0, 0},
		{"smaller than gap", 10, 10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols, rows := g.Capacity(tt.width, tt.height)
			if cols != tt.cols || rows != tt.rows {
				t.Errorf("Capacity(%v, %v) = (%d, %d), want (%d, %d)",
					tt.width, tt.height, cols, rows, tt.cols, tt.rows)
			}
		})
	}
}

func TestDimensions(t *testing.T) {
	g := DefaultGeometry()
	tests := []struct {
		size Size
		want Extent
	}{
		{SizeSmall, Extent{W: 160, H: 160}},
		{SizeMedium, Extent{W: 344, H: 160}},
		{SizeLarge, Extent{W: 344, H: 344}},
	}

	for _, tt := range tests {
		t.Run(string(tt.size), func(t *testing.T) {
			if got := g.Dimensions(tt.size.Footprint()); got != tt.want {
				t.Errorf("Dimensions(%s) = %v, want %v", tt.size, got, tt.want)
			}
		})
	}
}

func TestGeometryValidate(t *testing.T) {
	tests := []struct {
		name    string
		g       Geometry
		wantErr bool
	}{
		{"default", DefaultGeometry(), false},
		{"no gap", Geometry{Cell: 10}, false},
		{"zero cell", Geometry{Cell: 0, Gap: 4}, true},
		{"negative gap", Geometry{Cell: 10, Gap: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.g.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
