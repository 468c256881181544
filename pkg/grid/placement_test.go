package grid

import (
	"testing"

	errs "github.com/matzehuels/dashgrid/pkg/errors"
)

// fiveByFive is the pixel size of a container holding exactly 5x5 default cells.
const fiveByFive = DefaultGap + 5*(DefaultCell+DefaultGap)

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"same cell", Rect{0, 0, 1, 1}, Rect{0, 0, 1, 1}, true},
		{"flush right", Rect{0, 0, 1, 1}, Rect{1, 0, 1, 1}, false},
		{"flush below", Rect{0, 0, 1, 1}, Rect{0, 1, 1, 1}, false},
		{"diagonal touch", Rect{0, 0, 1, 1}, Rect{1, 1, 1, 1}, false},
		{"medium covers neighbour", Rect{0, 0, 2, 1}, Rect{1, 0, 1, 1}, true},
		{"large contains small", Rect{2, 2, 2, 2}, Rect{3, 3, 1, 1}, true},
		{"far apart", Rect{0, 0, 2, 2}, Rect{4, 4, 1, 1}, false},
		{"partial overlap", Rect{0, 0, 2, 2}, Rect{1, 1, 2, 2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("%v.Intersects(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("%v.Intersects(%v) = %v, want %v (swapped)", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestOverlaps(t *testing.T) {
	widgets := []Widget{
		{ID: "a", Size: SizeSmall, Col: 0, Row: 0},
		{ID: "b", Size: SizeMedium, Col: 2, Row: 0},
	}
	tests := []struct {
		name string
		id   string
		r    Rect
		want bool
	}{
		{"self is excluded", "a", Rect{0, 0, 1, 1}, false},
		{"flush with a", "c", Rect{1, 0, 1, 1}, false},
		{"onto b's second cell", "c", Rect{3, 0, 1, 1}, true},
		{"medium bridging a and b", "c", Rect{1, 0, 2, 1}, true},
		{"below everything", "c", Rect{0, 1, 2, 2}, false},
		{"moving b onto itself", "b", Rect{2, 0, 2, 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.id, tt.r, widgets); got != tt.want {
				t.Errorf("Overlaps(%q, %v) = %v, want %v", tt.id, tt.r, got, tt.want)
			}
		})
	}
}

func TestOverlapsIsSymmetric(t *testing.T) {
	sizes := Sizes
	for _, sa := range sizes {
		for _, sb := range sizes {
			for col := -2; col <= 2; col++ {
				for row := -2; row <= 2; row++ {
					a := Widget{ID: "a", Size: sa}
					b := Widget{ID: "b", Size: sb, Col: col, Row: row}
					ab := Overlaps("a", a.Rect(), []Widget{b})
					ba := Overlaps("b", b.Rect(), []Widget{a})
					if ab != ba {
						t.Fatalf("%s at (0,0) vs %s at (%d,%d): %v != %v", sa, sb, col, row, ab, ba)
					}
				}
			}
		}
	}
}

func TestFlushAdjacentPlacementIsValid(t *testing.T) {
	g := DefaultGeometry()
	widgets := []Widget{{ID: "a", Size: SizeSmall, Col: 0, Row: 0}}
	b := Widget{ID: "b", Size: SizeSmall, Col: 1, Row: 0}

	if !g.ValidPlacement(b.ID, b.Rect(), widgets, fiveByFive, fiveByFive) {
		t.Error("flush 1x1 widgets at (0,0) and (1,0) should be a valid placement")
	}
}

func TestOutOfBounds(t *testing.T) {
	g := DefaultGeometry()
	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"origin", Rect{0, 0, 1, 1}, false},
		{"medium fits exactly", Rect{3, 0, 2, 1}, false},
		{"medium past right edge", Rect{4, 0, 2, 1}, true},
		{"large past bottom edge", Rect{0, 4, 2, 2}, true},
		{"bottom-right corner", Rect{4, 4, 1, 1}, false},
		{"negative col", Rect{-1, 0, 1, 1}, true},
		{"negative row", Rect{0, -1, 1, 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.OutOfBounds(tt.r, fiveByFive, fiveByFive); got != tt.want {
				t.Errorf("OutOfBounds(%v) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestOutOfBoundsFollowsContainerSize(t *testing.T) {
	g := DefaultGeometry()
	r := Rect{4, 0, 2, 1}

	if !g.OutOfBounds(r, fiveByFive, fiveByFive) {
		t.Fatal("medium at col 4 should not fit five columns")
	}
	wider := fiveByFive + DefaultCell + DefaultGap
	if g.OutOfBounds(r, wider, fiveByFive) {
		t.Error("medium at col 4 should fit six columns")
	}
}

func TestCheck(t *testing.T) {
	g := DefaultGeometry()
	tests := []struct {
		name    string
		widgets []Widget
		code    errs.Code
	}{
		{
			name: "valid",
			widgets: []Widget{
				{ID: "a", Size: SizeLarge, Col: 0, Row: 0},
				{ID: "b", Size: SizeMedium, Col: 2, Row: 0},
			},
		},
		{
			name: "duplicate id",
			widgets: []Widget{
				{ID: "a", Col: 0, Row: 0},
				{ID: "a", Col: 1, Row: 0},
			},
			code: errs.ErrCodeDuplicateWidget,
		},
		{
			name: "overlap",
			widgets: []Widget{
				{ID: "a", Size: SizeLarge, Col: 0, Row: 0},
				{ID: "b", Size: SizeSmall, Col: 1, Row: 1},
			},
			code: errs.ErrCodePlacementRejected,
		},
		{
			name:    "out of bounds",
			widgets: []Widget{{ID: "a", Size: SizeMedium, Col: 4, Row: 0}},
			code:    errs.ErrCodePlacementRejected,
		},
		{
			name: "empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(tt.widgets, g, fiveByFive, fiveByFive)
			if tt.code == "" {
				if err != nil {
					t.Errorf("Check() = %v, want nil", err)
				}
				return
			}
			if !errs.Is(err, tt.code) {
				t.Errorf("Check() = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestDefaultWidgetsAreValid(t *testing.T) {
	if err := Check(DefaultWidgets(), DefaultGeometry(), 1280, 800); err != nil {
		t.Errorf("default widgets should fit a 1280x800 container: %v", err)
	}
}
