package sink

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"
	"testing"

	"github.com/matzehuels/dashgrid/pkg/grid"
)

func seededEngine(t *testing.T) *grid.Engine {
	t.Helper()
	e := grid.New(grid.DefaultGeometry(), 1280, 800)
	for _, w := range grid.DefaultWidgets() {
		if err := e.Add(w); err != nil {
			t.Fatalf("Add(%s) = %v", w.ID, err)
		}
	}
	return e
}

func TestRenderSVGWellFormed(t *testing.T) {
	e := seededEngine(t)
	svg := RenderSVG(e.Snapshot(), WithDots(), WithHint(), WithLabels())

	dec := xml.NewDecoder(bytes.NewReader(svg))
	for {
		_, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("invalid XML: %v\n%s", err, svg)
		}
	}

	want := []string{
		`viewBox="0 0 1280.0 800.0"`,
		`id="widget-1"`,
		`id="widget-5"`,
		`data-kind="calendar"`,
		`data-size="large"`,
		`id="dots"`,
		grid.HintIdle,
		">Battery<",
	}
	for _, s := range want {
		if !bytes.Contains(svg, []byte(s)) {
			t.Errorf("SVG missing %q", s)
		}
	}
}

func TestRenderSVGOptions(t *testing.T) {
	snap := seededEngine(t).Snapshot()
	svg := string(RenderSVG(snap))

	for _, s := range []string{`id="dots"`, `class="hint"`, "<text"} {
		if strings.Contains(svg, s) {
			t.Errorf("SVG without options should not contain %q", s)
		}
	}
}

func TestRenderSVGDragPaintOrder(t *testing.T) {
	e := seededEngine(t)
	g := e.Geometry()
	origin := g.CellToPixel(0, 0)
	e.PointerDown(grid.PointerEvent{WidgetID: "1", X: origin.X + 5, Y: origin.Y + 5})
	e.PointerMove(origin.X+5+g.Pitch(), origin.Y+5+g.Pitch())

	svg := string(RenderSVG(e.Snapshot()))

	ghost := strings.Index(svg, `class="ghost"`)
	first := strings.Index(svg, `id="widget-2"`)
	dragged := strings.Index(svg, `id="widget-1"`)
	if ghost < 0 || first < 0 || dragged < 0 {
		t.Fatalf("missing elements in SVG:\n%s", svg)
	}
	if !(ghost < first && first < dragged) {
		t.Errorf("paint order ghost=%d widget-2=%d widget-1=%d, want ghost < committed < dragged", ghost, first, dragged)
	}
	if !strings.Contains(svg, `class="widget dragging" id="widget-1"`) {
		t.Error("dragged widget not marked")
	}
	if !strings.Contains(svg, `data-valid="true"`) {
		t.Error("ghost over a free cell should be valid")
	}
}

func TestRenderSVGInvalidGhost(t *testing.T) {
	e := seededEngine(t)
	g := e.Geometry()
	origin := g.CellToPixel(0, 0)
	target := g.CellToPixel(2, 0)
	e.PointerDown(grid.PointerEvent{WidgetID: "1", X: origin.X, Y: origin.Y})
	e.PointerMove(target.X, target.Y)

	svg := string(RenderSVG(e.Snapshot()))
	if !strings.Contains(svg, `data-valid="false"`) || !strings.Contains(svg, colorGhostBad) {
		t.Error("ghost over an occupied cell should be drawn invalid")
	}
}

func TestRenderSVGEscapesText(t *testing.T) {
	e := grid.New(grid.DefaultGeometry(), 1280, 800)
	note := grid.Widget{ID: "n", Kind: grid.KindStickyNote, Size: grid.SizeMedium, Text: "a < b & c\nsecond line"}
	if err := e.Add(note); err != nil {
		t.Fatal(err)
	}

	svg := string(RenderSVG(e.Snapshot(), WithLabels()))
	if !strings.Contains(svg, ">a &lt; b &amp; c<") {
		t.Errorf("sticky note label not escaped:\n%s", svg)
	}
	if strings.Contains(svg, "second line") {
		t.Error("only the first line of a note should be drawn")
	}
}

func TestRenderSVGDeterministic(t *testing.T) {
	snap := seededEngine(t).Snapshot()
	a := RenderSVG(snap, WithDots(), WithLabels())
	b := RenderSVG(snap, WithDots(), WithLabels())
	if !bytes.Equal(a, b) {
		t.Error("RenderSVG should be deterministic")
	}
}

func TestCardLabel(t *testing.T) {
	long := strings.Repeat("x", 200)
	tests := []struct {
		name string
		p    grid.Placed
		want string
	}{
		{
			name: "kind label",
			p:    grid.Placed{Widget: grid.Widget{Kind: grid.KindCar}, W: 160},
			want: "Car",
		},
		{
			name: "empty note",
			p:    grid.Placed{Widget: grid.Widget{Kind: grid.KindStickyNote}, W: 160},
			want: "Note",
		},
		{
			name: "note text",
			p:    grid.Placed{Widget: grid.Widget{Kind: grid.KindStickyNote, Text: "milk"}, W: 160},
			want: "milk",
		},
		{
			name: "truncated",
			p:    grid.Placed{Widget: grid.Widget{Kind: grid.KindStickyNote, Text: long}, W: 160},
			want: strings.Repeat("x", 16) + "…",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cardLabel(tt.p, styleFor(tt.p.Kind)); got != tt.want {
				t.Errorf("cardLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRadius(t *testing.T) {
	if got := radius(grid.Extent{W: 160, H: 160}); got != cardRadius {
		t.Errorf("radius(160x160) = %v, want %v", got, cardRadius)
	}
	if got := radius(grid.Extent{W: 40, H: 20}); got != 10 {
		t.Errorf("radius(40x20) = %v, want 10", got)
	}
}
