package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/matzehuels/dashgrid/pkg/grid"
)

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	dots   bool
	hint   bool
	labels bool
}

// WithDots draws the background dot pattern, one dot per grid pitch.
func WithDots() SVGOption { return func(r *svgRenderer) { r.dots = true } }

// WithHint draws the status pill centred at the bottom of the board.
func WithHint() SVGOption { return func(r *svgRenderer) { r.hint = true } }

// WithLabels writes the kind name (or a sticky note's text) on each card.
func WithLabels() SVGOption { return func(r *svgRenderer) { r.labels = true } }

// RenderSVG draws s as an SVG document the size of the container. Paint
// order is background, ghost, committed widgets, then the dragged widget.
func RenderSVG(s grid.Snapshot, opts ...SVGOption) []byte {
	var r svgRenderer
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		s.Width, s.Height, s.Width, s.Height)

	renderBackground(&buf, s, r.dots)
	if s.Ghost != nil {
		renderGhost(&buf, *s.Ghost)
	}
	for _, p := range s.Widgets {
		renderCard(&buf, p, r.labels)
	}
	if r.hint {
		renderHint(&buf, s)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderBackground(buf *bytes.Buffer, s grid.Snapshot, dots bool) {
	fmt.Fprintf(buf, `  <rect class="surface" width="%.1f" height="%.1f" fill="%s"/>`+"\n", s.Width, s.Height, colorSurface)
	if !dots {
		return
	}
	pitch := s.Geometry.Pitch()
	fmt.Fprintf(buf, "  <defs>\n")
	fmt.Fprintf(buf, `    <pattern id="dots" x="%.1f" y="%.1f" width="%.1f" height="%.1f" patternUnits="userSpaceOnUse">`+"\n",
		s.Geometry.Gap, s.Geometry.Gap, pitch, pitch)
	fmt.Fprintf(buf, `      <circle cx="1" cy="1" r="1" fill="%s"/>`+"\n", colorDot)
	fmt.Fprintf(buf, "    </pattern>\n  </defs>\n")
	fmt.Fprintf(buf, `  <rect class="dots" width="%.1f" height="%.1f" fill="url(#dots)" opacity="%.2f"/>`+"\n",
		s.Width, s.Height, dotOpacity)
}

func renderGhost(buf *bytes.Buffer, g grid.Ghost) {
	color := colorGhostBad
	if g.Valid {
		color = colorGhostOK
	}
	fmt.Fprintf(buf, `  <rect class="ghost" data-valid="%t" x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="%.1f" fill="%s" fill-opacity="%.2f" stroke="%s" stroke-width="2" stroke-dasharray="8 6"/>`+"\n",
		g.Valid, g.Origin.X, g.Origin.Y, g.Extent.W, g.Extent.H, radius(g.Extent), color, ghostOpacity, color)
}

func renderCard(buf *bytes.Buffer, p grid.Placed, labels bool) {
	st := styleFor(p.Kind)
	opacity := cardOpacity
	class := "widget"
	if p.Dragging {
		opacity = dragOpacity
		class = "widget dragging"
	}

	fmt.Fprintf(buf, `  <g class="%s" id="widget-%s" data-kind="%s" data-size="%s">`+"\n",
		class, escape(p.ID), escape(string(p.Kind)), escape(string(p.Size)))
	fmt.Fprintf(buf, `    <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="%.1f" fill="%s" fill-opacity="%.2f" stroke="%s" stroke-opacity="0.1"/>`+"\n",
		p.X, p.Y, p.W, p.H, radius(grid.Extent{W: p.W, H: p.H}), st.fill, opacity, colorCardLine)
	if labels {
		fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="middle" font-family="system-ui, sans-serif" font-size="%.0f" fill="%s">%s</text>`+"\n",
			p.X+p.W/2, p.Y+p.H/2, labelFontSize, colorText, escape(cardLabel(p, st)))
	}
	buf.WriteString("  </g>\n")
}

func renderHint(buf *bytes.Buffer, s grid.Snapshot) {
	w := float64(len(s.Hint))*hintFontSize*0.6 + 48
	x := (s.Width - w) / 2
	y := s.Height - hintMargin - hintPillHeight
	fmt.Fprintf(buf, `  <g class="hint">`+"\n")
	fmt.Fprintf(buf, `    <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="%.1f" fill="%s" fill-opacity="0.6"/>`+"\n",
		x, y, w, hintPillHeight, hintPillHeight/2, colorHintPill)
	fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="middle" font-family="system-ui, sans-serif" font-size="%.0f" fill="%s">%s</text>`+"\n",
		s.Width/2, y+hintPillHeight/2, hintFontSize, colorHintText, escape(s.Hint))
	buf.WriteString("  </g>\n")
}

// cardLabel is the text drawn on a card. Sticky notes show their first line,
// cut to fit the card's width.
func cardLabel(p grid.Placed, st kindStyle) string {
	if p.Kind != grid.KindStickyNote || p.Text == "" {
		return st.label
	}
	line, _, _ := strings.Cut(p.Text, "\n")
	maxChars := max(1, int(p.W*0.85/(labelFontSize*0.55)))
	if r := []rune(line); len(r) > maxChars {
		return string(r[:max(1, maxChars-1)]) + "…"
	}
	return line
}

func radius(e grid.Extent) float64 {
	return min(cardRadius, e.W/2, e.H/2)
}

func escape(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
