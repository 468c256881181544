package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	errs "github.com/matzehuels/dashgrid/pkg/errors"
	"github.com/matzehuels/dashgrid/pkg/grid"
)

// Terminal cells are scaled to engine pixels.
const (
	pxPerCol = 8.0
	pxPerRow = 16.0

	tuiHeader = 1 // title line above the board
	tuiFooter = 2 // hint and key help below it
)

const boardHelp = "drag to move · a add note · s/m/l resize · x remove · esc cancel · q quit"

// Board styles
var (
	boardStatusStyle = lipgloss.NewStyle().Foreground(colorWhite)
	boardHintStyle   = lipgloss.NewStyle().Foreground(colorGray).Background(lipgloss.Color("236")).Padding(0, 2)
)

// =============================================================================
// Command
// =============================================================================

func (c *CLI) boardCommand() *cobra.Command {
	var fit bool

	cmd := &cobra.Command{
		Use:   "board [file]",
		Short: "Arrange a board interactively in the terminal",
		Long: `Open a board in an interactive terminal view.

Drag cards with the mouse. They snap to the nearest free cell on release and
return to where they were when the target is taken or off the grid.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBoard(cmd.Context(), boardArg(args), fit)
		},
	}

	cmd.Flags().BoolVar(&fit, "fit", false, "size the grid to the terminal window")

	return cmd
}

func runBoard(ctx context.Context, input string, fit bool) error {
	logger := loggerFromContext(ctx)

	e, err := loadEngine(input, 0, 0)
	if err != nil {
		return err
	}

	p := tea.NewProgram(newBoardModel(e, fit),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("board: %w", err)
	}

	logger.Debug("board closed", "widgets", e.Len())
	return nil
}

// =============================================================================
// Model
// =============================================================================

// boardModel is the bubbletea model driving a grid engine from terminal
// mouse and key events. The engine is shared between model copies.
type boardModel struct {
	engine   *grid.Engine
	fit      bool
	width    int
	height   int
	selected string
	status   string
}

func newBoardModel(e *grid.Engine, fit bool) boardModel {
	return boardModel{engine: e, fit: fit}
}

func (m boardModel) Init() tea.Cmd {
	return nil
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if m.fit {
			rows := max(0, msg.Height-tuiHeader-tuiFooter)
			m.engine.SetContainerSize(float64(msg.Width)*pxPerCol, float64(rows)*pxPerRow)
		}
	case tea.MouseMsg:
		m = m.handleMouse(msg)
	case tea.BlurMsg:
		m = m.cancelDrag()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// toPixel maps a terminal cell to the container pixel at its centre.
func toPixel(x, y int) grid.Point {
	return grid.Point{
		X: (float64(x) + 0.5) * pxPerCol,
		Y: (float64(y-tuiHeader) + 0.5) * pxPerRow,
	}
}

func (m boardModel) handleMouse(msg tea.MouseMsg) boardModel {
	if tea.MouseEvent(msg).IsWheel() {
		return m
	}
	p := toPixel(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		w, ok := m.engine.WidgetAt(p)
		if !ok {
			m.selected = ""
			return m
		}
		m.selected = w.ID
		ev := grid.PointerEvent{
			WidgetID: w.ID,
			X:        p.X,
			Y:        p.Y,
			Button:   mouseButton(msg.Button),
			Region:   m.regionAt(w, p),
		}
		if m.engine.PointerDown(ev) {
			m.status = fmt.Sprintf("Dragging %s", w.ID)
		} else {
			m.status = fmt.Sprintf("Selected %s", w.ID)
		}
	case tea.MouseActionMotion:
		if !m.onBoard(p) {
			m = m.cancelDrag()
			break
		}
		m.engine.PointerMove(p.X, p.Y)
	case tea.MouseActionRelease:
		if d := m.engine.PointerUp(); d.WidgetID != "" {
			m.status = dropStatus(d)
		}
	}
	return m
}

// onBoard reports whether p lies inside the container. Leaving it while
// dragging cancels the drag.
func (m boardModel) onBoard(p grid.Point) bool {
	c := m.engine.Container()
	return p.X >= 0 && p.Y >= 0 && p.X < c.W && p.Y < c.H
}

func mouseButton(b tea.MouseButton) grid.Button {
	switch b {
	case tea.MouseButtonLeft:
		return grid.ButtonPrimary
	case tea.MouseButtonMiddle:
		return grid.ButtonMiddle
	default:
		return grid.ButtonSecondary
	}
}

// regionAt treats the lower half of a sticky note as its text area.
func (m boardModel) regionAt(w grid.Widget, p grid.Point) grid.Region {
	if w.Kind != grid.KindStickyNote {
		return grid.RegionSurface
	}
	origin, _ := m.engine.Position(w.ID)
	ext := m.engine.Geometry().Dimensions(w.Size.Footprint())
	if p.Y-origin.Y > ext.H/2 {
		return grid.RegionNoDrag
	}
	return grid.RegionSurface
}

func (m boardModel) cancelDrag() boardModel {
	if d := m.engine.PointerLeave(); d.WidgetID != "" {
		m.status = fmt.Sprintf("%s snapped back", d.WidgetID)
	}
	return m
}

func dropStatus(d grid.Drop) string {
	if d.Committed {
		return fmt.Sprintf("Moved %s to %s", d.WidgetID, d.Target)
	}
	return fmt.Sprintf("%s snapped back, %s is not free", d.WidgetID, d.Target)
}

var sizeKeys = map[string]grid.Size{
	"s": grid.SizeSmall,
	"m": grid.SizeMedium,
	"l": grid.SizeLarge,
}

func (m boardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()
	switch k {
	case "q", "ctrl+c":
		m.engine.PointerLeave()
		return m, tea.Quit
	case "esc":
		m = m.cancelDrag()
	case "a":
		w, err := m.engine.Place(grid.Widget{
			ID:   m.nextNoteID(),
			Kind: grid.KindStickyNote,
			Size: grid.SizeSmall,
		})
		if err != nil {
			m.status = errs.UserMessage(err)
			break
		}
		m.selected = w.ID
		m.status = fmt.Sprintf("Added %s at %s", w.ID, w.Cell())
	case "s", "m", "l":
		if m.selected == "" {
			m.status = "Click a widget first"
			break
		}
		size := sizeKeys[k]
		if m.engine.Resize(m.selected, size) {
			m.status = fmt.Sprintf("Resized %s to %s", m.selected, size)
		} else {
			m.status = fmt.Sprintf("No room to make %s %s", m.selected, size)
		}
	case "x":
		if m.selected == "" {
			m.status = "Click a widget first"
			break
		}
		if m.engine.Remove(m.selected) {
			m.status = fmt.Sprintf("Removed %s", m.selected)
		}
		m.selected = ""
	}
	return m, nil
}

func (m boardModel) nextNoteID() string {
	for n := m.engine.Len() + 1; ; n++ {
		id := fmt.Sprintf("note-%d", n)
		if _, taken := m.engine.Widget(id); !taken {
			return id
		}
	}
}

// =============================================================================
// View
// =============================================================================

func (m boardModel) View() string {
	s := m.engine.Snapshot()

	var b strings.Builder
	b.WriteString(StyleTitle.Render(appName))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  %d widgets · %dx%d grid", len(s.Widgets), s.Cols, s.Rows)))
	b.WriteString("\n")

	b.WriteString(m.drawBoard(s).String())
	b.WriteString("\n")

	b.WriteString(boardHintStyle.Render(s.Hint))
	if m.status != "" {
		b.WriteString("  " + boardStatusStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(boardHelp))
	return b.String()
}

// drawBoard paints the snapshot onto a canvas clipped to the terminal.
func (m boardModel) drawBoard(s grid.Snapshot) *canvas {
	w := int(s.Width / pxPerCol)
	h := int(s.Height / pxPerRow)
	if m.width > 0 {
		w = min(w, m.width)
	}
	if m.height > 0 {
		h = min(h, max(0, m.height-tuiHeader-tuiFooter))
	}
	c := newCanvas(w, h)

	for col := 0; col < s.Cols; col++ {
		for row := 0; row < s.Rows; row++ {
			p := s.Geometry.CellToPixel(col, row)
			c.set(int(p.X/pxPerCol), int(p.Y/pxPerRow), '·', styleDot)
		}
	}

	if g := s.Ghost; g != nil {
		st := styleGhostOK
		if !g.Valid {
			st = styleGhostBad
		}
		c.box(termRectOf(g.Origin.X, g.Origin.Y, g.Extent.W, g.Extent.H), st, true)
	}

	for _, p := range s.Widgets {
		r := termRectOf(p.X, p.Y, p.W, p.H)
		border := kindCanvasStyle(p.Kind)
		if p.ID == m.selected || p.Dragging {
			border = styleSelected
		}
		c.box(r, border, false)
		c.text(r.x0+2, r.y0+1, kindTitle(p.Kind), styleLabel, r.width()-4)
		c.text(r.x0+2, r.y0+2, fmt.Sprintf("%s · %s", p.ID, p.Size), styleDetail, r.width()-4)
		if p.Kind == grid.KindStickyNote && p.Text != "" {
			line, _, _ := strings.Cut(p.Text, "\n")
			c.text(r.x0+2, r.y0+r.height()/2+1, line, styleValue, r.width()-4)
		}
	}
	return c
}
