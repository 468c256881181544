package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dashgrid/pkg/board"
	"github.com/matzehuels/dashgrid/pkg/grid"
)

// checkCommand creates the check command.
func (c *CLI) checkCommand() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Validate a board file",
		Long: `Validate a board file: known kinds and sizes, well-formed unique ids, every
widget inside the container and no two widgets overlapping.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context(), boardArg(args), quiet)
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only report errors")
	return cmd
}

func runCheck(ctx context.Context, input string, quiet bool) error {
	logger := loggerFromContext(ctx)

	b, err := loadBoard(input)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded %d widgets", len(b.Widgets))

	if quiet {
		return nil
	}

	name := input
	if name == "" {
		name = "default board"
	}
	cols, rows := b.Geometry.Capacity(b.Width, b.Height)
	printSuccess("%s is valid", name)
	printKeyValue("Container", fmt.Sprintf("%.0fx%.0f px", b.Width, b.Height))
	printKeyValue("Grid", fmt.Sprintf("%d cols x %d rows", cols, rows))
	printKeyValue("Pitch", fmt.Sprintf("%.0f px (cell %.0f, gap %.0f)", b.Geometry.Pitch(), b.Geometry.Cell, b.Geometry.Gap))
	printNewline()
	fmt.Println(widgetTable(b))
	return nil
}

// widgetTable lists a board's widgets.
func widgetTable(b board.Board) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, 0, len(b.Widgets))
	for _, w := range b.Widgets {
		fp := w.Size.Footprint()
		rows = append(rows, []string{
			w.ID,
			string(w.Kind),
			string(w.Size),
			w.Cell().String(),
			strconv.Itoa(fp.ColSpan) + "x" + strconv.Itoa(fp.RowSpan),
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("ID", "Kind", "Size", "Cell", "Span").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return lipgloss.NewStyle().Foreground(colorCyan)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		}).
		Render()
}

// initCommand creates the init command, which writes the default board.
func (c *CLI) initCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [file]",
		Short: "Write the default board to a file",
		Long:  `Write the default board (five widgets on a 1280x800 container) to a .toml or .json file as a starting point.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := boardArg(args)
			if path == "" {
				path = defaultOutputBase + ".toml"
			}
			return runInit(cmd.Context(), path, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func runInit(ctx context.Context, path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}
	if err := board.WriteFile(path, board.Default()); err != nil {
		return err
	}
	loggerFromContext(ctx).Debugf("Wrote %d widgets", len(grid.DefaultWidgets()))
	printSuccess("Created board")
	printFile(path)
	printNextStep("Open it", appName+" board "+path)
	return nil
}
