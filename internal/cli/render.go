package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dashgrid/pkg/cache"
	"github.com/matzehuels/dashgrid/pkg/grid"
	"github.com/matzehuels/dashgrid/pkg/render/sink"
)

// defaultOutputBase names output files when rendering the built-in board.
const defaultOutputBase = "board"

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string        // output file (single format) or base path (multiple); "-" for stdout
	formats []sink.Format // output formats: "svg", "json"
	width   float64       // container width override in pixels (0 keeps the board's)
	height  float64       // container height override in pixels (0 keeps the board's)
	noCache bool          // bypass the artifact cache
	dots    bool          // draw the background dot grid
	hint    bool          // draw the status hint pill
	labels  bool          // draw card labels
}

// svgOptions returns the sink options and the tags that identify them in
// cache keys.
func (o *renderOpts) svgOptions() ([]sink.SVGOption, []string) {
	var opts []sink.SVGOption
	var tags []string
	if o.dots {
		opts, tags = append(opts, sink.WithDots()), append(tags, "dots")
	}
	if o.hint {
		opts, tags = append(opts, sink.WithHint()), append(tags, "hint")
	}
	if o.labels {
		opts, tags = append(opts, sink.WithLabels()), append(tags, "labels")
	}
	return opts, tags
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{dots: true, hint: true, labels: true}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a board to SVG or JSON",
		Long: `Render a board file (or the built-in default board) to SVG and/or JSON.

Rendered artifacts are cached under the XDG cache directory, keyed by the
board's snapshot, so rendering an unchanged board is a cache hit.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formats, err := parseFormats(formatsStr)
			if err != nil {
				return err
			}
			opts.formats = formats
			return c.runRender(cmd.Context(), boardArg(args), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple); - for stdout")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json (comma-separated)")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "container width in pixels (default: board width)")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "container height in pixels (default: board height)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.dots, "dots", opts.dots, "draw the background dot grid")
	cmd.Flags().BoolVar(&opts.hint, "hint", opts.hint, "draw the status hint")
	cmd.Flags().BoolVar(&opts.labels, "labels", opts.labels, "draw card labels")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	e, err := loadEngine(input, opts.width, opts.height)
	if err != nil {
		return err
	}
	for _, id := range e.Overflowing() {
		logger.Warnf("Widget %s does not fit the container", id)
	}
	snap := e.Snapshot()
	logger.Debugf("Loaded board: %d widgets on a %dx%d grid", len(snap.Widgets), snap.Cols, snap.Rows)

	store, err := newCache(opts.noCache)
	if err != nil {
		return err
	}
	defer store.Close()

	encoded, err := sink.RenderJSON(snap)
	if err != nil {
		return err
	}
	snapHash := cache.Hash(encoded)
	svgOpts, tags := opts.svgOptions()

	base := basePath(opts.output, input)
	for _, f := range opts.formats {
		key := cache.ArtifactKey(snapHash, string(f), tags...)
		data, hit, err := store.Get(ctx, key)
		if err != nil {
			logger.Debugf("Cache read failed: %v", err)
		}
		if !hit {
			if data, err = sink.Render(ctx, snap, f, svgOpts...); err != nil {
				return err
			}
			if err := store.Set(ctx, key, data, cache.DefaultTTL); err != nil {
				logger.Debugf("Cache write failed: %v", err)
			}
		}

		path := outputPath(opts.output, base, f, len(opts.formats))
		if err := writeOutput(path, data); err != nil {
			return err
		}
		if path != "-" {
			printFile(path)
			printBoardStats(snap, hit)
		}
	}
	prog.done("Rendered board")
	return nil
}

// loadEngine reads a board and builds its engine. Non-zero width and height
// override the board's container after the widgets are placed, so a smaller
// container reports overflow instead of failing validation.
func loadEngine(input string, width, height float64) (*grid.Engine, error) {
	b, err := loadBoard(input)
	if err != nil {
		return nil, err
	}
	e, err := b.Engine()
	if err != nil {
		return nil, err
	}
	if width > 0 || height > 0 {
		c := e.Container()
		if width > 0 {
			c.W = width
		}
		if height > 0 {
			c.H = height
		}
		e.SetContainerSize(c.W, c.H)
	}
	return e, nil
}

// basePath derives the base output path from the output and input file
// paths. Known format extensions are stripped from output; an empty output
// falls back to the input name without extension.
func basePath(output, input string) string {
	if output == "" {
		if input == "" {
			return defaultOutputBase
		}
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if _, err := sink.ParseFormat(strings.TrimPrefix(ext, ".")); err == nil {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPath picks the file for format f. A single format with an explicit
// output writes exactly there.
func outputPath(output, base string, f sink.Format, count int) string {
	if output == "-" {
		return "-"
	}
	if output != "" && count == 1 {
		return output
	}
	return fmt.Sprintf("%s.%s", base, f)
}

func writeOutput(path string, data []byte) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()
	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// nopCloser wraps a writer with a no-op Close.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput opens path for writing; "-" is standard output.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
