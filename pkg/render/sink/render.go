package sink

import (
	"context"
	"strings"
	"time"

	errs "github.com/matzehuels/dashgrid/pkg/errors"
	"github.com/matzehuels/dashgrid/pkg/grid"
	"github.com/matzehuels/dashgrid/pkg/observability"
)

// Format is an output format.
type Format string

// Supported output formats.
const (
	FormatSVG  Format = "svg"
	FormatJSON Format = "json"
)

// Formats lists the supported output formats.
var Formats = []Format{FormatSVG, FormatJSON}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatSVG, FormatJSON:
		return f, nil
	}
	return "", errs.New(errs.ErrCodeInvalidFormat, "unsupported format %q (must be svg or json)", s)
}

// ContentType returns the MIME type of f.
func (f Format) ContentType() string {
	switch f {
	case FormatSVG:
		return "image/svg+xml"
	case FormatJSON:
		return "application/json"
	}
	return "application/octet-stream"
}

// Render renders s in format f. SVG options are ignored for JSON.
func Render(ctx context.Context, s grid.Snapshot, f Format, opts ...SVGOption) ([]byte, error) {
	hooks := observability.Render()
	hooks.OnRenderStart(ctx, string(f), len(s.Widgets))
	start := time.Now()

	var (
		data []byte
		err  error
	)
	switch f {
	case FormatSVG:
		data = RenderSVG(s, opts...)
	case FormatJSON:
		data, err = RenderJSON(s)
	default:
		err = errs.New(errs.ErrCodeInvalidFormat, "unsupported format %q", f)
	}

	hooks.OnRenderComplete(ctx, string(f), len(data), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return data, nil
}
