// Package sink renders board snapshots to output formats.
//
// A [grid.Snapshot] already holds every pixel rectangle a frame needs, so the
// sinks here only draw or encode it:
//
//   - [RenderSVG] draws the board as a standalone SVG document
//   - [RenderJSON] encodes the snapshot for browser front-ends
//
// [Render] dispatches on a [Format] and reports timing through
// [observability.Render].
//
// SVG output is deterministic: the same snapshot and options always produce
// the same bytes, which lets callers cache artifacts keyed by snapshot hash.
package sink
