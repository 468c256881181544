// Package grid implements the placement engine behind a draggable widget board.
//
// Widgets are fixed-size cards anchored to integer cells of a snap grid. The
// engine owns the widget collection, converts between pixel coordinates and
// cells, validates candidate placements against overlap and bounds rules, and
// commits accepted placements. Rendering and pointer capture belong to the
// caller: a terminal UI, an HTTP front-end, or a test.
//
// # Geometry
//
// A [Geometry] fixes the base cell size and the gap between cells. Cell
// (col, row) has its top-left pixel at
//
//	x = Gap + col*(Cell+Gap)
//	y = Gap + row*(Cell+Gap)
//
// and [Geometry.PixelToCell] snaps a free pixel position back to the nearest
// cell, which may be negative. The number of cells a container can hold is
// floor((dimension - Gap) / (Cell + Gap)) along each axis.
//
// # Footprints
//
// Each widget [Size] maps to a [Footprint] in cells:
//
//	small  1x1
//	medium 2x1
//	large  2x2
//
// Two footprints overlap only when they share a cell; flush edges are allowed.
//
// # Dragging
//
// The drag protocol is a two-state machine driven by the caller:
//
//	Idle --PointerDown--> Dragging --PointerMove--> Dragging
//	Dragging --PointerUp--> Idle     (commit if the ghost is valid)
//	Dragging --PointerLeave--> Idle  (cancel, nothing changes)
//
// While dragging, [Engine.Ghost] reports the snapped candidate cell and whether
// dropping there would be accepted. A rejected drop leaves the committed
// collection untouched; animating the card back is the caller's business.
//
// # Concurrency
//
// An [Engine] is not safe for concurrent use. Every state transition happens
// synchronously inside the call that triggers it, so callers that receive
// input on several goroutines must serialize access themselves.
package grid
