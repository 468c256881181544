// Package pkg holds the dashgrid libraries.
//
// # Overview
//
// dashgrid lays out dashboard widget cards on a fixed-pitch grid. A card is
// dragged with the pointer, follows it freely while dragged, and on release
// snaps to the nearest cell, provided the card's footprint there stays inside
// the container and touches no other card. Otherwise it returns to where it
// was.
//
//  1. [grid] - The placement engine: geometry, widgets, drag state machine
//  2. [board] - Board files (TOML, JSON) that seed an engine
//  3. [render/sink] - SVG and JSON snapshots of a frame
//  4. [cache] - Rendered artifact cache (file, Redis, null)
//  5. [api] - HTTP adapter driving one engine
//  6. [errors], [observability] - Coded errors and event hooks
//
// # Data Flow
//
//	board file ──► [board] ──► [grid].Engine ◄── pointer events (TUI, HTTP)
//	                                │
//	                             Snapshot
//	                                │
//	                          [render/sink] ──► [cache] ──► SVG / JSON
//
// # Quick Start
//
//	e := grid.New(grid.DefaultGeometry(), 1280, 800)
//	_ = e.Add(grid.Widget{ID: "1", Kind: grid.KindBattery, Size: grid.SizeSmall})
//
//	e.PointerDown(grid.PointerEvent{WidgetID: "1", X: 40, Y: 40})
//	e.PointerMove(230, 40)
//	drop := e.PointerUp() // drop.Target == (1,0), drop.Committed == true
//
//	svg := sink.RenderSVG(e.Snapshot(), sink.WithDots())
//
// [grid]: github.com/matzehuels/dashgrid/pkg/grid
// [board]: github.com/matzehuels/dashgrid/pkg/board
// [render/sink]: github.com/matzehuels/dashgrid/pkg/render/sink
// [cache]: github.com/matzehuels/dashgrid/pkg/cache
// [api]: github.com/matzehuels/dashgrid/pkg/api
// [errors]: github.com/matzehuels/dashgrid/pkg/errors
// [observability]: github.com/matzehuels/dashgrid/pkg/observability
package pkg
