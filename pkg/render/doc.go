// Package render groups the presentation sinks for grid snapshots.
//
// Sinks never read engine state directly. They take a [grid.Snapshot], which
// already carries pixel rectangles, the ghost and the status hint, so a frame
// renders the same way no matter which adapter produced it.
//
// The [sink] subpackage writes SVG and JSON.
//
// [grid.Snapshot]: github.com/matzehuels/dashgrid/pkg/grid#Snapshot
// [sink]: github.com/matzehuels/dashgrid/pkg/render/sink
package render
