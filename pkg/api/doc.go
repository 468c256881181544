// Package api exposes a grid engine over HTTP.
//
// A [Server] owns one [grid.Engine] and serializes every request against it
// with a mutex, so a browser front-end (or several) can drive the same board.
// Routes:
//
//	GET    /board                 snapshot as JSON
//	GET    /board.svg             snapshot as SVG, through the artifact cache
//	POST   /pointer/down          start a drag
//	POST   /pointer/move          move the dragged widget
//	POST   /pointer/up            drop the dragged widget
//	POST   /pointer/leave         cancel the drag
//	PUT    /container             set the container size
//	POST   /widgets               add a widget (auto-placed without col/row)
//	DELETE /widgets/{id}          remove a widget
//	PUT    /widgets/{id}/size     resize a widget
//
// Errors are returned as {"code": "...", "message": "..."} using the codes of
// package errors, with a matching HTTP status.
//
// Layout state lives in memory for the life of the server.
package api
