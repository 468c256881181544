package sink

import (
	"encoding/json"

	"github.com/matzehuels/dashgrid/pkg/grid"
)

// RenderJSON encodes s as pretty-printed JSON. The document carries the
// geometry, container size and capacity, every widget with its pixel
// rectangle in paint order, the ghost while a drag is active, and the
// status hint.
func RenderJSON(s grid.Snapshot) ([]byte, error) {
	if s.Widgets == nil {
		s.Widgets = []grid.Placed{}
	}
	return json.MarshalIndent(s, "", "  ")
}
