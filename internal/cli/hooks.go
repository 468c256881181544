package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// gridLogHooks logs engine events at debug level.
type gridLogHooks struct{ logger *log.Logger }

func (h gridLogHooks) OnDragStart(id string) {
	h.logger.Debug("drag start", "widget", id)
}

func (h gridLogHooks) OnDrop(id string, col, row int, committed bool) {
	h.logger.Debug("drop", "widget", id, "col", col, "row", row, "committed", committed)
}

func (h gridLogHooks) OnDragCancel(id string) {
	h.logger.Debug("drag cancelled", "widget", id)
}

func (h gridLogHooks) OnAdd(id string, col, row int) {
	h.logger.Debug("widget added", "widget", id, "col", col, "row", row)
}

func (h gridLogHooks) OnRemove(id string) {
	h.logger.Debug("widget removed", "widget", id)
}

func (h gridLogHooks) OnResize(id, size string, committed bool) {
	h.logger.Debug("resize", "widget", id, "size", size, "committed", committed)
}

// renderLogHooks logs render timings.
type renderLogHooks struct{ logger *log.Logger }

func (h renderLogHooks) OnRenderStart(_ context.Context, format string, widgets int) {
	h.logger.Debug("render start", "format", format, "widgets", widgets)
}

func (h renderLogHooks) OnRenderComplete(_ context.Context, format string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Error("render failed", "format", format, "error", err)
		return
	}
	h.logger.Debug("render complete", "format", format, "bytes", size, "duration", d.Round(time.Microsecond))
}

// cacheLogHooks logs artifact cache traffic.
type cacheLogHooks struct{ logger *log.Logger }

func (h cacheLogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h cacheLogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h cacheLogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}
