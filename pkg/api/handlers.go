package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/matzehuels/dashgrid/pkg/cache"
	errs "github.com/matzehuels/dashgrid/pkg/errors"
	"github.com/matzehuels/dashgrid/pkg/grid"
	"github.com/matzehuels/dashgrid/pkg/render/sink"
)

// =============================================================================
// Board
// =============================================================================

func (s *Server) snapshot() grid.Snapshot {
	var snap grid.Snapshot
	s.withEngine(func(e *grid.Engine) { snap = e.Snapshot() })
	return snap
}

func (s *Server) getBoard(w http.ResponseWriter, r *http.Request) {
	data, err := sink.Render(r.Context(), s.snapshot(), sink.FormatJSON)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", sink.FormatJSON.ContentType())
	_, _ = w.Write(data)
}

// getBoardSVG serves the current frame as SVG. Frames are cached by the hash
// of their JSON encoding, so idle boards are drawn once.
func (s *Server) getBoardSVG(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	snap := s.snapshot()

	encoded, err := sink.RenderJSON(snap)
	if err != nil {
		writeError(w, errs.Wrap(errs.ErrCodeInternal, err, "encode snapshot"))
		return
	}
	key := cache.ArtifactKey(cache.Hash(encoded), string(sink.FormatSVG), "dots", "hint", "labels")

	data, hit, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("artifact cache read failed", "error", err)
	}
	if !hit {
		data, err = sink.Render(ctx, snap, sink.FormatSVG, sink.WithDots(), sink.WithHint(), sink.WithLabels())
		if err != nil {
			writeError(w, err)
			return
		}
		if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
			s.logger.Warn("artifact cache write failed", "error", err)
		}
	}

	w.Header().Set("Content-Type", sink.FormatSVG.ContentType())
	w.Header().Set("X-Cache", cacheStatus(hit))
	_, _ = w.Write(data)
}

func cacheStatus(hit bool) string {
	if hit {
		return "HIT"
	}
	return "MISS"
}

// =============================================================================
// Pointer
// =============================================================================

type pointerDownRequest struct {
	// WidgetID names the pressed widget. When empty the widget under (X, Y)
	// is used.
	WidgetID string  `json:"widget_id"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Button   string  `json:"button"`
	Region   string  `json:"region"`
}

type pointerDownResponse struct {
	Started  bool   `json:"started"`
	WidgetID string `json:"widget_id,omitempty"`
}

type pointerMoveRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (s *Server) pointerDown(w http.ResponseWriter, r *http.Request) {
	var req pointerDownRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	button, err := parseButton(req.Button)
	if err != nil {
		writeError(w, err)
		return
	}
	region, err := parseRegion(req.Region)
	if err != nil {
		writeError(w, err)
		return
	}

	var resp pointerDownResponse
	s.withEngine(func(e *grid.Engine) {
		id := req.WidgetID
		if id == "" {
			if hit, ok := e.WidgetAt(grid.Point{X: req.X, Y: req.Y}); ok {
				id = hit.ID
			}
		}
		ev := grid.PointerEvent{WidgetID: id, X: req.X, Y: req.Y, Button: button, Region: region}
		if e.PointerDown(ev) {
			resp = pointerDownResponse{Started: true, WidgetID: id}
		}
	})
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) pointerMove(w http.ResponseWriter, r *http.Request) {
	var req pointerMoveRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	var snap grid.Snapshot
	s.withEngine(func(e *grid.Engine) {
		e.PointerMove(req.X, req.Y)
		snap = e.Snapshot()
	})
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) pointerUp(w http.ResponseWriter, r *http.Request) {
	var d grid.Drop
	s.withEngine(func(e *grid.Engine) { d = e.PointerUp() })
	writeJSON(w, http.StatusOK, d)
}

func (s *Server) pointerLeave(w http.ResponseWriter, r *http.Request) {
	var d grid.Drop
	s.withEngine(func(e *grid.Engine) { d = e.PointerLeave() })
	writeJSON(w, http.StatusOK, d)
}

func parseButton(s string) (grid.Button, error) {
	switch strings.ToLower(s) {
	case "", "primary", "left":
		return grid.ButtonPrimary, nil
	case "middle":
		return grid.ButtonMiddle, nil
	case "secondary", "right":
		return grid.ButtonSecondary, nil
	}
	return 0, errs.New(errs.ErrCodeInvalidInput, "unknown button %q", s)
}

func parseRegion(s string) (grid.Region, error) {
	switch strings.ToLower(s) {
	case "", "surface":
		return grid.RegionSurface, nil
	case "no-drag":
		return grid.RegionNoDrag, nil
	}
	return 0, errs.New(errs.ErrCodeInvalidInput, "unknown region %q", s)
}

// =============================================================================
// Container
// =============================================================================

type containerRequest struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type containerResponse struct {
	Cols        int      `json:"cols"`
	Rows        int      `json:"rows"`
	Overflowing []string `json:"overflowing"`
}

func (s *Server) putContainer(w http.ResponseWriter, r *http.Request) {
	var req containerRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := errs.ValidateDimension("width", req.Width); err != nil {
		writeError(w, err)
		return
	}
	if err := errs.ValidateDimension("height", req.Height); err != nil {
		writeError(w, err)
		return
	}

	resp := containerResponse{Overflowing: []string{}}
	s.withEngine(func(e *grid.Engine) {
		e.SetContainerSize(req.Width, req.Height)
		resp.Cols, resp.Rows = e.Capacity()
		resp.Overflowing = append(resp.Overflowing, e.Overflowing()...)
	})
	writeJSON(w, http.StatusOK, resp)
}

// =============================================================================
// Widgets
// =============================================================================

// addWidgetRequest is the body of POST /widgets. Col and Row are optional;
// a widget without them is auto-placed.
type addWidgetRequest struct {
	ID   string `json:"id"`
	Kind string `json:"kind"`
	Size string `json:"size"`
	Col  *int   `json:"col"`
	Row  *int   `json:"row"`
	Text string `json:"text"`
}

type resizeRequest struct {
	Size string `json:"size"`
}

func (s *Server) addWidget(w http.ResponseWriter, r *http.Request) {
	var req addWidgetRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	kind, err := grid.ParseKind(req.Kind)
	if err != nil {
		writeError(w, err)
		return
	}
	size, err := grid.ParseSize(req.Size)
	if err != nil {
		writeError(w, err)
		return
	}
	if (req.Col == nil) != (req.Row == nil) {
		writeError(w, errs.New(errs.ErrCodeInvalidInput, "col and row must be given together"))
		return
	}

	wg := grid.Widget{ID: req.ID, Kind: kind, Size: size, Text: req.Text}
	if wg.ID == "" {
		wg.ID = s.newID()
	}

	s.withEngine(func(e *grid.Engine) {
		if req.Col == nil {
			wg, err = e.Place(wg)
			return
		}
		wg.Col, wg.Row = *req.Col, *req.Row
		err = e.Add(wg)
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, wg)
}

func (s *Server) removeWidget(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var ok bool
	s.withEngine(func(e *grid.Engine) { ok = e.Remove(id) })
	if !ok {
		writeError(w, widgetNotFound(id))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) resizeWidget(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req resizeRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	size, err := grid.ParseSize(req.Size)
	if err != nil {
		writeError(w, err)
		return
	}

	var (
		wg     grid.Widget
		exists bool
		ok     bool
	)
	s.withEngine(func(e *grid.Engine) {
		if _, exists = e.Widget(id); !exists {
			return
		}
		ok = e.Resize(id, size)
		wg, _ = e.Widget(id)
	})
	switch {
	case !exists:
		writeError(w, widgetNotFound(id))
	case !ok:
		writeError(w, errs.New(errs.ErrCodePlacementRejected, "widget %q cannot grow to %s at %s", id, size, wg.Cell()))
	default:
		writeJSON(w, http.StatusOK, wg)
	}
}

func widgetNotFound(id string) error {
	return errs.New(errs.ErrCodeWidgetNotFound, "widget %q not found", id)
}

func newWidgetID() string { return uuid.NewString() }
