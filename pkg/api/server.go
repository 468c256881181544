package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/dashgrid/pkg/cache"
	"github.com/matzehuels/dashgrid/pkg/grid"
)

// Server serves one engine over HTTP. Create servers with [New].
type Server struct {
	mu     sync.Mutex
	engine *grid.Engine

	cache  cache.Cache
	ttl    time.Duration
	logger *log.Logger
	newID  func() string
}

// Option configures a [Server].
type Option func(*Server)

// WithCache sets the artifact cache used for rendered SVG. The default is a
// [cache.NullCache].
func WithCache(c cache.Cache) Option { return func(s *Server) { s.cache = c } }

// WithCacheTTL sets the lifetime of cached artifacts.
func WithCacheTTL(ttl time.Duration) Option { return func(s *Server) { s.ttl = ttl } }

// WithLogger sets the request logger. The default is charm's default logger.
func WithLogger(l *log.Logger) Option { return func(s *Server) { s.logger = l } }

// WithIDGenerator overrides how ids are chosen for widgets added without one.
func WithIDGenerator(fn func() string) Option { return func(s *Server) { s.newID = fn } }

// New returns a server driving e.
func New(e *grid.Engine, opts ...Option) *Server {
	s := &Server{
		engine: e,
		cache:  cache.NewNullCache(),
		ttl:    cache.DefaultTTL,
		logger: log.Default(),
		newID:  newWidgetID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the HTTP handler with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/board", s.getBoard)
	r.Get("/board.svg", s.getBoardSVG)

	r.Route("/pointer", func(r chi.Router) {
		r.Post("/down", s.pointerDown)
		r.Post("/move", s.pointerMove)
		r.Post("/up", s.pointerUp)
		r.Post("/leave", s.pointerLeave)
	})

	r.Put("/container", s.putContainer)

	r.Route("/widgets", func(r chi.Router) {
		r.Post("/", s.addWidget)
		r.Delete("/{id}", s.removeWidget)
		r.Put("/{id}/size", s.resizeWidget)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, notFound("no route for %s %s", r.Method, r.URL.Path))
	})
	return r
}

// withEngine runs fn with exclusive access to the engine.
func (s *Server) withEngine(fn func(e *grid.Engine)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.engine)
}

func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Debug("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start).Round(time.Microsecond),
				"request_id", middleware.GetReqID(r.Context()))
		})
	}
}
