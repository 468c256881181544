package cli

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dashgrid/pkg/api"
	"github.com/matzehuels/dashgrid/pkg/cache"
)

const (
	defaultAddr     = "localhost:8080"
	shutdownTimeout = 5 * time.Second
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr     string        // listen address
	redis    string        // Redis address or URL for the artifact cache
	noCache  bool          // disable the artifact cache
	cacheTTL time.Duration // lifetime of cached artifacts
	width    float64       // container width override
	height   float64       // container height override
}

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{addr: defaultAddr, cacheTTL: cache.DefaultTTL}

	cmd := &cobra.Command{
		Use:   "serve [file]",
		Short: "Serve a board over HTTP",
		Long: `Serve a board over HTTP. Browser front-ends send pointer events and read
snapshots as JSON or SVG; the layout lives in memory until the server stops.

Rendered SVG is cached in Redis when --redis is given, otherwise in the local
artifact cache.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), boardArg(args), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.redis, "redis", "", "Redis address or redis:// URL for the artifact cache")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().DurationVar(&opts.cacheTTL, "cache-ttl", opts.cacheTTL, "lifetime of cached artifacts")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "container width in pixels (default: board width)")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "container height in pixels (default: board height)")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, input string, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	e, err := loadEngine(input, opts.width, opts.height)
	if err != nil {
		return err
	}
	for _, id := range e.Overflowing() {
		printWarning("Widget %s does not fit the container", id)
	}

	store, err := c.serveCache(ctx, opts)
	if err != nil {
		return err
	}
	defer store.Close()

	srv := api.New(e, api.WithCache(store), api.WithCacheTTL(opts.cacheTTL), api.WithLogger(logger))

	ln, err := net.Listen("tcp", opts.addr)
	if err != nil {
		return err
	}
	printSuccess("Serving board on %s", StyleLink.Render("http://"+ln.Addr().String()))
	printDetail("%d widgets · GET /board, GET /board.svg, POST /pointer/*", e.Len())

	return serveUntilDone(ctx, &http.Server{
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}, ln)
}

// serveCache picks the artifact cache backend for the server.
func (c *CLI) serveCache(ctx context.Context, opts *serveOpts) (cache.Cache, error) {
	if opts.noCache {
		return cache.NewNullCache(), nil
	}
	if opts.redis == "" {
		return newCache(false)
	}

	spin := newSpinner(ctx, "Connecting to Redis...")
	spin.Start()
	rc, err := cache.NewRedisCache(ctx, opts.redis)
	if err != nil {
		spin.StopWithError("Redis unavailable")
		return nil, err
	}
	spin.StopWithSuccess("Connected to Redis")
	return rc, nil
}

// serveUntilDone serves on ln until ctx is cancelled, then shuts the server
// down gracefully.
func serveUntilDone(ctx context.Context, srv *http.Server, ln net.Listener) error {
	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	loggerFromContext(ctx).Info("Server stopped")
	return nil
}
