package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/aretw0/factors"
	httpAdapter "github.com/aretw0/factors/internal/adapters/http"
	"github.com/aretw0/factors/internal/adapters/mcp"
	"github.com/aretw0/factors/internal/config"
	"github.com/aretw0/factors/internal/presentation/tui"
	"github.com/aretw0/factors/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const shutdownTimeout = 5 * time.Second

// ServeOptions configures the HTTP server.
type ServeOptions struct {
	Config config.Config
	Stderr io.Writer
}

// newServer wires the engine, metrics registry and HTTP handler.
func newServer(ctx context.Context, opts ServeOptions) (*http.Server, func() error, error) {
	logger := createLogger(opts.Config.LogLevel)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := observability.NewMetrics(reg)

	engine, closeCache, err := createEngine(ctx, opts.Config, logger, metrics.Hooks())
	if err != nil {
		return nil, closeCache, err
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", opts.Config.Server.Port),
		Handler:           httpAdapter.NewHandler(engine, reg),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv, closeCache, nil
}

// Serve runs the HTTP API until ctx is cancelled.
func Serve(ctx context.Context, opts ServeOptions) error {
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	srv, closeCache, err := newServer(ctx, opts)
	defer closeCache()
	if err != nil {
		return err
	}

	tui.PrintBanner(opts.Stderr, "factors HTTP server", factors.Version)

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		fmt.Fprintf(opts.Stderr, "Listening on %s\n", srv.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			_ = srv.Close()
			return fmt.Errorf("graceful shutdown did not complete in %v: %w", shutdownTimeout, err)
		}
		fmt.Fprintln(opts.Stderr, "Server stopped gracefully")
		return nil
	}
}

// ServeMCP runs the MCP server over the given transport ("stdio" or "sse").
func ServeMCP(ctx context.Context, cfg config.Config, transport string) error {
	logger := createLogger(cfg.LogLevel)

	engine, closeCache, err := createEngine(ctx, cfg, logger)
	defer closeCache()
	if err != nil {
		return err
	}

	srv := mcp.NewServer(engine)
	switch transport {
	case "stdio":
		logger.Info("Starting MCP Server (Stdio)")
		return srv.ServeStdio()
	case "sse":
		logger.Info("Starting MCP Server (SSE)", "port", cfg.Server.Port)
		if err := srv.ServeSSE(ctx, cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	default:
		return fmt.Errorf("unknown transport: %s. Supported: stdio, sse", transport)
	}
}
