// Package server runs the HTTP API and the catalog warmer as one unit.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/vmunix/marquee/internal/catalog"
	"golang.org/x/sync/errgroup"
)

// DefaultShutdownTimeout bounds graceful HTTP shutdown.
const DefaultShutdownTimeout = 30 * time.Second

// Config for the server.
type Config struct {
	Addr            string
	WarmInterval    time.Duration // 0 disables the warmer
	ShutdownTimeout time.Duration
}

// Catalog is the snapshot source the warmer keeps current.
type Catalog interface {
	View(ctx context.Context) *catalog.Snapshot
}

// Runner manages the HTTP server and background components.
type Runner struct {
	handler http.Handler
	catalog Catalog
	config  Config
	logger  *slog.Logger
}

// NewRunner creates a new runner.
func NewRunner(handler http.Handler, cat Catalog, cfg Config, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = DefaultShutdownTimeout
	}
	return &Runner{
		handler: handler,
		catalog: cat,
		config:  cfg,
		logger:  logger,
	}
}

// Run listens on the configured address and serves until ctx is canceled.
func (r *Runner) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", r.config.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", r.config.Addr, err)
	}
	return r.Serve(ctx, ln)
}

// Serve runs all components on ln. It blocks until ctx is canceled or a
// component fails, then shuts the HTTP server down gracefully. A clean
// shutdown returns nil.
func (r *Runner) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           r.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		r.logger.Info("http server listening", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.config.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		r.logger.Info("http server stopped")
		return nil
	})

	if r.config.WarmInterval > 0 && r.catalog != nil {
		g.Go(func() error {
			r.warm(ctx)
			return nil
		})
	}

	return g.Wait()
}

// warm loads the catalog immediately and then on every tick, so reloads
// happen off the request path.
func (r *Runner) warm(ctx context.Context) {
	log := r.logger.With("component", "warmer")
	log.Info("catalog warmer started", "interval", r.config.WarmInterval)

	ticker := time.NewTicker(r.config.WarmInterval)
	defer ticker.Stop()

	for {
		snap := r.catalog.View(ctx)
		log.Debug("catalog warmed",
			"generation", snap.Generation(),
			"source", snap.Source(),
			"movies", snap.Len(),
		)

		select {
		case <-ctx.Done():
			log.Info("catalog warmer stopped")
			return
		case <-ticker.C:
		}
	}
}
