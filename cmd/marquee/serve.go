package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	v1 "github.com/vmunix/marquee/internal/api/v1"
	"github.com/vmunix/marquee/internal/catalog"
	"github.com/vmunix/marquee/internal/config"
	"github.com/vmunix/marquee/internal/dataset"
	"github.com/vmunix/marquee/internal/server"
	"github.com/vmunix/marquee/internal/tvmaze"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the catalog HTTP server",
	Long: `Run the catalog HTTP server.

The config file is found via --config, $MARQUEE_CONFIG, ./config.toml,
$XDG_CONFIG_HOME/marquee/config.toml or /etc/marquee/config.toml. Without
one, built-in defaults are used.`,
	Args: cobra.NoArgs,
	RunE: runServeCmd,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("config", "c", "", "Path to config file")
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newLogger(level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(level),
	}))
}

// loadServeConfig loads the explicit or located config file, falling back
// to defaults when no candidate file exists.
func loadServeConfig(explicit string) (*config.Config, string, error) {
	path, err := config.Locate(explicit)
	if errors.Is(err, config.ErrNoConfig) {
		cfg := config.Default()
		if errs := cfg.Validate(); len(errs) > 0 {
			return nil, "", &config.Error{Errors: errs}
		}
		return cfg, "", nil
	}
	if err != nil {
		return nil, "", err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// app is the assembled catalog service.
type app struct {
	engine  *catalog.Engine
	handler *v1.Server
	closers []func() error
}

func (a *app) Close() error {
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// buildLoader returns the primary dataset loader selected by cfg.
func buildLoader(cfg config.CatalogConfig, log *slog.Logger) (catalog.Loader, string, func() error, error) {
	noop := func() error { return nil }
	switch cfg.Source {
	case config.SourceEmbedded, "":
		l := dataset.Embedded(log)
		return l, l.Name(), noop, nil
	case config.SourceFile:
		l := dataset.NewFileLoader(cfg.Path, log)
		return l, l.Name(), noop, nil
	case config.SourceSQLite:
		db, err := dataset.OpenSQLite(cfg.Path)
		if err != nil {
			return nil, "", nil, fmt.Errorf("sqlite catalog: %w", err)
		}
		store := dataset.NewSQLiteStore(db, log)
		return store, store.Name(), db.Close, nil
	default:
		return nil, "", nil, fmt.Errorf("unknown catalog source %q", cfg.Source)
	}
}

// buildApp wires loader, cache, remote lookup, engine and API from cfg.
func buildApp(cfg *config.Config, logger *slog.Logger) (*app, error) {
	loader, name, closer, err := buildLoader(cfg.Catalog, logger.With("component", "dataset"))
	if err != nil {
		return nil, err
	}
	a := &app{closers: []func() error{closer}}

	cache := catalog.New(loader,
		catalog.WithLoaderName(name),
		catalog.WithFreshness(cfg.Catalog.Freshness),
		catalog.WithRetryInterval(cfg.Catalog.RetryInterval),
		catalog.WithLoadTimeout(cfg.Catalog.LoadTimeout),
		catalog.WithLogger(logger.With("component", "cache")),
	)

	// Both stay nil interfaces when the remote is disabled
	var (
		lookup  catalog.RemoteLookup
		checker v1.RemoteChecker
	)
	if cfg.Remote.Enabled {
		client := tvmaze.NewClient(
			tvmaze.WithBaseURL(cfg.Remote.URL),
			tvmaze.WithTimeout(cfg.Remote.Timeout),
			tvmaze.WithCacheTTL(cfg.Remote.CacheTTL),
		)
		lookup, checker = client, client
	}

	a.engine = catalog.NewEngine(cache, lookup, logger.With("component", "engine"))
	a.engine.SetRemoteTimeout(cfg.Remote.Timeout)

	apiCfg := v1.DefaultConfig()
	apiCfg.Freshness = cfg.Catalog.Freshness
	a.handler, err = v1.New(v1.ServerDeps{
		Catalog: a.engine,
		Remote:  checker,
	}, apiCfg, logger.With("component", "api"))
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	return a, nil
}

func runServeCmd(cmd *cobra.Command, _ []string) error {
	configPath, _ := cmd.Flags().GetString("config")

	cfg, path, err := loadServeConfig(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger := newLogger(cfg.Server.LogLevel)
	if path == "" {
		logger.Info("no config file found, using defaults")
	} else {
		logger.Info("loaded config", "path", path)
	}

	a, err := buildApp(cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	logger.Info("marquee starting",
		"version", version,
		"addr", cfg.Server.Addr(),
		"source", cfg.Catalog.Source,
		"remote", cfg.Remote.Enabled,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := server.NewRunner(a.handler.Handler(), a.engine, server.Config{
		Addr:         cfg.Server.Addr(),
		WarmInterval: cfg.Catalog.WarmInterval,
	}, logger.With("component", "server"))

	return runner.Run(ctx)
}
