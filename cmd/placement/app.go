package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jonathan/placement-suite/internal/config"
	"github.com/jonathan/placement-suite/internal/jobs"
	"github.com/jonathan/placement-suite/internal/logger"
	"github.com/jonathan/placement-suite/internal/storage"
	"github.com/jonathan/placement-suite/internal/tracker"
	"github.com/jonathan/placement-suite/internal/types"
	"github.com/spf13/cobra"
)

// now is the clock used by every command.
var now = time.Now

// app holds the resolved configuration and the open store for the running command.
var app struct {
	cfg   config.Config
	store storage.Store
	close func()
}

// setupApp resolves configuration (flags over environment over config file over
// built-in defaults), initializes logging and opens the store.
func setupApp(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	if err := logger.Init(cfg.LogLevel, cfg.LogFile); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	s, closeFn, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	app.cfg = cfg
	app.store = s
	app.close = closeFn

	log := logger.Component("cli")
	log.Debug().
		Str("command", cmd.CommandPath()).
		Str("store", cfg.Store).
		Msg("store opened")
	return nil
}

func resolveConfig() (config.Config, error) {
	merged := config.Defaults()
	if rootConfigPath != "" {
		fileCfg, err := config.LoadConfig(rootConfigPath)
		if err != nil {
			return config.Config{}, err
		}
		merged = fileCfg.MergeWithDefaults(merged)
	}
	env := config.FromEnv()
	merged = env.MergeWithDefaults(merged)

	flags := config.Config{
		Store:     rootStore,
		StorePath: rootStorePath,
		Catalog:   rootCatalog,
		LogLevel:  rootLogLevel,
	}
	merged = flags.MergeWithDefaults(merged)

	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

// openStore opens the backend named by cfg. The returned func releases it.
func openStore(ctx context.Context, cfg config.Config) (storage.Store, func(), error) {
	if ctx == nil {
		ctx = context.Background()
	}
	switch cfg.Store {
	case config.StoreMemory:
		return storage.NewMemoryStore(), func() {}, nil
	case config.StorePostgres:
		ps, err := storage.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		return ps, ps.Close, nil
	default:
		ss, err := storage.OpenSQLite(cfg.StorePath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open store %s: %w", cfg.StorePath, err)
		}
		return ss, func() { _ = ss.Close() }, nil
	}
}

func closeApp() {
	if app.close != nil {
		app.close()
		app.close = nil
	}
	_ = logger.Close()
}

// loadCatalog reads the configured job catalog. Rejected listings are logged and
// skipped.
func loadCatalog() ([]types.JobListing, error) {
	if app.cfg.Catalog == "" {
		return nil, fmt.Errorf("no job catalog configured (set --catalog or %s)", config.EnvCatalog)
	}
	catalog, rejected, err := jobs.LoadCatalog(app.cfg.Catalog)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	log := logger.Component("catalog")
	for _, r := range rejected {
		log.Warn().Err(r).Msg("skipping listing")
	}
	return catalog, nil
}

// today returns the digest date in the configured zone.
func today() string {
	return jobs.DateString(now().In(app.cfg.Location()))
}

func newTracker(s storage.Store) *tracker.Tracker {
	t := tracker.New(s)
	t.Now = now
	return t
}
