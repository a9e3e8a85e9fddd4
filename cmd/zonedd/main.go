package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/zonekit/zoned/internal/zones/common/log"
	"github.com/zonekit/zoned/internal/zones/config"
	"github.com/zonekit/zoned/internal/zones/registry"
	"github.com/zonekit/zoned/internal/zones/repos/document"
	"github.com/zonekit/zoned/internal/zones/repos/resultcache"
	"github.com/zonekit/zoned/internal/zones/repos/watcher"
	"github.com/zonekit/zoned/internal/zones/services/converter"
)

const (
	version = "0.1.0-dev"
	appName = "zonedd"
)

// Application holds all the components of the zone conversion service
type Application struct {
	config    *config.AppConfig
	converter *converter.Service
	cache     *resultcache.Cache
	watcher   *watcher.Watcher
}

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	// Configure global logging
	err = log.Configure(cfg.Env, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logging configuration error: %v\n", err)
		os.Exit(1)
	}

	log.Info(map[string]any{
		"version":        version,
		"env":            cfg.Env,
		"log_level":      cfg.LogLevel,
		"zone_dir":       cfg.ZoneDir,
		"cache_size":     cfg.CacheSize,
		"context_filter": cfg.ContextFilter,
	}, "Starting zoned")

	// Build application with all dependencies
	app, err := buildApplication(cfg)
	if err != nil {
		log.Fatal(map[string]any{"error": err}, "Failed to build application")
	}

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		log.Info(map[string]any{"signal": sig.String()}, "Shutdown signal received")
		cancel()
	}()

	if err := app.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatal(map[string]any{"error": err}, "Service failed")
	}

	log.Info(nil, "zoned stopped gracefully")
}

// buildApplication constructs all components and wires them together
func buildApplication(cfg *config.AppConfig) (*Application, error) {
	logger := log.GetLogger()

	cache, err := resultcache.New(int(cfg.CacheSize))
	if err != nil {
		return nil, fmt.Errorf("failed to create result cache: %w", err)
	}

	svc := converter.New(converter.Options{
		Registry: registry.New(),
		Policy:   cfg.Policy(),
		Timeout:  cfg.Timeout(),
		Logger:   logger,
	})

	app := &Application{
		config:    cfg,
		converter: svc,
		cache:     cache,
	}

	w, err := watcher.New(cfg.ZoneDir, func() { app.reload(context.Background()) }, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create zone watcher: %w", err)
	}
	app.watcher = w

	return app, nil
}

// Run performs the initial zone load and then blocks on the directory
// watcher until the context is cancelled.
func (app *Application) Run(ctx context.Context) error {
	app.reload(ctx)
	return app.watcher.Start(ctx)
}

// reload loads every document in the zone directory and converts the
// ones whose content hash changed since the last load. Per-file parse
// failures are logged and skipped so one broken file never blocks the
// rest of the directory.
func (app *Application) reload(ctx context.Context) {
	ttl := time.Duration(app.config.DefaultTTL) * time.Second
	docs, err := document.LoadDirectory(app.config.ZoneDir, ttl)
	if err != nil {
		log.Warn(map[string]any{"error": err.Error()}, "some zone files failed to load")
	}

	for _, doc := range docs {
		if !app.cache.NeedsReload(doc.Name, doc.Hash) {
			log.Debug(map[string]any{"zone": doc.Name}, "zone unchanged, skipping")
			continue
		}
		result, err := app.converter.Convert(ctx, doc)
		if err != nil {
			log.Error(map[string]any{"zone": doc.Name, "error": err.Error()}, "zone conversion failed")
			continue
		}
		app.cache.Put(result)
	}

	log.Info(map[string]any{
		"zones":  len(docs),
		"apexes": app.cache.Apexes(),
	}, "zone directory loaded")
}
