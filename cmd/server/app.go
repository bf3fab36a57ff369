// Moodshelf - Emotion-Aware Content Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodshelf

package main

import (
	"context"
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/tomtom215/moodshelf/internal/api"
	"github.com/tomtom215/moodshelf/internal/config"
	"github.com/tomtom215/moodshelf/internal/database"
	"github.com/tomtom215/moodshelf/internal/logging"
	"github.com/tomtom215/moodshelf/internal/metrics"
	"github.com/tomtom215/moodshelf/internal/recommend/catalog"
	"github.com/tomtom215/moodshelf/internal/supervisor/services"
)

// app holds the wired components main hands to the supervisor tree.
type app struct {
	store       database.CatalogStore
	engine      *catalog.Engine
	server      *http.Server
	monitor     *services.CatalogMonitorService
	httpService *services.HTTPServerService
}

// newApp opens the catalog, seeds it if configured, and builds the engine and router.
func newApp(ctx context.Context, cfg *config.Config, version string) (*app, error) {
	raw, err := database.Open(&cfg.Database, &cfg.Catalog)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	store := database.NewBreakerStore(raw, &cfg.Catalog.Breaker)

	if cfg.Catalog.SeedOnStart {
		if err := seed(ctx, store, cfg.Catalog.SeedFile); err != nil {
			_ = store.Close()
			return nil, err
		}
	}

	engine, err := catalog.NewEngine(store, catalog.ConfigFrom(&cfg.Recommend), catalog.Options{
		FetchLimit: cfg.Catalog.FetchLimit,
		CacheTTL:   cfg.Catalog.CacheTTL,
	}, logging.WithComponent("recommend"))
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("create engine: %w", err)
	}

	router := api.NewRouter(
		api.NewHandler(engine, store, version),
		api.NewChiMiddleware(api.ChiMiddlewareConfigFrom(&cfg.Security)),
		cfg.Server.Timeout,
	)

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       60 * time.Second,
	}

	metrics.AppInfo.WithLabelValues(version, runtime.Version(), store.Backend()).Set(1)

	return &app{
		store:  store,
		engine: engine,
		server: server,
		monitor: services.NewCatalogMonitorService(store, engine, cfg.Catalog.HealthInterval,
			logging.WithComponent("catalog")),
		httpService: services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout).
			WithLogger(logging.WithComponent("http")),
	}, nil
}

// seed loads the seed catalog (built-in or file) into kinds that are still empty.
func seed(ctx context.Context, store database.CatalogStore, path string) error {
	items, err := database.LoadSeed(path)
	if err != nil {
		return fmt.Errorf("load seed catalog: %w", err)
	}

	written, err := database.SeedCatalog(ctx, store, items)
	if err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}

	for kind, n := range written {
		logging.Info().Str("kind", kind.String()).Int("items", n).Msg("Seeded catalog")
	}
	return nil
}

// Close releases the engine's cache and the catalog store.
func (a *app) Close() {
	a.engine.Close()
	if err := a.store.Close(); err != nil {
		logging.Error().Err(err).Msg("Error closing catalog store")
	}
}
