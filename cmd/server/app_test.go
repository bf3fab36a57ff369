// Moodshelf - Emotion-Aware Content Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodshelf

package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tomtom215/moodshelf/internal/config"
	"github.com/tomtom215/moodshelf/internal/models"
)

// memoryConfig loads configuration for an in-memory Badger catalog.
func memoryConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv(config.ConfigPathEnvVar, "")
	t.Setenv("CATALOG_BACKEND", "badger")
	t.Setenv("CATALOG_BADGER_PATH", "")
	t.Setenv("RECOMMEND_SEED", "7")
	t.Setenv("DISABLE_RATE_LIMIT", "true")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("config.Load() error = %v", err)
	}
	return cfg
}

func TestNewApp_ServesSeededCatalog(t *testing.T) {
	cfg := memoryConfig(t)
	ctx := context.Background()

	a, err := newApp(ctx, cfg, "test")
	if err != nil {
		t.Fatalf("newApp() error = %v", err)
	}
	defer a.Close()

	for _, kind := range models.Kinds {
		n, err := a.store.Count(ctx, kind)
		if err != nil || n == 0 {
			t.Errorf("Count(%s) = %d, %v; want seeded items", kind, n, err)
		}
	}

	rec := httptest.NewRecorder()
	a.server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/api/v1/recommendations/activity?cluster=4&calm=0.9&happy=0.3", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"method":"cluster"`) {
		t.Errorf("response has no cluster pick: %s", rec.Body.String())
	}

	a.monitor.Probe(ctx)
	if !a.monitor.Healthy() {
		t.Error("monitor reports unhealthy catalog")
	}
	if a.server.Addr != cfg.Addr() {
		t.Errorf("server.Addr = %q, want %q", a.server.Addr, cfg.Addr())
	}
}

func TestNewApp_NoSeed(t *testing.T) {
	cfg := memoryConfig(t)
	cfg.Catalog.SeedOnStart = false

	a, err := newApp(context.Background(), cfg, "test")
	if err != nil {
		t.Fatalf("newApp() error = %v", err)
	}
	defer a.Close()

	n, err := a.store.Count(context.Background(), models.KindBook)
	if err != nil || n != 0 {
		t.Errorf("Count(book) = %d, %v; want empty catalog", n, err)
	}

	rec := httptest.NewRecorder()
	a.server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/api/v1/recommendations/book?cluster=1&happy=1", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"reason":"insufficient_pool"`) {
		t.Errorf("empty catalog response = %d %s", rec.Code, rec.Body.String())
	}
}

func TestNewApp_BadSeedFile(t *testing.T) {
	cfg := memoryConfig(t)
	path := filepath.Join(t.TempDir(), "seed.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg.Catalog.SeedFile = path

	if _, err := newApp(context.Background(), cfg, "test"); err == nil {
		t.Fatal("newApp() succeeded with a malformed seed file")
	}
}
