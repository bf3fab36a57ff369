// Moodshelf - Emotion-Aware Content Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodshelf

package config

import (
	"testing"
	"time"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*Config)
		wantError bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"badger backend ignores empty duckdb path", func(c *Config) {
			c.Catalog.Backend = BackendBadger
			c.Database.Path = ""
		}, false},
		{"duckdb backend needs a path", func(c *Config) { c.Database.Path = "" }, true},
		{"negative fetch limit", func(c *Config) { c.Catalog.FetchLimit = -1 }, true},
		{"zero cache ttl disables caching", func(c *Config) { c.Catalog.CacheTTL = 0 }, false},
		{"failure ratio above one", func(c *Config) { c.Catalog.Breaker.FailureRatio = 1.5 }, true},
		{"zero min hybrid", func(c *Config) { c.Recommend.MinHybridPool = 0 }, true},
		{"soft cap equals min pool", func(c *Config) { c.Recommend.SoftCap = 5 }, false},
		{"rate limit window too small", func(c *Config) { c.Security.RateLimitWindow = time.Millisecond }, true},
		{"disabled rate limit skips bounds", func(c *Config) {
			c.Security.RateLimitDisabled = true
			c.Security.RateLimitReqs = 0
		}, false},
		{"console format", func(c *Config) { c.Logging.Format = "console" }, false},
		{"unknown format", func(c *Config) { c.Logging.Format = "xml" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantError && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_HasWildcardCORS(t *testing.T) {
	cfg := defaultConfig()
	if cfg.HasWildcardCORS() {
		t.Error("default config reports wildcard CORS")
	}
	cfg.Security.CORSOrigins = []string{"https://x.example", "*"}
	if !cfg.HasWildcardCORS() {
		t.Error("HasWildcardCORS() = false, want true")
	}
}

func TestConfig_Addr(t *testing.T) {
	cfg := defaultConfig()
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 9000
	if got := cfg.Addr(); got != "127.0.0.1:9000" {
		t.Errorf("Addr() = %q, want 127.0.0.1:9000", got)
	}
}
