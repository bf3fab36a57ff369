// Moodshelf - Emotion-Aware Content Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodshelf

package config

import (
	"fmt"
	"strings"
	"time"
)

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateLogging(); err != nil {
		return err
	}

	if err := c.validateDatabase(); err != nil {
		return err
	}

	if err := c.validateCatalog(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	return c.validateRateLimits()
}

// validateServer validates HTTP server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("HTTP_SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

func (c *Config) validateDatabase() error {
	if c.Catalog.Backend != BackendDuckDB {
		return nil
	}
	if c.Database.Path == "" {
		return fmt.Errorf("DUCKDB_PATH is required when CATALOG_BACKEND=duckdb")
	}
	if c.Database.Threads < 0 {
		return fmt.Errorf("DUCKDB_THREADS must be non-negative")
	}
	return nil
}

// validateCatalog validates the catalog backend and its fetch tuning
func (c *Config) validateCatalog() error {
	switch c.Catalog.Backend {
	case BackendDuckDB, BackendBadger:
	default:
		return fmt.Errorf("CATALOG_BACKEND must be one of: %s, %s (got %q)",
			BackendDuckDB, BackendBadger, c.Catalog.Backend)
	}
	if c.Catalog.FetchLimit < 0 {
		return fmt.Errorf("CATALOG_FETCH_LIMIT must be non-negative")
	}
	if c.Catalog.CacheTTL < 0 {
		return fmt.Errorf("CATALOG_CACHE_TTL must be non-negative")
	}
	if c.Catalog.HealthInterval <= 0 {
		return fmt.Errorf("CATALOG_HEALTH_INTERVAL must be positive")
	}
	b := c.Catalog.Breaker
	if b.FailureRatio <= 0 || b.FailureRatio > 1 {
		return fmt.Errorf("catalog.breaker.failure_ratio must be in (0, 1], got %v", b.FailureRatio)
	}
	if b.Timeout <= 0 {
		return fmt.Errorf("catalog.breaker.timeout must be positive")
	}
	return nil
}

// validateRecommend mirrors the recommendation core's own bounds so a bad
// value fails at startup rather than on the first request.
func (c *Config) validateRecommend() error {
	r := c.Recommend
	if r.MinPoolSize < 0 {
		return fmt.Errorf("RECOMMEND_MIN_POOL_SIZE must be non-negative")
	}
	if r.SoftCap < r.MinPoolSize {
		return fmt.Errorf("RECOMMEND_SOFT_CAP (%d) must be >= RECOMMEND_MIN_POOL_SIZE (%d)", r.SoftCap, r.MinPoolSize)
	}
	if r.MinHybridPool < 1 {
		return fmt.Errorf("RECOMMEND_MIN_HYBRID must be at least 1")
	}
	if r.TopWindow < 1 {
		return fmt.Errorf("RECOMMEND_TOP_WINDOW must be at least 1")
	}
	return nil
}

// validateRateLimits validates rate limiting configuration bounds.
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 || c.Security.RateLimitReqs > 100000 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between 1 and 100000, got %d", c.Security.RateLimitReqs)
	}
	if c.Security.RateLimitWindow < time.Second || c.Security.RateLimitWindow > 24*time.Hour {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between 1s and 24h, got %s", c.Security.RateLimitWindow)
	}
	return nil
}

// HasWildcardCORS reports whether any configured origin is "*".
func (c *Config) HasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// Addr returns the host:port the HTTP server listens on.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
