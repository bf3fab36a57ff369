// Moodshelf - Emotion-Aware Content Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodshelf

package config

import (
	"time"
)

// Config holds all application configuration loaded from defaults, an optional
// YAML file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all settings
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any mapped setting
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
//	store, err := database.Open(&cfg.Database, &cfg.Catalog)
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
	Database  DatabaseConfig  `koanf:"database"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Recommend RecommendConfig `koanf:"recommend"`
	Security  SecurityConfig  `koanf:"security"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`          // Per-request handler timeout
	ReadTimeout     time.Duration `koanf:"read_timeout"`     // http.Server ReadTimeout
	WriteTimeout    time.Duration `koanf:"write_timeout"`    // http.Server WriteTimeout
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"` // Graceful shutdown budget
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller adds the file:line of the log call site.
	// Default: false
	Caller bool `koanf:"caller"`
}

// DatabaseConfig holds DuckDB settings for the SQL catalog backend.
type DatabaseConfig struct {
	Path      string `koanf:"path"`       // DuckDB file path; ":memory:" for an in-process database
	MaxMemory string `koanf:"max_memory"` // DuckDB max_memory setting (e.g. "512MB")
	Threads   int    `koanf:"threads"`    // Number of DuckDB threads (0 = use NumCPU)
}

// Catalog backends.
const (
	BackendDuckDB = "duckdb"
	BackendBadger = "badger"
)

// CatalogConfig controls where candidate items come from and how they are fetched.
type CatalogConfig struct {
	// Backend selects the catalog store: duckdb or badger.
	// Default: duckdb
	Backend string `koanf:"backend"`

	// BadgerPath is the directory of the Badger store.
	// Empty runs Badger in memory.
	BadgerPath string `koanf:"badger_path"`

	// SeedOnStart loads the seed catalog into empty kinds at startup.
	// Default: true
	SeedOnStart bool `koanf:"seed_on_start"`

	// SeedFile replaces the built-in seed catalog with a JSON file.
	SeedFile string `koanf:"seed_file"`

	// FetchLimit caps the rows read per cluster. 0 reads all.
	// Default: 50
	FetchLimit int `koanf:"fetch_limit"`

	// CacheTTL is how long a fetched cluster pool is reused. 0 disables caching.
	// Default: 30s
	CacheTTL time.Duration `koanf:"cache_ttl"`

	// HealthInterval is how often the catalog store is pinged.
	// Default: 30s
	HealthInterval time.Duration `koanf:"health_interval"`

	// Breaker configures the circuit breaker around catalog reads.
	Breaker BreakerConfig `koanf:"breaker"`
}

// BreakerConfig holds circuit breaker settings for catalog reads.
type BreakerConfig struct {
	MaxRequests  uint32        `koanf:"max_requests"`  // Requests allowed in half-open state
	Interval     time.Duration `koanf:"interval"`      // Counter reset period while closed
	Timeout      time.Duration `koanf:"timeout"`       // Open duration before half-open
	MinRequests  uint32        `koanf:"min_requests"`  // Requests needed before tripping
	FailureRatio float64       `koanf:"failure_ratio"` // Failure ratio that opens the circuit
}

// RecommendConfig holds recommendation core tunables.
type RecommendConfig struct {
	// MinPoolSize triggers pool expansion below this size.
	// Default: 5
	MinPoolSize int `koanf:"min_pool_size"`

	// SoftCap stops pool expansion once reached.
	// Default: 10
	SoftCap int `koanf:"soft_cap"`

	// MinHybridPool is the smallest pool the hybrid path runs on.
	// Default: 3
	MinHybridPool int `koanf:"min_hybrid_pool"`

	// TopWindow is how many of the best matches are sampled from.
	// Default: 3
	TopWindow int `koanf:"top_window"`

	// Seed makes per-request random sources reproducible. 0 seeds from the clock.
	Seed int64 `koanf:"seed"`
}

// SecurityConfig holds CORS and rate limiting settings
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// Load reads configuration using Koanf (defaults, file, environment).
func Load() (*Config, error) {
	return LoadWithKoanf()
}
