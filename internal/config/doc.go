// Moodshelf - Emotion-Aware Content Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodshelf

/*
Package config provides centralized configuration management for Moodshelf.

Configuration is layered with Koanf v2: built-in defaults, then an optional
YAML file (config.yaml, or the file named by CONFIG_PATH), then environment
variables. Only mapped environment variables are read.

# Configuration Structure

  - ServerConfig: HTTP bind address and timeouts
  - LoggingConfig: zerolog level, format and caller info
  - DatabaseConfig: DuckDB file and tuning for the SQL catalog backend
  - CatalogConfig: backend selection, seeding, fetch limit, pool cache, breaker
  - RecommendConfig: pool expansion thresholds, top window, random seed
  - SecurityConfig: CORS origins and rate limiting

# Environment Variables

Server:
  - HTTP_HOST, HTTP_PORT (default: 0.0.0.0:8485)
  - HTTP_TIMEOUT, HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT, HTTP_SHUTDOWN_TIMEOUT

Logging:
  - LOG_LEVEL (default: info), LOG_FORMAT (default: json), LOG_CALLER

Catalog:
  - CATALOG_BACKEND: duckdb or badger (default: duckdb)
  - DUCKDB_PATH, DUCKDB_MAX_MEMORY, DUCKDB_THREADS
  - CATALOG_BADGER_PATH (empty runs in memory)
  - CATALOG_SEED_ON_START, CATALOG_SEED_FILE
  - CATALOG_FETCH_LIMIT, CATALOG_CACHE_TTL, CATALOG_HEALTH_INTERVAL

Recommendation:
  - RECOMMEND_MIN_POOL_SIZE (5), RECOMMEND_SOFT_CAP (10)
  - RECOMMEND_MIN_HYBRID (3), RECOMMEND_TOP_WINDOW (3), RECOMMEND_SEED (0)

Security:
  - CORS_ORIGINS: comma-separated list
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

# Usage

	cfg, err := config.Load()
	if err != nil {
	    log.Fatalf("config: %v", err)
	}
	fmt.Println(cfg.Addr())
*/
package config
