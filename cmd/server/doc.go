// Moodshelf - Emotion-Aware Content Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodshelf

// Command server runs the Moodshelf recommendation API.
//
// Startup order:
//
//  1. Configuration (Koanf v2: defaults, config.yaml, environment)
//  2. Catalog store (DuckDB or Badger) behind a circuit breaker
//  3. Seed catalog into empty kinds (CATALOG_SEED_ON_START)
//  4. Recommendation engine with per-cluster pool cache
//  5. Chi router, then the supervisor tree (catalog monitor, HTTP server)
//
// SIGINT and SIGTERM cancel the tree; the HTTP server drains for
// HTTP_SHUTDOWN_TIMEOUT before the store is closed.
//
// Development run with an in-memory catalog:
//
//	CATALOG_BACKEND=badger CATALOG_BADGER_PATH= LOG_FORMAT=console ./moodshelf
//	curl 'localhost:8485/api/v1/recommendations/book?cluster=1&happy=0.9&calm=0.4'
package main
