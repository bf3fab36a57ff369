// Moodshelf - Emotion-Aware Content Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodshelf

/*
Package database stores the book, music and activity catalogs.

Two CatalogStore implementations share one contract:

  - DuckDBStore: a single catalog_items table keyed by (kind, id), indexed on
    (kind, cluster_id). Random cluster samples use ORDER BY random().
  - BadgerStore: an embedded key-value store with keys
    item:<kind>:<cluster>:<id> holding JSON items, plus an idx:<kind>:<id>
    entry per item so that moving an item between clusters leaves no stale key.

Open picks the backend from catalog.backend. NewBreakerStore wraps either
one with a sony/gobreaker circuit breaker so a failing store is shed quickly
instead of stalling every request.

# Seeding

LoadSeed parses the built-in seed catalog (or catalog.seed_file) and
SeedCatalog writes it into kinds that are still empty.

# Metrics

Every read and write reports moodshelf_catalog_query_duration_seconds and,
on failure, moodshelf_catalog_query_errors_total, labelled by backend.
*/
package database
