// Moodshelf - Emotion-Aware Content Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodshelf

package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/tomtom215/moodshelf/internal/config"
	"github.com/tomtom215/moodshelf/internal/models"
)

var (
	// ErrNotFound is returned when a single item lookup finds nothing.
	ErrNotFound = errors.New("catalog item not found")

	// ErrUnknownBackend is returned by Open for an unsupported catalog.backend.
	ErrUnknownBackend = errors.New("unknown catalog backend")
)

// CatalogStore is the persistence layer of the per-kind catalogs.
// Implementations are safe for concurrent use.
type CatalogStore interface {
	// CandidatesByCluster returns up to limit items of kind whose primary
	// cluster is clusterID, in random order. limit <= 0 returns all of them.
	CandidatesByCluster(ctx context.Context, kind models.Kind, clusterID, limit int) ([]models.CatalogItem, error)

	// ListByKind returns every item of kind ordered by cluster then id.
	ListByKind(ctx context.Context, kind models.Kind) ([]models.CatalogItem, error)

	// Get returns one item or ErrNotFound.
	Get(ctx context.Context, kind models.Kind, id int64) (models.CatalogItem, error)

	// Upsert inserts or replaces items keyed by (kind, id).
	Upsert(ctx context.Context, items []models.CatalogItem) error

	// Count returns the number of items of kind.
	Count(ctx context.Context, kind models.Kind) (int, error)

	// Ping verifies the store is usable.
	Ping(ctx context.Context) error

	// Backend names the implementation for logs and metrics.
	Backend() string

	Close() error
}

// Open creates the store selected by catalog.backend.
func Open(dbCfg *config.DatabaseConfig, catCfg *config.CatalogConfig) (CatalogStore, error) {
	switch catCfg.Backend {
	case config.BackendDuckDB:
		return NewDuckDBStore(dbCfg)
	case config.BackendBadger:
		return NewBadgerStore(catCfg.BadgerPath)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, catCfg.Backend)
	}
}

// validateItems rejects a batch before any of it is written.
func validateItems(items []models.CatalogItem) error {
	for i := range items {
		if err := items[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}
