// Moodshelf - Emotion-Aware Content Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodshelf

package database

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/tomtom215/moodshelf/internal/logging"
	"github.com/tomtom215/moodshelf/internal/models"
)

//go:embed seed/catalog.json
var defaultSeed []byte

// seedFile is the on-disk layout of a seed catalog.
type seedFile struct {
	Version int                  `json:"version"`
	Items   []models.CatalogItem `json:"items"`
}

// LoadSeed reads a seed catalog from path, or the built-in catalog when path is empty.
func LoadSeed(path string) ([]models.CatalogItem, error) {
	data := defaultSeed
	if path != "" {
		var err error
		data, err = os.ReadFile(path) //nolint:gosec // operator-supplied config path
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
	}

	var sf seedFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse seed catalog: %w", err)
	}
	if err := validateItems(sf.Items); err != nil {
		return nil, fmt.Errorf("invalid seed catalog: %w", err)
	}
	return sf.Items, nil
}

// SeedCatalog writes items into every kind that is currently empty.
// Kinds that already hold data are left untouched. It returns the number of
// items written per kind.
func SeedCatalog(ctx context.Context, store CatalogStore, items []models.CatalogItem) (map[models.Kind]int, error) {
	byKind := make(map[models.Kind][]models.CatalogItem, len(models.Kinds))
	for i := range items {
		byKind[items[i].Kind] = append(byKind[items[i].Kind], items[i])
	}

	written := make(map[models.Kind]int, len(byKind))
	for _, kind := range models.Kinds {
		batch := byKind[kind]
		if len(batch) == 0 {
			continue
		}

		n, err := store.Count(ctx, kind)
		if err != nil {
			return written, fmt.Errorf("seed %s: %w", kind, err)
		}
		if n > 0 {
			logging.Debug().Str("kind", kind.String()).Int("existing", n).Msg("Catalog already populated, skipping seed")
			continue
		}

		if err := store.Upsert(ctx, batch); err != nil {
			return written, fmt.Errorf("seed %s: %w", kind, err)
		}
		written[kind] = len(batch)
		logging.Info().Str("kind", kind.String()).Int("items", len(batch)).Msg("Seeded catalog")
	}
	return written, nil
}
