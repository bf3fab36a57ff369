// Moodshelf - Emotion-Aware Content Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodshelf

package catalog

import (
	"context"
	"strconv"

	"github.com/tomtom215/moodshelf/internal/cache"
	"github.com/tomtom215/moodshelf/internal/database"
	"github.com/tomtom215/moodshelf/internal/metrics"
	"github.com/tomtom215/moodshelf/internal/models"
)

// CachedSource serves cluster pools of one kind from a store, reusing each
// fetched pool until its cache entry expires. A nil cache disables reuse.
type CachedSource struct {
	store database.CatalogStore
	kind  models.Kind
	limit int
	pools *cache.Cache[[]models.CatalogItem]
}

// NewCachedSource returns a pool source for kind reading at most limit rows per cluster.
func NewCachedSource(store database.CatalogStore, kind models.Kind, limit int, pools *cache.Cache[[]models.CatalogItem]) *CachedSource {
	return &CachedSource{store: store, kind: kind, limit: limit, pools: pools}
}

// FetchCluster implements recommend.PoolSource.
func (s *CachedSource) FetchCluster(ctx context.Context, clusterID int) ([]models.CatalogItem, error) {
	key := s.kind.String() + ":" + strconv.Itoa(clusterID)

	if s.pools != nil {
		if items, ok := s.pools.Get(key); ok {
			metrics.CacheHits.WithLabelValues(s.kind.String()).Inc()
			return items, nil
		}
		metrics.CacheMisses.WithLabelValues(s.kind.String()).Inc()
	}

	items, err := s.store.CandidatesByCluster(ctx, s.kind, clusterID, s.limit)
	if err != nil {
		return nil, err
	}

	if s.pools != nil {
		s.pools.Set(key, items)
	}
	return items, nil
}
