// Moodshelf - Emotion-Aware Content Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodshelf

package recommend

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// PoolSource supplies the candidates retrieved under one cluster id.
// An empty result is not an error.
type PoolSource[T any] interface {
	FetchCluster(ctx context.Context, clusterID int) ([]T, error)
}

// PoolSourceFunc adapts a function to PoolSource.
type PoolSourceFunc[T any] func(ctx context.Context, clusterID int) ([]T, error)

// FetchCluster calls f.
func (f PoolSourceFunc[T]) FetchCluster(ctx context.Context, clusterID int) ([]T, error) {
	return f(ctx, clusterID)
}

// Expansion is the result of PoolExpander.Expand.
type Expansion[T any] struct {
	// Pool holds the deduplicated candidates, primary cluster first.
	Pool []T

	// Expanded reports whether neighboring clusters were consulted.
	Expanded bool

	// Clusters lists the cluster ids that contributed at least one item.
	Clusters []int
}

// PoolExpander tops up a small primary pool with candidates from the other
// clusters.
type PoolExpander[T any] struct {
	adapter Adapter[T]
	minSize int
	softCap int
	logger  zerolog.Logger
}

// NewPoolExpander creates an expander using cfg.Pool sizing.
//
//nolint:gocritic // Adapter and zerolog.Logger are passed by value by design
func NewPoolExpander[T any](adapter Adapter[T], cfg *Config, logger zerolog.Logger) *PoolExpander[T] {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &PoolExpander[T]{
		adapter: adapter,
		minSize: cfg.Pool.MinSize,
		softCap: cfg.Pool.SoftCap,
		logger:  logger.With().Str("component", "pool_expander").Logger(),
	}
}

// Expand fetches the primary cluster and, if it holds fewer than the minimum
// pool size, visits the remaining clusters in ascending id order while the
// pool is below the soft cap. Names already in the pool are skipped.
//
// A failing primary fetch is returned. A failing neighbor fetch is logged and
// skipped.
func (p *PoolExpander[T]) Expand(ctx context.Context, primary int, src PoolSource[T]) (Expansion[T], error) {
	if !ValidCluster(primary) {
		return Expansion[T]{}, fmt.Errorf("%w: %d", ErrInvalidCluster, primary)
	}

	items, err := src.FetchCluster(ctx, primary)
	if err != nil {
		return Expansion[T]{}, fmt.Errorf("fetch primary cluster %d: %w", primary, err)
	}

	seen := make(NameSet, len(items))
	var result Expansion[T]
	if p.appendUnique(&result.Pool, items, seen) > 0 {
		result.Clusters = append(result.Clusters, primary)
	}

	if len(result.Pool) >= p.minSize {
		return result, nil
	}

	result.Expanded = true
	for id := 1; id <= ClusterCount; id++ {
		if id == primary {
			continue
		}
		if len(result.Pool) >= p.softCap {
			break
		}
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("expand pool: %w", err)
		}

		neighbors, err := src.FetchCluster(ctx, id)
		if err != nil {
			p.logger.Warn().Err(err).
				Int("primary_cluster", primary).
				Int("cluster", id).
				Msg("skipping neighbor cluster")
			continue
		}
		if p.appendUnique(&result.Pool, neighbors, seen) > 0 {
			result.Clusters = append(result.Clusters, id)
		}
	}

	p.logger.Debug().
		Int("primary_cluster", primary).
		Int("pool_size", len(result.Pool)).
		Ints("clusters", result.Clusters).
		Msg("pool expanded")

	return result, nil
}

// appendUnique appends the items whose names are not in seen and returns
// how many were added.
func (p *PoolExpander[T]) appendUnique(pool *[]T, items []T, seen NameSet) int {
	added := 0
	for _, item := range items {
		name := p.adapter.Name(item)
		if seen.Has(name) {
			continue
		}
		seen.Add(name)
		*pool = append(*pool, item)
		added++
	}
	return added
}
