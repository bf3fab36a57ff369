// Moodshelf - Emotion-Aware Content Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodshelf

package catalog

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/moodshelf/internal/cache"
	"github.com/tomtom215/moodshelf/internal/config"
	"github.com/tomtom215/moodshelf/internal/database"
	"github.com/tomtom215/moodshelf/internal/metrics"
	"github.com/tomtom215/moodshelf/internal/models"
	"github.com/tomtom215/moodshelf/internal/recommend"
)

// Options controls how the engine reads the store.
type Options struct {
	// FetchLimit caps the rows read per cluster. 0 reads all.
	FetchLimit int

	// CacheTTL is how long a fetched cluster pool is reused. 0 disables caching.
	CacheTTL time.Duration
}

// ConfigFrom maps the application config section onto core tunables.
func ConfigFrom(rc *config.RecommendConfig) *recommend.Config {
	return &recommend.Config{
		Pool: recommend.PoolConfig{
			MinSize:   rc.MinPoolSize,
			SoftCap:   rc.SoftCap,
			MinHybrid: rc.MinHybridPool,
		},
		TopWindow: rc.TopWindow,
		Seed:      rc.Seed,
	}
}

// kindEngine is the core wired for one catalog kind.
type kindEngine struct {
	source       *CachedSource
	pools        *cache.Cache[[]models.CatalogItem]
	expander     *recommend.PoolExpander[models.CatalogItem]
	orchestrator *recommend.Orchestrator[models.CatalogItem]
}

// Engine serves recommendations, samples and training exports for every
// catalog kind. It is safe for concurrent use.
type Engine struct {
	store    database.CatalogStore
	assigner *recommend.ClusterAssigner
	kinds    map[models.Kind]*kindEngine
	logger   zerolog.Logger

	// seeds hands out one seed per request (protected by seedMu).
	seeds  *rand.Rand
	seedMu sync.Mutex
}

// NewEngine wires the recommendation core for every kind over store.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(store database.CatalogStore, cfg *recommend.Config, opts Options, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = recommend.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid recommend config: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	e := &Engine{
		store:    store,
		assigner: recommend.NewClusterAssigner(),
		kinds:    make(map[models.Kind]*kindEngine, len(models.Kinds)),
		logger:   logger.With().Str("component", "catalog_engine").Logger(),
		seeds:    rand.New(rand.NewSource(seed)), //nolint:gosec // math/rand is fine for recommendation sampling
	}

	for _, kind := range models.Kinds {
		adapter, _ := AdapterFor(kind)
		var pools *cache.Cache[[]models.CatalogItem]
		if opts.CacheTTL > 0 {
			pools = cache.New[[]models.CatalogItem](opts.CacheTTL)
		}
		e.kinds[kind] = &kindEngine{
			source:       NewCachedSource(store, kind, opts.FetchLimit, pools),
			pools:        pools,
			expander:     recommend.NewPoolExpander(adapter, cfg, e.logger.With().Str("kind", kind.String()).Logger()),
			orchestrator: recommend.NewOrchestrator(adapter, cfg),
		}
	}

	e.logger.Info().
		Str("backend", store.Backend()).
		Int("min_pool_size", cfg.Pool.MinSize).
		Int("soft_cap", cfg.Pool.SoftCap).
		Int("top_window", cfg.TopWindow).
		Bool("fixed_seed", cfg.Seed != 0).
		Msg("recommendation engine ready")

	return e, nil
}

// Recommend builds the pool for clusterID (expanding into neighbors when it
// is small) and runs the cluster, content and diversity steps over it.
// A nil input returns the pool unranked.
func (e *Engine) Recommend(ctx context.Context, kind models.Kind, clusterID int, input recommend.EmotionInput) (*models.RecommendationResponse, error) {
	ke, err := e.kind(kind)
	if err != nil {
		return nil, err
	}
	if !recommend.ValidCluster(clusterID) {
		return nil, fmt.Errorf("%w: %d", recommend.ErrInvalidCluster, clusterID)
	}

	start := time.Now()

	expansion, err := ke.expander.Expand(ctx, clusterID, ke.source)
	if err != nil {
		return nil, fmt.Errorf("build %s pool: %w", kind, err)
	}

	result := ke.orchestrator.Recommend(expansion.Pool, input, e.newRand())

	methods := make([]string, len(result.Items))
	for i, rec := range result.Items {
		methods[i] = string(rec.Method)
	}
	metrics.RecordRecommendation(kind.String(), methods, string(result.Reason), len(expansion.Pool), expansion.Expanded, time.Since(start))
	if result.ClusterID != 0 {
		metrics.ClusterAssignments.WithLabelValues(strconv.Itoa(result.ClusterID)).Inc()
	}

	e.logger.Debug().
		Str("kind", kind.String()).
		Int("requested_cluster", clusterID).
		Int("assigned_cluster", result.ClusterID).
		Int("pool_size", len(expansion.Pool)).
		Bool("degraded", result.Degraded).
		Int("items", len(result.Items)).
		Msg("recommendation served")

	sources := expansion.Clusters
	if sources == nil {
		sources = []int{}
	}
	return &models.RecommendationResponse{
		Kind:             kind,
		RequestedCluster: clusterID,
		AssignedCluster:  result.ClusterID,
		Degraded:         result.Degraded,
		Reason:           result.Reason,
		PoolSize:         len(expansion.Pool),
		Expanded:         expansion.Expanded,
		SourceClusters:   sources,
		Items:            result.Items,
	}, nil
}

// Sample returns up to limit random items of kind from one cluster.
// It reads the store directly so consecutive calls differ.
func (e *Engine) Sample(ctx context.Context, kind models.Kind, clusterID, limit int) (*models.CatalogSample, error) {
	if _, err := e.kind(kind); err != nil {
		return nil, err
	}
	if !recommend.ValidCluster(clusterID) {
		return nil, fmt.Errorf("%w: %d", recommend.ErrInvalidCluster, clusterID)
	}

	items, err := e.store.CandidatesByCluster(ctx, kind, clusterID, limit)
	if err != nil {
		return nil, fmt.Errorf("sample %s cluster %d: %w", kind, clusterID, err)
	}
	if items == nil {
		items = []models.CatalogItem{}
	}
	return &models.CatalogSample{Kind: kind, ClusterID: clusterID, Count: len(items), Items: items}, nil
}

// Item looks up one catalog entry by id. A missing id wraps database.ErrNotFound.
func (e *Engine) Item(ctx context.Context, kind models.Kind, id int64) (*models.CatalogItem, error) {
	if _, err := e.kind(kind); err != nil {
		return nil, err
	}
	it, err := e.store.Get(ctx, kind, id)
	if err != nil {
		return nil, fmt.Errorf("item %s %d: %w", kind, id, err)
	}
	return &it, nil
}

// TrainingData exports every item of kind as a score row labelled with its cluster.
func (e *Engine) TrainingData(ctx context.Context, kind models.Kind) (*models.TrainingData, error) {
	if _, err := e.kind(kind); err != nil {
		return nil, err
	}

	items, err := e.store.ListByKind(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}

	td := &models.TrainingData{
		Kind:     kind,
		Features: make([][]int, len(items)),
		Labels:   make([]int, len(items)),
		Columns:  recommend.EmotionKeys(),
		Count:    len(items),
	}
	for i := range items {
		td.Features[i] = items[i].Slice()
		td.Labels[i] = items[i].ClusterID
	}
	return td, nil
}

// Assign reports the nearest centroid to input along with every similarity.
func (e *Engine) Assign(input recommend.EmotionInput) *models.ClusterAssignment {
	user := recommend.Normalize(recommend.FromInput(input))
	idx := e.assigner.Assign(user)

	sims := make([]float64, recommend.ClusterCount)
	for i := range sims {
		sims[i] = recommend.CosineSimilarity(user, e.assigner.Centroid(i))
	}

	id := recommend.ClusterID(idx)
	c, _ := recommend.ClusterByID(id)
	metrics.ClusterAssignments.WithLabelValues(strconv.Itoa(id)).Inc()

	return &models.ClusterAssignment{
		ClusterID:    id,
		Name:         c.Name,
		Similarity:   sims[idx],
		Normalized:   user.Map(),
		Similarities: sims,
	}
}

// Clusters describes the fixed centroid table.
func (e *Engine) Clusters() []models.ClusterInfo {
	clusters := recommend.Clusters()
	out := make([]models.ClusterInfo, len(clusters))
	for i, c := range clusters {
		out[i] = models.ClusterInfo{ID: c.ID, Name: c.Name, Centroid: c.Centroid.Map()}
	}
	return out
}

// Invalidate drops cached pools of kind, or of every kind when kind is empty.
func (e *Engine) Invalidate(kind models.Kind) {
	for k, ke := range e.kinds {
		if (kind == "" || k == kind) && ke.pools != nil {
			ke.pools.Clear()
		}
	}
}

// Backend names the underlying store.
func (e *Engine) Backend() string {
	return e.store.Backend()
}

// Close stops the pool caches. The store is owned by the caller.
func (e *Engine) Close() {
	for _, ke := range e.kinds {
		if ke.pools != nil {
			ke.pools.Close()
		}
	}
}

func (e *Engine) kind(kind models.Kind) (*kindEngine, error) {
	ke, ok := e.kinds[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownKind, kind)
	}
	return ke, nil
}

// newRand returns a request-scoped random source.
func (e *Engine) newRand() *rand.Rand {
	e.seedMu.Lock()
	seed := e.seeds.Int63()
	e.seedMu.Unlock()
	return rand.New(rand.NewSource(seed)) //nolint:gosec // math/rand is fine for recommendation sampling
}
