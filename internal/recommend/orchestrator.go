// Moodshelf - Emotion-Aware Content Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodshelf

package recommend

import (
	"math/rand"
)

// Orchestrator runs the cluster, content and diversity steps over a pool.
// It is safe for concurrent use as long as each call gets its own rng.
type Orchestrator[T any] struct {
	adapter   Adapter[T]
	assigner  *ClusterAssigner
	ranker    *ContentRanker[T]
	diversity *DiversitySelector[T]
	minHybrid int
}

// NewOrchestrator wires the three strategies for items read through adapter.
//
//nolint:gocritic // Adapter is two func values, copying is fine
func NewOrchestrator[T any](adapter Adapter[T], cfg *Config) *Orchestrator[T] {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Orchestrator[T]{
		adapter:   adapter,
		assigner:  NewClusterAssigner(),
		ranker:    NewContentRanker(adapter, cfg.TopWindow),
		diversity: NewDiversitySelector(adapter),
		minHybrid: cfg.Pool.MinHybrid,
	}
}

// Recommend returns up to three picks tagged cluster, content, diversity.
//
// A nil input, or a pool smaller than the hybrid minimum, returns the pool
// unchanged and untagged. Each step excludes names picked by earlier steps
// and is skipped when nothing remains.
func (o *Orchestrator[T]) Recommend(pool []T, input EmotionInput, rng *rand.Rand) Result[T] {
	if input == nil {
		return degraded(pool, DegradeNoInput)
	}
	if len(pool) < o.minHybrid {
		return degraded(pool, DegradeInsufficientPool)
	}

	user := Normalize(FromInput(input))
	clusterIdx := o.assigner.Assign(user)

	result := Result[T]{
		Items:     make([]Recommendation[T], 0, 3),
		ClusterID: ClusterID(clusterIdx),
	}
	chosen := make(NameSet, 3)
	var chosenVecs []Vector

	take := func(s Scored[T], method Method) {
		chosen.Add(o.adapter.Name(s.Item))
		chosenVecs = append(chosenVecs, s.Vector)
		result.Items = append(result.Items, Recommendation[T]{
			Item:   s.Item,
			Score:  s.Score,
			Method: method,
		})
	}

	centroid := Normalize(o.assigner.Centroid(clusterIdx))
	if s, ok := o.ranker.Pick(centroid, pool, chosen, rng); ok {
		take(s, MethodCluster)
	}
	if s, ok := o.ranker.Pick(user, pool, chosen, rng); ok {
		take(s, MethodContent)
	}
	if s, ok := o.diversity.Pick(pool, chosenVecs, chosen); ok {
		take(s, MethodDiversity)
	}

	return result
}

func degraded[T any](pool []T, reason DegradeReason) Result[T] {
	items := make([]Recommendation[T], len(pool))
	for i, item := range pool {
		items[i] = Recommendation[T]{Item: item}
	}
	return Result[T]{Items: items, Degraded: true, Reason: reason}
}
