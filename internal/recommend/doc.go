// Moodshelf - Emotion-Aware Content Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodshelf

// Package recommend implements the hybrid emotion-vector recommendation core.
//
// # Architecture
//
// Every candidate and every user is reduced to a six-dimensional emotion
// vector in the fixed order [happy, sad, stress, calm, excited, tired].
// Three strategies then pick up to three items from a candidate pool:
//
//   - Cluster affinity: the user vector is assigned to the nearest of six
//     fixed centroids and candidates are ranked against that centroid.
//   - Content similarity: candidates are ranked against the user vector.
//   - Diversity: the candidate least similar to what was already picked.
//
// Both similarity steps sample uniformly from the top-3 window rather than
// returning the literal best match, so repeated requests surface variety.
//
// # Components
//
//   - Vector, Normalize, CosineSimilarity: vector math with a zero-vector guard
//   - ClusterAssigner: nearest-centroid lookup against the static table
//   - ContentRanker: cosine ranking with top-window random sampling
//   - DiversitySelector: greedy maximum average dissimilarity
//   - PoolExpander: tops up small pools from neighboring clusters
//   - Orchestrator: runs cluster, content, diversity in order
//
// All components are generic over the item type. An Adapter supplies the
// dedup name and the raw emotion vector for an item, so books, music and
// activities share one implementation.
//
// # Degradation
//
// When the caller has no emotion input, or the pool holds fewer than
// MinHybridPool items, the Orchestrator returns the pool unchanged and
// untagged. This is a designed fallback, not an error.
//
// # Usage
//
//	adapter := recommend.Adapter[Book]{
//	    Name:   func(b Book) string { return b.Title },
//	    Vector: func(b Book) recommend.Vector { return recommend.FromScores(b.Scores) },
//	}
//	orch := recommend.NewOrchestrator(adapter, recommend.DefaultConfig())
//	result := orch.Recommend(pool, input, rand.New(rand.NewSource(7)))
//
// # Thread Safety
//
// The centroid table is immutable and shared. Orchestrator, ContentRanker,
// DiversitySelector and PoolExpander hold no per-call state and are safe for
// concurrent use. The *rand.Rand passed to a call must not be shared between
// goroutines; callers derive one per request.
package recommend
