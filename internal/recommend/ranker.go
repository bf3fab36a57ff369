// Moodshelf - Emotion-Aware Content Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodshelf

package recommend

import (
	"math/rand"
	"sort"
)

// DefaultTopWindow is the number of best matches the ranker samples from.
const DefaultTopWindow = 3

// ContentRanker ranks candidates by cosine similarity to a target vector and
// picks one at random from the best few.
type ContentRanker[T any] struct {
	adapter Adapter[T]
	window  int
}

// NewContentRanker creates a ranker sampling from the top window matches.
// A window below 1 falls back to DefaultTopWindow.
//
//nolint:gocritic // Adapter is two func values, copying is fine
func NewContentRanker[T any](adapter Adapter[T], window int) *ContentRanker[T] {
	if window < 1 {
		window = DefaultTopWindow
	}
	return &ContentRanker[T]{adapter: adapter, window: window}
}

// Rank scores every candidate not in excluded and returns them sorted by
// similarity, highest first. Equal scores keep pool order.
func (r *ContentRanker[T]) Rank(target Vector, pool []T, excluded NameSet) []Scored[T] {
	scored := make([]Scored[T], 0, len(pool))
	for _, item := range pool {
		if excluded.Has(r.adapter.Name(item)) {
			continue
		}
		vec := r.adapter.normalized(item)
		scored = append(scored, Scored[T]{
			Item:   item,
			Vector: vec,
			Score:  CosineSimilarity(target, vec),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// Pick returns one candidate drawn uniformly from the top window of Rank.
// It returns false when no candidate remains. A nil rng always takes the
// best match.
func (r *ContentRanker[T]) Pick(target Vector, pool []T, excluded NameSet, rng *rand.Rand) (Scored[T], bool) {
	ranked := r.Rank(target, pool, excluded)
	if len(ranked) == 0 {
		return Scored[T]{}, false
	}

	n := r.window
	if len(ranked) < n {
		n = len(ranked)
	}
	if rng == nil || n == 1 {
		return ranked[0], true
	}
	return ranked[rng.Intn(n)], true
}
