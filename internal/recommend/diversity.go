// Moodshelf - Emotion-Aware Content Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodshelf

package recommend

// DiversitySelector greedily picks the candidate that differs most from the
// items already selected. It is deterministic.
type DiversitySelector[T any] struct {
	adapter Adapter[T]
}

// NewDiversitySelector creates a selector for items read through adapter.
//
//nolint:gocritic // Adapter is two func values, copying is fine
func NewDiversitySelector[T any](adapter Adapter[T]) *DiversitySelector[T] {
	return &DiversitySelector[T]{adapter: adapter}
}

// Score returns the average dissimilarity (1 - cosine) between v and every
// selected vector, or 1.0 when nothing has been selected.
func (d *DiversitySelector[T]) Score(v Vector, selected []Vector) float64 {
	if len(selected) == 0 {
		return 1.0
	}
	var total float64
	for _, s := range selected {
		total += 1 - CosineSimilarity(v, s)
	}
	return total / float64(len(selected))
}

// Pick returns the non-excluded candidate with the highest Score.
// The first candidate in pool order wins ties. It returns false when every
// candidate is excluded.
func (d *DiversitySelector[T]) Pick(pool []T, selected []Vector, excluded NameSet) (Scored[T], bool) {
	bestIdx := -1
	var best Scored[T]

	for i, item := range pool {
		if excluded.Has(d.adapter.Name(item)) {
			continue
		}
		vec := d.adapter.normalized(item)
		score := d.Score(vec, selected)
		if bestIdx == -1 || score > best.Score {
			bestIdx = i
			best = Scored[T]{Item: item, Vector: vec, Score: score}
		}
	}

	return best, bestIdx != -1
}
