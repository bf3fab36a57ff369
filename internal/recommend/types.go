// Moodshelf - Emotion-Aware Content Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodshelf

package recommend

// Method tags which strategy produced a recommendation.
type Method string

const (
	// MethodCluster marks a pick ranked against the user's nearest centroid.
	MethodCluster Method = "cluster"
	// MethodContent marks a pick ranked against the user vector itself.
	MethodContent Method = "content"
	// MethodDiversity marks the pick least similar to earlier picks.
	MethodDiversity Method = "diversity"
)

// DegradeReason explains why the hybrid path was skipped.
type DegradeReason string

const (
	// DegradeNone means the hybrid path ran.
	DegradeNone DegradeReason = ""
	// DegradeNoInput means the caller supplied no emotion input.
	DegradeNoInput DegradeReason = "no_input"
	// DegradeInsufficientPool means the pool was below the hybrid minimum.
	DegradeInsufficientPool DegradeReason = "insufficient_pool"
)

// Adapter tells the core how to read an item of type T.
type Adapter[T any] struct {
	// Name returns the dedup key of an item.
	Name func(T) string

	// Vector returns the raw emotion vector of an item.
	// The core normalizes it before comparing.
	Vector Vectorizer[T]
}

func (a Adapter[T]) normalized(item T) Vector {
	return Normalize(a.Vector(item))
}

// Scored pairs an item with its normalized vector and a score.
type Scored[T any] struct {
	Item   T
	Vector Vector
	Score  float64
}

// Recommendation is a single entry of a recommendation list.
// Method is empty on the degraded path.
type Recommendation[T any] struct {
	// Item is the recommended candidate.
	Item T `json:"item"`

	// Score is the similarity (cluster, content) or diversity score.
	Score float64 `json:"score"`

	// Method is the strategy that chose the item.
	Method Method `json:"method,omitempty"`
}

// Result is the outcome of one orchestrator call.
type Result[T any] struct {
	// Items are the picks in cluster, content, diversity order,
	// or the raw pool when Degraded is set.
	Items []Recommendation[T] `json:"items"`

	// Degraded reports whether scoring was bypassed.
	Degraded bool `json:"degraded"`

	// Reason explains a degraded result.
	Reason DegradeReason `json:"reason,omitempty"`

	// ClusterID is the user's assigned cluster (1-6); 0 when degraded.
	ClusterID int `json:"cluster_id,omitempty"`
}

// NameSet is a set of item names already chosen in a call.
type NameSet map[string]struct{}

// Add inserts name.
func (s NameSet) Add(name string) {
	s[name] = struct{}{}
}

// Has reports whether name is present.
func (s NameSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}
