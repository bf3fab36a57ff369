// Moodshelf - Emotion-Aware Content Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodshelf

package recommend

import (
	"math"
)

// Dimensions is the number of components in an emotion vector.
const Dimensions = 6

// Component indices, in the fixed semantic order of a Vector.
const (
	Happy = iota
	Sad
	Stress
	Calm
	Excited
	Tired
)

// emotionKeys holds the canonical input key for each component.
var emotionKeys = [Dimensions]string{"happy", "sad", "stress", "calm", "excited", "tired"}

// emotionAliases maps alternate input keys onto canonical ones.
// "stressed" is what older clients send.
var emotionAliases = map[string]string{
	"stressed": "stress",
}

// EmotionKeys returns the canonical emotion keys in vector order.
func EmotionKeys() []string {
	keys := make([]string, Dimensions)
	copy(keys, emotionKeys[:])
	return keys
}

// Vector is an emotion profile in the order [happy, sad, stress, calm, excited, tired].
type Vector [Dimensions]float64

// Dot returns the dot product of v and o.
func (v Vector) Dot(o Vector) float64 {
	var sum float64
	for i := range v {
		sum += v[i] * o[i]
	}
	return sum
}

// Norm returns the Euclidean length of v.
func (v Vector) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// IsZero reports whether every component is zero.
func (v Vector) IsZero() bool {
	return v == Vector{}
}

// Map returns the vector keyed by canonical emotion names.
func (v Vector) Map() map[string]float64 {
	m := make(map[string]float64, Dimensions)
	for i, key := range emotionKeys {
		m[key] = v[i]
	}
	return m
}

// Normalize scales v to unit length.
// The zero vector is returned unchanged.
func Normalize(v Vector) Vector {
	norm := v.Norm()
	if norm == 0 {
		return v
	}
	var out Vector
	for i := range v {
		out[i] = v[i] / norm
	}
	return out
}

// CosineSimilarity returns dot(a,b) / (|a| |b|).
// It is 0 when either vector has zero magnitude.
func CosineSimilarity(a, b Vector) float64 {
	na, nb := a.Norm(), b.Norm()
	if na == 0 || nb == 0 {
		return 0
	}
	sim := a.Dot(b) / (na * nb)

	// Rounding can push identical directions a hair past 1.
	if sim > 1 {
		return 1
	}
	if sim < -1 {
		return -1
	}
	return sim
}

// EmotionInput is a user's emotion profile keyed by emotion name.
// Values are expected in [0, 1] but are not clamped.
type EmotionInput map[string]float64

// FromInput converts user input into a raw (unnormalized) vector.
// Missing or unknown keys contribute 0. NaN and infinite values are treated
// as missing. A canonical key wins over its alias when both are present.
func FromInput(in EmotionInput) Vector {
	var v Vector
	if len(in) == 0 {
		return v
	}

	for alias, canonical := range emotionAliases {
		val, ok := in[alias]
		if !ok {
			continue
		}
		if _, dup := in[canonical]; dup {
			continue
		}
		v[indexOf(canonical)] = finiteOrZero(val)
	}

	for i, key := range emotionKeys {
		if val, ok := in[key]; ok {
			v[i] = finiteOrZero(val)
		}
	}
	return v
}

// EmotionScores are raw catalog scores in the 0-100 domain.
type EmotionScores struct {
	Happy   int `json:"happy"`
	Sad     int `json:"sad"`
	Stress  int `json:"stress"`
	Calm    int `json:"calm"`
	Excited int `json:"excited"`
	Tired   int `json:"tired"`
}

// IsZero reports whether no score has been set.
//
//nolint:gocritic // value receiver keeps EmotionScores usable as a plain value
func (s EmotionScores) IsZero() bool {
	return s == EmotionScores{}
}

// Slice returns the scores in vector order.
//
//nolint:gocritic // value receiver keeps EmotionScores usable as a plain value
func (s EmotionScores) Slice() []int {
	return []int{s.Happy, s.Sad, s.Stress, s.Calm, s.Excited, s.Tired}
}

// FromScores maps 0-100 catalog scores onto [0, 1].
//
//nolint:gocritic // value receiver keeps EmotionScores usable as a plain value
func FromScores(s EmotionScores) Vector {
	return Vector{
		float64(s.Happy) / 100.0,
		float64(s.Sad) / 100.0,
		float64(s.Stress) / 100.0,
		float64(s.Calm) / 100.0,
		float64(s.Excited) / 100.0,
		float64(s.Tired) / 100.0,
	}
}

// Vectorizer extracts the raw emotion vector of an item.
type Vectorizer[T any] func(T) Vector

// Normalized wraps a Vectorizer so its output has unit length.
func Normalized[T any](vec Vectorizer[T]) Vectorizer[T] {
	return func(item T) Vector {
		return Normalize(vec(item))
	}
}

// IsEmotionKey reports whether key names an emotion dimension or one of its aliases.
func IsEmotionKey(key string) bool {
	if _, ok := emotionAliases[key]; ok {
		return true
	}
	return indexOf(key) >= 0
}

func indexOf(key string) int {
	for i, k := range emotionKeys {
		if k == key {
			return i
		}
	}
	return -1
}

func finiteOrZero(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
