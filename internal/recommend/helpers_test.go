// Moodshelf - Emotion-Aware Content Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodshelf

package recommend

import (
	"math"
)

// testItem is a minimal catalog row for exercising the generic components.
type testItem struct {
	name   string
	scores EmotionScores
}

var testAdapter = Adapter[testItem]{
	Name:   func(i testItem) string { return i.name },
	Vector: func(i testItem) Vector { return FromScores(i.scores) },
}

func item(name string, happy, sad, stress, calm, excited, tired int) testItem {
	return testItem{
		name: name,
		scores: EmotionScores{
			Happy: happy, Sad: sad, Stress: stress,
			Calm: calm, Excited: excited, Tired: tired,
		},
	}
}

func itemNames(items []testItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.name
	}
	return out
}

func recNames(recs []Recommendation[testItem]) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Item.name
	}
	return out
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// happyPool is ordered so that against a pure "happy" target the best three
// matches are a, b, c.
func happyPool() []testItem {
	return []testItem{
		item("d", 50, 50, 0, 0, 0, 0),
		item("a", 100, 0, 0, 0, 0, 0),
		item("e", 0, 100, 0, 0, 0, 0),
		item("b", 90, 10, 0, 0, 0, 0),
		item("f", 0, 0, 0, 0, 0, 0),
		item("c", 80, 30, 0, 0, 0, 0),
	}
}
