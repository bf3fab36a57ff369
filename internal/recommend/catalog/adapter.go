// Moodshelf - Emotion-Aware Content Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodshelf

package catalog

import (
	"github.com/tomtom215/moodshelf/internal/models"
	"github.com/tomtom215/moodshelf/internal/recommend"
)

// scoreVector reads the explicit 0-100 scores.
func scoreVector(it models.CatalogItem) recommend.Vector {
	return recommend.FromScores(it.EmotionScores)
}

// scoreOrCentroid falls back to the item's cluster centroid when the row has
// no scores. Rows with an invalid cluster and no scores stay zero.
func scoreOrCentroid(it models.CatalogItem) recommend.Vector {
	if !it.IsZero() {
		return scoreVector(it)
	}
	c, err := recommend.ClusterByID(it.ClusterID)
	if err != nil {
		return recommend.Vector{}
	}
	return c.Centroid
}

// adapters holds the extraction functions of each kind.
var adapters = map[models.Kind]recommend.Adapter[models.CatalogItem]{
	models.KindBook:     {Name: models.Label, Vector: scoreVector},
	models.KindMusic:    {Name: models.Label, Vector: scoreOrCentroid},
	models.KindActivity: {Name: models.Label, Vector: scoreOrCentroid},
}

// AdapterFor returns the adapter of kind.
func AdapterFor(kind models.Kind) (recommend.Adapter[models.CatalogItem], bool) {
	a, ok := adapters[kind]
	return a, ok
}
