// Moodshelf - Emotion-Aware Content Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodshelf

package api

import (
	"context"
	"time"

	"github.com/tomtom215/moodshelf/internal/models"
	"github.com/tomtom215/moodshelf/internal/recommend"
)

// Recommender is the recommendation surface used by the handlers.
// *catalog.Engine implements it.
type Recommender interface {
	Recommend(ctx context.Context, kind models.Kind, clusterID int, input recommend.EmotionInput) (*models.RecommendationResponse, error)
	Sample(ctx context.Context, kind models.Kind, clusterID, limit int) (*models.CatalogSample, error)
	TrainingData(ctx context.Context, kind models.Kind) (*models.TrainingData, error)
	Item(ctx context.Context, kind models.Kind, id int64) (*models.CatalogItem, error)
	Assign(input recommend.EmotionInput) *models.ClusterAssignment
	Clusters() []models.ClusterInfo
}

// CatalogPinger reports catalog store reachability for health checks.
type CatalogPinger interface {
	Ping(ctx context.Context) error
	Backend() string
}

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers_recommend.go: recommendations, samples, items, training data, clusters
//   - handlers_health.go: health, liveness and readiness
//   - handlers_helpers.go: response and parameter helpers
type Handler struct {
	engine    Recommender
	catalog   CatalogPinger
	version   string
	startTime time.Time
}

// NewHandler creates an API handler.
func NewHandler(engine Recommender, catalog CatalogPinger, version string) *Handler {
	return &Handler{
		engine:    engine,
		catalog:   catalog,
		version:   version,
		startTime: time.Now(),
	}
}
