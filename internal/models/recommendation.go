// Moodshelf - Emotion-Aware Content Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodshelf

package models

import (
	"github.com/tomtom215/moodshelf/internal/recommend"
)

// RecommendationRequest is the body of POST /api/v1/recommendations/{kind}.
// A missing Emotion map produces the degraded (unranked) pool.
type RecommendationRequest struct {
	ClusterID int                `json:"cluster_id" validate:"cluster_id"`
	Emotion   map[string]float64 `json:"emotion,omitempty" validate:"omitempty,dive,keys,emotion_key,endkeys"`
}

// Input converts the request emotion map to core input, keeping nil as nil.
func (r *RecommendationRequest) Input() recommend.EmotionInput {
	if r.Emotion == nil {
		return nil
	}
	return recommend.EmotionInput(r.Emotion)
}

// RecommendationResponse is the data payload of a recommendation call.
type RecommendationResponse struct {
	Kind             Kind                                    `json:"kind"`
	RequestedCluster int                                     `json:"requested_cluster"`
	AssignedCluster  int                                     `json:"assigned_cluster,omitempty"`
	Degraded         bool                                    `json:"degraded"`
	Reason           recommend.DegradeReason                 `json:"reason,omitempty"`
	PoolSize         int                                     `json:"pool_size"`
	Expanded         bool                                    `json:"expanded"`
	SourceClusters   []int                                   `json:"source_clusters"`
	Items            []recommend.Recommendation[CatalogItem] `json:"items"`
}

// ClusterAssignRequest is the body of POST /api/v1/clusters/assign.
type ClusterAssignRequest struct {
	Emotion map[string]float64 `json:"emotion" validate:"required,dive,keys,emotion_key,endkeys"`
}

// ClusterAssignment reports the nearest centroid to an emotion input.
type ClusterAssignment struct {
	ClusterID    int                `json:"cluster_id"`
	Name         string             `json:"name"`
	Similarity   float64            `json:"similarity"`
	Normalized   map[string]float64 `json:"normalized"`
	Similarities []float64          `json:"similarities"`
}

// ClusterInfo describes one fixed centroid.
type ClusterInfo struct {
	ID       int                `json:"id"`
	Name     string             `json:"name"`
	Centroid map[string]float64 `json:"centroid"`
}
