// Moodshelf - Emotion-Aware Content Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodshelf

// Package validation validates API request structs with go-playground/validator v10.
//
// A single validator is shared process-wide; it caches struct metadata and is
// safe for concurrent use. Field names in messages are taken from json tags.
//
//	type RecommendationRequest struct {
//	    ClusterID int                `json:"cluster_id" validate:"cluster_id"`
//	    Emotion   map[string]float64 `json:"emotion" validate:"omitempty,dive,keys,emotion_key,endkeys,gte=0,lte=1"`
//	}
//
// Failures convert to the VALIDATION_ERROR API error with ToAPIError.
package validation
