// Moodshelf - Emotion-Aware Content Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodshelf

// Package services adapts Moodshelf components to suture.Service.
//
//   - HTTPServerService: the API server with graceful shutdown
//   - CatalogMonitorService: periodic catalog health and item counts
package services
