// Moodshelf - Emotion-Aware Content Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodshelf

/*
Package middleware provides HTTP middleware shared by the API router.

  - RequestID: assigns X-Request-ID and seeds the logging context
  - PrometheusMetrics: request count, latency and in-flight gauge

Both use the http.HandlerFunc signature; the api package adapts them for
chi's r.Use:

	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chiMiddleware(middleware.PrometheusMetrics))
*/
package middleware
