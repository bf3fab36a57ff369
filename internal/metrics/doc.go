// Moodshelf - Emotion-Aware Content Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodshelf

/*
Package metrics defines the Prometheus instrumentation of Moodshelf.

All collectors are registered on the default registry through promauto and
exposed by the API at /metrics. Every metric name is prefixed "moodshelf_".

# Recommendation

  - moodshelf_recommendations_total{kind,method}
  - moodshelf_recommendations_degraded_total{kind,reason}
  - moodshelf_recommendation_duration_seconds{kind}
  - moodshelf_pool_expansions_total{kind}
  - moodshelf_pool_size{kind}
  - moodshelf_cluster_assignments_total{cluster}

# Catalog

  - moodshelf_catalog_query_duration_seconds{backend,operation}
  - moodshelf_catalog_query_errors_total{backend,operation}
  - moodshelf_catalog_healthy, moodshelf_catalog_items{kind}
  - moodshelf_pool_cache_hits_total{kind}, moodshelf_pool_cache_misses_total{kind}
  - moodshelf_circuit_breaker_state{name} and friends

# API

  - moodshelf_api_requests_total{method,endpoint,status_code}
  - moodshelf_api_request_duration_seconds{method,endpoint}
  - moodshelf_api_active_requests
*/
package metrics
