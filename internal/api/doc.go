// Moodshelf - Emotion-Aware Content Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodshelf

/*
Package api provides the HTTP REST API for Moodshelf.

Routes (chi, base /api/v1):

	POST /recommendations/{kind}           body {cluster_id, emotion{...}}
	GET  /recommendations/{kind}           ?cluster=&happy=&sad=&stress=&calm=&excited=&tired=
	GET  /catalog/{kind}/sample            ?cluster=&limit=
	GET  /catalog/{kind}/training-data
	GET  /catalog/{kind}/{id}
	GET  /clusters
	POST /clusters/assign                  body {emotion{...}}
	GET  /health
	GET  /metrics                          (outside /api/v1)

{kind} is book, music or activity; plural forms (books, songs, activities)
are accepted too.

Omitting the emotion input (no body field, no emotion query parameters)
returns the cluster pool unranked with degraded=true and reason=no_input.

Every JSON response uses the models.APIResponse envelope:

	{"status": "success", "data": {...}, "metadata": {"timestamp": "...", "query_time_ms": 2}}
	{"status": "error", "data": null, "error": {"code": "VALIDATION_ERROR", "message": "..."}}

Middleware stack (outermost first): request id, real IP, panic recovery,
CORS, per-IP rate limit (go-chi/httprate), security headers, Prometheus
request metrics, gzip and a per-request timeout.
*/
package api
