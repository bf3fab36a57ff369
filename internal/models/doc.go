// Moodshelf - Emotion-Aware Content Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodshelf

/*
Package models defines the data shapes shared by storage, the catalog engine
and the HTTP API.

# Catalog

CatalogItem is one book, song or activity. Items belong to exactly one Kind
and one primary cluster (1-6). Emotion scores are integers in 0..100 and
serialize flat alongside the item fields:

	{"id": 7, "kind": "book", "name": "Morning Light", "cluster_id": 1,
	 "happy": 80, "sad": 10, "stress": 5, "calm": 60, "excited": 50, "tired": 10}

# API Payloads

Request bodies carry validate tags consumed by internal/validation.
Every response is wrapped in APIResponse.
*/
package models
