// Moodshelf - Emotion-Aware Content Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodshelf

// Package cache provides a small generic in-memory TTL cache.
//
// The recommendation engine keeps one Cache per catalog kind holding the
// candidate pool fetched for each cluster, so the six-cluster walk done by
// pool expansion does not hit the store on every request.
//
// Entries expire lazily on Get and are also swept by a background goroutine;
// call Close to stop it. GetStats and HitRate expose hit/miss counters.
package cache
