// Moodshelf - Emotion-Aware Content Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodshelf

/*
Package catalog binds the generic recommendation core to the stored
book, music and activity catalogs.

Engine holds one PoolExpander and one Orchestrator per kind, a TTL cache of
cluster pools per kind, and a mutex-guarded seed generator that hands every
request its own *rand.Rand. Everything else is per call.

Books carry explicit emotion scores. Music and activity rows may carry only
their cluster; such rows are compared using their cluster's centroid.

Usage:

	engine, err := catalog.NewEngine(store, catalog.ConfigFrom(&cfg.Recommend), catalog.Options{
	    FetchLimit: cfg.Catalog.FetchLimit,
	    CacheTTL:   cfg.Catalog.CacheTTL,
	}, logging.Logger())
	if err != nil {
	    return err
	}
	defer engine.Close()

	resp, err := engine.Recommend(ctx, models.KindBook, 1, recommend.EmotionInput{"happy": 0.9})
*/
package catalog
