// Moodshelf - Emotion-Aware Content Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodshelf

package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tomtom215/moodshelf/internal/recommend"
)

// ErrUnknownKind is returned for a catalog kind other than book, music or activity.
var ErrUnknownKind = errors.New("unknown catalog kind")

// Kind identifies one of the independent catalogs.
type Kind string

// Catalog kinds.
const (
	KindBook     Kind = "book"
	KindMusic    Kind = "music"
	KindActivity Kind = "activity"
)

// Kinds lists every catalog kind in a stable order.
var Kinds = []Kind{KindBook, KindMusic, KindActivity}

// kindAliases accepts the plural route segments and the original "acting" name.
var kindAliases = map[string]Kind{
	"books":      KindBook,
	"songs":      KindMusic,
	"activities": KindActivity,
	"acting":     KindActivity,
}

// ParseKind resolves a route or config value to a Kind.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	k := Kind(s)
	if k.Valid() {
		return k, nil
	}
	if alias, ok := kindAliases[s]; ok {
		return alias, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	switch k {
	case KindBook, KindMusic, KindActivity:
		return true
	}
	return false
}

func (k Kind) String() string {
	return string(k)
}

// CatalogItem is one recommendable book, song or activity.
//
// Books carry explicit 0-100 emotion scores. Music and activity rows often
// carry only their cluster; their vector then falls back to the cluster centroid.
type CatalogItem struct {
	ID        int64  `json:"id"`
	Kind      Kind   `json:"kind"`
	Name      string `json:"name"`
	ClusterID int    `json:"cluster_id"`
	recommend.EmotionScores
}

// Label returns the name used for deduplication.
//
//nolint:gocritic // CatalogItem is small and flows by value through the generic core
func Label(it CatalogItem) string {
	return it.Name
}

// Validate checks the invariants a stored item must satisfy.
func (it *CatalogItem) Validate() error {
	if !it.Kind.Valid() {
		return fmt.Errorf("item %d: %w: %q", it.ID, ErrUnknownKind, it.Kind)
	}
	if strings.TrimSpace(it.Name) == "" {
		return fmt.Errorf("item %d: name is required", it.ID)
	}
	if !recommend.ValidCluster(it.ClusterID) {
		return fmt.Errorf("item %d: %w: %d", it.ID, recommend.ErrInvalidCluster, it.ClusterID)
	}
	for i, s := range it.Slice() {
		if s < 0 || s > 100 {
			return fmt.Errorf("item %d: %s score %d outside 0..100", it.ID, recommend.EmotionKeys()[i], s)
		}
	}
	return nil
}

// TrainingData is the features/labels export of one catalog kind.
// Features are raw scores in [happy, sad, stress, calm, excited, tired] order;
// labels are cluster ids.
type TrainingData struct {
	Kind     Kind     `json:"kind"`
	Features [][]int  `json:"features"`
	Labels   []int    `json:"labels"`
	Columns  []string `json:"columns"`
	Count    int      `json:"count"`
}

// CatalogSample is a random selection of one cluster.
type CatalogSample struct {
	Kind      Kind          `json:"kind"`
	ClusterID int           `json:"cluster_id"`
	Count     int           `json:"count"`
	Items     []CatalogItem `json:"items"`
}
