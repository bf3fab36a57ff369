// Moodshelf - Emotion-Aware Content Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodshelf

package recommend

import (
	"errors"
	"fmt"
)

// ClusterCount is the number of fixed emotion clusters.
const ClusterCount = 6

// ErrInvalidCluster is returned for cluster ids outside 1..ClusterCount.
var ErrInvalidCluster = errors.New("cluster id out of range")

// Cluster describes one entry of the centroid table.
type Cluster struct {
	// ID is the 1-based cluster id used by catalogs and the API.
	ID int `json:"id"`

	// Name is the canonical emotion this cluster represents.
	Name string `json:"name"`

	// Centroid is the reference emotion vector.
	Centroid Vector `json:"centroid"`
}

// centroidTable is built once at package init and never mutated.
// Index i holds cluster id i+1.
var centroidTable = [ClusterCount]Cluster{
	{ID: 1, Name: "happy", Centroid: Vector{0.8, 0.2, 0.2, 0.5, 0.7, 0.1}},
	{ID: 2, Name: "sad", Centroid: Vector{0.2, 0.8, 0.6, 0.3, 0.1, 0.5}},
	{ID: 3, Name: "stress", Centroid: Vector{0.3, 0.4, 0.8, 0.2, 0.3, 0.6}},
	{ID: 4, Name: "calm", Centroid: Vector{0.4, 0.2, 0.2, 0.8, 0.3, 0.2}},
	{ID: 5, Name: "excited", Centroid: Vector{0.6, 0.1, 0.3, 0.3, 0.9, 0.2}},
	{ID: 6, Name: "tired", Centroid: Vector{0.2, 0.5, 0.4, 0.3, 0.1, 0.8}},
}

// Clusters returns a copy of the centroid table in id order.
func Clusters() []Cluster {
	out := make([]Cluster, ClusterCount)
	copy(out, centroidTable[:])
	return out
}

// ValidCluster reports whether id is a known cluster id.
func ValidCluster(id int) bool {
	return id >= 1 && id <= ClusterCount
}

// ClusterID converts a 0-based centroid index into a cluster id.
func ClusterID(index int) int {
	return index + 1
}

// ClusterByID looks up a cluster by its 1-based id.
func ClusterByID(id int) (Cluster, error) {
	if !ValidCluster(id) {
		return Cluster{}, fmt.Errorf("%w: %d", ErrInvalidCluster, id)
	}
	return centroidTable[id-1], nil
}

// ClusterAssigner maps an emotion vector onto its nearest centroid.
// The zero value is not usable; use NewClusterAssigner.
type ClusterAssigner struct {
	centroids [ClusterCount]Vector
}

// NewClusterAssigner returns an assigner over the process-wide centroid table.
func NewClusterAssigner() *ClusterAssigner {
	var centroids [ClusterCount]Vector
	for i, c := range centroidTable {
		centroids[i] = c.Centroid
	}
	return &ClusterAssigner{centroids: centroids}
}

// Assign returns the index (0-5) of the centroid with the highest cosine
// similarity to v. Ties go to the lowest index.
func (a *ClusterAssigner) Assign(v Vector) int {
	best := 0
	bestSim := CosineSimilarity(v, a.centroids[0])
	for i := 1; i < ClusterCount; i++ {
		if sim := CosineSimilarity(v, a.centroids[i]); sim > bestSim {
			best, bestSim = i, sim
		}
	}
	return best
}

// Centroid returns the centroid at index.
func (a *ClusterAssigner) Centroid(index int) Vector {
	return a.centroids[index]
}
