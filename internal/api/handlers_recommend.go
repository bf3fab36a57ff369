// Moodshelf - Emotion-Aware Content Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodshelf

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/moodshelf/internal/logging"
	"github.com/tomtom215/moodshelf/internal/models"
)

// defaultSampleLimit matches the three picks a recommendation returns.
const defaultSampleLimit = 3

// sampleRequest holds the query parameters of a sample call.
type sampleRequest struct {
	ClusterID int `json:"cluster" validate:"cluster_id"`
	Limit     int `json:"limit" validate:"min=1,max=50"`
}

// RecommendPost handles POST /api/v1/recommendations/{kind}.
//
// Body: {"cluster_id": 1, "emotion": {"happy": 0.9, "calm": 0.4}}.
// Omitting emotion returns the cluster pool unranked.
func (h *Handler) RecommendPost(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	kind, err := kindParam(r)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	var req models.RecommendationRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, models.ErrCodeValidation, "Invalid JSON body", nil)
		return
	}

	h.recommend(w, r, kind, &req, start)
}

// RecommendGet handles GET /api/v1/recommendations/{kind}.
//
// Query: ?cluster=1&happy=0.9&sad=0.1&stressed=0.1 (stress or stressed).
// Without any emotion parameter the cluster pool is returned unranked.
func (h *Handler) RecommendGet(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	kind, err := kindParam(r)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	emotion, err := emotionFromQuery(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, models.ErrCodeValidation, err.Error(), nil)
		return
	}

	req := models.RecommendationRequest{
		ClusterID: getIntParam(r, "cluster", 0),
		Emotion:   emotion,
	}
	h.recommend(w, r, kind, &req, start)
}

func (h *Handler) recommend(w http.ResponseWriter, r *http.Request, kind models.Kind, req *models.RecommendationRequest, start time.Time) {
	if apiErr := validateRequest(req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	resp, err := h.engine.Recommend(r.Context(), kind, req.ClusterID, req.Input())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	if resp.Degraded {
		logging.Ctx(r.Context()).Debug().
			Str("kind", kind.String()).
			Int("cluster", req.ClusterID).
			Str("reason", string(resp.Reason)).
			Msg("Served unranked pool")
	}

	respondSuccess(w, resp, start, len(resp.Items))
}

// CatalogSample handles GET /api/v1/catalog/{kind}/sample?cluster=&limit=.
// It returns a random sample of one cluster (3 items by default).
func (h *Handler) CatalogSample(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	kind, err := kindParam(r)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	req := sampleRequest{
		ClusterID: getIntParam(r, "cluster", 0),
		Limit:     getIntParam(r, "limit", defaultSampleLimit),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	sample, err := h.engine.Sample(r.Context(), kind, req.ClusterID, req.Limit)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondSuccess(w, sample, start, sample.Count)
}

// CatalogItem handles GET /api/v1/catalog/{kind}/{id}.
func (h *Handler) CatalogItem(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	kind, err := kindParam(r)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		respondError(w, http.StatusBadRequest, models.ErrCodeValidation, "id must be a positive integer", nil)
		return
	}

	item, err := h.engine.Item(r.Context(), kind, id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, item, start, 1)
}

// TrainingData handles GET /api/v1/catalog/{kind}/training-data.
// Features are the six emotion scores in vector order; labels are cluster ids.
func (h *Handler) TrainingData(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	kind, err := kindParam(r)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	td, err := h.engine.TrainingData(r.Context(), kind)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondSuccess(w, td, start, td.Count)
}

// Clusters handles GET /api/v1/clusters.
func (h *Handler) Clusters(w http.ResponseWriter, r *http.Request) {
	clusters := h.engine.Clusters()
	respondSuccess(w, clusters, time.Now(), len(clusters))
}

// AssignCluster handles POST /api/v1/clusters/assign.
func (h *Handler) AssignCluster(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.ClusterAssignRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, models.ErrCodeValidation, "Invalid JSON body", nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	respondSuccess(w, h.engine.Assign(req.Emotion), start, 0)
}
