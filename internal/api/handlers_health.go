// Moodshelf - Emotion-Aware Content Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodshelf

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/moodshelf/internal/metrics"
	"github.com/tomtom215/moodshelf/internal/models"
)

// healthPingTimeout bounds the catalog ping made by health checks.
const healthPingTimeout = 2 * time.Second

// checkCatalog pings the catalog store and updates the health gauge.
func (h *Handler) checkCatalog(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()

	err := h.catalog.Ping(ctx)
	metrics.SetCatalogHealth(err == nil)
	return err
}

// Health handles GET /api/v1/health.
// It always answers 200; Status is "degraded" when the catalog is unreachable.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	err := h.checkCatalog(r.Context())

	health := models.HealthStatus{
		Status:         "healthy",
		Version:        h.version,
		CatalogBackend: h.catalog.Backend(),
		CatalogOK:      err == nil,
		Uptime:         time.Since(h.startTime).Seconds(),
		Timestamp:      time.Now(),
	}
	if err != nil {
		health.Status = "degraded"
		health.CatalogError = err.Error()
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   health,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthLive handles GET /api/v1/health/live (process is up).
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     map[string]string{"status": "alive"},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// HealthReady handles GET /api/v1/health/ready.
// It answers 503 while the catalog store cannot be reached.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if err := h.checkCatalog(r.Context()); err != nil {
		respondError(w, http.StatusServiceUnavailable, models.ErrCodeCatalogUnavailable, "Catalog not ready", nil)
		return
	}
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     map[string]string{"status": "ready"},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}
