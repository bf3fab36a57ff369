// Moodshelf - Emotion-Aware Content Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodshelf

package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/moodshelf/internal/database"
	"github.com/tomtom215/moodshelf/internal/logging"
	"github.com/tomtom215/moodshelf/internal/models"
	"github.com/tomtom215/moodshelf/internal/recommend"
	"github.com/tomtom215/moodshelf/internal/validation"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 1 << 20

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&result, "\\x%02x", r)
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a JSON response with proper headers.
// Recommendations are sampled per request, so nothing is cacheable.
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondSuccess wraps data in a success envelope timed from start.
func respondSuccess(w http.ResponseWriter, data interface{}, start time.Time, count int) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
			Count:       count,
		},
	})
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, code, message string, err error) {
	if err != nil {
		logging.Error().Str("code", sanitizeLogValue(code)).Str("error", sanitizeLogValue(err.Error())).Msg("API Error")
	}

	respondJSON(w, status, &models.APIResponse{
		Status: "error",
		Data:   nil,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
		Error: &models.APIError{
			Code:    code,
			Message: message,
		},
	})
}

// respondAPIError sends a prepared APIError with its details.
func respondAPIError(w http.ResponseWriter, status int, apiErr *models.APIError) {
	respondJSON(w, status, &models.APIResponse{
		Status:   "error",
		Metadata: models.Metadata{Timestamp: time.Now()},
		Error:    apiErr,
	})
}

// respondServiceError maps engine and store errors to HTTP responses.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, models.ErrUnknownKind):
		respondError(w, http.StatusNotFound, models.ErrCodeNotFound, "Unknown catalog kind", nil)
	case errors.Is(err, database.ErrNotFound):
		respondError(w, http.StatusNotFound, models.ErrCodeNotFound, "Catalog item not found", nil)
	case errors.Is(err, recommend.ErrInvalidCluster):
		respondError(w, http.StatusBadRequest, models.ErrCodeValidation, "cluster_id must be between 1 and 6", nil)
	case errors.Is(err, database.ErrCatalogUnavailable):
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Catalog unavailable")
		respondError(w, http.StatusServiceUnavailable, models.ErrCodeCatalogUnavailable, "Catalog temporarily unavailable", nil)
	case errors.Is(err, context.DeadlineExceeded):
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Request timed out")
		respondError(w, http.StatusServiceUnavailable, models.ErrCodeCatalogUnavailable, "Catalog did not respond in time", nil)
	default:
		logging.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("Request failed")
		respondError(w, http.StatusInternalServerError, models.ErrCodeInternal, "Internal server error", nil)
	}
}

// validateRequest validates a struct using go-playground/validator.
// Returns nil if validation passes.
func validateRequest(v interface{}) *models.APIError {
	validationErr := validation.ValidateStruct(v)
	if validationErr == nil {
		return nil
	}

	apiErr := validationErr.ToAPIError()
	return &models.APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}
}

// decodeJSON reads a bounded JSON body into dst.
func decodeJSON(r *http.Request, dst interface{}) error {
	body := io.LimitReader(r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}

// getIntParam extracts an integer query parameter with a default value
func getIntParam(r *http.Request, key string, defaultValue int) int {
	value := r.URL.Query().Get(key)
	if value == "" {
		return defaultValue
	}

	intValue, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return defaultValue
	}

	return intValue
}

// kindParam resolves the {kind} route segment.
func kindParam(r *http.Request) (models.Kind, error) {
	return models.ParseKind(chi.URLParam(r, "kind"))
}

// emotionFromQuery collects emotion query parameters (happy=0.8&stressed=0.2).
// It returns nil when none are present, so the request takes the unranked path.
func emotionFromQuery(r *http.Request) (map[string]float64, error) {
	var emotion map[string]float64
	for key, values := range r.URL.Query() {
		if !recommend.IsEmotionKey(key) || len(values) == 0 {
			continue
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(values[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("%s must be a number", key)
		}
		if emotion == nil {
			emotion = make(map[string]float64, recommend.Dimensions)
		}
		emotion[key] = f
	}
	return emotion, nil
}
