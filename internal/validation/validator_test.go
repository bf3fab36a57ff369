// Moodshelf - Emotion-Aware Content Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodshelf

package validation

import (
	"strings"
	"sync"
	"testing"
)

type sampleRequest struct {
	Kind      string             `json:"kind" validate:"required,oneof=book music activity"`
	ClusterID int                `json:"cluster_id" validate:"cluster_id"`
	Limit     int                `json:"limit" validate:"min=0,max=100"`
	Emotion   map[string]float64 `json:"emotion" validate:"omitempty,dive,keys,emotion_key,endkeys"`
}

func validSample() sampleRequest {
	return sampleRequest{
		Kind:      "book",
		ClusterID: 3,
		Limit:     10,
		Emotion:   map[string]float64{"happy": 0.4, "stressed": 0.9},
	}
}

func TestGetValidator_Singleton(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup
	got := make(chan interface{}, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got <- GetValidator()
		}()
	}
	wg.Wait()
	close(got)

	first := GetValidator()
	for v := range got {
		if v != first {
			t.Fatal("GetValidator returned different instances")
		}
	}
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		modify    func(*sampleRequest)
		wantField string
		wantTag   string
	}{
		{"valid", func(r *sampleRequest) {}, "", ""},
		{"missing kind", func(r *sampleRequest) { r.Kind = "" }, "kind", "required"},
		{"unknown kind", func(r *sampleRequest) { r.Kind = "film" }, "kind", "oneof"},
		{"cluster zero", func(r *sampleRequest) { r.ClusterID = 0 }, "cluster_id", "cluster_id"},
		{"cluster seven", func(r *sampleRequest) { r.ClusterID = 7 }, "cluster_id", "cluster_id"},
		{"limit too large", func(r *sampleRequest) { r.Limit = 101 }, "limit", "max"},
		{"unknown emotion key", func(r *sampleRequest) { r.Emotion["angry"] = 1 }, "", "emotion_key"},
		{"empty emotion map", func(r *sampleRequest) { r.Emotion = nil }, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := validSample()
			tt.modify(&req)
			verr := ValidateStruct(&req)

			if tt.wantTag == "" {
				if verr != nil {
					t.Fatalf("unexpected error: %v", verr)
				}
				return
			}
			if verr == nil {
				t.Fatal("expected validation error, got nil")
			}
			errs := verr.Errors()
			if len(errs) != 1 {
				t.Fatalf("got %d errors (%v), want 1", len(errs), verr)
			}
			if errs[0].Tag() != tt.wantTag {
				t.Errorf("Tag() = %q, want %q", errs[0].Tag(), tt.wantTag)
			}
			if tt.wantField != "" && errs[0].Field() != tt.wantField {
				t.Errorf("Field() = %q, want %q", errs[0].Field(), tt.wantField)
			}
		})
	}
}

func TestRequestValidationError_ToAPIError(t *testing.T) {
	t.Parallel()

	t.Run("single error", func(t *testing.T) {
		req := validSample()
		req.ClusterID = 9
		apiErr := ValidateStruct(&req).ToAPIError()

		if apiErr.Code != "VALIDATION_ERROR" {
			t.Errorf("Code = %q", apiErr.Code)
		}
		if !strings.Contains(apiErr.Message, "between 1 and 6") {
			t.Errorf("Message = %q", apiErr.Message)
		}
		if apiErr.Details["field"] != "cluster_id" {
			t.Errorf("Details = %v", apiErr.Details)
		}
	})

	t.Run("multiple errors", func(t *testing.T) {
		req := validSample()
		req.Kind = ""
		req.Limit = -1
		apiErr := ValidateStruct(&req).ToAPIError()

		fields, ok := apiErr.Details["fields"].([]map[string]interface{})
		if !ok || len(fields) != 2 {
			t.Fatalf("Details = %v, want two fields", apiErr.Details)
		}
		if !strings.Contains(apiErr.Message, ";") {
			t.Errorf("Message = %q, want joined messages", apiErr.Message)
		}
	})

	t.Run("empty", func(t *testing.T) {
		apiErr := (&RequestValidationError{}).ToAPIError()
		if apiErr.Message != "Validation failed" {
			t.Errorf("Message = %q", apiErr.Message)
		}
	})
}
