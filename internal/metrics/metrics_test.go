// Moodshelf - Emotion-Aware Content Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodshelf

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	io_prometheus_client "github.com/prometheus/client_model/go"
)

// getHistogram snapshots a histogram child so sample counts and sums can be read.
func getHistogram(t *testing.T, obs prometheus.Observer) *io_prometheus_client.Histogram {
	t.Helper()
	metric, ok := obs.(prometheus.Metric)
	if !ok {
		t.Fatalf("observer %T is not a metric", obs)
	}
	var m io_prometheus_client.Metric
	if err := metric.Write(&m); err != nil {
		t.Fatalf("write metric: %v", err)
	}
	return m.GetHistogram()
}

func TestRecordCatalogQuery(t *testing.T) {
	beforeErr := testutil.ToFloat64(CatalogQueryErrors.WithLabelValues("duckdb", "test_candidates"))

	RecordCatalogQuery("duckdb", "test_candidates", 3*time.Millisecond, nil)
	RecordCatalogQuery("duckdb", "test_candidates", 5*time.Millisecond, errors.New("conn reset"))

	if got := testutil.ToFloat64(CatalogQueryErrors.WithLabelValues("duckdb", "test_candidates")); got != beforeErr+1 {
		t.Errorf("errors = %v, want %v", got, beforeErr+1)
	}
	if n := testutil.CollectAndCount(CatalogQueryDuration); n == 0 {
		t.Error("no duration series collected")
	}
}

func TestRecordRecommendation(t *testing.T) {
	kind := "test_kind_rec"

	RecordRecommendation(kind, []string{"cluster", "content", "diversity"}, "", 6, true, time.Millisecond)
	RecordRecommendation(kind, []string{"", ""}, "insufficient_pool", 2, false, time.Millisecond)

	tests := []struct {
		method string
		want   float64
	}{
		{"cluster", 1},
		{"content", 1},
		{"diversity", 1},
		{"raw", 2},
	}
	for _, tt := range tests {
		if got := testutil.ToFloat64(RecommendationsTotal.WithLabelValues(kind, tt.method)); got != tt.want {
			t.Errorf("recommendations{%s} = %v, want %v", tt.method, got, tt.want)
		}
	}
	if got := testutil.ToFloat64(RecommendationsDegraded.WithLabelValues(kind, "insufficient_pool")); got != 1 {
		t.Errorf("degraded = %v, want 1", got)
	}
	if got := testutil.ToFloat64(PoolExpansions.WithLabelValues(kind)); got != 1 {
		t.Errorf("expansions = %v, want 1", got)
	}
}

func TestRecordRecommendation_PoolSize(t *testing.T) {
	kind := "test_kind_pool"

	RecordRecommendation(kind, []string{"cluster"}, "", 4, false, time.Millisecond)
	RecordRecommendation(kind, []string{"cluster"}, "", 9, true, time.Millisecond)

	h := getHistogram(t, PoolSize.WithLabelValues(kind))
	if h.GetSampleCount() != 2 {
		t.Errorf("pool size samples = %d, want 2", h.GetSampleCount())
	}
	if h.GetSampleSum() != 13 {
		t.Errorf("pool size sum = %v, want 13", h.GetSampleSum())
	}

	d := getHistogram(t, RecommendationDuration.WithLabelValues(kind))
	if d.GetSampleCount() != 2 {
		t.Errorf("duration samples = %d, want 2", d.GetSampleCount())
	}
}

func TestRecordAPIRequest(t *testing.T) {
	RecordAPIRequest("GET", "/test/metrics", "200", 10*time.Millisecond)
	if got := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/test/metrics", "200")); got != 1 {
		t.Errorf("api_requests_total = %v, want 1", got)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("active = %v, want %v", got, before+1)
	}
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("active = %v, want %v", got, before)
	}
}

func TestSetCatalogHealth(t *testing.T) {
	SetCatalogHealth(true)
	if testutil.ToFloat64(CatalogHealthy) != 1 {
		t.Error("healthy gauge not 1")
	}
	SetCatalogHealth(false)
	if testutil.ToFloat64(CatalogHealthy) != 0 {
		t.Error("healthy gauge not 0")
	}
}
