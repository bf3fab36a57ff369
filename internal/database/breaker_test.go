// Moodshelf - Emotion-Aware Content Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodshelf

package database

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/moodshelf/internal/config"
	"github.com/tomtom215/moodshelf/internal/metrics"
	"github.com/tomtom215/moodshelf/internal/models"
)

// flakyStore fails every read while failing is set.
type flakyStore struct {
	failing atomic.Bool
	err     error
	calls   atomic.Int32
	pings   atomic.Int32
}

func (f *flakyStore) read() error {
	f.calls.Add(1)
	if f.failing.Load() {
		return f.err
	}
	return nil
}

func (f *flakyStore) CandidatesByCluster(_ context.Context, kind models.Kind, clusterID, _ int) ([]models.CatalogItem, error) {
	if err := f.read(); err != nil {
		return nil, err
	}
	return []models.CatalogItem{{ID: 1, Kind: kind, Name: "only", ClusterID: clusterID}}, nil
}

func (f *flakyStore) ListByKind(_ context.Context, _ models.Kind) ([]models.CatalogItem, error) {
	return nil, f.read()
}

func (f *flakyStore) Get(_ context.Context, kind models.Kind, id int64) (models.CatalogItem, error) {
	if err := f.read(); err != nil {
		return models.CatalogItem{}, err
	}
	return models.CatalogItem{ID: id, Kind: kind, Name: "only", ClusterID: 1}, nil
}

func (f *flakyStore) Count(_ context.Context, _ models.Kind) (int, error) {
	if err := f.read(); err != nil {
		return 0, err
	}
	return 1, nil
}

func (f *flakyStore) Upsert(_ context.Context, _ []models.CatalogItem) error { return nil }

func (f *flakyStore) Ping(_ context.Context) error {
	f.pings.Add(1)
	return nil
}

func (f *flakyStore) Backend() string { return "flaky" }
func (f *flakyStore) Close() error    { return nil }

func testBreakerConfig() *config.BreakerConfig {
	return &config.BreakerConfig{
		MaxRequests:  1,
		Interval:     time.Minute,
		Timeout:      50 * time.Millisecond,
		MinRequests:  3,
		FailureRatio: 0.5,
	}
}

func TestBreakerStore_PassesThroughWhenHealthy(t *testing.T) {
	inner := &flakyStore{err: errors.New("io error")}
	store := NewBreakerStore(inner, testBreakerConfig())
	ctx := context.Background()

	items, err := store.CandidatesByCluster(ctx, models.KindBook, 2, 10)
	if err != nil || len(items) != 1 || items[0].ClusterID != 2 {
		t.Fatalf("CandidatesByCluster() = %v, %v", items, err)
	}
	if n, err := store.Count(ctx, models.KindBook); err != nil || n != 1 {
		t.Errorf("Count() = %d, %v", n, err)
	}
	if store.State() != "closed" {
		t.Errorf("State() = %q, want closed", store.State())
	}
	if store.Backend() != "flaky" {
		t.Errorf("Backend() = %q", store.Backend())
	}
}

func TestBreakerStore_OpensAndRecovers(t *testing.T) {
	inner := &flakyStore{err: errors.New("io error")}
	inner.failing.Store(true)
	store := NewBreakerStore(inner, testBreakerConfig())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := store.ListByKind(ctx, models.KindBook); errors.Is(err, ErrCatalogUnavailable) {
			t.Fatalf("request %d rejected before the breaker should trip", i)
		}
	}
	if store.State() != "open" {
		t.Fatalf("State() = %q, want open", store.State())
	}

	before := inner.calls.Load()
	_, err := store.Count(ctx, models.KindBook)
	if !errors.Is(err, ErrCatalogUnavailable) {
		t.Errorf("Count() error = %v, want ErrCatalogUnavailable", err)
	}
	if inner.calls.Load() != before {
		t.Error("open breaker still reached the inner store")
	}

	// Ping bypasses the breaker so health checks see the real store.
	if err := store.Ping(ctx); err != nil || inner.pings.Load() != 1 {
		t.Errorf("Ping() = %v, pings = %d", err, inner.pings.Load())
	}

	inner.failing.Store(false)
	time.Sleep(80 * time.Millisecond)

	if _, err := store.Count(ctx, models.KindBook); err != nil {
		t.Fatalf("half-open probe error = %v", err)
	}
	if store.State() != "closed" {
		t.Errorf("State() = %q after successful probe, want closed", store.State())
	}
}

func TestBreakerStore_IgnoresBenignErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"not found", ErrNotFound},
		{"canceled", context.Canceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner := &flakyStore{err: tt.err}
			inner.failing.Store(true)
			store := NewBreakerStore(inner, testBreakerConfig())
			failures := metrics.CircuitBreakerRequests.WithLabelValues("catalog-flaky", "failure")
			successes := metrics.CircuitBreakerRequests.WithLabelValues("catalog-flaky", "success")
			failuresBefore, successesBefore := testutil.ToFloat64(failures), testutil.ToFloat64(successes)

			for i := 0; i < 10; i++ {
				_, err := store.Get(context.Background(), models.KindMusic, 7)
				if !errors.Is(err, tt.err) {
					t.Fatalf("Get() error = %v, want %v", err, tt.err)
				}
			}
			if store.State() != "closed" {
				t.Errorf("State() = %q, want closed", store.State())
			}
			if got := testutil.ToFloat64(failures) - failuresBefore; got != 0 {
				t.Errorf("failure requests grew by %v, want 0", got)
			}
			if got := testutil.ToFloat64(successes) - successesBefore; got != 10 {
				t.Errorf("success requests grew by %v, want 10", got)
			}
		})
	}
}

func TestCastResult(t *testing.T) {
	if _, err := castResult[int]("not an int", nil); err == nil {
		t.Error("castResult() accepted a mismatched type")
	}
	if v, err := castResult[[]models.CatalogItem](nil, nil); err != nil || v != nil {
		t.Errorf("castResult(nil) = %v, %v", v, err)
	}
}
