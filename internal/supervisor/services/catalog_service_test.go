// Moodshelf - Emotion-Aware Content Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodshelf

package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/moodshelf/internal/metrics"
	"github.com/tomtom215/moodshelf/internal/models"
)

type fakeProbe struct {
	mu      sync.Mutex
	pingErr error
	counts  map[models.Kind]int
	pings   int
}

func (f *fakeProbe) Ping(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pings++
	return f.pingErr
}

func (f *fakeProbe) Count(_ context.Context, kind models.Kind) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.counts[kind], nil
}

func (f *fakeProbe) Backend() string { return "fake" }

func (f *fakeProbe) set(pingErr error, kind models.Kind, n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pingErr = pingErr
	f.counts[kind] = n
}

func (f *fakeProbe) pingCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pings
}

type recordingInvalidator struct {
	mu    sync.Mutex
	kinds []models.Kind
}

func (r *recordingInvalidator) Invalidate(kind models.Kind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.kinds = append(r.kinds, kind)
}

func newFakeProbe() *fakeProbe {
	return &fakeProbe{counts: map[models.Kind]int{
		models.KindBook:     24,
		models.KindMusic:    18,
		models.KindActivity: 18,
	}}
}

func TestCatalogMonitor_Probe(t *testing.T) {
	probe := newFakeProbe()
	inv := &recordingInvalidator{}
	svc := NewCatalogMonitorService(probe, inv, time.Minute, zerolog.Nop())

	svc.Probe(context.Background())

	if !svc.Healthy() {
		t.Error("Healthy() = false after successful ping")
	}
	if got := testutil.ToFloat64(metrics.CatalogHealthy); got != 1 {
		t.Errorf("catalog_healthy = %v, want 1", got)
	}
	if got := testutil.ToFloat64(metrics.CatalogItems.WithLabelValues("book")); got != 24 {
		t.Errorf("catalog_items{book} = %v, want 24", got)
	}
	if len(inv.kinds) != 0 {
		t.Errorf("first probe invalidated %v", inv.kinds)
	}

	t.Run("count change invalidates that kind", func(t *testing.T) {
		probe.set(nil, models.KindMusic, 19)
		svc.Probe(context.Background())

		if len(inv.kinds) != 1 || inv.kinds[0] != models.KindMusic {
			t.Errorf("invalidated %v, want [music]", inv.kinds)
		}
		if got := testutil.ToFloat64(metrics.CatalogItems.WithLabelValues("music")); got != 19 {
			t.Errorf("catalog_items{music} = %v, want 19", got)
		}
	})

	t.Run("unreachable store", func(t *testing.T) {
		probe.set(errors.New("connection refused"), models.KindMusic, 19)
		svc.Probe(context.Background())

		if svc.Healthy() {
			t.Error("Healthy() = true after failed ping")
		}
		if got := testutil.ToFloat64(metrics.CatalogHealthy); got != 0 {
			t.Errorf("catalog_healthy = %v, want 0", got)
		}
	})

	t.Run("recovery", func(t *testing.T) {
		probe.set(nil, models.KindMusic, 19)
		svc.Probe(context.Background())
		if !svc.Healthy() {
			t.Error("Healthy() = false after recovery")
		}
		if len(inv.kinds) != 1 {
			t.Errorf("unchanged counts invalidated again: %v", inv.kinds)
		}
	})
}

func TestCatalogMonitor_NilInvalidator(t *testing.T) {
	probe := newFakeProbe()
	svc := NewCatalogMonitorService(probe, nil, 0, zerolog.Nop())
	if svc.interval != 30*time.Second {
		t.Errorf("interval = %v, want default 30s", svc.interval)
	}

	svc.Probe(context.Background())
	probe.set(nil, models.KindBook, 1)
	svc.Probe(context.Background())
}

func TestCatalogMonitor_Serve(t *testing.T) {
	var _ suture.Service = (*CatalogMonitorService)(nil)

	probe := newFakeProbe()
	svc := NewCatalogMonitorService(probe, nil, 10*time.Millisecond, zerolog.Nop())
	if svc.String() != "catalog-monitor" {
		t.Errorf("String() = %q", svc.String())
	}

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	deadline := time.Now().Add(2 * time.Second)
	for probe.pingCount() < 3 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if probe.pingCount() < 3 {
		t.Errorf("pinged %d times, want at least 3", probe.pingCount())
	}

	cancel()
	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Serve did not return")
	}
}
