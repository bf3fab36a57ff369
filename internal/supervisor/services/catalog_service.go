// Moodshelf - Emotion-Aware Content Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodshelf

package services

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/moodshelf/internal/metrics"
	"github.com/tomtom215/moodshelf/internal/models"
)

// defaultProbeTimeout bounds one catalog probe.
const defaultProbeTimeout = 5 * time.Second

// CatalogProbe is the part of the catalog store the monitor reads.
type CatalogProbe interface {
	Ping(ctx context.Context) error
	Count(ctx context.Context, kind models.Kind) (int, error)
	Backend() string
}

// PoolInvalidator drops cached candidate pools for a kind.
type PoolInvalidator interface {
	Invalidate(kind models.Kind)
}

// CatalogMonitorService probes the catalog store on an interval.
//
// Each probe pings the store, publishes the catalog health and per-kind item
// gauges, and invalidates the cached pools of any kind whose item count changed
// since the previous probe, so edits to the catalog reach recommendations
// without waiting out the pool TTL.
type CatalogMonitorService struct {
	probe       CatalogProbe
	invalidator PoolInvalidator
	interval    time.Duration
	logger      zerolog.Logger
	name        string

	counts  map[models.Kind]int
	healthy atomic.Bool
}

// NewCatalogMonitorService creates a monitor. invalidator may be nil.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCatalogMonitorService(probe CatalogProbe, invalidator PoolInvalidator, interval time.Duration, logger zerolog.Logger) *CatalogMonitorService {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	s := &CatalogMonitorService{
		probe:       probe,
		invalidator: invalidator,
		interval:    interval,
		logger:      logger.With().Str("service", "catalog-monitor").Logger(),
		name:        "catalog-monitor",
		counts:      make(map[models.Kind]int, len(models.Kinds)),
	}
	s.healthy.Store(true)
	return s
}

// Serve implements suture.Service. It probes once immediately, then every interval.
func (s *CatalogMonitorService) Serve(ctx context.Context) error {
	s.logger.Info().
		Str("backend", s.probe.Backend()).
		Dur("interval", s.interval).
		Msg("catalog monitor starting")

	s.Probe(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("catalog monitor shutting down")
			return ctx.Err()
		case <-ticker.C:
			s.Probe(ctx)
		}
	}
}

// Probe runs one health and count check. It must not run concurrently with Serve.
func (s *CatalogMonitorService) Probe(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, defaultProbeTimeout)
	defer cancel()

	if err := s.probe.Ping(probeCtx); err != nil {
		metrics.SetCatalogHealth(false)
		if s.healthy.Swap(false) {
			s.logger.Warn().Err(err).Msg("catalog store unreachable")
		}
		return
	}

	metrics.SetCatalogHealth(true)
	if !s.healthy.Swap(true) {
		s.logger.Info().Msg("catalog store reachable again")
	}

	for _, kind := range models.Kinds {
		n, err := s.probe.Count(probeCtx, kind)
		if err != nil {
			s.logger.Warn().Err(err).Str("kind", kind.String()).Msg("catalog count failed")
			continue
		}
		metrics.CatalogItems.WithLabelValues(kind.String()).Set(float64(n))

		prev, seen := s.counts[kind]
		s.counts[kind] = n
		if seen && prev != n && s.invalidator != nil {
			s.invalidator.Invalidate(kind)
			s.logger.Info().
				Str("kind", kind.String()).
				Int("previous", prev).
				Int("current", n).
				Msg("catalog changed, pool cache invalidated")
		}
	}
}

// Healthy reports the result of the last ping.
func (s *CatalogMonitorService) Healthy() bool {
	return s.healthy.Load()
}

// String names the service in supervisor events.
func (s *CatalogMonitorService) String() string {
	return s.name
}
