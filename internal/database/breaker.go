// Moodshelf - Emotion-Aware Content Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodshelf

package database

import (
	"context"
	"errors"
	"fmt"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/moodshelf/internal/config"
	"github.com/tomtom215/moodshelf/internal/logging"
	"github.com/tomtom215/moodshelf/internal/metrics"
	"github.com/tomtom215/moodshelf/internal/models"
)

// ErrCatalogUnavailable is returned while the breaker rejects catalog reads.
var ErrCatalogUnavailable = errors.New("catalog unavailable")

// BreakerStore wraps a CatalogStore so that reads fail fast while the
// underlying store keeps failing. Writes, Ping and Close pass straight through.
type BreakerStore struct {
	inner CatalogStore
	cb    *gobreaker.CircuitBreaker[any]
	name  string
}

// NewBreakerStore wraps inner with a circuit breaker configured from cfg.
// The breaker opens once at least MinRequests reads have been seen in the
// current interval and the failure ratio reaches FailureRatio.
func NewBreakerStore(inner CatalogStore, cfg *config.BreakerConfig) *BreakerStore {
	name := "catalog-" + inner.Backend()
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)

	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= cfg.FailureRatio
			if shouldTrip {
				logging.Warn().
					Str("breaker", name).
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).
					Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr, toStr := stateToString(from), stateToString(to)
			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
		},

		IsSuccessful: func(err error) bool {
			return err == nil || benignError(err)
		},
	})

	return &BreakerStore{inner: inner, cb: cb, name: name}
}

// State returns the current breaker state as "closed", "half-open" or "open".
func (b *BreakerStore) State() string {
	return stateToString(b.cb.State())
}

// benignError reports errors that say nothing about the store's health:
// caller cancellation and a missing item. They count as breaker successes.
func benignError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, ErrNotFound)
}

func (b *BreakerStore) execute(fn func() (any, error)) (any, error) {
	result, err := b.cb.Execute(fn)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
			return nil, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
		}
		if benignError(err) {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
		} else {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
		}
		return nil, err
	}
	metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
	return result, nil
}

// castResult type-asserts a breaker result.
func castResult[T any](result any, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	if result == nil {
		return zero, nil
	}
	typed, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

// Backend implements CatalogStore.
func (b *BreakerStore) Backend() string { return b.inner.Backend() }

// CandidatesByCluster implements CatalogStore.
func (b *BreakerStore) CandidatesByCluster(ctx context.Context, kind models.Kind, clusterID, limit int) ([]models.CatalogItem, error) {
	return castResult[[]models.CatalogItem](b.execute(func() (any, error) {
		return b.inner.CandidatesByCluster(ctx, kind, clusterID, limit)
	}))
}

// ListByKind implements CatalogStore.
func (b *BreakerStore) ListByKind(ctx context.Context, kind models.Kind) ([]models.CatalogItem, error) {
	return castResult[[]models.CatalogItem](b.execute(func() (any, error) {
		return b.inner.ListByKind(ctx, kind)
	}))
}

// Get implements CatalogStore.
func (b *BreakerStore) Get(ctx context.Context, kind models.Kind, id int64) (models.CatalogItem, error) {
	return castResult[models.CatalogItem](b.execute(func() (any, error) {
		return b.inner.Get(ctx, kind, id)
	}))
}

// Count implements CatalogStore.
func (b *BreakerStore) Count(ctx context.Context, kind models.Kind) (int, error) {
	return castResult[int](b.execute(func() (any, error) {
		return b.inner.Count(ctx, kind)
	}))
}

// Upsert implements CatalogStore.
func (b *BreakerStore) Upsert(ctx context.Context, items []models.CatalogItem) error {
	return b.inner.Upsert(ctx, items)
}

// Ping implements CatalogStore.
func (b *BreakerStore) Ping(ctx context.Context) error {
	return b.inner.Ping(ctx)
}

// Close implements CatalogStore.
func (b *BreakerStore) Close() error {
	return b.inner.Close()
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
