// Moodshelf - Emotion-Aware Content Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodshelf

package recommend

import (
	"fmt"
)

// Config contains all tunables of the recommendation core.
type Config struct {
	// Pool contains candidate pool sizing.
	Pool PoolConfig `json:"pool"`

	// TopWindow is how many of the best matches the content ranker samples from.
	TopWindow int `json:"top_window"`

	// Seed seeds the per-request random sources.
	// If zero, the engine seeds from the clock.
	Seed int64 `json:"seed"`
}

// PoolConfig controls pool expansion and the hybrid threshold.
type PoolConfig struct {
	// MinSize is the pool size below which neighboring clusters are pulled in.
	MinSize int `json:"min_size"`

	// SoftCap stops expansion once the pool reaches this size.
	// A single cluster may push the pool past it.
	SoftCap int `json:"soft_cap"`

	// MinHybrid is the smallest pool the hybrid path runs on.
	// Smaller pools are returned unchanged.
	MinHybrid int `json:"min_hybrid"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() *Config {
	return &Config{
		Pool: PoolConfig{
			MinSize:   5,
			SoftCap:   10,
			MinHybrid: 3,
		},
		TopWindow: DefaultTopWindow,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Pool.MinSize < 0 {
		return fmt.Errorf("pool.min_size must be non-negative, got %d", c.Pool.MinSize)
	}
	if c.Pool.SoftCap < c.Pool.MinSize {
		return fmt.Errorf("pool.soft_cap must be >= pool.min_size, got %d < %d", c.Pool.SoftCap, c.Pool.MinSize)
	}
	if c.Pool.MinHybrid < 1 {
		return fmt.Errorf("pool.min_hybrid must be positive, got %d", c.Pool.MinHybrid)
	}
	if c.TopWindow < 1 {
		return fmt.Errorf("top_window must be positive, got %d", c.TopWindow)
	}
	return nil
}
