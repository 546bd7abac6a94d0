// Stylist - Personalized Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package recommend

import (
	"fmt"
	"time"

	"github.com/tomtom215/stylist/internal/recommend/scoring"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Scoring contains factor weights and the quick-check toggle.
	Scoring scoring.Config `json:"scoring"`

	// Limits contains request and pool sizes.
	Limits LimitsConfig `json:"limits"`

	// Batching controls concurrent scoring.
	Batching BatchingConfig `json:"batching"`

	// Cache contains profile cache parameters.
	Cache CacheConfig `json:"cache"`
}

// LimitsConfig contains operational limits.
type LimitsConfig struct {
	// DefaultLimit is used when a request does not set Limit.
	// Default: 20.
	DefaultLimit int `json:"default_limit"`

	// MaxLimit is the largest accepted Limit.
	// Default: 50.
	MaxLimit int `json:"max_limit"`

	// CandidatePoolSize is how many outfits are fetched before filtering.
	// Default: 150.
	CandidatePoolSize int `json:"candidate_pool_size"`

	// LikedPageSize is how many liked outfits and products are read per profile.
	// Default: 100.
	LikedPageSize int `json:"liked_page_size"`
}

// BatchingConfig controls batch scoring and early termination.
type BatchingConfig struct {
	// Size is the number of outfits scored concurrently.
	// Default: 8.
	Size int `json:"size"`

	// Timeout bounds a single batch. A batch that exceeds it is dropped.
	// Default: 30s.
	Timeout time.Duration `json:"timeout"`

	// HighScoreThreshold is the score at which an outfit counts toward
	// early termination.
	// Default: 0.7.
	HighScoreThreshold float64 `json:"high_score_threshold"`

	// EarlyStopTarget is the number of high-scoring outfits after which no
	// further batches are scored. The effective target is
	// min(EarlyStopTarget, candidates).
	// Default: 50.
	EarlyStopTarget int `json:"early_stop_target"`
}

// CacheConfig contains profile cache parameters.
type CacheConfig struct {
	// TTL is how long a gathered profile is reused.
	// Default: 5m.
	TTL time.Duration `json:"ttl"`
}

// DefaultConfig returns a Config with production defaults.
func DefaultConfig() *Config {
	return &Config{
		Scoring: scoring.DefaultConfig(),
		Limits: LimitsConfig{
			DefaultLimit:      20,
			MaxLimit:          50,
			CandidatePoolSize: 150,
			LikedPageSize:     100,
		},
		Batching: BatchingConfig{
			Size:               8,
			Timeout:            30 * time.Second,
			HighScoreThreshold: 0.7,
			EarlyStopTarget:    50,
		},
		Cache: CacheConfig{
			TTL: 300 * time.Second,
		},
	}
}

// Validate checks the configuration for invalid values.
//
//nolint:gocyclo // flat list of independent checks
func (c *Config) Validate() error {
	if err := c.Scoring.Validate(); err != nil {
		return fmt.Errorf("scoring: %w", err)
	}
	if c.Limits.DefaultLimit <= 0 {
		return fmt.Errorf("limits.default_limit must be positive, got %d", c.Limits.DefaultLimit)
	}
	if c.Limits.MaxLimit < c.Limits.DefaultLimit {
		return fmt.Errorf("limits.max_limit must be >= limits.default_limit, got %d < %d", c.Limits.MaxLimit, c.Limits.DefaultLimit)
	}
	if c.Limits.CandidatePoolSize <= 0 {
		return fmt.Errorf("limits.candidate_pool_size must be positive, got %d", c.Limits.CandidatePoolSize)
	}
	if c.Limits.LikedPageSize <= 0 {
		return fmt.Errorf("limits.liked_page_size must be positive, got %d", c.Limits.LikedPageSize)
	}
	if c.Batching.Size <= 0 {
		return fmt.Errorf("batching.size must be positive, got %d", c.Batching.Size)
	}
	if c.Batching.Timeout <= 0 {
		return fmt.Errorf("batching.timeout must be positive, got %v", c.Batching.Timeout)
	}
	if c.Batching.HighScoreThreshold < 0 || c.Batching.HighScoreThreshold > 1 {
		return fmt.Errorf("batching.high_score_threshold must be in [0, 1], got %f", c.Batching.HighScoreThreshold)
	}
	if c.Batching.EarlyStopTarget <= 0 {
		return fmt.Errorf("batching.early_stop_target must be positive, got %d", c.Batching.EarlyStopTarget)
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive, got %v", c.Cache.TTL)
	}
	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	// all nested structs hold value types only
	return &Config{
		Scoring:  c.Scoring,
		Limits:   c.Limits,
		Batching: c.Batching,
		Cache:    c.Cache,
	}
}
