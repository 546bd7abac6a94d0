// Stylist - Personalized Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// ExpiringCache is a cache whose stale entries can be swept.
type ExpiringCache interface {
	// EvictExpired removes stale entries and returns how many were removed.
	EvictExpired() int
	Len() int
}

// CacheJanitor periodically sweeps expired user profiles so that users who
// stop requesting recommendations do not pin memory until the next miss.
type CacheJanitor struct {
	cache    ExpiringCache
	interval time.Duration
	logger   zerolog.Logger
	name     string
}

// NewCacheJanitor creates a janitor. A non-positive interval becomes one minute.
//
//nolint:gocritic // zerolog.Logger is passed by value throughout
func NewCacheJanitor(cache ExpiringCache, interval time.Duration, logger zerolog.Logger) *CacheJanitor {
	if interval <= 0 {
		interval = time.Minute
	}
	return &CacheJanitor{
		cache:    cache,
		interval: interval,
		logger:   logger.With().Str("service", "profile-cache-janitor").Logger(),
		name:     "profile-cache-janitor",
	}
}

// Serve implements suture.Service. It sweeps once per interval until ctx is
// canceled.
func (j *CacheJanitor) Serve(ctx context.Context) error {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.logger.Debug().Dur("interval", j.interval).Msg("profile cache janitor running")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			j.sweep()
		}
	}
}

func (j *CacheJanitor) sweep() {
	evicted := j.cache.EvictExpired()
	if evicted == 0 {
		return
	}
	j.logger.Debug().
		Int("evicted", evicted).
		Int("remaining", j.cache.Len()).
		Msg("evicted expired profiles")
}

// String implements fmt.Stringer for suture's event log.
func (j *CacheJanitor) String() string {
	return j.name
}
