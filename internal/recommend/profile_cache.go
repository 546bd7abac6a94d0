// Stylist - Personalized Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package recommend

import (
	"context"
	"sync"
	"time"

	"github.com/tomtom215/stylist/internal/metrics"
	"github.com/tomtom215/stylist/internal/models"
)

// ProfileLoader gathers fresh profile data for a user.
type ProfileLoader func(ctx context.Context) (*models.ProfileData, error)

// profileEntry holds a cached profile.
type profileEntry struct {
	profile  *models.ProfileData
	storedAt time.Time
}

// ProfileCache is a time-boxed read-through cache of gathered profiles keyed
// by user ID. Entries are never invalidated on data changes, only by expiry,
// so a user's new likes are invisible for up to one TTL.
//
// Loads run outside the lock. Two concurrent misses for the same user both
// load and both store; the last writer wins.
type ProfileCache struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.Mutex
	entries map[string]profileEntry
}

// NewProfileCache creates a cache. now defaults to time.Now when nil.
func NewProfileCache(ttl time.Duration, now func() time.Time) *ProfileCache {
	if now == nil {
		now = time.Now
	}
	return &ProfileCache{
		ttl:     ttl,
		now:     now,
		entries: make(map[string]profileEntry),
	}
}

// GetOrLoad returns the cached profile for userID when it is younger than the
// TTL. Otherwise it calls load, stores the result and evicts every other
// expired entry. hit reports whether the cached value was used. When load
// fails its profile (possibly partial) is returned with the error and is not
// cached.
func (c *ProfileCache) GetOrLoad(ctx context.Context, userID string, load ProfileLoader) (profile *models.ProfileData, hit bool, err error) {
	if p := c.get(userID); p != nil {
		metrics.RecordProfileCacheLookup(true)
		return p, true, nil
	}
	metrics.RecordProfileCacheLookup(false)

	p, err := load(ctx)
	if err != nil {
		return p, false, err
	}

	c.store(userID, p)
	return p, false, nil
}

// get returns a live entry or nil.
func (c *ProfileCache) get(userID string) *models.ProfileData {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[userID]
	if !ok || !c.liveLocked(entry) {
		return nil
	}
	return entry.profile
}

// store saves a profile and sweeps expired entries.
func (c *ProfileCache) store(userID string, p *models.ProfileData) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[userID] = profileEntry{profile: p, storedAt: c.now()}
	evicted := c.evictExpiredLocked()
	metrics.RecordProfileCacheEvictions(evicted, len(c.entries))
}

// EvictExpired removes all expired entries and returns how many were removed.
func (c *ProfileCache) EvictExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	evicted := c.evictExpiredLocked()
	metrics.RecordProfileCacheEvictions(evicted, len(c.entries))
	return evicted
}

// Len returns the number of entries, including expired ones not yet swept.
func (c *ProfileCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// TTL returns the configured time-to-live.
func (c *ProfileCache) TTL() time.Duration {
	return c.ttl
}

// liveLocked reports whether entry is within TTL.
// Must be called with mu held.
func (c *ProfileCache) liveLocked(entry profileEntry) bool {
	return c.now().Sub(entry.storedAt) < c.ttl
}

// evictExpiredLocked removes expired entries.
// Must be called with mu held.
func (c *ProfileCache) evictExpiredLocked() int {
	evicted := 0
	for key, entry := range c.entries {
		if !c.liveLocked(entry) {
			delete(c.entries, key)
			evicted++
		}
	}
	return evicted
}
