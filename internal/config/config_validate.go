// Stylist - Personalized Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package config

import (
	"fmt"
	"time"
)

// Validate checks that configuration values are usable and returns the first
// violation found.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateDatabase(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validEnvironments defines the allowed server environments
var validEnvironments = map[string]bool{
	"development": true,
	"staging":     true,
	"production":  true,
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %v", c.Server.Timeout)
	}
	if !validEnvironments[c.Server.Environment] {
		return fmt.Errorf("server.environment must be one of: development, staging, production, got %q", c.Server.Environment)
	}
	return nil
}

// validateDatabase validates database and resilience configuration
func (c *Config) validateDatabase() error {
	db := c.Database
	if db.Threads < 0 {
		return fmt.Errorf("database.threads must be >= 0, got %d", db.Threads)
	}
	if db.QueryTimeout <= 0 {
		return fmt.Errorf("database.query_timeout must be positive, got %v", db.QueryTimeout)
	}
	if db.RetryAttempts < 1 {
		return fmt.Errorf("database.retry_attempts must be >= 1, got %d", db.RetryAttempts)
	}
	if db.RetryDelay < 0 {
		return fmt.Errorf("database.retry_delay must be >= 0, got %v", db.RetryDelay)
	}
	if db.RateLimit < 0 {
		return fmt.Errorf("database.rate_limit must be >= 0, got %v", db.RateLimit)
	}
	if db.RateLimit > 0 && db.RateBurst < 1 {
		return fmt.Errorf("database.rate_burst must be >= 1 when rate limiting, got %d", db.RateBurst)
	}
	if db.BreakerTimeout <= 0 {
		return fmt.Errorf("database.breaker_timeout must be positive, got %v", db.BreakerTimeout)
	}
	return nil
}

// validateRecommend validates recommendation engine configuration
//
//nolint:gocyclo // flat list of independent checks
func (c *Config) validateRecommend() error {
	r := c.Recommend
	if r.DefaultLimit < 1 {
		return fmt.Errorf("recommend.default_limit must be >= 1, got %d", r.DefaultLimit)
	}
	if r.MaxLimit < r.DefaultLimit {
		return fmt.Errorf("recommend.max_limit must be >= recommend.default_limit, got %d", r.MaxLimit)
	}
	if r.CandidatePoolSize < 1 {
		return fmt.Errorf("recommend.candidate_pool_size must be >= 1, got %d", r.CandidatePoolSize)
	}
	if r.LikedPageSize < 1 {
		return fmt.Errorf("recommend.liked_page_size must be >= 1, got %d", r.LikedPageSize)
	}
	if r.BatchSize < 1 {
		return fmt.Errorf("recommend.batch_size must be >= 1, got %d", r.BatchSize)
	}
	if r.BatchTimeout <= 0 {
		return fmt.Errorf("recommend.batch_timeout must be positive, got %v", r.BatchTimeout)
	}
	if r.HighScoreThreshold < 0 || r.HighScoreThreshold > 1 {
		return fmt.Errorf("recommend.high_score_threshold must be between 0 and 1, got %v", r.HighScoreThreshold)
	}
	if r.EarlyStopTarget < 1 {
		return fmt.Errorf("recommend.early_stop_target must be >= 1, got %d", r.EarlyStopTarget)
	}
	if r.ProfileCacheTTL <= 0 {
		return fmt.Errorf("recommend.profile_cache_ttl must be positive, got %v", r.ProfileCacheTTL)
	}
	if r.CacheSweepInterval <= 0 {
		return fmt.Errorf("recommend.cache_sweep_interval must be positive, got %v", r.CacheSweepInterval)
	}
	w := r.Weights
	if w.UserPreferences < 0 || w.InteractionHistory < 0 || w.CollectionSimilarity < 0 || w.OutfitPopularity < 0 {
		return fmt.Errorf("recommend.weights must be non-negative, got %+v", w)
	}
	return nil
}

// Rate limit constants
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

// validateSecurity validates rate limiting bounds
func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("security.rate_limit_reqs must be between %d and %d, got %d",
			minRateLimitRequests, maxRateLimitRequests, c.Security.RateLimitReqs)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("security.rate_limit_window must be between %v and %v, got %v",
			minRateLimitWindow, maxRateLimitWindow, c.Security.RateLimitWindow)
	}
	return nil
}

// IsProduction returns true when running in production
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// ShouldWarnAboutCORS returns true if wildcard CORS is configured in production
func (c *Config) ShouldWarnAboutCORS() bool {
	if !c.IsProduction() {
		return false
	}
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("logging.level must be one of: trace, debug, info, warn, error, got %q", c.Logging.Level)
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("logging.format must be one of: json, console, got %q", c.Logging.Format)
	}
	return nil
}
