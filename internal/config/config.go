// Stylist - Personalized Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration loaded from defaults, an
// optional YAML file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all settings
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any mapped setting
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
//	db, err := database.New(&cfg.Database)
//
// Config is immutable after Load() and safe for concurrent reads.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Recommend RecommendConfig `koanf:"recommend"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // "development", "staging" or "production"
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig holds DuckDB settings and the read resilience policy.
//
// Environment Variables:
//   - DUCKDB_PATH: database file path; empty opens an in-memory database
//   - DUCKDB_MAX_MEMORY: DuckDB memory limit (default: 1GB)
//   - DUCKDB_THREADS: thread count (default: 0 = NumCPU)
//   - SEED_DEMO_DATA: populate a demo catalogue on startup (default: false)
//   - DB_QUERY_TIMEOUT: per-query timeout (default: 10s)
//   - DB_RETRY_ATTEMPTS: read attempts including the first (default: 3)
//   - DB_RETRY_DELAY: base delay between attempts (default: 100ms)
//   - DB_RATE_LIMIT: reads per second, 0 disables limiting (default: 500)
//   - DB_RATE_BURST: limiter burst (default: 100)
//   - DB_BREAKER_TIMEOUT: open-state duration before a trial read (default: 30s)
type DatabaseConfig struct {
	Path           string        `koanf:"path"`
	MaxMemory      string        `koanf:"max_memory"`
	Threads        int           `koanf:"threads"`
	SeedDemoData   bool          `koanf:"seed_demo_data"`
	QueryTimeout   time.Duration `koanf:"query_timeout"`
	RetryAttempts  int           `koanf:"retry_attempts"`
	RetryDelay     time.Duration `koanf:"retry_delay"`
	RateLimit      float64       `koanf:"rate_limit"`
	RateBurst      int           `koanf:"rate_burst"`
	BreakerTimeout time.Duration `koanf:"breaker_timeout"`
}

// RecommendConfig holds recommendation engine tuning.
//
// Environment Variables:
//   - RECOMMEND_DEFAULT_LIMIT, RECOMMEND_MAX_LIMIT
//   - RECOMMEND_CANDIDATE_POOL_SIZE, RECOMMEND_LIKED_PAGE_SIZE
//   - RECOMMEND_BATCH_SIZE, RECOMMEND_BATCH_TIMEOUT
//   - RECOMMEND_HIGH_SCORE_THRESHOLD, RECOMMEND_EARLY_STOP_TARGET
//   - RECOMMEND_PROFILE_CACHE_TTL, RECOMMEND_CACHE_SWEEP_INTERVAL
//   - RECOMMEND_QUICK_CHECK
//   - RECOMMEND_WEIGHT_PREFERENCES, RECOMMEND_WEIGHT_INTERACTIONS,
//     RECOMMEND_WEIGHT_COLLECTIONS, RECOMMEND_WEIGHT_POPULARITY
type RecommendConfig struct {
	DefaultLimit       int           `koanf:"default_limit"`
	MaxLimit           int           `koanf:"max_limit"`
	CandidatePoolSize  int           `koanf:"candidate_pool_size"`
	LikedPageSize      int           `koanf:"liked_page_size"`
	BatchSize          int           `koanf:"batch_size"`
	BatchTimeout       time.Duration `koanf:"batch_timeout"`
	HighScoreThreshold float64       `koanf:"high_score_threshold"`
	EarlyStopTarget    int           `koanf:"early_stop_target"`
	ProfileCacheTTL    time.Duration `koanf:"profile_cache_ttl"`
	CacheSweepInterval time.Duration `koanf:"cache_sweep_interval"`
	QuickCheckEnabled  bool          `koanf:"quick_check_enabled"`

	Weights WeightsConfig `koanf:"weights"`
}

// WeightsConfig holds the scorer's factor weights.
type WeightsConfig struct {
	UserPreferences      float64 `koanf:"user_preferences"`
	InteractionHistory   float64 `koanf:"interaction_history"`
	CollectionSimilarity float64 `koanf:"collection_similarity"`
	OutfitPopularity     float64 `koanf:"outfit_popularity"`
}

// SecurityConfig holds HTTP edge protection settings
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings for zerolog.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// Load reads configuration with LoadWithKoanf.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
