// Stylist - Personalized Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/stylist/config.yaml",
	"/etc/stylist/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        8080,
			Host:        "0.0.0.0",
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		Database: DatabaseConfig{
			Path:           "/data/stylist.duckdb",
			MaxMemory:      "1GB",
			Threads:        0, // 0 = use runtime.NumCPU()
			SeedDemoData:   false,
			QueryTimeout:   10 * time.Second,
			RetryAttempts:  3,
			RetryDelay:     100 * time.Millisecond,
			RateLimit:      500,
			RateBurst:      100,
			BreakerTimeout: 30 * time.Second,
		},
		Recommend: RecommendConfig{
			DefaultLimit:       20,
			MaxLimit:           50,
			CandidatePoolSize:  150,
			LikedPageSize:      100,
			BatchSize:          8,
			BatchTimeout:       30 * time.Second,
			HighScoreThreshold: 0.7,
			EarlyStopTarget:    50,
			ProfileCacheTTL:    5 * time.Minute,
			CacheSweepInterval: time.Minute,
			QuickCheckEnabled:  true,
			Weights: WeightsConfig{
				UserPreferences:      0.25,
				InteractionHistory:   0.35,
				CollectionSimilarity: 0.15,
				OutfitPopularity:     0.1,
			},
		},
		Security: SecurityConfig{
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any mapped setting
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars arrive as strings; YAML values are already slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps environment variable names (lower-cased) to koanf paths.
var envMappings = map[string]string{
	// Server mappings
	"http_port":    "server.port",
	"http_host":    "server.host",
	"http_timeout": "server.timeout",
	"environment":  "server.environment",

	// Database mappings
	"duckdb_path":        "database.path",
	"duckdb_max_memory":  "database.max_memory",
	"duckdb_threads":     "database.threads",
	"seed_demo_data":     "database.seed_demo_data",
	"db_query_timeout":   "database.query_timeout",
	"db_retry_attempts":  "database.retry_attempts",
	"db_retry_delay":     "database.retry_delay",
	"db_rate_limit":      "database.rate_limit",
	"db_rate_burst":      "database.rate_burst",
	"db_breaker_timeout": "database.breaker_timeout",

	// Recommendation engine mappings
	"recommend_default_limit":        "recommend.default_limit",
	"recommend_max_limit":            "recommend.max_limit",
	"recommend_candidate_pool_size":  "recommend.candidate_pool_size",
	"recommend_liked_page_size":      "recommend.liked_page_size",
	"recommend_batch_size":           "recommend.batch_size",
	"recommend_batch_timeout":        "recommend.batch_timeout",
	"recommend_high_score_threshold": "recommend.high_score_threshold",
	"recommend_early_stop_target":    "recommend.early_stop_target",
	"recommend_profile_cache_ttl":    "recommend.profile_cache_ttl",
	"recommend_cache_sweep_interval": "recommend.cache_sweep_interval",
	"recommend_quick_check":          "recommend.quick_check_enabled",
	"recommend_weight_preferences":   "recommend.weights.user_preferences",
	"recommend_weight_interactions":  "recommend.weights.interaction_history",
	"recommend_weight_collections":   "recommend.weights.collection_similarity",
	"recommend_weight_popularity":    "recommend.weights.outfit_popularity",

	// Security mappings
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"cors_origins":        "security.cors_origins",

	// Logging mappings
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf config paths.
// Unmapped keys return an empty string and are skipped, so unrelated
// environment variables never pollute the config.
//
// Examples:
//   - DUCKDB_PATH -> database.path
//   - HTTP_PORT -> server.port
//   - RECOMMEND_BATCH_SIZE -> recommend.batch_size
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
