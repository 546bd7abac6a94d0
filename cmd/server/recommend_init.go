// Stylist - Personalized Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package main

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/stylist/internal/config"
	"github.com/tomtom215/stylist/internal/recommend"
	"github.com/tomtom215/stylist/internal/recommend/scoring"
	"github.com/tomtom215/stylist/internal/supervisor"
	"github.com/tomtom215/stylist/internal/supervisor/services"
)

// initRecommend builds the engine on top of provider and registers the
// profile cache janitor with the maintenance layer.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initRecommend(cfg *config.Config, provider recommend.DataProvider, tree *supervisor.SupervisorTree, logger zerolog.Logger) (*recommend.Engine, error) {
	engineCfg := buildEngineConfig(&cfg.Recommend)

	engine, err := recommend.NewEngine(engineCfg, logger)
	if err != nil {
		return nil, fmt.Errorf("create recommendation engine: %w", err)
	}
	engine.SetDataProvider(provider)

	tree.AddMaintenanceService(services.NewCacheJanitor(engine.ProfileCache(), cfg.Recommend.CacheSweepInterval, logger))

	logger.Info().
		Int("default_limit", engineCfg.Limits.DefaultLimit).
		Int("candidate_pool_size", engineCfg.Limits.CandidatePoolSize).
		Int("batch_size", engineCfg.Batching.Size).
		Dur("profile_cache_ttl", engineCfg.Cache.TTL).
		Bool("quick_check", engineCfg.Scoring.QuickCheck).
		Msg("recommendation engine initialized")

	return engine, nil
}

// buildEngineConfig maps the recommend section of the application config
// onto the engine's configuration.
func buildEngineConfig(rc *config.RecommendConfig) *recommend.Config {
	return &recommend.Config{
		Scoring: scoring.Config{
			Weights: scoring.Weights{
				UserPreferences:      rc.Weights.UserPreferences,
				InteractionHistory:   rc.Weights.InteractionHistory,
				CollectionSimilarity: rc.Weights.CollectionSimilarity,
				OutfitPopularity:     rc.Weights.OutfitPopularity,
			},
			QuickCheck: rc.QuickCheckEnabled,
		},
		Limits: recommend.LimitsConfig{
			DefaultLimit:      rc.DefaultLimit,
			MaxLimit:          rc.MaxLimit,
			CandidatePoolSize: rc.CandidatePoolSize,
			LikedPageSize:     rc.LikedPageSize,
		},
		Batching: recommend.BatchingConfig{
			Size:               rc.BatchSize,
			Timeout:            rc.BatchTimeout,
			HighScoreThreshold: rc.HighScoreThreshold,
			EarlyStopTarget:    rc.EarlyStopTarget,
		},
		Cache: recommend.CacheConfig{
			TTL: rc.ProfileCacheTTL,
		},
	}
}
