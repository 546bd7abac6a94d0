// Stylist - Personalized Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/stylist/internal/metrics"
	"github.com/tomtom215/stylist/internal/models"
	"github.com/tomtom215/stylist/internal/recommend/patterns"
	"github.com/tomtom215/stylist/internal/recommend/scoring"
)

var (
	// ErrNilUser is returned when a request carries no user.
	ErrNilUser = errors.New("recommend: user is required")

	// ErrNoDataProvider is returned when the engine has no data source.
	ErrNoDataProvider = errors.New("recommend: data provider not set")
)

// Engine orchestrates profile assembly, candidate selection and batch
// scoring. It is safe for concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger

	scorer       Scorer
	cache        *ProfileCache
	dataProvider DataProvider

	requestCount atomic.Int64
	errorCount   atomic.Int64
	earlyStops   atomic.Int64
}

// Stats is a snapshot of engine counters.
type Stats struct {
	RequestCount      int64 `json:"request_count"`
	ErrorCount        int64 `json:"error_count"`
	EarlyTerminations int64 `json:"early_terminations"`
	CachedProfiles    int   `json:"cached_profiles"`
}

// NewEngine creates a new recommendation engine with the production scorer
// and a wall-clock profile cache.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	scorer, err := scoring.NewScorer(cfg.Scoring)
	if err != nil {
		return nil, err
	}

	return &Engine{
		config: cfg,
		logger: logger.With().Str("component", "recommend").Logger(),
		scorer: scorer,
		cache:  NewProfileCache(cfg.Cache.TTL, time.Now),
	}, nil
}

// SetDataProvider sets the data source for profiles and candidates.
func (e *Engine) SetDataProvider(dp DataProvider) {
	e.dataProvider = dp
}

// SetScorer replaces the outfit scorer.
func (e *Engine) SetScorer(s Scorer) {
	e.scorer = s
}

// SetProfileCache replaces the profile cache.
func (e *Engine) SetProfileCache(c *ProfileCache) {
	e.cache = c
}

// ProfileCache returns the engine's profile cache.
func (e *Engine) ProfileCache() *ProfileCache {
	return e.cache
}

// GetConfig returns a copy of the current configuration.
func (e *Engine) GetConfig() *Config {
	return e.config.Clone()
}

// Stats returns a snapshot of engine counters.
func (e *Engine) Stats() Stats {
	return Stats{
		RequestCount:      e.requestCount.Load(),
		ErrorCount:        e.errorCount.Load(),
		EarlyTerminations: e.earlyStops.Load(),
		CachedProfiles:    e.cache.Len(),
	}
}

// Recommend generates ranked outfit recommendations for user.
//
// Data-layer failures never surface as errors: they degrade the profile or
// yield an empty response with Metadata.Degraded set. Only a nil user or a
// missing data provider return an error.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, user *models.User, req Request) (*Response, error) {
	if user == nil {
		return nil, ErrNilUser
	}
	if e.dataProvider == nil {
		return nil, ErrNoDataProvider
	}

	start := time.Now()
	e.requestCount.Add(1)

	req = e.prepareRequest(req)
	logger := e.createRequestLogger(req, user.ID)
	logger.Debug().
		Int("limit", req.Limit).
		Bool("exclude_liked", req.ExcludeLiked).
		Msg("processing recommendation request")

	profile, cacheHit := e.profile(ctx, user, logger)

	candidates, err := e.selectCandidates(ctx, user, req)
	if err != nil {
		e.errorCount.Add(1)
		logger.Error().Err(err).Msg("recommendation failed")
		resp := e.emptyResponse(req, user.ID, start)
		resp.Metadata.Degraded = true
		resp.Metadata.ProfileCacheHit = cacheHit
		metrics.RecordRecommendation("failed", 0, time.Since(start))
		return resp, nil
	}

	if len(candidates) == 0 {
		logger.Warn().Msg("no candidate outfits found")
		resp := e.emptyResponse(req, user.ID, start)
		resp.Metadata.ProfileCacheHit = cacheHit
		metrics.RecordRecommendation("empty", 0, time.Since(start))
		return resp, nil
	}

	scored, run := e.scoreCandidates(ctx, user, profile, candidates, logger)

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	total := len(scored)
	if len(scored) > req.Limit {
		scored = scored[:req.Limit]
	}

	strength := ProfileStrength(profile)
	resp := &Response{
		Recommendations:  scored,
		TotalCount:       total,
		ProfileStrength:  strength,
		AlgorithmVersion: AlgorithmVersion,
		Metadata: ResponseMetadata{
			RequestID:        req.RequestID,
			UserID:           user.ID,
			Candidates:       len(candidates),
			BatchesProcessed: run.processed,
			BatchesDropped:   run.dropped,
			EarlyTerminated:  run.earlyStop,
			ScoringErrors:    run.errors,
			ProfileCacheHit:  cacheHit,
			LatencyMS:        time.Since(start).Milliseconds(),
			Timestamp:        time.Now(),
		},
	}

	metrics.RecordRecommendation("ok", len(candidates), time.Since(start))
	logger.Info().
		Int("candidates", len(candidates)).
		Int("returned", len(scored)).
		Int("total", total).
		Float64("profile_strength", strength).
		Int64("latency_ms", resp.Metadata.LatencyMS).
		Msg("recommendation complete")

	return resp, nil
}

// StrengthReport builds the profile strength report for user, reusing the
// profile cache.
func (e *Engine) StrengthReport(ctx context.Context, user *models.User) (*StrengthReport, error) {
	if user == nil {
		return nil, ErrNilUser
	}
	if e.dataProvider == nil {
		return nil, ErrNoDataProvider
	}

	logger := e.logger.With().Str("user_id", user.ID).Logger()
	profile, _ := e.profile(ctx, user, logger)
	report := BuildStrengthReport(profile)

	logger.Debug().
		Float64("profile_strength", report.ProfileStrength).
		Str("level", report.Level).
		Msg("profile strength analyzed")

	return report, nil
}

// prepareRequest applies defaults and generates request ID if needed.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) prepareRequest(req Request) Request {
	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}
	if req.Limit <= 0 {
		req.Limit = e.config.Limits.DefaultLimit
	}
	if req.Limit > e.config.Limits.MaxLimit {
		req.Limit = e.config.Limits.MaxLimit
	}
	return req
}

// createRequestLogger creates a logger with request context.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) createRequestLogger(req Request, userID string) zerolog.Logger {
	return e.logger.With().
		Str("request_id", req.RequestID).
		Str("user_id", userID).
		Logger()
}

// profile returns the user's profile from cache or a fresh load. A failed
// load still yields a usable, uncached profile.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func (e *Engine) profile(ctx context.Context, user *models.User, logger zerolog.Logger) (*models.ProfileData, bool) {
	load := func(ctx context.Context) (*models.ProfileData, error) {
		return e.loadProfile(ctx, user, logger)
	}

	p, hit, err := e.cache.GetOrLoad(ctx, user.ID, load)
	if err != nil {
		logger.Warn().Err(err).Msg("profile load incomplete, not caching")
	}
	if p == nil {
		p = &models.ProfileData{Preferences: user.Preferences(), Patterns: models.NewInteractionPatterns()}
	}
	return p, hit
}

// loadProfile reads liked outfits and liked products concurrently and derives
// interaction patterns. Sub-fetch failures are logged and treated as empty.
// The error is non-nil when either fetch failed or ctx ended; the partial
// profile is still returned but not cached.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func (e *Engine) loadProfile(ctx context.Context, user *models.User, logger zerolog.Logger) (*models.ProfileData, error) {
	var (
		wg          sync.WaitGroup
		outfits     []models.Outfit
		products    []models.Product
		outfitsErr  error
		productsErr error
	)

	pageSize := e.config.Limits.LikedPageSize

	wg.Add(2)
	go func() {
		defer wg.Done()
		outfits, outfitsErr = e.dataProvider.LikedOutfits(ctx, user.ID, 1, pageSize)
	}()
	go func() {
		defer wg.Done()
		products, productsErr = e.dataProvider.LikedProducts(ctx, user.ID, 1, pageSize)
	}()
	collections := e.collectionItems(ctx, user.ID)
	wg.Wait()

	if outfitsErr != nil {
		logger.Warn().Err(outfitsErr).Msg("failed to fetch liked outfits")
		outfits = nil
	}
	if productsErr != nil {
		logger.Warn().Err(productsErr).Msg("failed to fetch liked products")
		products = nil
	}

	profile := &models.ProfileData{
		Preferences:     user.Preferences(),
		LikedOutfits:    outfits,
		LikedProducts:   products,
		CollectionItems: collections,
		Patterns:        patterns.Analyze(outfits, products),
	}

	if err := errors.Join(outfitsErr, productsErr, ctx.Err()); err != nil {
		return profile, fmt.Errorf("load profile for %s: %w", user.ID, err)
	}
	return profile, nil
}

// collectionItems is a stub until the collections store is integrated.
func (e *Engine) collectionItems(_ context.Context, _ string) []models.Product {
	return []models.Product{}
}

// emptyResponse returns an empty response with zero profile strength.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) emptyResponse(req Request, userID string, start time.Time) *Response {
	return &Response{
		Recommendations:  []Recommendation{},
		TotalCount:       0,
		ProfileStrength:  0,
		AlgorithmVersion: AlgorithmVersion,
		Metadata: ResponseMetadata{
			RequestID: req.RequestID,
			UserID:    userID,
			LatencyMS: time.Since(start).Milliseconds(),
			Timestamp: time.Now(),
		},
	}
}
