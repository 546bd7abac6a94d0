// Stylist - Personalized Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/codeGROOVE-dev/retry"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/stylist/internal/config"
	"github.com/tomtom215/stylist/internal/metrics"
	"github.com/tomtom215/stylist/internal/models"
)

// Source is the read surface the engine and the HTTP layer use.
// *DB and *Resilient both implement it.
type Source interface {
	GetUser(ctx context.Context, id string) (*models.User, error)
	LikedOutfits(ctx context.Context, userID string, page, pageSize int) ([]models.Outfit, error)
	LikedProducts(ctx context.Context, userID string, page, pageSize int) ([]models.Product, error)
	Outfits(ctx context.Context, q models.OutfitQuery) ([]models.Outfit, error)
}

// ResilienceConfig tunes the Resilient decorator.
type ResilienceConfig struct {
	Name string

	// RateLimit is reads per second; zero disables limiting.
	RateLimit float64
	RateBurst int

	Attempts  uint
	Delay     time.Duration
	MaxJitter time.Duration

	// BreakerTimeout is how long the breaker stays open before probing.
	BreakerTimeout time.Duration

	// MinRequests and FailureRatio decide when the breaker trips.
	MinRequests  uint32
	FailureRatio float64
}

// ResilienceConfigFrom derives decorator settings from database config.
func ResilienceConfigFrom(cfg *config.DatabaseConfig) ResilienceConfig {
	attempts := cfg.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}
	return ResilienceConfig{
		Name:           "duckdb",
		RateLimit:      cfg.RateLimit,
		RateBurst:      cfg.RateBurst,
		Attempts:       uint(attempts),
		Delay:          cfg.RetryDelay,
		MaxJitter:      cfg.RetryDelay,
		BreakerTimeout: cfg.BreakerTimeout,
		MinRequests:    10,
		FailureRatio:   0.6,
	}
}

// Resilient decorates a Source. Each read waits on a token bucket, runs
// through a circuit breaker and is retried while the failure looks
// transient.
type Resilient struct {
	source  Source
	limiter *rate.Limiter
	cb      *gobreaker.CircuitBreaker[any]
	cfg     ResilienceConfig
	logger  zerolog.Logger
}

// NewResilient wraps source.
func NewResilient(source Source, cfg ResilienceConfig, logger zerolog.Logger) *Resilient {
	if cfg.Name == "" {
		cfg.Name = "duckdb"
	}
	if cfg.Attempts == 0 {
		cfg.Attempts = 1
	}
	if cfg.MinRequests == 0 {
		cfg.MinRequests = 10
	}
	if cfg.FailureRatio <= 0 {
		cfg.FailureRatio = 0.6
	}

	r := &Resilient{
		source: source,
		cfg:    cfg,
		logger: logger.With().Str("component", "resilient_source").Str("breaker", cfg.Name).Logger(),
	}

	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst < 1 {
			burst = 1
		}
		r.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	metrics.CircuitBreakerState.WithLabelValues(cfg.Name).Set(0)

	r.cb = gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < r.cfg.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= r.cfg.FailureRatio
			if shouldTrip {
				r.logger.Warn().
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).
					Msg("Opening circuit")
			}
			return shouldTrip
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr, toStr := stateToString(from), stateToString(to)
			r.logger.Info().Str("from", fromStr).Str("to", toStr).Msg("Circuit state transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
		},
		// Caller cancellation and unknown users say nothing about store health.
		IsSuccessful: func(err error) bool {
			return err == nil ||
				errors.Is(err, ErrUserNotFound) ||
				errors.Is(err, context.Canceled)
		},
	})

	return r
}

// State reports the breaker state.
func (r *Resilient) State() gobreaker.State {
	return r.cb.State()
}

// GetUser implements Source.
func (r *Resilient) GetUser(ctx context.Context, id string) (*models.User, error) {
	return call(ctx, r, "get_user", func(ctx context.Context) (*models.User, error) {
		return r.source.GetUser(ctx, id)
	})
}

// LikedOutfits implements Source.
func (r *Resilient) LikedOutfits(ctx context.Context, userID string, page, pageSize int) ([]models.Outfit, error) {
	return call(ctx, r, "liked_outfits", func(ctx context.Context) ([]models.Outfit, error) {
		return r.source.LikedOutfits(ctx, userID, page, pageSize)
	})
}

// LikedProducts implements Source.
func (r *Resilient) LikedProducts(ctx context.Context, userID string, page, pageSize int) ([]models.Product, error) {
	return call(ctx, r, "liked_products", func(ctx context.Context) ([]models.Product, error) {
		return r.source.LikedProducts(ctx, userID, page, pageSize)
	})
}

// Outfits implements Source.
func (r *Resilient) Outfits(ctx context.Context, q models.OutfitQuery) ([]models.Outfit, error) {
	return call(ctx, r, "outfits", func(ctx context.Context) ([]models.Outfit, error) {
		return r.source.Outfits(ctx, q)
	})
}

// call runs fn with rate limiting, circuit breaking and retry.
func call[T any](ctx context.Context, r *Resilient, operation string, fn func(context.Context) (T, error)) (T, error) {
	return retry.DoWithData(
		func() (T, error) {
			var zero T
			if r.limiter != nil {
				if err := r.limiter.Wait(ctx); err != nil {
					return zero, fmt.Errorf("%s: rate limiter: %w", operation, err)
				}
			}
			result, err := r.execute(func() (any, error) {
				return fn(ctx)
			})
			if err != nil {
				return zero, err
			}
			typed, ok := result.(T)
			if !ok {
				return zero, fmt.Errorf("circuit breaker: unexpected result type %T", result)
			}
			return typed, nil
		},
		retry.Context(ctx),
		retry.Attempts(r.cfg.Attempts),
		retry.Delay(r.cfg.Delay),
		retry.MaxJitter(r.cfg.MaxJitter),
		retry.RetryIf(shouldRetry),
		retry.OnRetry(func(n uint, err error) {
			metrics.DBRetries.WithLabelValues(operation).Inc()
			r.logger.Debug().Err(err).Uint("attempt", n+1).Str("operation", operation).Msg("Retrying read")
		}),
	)
}

// execute runs fn through the breaker and records the outcome.
func (r *Resilient) execute(fn func() (any, error)) (any, error) {
	result, err := r.cb.Execute(fn)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(r.cfg.Name, "rejected").Inc()
			r.logger.Warn().Err(err).Msg("Request rejected")
		} else {
			metrics.CircuitBreakerRequests.WithLabelValues(r.cfg.Name, "failure").Inc()
		}
		return nil, err
	}
	metrics.CircuitBreakerRequests.WithLabelValues(r.cfg.Name, "success").Inc()
	return result, nil
}

// shouldRetry rejects errors that another attempt cannot fix.
func shouldRetry(err error) bool {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return false
	}
	return IsTransient(err)
}

// stateToFloat converts circuit breaker state to numeric value for metrics
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

// stateToString converts circuit breaker state to string for logging
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
