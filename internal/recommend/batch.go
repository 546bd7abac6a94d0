// Stylist - Personalized Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package recommend

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/tomtom215/stylist/internal/metrics"
	"github.com/tomtom215/stylist/internal/models"
	"github.com/tomtom215/stylist/internal/recommend/scoring"
)

// batchRun summarizes one pass over the candidate batches.
type batchRun struct {
	processed int
	dropped   int
	errors    int
	earlyStop bool
}

// scoreResult holds the result of scoring a single outfit.
type scoreResult struct {
	result scoring.Result
	err    error
}

// scoreCandidates scores candidates in fixed-size concurrent batches and
// returns every outfit with a positive score. Batches run one after another;
// after each, scoring stops once the number of outfits at or above the
// high-score threshold reaches min(EarlyStopTarget, len(candidates)).
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func (e *Engine) scoreCandidates(ctx context.Context, user *models.User, profile *models.ProfileData, candidates []models.Outfit, logger zerolog.Logger) ([]Recommendation, batchRun) {
	cfg := e.config.Batching
	target := min(cfg.EarlyStopTarget, len(candidates))

	var (
		run       batchRun
		scored    = make([]Recommendation, 0, len(candidates))
		highCount int
	)

	for start := 0; start < len(candidates); start += cfg.Size {
		if ctx.Err() != nil {
			logger.Warn().Err(ctx.Err()).Msg("request context ended, skipping remaining batches")
			break
		}

		end := min(start+cfg.Size, len(candidates))
		batch := candidates[start:end]

		results, timedOut := e.scoreBatch(ctx, batch, user, profile)
		metrics.RecordBatch(timedOut)
		if timedOut {
			run.dropped++
			logger.Warn().
				Int("batch_start", start).
				Int("batch_size", len(batch)).
				Dur("timeout", cfg.Timeout).
				Msg("scoring batch timed out, dropping batch")
			continue
		}
		run.processed++

		for i := range results {
			if results[i].err != nil {
				run.errors++
				metrics.RecommendScoringErrors.Inc()
				logger.Warn().
					Int64("outfit_id", batch[i].ID).
					Err(results[i].err).
					Msg("outfit scoring failed")
				continue
			}
			res := results[i].result
			if res.Score <= 0 {
				continue
			}
			if res.Score >= cfg.HighScoreThreshold {
				highCount++
			}
			scored = append(scored, Recommendation{
				Outfit:    batch[i],
				Score:     res.Score,
				Reasoning: res.Reasoning,
				Factors:   res.Factors,
			})
		}

		if highCount >= target && end < len(candidates) {
			run.earlyStop = true
			e.earlyStops.Add(1)
			metrics.RecommendEarlyTerminations.Inc()
			logger.Debug().
				Int("high_scores", highCount).
				Int("scored_through", end).
				Msg("early termination")
			break
		}
	}

	return scored, run
}

// scoreBatch scores every outfit in batch concurrently. If the batch does not
// finish within the batch timeout it is abandoned and timedOut is true; the
// in-flight goroutines finish on their own and their results are discarded.
func (e *Engine) scoreBatch(ctx context.Context, batch []models.Outfit, user *models.User, profile *models.ProfileData) (results []scoreResult, timedOut bool) {
	batchCtx, cancel := context.WithTimeout(ctx, e.config.Batching.Timeout)
	defer cancel()

	out := make([]scoreResult, len(batch))
	var wg sync.WaitGroup
	for i := range batch {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			res, err := e.scoreOne(batchCtx, &batch[idx], user, profile)
			out[idx] = scoreResult{result: res, err: err}
		}(i)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return out, false
	case <-batchCtx.Done():
		return nil, true
	}
}

// scoreOne calls the scorer and converts a panic into an error.
func (e *Engine) scoreOne(ctx context.Context, outfit *models.Outfit, user *models.User, profile *models.ProfileData) (res scoring.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic scoring outfit %d: %v", outfit.ID, r)
		}
	}()
	return e.scorer.Score(ctx, outfit, user, profile)
}
