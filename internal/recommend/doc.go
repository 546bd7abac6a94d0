// Stylist - Personalized Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

// Package recommend implements the personalized outfit recommendation engine.
//
// # Architecture
//
// The Engine drives a linear pipeline per request:
//
//	START -> PROFILE_FETCH -> CANDIDATE_FETCH -> (empty? -> DONE) -> SCORE_BATCHES -> SORT_TRUNCATE -> DONE
//
//   - Profile fetch: liked outfits and liked products are read concurrently
//     through the DataProvider and folded into InteractionPatterns. Results
//     are held in a ProfileCache for a fixed TTL.
//   - Candidate fetch: a bounded pool of outfits is read and hard-filtered
//     (already liked, avoided styles, avoided-brand majority).
//   - Batch scoring: candidates are scored in fixed-size concurrent batches,
//     each bounded by a timeout. Scoring stops early once enough high-scoring
//     outfits have been found.
//   - Sort and truncate: outfits with a positive score are ordered by score
//     (stable) and cut to the requested limit.
//
// Per-outfit scoring is delegated to a Scorer; the production implementation
// lives in the scoring subpackage.
//
// # Failure Handling
//
// Nothing here fails the caller for data problems. Sub-fetch errors during
// profile assembly degrade that signal to empty. Per-outfit errors and panics
// drop the outfit. A timed-out batch is dropped. A candidate fetch failure
// produces an empty response. Only programmer errors (nil user, no data
// provider) are returned as errors.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//	engine.SetDataProvider(db)
//
//	resp, err := engine.Recommend(ctx, user, recommend.Request{Limit: 20, ExcludeLiked: true})
//
// # Thread Safety
//
// The engine is safe for concurrent use. The profile cache is the only
// long-lived mutable state. Concurrent misses for the same user may both
// load and both store; the last writer wins.
package recommend
