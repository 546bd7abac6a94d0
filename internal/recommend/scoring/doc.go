// Stylist - Personalized Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

// Package scoring computes a personalized score for a single (user, outfit)
// pair.
//
// # Algorithm
//
// Factors are evaluated in a fixed order because the order decides which
// reasoning strings appear and where scoring may stop early:
//
//  1. Quick check: a cheap pre-score. Any outfit style the user avoids is a
//     deal-breaker. A quick score below 0.1 ends scoring with a final score of
//     0 and a single "does not match preferences" reason.
//  2. User preferences (weight 0.25): average of up to five sub-scores over
//     stated styles, brands and colors and learned product types and brands.
//     An alignment below 0.2 for a user with more than five liked outfits
//     stops scoring here.
//  3. Interaction history (weight 0.35): frequency-weighted style, brand and
//     type similarity to liked items plus a price-band term, capped at 1.
//  4. Collection similarity (weight 0.15): a neutral constant until
//     collections are integrated.
//  5. Product compatibility (flat weight 0.15): per outfit product, the best
//     similarity to any liked product, averaged.
//  6. Outfit popularity (weight 0.1): points/100, or 0.5 when unset.
//  7. Bonus and penalty: +0.1 for a preferred style, -0.2 for an avoided one.
//
// The final score is clamped to [0, 1].
//
// # Thread Safety
//
// A Scorer holds only immutable configuration. Score is safe for concurrent
// use and returns identical results for identical inputs.
package scoring
