// Stylist - Personalized Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package scoring

import "github.com/tomtom215/stylist/internal/models"

const (
	defaultPopularity      = 0.5
	neutralCollectionScore = 0.5
)

// outfitPopularity maps points onto [0, 1]. Unset points are neutral.
func outfitPopularity(outfit *models.Outfit) float64 {
	if outfit.Points == 0 {
		return defaultPopularity
	}
	return clamp01(float64(outfit.Points) / 100)
}

// collectionSimilarity is neutral until collection items are fetched.
// TODO: compare against profile.CollectionItems once the collections store exposes them.
func collectionSimilarity(_ *models.Outfit, _ *models.ProfileData) float64 {
	return neutralCollectionScore
}
