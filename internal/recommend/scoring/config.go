// Stylist - Personalized Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package scoring

import "fmt"

// ProductCompatibilityWeight is the flat weight applied to the product-level
// compatibility factor. It is not part of Weights.
const ProductCompatibilityWeight = 0.15

// Weights defines the contribution of each configurable factor.
// Weights are applied as-is and are not normalized.
type Weights struct {
	// UserPreferences weights alignment with stated and learned preferences.
	// Default: 0.25.
	UserPreferences float64 `json:"user_preferences" koanf:"user_preferences"`

	// InteractionHistory weights similarity to previously liked items.
	// Default: 0.35.
	InteractionHistory float64 `json:"interaction_history" koanf:"interaction_history"`

	// CollectionSimilarity weights similarity to collection items.
	// Default: 0.15.
	CollectionSimilarity float64 `json:"collection_similarity" koanf:"collection_similarity"`

	// OutfitPopularity weights the outfit's popularity points.
	// Default: 0.1.
	OutfitPopularity float64 `json:"outfit_popularity" koanf:"outfit_popularity"`
}

// DefaultWeights returns the production factor weights.
func DefaultWeights() Weights {
	return Weights{
		UserPreferences:      0.25,
		InteractionHistory:   0.35,
		CollectionSimilarity: 0.15,
		OutfitPopularity:     0.1,
	}
}

// Config controls scoring behavior.
type Config struct {
	Weights Weights `json:"weights"`

	// QuickCheck enables the cheap pre-score that short-circuits obviously
	// poor matches. Disabling it changes results for outfits that would have
	// been cut off, so it is meant for tests and diagnostics.
	// Default: true.
	QuickCheck bool `json:"quick_check"`
}

// DefaultConfig returns the production scoring configuration.
func DefaultConfig() Config {
	return Config{
		Weights:    DefaultWeights(),
		QuickCheck: true,
	}
}

// Validate checks that all weights are non-negative.
//
//nolint:gocritic // hugeParam: value receiver keeps Config immutable
func (c Config) Validate() error {
	w := c.Weights
	checks := []struct {
		name  string
		value float64
	}{
		{"weights.user_preferences", w.UserPreferences},
		{"weights.interaction_history", w.InteractionHistory},
		{"weights.collection_similarity", w.CollectionSimilarity},
		{"weights.outfit_popularity", w.OutfitPopularity},
	}
	for _, check := range checks {
		if check.value < 0 {
			return fmt.Errorf("%s must be non-negative, got %f", check.name, check.value)
		}
	}
	return nil
}
