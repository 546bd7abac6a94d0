// Stylist - Personalized Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package scoring

import (
	"strings"

	"github.com/tomtom215/stylist/internal/models"
	"github.com/tomtom215/stylist/internal/recommend/patterns"
)

// quickCheckProducts is how many leading products the brand check inspects.
const quickCheckProducts = 3

// quickCheck returns a cheap pre-score in [0, 1]. An avoided style is a
// deal-breaker and yields 0. Brands only nudge the score, they never veto.
func quickCheck(outfit *models.Outfit, styles []string, sig *userSignals) float64 {
	if patterns.AnyIn(styles, sig.negativeStyles) {
		return 0
	}

	score := 0.5
	if patterns.AnyIn(styles, sig.positiveStyles) {
		score += 0.3
	}

	for i := range outfit.Products {
		if i >= quickCheckProducts {
			break
		}
		brand := strings.ToLower(outfit.Products[i].Brand)
		if brand == "" {
			continue
		}
		if _, ok := sig.negativeBrands[brand]; ok {
			score -= 0.1
		}
		if _, ok := sig.positiveBrands[brand]; ok {
			score += 0.1
		}
	}

	return clamp01(score)
}
