// Stylist - Personalized Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package scoring

import (
	"math"

	"github.com/tomtom215/stylist/internal/models"
)

const (
	priceWeight    = 0.3
	priceTolerance = 0.5
)

// interactionSimilarity compares the outfit to the user's learned patterns.
// Each frequency term is divided by the number of outfit tokens it covers.
func interactionSimilarity(outfit *models.Outfit, styles []string, p *models.InteractionPatterns) float64 {
	score := frequencyShare(styles, p.OutfitStyles)

	if len(outfit.Products) > 0 {
		score += frequencyShare(productBrands(outfit.Products), p.ProductBrands)
		score += frequencyShare(productTypes(outfit.Products), p.ProductTypes)
		score += priceSimilarity(outfit.Products, p.PriceRange) * priceWeight
	}

	return math.Min(1, score)
}

// priceSimilarity is 1 when the outfit's mean product price falls within the
// liked range, otherwise it decays linearly with distance from the liked
// average and reaches 0 at 50% away.
func priceSimilarity(products []models.Product, liked models.PriceRange) float64 {
	if !liked.Valid || liked.Avg <= 0 {
		return 0
	}

	var (
		sum   float64
		count int
	)
	for i := range products {
		if products[i].HasPrice() {
			sum += products[i].Price
			count++
		}
	}
	if count == 0 {
		return 0
	}

	avg := sum / float64(count)
	if liked.Contains(avg) {
		return 1
	}
	return math.Max(0, 1-math.Abs(avg-liked.Avg)/(liked.Avg*priceTolerance))
}
