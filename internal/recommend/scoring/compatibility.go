// Stylist - Personalized Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package scoring

import (
	"math"
	"strings"

	"github.com/tomtom215/stylist/internal/models"
	"github.com/tomtom215/stylist/internal/recommend/patterns"
)

// productFeatures caches the comparable attributes of a product.
type productFeatures struct {
	brand  string
	ptype  string
	price  float64
	colors map[string]struct{}
}

func newProductFeatures(p *models.Product) productFeatures {
	return productFeatures{
		brand:  strings.ToLower(p.Brand),
		ptype:  strings.ToLower(p.Type),
		price:  p.Price,
		colors: patterns.ProductColorSet(p.Title, p.Description),
	}
}

// productCompatibility averages, over the outfit's products, the best
// similarity to any liked product.
func productCompatibility(outfit *models.Outfit, liked []models.Product) float64 {
	if len(outfit.Products) == 0 || len(liked) == 0 {
		return 0
	}

	likedFeatures := make([]productFeatures, len(liked))
	for i := range liked {
		likedFeatures[i] = newProductFeatures(&liked[i])
	}

	var total float64
	for i := range outfit.Products {
		candidate := newProductFeatures(&outfit.Products[i])
		best := 0.0
		for j := range likedFeatures {
			best = math.Max(best, productSimilarity(&candidate, &likedFeatures[j]))
		}
		total += best
	}
	return total / float64(len(outfit.Products))
}

// productSimilarity is the weighted match of two products divided by the
// number of attributes present on both.
func productSimilarity(a, b *productFeatures) float64 {
	var (
		score   float64
		factors int
	)

	if a.brand != "" && b.brand != "" {
		if a.brand == b.brand {
			score += 0.4
		}
		factors++
	}

	if a.ptype != "" && b.ptype != "" {
		if a.ptype == b.ptype {
			score += 0.3
		}
		factors++
	}

	if a.price > 0 && b.price > 0 {
		diff := math.Abs(a.price - b.price)
		score += math.Max(0, 1-diff/math.Max(a.price, b.price)) * 0.2
		factors++
	}

	if len(a.colors) > 0 && len(b.colors) > 0 {
		score += jaccard(a.colors, b.colors) * 0.1
		factors++
	}

	if factors == 0 {
		return 0
	}
	return score / float64(factors)
}

func jaccard(a, b map[string]struct{}) float64 {
	inter := 0
	for k := range a {
		if _, ok := b[k]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}
