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

const (
	learnedTypeWeight  = 0.8
	learnedBrandWeight = 1.2
)

// preferenceAlignment averages the applicable sub-scores. A sub-score only
// counts toward the denominator when its inputs are present.
func preferenceAlignment(outfit *models.Outfit, styles []string, sig *userSignals, p *models.InteractionPatterns) float64 {
	var (
		score   float64
		factors int
	)

	// stated styles
	if len(styles) > 0 && len(sig.positiveStyles) > 0 {
		score += float64(patterns.CountIn(styles, sig.positiveStyles)) / float64(len(styles))
		factors++
	}

	if len(outfit.Products) == 0 {
		if factors == 0 {
			return 0
		}
		return score / float64(factors)
	}

	brands := productBrands(outfit.Products)
	types := productTypes(outfit.Products)

	// stated brands
	if len(sig.positiveBrands) > 0 && len(brands) > 0 {
		score += float64(patterns.CountIn(brands, sig.positiveBrands)) / float64(len(brands))
		factors++
	}

	// stated colors, counted per occurrence across all product text
	if len(sig.positiveColors) > 0 {
		colors := outfitColors(outfit.Products)
		if len(colors) > 0 {
			score += float64(patterns.CountIn(colors, sig.positiveColors)) / float64(len(colors))
			factors++
		}
	}

	// learned product types
	if len(p.ProductTypes) > 0 && len(types) > 0 {
		matches := 0
		for _, t := range types {
			if _, ok := p.ProductTypes[t]; ok {
				matches++
			}
		}
		score += float64(matches) / float64(len(types)) * learnedTypeWeight
		factors++
	}

	// learned brands, weighted by like frequency
	if len(p.ProductBrands) > 0 && len(brands) > 0 {
		score += frequencyShare(brands, p.ProductBrands) * learnedBrandWeight
		factors++
	}

	if factors == 0 {
		return 0
	}
	return score / float64(factors)
}

// frequencyShare sums each token's share of the frequency map and divides by
// the number of tokens.
func frequencyShare(tokens []string, freq models.FrequencyMap) float64 {
	total := freq.Total()
	if total == 0 || len(tokens) == 0 {
		return 0
	}
	var sum float64
	for _, t := range tokens {
		if n, ok := freq[t]; ok {
			sum += float64(n) / float64(total)
		}
	}
	return sum / float64(len(tokens))
}

func productBrands(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for i := range products {
		if products[i].Brand != "" {
			out = append(out, strings.ToLower(products[i].Brand))
		}
	}
	return out
}

func productTypes(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for i := range products {
		if products[i].Type != "" {
			out = append(out, strings.ToLower(products[i].Type))
		}
	}
	return out
}

func outfitColors(products []models.Product) []string {
	var out []string
	for i := range products {
		if products[i].Title != "" {
			out = append(out, patterns.ExtractColors(strings.ToLower(products[i].Title))...)
		}
		if products[i].Description != "" {
			out = append(out, patterns.ExtractColors(strings.ToLower(products[i].Description))...)
		}
	}
	return out
}
