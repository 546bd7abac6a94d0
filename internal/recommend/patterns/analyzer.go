// Stylist - Personalized Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package patterns

import (
	"strings"

	"github.com/tomtom215/stylist/internal/models"
)

// Analyze aggregates liked outfits and liked products into frequency
// distributions. Missing fields on any single outfit or product are skipped
// without affecting the rest of the aggregation. With no input the result
// has empty maps and an invalid price range.
func Analyze(likedOutfits []models.Outfit, likedProducts []models.Product) models.InteractionPatterns {
	p := models.NewInteractionPatterns()

	for i := range likedOutfits {
		for _, style := range StyleTokens(likedOutfits[i].Style) {
			p.OutfitStyles.Add(style)
		}
	}

	var (
		priceSum   float64
		priceCount int
	)
	for i := range likedProducts {
		product := &likedProducts[i]

		if product.Brand != "" {
			p.ProductBrands.Add(strings.ToLower(product.Brand))
		}
		if product.Type != "" {
			p.ProductTypes.Add(strings.ToLower(product.Type))
		}

		if product.Title != "" {
			for _, color := range ExtractColors(strings.ToLower(product.Title)) {
				p.Colors.Add(color)
				p.ProductColors.Add(color)
			}
		}
		if product.Description != "" {
			for _, color := range ExtractColors(strings.ToLower(product.Description)) {
				p.ProductColors.Add(color)
			}
		}

		if !product.HasPrice() {
			continue
		}
		if priceCount == 0 || product.Price < p.PriceRange.Min {
			p.PriceRange.Min = product.Price
		}
		if priceCount == 0 || product.Price > p.PriceRange.Max {
			p.PriceRange.Max = product.Price
		}
		priceSum += product.Price
		priceCount++
	}

	if priceCount > 0 {
		p.PriceRange.Avg = priceSum / float64(priceCount)
		p.PriceRange.Valid = true
	}

	return p
}
