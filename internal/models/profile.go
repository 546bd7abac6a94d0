// Stylist - Personalized Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package models

// ProfileData is everything gathered about a user for one scoring pass.
// It is built fresh on a profile cache miss and never persisted.
type ProfileData struct {
	Preferences   Preferences `json:"preferences"`
	LikedOutfits  []Outfit    `json:"liked_outfits"`
	LikedProducts []Product   `json:"liked_products"`

	// CollectionItems is always empty until collections are integrated.
	CollectionItems []Product `json:"collection_items"`

	Patterns InteractionPatterns `json:"interaction_patterns"`
}

// InteractionPatterns aggregates a user's likes into frequency distributions.
type InteractionPatterns struct {
	OutfitStyles  FrequencyMap `json:"preferred_outfit_styles"`
	ProductBrands FrequencyMap `json:"preferred_product_brands"`
	ProductTypes  FrequencyMap `json:"preferred_product_types"`

	// Colors receives only colors found in liked product titles, while
	// ProductColors receives colors from both titles and descriptions.
	// The overlap is kept deliberately; downstream consumers differ.
	Colors        FrequencyMap `json:"preferred_colors"`
	ProductColors FrequencyMap `json:"preferred_product_colors"`

	PriceRange PriceRange `json:"price_range_preference"`
}

// NewInteractionPatterns returns patterns with all maps allocated.
func NewInteractionPatterns() InteractionPatterns {
	return InteractionPatterns{
		OutfitStyles:  FrequencyMap{},
		ProductBrands: FrequencyMap{},
		ProductTypes:  FrequencyMap{},
		Colors:        FrequencyMap{},
		ProductColors: FrequencyMap{},
	}
}

// FrequencyMap counts occurrences of lower-cased tokens. Order is irrelevant.
type FrequencyMap map[string]int

// Add increments the count for token.
func (f FrequencyMap) Add(token string) {
	f[token]++
}

// Total returns the sum of all counts.
func (f FrequencyMap) Total() int {
	total := 0
	for _, n := range f {
		total += n
	}
	return total
}

// Share returns count(token)/Total(), or 0 when the token is absent.
func (f FrequencyMap) Share(token string) float64 {
	n, ok := f[token]
	if !ok {
		return 0
	}
	total := f.Total()
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total)
}

// PriceRange summarizes liked product prices. Valid is false when no liked
// product carried a positive price, in which case the numbers are zero.
type PriceRange struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Avg   float64 `json:"avg"`
	Valid bool    `json:"valid"`
}

// Contains reports whether price lies within [Min, Max].
func (r PriceRange) Contains(price float64) bool {
	return r.Valid && price >= r.Min && price <= r.Max
}
