// Stylist - Personalized Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package recommend

import (
	"fmt"
	"math"

	"github.com/tomtom215/stylist/internal/models"
)

// Profile strength levels.
const (
	LevelExcellent        = "Excellent"
	LevelGood             = "Good"
	LevelFair             = "Fair"
	LevelNeedsImprovement = "Needs Improvement"
)

const strengthSignals = 6.0

// ProfileStrength returns how much is known about the user, in [0, 1].
// It is the mean of six capped signals: stated styles, brands and colors
// (one each when present), liked outfits/10, liked products/20 and
// collection items/15.
func ProfileStrength(p *models.ProfileData) float64 {
	if p == nil {
		return 0
	}

	strength := 0.0
	if len(p.Preferences.PositiveStyles) > 0 {
		strength++
	}
	if len(p.Preferences.PositiveBrands) > 0 {
		strength++
	}
	if len(p.Preferences.PositiveColors) > 0 {
		strength++
	}
	strength += math.Min(float64(len(p.LikedOutfits))/10, 1)
	strength += math.Min(float64(len(p.LikedProducts))/20, 1)
	strength += math.Min(float64(len(p.CollectionItems))/15, 1)

	return math.Min(strength/strengthSignals, 1)
}

// BuildStrengthReport explains a profile's strength and how to improve it.
func BuildStrengthReport(p *models.ProfileData) *StrengthReport {
	if p == nil {
		p = &models.ProfileData{}
	}
	strength := ProfileStrength(p)
	level, description := strengthLevel(strength)

	summary := DataSummary{
		LikedOutfits:     len(p.LikedOutfits),
		LikedProducts:    len(p.LikedProducts),
		Collections:      len(p.CollectionItems),
		StylePreferences: len(p.Preferences.PositiveStyles),
		BrandPreferences: len(p.Preferences.PositiveBrands),
		ColorPreferences: len(p.Preferences.PositiveColors),
	}

	suggestions := make([]string, 0, 6)
	if summary.StylePreferences == 0 {
		suggestions = append(suggestions, "Add your preferred styles to your profile")
	}
	if summary.BrandPreferences == 0 {
		suggestions = append(suggestions, "Add your preferred brands to your profile")
	}
	if summary.ColorPreferences == 0 {
		suggestions = append(suggestions, "Add your preferred colors to your profile")
	}
	if summary.LikedOutfits < 5 {
		suggestions = append(suggestions, fmt.Sprintf("Like more outfits (%d/10+ recommended)", summary.LikedOutfits))
	}
	if summary.LikedProducts < 10 {
		suggestions = append(suggestions, fmt.Sprintf("Like more products (%d/20+ recommended)", summary.LikedProducts))
	}
	if summary.Collections < 5 {
		suggestions = append(suggestions, "Create collections to organize your favorite items")
	}

	return &StrengthReport{
		ProfileStrength:        strength,
		Level:                  level,
		Description:            description,
		DataSummary:            summary,
		ImprovementSuggestions: suggestions,
	}
}

func strengthLevel(strength float64) (level, description string) {
	switch {
	case strength >= 0.8:
		return LevelExcellent, "You have a very strong profile for personalized recommendations!"
	case strength >= 0.6:
		return LevelGood, "You have a good profile for recommendations with room for improvement."
	case strength >= 0.4:
		return LevelFair, "Your profile needs more data for better personalized recommendations."
	default:
		return LevelNeedsImprovement, "Add more preferences and interactions to get personalized recommendations."
	}
}

// Message returns the user-facing summary line for a response with count
// returned recommendations.
func Message(count int, strength float64) string {
	switch {
	case count == 0 && strength < 0.3:
		return "No recommendations available. Try liking some outfits or products to improve recommendations."
	case count == 0:
		return "No new recommendations available. Try adjusting your preferences or check back later."
	case strength < 0.5:
		return fmt.Sprintf("Found %d recommendations. Like more outfits and products to get better personalized suggestions!", count)
	default:
		return fmt.Sprintf("Found %d personalized recommendations based on your preferences and activity.", count)
	}
}
