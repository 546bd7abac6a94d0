// Stylist - Personalized Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package recommend

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tomtom215/stylist/internal/models"
)

func profileWith(styles, brands, colors []string, outfits, products, collections int) *models.ProfileData {
	return &models.ProfileData{
		Preferences: models.Preferences{
			PositiveStyles: styles,
			PositiveBrands: brands,
			PositiveColors: colors,
		},
		LikedOutfits:    make([]models.Outfit, outfits),
		LikedProducts:   make([]models.Product, products),
		CollectionItems: make([]models.Product, collections),
	}
}

func TestProfileStrength(t *testing.T) {
	tests := []struct {
		name    string
		profile *models.ProfileData
		want    float64
	}{
		{"nil", nil, 0},
		{"empty", profileWith(nil, nil, nil, 0, 0, 0), 0},
		{"stated preferences only", profileWith([]string{"casual"}, []string{"a"}, []string{"blue"}, 0, 0, 0), 0.5},
		{"half the liked outfits", profileWith(nil, nil, nil, 5, 0, 0), 0.5 / 6},
		{"everything saturated", profileWith([]string{"x"}, []string{"y"}, []string{"z"}, 40, 40, 40), 1},
		{"partial interactions", profileWith([]string{"x"}, nil, nil, 10, 10, 0), 2.5 / 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProfileStrength(tt.profile)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ProfileStrength() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildStrengthReport(t *testing.T) {
	t.Run("empty profile", func(t *testing.T) {
		report := BuildStrengthReport(nil)
		if report.Level != LevelNeedsImprovement {
			t.Errorf("Level = %q, want %q", report.Level, LevelNeedsImprovement)
		}
		want := []string{
			"Add your preferred styles to your profile",
			"Add your preferred brands to your profile",
			"Add your preferred colors to your profile",
			"Like more outfits (0/10+ recommended)",
			"Like more products (0/20+ recommended)",
			"Create collections to organize your favorite items",
		}
		if diff := cmp.Diff(want, report.ImprovementSuggestions); diff != "" {
			t.Errorf("suggestions mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("strong profile", func(t *testing.T) {
		report := BuildStrengthReport(profileWith([]string{"x"}, []string{"y"}, []string{"z"}, 12, 25, 20))
		if report.Level != LevelExcellent {
			t.Errorf("Level = %q, want %q", report.Level, LevelExcellent)
		}
		if len(report.ImprovementSuggestions) != 0 {
			t.Errorf("suggestions = %v, want none", report.ImprovementSuggestions)
		}
		want := DataSummary{
			LikedOutfits: 12, LikedProducts: 25, Collections: 20,
			StylePreferences: 1, BrandPreferences: 1, ColorPreferences: 1,
		}
		if diff := cmp.Diff(want, report.DataSummary); diff != "" {
			t.Errorf("DataSummary mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("suggestion thresholds", func(t *testing.T) {
		report := BuildStrengthReport(profileWith([]string{"x"}, []string{"y"}, []string{"z"}, 4, 9, 5))
		want := []string{
			"Like more outfits (4/10+ recommended)",
			"Like more products (9/20+ recommended)",
		}
		if diff := cmp.Diff(want, report.ImprovementSuggestions); diff != "" {
			t.Errorf("suggestions mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestStrengthLevel(t *testing.T) {
	tests := []struct {
		strength float64
		want     string
	}{
		{0, LevelNeedsImprovement},
		{0.39, LevelNeedsImprovement},
		{0.4, LevelFair},
		{0.6, LevelGood},
		{0.79, LevelGood},
		{0.8, LevelExcellent},
		{1, LevelExcellent},
	}

	for _, tt := range tests {
		if got, _ := strengthLevel(tt.strength); got != tt.want {
			t.Errorf("strengthLevel(%v) = %q, want %q", tt.strength, got, tt.want)
		}
	}
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		strength float64
		want     string
	}{
		{"none weak", 0, 0.1, "No recommendations available. Try liking some outfits or products to improve recommendations."},
		{"none established", 0, 0.3, "No new recommendations available. Try adjusting your preferences or check back later."},
		{"some weak", 4, 0.49, "Found 4 recommendations. Like more outfits and products to get better personalized suggestions!"},
		{"some strong", 12, 0.5, "Found 12 personalized recommendations based on your preferences and activity."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Message(tt.count, tt.strength); got != tt.want {
				t.Errorf("Message(%d, %v) = %q, want %q", tt.count, tt.strength, got, tt.want)
			}
		})
	}
}
