// Stylist - Personalized Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package scoring

import (
	"context"
	"errors"
	"fmt"

	"github.com/tomtom215/stylist/internal/models"
	"github.com/tomtom215/stylist/internal/recommend/patterns"
)

// Match-factor keys reported in Result.Factors.
const (
	FactorUserPreferences      = "user_preferences"
	FactorInteractionHistory   = "interaction_history"
	FactorCollectionSimilarity = "collection_similarity"
	FactorProductCompatibility = "product_compatibility"
	FactorOutfitPopularity     = "outfit_popularity"
)

// Reasoning strings. Thresholds live next to the factor that emits them.
const (
	ReasonNoMatch          = "does not match preferences"
	ReasonSimilarHistory   = "Similar to outfits you've liked before"
	ReasonCollectionMatch  = "Matches items in your collections"
	ReasonSimilarProducts  = "Contains products similar to ones you've liked"
	ReasonHighlyRated      = "Highly rated outfit"
	ReasonPreferredStyle   = "Matches your preferred style exactly"
	ReasonAvoidedStyle     = "Note: Contains a style you typically avoid"
	reasonStrongPrefFormat = "Strong match with your style preferences (%.1f%%)"
	reasonGoodPrefFormat   = "Good match with your preferences (%.1f%%)"
)

const (
	quickCheckCutoff       = 0.1
	lowAlignmentCutoff     = 0.2
	lowAlignmentMinHistory = 5

	styleBonus   = 0.1
	stylePenalty = 0.2
)

// ErrNilInput is returned when Score is called without an outfit or user.
var ErrNilInput = errors.New("scoring: outfit and user are required")

// Result is the outcome of scoring one outfit.
type Result struct {
	// Score is the final clamped score in [0, 1].
	Score float64 `json:"score"`

	// Reasoning lists human-readable explanations in evaluation order.
	Reasoning []string `json:"reasoning"`

	// Factors maps factor keys to their unweighted scores. Factors skipped
	// by an early exit are absent.
	Factors map[string]float64 `json:"match_factors"`
}

// Scorer scores outfits against a user profile.
type Scorer struct {
	config Config
}

// NewScorer creates a scorer. The config is validated.
//
//nolint:gocritic // hugeParam: config copied once at construction
func NewScorer(cfg Config) (*Scorer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scoring config: %w", err)
	}
	return &Scorer{config: cfg}, nil
}

// Config returns the scorer configuration.
func (s *Scorer) Config() Config {
	return s.config
}

// userSignals holds lower-cased preference sets built once per Score call.
type userSignals struct {
	positiveStyles map[string]struct{}
	negativeStyles map[string]struct{}
	positiveBrands map[string]struct{}
	negativeBrands map[string]struct{}
	positiveColors map[string]struct{}
}

func newUserSignals(u *models.User) userSignals {
	return userSignals{
		positiveStyles: models.LowerSet(u.PositiveStyles),
		negativeStyles: models.LowerSet(u.NegativeStyles),
		positiveBrands: models.LowerSet(u.PositiveBrands),
		negativeBrands: models.LowerSet(u.NegativeBrands),
		positiveColors: models.LowerSet(u.PositiveColors),
	}
}

// Score computes the personalized score for outfit. profile may be nil, in
// which case only stated preferences and outfit data contribute.
func (s *Scorer) Score(ctx context.Context, outfit *models.Outfit, user *models.User, profile *models.ProfileData) (Result, error) {
	if outfit == nil || user == nil {
		return Result{}, ErrNilInput
	}
	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("score outfit %d: %w", outfit.ID, err)
	}
	if profile == nil {
		profile = &models.ProfileData{Patterns: models.NewInteractionPatterns()}
	}

	sig := newUserSignals(user)
	styles := patterns.StyleTokens(outfit.Style)

	if s.config.QuickCheck && quickCheck(outfit, styles, &sig) < quickCheckCutoff {
		return Result{
			Score:     0,
			Reasoning: []string{ReasonNoMatch},
			Factors:   map[string]float64{},
		}, nil
	}

	w := s.config.Weights
	res := Result{
		Reasoning: make([]string, 0, 4),
		Factors:   make(map[string]float64, 5),
	}
	total := 0.0

	pref := preferenceAlignment(outfit, styles, &sig, &profile.Patterns)
	res.Factors[FactorUserPreferences] = pref
	total += pref * w.UserPreferences
	switch {
	case pref > 0.7:
		res.Reasoning = append(res.Reasoning, fmt.Sprintf(reasonStrongPrefFormat, pref*100))
	case pref > 0.4:
		res.Reasoning = append(res.Reasoning, fmt.Sprintf(reasonGoodPrefFormat, pref*100))
	}

	if pref < lowAlignmentCutoff && len(profile.LikedOutfits) > lowAlignmentMinHistory {
		res.Score = clamp01(total)
		return res, nil
	}

	history := interactionSimilarity(outfit, styles, &profile.Patterns)
	res.Factors[FactorInteractionHistory] = history
	total += history * w.InteractionHistory
	if history > 0.6 {
		res.Reasoning = append(res.Reasoning, ReasonSimilarHistory)
	}

	collection := collectionSimilarity(outfit, profile)
	res.Factors[FactorCollectionSimilarity] = collection
	total += collection * w.CollectionSimilarity
	if collection > 0.5 {
		res.Reasoning = append(res.Reasoning, ReasonCollectionMatch)
	}

	compat := productCompatibility(outfit, profile.LikedProducts)
	res.Factors[FactorProductCompatibility] = compat
	total += compat * ProductCompatibilityWeight
	if compat > 0.7 {
		res.Reasoning = append(res.Reasoning, ReasonSimilarProducts)
	}

	popularity := outfitPopularity(outfit)
	res.Factors[FactorOutfitPopularity] = popularity
	total += popularity * w.OutfitPopularity
	if popularity > 0.8 {
		res.Reasoning = append(res.Reasoning, ReasonHighlyRated)
	}

	if patterns.AnyIn(styles, sig.positiveStyles) {
		total += styleBonus
		res.Reasoning = append(res.Reasoning, ReasonPreferredStyle)
	}
	if patterns.AnyIn(styles, sig.negativeStyles) {
		total -= stylePenalty
		res.Reasoning = append(res.Reasoning, ReasonAvoidedStyle)
	}

	res.Score = clamp01(total)
	return res, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
