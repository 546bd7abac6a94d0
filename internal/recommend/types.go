// Stylist - Personalized Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package recommend

import (
	"context"
	"time"

	"github.com/tomtom215/stylist/internal/models"
	"github.com/tomtom215/stylist/internal/recommend/scoring"
)

// AlgorithmVersion identifies the scoring algorithm in responses.
const AlgorithmVersion = "v1.0"

// Request represents a recommendation request.
type Request struct {
	// Limit is the number of recommendations to return.
	// Defaults to Config.Limits.DefaultLimit if zero; capped at MaxLimit.
	Limit int `json:"limit,omitempty"`

	// ExcludeLiked drops outfits the user already liked.
	ExcludeLiked bool `json:"exclude_liked"`

	// StyleFilter is an optional comma-separated style list. It is merged
	// with the user's positive styles to narrow the candidate pool.
	StyleFilter string `json:"style_filter,omitempty"`

	// RequestID is a unique identifier for tracing. Generated if empty.
	RequestID string `json:"request_id,omitempty"`
}

// Recommendation is one scored outfit.
type Recommendation struct {
	Outfit    models.Outfit      `json:"outfit"`
	Score     float64            `json:"score"`
	Reasoning []string           `json:"reasoning"`
	Factors   map[string]float64 `json:"match_factors,omitempty"`
}

// Response represents a recommendation response.
type Response struct {
	// Recommendations is ordered by score, highest first.
	Recommendations []Recommendation `json:"recommendations"`

	// TotalCount is the number of positively scored outfits before truncation.
	TotalCount int `json:"total_count"`

	// ProfileStrength describes how much is known about the user, in [0, 1].
	ProfileStrength float64 `json:"user_profile_strength"`

	// AlgorithmVersion identifies the scoring algorithm.
	AlgorithmVersion string `json:"algorithm_version"`

	// Metadata contains timing and diagnostic information.
	Metadata ResponseMetadata `json:"metadata"`
}

// ResponseMetadata contains timing and diagnostic information.
type ResponseMetadata struct {
	RequestID string `json:"request_id"`
	UserID    string `json:"user_id"`

	// Candidates is the number of outfits left after filtering.
	Candidates int `json:"candidates"`

	BatchesProcessed int  `json:"batches_processed"`
	BatchesDropped   int  `json:"batches_dropped"`
	EarlyTerminated  bool `json:"early_terminated"`
	ScoringErrors    int  `json:"scoring_errors"`
	ProfileCacheHit  bool `json:"profile_cache_hit"`

	// Degraded is set when the request failed and an empty response was
	// returned in its place.
	Degraded bool `json:"degraded"`

	LatencyMS int64     `json:"latency_ms"`
	Timestamp time.Time `json:"timestamp"`
}

// StrengthReport explains a user's profile strength.
type StrengthReport struct {
	ProfileStrength        float64     `json:"profile_strength"`
	Level                  string      `json:"level"`
	Description            string      `json:"description"`
	DataSummary            DataSummary `json:"data_summary"`
	ImprovementSuggestions []string    `json:"improvement_suggestions"`
}

// DataSummary counts the signals behind a profile.
type DataSummary struct {
	LikedOutfits     int `json:"liked_outfits"`
	LikedProducts    int `json:"liked_products"`
	Collections      int `json:"collections"`
	StylePreferences int `json:"style_preferences"`
	BrandPreferences int `json:"brand_preferences"`
	ColorPreferences int `json:"color_preferences"`
}

// DataProvider defines the data-layer queries the engine needs.
// This is typically implemented by the database layer.
type DataProvider interface {
	// LikedOutfits returns a page of outfits the user liked, with products.
	LikedOutfits(ctx context.Context, userID string, page, pageSize int) ([]models.Outfit, error)

	// LikedProducts returns a page of products the user liked.
	LikedProducts(ctx context.Context, userID string, page, pageSize int) ([]models.Product, error)

	// Outfits returns a page of outfits with products. When IncludeLikes is
	// set, IsLiked reflects the requesting user.
	Outfits(ctx context.Context, q models.OutfitQuery) ([]models.Outfit, error)
}

// Scorer scores one outfit for one user.
type Scorer interface {
	Score(ctx context.Context, outfit *models.Outfit, user *models.User, profile *models.ProfileData) (scoring.Result, error)
}
