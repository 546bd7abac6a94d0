// Stylist - Personalized Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package recommend

import (
	"context"
	"fmt"
	"strings"

	"github.com/tomtom215/stylist/internal/models"
	"github.com/tomtom215/stylist/internal/recommend/patterns"
)

// selectCandidates fetches the candidate pool and applies the hard filters.
// An empty result is not an error.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) selectCandidates(ctx context.Context, user *models.User, req Request) ([]models.Outfit, error) {
	outfits, err := e.dataProvider.Outfits(ctx, models.OutfitQuery{
		UserID:       user.ID,
		Page:         1,
		PageSize:     e.config.Limits.CandidatePoolSize,
		Style:        candidateStyleFilter(req.StyleFilter, user.PositiveStyles),
		IncludeLikes: true,
	})
	if err != nil {
		return nil, fmt.Errorf("get candidate outfits: %w", err)
	}

	return filterCandidates(outfits, user, req.ExcludeLiked), nil
}

// candidateStyleFilter merges the caller's filter with the user's positive
// styles into one comma-joined, de-duplicated, lower-cased token list.
func candidateStyleFilter(filter string, positive []string) string {
	seen := make(map[string]struct{})
	tokens := make([]string, 0, len(positive)+1)

	add := func(token string) {
		token = strings.ToLower(strings.TrimSpace(token))
		if token == "" {
			return
		}
		if _, ok := seen[token]; ok {
			return
		}
		seen[token] = struct{}{}
		tokens = append(tokens, token)
	}

	for _, t := range strings.Split(filter, ",") {
		add(t)
	}
	for _, t := range positive {
		add(t)
	}
	return strings.Join(tokens, ",")
}

// filterCandidates drops liked outfits (when requested), outfits carrying any
// avoided style, and outfits where avoided brands make up more than half of
// the products.
func filterCandidates(outfits []models.Outfit, user *models.User, excludeLiked bool) []models.Outfit {
	negativeStyles := models.LowerSet(user.NegativeStyles)
	negativeBrands := models.LowerSet(user.NegativeBrands)

	filtered := make([]models.Outfit, 0, len(outfits))
	for i := range outfits {
		o := &outfits[i]
		if excludeLiked && o.IsLiked {
			continue
		}
		if patterns.AnyIn(patterns.StyleTokens(o.Style), negativeStyles) {
			continue
		}
		if avoidedBrandMajority(o.Products, negativeBrands) {
			continue
		}
		filtered = append(filtered, *o)
	}
	return filtered
}

// avoidedBrandMajority counts products, not distinct brands.
func avoidedBrandMajority(products []models.Product, negativeBrands map[string]struct{}) bool {
	if len(products) == 0 || len(negativeBrands) == 0 {
		return false
	}
	avoided := 0
	for i := range products {
		if _, ok := negativeBrands[strings.ToLower(products[i].Brand)]; ok {
			avoided++
		}
	}
	return avoided*2 > len(products)
}
