// Stylist - Personalized Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/stylist/internal/recommend"
)

// Request defaults for the recommendation endpoints.
const (
	defaultLimit            = 20
	defaultExcludeLiked     = true
	defaultIncludeReasoning = true

	// maxBodyBytes caps POST bodies.
	maxBodyBytes = 64 << 10
)

// RecommendationRequest is the validated form of both the GET query and the
// POST body.
type RecommendationRequest struct {
	UserID           string `json:"user_id" validate:"required,max=128,printascii"`
	Limit            int    `json:"limit" validate:"min=1,max=50"`
	ExcludeLiked     bool   `json:"exclude_liked"`
	StyleFilter      string `json:"style_filter" validate:"max=200,styletokens"`
	IncludeReasoning bool   `json:"include_reasoning"`
}

// recommendationBody is the POST body. Pointers tell absent fields from
// explicit zero values.
type recommendationBody struct {
	Limit            *int    `json:"limit"`
	ExcludeLiked     *bool   `json:"exclude_liked"`
	StyleFilter      *string `json:"style_filter"`
	IncludeReasoning *bool   `json:"include_reasoning"`
}

func newRecommendationRequest(userID string) RecommendationRequest {
	return RecommendationRequest{
		UserID:           userID,
		Limit:            defaultLimit,
		ExcludeLiked:     defaultExcludeLiked,
		IncludeReasoning: defaultIncludeReasoning,
	}
}

// parseRecommendationQuery reads limit, exclude_liked, style_filter and
// include_reasoning from the query string.
func parseRecommendationQuery(r *http.Request, userID string) (RecommendationRequest, *paramError) {
	req := newRecommendationRequest(userID)
	var err error

	if req.Limit, err = getIntParam(r, "limit", defaultLimit); err != nil {
		return req, asParamError(err)
	}
	if req.ExcludeLiked, err = getBoolParam(r, "exclude_liked", defaultExcludeLiked); err != nil {
		return req, asParamError(err)
	}
	if req.IncludeReasoning, err = getBoolParam(r, "include_reasoning", defaultIncludeReasoning); err != nil {
		return req, asParamError(err)
	}
	req.StyleFilter = r.URL.Query().Get("style_filter")
	return req, nil
}

// parseRecommendationBody decodes a JSON body. An empty body means all
// defaults.
func parseRecommendationBody(r *http.Request, userID string) (RecommendationRequest, *paramError) {
	req := newRecommendationRequest(userID)

	var body recommendationBody
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&body); err != nil {
		if errors.Is(err, io.EOF) {
			return req, nil
		}
		return req, &paramError{field: "body", message: "request body must be a valid JSON object"}
	}

	if body.Limit != nil {
		req.Limit = *body.Limit
	}
	if body.ExcludeLiked != nil {
		req.ExcludeLiked = *body.ExcludeLiked
	}
	if body.StyleFilter != nil {
		req.StyleFilter = *body.StyleFilter
	}
	if body.IncludeReasoning != nil {
		req.IncludeReasoning = *body.IncludeReasoning
	}
	return req, nil
}

// engineRequest converts the validated request for the engine.
func (req RecommendationRequest) engineRequest(requestID string) recommend.Request {
	return recommend.Request{
		Limit:        req.Limit,
		ExcludeLiked: req.ExcludeLiked,
		StyleFilter:  req.StyleFilter,
		RequestID:    requestID,
	}
}

func asParamError(err error) *paramError {
	var pe *paramError
	if errors.As(err, &pe) {
		return pe
	}
	return &paramError{field: "query", message: err.Error()}
}
