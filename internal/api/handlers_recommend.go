// Stylist - Personalized Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/stylist/internal/logging"
	"github.com/tomtom215/stylist/internal/models"
	"github.com/tomtom215/stylist/internal/recommend"
	"github.com/tomtom215/stylist/internal/validation"
)

// RecommendationsPayload is the data of a recommendation response.
type RecommendationsPayload struct {
	Recommendations     []recommend.Recommendation `json:"recommendations"`
	TotalCount          int                        `json:"total_count"`
	UserProfileStrength float64                    `json:"user_profile_strength"`
	AlgorithmVersion    string                     `json:"algorithm_version"`
	Message             string                     `json:"message"`
	Metadata            recommend.ResponseMetadata `json:"metadata"`
}

// GetRecommendations handles GET /api/v1/recommendations/user/{userID}.
func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req, perr := parseRecommendationQuery(r, chi.URLParam(r, "userID"))
	if perr != nil {
		respondParamError(rw, perr)
		return
	}
	h.recommend(rw, r, req)
}

// PostRecommendations handles POST /api/v1/recommendations/user/{userID}.
func (h *Handler) PostRecommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req, perr := parseRecommendationBody(r, chi.URLParam(r, "userID"))
	if perr != nil {
		respondParamError(rw, perr)
		return
	}
	h.recommend(rw, r, req)
}

func (h *Handler) recommend(rw *ResponseWriter, r *http.Request, req RecommendationRequest) {
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondValidation(rw, verr)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()
	ctx = logging.ContextWithUserID(ctx, req.UserID)

	user, ok := h.lookupUser(ctx, rw, r, req.UserID)
	if !ok {
		return
	}

	resp, err := h.engine.Recommend(ctx, user, req.engineRequest(logging.RequestIDFromContext(ctx)))
	if err != nil {
		logging.Ctx(ctx).Error().Err(err).Msg("Recommendation failed")
		rw.InternalError("Failed to generate recommendations")
		return
	}

	rw.Success(buildPayload(resp, req.IncludeReasoning))
}

// GetProfileStrength handles GET /api/v1/recommendations/user/{userID}/profile-strength.
func (h *Handler) GetProfileStrength(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	userID := chi.URLParam(r, "userID")
	req := newRecommendationRequest(userID)
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondValidation(rw, verr)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()
	ctx = logging.ContextWithUserID(ctx, userID)

	user, ok := h.lookupUser(ctx, rw, r, userID)
	if !ok {
		return
	}

	report, err := h.engine.StrengthReport(ctx, user)
	if err != nil {
		logging.Ctx(ctx).Error().Err(err).Msg("Profile strength report failed")
		rw.InternalError("Failed to build profile strength report")
		return
	}
	rw.Success(report)
}

func (h *Handler) lookupUser(ctx context.Context, rw *ResponseWriter, r *http.Request, userID string) (*models.User, bool) {
	user, err := h.users.GetUser(ctx, userID)
	if err != nil {
		respondUserLookupError(rw, r, userID, err)
		return nil, false
	}
	return user, true
}

// buildPayload shapes an engine response for the wire. Without reasoning,
// each recommendation carries an empty reasoning list and no match factors.
func buildPayload(resp *recommend.Response, includeReasoning bool) *RecommendationsPayload {
	recs := resp.Recommendations
	if recs == nil {
		recs = []recommend.Recommendation{}
	}
	if !includeReasoning {
		stripped := make([]recommend.Recommendation, len(recs))
		for i, rec := range recs {
			rec.Reasoning = []string{}
			rec.Factors = nil
			stripped[i] = rec
		}
		recs = stripped
	}

	return &RecommendationsPayload{
		Recommendations:     recs,
		TotalCount:          resp.TotalCount,
		UserProfileStrength: resp.ProfileStrength,
		AlgorithmVersion:    resp.AlgorithmVersion,
		Message:             recommend.Message(len(recs), resp.ProfileStrength),
		Metadata:            resp.Metadata,
	}
}
