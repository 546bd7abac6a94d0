// Stylist - Personalized Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

/*
Package validation provides struct validation using go-playground/validator v10.

A single validator instance is shared process-wide; it caches struct metadata
and is safe for concurrent use. Field names in messages are taken from json
tags, so a failed `limit` reads "limit must be at most 50" rather than the Go
field name.

Custom tags:

	styletokens   comma-separated style names (letters, digits, spaces,
	              hyphens, ampersands; at most 40 characters per token)

Usage:

	type RecommendationRequest struct {
	    Limit       int    `json:"limit" validate:"min=1,max=50"`
	    StyleFilter string `json:"style_filter" validate:"max=200,styletokens"`
	}

	if verr := validation.ValidateStruct(&req); verr != nil {
	    apiErr := verr.ToAPIError()
	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, verr)
	    return
	}
*/
package validation
