// Stylist - Personalized Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/tomtom215/stylist/internal/validation"
)

// sanitizeLogValue removes control characters from strings to prevent log
// injection.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&result, "\\x%02x", r)
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// paramError is a malformed query parameter.
type paramError struct {
	field   string
	message string
}

func (e *paramError) Error() string {
	return e.message
}

// getIntParam parses an integer query parameter. A missing parameter yields
// the default; a malformed one is an error.
func getIntParam(r *http.Request, key string, defaultValue int) (int, error) {
	value := strings.TrimSpace(r.URL.Query().Get(key))
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, &paramError{field: key, message: key + " must be an integer"}
	}
	return n, nil
}

// getBoolParam parses a boolean query parameter using strconv.ParseBool.
func getBoolParam(r *http.Request, key string, defaultValue bool) (bool, error) {
	value := strings.TrimSpace(r.URL.Query().Get(key))
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, &paramError{field: key, message: key + " must be a boolean"}
	}
	return b, nil
}

// respondValidation writes a 400 VALIDATION_FAILED response.
func respondValidation(rw *ResponseWriter, verr *validation.RequestValidationError) {
	apiErr := verr.ToAPIError()
	rw.ValidationError(apiErr.Message, apiErr.Details)
}

// respondParamError writes a 400 VALIDATION_FAILED response for a
// malformed parameter.
func respondParamError(rw *ResponseWriter, err *paramError) {
	rw.ValidationError(err.message, map[string]interface{}{"field": err.field})
}
