// Stylist - Personalized Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package api

import (
	"context"
	"errors"
	"net/http"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/stylist/internal/database"
	"github.com/tomtom215/stylist/internal/logging"
)

var errNoDatabase = errors.New("database not configured")

// respondUserLookupError maps a failed user lookup onto the envelope.
func respondUserLookupError(rw *ResponseWriter, r *http.Request, userID string, err error) {
	switch {
	case errors.Is(err, database.ErrUserNotFound):
		rw.NotFound("User not found")
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		logging.Ctx(r.Context()).Warn().Err(err).Str("user_id", sanitizeLogValue(userID)).Msg("User lookup rejected by circuit breaker")
		rw.ServiceUnavailable("Service temporarily unavailable")
	case errors.Is(err, context.DeadlineExceeded):
		rw.ServiceUnavailable("Request timed out")
	case errors.Is(err, context.Canceled):
		// client went away; nothing useful to send
		logging.Ctx(r.Context()).Debug().Msg("Client cancelled request")
	default:
		rw.DatabaseError(err)
	}
}
