// Stylist - Personalized Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package api

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/stylist/internal/logging"
)

// APIResponse is the envelope every endpoint answers with. Exactly one of
// Data and Error is set.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *APIMeta    `json:"meta,omitempty"`
}

// APIError is the machine-readable half of a failed response.
type APIError struct {
	Code      string      `json:"code"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

type APIMeta struct {
	RequestID  string    `json:"request_id,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
	DurationMs int64     `json:"duration_ms"`
}

const (
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	ErrCodeTooManyRequests    = "TOO_MANY_REQUESTS"
	ErrCodeInternalError      = "INTERNAL_ERROR"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrCodeValidationFailed   = "VALIDATION_FAILED"
	ErrCodeDatabaseError      = "DATABASE_ERROR"
)

// ResponseWriter wraps one request's http.ResponseWriter and stamps every
// envelope with the request ID and elapsed time.
type ResponseWriter struct {
	w       http.ResponseWriter
	r       *http.Request
	started time.Time
}

func NewResponseWriter(w http.ResponseWriter, r *http.Request) *ResponseWriter {
	return &ResponseWriter{w: w, r: r, started: time.Now()}
}

// Success writes data with status 200.
func (rw *ResponseWriter) Success(data interface{}) {
	rw.send(http.StatusOK, &APIResponse{Success: true, Data: data})
}

// ErrorWithDetails writes a failed envelope. details may be nil.
func (rw *ResponseWriter) ErrorWithDetails(status int, code, message string, details interface{}) {
	rw.send(status, &APIResponse{
		Error: &APIError{Code: code, Message: message, Details: details},
	})
}

func (rw *ResponseWriter) NotFound(message string) {
	rw.ErrorWithDetails(http.StatusNotFound, ErrCodeNotFound, message, nil)
}

func (rw *ResponseWriter) MethodNotAllowed() {
	rw.ErrorWithDetails(http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "Method not allowed", nil)
}

func (rw *ResponseWriter) TooManyRequests(message string) {
	rw.ErrorWithDetails(http.StatusTooManyRequests, ErrCodeTooManyRequests, message, nil)
}

func (rw *ResponseWriter) InternalError(message string) {
	rw.ErrorWithDetails(http.StatusInternalServerError, ErrCodeInternalError, message, nil)
}

func (rw *ResponseWriter) ServiceUnavailable(message string) {
	rw.ErrorWithDetails(http.StatusServiceUnavailable, ErrCodeServiceUnavailable, message, nil)
}

// ValidationError answers 400 with per-field details.
func (rw *ResponseWriter) ValidationError(message string, details interface{}) {
	rw.ErrorWithDetails(http.StatusBadRequest, ErrCodeValidationFailed, message, details)
}

// DatabaseError logs err and answers 500 without leaking it to the client.
func (rw *ResponseWriter) DatabaseError(err error) {
	logging.Ctx(rw.r.Context()).Error().Err(err).Msg("Database error")
	rw.ErrorWithDetails(http.StatusInternalServerError, ErrCodeDatabaseError, "A database error occurred", nil)
}

func (rw *ResponseWriter) send(status int, resp *APIResponse) {
	requestID := logging.RequestIDFromContext(rw.r.Context())
	resp.Meta = &APIMeta{
		RequestID:  requestID,
		Timestamp:  time.Now().UTC(),
		DurationMs: time.Since(rw.started).Milliseconds(),
	}
	if resp.Error != nil {
		resp.Error.RequestID = requestID
	}

	rw.w.Header().Set("Content-Type", "application/json; charset=utf-8")
	rw.w.WriteHeader(status)
	if err := json.NewEncoder(rw.w).Encode(resp); err != nil {
		logging.Ctx(rw.r.Context()).Error().Err(err).Msg("Failed to encode JSON response")
	}
}
