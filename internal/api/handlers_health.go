// Stylist - Personalized Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/stylist/internal/logging"
)

// readyTimeout bounds the database ping of a readiness check.
const readyTimeout = 2 * time.Second

// HealthStatus is the payload of GET /api/v1/health.
type HealthStatus struct {
	Status            string  `json:"status"`
	Version           string  `json:"version"`
	DatabaseConnected bool    `json:"database_connected"`
	UptimeSeconds     float64 `json:"uptime_seconds"`
	Engine            struct {
		Requests          int64 `json:"requests"`
		Errors            int64 `json:"errors"`
		EarlyTerminations int64 `json:"early_terminations"`
		CachedProfiles    int   `json:"cached_profiles"`
	} `json:"engine"`
}

// Health reports overall status with engine counters.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	dbConnected := h.ping(r.Context()) == nil

	status := HealthStatus{
		Status:            "healthy",
		Version:           h.version,
		DatabaseConnected: dbConnected,
		UptimeSeconds:     time.Since(h.startTime).Seconds(),
	}
	if !dbConnected {
		status.Status = "degraded"
	}
	if h.engine != nil {
		stats := h.engine.Stats()
		status.Engine.Requests = stats.RequestCount
		status.Engine.Errors = stats.ErrorCount
		status.Engine.EarlyTerminations = stats.EarlyTerminations
		status.Engine.CachedProfiles = stats.CachedProfiles
	}

	NewResponseWriter(w, r).Success(status)
}

// HealthLive handles liveness checks. It always answers 200 while the
// process can serve HTTP.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness checks: 200 when the database answers a
// ping, 503 otherwise.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	if err := h.ping(r.Context()); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Readiness check failed")
		rw.ErrorWithDetails(http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Service is not ready",
			map[string]interface{}{"database_connected": false})
		return
	}

	rw.Success(map[string]interface{}{
		"ready":              true,
		"database_connected": true,
	})
}

func (h *Handler) ping(ctx context.Context) error {
	if h.db == nil {
		return errNoDatabase
	}
	ctx, cancel := context.WithTimeout(ctx, readyTimeout)
	defer cancel()
	return h.db.Ping(ctx)
}
