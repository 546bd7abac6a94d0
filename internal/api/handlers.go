// Stylist - Personalized Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package api

import (
	"context"
	"time"

	"github.com/tomtom215/stylist/internal/models"
	"github.com/tomtom215/stylist/internal/recommend"
)

// defaultRequestTimeout bounds a single recommendation request.
const defaultRequestTimeout = 30 * time.Second

// UserSource looks up users and their stated preferences.
type UserSource interface {
	GetUser(ctx context.Context, id string) (*models.User, error)
}

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Recommender produces recommendations and strength reports.
// *recommend.Engine implements it.
type Recommender interface {
	Recommend(ctx context.Context, user *models.User, req recommend.Request) (*recommend.Response, error)
	StrengthReport(ctx context.Context, user *models.User) (*recommend.StrengthReport, error)
	Stats() recommend.Stats
}

// Handler holds the dependencies of all HTTP handlers.
type Handler struct {
	engine         Recommender
	users          UserSource
	db             Pinger
	version        string
	startTime      time.Time
	requestTimeout time.Duration
}

// NewHandler creates a handler. db may be nil, in which case readiness
// always fails.
func NewHandler(engine Recommender, users UserSource, db Pinger, version string) *Handler {
	return &Handler{
		engine:         engine,
		users:          users,
		db:             db,
		version:        version,
		startTime:      time.Now(),
		requestTimeout: defaultRequestTimeout,
	}
}

// SetRequestTimeout overrides the per-request timeout.
func (h *Handler) SetRequestTimeout(d time.Duration) {
	if d > 0 {
		h.requestTimeout = d
	}
}
