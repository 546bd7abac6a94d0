// Stylist - Personalized Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const defaultDrainTimeout = 10 * time.Second

// HTTPServer is the part of *http.Server the service drives.
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// APIServer keeps the recommendation API listening for as long as the
// supervisor context lives, then drains in-flight requests.
type APIServer struct {
	server       HTTPServer
	addr         string
	drainTimeout time.Duration
	logger       zerolog.Logger
}

// NewAPIServer wraps server. A non-positive drainTimeout becomes 10s.
//
//nolint:gocritic // zerolog.Logger is passed by value throughout
func NewAPIServer(server HTTPServer, addr string, drainTimeout time.Duration, logger zerolog.Logger) *APIServer {
	if drainTimeout <= 0 {
		drainTimeout = defaultDrainTimeout
	}
	return &APIServer{
		server:       server,
		addr:         addr,
		drainTimeout: drainTimeout,
		logger:       logger.With().Str("service", "api-server").Str("addr", addr).Logger(),
	}
}

// Serve implements suture.Service.
func (s *APIServer) Serve(ctx context.Context) error {
	exited := s.listen()
	s.logger.Info().Msg("API server listening")

	select {
	case err, failed := <-exited:
		if failed {
			return fmt.Errorf("listen on %s: %w", s.addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	if err := s.drain(); err != nil {
		return err
	}
	<-exited
	return ctx.Err()
}

// listen starts ListenAndServe. The returned channel yields the failure, if
// any, and is closed once the listener has returned.
func (s *APIServer) listen() <-chan error {
	exited := make(chan error, 1)
	go func() {
		defer close(exited)
		if err := s.server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) && err != nil {
			exited <- err
		}
	}()
	return exited
}

// drain runs Shutdown on a fresh context since the supervisor's is gone.
func (s *APIServer) drain() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.drainTimeout)
	defer cancel()

	s.logger.Info().Dur("timeout", s.drainTimeout).Msg("draining API server")
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("drain %s: %w", s.addr, err)
	}
	return nil
}

func (s *APIServer) String() string { return "api-server" }
