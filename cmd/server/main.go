// Stylist - Personalized Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/tomtom215/stylist/internal/api"
	"github.com/tomtom215/stylist/internal/config"
	"github.com/tomtom215/stylist/internal/database"
	"github.com/tomtom215/stylist/internal/logging"
	"github.com/tomtom215/stylist/internal/metrics"
	"github.com/tomtom215/stylist/internal/supervisor"
	"github.com/tomtom215/stylist/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
		Output: os.Stderr,
	})

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Msg("Starting stylist")
	metrics.AppInfo.WithLabelValues(version, runtime.Version()).Set(1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	if cfg.Database.SeedDemoData {
		logging.Info().Msg("Demo data seeding enabled (SEED_DEMO_DATA=true)")
		if err := db.SeedDemoData(ctx); err != nil {
			logging.Error().Err(err).Msg("Failed to seed demo data")
			return
		}
	}

	source := database.NewResilient(db, database.ResilienceConfigFrom(&cfg.Database), logging.WithComponent("database"))

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Error().Err(err).Msg("Failed to create supervisor tree")
		return
	}

	engine, err := initRecommend(cfg, source, tree, logging.WithComponent("recommend"))
	if err != nil {
		logging.Error().Err(err).Msg("Failed to initialize recommendation engine")
		return
	}

	warnAboutSecurityConfig(cfg)

	handler := api.NewHandler(engine, source, db, version)
	handler.SetRequestTimeout(cfg.Server.Timeout)
	router := api.NewRouter(handler, api.ChiMiddlewareConfigFrom(&cfg.Security))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}
	tree.AddAPIService(services.NewAPIServer(server, server.Addr, tree.ShutdownTimeout(), logging.WithComponent("api")))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		// A second signal falls back to the default handler and kills the process.
		signal.Stop(sigCh)
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	errCh := tree.ServeBackground(ctx)

	// Each layer may take ShutdownTimeout, then the root waits on them.
	if err := awaitTree(ctx, errCh, 2*tree.ShutdownTimeout()); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}
	cancel()

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Stylist stopped")
}

// errShutdownTimeout is returned by awaitTree when the tree outlives its
// shutdown budget.
var errShutdownTimeout = errors.New("supervisor tree did not stop in time")

// awaitTree waits for the single result ServeBackground delivers. The
// channel is never closed, so it is read at most once. After ctx ends the
// wait is bounded by timeout.
func awaitTree(ctx context.Context, errCh <-chan error, timeout time.Duration) error {
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish")
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case err := <-errCh:
		return err
	case <-timer.C:
		return errShutdownTimeout
	}
}

// warnAboutSecurityConfig logs settings that are fine for development but
// risky in production.
func warnAboutSecurityConfig(cfg *config.Config) {
	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}
	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().
			Strs("origins", cfg.Security.CORSOrigins).
			Msg("CORS allows any origin in production; set CORS_ORIGINS to specific origins")
	}
	if cfg.Database.Path == "" || cfg.Database.Path == ":memory:" {
		logging.Warn().Msg("DuckDB is running in memory; likes and catalogue changes are lost on restart")
	}
}
