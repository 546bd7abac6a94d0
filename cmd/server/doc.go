// Stylist - Personalized Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

/*
Package main is the entry point for the stylist recommendation server.

# Startup

 1. Configuration: koanf v2 (defaults, optional config.yaml, environment)
 2. Logging: zerolog, JSON or console
 3. Database: DuckDB, optionally seeded with the demo catalogue
 4. Read path: rate limiter, retry and circuit breaker around DuckDB reads
 5. Recommendation engine with its profile cache
 6. Supervisor tree: cache janitor and HTTP server

# Supervisor Tree

	RootSupervisor ("stylist")
	├── MaintenanceSupervisor ("maintenance-layer")
	│   └── profile-cache-janitor
	└── APISupervisor ("api-layer")
	    └── api-server

# Common Environment Variables

	HTTP_PORT=8080
	LOG_LEVEL=info
	LOG_FORMAT=json
	DUCKDB_PATH=/data/stylist.duckdb
	SEED_DEMO_DATA=true
	RECOMMEND_PROFILE_CACHE_TTL=5m
	CORS_ORIGINS=https://app.example.com

See internal/config for the full list.

# Shutdown

SIGINT or SIGTERM cancels the root context. The HTTP server drains for up to
the supervisor's shutdown timeout, then DuckDB is closed.
*/
package main
