// Stylist - Personalized Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

/*
Package supervisor runs the long-lived parts of the stylist server under a
suture v4 supervisor tree.

# Layout

	RootSupervisor ("stylist")
	├── MaintenanceSupervisor ("maintenance-layer")
	│   └── CacheJanitor
	└── APISupervisor ("api-layer")
	    └── APIServer

Each layer counts failures independently. A janitor that panics or returns
an error is restarted with backoff while the API layer keeps serving.

# Configuration

TreeConfig maps directly onto suture.Spec. Zero values take suture's
defaults: 5 failures, 30s decay, 15s backoff and a 10s shutdown timeout.

# Logging

Supervisor events (start, stop, restart, backoff) are written through
sutureslog. main passes a *slog.Logger from logging.NewSlogLogger so the
events land in the same zerolog stream as everything else.

# Not Supervised

DuckDB is an embedded library and is opened and closed by main. Read
failures are handled by the retry and circuit breaker wrapper in the
database package.

# Shutdown

Canceling the context passed to Serve stops every layer. Services that do
not return within ShutdownTimeout are listed by UnstoppedServiceReport.
*/
package supervisor
