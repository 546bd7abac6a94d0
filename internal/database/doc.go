// Stylist - Personalized Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

/*
Package database provides the DuckDB-backed data layer for Stylist.

DB stores users with their stated preferences, the product and outfit
catalogue, and like history. It answers the three reads the recommendation
engine needs (a user's liked outfits, liked products and a page of candidate
outfits) plus user lookup for the HTTP layer.

Resilient decorates any Source with a token-bucket rate limiter, a circuit
breaker and bounded retry with jitter, so that a failing or overloaded store
degrades recommendations instead of stalling them:

	db, err := database.New(&cfg.Database)
	src := database.NewResilient(db, database.ResilienceConfigFrom(&cfg.Database), logger)
	engine.SetDataProvider(src)

Every query is bounded by database.query_timeout and recorded in the
duckdb_query_duration_seconds histogram.
*/
package database
