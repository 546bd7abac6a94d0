// Stylist - Personalized Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

/*
Package middleware provides HTTP middleware for request IDs and Prometheus
request metrics.

Both are standard func(http.Handler) http.Handler middleware and plug into
the chi router:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)

RequestID accepts a well-formed upstream X-Request-ID or generates a UUID,
echoes it in the response and stores it in the request context through the
logging package.

PrometheusMetrics labels requests with the matched chi route pattern
(/api/v1/recommendations/user/{userID}) instead of the raw path, so user IDs
never become label values.
*/
package middleware
