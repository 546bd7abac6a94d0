// Stylist - Personalized Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

/*
Package api provides the HTTP surface of Stylist.

Routes (chi):

	GET  /api/v1/health                                        status and engine counters
	GET  /api/v1/health/live                                   liveness check, always 200
	GET  /api/v1/health/ready                                  200 when the database answers, else 503
	GET  /api/v1/recommendations/user/{userID}                 recommendations from query parameters
	POST /api/v1/recommendations/user/{userID}                 recommendations from a JSON body
	GET  /api/v1/recommendations/user/{userID}/profile-strength
	GET  /metrics                                              Prometheus exposition

Recommendation parameters: limit (1-50, default 20), exclude_liked (default
true), style_filter (comma-separated styles), include_reasoning (default
true). With include_reasoning=false each recommendation has an empty
reasoning list and no match_factors.

Every JSON response uses one envelope:

	{
	  "success": true,
	  "data": {...},
	  "error": {"code": "NOT_FOUND", "message": "...", "request_id": "..."},
	  "meta": {"request_id": "...", "timestamp": "...", "duration_ms": 3}
	}

Error codes: BAD_REQUEST, VALIDATION_FAILED, NOT_FOUND, METHOD_NOT_ALLOWED,
TOO_MANY_REQUESTS, INTERNAL_ERROR, DATABASE_ERROR, SERVICE_UNAVAILABLE.

Unknown users answer 404. A failing data layer inside the engine does not
fail the request: the engine returns an empty, degraded response instead.
*/
package api
