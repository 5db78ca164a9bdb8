// Indiepick - Indie Game Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiepick

/*
Package api exposes the discovery service over HTTP using chi.

# Endpoints

	GET /api/games/random                  one random indie game for the query filters
	GET /api/games/{id}                    upstream game details, forwarded verbatim
	GET /api/games/{id}/recommendations    up to four similar games and the factors used
	GET /api/genres                        the catalog genre list as a bare array
	GET /api/health/live                   liveness
	GET /api/health/ready                  readiness, 503 while the catalog breaker is open
	GET /metrics                           Prometheus exposition

# Errors

Every failure has the body {"message": "..."}. Filter validation failures
answer 400 and add code and details naming the offending field. An empty
candidate pool answers 404. Upstream failures answer 500 with a fixed
message per endpoint; the cause is only logged.

# Middleware

Request IDs, real client IP, panic recovery and CORS wrap everything. API
routes are rate limited per IP with go-chi/httprate, carry security headers,
are instrumented for Prometheus by route pattern and gzip large bodies.
*/
package api
