// Indiepick - Indie Game Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiepick

/*
Package middleware provides HTTP middleware components for the API.

Key Components:

  - RequestID: request ID propagation into the logging context
  - PrometheusMetrics: request count, latency and in-flight gauge keyed by chi route pattern
  - Compression: gzip encoding for response bodies of at least 1KB

All middleware uses the http.HandlerFunc signature. The api package adapts
them to chi with its chiMiddleware helper:

	r.Use(chiMiddleware(middleware.PrometheusMetrics))
	r.Use(chiMiddleware(middleware.Compression))

PrometheusMetrics reads the route pattern after the handler returns, so it
must be installed on a chi router (or inside r.Route) for the pattern to be
populated. Requests outside a chi router are labeled with their raw path.
*/
package middleware
