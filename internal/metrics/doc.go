// Indiepick - Indie Game Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiepick

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto and
exposed by the API router at /metrics.

# Available Metrics

API Metrics:
  - api_requests_total: Requests by method, route pattern and status code
  - api_request_duration_seconds: Request latency by method and route pattern
  - api_active_requests: In-flight requests
  - api_rate_limit_hits_total: Requests rejected by the inbound limiter

Catalog Metrics:
  - catalog_requests_total: RAWG calls by operation and status
  - catalog_request_duration_seconds: RAWG call latency
  - catalog_rate_limit_wait_seconds: Time blocked on the outbound limiter

Cache Metrics:
  - cache_hits_total, cache_misses_total, cache_entries, cache_evictions_total
    Labels: cache_type (game_raw, genres)

Circuit Breaker Metrics:
  - circuit_breaker_state: 0=closed, 1=half-open, 2=open
  - circuit_breaker_requests_total: Labels name, result
  - circuit_breaker_consecutive_failures
  - circuit_breaker_state_transitions_total

Selection Metrics:
  - selection_outcomes_total: Labels window (recent, catalog), outcome
  - selection_candidates: Candidates left after filtering
  - recency_buckets: Year buckets held by the recency tracker

# Endpoint Labels

Middleware records the chi route pattern (for example /api/games/{id}) rather
than the raw path so that label cardinality stays bounded.
*/
package metrics
