// Indiepick - Indie Game Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiepick

/*
Package catalog provides access to the RAWG video game catalog.

The Catalog interface has three implementations that are stacked as
decorators at startup:

	Client                  HTTP calls, API key, outbound rate limiting
	CircuitBreakerClient    gobreaker protection around Client
	CachedClient            TTL caches for details and genres, request coalescing

Game searches are never cached because random selection depends on
randomized pages. Game details are cached as the raw upstream body so the
detail endpoint can return fields the Game model does not declare.

# Errors

Every failure is an *UpstreamError. Use IsNotFound to detect a 404 from a
detail lookup. The API key travels as a query parameter and is stripped from
transport errors before they are returned.

# Testing

The catalogtest subpackage provides an in-memory Fake and an httptest Server
that speaks the RAWG wire format.
*/
package catalog
