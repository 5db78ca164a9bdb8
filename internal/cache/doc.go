// Indiepick - Indie Game Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiepick

/*
Package cache provides a thread-safe, generic in-memory cache with TTL support.

The catalog decorator uses it for game details, raw detail bodies and the
genre list. Search results are never cached.

# Overview

  - Thread-safe concurrent access (sync.RWMutex)
  - Per-entry expiration, checked lazily on Get
  - Background cleanup every TTL (capped at 5 minutes), stopped by Close
  - Hit, miss, eviction and size statistics, mirrored to Prometheus
    under the cache's name

# Usage

	genres := cache.New[[]models.Genre]("genres", 10*time.Minute)
	defer genres.Close()

	if list, ok := genres.Get("all"); ok {
	    return list, nil
	}
	list, err := fetch()
	if err == nil {
	    genres.Set("all", list)
	}

The cache only holds what fits in process memory and is reset on restart.
*/
package cache
