// Indiepick - Indie Game Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiepick

/*
Package filters turns random game query parameters into a canonical GameFilters.

Parsing rules:
  - genres: a JSON array (["puzzle","indie"]) or a comma-separated list.
    Values are lowercased, trimmed and deduplicated. "indie" is appended
    when missing.
  - minRating 0-100, minReviews >= 0, minReleaseYear and maxReleaseYear
    1990-2030. Non-numeric values fail validation.
  - independentOnly: absent means true, otherwise only "true" is true.
  - dates: "YYYY-MM-DD,YYYY-MM-DD". A malformed value is replaced by the
    default range and logged.

Normalize is idempotent: Normalize(f.Raw()) returns f for any normalized f.
*/
package filters
