// Indiepick - Indie Game Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiepick

/*
Package models defines the data structures shared by the catalog client,
the selector and the HTTP handlers.

Catalog Models:
  - Game: a catalog title with genres, tags, developers and publishers
  - NamedRef: the {id, name, slug} triple used for every label list
  - GameList, GenreList: paged search and genre responses

API Models:
  - Recommendations, SimilarityFactors: recommendations endpoint body
  - ErrorResponse: {"message": ...} error body
  - HealthResponse: probe body

Games are owned by the upstream catalog. They are decoded, filtered and
forwarded but never mutated or persisted.
*/
package models
