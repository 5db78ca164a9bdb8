// Indiepick - Indie Game Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiepick

package catalog

import (
	"context"

	"github.com/tomtom215/indiepick/internal/models"
)

// Catalog defines the upstream game catalog operations.
// Client, CircuitBreakerClient and CachedClient all implement it, so the
// decorators can be stacked in any order.
type Catalog interface {
	// SearchGames runs a filtered game search.
	SearchGames(ctx context.Context, q Query) (*models.GameList, error)

	// GetGame fetches and decodes a single game.
	GetGame(ctx context.Context, id int) (*models.Game, error)

	// GetGameRaw fetches a single game and returns the upstream JSON body unchanged.
	GetGameRaw(ctx context.Context, id int) ([]byte, error)

	// ListGenres fetches the catalog genre list.
	ListGenres(ctx context.Context) ([]models.Genre, error)
}

// Operation names used in errors and metrics
const (
	OpSearchGames = "search_games"
	OpGetGame     = "get_game"
	OpListGenres  = "list_genres"
)
