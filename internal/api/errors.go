// Indiepick - Indie Game Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiepick

package api

// User-facing error messages. Upstream causes are logged, never returned.
const (
	MsgNoGamesFound          = "No games found matching your criteria. Try adjusting your filters."
	MsgRandomGameFailed      = "Failed to fetch random game. Please try again."
	MsgGameDetailsFailed     = "Failed to fetch game details"
	MsgRecommendationsFailed = "Failed to fetch recommendations"
	MsgGenresFailed          = "Failed to fetch genres"
	MsgInvalidGameID         = "Game ID must be a positive integer"
	MsgTooManyRequests       = "Too many requests. Please slow down."
)
