// Indiepick - Indie Game Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiepick

package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/indiepick/internal/discovery"
	"github.com/tomtom215/indiepick/internal/filters"
	"github.com/tomtom215/indiepick/internal/models"
)

// RandomGame handles GET /api/games/random.
//
// Query parameters: genres, minRating, minReviews, minReleaseYear,
// maxReleaseYear, independentOnly, dates. Empty values count as absent.
func (h *Handler) RandomGame(w http.ResponseWriter, r *http.Request) {
	f, err := filters.Normalize(r.Context(), filters.FromQuery(r.URL.Query()), h.defaults)
	if err != nil {
		var ve *filters.ValidationError
		if errors.As(err, &ve) {
			apiErr := ve.Err.ToAPIError()
			respondJSON(w, http.StatusBadRequest, &models.ErrorResponse{
				Message: apiErr.Message,
				Code:    apiErr.Code,
				Details: apiErr.Details,
			})
			return
		}
		respondError(w, r, http.StatusInternalServerError, MsgRandomGameFailed, err)
		return
	}

	ctx, cancel := h.requestContext(r.Context())
	defer cancel()

	game, err := h.selector.Select(ctx, f)
	if errors.Is(err, discovery.ErrNotFound) {
		respondJSON(w, http.StatusNotFound, &models.ErrorResponse{Message: MsgNoGamesFound})
		return
	}
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, MsgRandomGameFailed, err)
		return
	}

	// Every call is a fresh draw.
	w.Header().Set("Cache-Control", "no-store")
	respondJSON(w, http.StatusOK, game)
}

// GameDetails handles GET /api/games/{id}. The upstream body is forwarded
// unchanged.
func (h *Handler) GameDetails(w http.ResponseWriter, r *http.Request) {
	id, ok := gameID(w, r)
	if !ok {
		return
	}

	ctx, cancel := h.requestContext(r.Context())
	defer cancel()

	body, err := h.catalog.GetGameRaw(ctx, id)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, MsgGameDetailsFailed, err)
		return
	}

	respondRawJSON(w, http.StatusOK, body)
}

// Recommendations handles GET /api/games/{id}/recommendations.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	id, ok := gameID(w, r)
	if !ok {
		return
	}

	ctx, cancel := h.requestContext(r.Context())
	defer cancel()

	recs, err := h.composer.Recommend(ctx, id)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, MsgRecommendationsFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, recs)
}

// Genres handles GET /api/genres and returns the bare genre array.
func (h *Handler) Genres(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r.Context())
	defer cancel()

	genres, err := h.catalog.ListGenres(ctx)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, MsgGenresFailed, err)
		return
	}
	if genres == nil {
		genres = []models.Genre{}
	}

	respondJSON(w, http.StatusOK, genres)
}

// gameID parses the {id} path parameter, writing a 400 on failure.
func gameID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		respondJSON(w, http.StatusBadRequest, &models.ErrorResponse{
			Message: MsgInvalidGameID,
			Code:    "VALIDATION_ERROR",
			Details: map[string]interface{}{"field": "id", "value": sanitizeLogValue(raw)},
		})
		return 0, false
	}
	return id, true
}
