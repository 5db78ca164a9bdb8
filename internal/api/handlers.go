// Indiepick - Indie Game Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiepick

package api

import (
	"context"
	"time"

	"github.com/tomtom215/indiepick/internal/catalog"
	"github.com/tomtom215/indiepick/internal/filters"
	"github.com/tomtom215/indiepick/internal/models"
)

// DefaultRequestTimeout bounds the upstream work done for a single request.
const DefaultRequestTimeout = 10 * time.Second

// GameSelector picks one game matching normalized filters.
type GameSelector interface {
	Select(ctx context.Context, f *filters.GameFilters) (*models.Game, error)
}

// Recommender builds similar-game recommendations for a game ID.
type Recommender interface {
	Recommend(ctx context.Context, id int) (*models.Recommendations, error)
}

// BreakerState reports the upstream circuit breaker state for readiness.
type BreakerState interface {
	StateString() string
}

// Handler handles all HTTP API requests
type Handler struct {
	catalog   catalog.Catalog
	selector  GameSelector
	composer  Recommender
	defaults  filters.Defaults
	breaker   BreakerState
	timeout   time.Duration
	startTime time.Time
}

// NewHandler creates a new Handler instance
func NewHandler(c catalog.Catalog, selector GameSelector, composer Recommender, defaults filters.Defaults) *Handler {
	return &Handler{
		catalog:   c,
		selector:  selector,
		composer:  composer,
		defaults:  defaults,
		timeout:   DefaultRequestTimeout,
		startTime: time.Now(),
	}
}

// SetCircuitBreaker wires the breaker whose state drives readiness.
func (h *Handler) SetCircuitBreaker(b BreakerState) {
	h.breaker = b
}

// SetRequestTimeout overrides DefaultRequestTimeout. Non-positive values are ignored.
func (h *Handler) SetRequestTimeout(d time.Duration) {
	if d > 0 {
		h.timeout = d
	}
}

func (h *Handler) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, h.timeout)
}
