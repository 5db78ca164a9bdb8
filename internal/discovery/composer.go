// Indiepick - Indie Game Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiepick

package discovery

import (
	"context"
	"fmt"

	"github.com/tomtom215/indiepick/internal/catalog"
	"github.com/tomtom215/indiepick/internal/logging"
	"github.com/tomtom215/indiepick/internal/models"
)

// Recommendation query constants
const (
	RecommendationLimit      = 4
	RecommendationDates      = "2015-01-01,2025-12-31"
	RecommendationMetacritic = "70,100"
	maxRecommendationTags    = 3
)

// Composer finds games similar to a given game.
type Composer struct {
	catalog  catalog.Catalog
	platform int
}

// NewComposer creates a Composer that searches platform on c.
func NewComposer(c catalog.Catalog, platform int) *Composer {
	if platform == 0 {
		platform = DefaultOptions().Platform
	}
	return &Composer{catalog: c, platform: platform}
}

// Recommend fetches game id and searches for well-rated titles sharing its
// genres, first three tags and developers. The game itself is excluded.
func (c *Composer) Recommend(ctx context.Context, id int) (*models.Recommendations, error) {
	game, err := c.catalog.GetGame(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch game %d: %w", id, err)
	}

	tags := game.Tags
	if len(tags) > maxRecommendationTags {
		tags = tags[:maxRecommendationTags]
	}

	q := catalog.Query{
		PageSize:     RecommendationLimit,
		Ordering:     catalog.OrderRating,
		Dates:        RecommendationDates,
		Platforms:    []int{c.platform},
		Metacritic:   RecommendationMetacritic,
		Genres:       catalog.IntsToStrings(models.IDs(game.Genres)),
		Tags:         catalog.IntsToStrings(models.IDs(tags)),
		Developers:   catalog.IntsToStrings(models.IDs(game.Developers)),
		ExcludeGames: []int{id},
	}

	list, err := c.catalog.SearchGames(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("search similar to %d: %w", id, err)
	}

	results := list.Results
	if results == nil {
		results = []models.Game{}
	}

	logging.Ctx(ctx).Debug().
		Int("game_id", id).
		Int("results", len(results)).
		Msg("Recommendations composed")

	return &models.Recommendations{
		Results: results,
		SimilarityFactors: models.SimilarityFactors{
			Genres:     models.Names(game.Genres),
			Tags:       models.Names(tags),
			Developers: models.Names(game.Developers),
		},
	}, nil
}
