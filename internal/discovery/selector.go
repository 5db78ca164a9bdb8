// Indiepick - Indie Game Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiepick

package discovery

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/tomtom215/indiepick/internal/catalog"
	"github.com/tomtom215/indiepick/internal/config"
	"github.com/tomtom215/indiepick/internal/filters"
	"github.com/tomtom215/indiepick/internal/logging"
	"github.com/tomtom215/indiepick/internal/metrics"
	"github.com/tomtom215/indiepick/internal/models"
	"github.com/tomtom215/indiepick/internal/recency"
)

// Options configures a Selector. Zero values fall back to the defaults used
// by DefaultOptions.
type Options struct {
	RecentYearCutoff int
	Platform         int
	MajorPublishers  []string
	Defaults         filters.Defaults

	// Random drives every shuffle and coin flip. Defaults to math/rand/v2.
	Random Random

	// Now supplies the cache-busting timestamp. Defaults to time.Now.
	Now func() time.Time
}

// DefaultOptions returns the stock selection settings.
func DefaultOptions() Options {
	return Options{
		RecentYearCutoff: 2024,
		Platform:         4,
		MajorPublishers:  config.DefaultMajorPublishers,
		Defaults:         filters.Defaults{MinYear: 2015, CapYear: 2025},
		Random:           globalRandom{},
		Now:              time.Now,
	}
}

// OptionsFromConfig builds Options from the loaded configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	opts := DefaultOptions()
	opts.RecentYearCutoff = cfg.Selection.RecentYearCutoff
	opts.Platform = cfg.Catalog.Platform
	opts.MajorPublishers = cfg.Selection.MajorPublishers
	opts.Defaults = filters.DefaultsFromConfig(&cfg.Selection)
	return opts
}

func (o *Options) applyDefaults() {
	def := DefaultOptions()
	if o.RecentYearCutoff == 0 {
		o.RecentYearCutoff = def.RecentYearCutoff
	}
	if o.Platform == 0 {
		o.Platform = def.Platform
	}
	if o.MajorPublishers == nil {
		o.MajorPublishers = def.MajorPublishers
	}
	if o.Defaults == (filters.Defaults{}) {
		o.Defaults = def.Defaults
	}
	if o.Random == nil {
		o.Random = def.Random
	}
	if o.Now == nil {
		o.Now = def.Now
	}
}

// Selector picks one random game for a set of filters.
// It is safe for concurrent use.
type Selector struct {
	catalog catalog.Catalog
	recent  *recency.Tracker
	opts    Options
	rand    Random
	deny    publisherDenylist
}

// NewSelector creates a Selector that queries c and avoids repeats using recent.
func NewSelector(c catalog.Catalog, recent *recency.Tracker, opts Options) *Selector {
	opts.applyDefaults()
	return &Selector{
		catalog: c,
		recent:  recent,
		opts:    opts,
		rand:    opts.Random,
		deny:    newPublisherDenylist(opts.MajorPublishers),
	}
}

// Select returns one game matching f, or ErrNotFound when no candidate
// survives. Catalog failures are returned as *catalog.UpstreamError.
func (s *Selector) Select(ctx context.Context, f *filters.GameFilters) (*models.Game, error) {
	p := newPlan(f, s.opts.Defaults, s.opts.RecentYearCutoff)
	log := logging.Ctx(ctx).With().
		Str("component", "selector").
		Str("window", p.window).
		Str("dates", p.dates.Dates).
		Logger()

	candidates, usedFallback, err := s.candidates(ctx, p)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		metrics.RecordSelection(p.window, metrics.OutcomeNotFound, 0)
		log.Info().Msg("No candidates after primary and fallback queries")
		return nil, ErrNotFound
	}

	if f.IndependentOnly && !p.recent() {
		var stage independenceStage
		candidates, stage = filterIndependent(candidates, s.deny)
		log.Debug().Str("stage", string(stage)).Int("candidates", len(candidates)).Msg("Independence filter applied")
	}
	if len(candidates) == 0 {
		metrics.RecordSelection(p.window, metrics.OutcomeNotFound, 0)
		return nil, ErrNotFound
	}

	shuffle(s.rand, candidates)
	pick := &candidates[0]

	if !s.satisfies(p, pick) {
		valid := filterGames(candidates, func(g *models.Game) bool { return s.satisfies(p, g) })
		if len(valid) > 0 {
			pick = &valid[s.rand.IntN(len(valid))]
		} else {
			log.Debug().Int("game_id", pick.ID).Msg("No candidate matches every bound, keeping best effort pick")
		}
	}

	pick = s.avoidRecent(p, candidates, pick)

	outcome := metrics.OutcomeSelected
	if usedFallback {
		outcome = metrics.OutcomeFallback
	}
	metrics.RecordSelection(p.window, outcome, len(candidates))

	log.Info().
		Int("game_id", pick.ID).
		Str("game", pick.Name).
		Int("candidates", len(candidates)).
		Bool("fallback", usedFallback).
		Msg("Random game selected")

	selected := *pick
	return &selected, nil
}

// candidates runs the primary search and, when it is empty, the fallback.
func (s *Selector) candidates(ctx context.Context, p *plan) (games []models.Game, usedFallback bool, err error) {
	list, err := s.catalog.SearchGames(ctx, s.primaryQuery(p))
	if err != nil {
		return nil, false, fmt.Errorf("primary search: %w", err)
	}
	if len(list.Results) > 0 {
		return list.Results, false, nil
	}

	logging.Ctx(ctx).Debug().Str("window", p.window).Msg("Primary search empty, trying fallback")
	list, err = s.catalog.SearchGames(ctx, s.fallbackQuery(p))
	if err != nil {
		return nil, true, fmt.Errorf("fallback search: %w", err)
	}
	return list.Results, true, nil
}

// satisfies checks the year window and the rating and review floors.
// Ratings are on a 0-5 scale and compared as round(rating*10).
func (s *Selector) satisfies(p *plan, g *models.Game) bool {
	if p.dates.StartYear != 0 {
		year, ok := g.ReleaseYear()
		if !ok || !p.dates.Contains(year) {
			return false
		}
	}
	if floor := p.filters.RatingFloor(); floor > 0 && int(math.Round(g.Rating*10)) < floor {
		return false
	}
	if floor := p.filters.ReviewFloor(); floor > 0 && g.RatingsCount < floor {
		return false
	}
	return true
}

// avoidRecent swaps a recently shown pick for a fresh candidate and records
// the result. Small pools are left alone so a short list can still repeat.
func (s *Selector) avoidRecent(p *plan, candidates []models.Game, pick *models.Game) *models.Game {
	if s.recent == nil || len(candidates) <= s.recent.Capacity() {
		return pick
	}

	bucket := p.bucket()
	if s.recent.Contains(bucket, pick.ID) {
		fresh := filterGames(candidates, func(g *models.Game) bool {
			return !s.recent.Contains(bucket, g.ID)
		})
		if len(fresh) > 0 {
			pick = &fresh[s.rand.IntN(len(fresh))]
			metrics.RecordRecencySwap(p.window)
		}
	}

	s.recent.Record(bucket, pick.ID)
	return pick
}
