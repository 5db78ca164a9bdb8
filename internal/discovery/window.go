// Indiepick - Indie Game Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiepick

package discovery

import (
	"fmt"
	"strconv"

	"github.com/tomtom215/indiepick/internal/catalog"
	"github.com/tomtom215/indiepick/internal/filters"
	"github.com/tomtom215/indiepick/internal/recency"
)

// Window labels, also used as the window metric label
const (
	WindowRecent  = "recent"
	WindowCatalog = "catalog"
)

const (
	searchPageSize      = 100
	recentPages         = 5
	recentOffsets       = 20
	recentPageSize      = 20
	defaultRatingFloor  = 30
	defaultReviewFloor  = 100
	fallbackRatingFloor = 1
	fallbackReviewFloor = 1
)

// plan is a resolved selection request.
type plan struct {
	filters *filters.GameFilters
	window  string
	dates   filters.DateRange
}

func (p *plan) recent() bool {
	return p.window == WindowRecent
}

// bucket returns the recency bucket for this request.
func (p *plan) bucket() string {
	return recency.BucketKey(p.dates.StartYear)
}

// newPlan resolves the date range and picks the window. Windows starting at
// or after cutoff are recent; a range without a derivable year is treated as
// the catalog window.
func newPlan(f *filters.GameFilters, d filters.Defaults, cutoff int) *plan {
	dates := f.DateRange(d)
	window := WindowCatalog
	if dates.StartYear != 0 && dates.StartYear >= cutoff {
		window = WindowRecent
	}
	return &plan{filters: f, window: window, dates: dates}
}

// primaryQuery builds the first search of a selection.
func (s *Selector) primaryQuery(p *plan) catalog.Query {
	q := catalog.Query{
		PageSize:  searchPageSize,
		Ordering:  catalog.OrderAdded,
		Dates:     p.dates.Dates,
		Platforms: []int{s.opts.Platform},
		Genres:    append([]string{filters.IndieGenre}, p.filters.OtherGenres()...),
	}

	if !p.recent() {
		q.Metacritic = scoreRange(orDefault(p.filters.RatingFloor(), defaultRatingFloor))
		q.MinRatingsCount = orDefault(p.filters.ReviewFloor(), defaultReviewFloor)
		return q
	}

	// Recent titles have few ratings, so vary the page instead of applying floors
	page := s.rand.IntN(recentPages) + 1
	q.Page = page
	if offset := s.rand.IntN(recentOffsets); offset > 0 {
		q.PageSize = recentPageSize
		q.Page = (page-1)*recentPages + offset
	}
	if coinFlip(s.rand) {
		q.Ordering = catalog.OrderReleased
	}
	q.CacheBuster = s.cacheBuster()
	return q
}

// fallbackQuery drops genres and relaxes the floors to their minimum.
func (s *Selector) fallbackQuery(p *plan) catalog.Query {
	q := catalog.Query{
		PageSize:    searchPageSize,
		Ordering:    catalog.OrderAdded,
		Dates:       p.dates.Dates,
		Platforms:   []int{s.opts.Platform},
		CacheBuster: s.cacheBuster(),
	}
	if !p.recent() {
		q.Metacritic = scoreRange(fallbackRatingFloor)
		q.MinRatingsCount = fallbackReviewFloor
	}
	return q
}

func (s *Selector) cacheBuster() string {
	return strconv.FormatInt(s.opts.Now().UnixMilli(), 10)
}

func scoreRange(floor int) string {
	return fmt.Sprintf("%d,100", floor)
}

func orDefault(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}
