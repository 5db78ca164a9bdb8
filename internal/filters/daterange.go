// Indiepick - Indie Game Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiepick

package filters

import (
	"fmt"

	"github.com/tomtom215/indiepick/internal/config"
	"github.com/tomtom215/indiepick/internal/validation"
)

// Defaults supplies the year bounds used when a request leaves them out.
type Defaults struct {
	MinYear int // floor year when minReleaseYear is absent
	CapYear int // default and ceiling for maxReleaseYear
}

// DefaultsFromConfig reads the selection year bounds.
func DefaultsFromConfig(cfg *config.SelectionConfig) Defaults {
	return Defaults{MinYear: cfg.DefaultMinYear, CapYear: cfg.CapYear}
}

// Range returns the default "YYYY-01-01,YYYY-12-31" range.
func (d Defaults) Range() string {
	return yearRange(d.MinYear, d.CapYear)
}

// DateRange is the effective release window of a request.
type DateRange struct {
	Dates     string // catalog dates parameter
	StartYear int    // selected year; 0 when not derivable
	EndYear   int    // upper year bound; 0 when not derivable
}

// DateRange resolves the effective window: dates verbatim when present,
// otherwise the year bounds with defaults applied and the max clamped to
// the cap year.
func (f *GameFilters) DateRange(d Defaults) DateRange {
	if f.Dates != "" {
		start, end, err := validation.ParseDateRange(f.Dates)
		if err != nil {
			return DateRange{Dates: f.Dates}
		}
		return DateRange{Dates: f.Dates, StartYear: start.Year(), EndYear: end.Year()}
	}

	minYear := d.MinYear
	if f.MinReleaseYear != nil && *f.MinReleaseYear > 0 {
		minYear = *f.MinReleaseYear
	}
	maxYear := d.CapYear
	if f.MaxReleaseYear != nil && *f.MaxReleaseYear > 0 {
		maxYear = min(*f.MaxReleaseYear, d.CapYear)
	}

	return DateRange{Dates: yearRange(minYear, maxYear), StartYear: minYear, EndYear: maxYear}
}

// Contains reports whether year lies within the window. An underivable
// window contains every year.
func (r DateRange) Contains(year int) bool {
	if r.StartYear == 0 {
		return true
	}
	return year >= r.StartYear && (r.EndYear == 0 || year <= r.EndYear)
}

func yearRange(from, to int) string {
	return fmt.Sprintf("%04d-01-01,%04d-12-31", from, to)
}
