// Indiepick - Indie Game Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiepick

package filters

import (
	"context"
	"strconv"
	"strings"

	"github.com/tomtom215/indiepick/internal/logging"
	"github.com/tomtom215/indiepick/internal/validation"
)

// Normalize validates raw and returns its canonical GameFilters.
//
// A malformed dates value does not fail the request: it is replaced by the
// default range from d and a warning is logged. Every other invalid field
// fails with *ValidationError.
func Normalize(ctx context.Context, raw RawFilters, d Defaults) (*GameFilters, error) {
	f := &GameFilters{IndependentOnly: true}

	genres, err := parseGenres(raw.Genres)
	if err != nil {
		return nil, &ValidationError{Err: validation.NewFieldError(ParamGenres, "genres", raw.Genres,
			"genres must be a JSON array of strings or a comma-separated list")}
	}
	f.Genres = canonicalGenres(genres)

	fields := []struct {
		name  string
		value string
		dst   **int
	}{
		{ParamMinRating, raw.MinRating, &f.MinRating},
		{ParamMinReviews, raw.MinReviews, &f.MinReviews},
		{ParamMinReleaseYear, raw.MinReleaseYear, &f.MinReleaseYear},
		{ParamMaxReleaseYear, raw.MaxReleaseYear, &f.MaxReleaseYear},
	}
	for _, fld := range fields {
		n, set, err := parseOptionalInt(fld.value)
		if err != nil {
			return nil, &ValidationError{Err: validation.NewFieldError(fld.name, "number", fld.value,
				fld.name+" must be a whole number")}
		}
		if set {
			*fld.dst = &n
		}
	}

	// Only the literal "true" enables the filter once the parameter is present
	if raw.IndependentOnly != "" {
		f.IndependentOnly = raw.IndependentOnly == "true"
	}

	if dates := strings.TrimSpace(raw.Dates); dates != "" {
		if _, _, err := validation.ParseDateRange(dates); err != nil {
			fallback := d.Range()
			logging.Ctx(ctx).Warn().
				Err(err).
				Str("dates", sanitize(dates)).
				Str("replacement", fallback).
				Msg("Malformed dates parameter, using default range")
			dates = fallback
		}
		f.Dates = dates
	}

	if verr := validation.ValidateStruct(f); verr != nil {
		return nil, &ValidationError{Err: verr}
	}

	return f, nil
}

func parseOptionalInt(s string) (n int, set bool, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false, nil
	}
	n, err = strconv.Atoi(s)
	if err != nil {
		return 0, false, err
	}
	return n, true, nil
}

// sanitize keeps user input printable and short before it reaches the logs.
func sanitize(s string) string {
	const maxLen = 64
	s = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
	if len(s) > maxLen {
		s = s[:maxLen] + "..."
	}
	return s
}
