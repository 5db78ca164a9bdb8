// Indiepick - Indie Game Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiepick

package filters

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/indiepick/internal/validation"
)

// IndieGenre is always part of a normalized genre set.
const IndieGenre = "indie"

// Query parameter names
const (
	ParamGenres          = "genres"
	ParamMinRating       = "minRating"
	ParamMinReviews      = "minReviews"
	ParamMinReleaseYear  = "minReleaseYear"
	ParamMaxReleaseYear  = "maxReleaseYear"
	ParamIndependentOnly = "independentOnly"
	ParamDates           = "dates"
)

// RawFilters is filter input as it arrives on the query string.
// An empty field means the parameter was absent.
type RawFilters struct {
	Genres          string
	MinRating       string
	MinReviews      string
	MinReleaseYear  string
	MaxReleaseYear  string
	IndependentOnly string
	Dates           string
}

// FromQuery reads RawFilters from URL query values.
func FromQuery(v url.Values) RawFilters {
	return RawFilters{
		Genres:          v.Get(ParamGenres),
		MinRating:       v.Get(ParamMinRating),
		MinReviews:      v.Get(ParamMinReviews),
		MinReleaseYear:  v.Get(ParamMinReleaseYear),
		MaxReleaseYear:  v.Get(ParamMaxReleaseYear),
		IndependentOnly: v.Get(ParamIndependentOnly),
		Dates:           v.Get(ParamDates),
	}
}

// Values renders r as URL query values, omitting empty fields.
func (r RawFilters) Values() url.Values {
	v := url.Values{}
	for _, p := range []struct{ key, value string }{
		{ParamGenres, r.Genres},
		{ParamMinRating, r.MinRating},
		{ParamMinReviews, r.MinReviews},
		{ParamMinReleaseYear, r.MinReleaseYear},
		{ParamMaxReleaseYear, r.MaxReleaseYear},
		{ParamIndependentOnly, r.IndependentOnly},
		{ParamDates, r.Dates},
	} {
		if p.value != "" {
			v.Set(p.key, p.value)
		}
	}
	return v
}

// GameFilters is the validated, canonical form of a random game request.
// Nil pointers mean "not set".
type GameFilters struct {
	Genres          []string `query:"genres" validate:"min=1,max=20,dive,slug"`
	MinRating       *int     `query:"minRating" validate:"omitempty,gte=0,lte=100"`
	MinReviews      *int     `query:"minReviews" validate:"omitempty,gte=0"`
	MinReleaseYear  *int     `query:"minReleaseYear" validate:"omitempty,gte=1990,lte=2030"`
	MaxReleaseYear  *int     `query:"maxReleaseYear" validate:"omitempty,gte=1990,lte=2030"`
	IndependentOnly bool     `query:"independentOnly"`
	Dates           string   `query:"dates" validate:"omitempty,daterange"`
}

// Raw renders f back into raw form. Normalizing the result yields f again.
func (f *GameFilters) Raw() RawFilters {
	raw := RawFilters{
		MinRating:       formatOptional(f.MinRating),
		MinReviews:      formatOptional(f.MinReviews),
		MinReleaseYear:  formatOptional(f.MinReleaseYear),
		MaxReleaseYear:  formatOptional(f.MaxReleaseYear),
		IndependentOnly: strconv.FormatBool(f.IndependentOnly),
		Dates:           f.Dates,
	}
	if len(f.Genres) > 0 {
		if b, err := json.Marshal(f.Genres); err == nil {
			raw.Genres = string(b)
		}
	}
	return raw
}

// OtherGenres returns the requested genres except indie, in request order.
func (f *GameFilters) OtherGenres() []string {
	out := make([]string, 0, len(f.Genres))
	for _, g := range f.Genres {
		if g != IndieGenre {
			out = append(out, g)
		}
	}
	return out
}

// RatingFloor returns minRating, or 0 when unset.
func (f *GameFilters) RatingFloor() int {
	return valueOrZero(f.MinRating)
}

// ReviewFloor returns minReviews, or 0 when unset.
func (f *GameFilters) ReviewFloor() int {
	return valueOrZero(f.MinReviews)
}

func valueOrZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func formatOptional(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}

// ValidationError reports filter input that cannot be normalized.
type ValidationError struct {
	Err *validation.RequestValidationError
}

func (e *ValidationError) Error() string {
	return "invalid filters: " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// parseGenres accepts a JSON array of strings or a comma-separated list.
func parseGenres(s string) ([]string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if strings.HasPrefix(s, "[") {
		var list []string
		if err := json.Unmarshal([]byte(s), &list); err != nil {
			return nil, err
		}
		return list, nil
	}
	return strings.Split(s, ","), nil
}

// canonicalGenres lowercases, trims and dedupes genres, then appends indie if missing.
func canonicalGenres(in []string) []string {
	out := make([]string, 0, len(in)+1)
	seen := make(map[string]struct{}, len(in)+1)
	for _, g := range in {
		g = strings.ToLower(strings.TrimSpace(g))
		if g == "" {
			continue
		}
		if _, dup := seen[g]; dup {
			continue
		}
		seen[g] = struct{}{}
		out = append(out, g)
	}
	if _, ok := seen[IndieGenre]; !ok {
		out = append(out, IndieGenre)
	}
	return out
}
