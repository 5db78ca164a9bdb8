// Indiepick - Indie Game Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiepick

package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the calendar date format used by catalog date ranges.
const DateLayout = "2006-01-02"

// ErrInvalidDateRange is returned by ParseDateRange for any malformed range.
var ErrInvalidDateRange = errors.New("invalid date range")

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ParseDateRange parses "YYYY-MM-DD,YYYY-MM-DD". The start must not be after the end.
func ParseDateRange(s string) (start, end time.Time, err error) {
	from, to, ok := strings.Cut(s, ",")
	if !ok || strings.Contains(to, ",") {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: want two comma-separated dates, got %q", ErrInvalidDateRange, s)
	}

	if start, err = parseDate(from); err != nil {
		return time.Time{}, time.Time{}, err
	}
	if end, err = parseDate(to); err != nil {
		return time.Time{}, time.Time{}, err
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %s is after %s", ErrInvalidDateRange, from, to)
	}
	return start, end, nil
}

func parseDate(s string) (time.Time, error) {
	// time.Parse accepts single-digit months and days for some layouts; require the exact width
	if len(s) != len(DateLayout) {
		return time.Time{}, fmt.Errorf("%w: %q is not YYYY-MM-DD", ErrInvalidDateRange, s)
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not YYYY-MM-DD", ErrInvalidDateRange, s)
	}
	return t, nil
}

// validateDateRange implements the "daterange" tag.
func validateDateRange(fl validator.FieldLevel) bool {
	_, _, err := ParseDateRange(fl.Field().String())
	return err == nil
}

// validateSlug implements the "slug" tag: lowercase alphanumerics separated by single hyphens.
func validateSlug(fl validator.FieldLevel) bool {
	return slugPattern.MatchString(fl.Field().String())
}
