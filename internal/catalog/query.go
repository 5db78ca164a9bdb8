// Indiepick - Indie Game Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiepick

package catalog

import (
	"net/url"
	"strconv"
	"strings"
)

// Ordering values accepted by the catalog
const (
	OrderAdded    = "-added"
	OrderReleased = "-released"
	OrderRating   = "-rating"
)

// Query is a catalog game search. Zero-valued fields are omitted from the request.
type Query struct {
	Page     int
	PageSize int
	Ordering string
	Dates    string // "YYYY-MM-DD,YYYY-MM-DD"

	Platforms  []int
	Genres     []string // slugs or ids
	Tags       []string // slugs or ids
	Developers []string // slugs or ids

	// Metacritic is a "min,max" score range, e.g. "30,100".
	Metacritic string

	// MinRatingsCount is sent as ratings_count.
	MinRatingsCount int

	ExcludeGames []int

	// CacheBuster is sent as _cb so intermediaries cannot serve a stale page.
	CacheBuster string
}

// Values encodes q as catalog query parameters (without the API key).
func (q Query) Values() url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		v.Set("page_size", strconv.Itoa(q.PageSize))
	}
	setIfNotEmpty(v, "ordering", q.Ordering)
	setIfNotEmpty(v, "dates", q.Dates)
	setIfNotEmpty(v, "platforms", joinInts(q.Platforms))
	setIfNotEmpty(v, "genres", strings.Join(q.Genres, ","))
	setIfNotEmpty(v, "tags", strings.Join(q.Tags, ","))
	setIfNotEmpty(v, "developers", strings.Join(q.Developers, ","))
	setIfNotEmpty(v, "metacritic", q.Metacritic)
	if q.MinRatingsCount > 0 {
		v.Set("ratings_count", strconv.Itoa(q.MinRatingsCount))
	}
	setIfNotEmpty(v, "exclude_games", joinInts(q.ExcludeGames))
	setIfNotEmpty(v, "_cb", q.CacheBuster)
	return v
}

// Encode returns the URL-encoded query string.
func (q Query) Encode() string {
	return q.Values().Encode()
}

func setIfNotEmpty(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}

func joinInts(ids []int) string {
	if len(ids) == 0 {
		return ""
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

// IntsToStrings converts catalog ids for use in Genres, Tags or Developers.
func IntsToStrings(ids []int) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = strconv.Itoa(id)
	}
	return out
}
