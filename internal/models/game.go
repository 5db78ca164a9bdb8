// Indiepick - Indie Game Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiepick

package models

import (
	"strconv"
	"strings"
)

// NamedRef is the {id, name, slug} triple the catalog uses for genres, tags,
// developers, publishers and platforms.
type NamedRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Genre is a catalog genre as returned by the genre list endpoint.
type Genre = NamedRef

// Game represents a single catalog title.
//
// Only the fields the selector reads are modeled. The detail endpoint
// forwards the upstream body verbatim, so unknown fields are not lost there.
type Game struct {
	ID              int        `json:"id"`
	Slug            string     `json:"slug,omitempty"`
	Name            string     `json:"name"`
	BackgroundImage string     `json:"background_image"`
	Rating          float64    `json:"rating"`
	RatingsCount    int        `json:"ratings_count"`
	Metacritic      *int       `json:"metacritic,omitempty"`
	Released        string     `json:"released"`
	Genres          []NamedRef `json:"genres"`
	Tags            []NamedRef `json:"tags,omitempty"`
	Description     string     `json:"description,omitempty"`
	Developers      []NamedRef `json:"developers,omitempty"`
	Publishers      []NamedRef `json:"publishers,omitempty"`
}

// ReleaseYear returns the year part of Released.
// ok is false when the release date is missing or not ISO formatted.
func (g *Game) ReleaseYear() (year int, ok bool) {
	if len(g.Released) < 4 {
		return 0, false
	}
	y, err := strconv.Atoi(g.Released[:4])
	if err != nil {
		return 0, false
	}
	return y, true
}

// HasLabel reports whether any genre or tag matches label by name or slug,
// ignoring case.
func (g *Game) HasLabel(label string) bool {
	for _, refs := range [][]NamedRef{g.Tags, g.Genres} {
		for _, ref := range refs {
			if strings.EqualFold(ref.Name, label) || strings.EqualFold(ref.Slug, label) {
				return true
			}
		}
	}
	return false
}

// GameList is a page of search results.
type GameList struct {
	Count    int     `json:"count"`
	Next     *string `json:"next,omitempty"`
	Previous *string `json:"previous,omitempty"`
	Results  []Game  `json:"results"`
}

// GenreList is the genre list endpoint response.
type GenreList struct {
	Count   int     `json:"count"`
	Results []Genre `json:"results"`
}

// SimilarityFactors names the signals a recommendation query matched on.
type SimilarityFactors struct {
	Genres     []string `json:"genres"`
	Tags       []string `json:"tags"`
	Developers []string `json:"developers"`
}

// Recommendations is the body of the recommendations endpoint.
type Recommendations struct {
	Results           []Game            `json:"results"`
	SimilarityFactors SimilarityFactors `json:"similarityFactors"`
}

// Names returns the Name of every ref, in order. The result is never nil so
// it encodes as [] rather than null.
func Names(refs []NamedRef) []string {
	names := make([]string, 0, len(refs))
	for _, r := range refs {
		names = append(names, r.Name)
	}
	return names
}

// IDs returns the ID of every ref, in order.
func IDs(refs []NamedRef) []int {
	ids := make([]int, 0, len(refs))
	for _, r := range refs {
		ids = append(ids, r.ID)
	}
	return ids
}
