// Indiepick - Indie Game Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiepick

package discovery

import (
	"strings"

	"github.com/tomtom215/indiepick/internal/filters"
	"github.com/tomtom215/indiepick/internal/models"
)

// independenceStage names which rule produced the candidate list.
type independenceStage string

const (
	stageLabel      independenceStage = "indie_label"
	stageDenylist   independenceStage = "publisher_denylist"
	stageUnfiltered independenceStage = "unfiltered"
)

// publisherDenylist matches developer and publisher names against major
// publishers by case-insensitive substring.
type publisherDenylist []string

func newPublisherDenylist(names []string) publisherDenylist {
	d := make(publisherDenylist, 0, len(names))
	for _, n := range names {
		if n = strings.ToLower(strings.TrimSpace(n)); n != "" {
			d = append(d, n)
		}
	}
	return d
}

// matches reports whether company contains a denylisted name.
func (d publisherDenylist) matches(company string) bool {
	if company == "" {
		return false
	}
	company = strings.ToLower(company)
	for _, major := range d {
		if strings.Contains(company, major) {
			return true
		}
	}
	return false
}

// independent reports whether no developer or publisher of g is denylisted.
// A game with neither developers nor publishers counts as independent.
func (d publisherDenylist) independent(g *models.Game) bool {
	for _, refs := range [][]models.NamedRef{g.Developers, g.Publishers} {
		for _, ref := range refs {
			if d.matches(ref.Name) {
				return false
			}
		}
	}
	return true
}

// filterIndependent keeps games labeled indie. When none are, it keeps games
// without a denylisted company, and when none of those remain either it
// returns games unchanged.
func filterIndependent(games []models.Game, deny publisherDenylist) ([]models.Game, independenceStage) {
	labeled := filterGames(games, func(g *models.Game) bool {
		return g.HasLabel(filters.IndieGenre)
	})
	if len(labeled) > 0 {
		return labeled, stageLabel
	}

	unlisted := filterGames(games, deny.independent)
	if len(unlisted) > 0 {
		return unlisted, stageDenylist
	}

	return games, stageUnfiltered
}

func filterGames(games []models.Game, keep func(*models.Game) bool) []models.Game {
	out := make([]models.Game, 0, len(games))
	for i := range games {
		if keep(&games[i]) {
			out = append(out, games[i])
		}
	}
	return out
}
