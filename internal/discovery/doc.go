// Indiepick - Indie Game Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiepick

/*
Package discovery implements random game selection and similar-game
recommendations on top of a catalog.Catalog.

# Selection

Selector.Select resolves the request's date window, then:

 1. Searches the catalog for indie titles in the window. Windows starting
    before the recent cutoff (2024 by default) apply metacritic and review
    floors. Recent windows skip the floors and instead randomize the page,
    the ordering and a cache-busting parameter.
 2. Falls back to a search without genres and with minimal floors when the
    first search is empty. ErrNotFound when that is empty as well.
 3. For older windows with independentOnly, keeps games labeled indie, or
    failing that games without a major publisher, or failing that all games.
 4. Shuffles, picks, and re-picks among candidates that satisfy the year,
    rating and review bounds when the first pick does not.
 5. Swaps a pick shown recently in the same year bucket for a fresh one when
    the pool is larger than the recency capacity.

All randomness comes from the Random in Options so tests can seed it.

# Recommendations

Composer.Recommend reads a game's genres, first three tags and developers
and searches for up to four highly rated titles sharing them.
*/
package discovery
