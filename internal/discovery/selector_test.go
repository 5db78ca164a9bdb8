// Indiepick - Indie Game Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiepick

package discovery

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"testing"
	"time"

	"github.com/tomtom215/indiepick/internal/catalog"
	"github.com/tomtom215/indiepick/internal/catalog/catalogtest"
	"github.com/tomtom215/indiepick/internal/filters"
	"github.com/tomtom215/indiepick/internal/models"
	"github.com/tomtom215/indiepick/internal/recency"
)

// randFunc adapts a function to Random.
type randFunc func(n int) int

func (f randFunc) IntN(n int) int { return f(n) }

// lastRandom always returns n-1: shuffles leave order unchanged and
// re-picks take the last eligible candidate.
var lastRandom = randFunc(func(n int) int { return n - 1 })

var fixedNow = func() time.Time { return time.UnixMilli(1700000000000) }

var indieGenre = models.NamedRef{ID: 51, Name: "Indie", Slug: "indie"}

func indieGame(id int, released string) models.Game {
	return models.Game{ID: id, Name: "Indie " + released, Released: released, Rating: 4.2, RatingsCount: 500,
		Genres: []models.NamedRef{indieGenre}}
}

func studioGame(id int, released, developer, publisher string) models.Game {
	g := models.Game{ID: id, Name: "Studio " + released, Released: released, Rating: 4.0, RatingsCount: 800,
		Genres: []models.NamedRef{{ID: 4, Name: "Action", Slug: "action"}}}
	if developer != "" {
		g.Developers = []models.NamedRef{{ID: id * 10, Name: developer}}
	}
	if publisher != "" {
		g.Publishers = []models.NamedRef{{ID: id * 100, Name: publisher}}
	}
	return g
}

// staticSearch returns a copy of pool for every search.
func staticSearch(pool ...models.Game) catalogtest.SearchFunc {
	return func(catalog.Query) ([]models.Game, error) {
		return append([]models.Game(nil), pool...), nil
	}
}

func newTestSelector(fake *catalogtest.Fake, r Random, tracker *recency.Tracker) *Selector {
	opts := DefaultOptions()
	opts.Random = r
	opts.Now = fixedNow
	return NewSelector(fake, tracker, opts)
}

func filtersFor(t *testing.T, raw filters.RawFilters) *filters.GameFilters {
	t.Helper()
	f, err := filters.Normalize(context.Background(), raw, DefaultOptions().Defaults)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	return f
}

func TestSelect_OlderWindowPrefersIndieLabels(t *testing.T) {
	fake := &catalogtest.Fake{Search: staticSearch(
		indieGame(1, "2011-05-01"),
		studioGame(2, "2012-03-10", "Ubisoft Montreal", "Ubisoft"),
		indieGame(3, "2013-09-20"),
	)}
	f := filtersFor(t, filters.RawFilters{
		Genres:          `["indie"]`,
		IndependentOnly: "true",
		Dates:           "2010-01-01,2014-12-31",
	})

	for seed := uint64(0); seed < 50; seed++ {
		s := newTestSelector(fake, NewRandom(seed), recency.New(10))
		game, err := s.Select(context.Background(), f)
		if err != nil {
			t.Fatalf("Select() error = %v", err)
		}
		if game.ID != 1 && game.ID != 3 {
			t.Fatalf("seed %d: selected game %d, want an indie-labeled candidate", seed, game.ID)
		}
	}

	q := fake.Queries()[0]
	want := catalog.Query{
		PageSize:        100,
		Ordering:        catalog.OrderAdded,
		Dates:           "2010-01-01,2014-12-31",
		Platforms:       []int{4},
		Genres:          []string{"indie"},
		Metacritic:      "30,100",
		MinRatingsCount: 100,
	}
	if !reflect.DeepEqual(q, want) {
		t.Errorf("primary query = %+v\nwant %+v", q, want)
	}
}

func TestSelect_OlderWindowFloorsFromFilters(t *testing.T) {
	fake := &catalogtest.Fake{Search: staticSearch(indieGame(1, "2019-01-01"))}
	f := filtersFor(t, filters.RawFilters{
		Genres:         `["puzzle","indie","strategy"]`,
		MinRating:      "40",
		MinReviews:     "250",
		MinReleaseYear: "2018",
		MaxReleaseYear: "2030",
	})

	if _, err := newTestSelector(fake, lastRandom, recency.New(10)).Select(context.Background(), f); err != nil {
		t.Fatalf("Select() error = %v", err)
	}

	q := fake.Queries()[0]
	if q.Dates != "2018-01-01,2025-12-31" {
		t.Errorf("dates = %q, want max clamped to the cap year", q.Dates)
	}
	if q.Metacritic != "40,100" || q.MinRatingsCount != 250 {
		t.Errorf("floors = %q / %d, want 40,100 / 250", q.Metacritic, q.MinRatingsCount)
	}
	if !reflect.DeepEqual(q.Genres, []string{"indie", "puzzle", "strategy"}) {
		t.Errorf("genres = %v, want indie first", q.Genres)
	}
}

func TestSelect_RecentWindowSkipsIndependence(t *testing.T) {
	pool := []models.Game{
		studioGame(1, "2024-02-01", "Ubisoft", "Ubisoft"),
		studioGame(2, "2024-06-01", "", "Electronic Arts"),
		studioGame(3, "2025-01-15", "Activision", ""),
	}
	fake := &catalogtest.Fake{Search: staticSearch(pool...)}
	f := filtersFor(t, filters.RawFilters{Dates: "2024-01-01,2025-12-31", IndependentOnly: "true"})

	game, err := newTestSelector(fake, lastRandom, recency.New(10)).Select(context.Background(), f)
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	// identity shuffle keeps the first candidate
	if game.ID != 1 {
		t.Errorf("selected %d, want 1", game.ID)
	}

	q := fake.Queries()[0]
	if q.Metacritic != "" || q.MinRatingsCount != 0 {
		t.Errorf("recent window should not send floors, got %q / %d", q.Metacritic, q.MinRatingsCount)
	}
	if q.PageSize != 20 || q.Page != 39 {
		t.Errorf("paging = size %d page %d, want size 20 page 39", q.PageSize, q.Page)
	}
	if q.Ordering != catalog.OrderReleased {
		t.Errorf("ordering = %q, want %q", q.Ordering, catalog.OrderReleased)
	}
	if q.CacheBuster != "1700000000000" {
		t.Errorf("cache buster = %q", q.CacheBuster)
	}
}

func TestSelect_RecentWindowWithoutOffset(t *testing.T) {
	fake := &catalogtest.Fake{Search: staticSearch(indieGame(1, "2024-03-03"))}
	f := filtersFor(t, filters.RawFilters{MinReleaseYear: "2024"})

	zero := randFunc(func(int) int { return 0 })
	if _, err := newTestSelector(fake, zero, recency.New(10)).Select(context.Background(), f); err != nil {
		t.Fatalf("Select() error = %v", err)
	}

	q := fake.Queries()[0]
	if q.PageSize != 100 || q.Page != 1 || q.Ordering != catalog.OrderAdded {
		t.Errorf("query = %+v, want page 1 of 100 ordered by -added", q)
	}
}

func TestSelect_FallbackQuery(t *testing.T) {
	fallbackPool := []models.Game{
		indieGame(11, "2016-01-01"),
		indieGame(12, "2017-01-01"),
		indieGame(13, "2018-01-01"),
		indieGame(14, "2019-01-01"),
		indieGame(15, "2020-01-01"),
	}
	fake := &catalogtest.Fake{Search: func(q catalog.Query) ([]models.Game, error) {
		if len(q.Genres) > 0 {
			return nil, nil
		}
		return append([]models.Game(nil), fallbackPool...), nil
	}}
	f := filtersFor(t, filters.RawFilters{Genres: `["puzzle"]`})

	game, err := newTestSelector(fake, NewRandom(7), recency.New(10)).Select(context.Background(), f)
	if err != nil {
		t.Fatalf("Select() error = %v, want a game from the fallback", err)
	}
	if game.ID < 11 || game.ID > 15 {
		t.Errorf("selected %d, want one of the fallback candidates", game.ID)
	}

	queries := fake.Queries()
	if len(queries) != 2 {
		t.Fatalf("queries = %d, want 2", len(queries))
	}
	want := catalog.Query{
		PageSize:        100,
		Ordering:        catalog.OrderAdded,
		Dates:           "2015-01-01,2025-12-31",
		Platforms:       []int{4},
		Metacritic:      "1,100",
		MinRatingsCount: 1,
		CacheBuster:     "1700000000000",
	}
	if !reflect.DeepEqual(queries[1], want) {
		t.Errorf("fallback query = %+v\nwant %+v", queries[1], want)
	}
}

func TestSelect_RecentFallbackHasNoFloors(t *testing.T) {
	fake := &catalogtest.Fake{}
	f := filtersFor(t, filters.RawFilters{Dates: "2024-01-01,2025-12-31"})

	_, err := newTestSelector(fake, lastRandom, recency.New(10)).Select(context.Background(), f)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}

	fallback := fake.Queries()[1]
	if fallback.Metacritic != "" || fallback.MinRatingsCount != 0 || len(fallback.Genres) != 0 {
		t.Errorf("recent fallback = %+v, want no floors or genres", fallback)
	}
}

func TestSelect_NotFound(t *testing.T) {
	fake := &catalogtest.Fake{}
	s := newTestSelector(fake, lastRandom, recency.New(10))

	_, err := s.Select(context.Background(), filtersFor(t, filters.RawFilters{}))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
	if n := len(fake.Queries()); n != 2 {
		t.Errorf("queries = %d, want primary and fallback", n)
	}
}

func TestSelect_UpstreamError(t *testing.T) {
	upstream := &catalog.UpstreamError{Op: catalog.OpSearchGames, StatusCode: http.StatusBadGateway}
	fake := &catalogtest.Fake{Err: upstream}

	_, err := newTestSelector(fake, lastRandom, recency.New(10)).Select(context.Background(), filtersFor(t, filters.RawFilters{}))

	var ue *catalog.UpstreamError
	if !errors.As(err, &ue) || ue.StatusCode != http.StatusBadGateway {
		t.Fatalf("error = %v, want the upstream error", err)
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("upstream failure must not be reported as not found")
	}
}

func TestSelect_IndependenceStages(t *testing.T) {
	tests := []struct {
		name    string
		pool    []models.Game
		allowed map[int]bool
	}{
		{
			name: "publisher denylist when nothing is labeled",
			pool: []models.Game{
				studioGame(1, "2016-01-01", "Ubisoft Montreal", ""),
				studioGame(2, "2016-01-01", "Team Cherry", "Annapurna Interactive"),
				studioGame(3, "2016-01-01", "", ""),
				studioGame(4, "2016-01-01", "Playdead", "SQUARE ENIX"),
			},
			allowed: map[int]bool{2: true, 3: true},
		},
		{
			name: "unfiltered when every game is denylisted",
			pool: []models.Game{
				studioGame(1, "2016-01-01", "EA DICE", "Electronic Arts"),
				studioGame(2, "2016-01-01", "Ubisoft Quebec", "Ubisoft"),
			},
			allowed: map[int]bool{1: true, 2: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &catalogtest.Fake{Search: staticSearch(tt.pool...)}
			f := filtersFor(t, filters.RawFilters{})

			for seed := uint64(0); seed < 30; seed++ {
				game, err := newTestSelector(fake, NewRandom(seed), recency.New(10)).Select(context.Background(), f)
				if err != nil {
					t.Fatalf("Select() error = %v", err)
				}
				if !tt.allowed[game.ID] {
					t.Fatalf("seed %d: selected %d, allowed %v", seed, game.ID, tt.allowed)
				}
			}
		})
	}
}

func TestSelect_IndependentOnlyFalse(t *testing.T) {
	fake := &catalogtest.Fake{Search: staticSearch(
		studioGame(1, "2016-01-01", "Ubisoft", "Ubisoft"),
		indieGame(2, "2016-01-01"),
	)}
	f := filtersFor(t, filters.RawFilters{IndependentOnly: "false"})

	game, err := newTestSelector(fake, lastRandom, recency.New(10)).Select(context.Background(), f)
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if game.ID != 1 {
		t.Errorf("selected %d, want 1 when independence filtering is off", game.ID)
	}
}

func TestSelect_PickValidation(t *testing.T) {
	rated := func(id int, released string, rating float64, reviews int) models.Game {
		g := indieGame(id, released)
		g.Rating, g.RatingsCount = rating, reviews
		return g
	}

	tests := []struct {
		name   string
		raw    filters.RawFilters
		pool   []models.Game
		wantID int
	}{
		{
			name:   "re-pick among games above the rating floor",
			raw:    filters.RawFilters{MinRating: "45"},
			pool:   []models.Game{rated(1, "2018-01-01", 3.0, 500), rated(2, "2018-01-01", 4.6, 500), rated(3, "2018-01-01", 4.5, 500)},
			wantID: 3,
		},
		{
			name:   "minRating 100 only matches a perfect rating",
			raw:    filters.RawFilters{MinRating: "100"},
			pool:   []models.Game{rated(1, "2018-01-01", 4.99, 500), rated(2, "2018-01-01", 10.0, 500), rated(3, "2018-01-01", 9.94, 500)},
			wantID: 2,
		},
		{
			name:   "zero rating applies no filter",
			raw:    filters.RawFilters{MinRating: "0"},
			pool:   []models.Game{rated(1, "2018-01-01", 0.5, 500), rated(2, "2018-01-01", 4.9, 500)},
			wantID: 1,
		},
		{
			name:   "release year outside the window",
			raw:    filters.RawFilters{MinReleaseYear: "2018", MaxReleaseYear: "2020"},
			pool:   []models.Game{rated(1, "2016-04-01", 4.0, 500), rated(2, "2019-04-01", 4.0, 500), rated(3, "", 4.0, 500)},
			wantID: 2,
		},
		{
			name:   "review floor",
			raw:    filters.RawFilters{MinReviews: "300"},
			pool:   []models.Game{rated(1, "2018-01-01", 4.0, 10), rated(2, "2018-01-01", 4.0, 300)},
			wantID: 2,
		},
		{
			name:   "no candidate matches keeps the first pick",
			raw:    filters.RawFilters{MinReviews: "100000"},
			pool:   []models.Game{rated(1, "2018-01-01", 4.0, 10), rated(2, "2018-01-01", 4.0, 20)},
			wantID: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &catalogtest.Fake{Search: staticSearch(tt.pool...)}
			game, err := newTestSelector(fake, lastRandom, recency.New(10)).Select(context.Background(), filtersFor(t, tt.raw))
			if err != nil {
				t.Fatalf("Select() error = %v", err)
			}
			if game.ID != tt.wantID {
				t.Errorf("selected %d, want %d", game.ID, tt.wantID)
			}
		})
	}
}

func poolOf(n int) []models.Game {
	pool := make([]models.Game, n)
	for i := range pool {
		pool[i] = indieGame(i+1, "2019-06-01")
	}
	return pool
}

func TestSelect_AvoidsRecentPicks(t *testing.T) {
	tracker := recency.New(10)
	fake := &catalogtest.Fake{Search: staticSearch(poolOf(15)...)}
	f := filtersFor(t, filters.RawFilters{MinReleaseYear: "2018"})

	tracker.Record("2018", 1)
	game, err := newTestSelector(fake, lastRandom, tracker).Select(context.Background(), f)
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	// identity shuffle picks 1, which is recent; the swap takes the last fresh id
	if game.ID != 15 {
		t.Errorf("selected %d, want 15", game.ID)
	}
	if !tracker.Contains("2018", 15) {
		t.Error("final pick should be recorded")
	}
}

func TestSelect_RecencyProperty(t *testing.T) {
	tracker := recency.New(10)
	fake := &catalogtest.Fake{Search: staticSearch(poolOf(15)...)}
	s := newTestSelector(fake, NewRandom(42), tracker)
	f := filtersFor(t, filters.RawFilters{MinReleaseYear: "2018"})

	for i := 0; i < 40; i++ {
		before := tracker.Recent("2018")
		game, err := s.Select(context.Background(), f)
		if err != nil {
			t.Fatalf("Select() error = %v", err)
		}
		for _, id := range before {
			if id == game.ID {
				t.Fatalf("call %d returned recent id %d (recent %v)", i, game.ID, before)
			}
		}
	}
}

func TestSelect_SmallPoolIgnoresRecency(t *testing.T) {
	tracker := recency.New(10)
	fake := &catalogtest.Fake{Search: staticSearch(poolOf(10)...)}
	f := filtersFor(t, filters.RawFilters{MinReleaseYear: "2018"})

	tracker.Record("2018", 1)
	game, err := newTestSelector(fake, lastRandom, tracker).Select(context.Background(), f)
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if game.ID != 1 {
		t.Errorf("selected %d, want 1 from a pool no larger than the capacity", game.ID)
	}
	if got := tracker.Recent("2018"); len(got) != 1 {
		t.Errorf("small pools should not be recorded, recent = %v", got)
	}
}

func TestSelect_ReturnsCopy(t *testing.T) {
	pool := poolOf(3)
	fake := &catalogtest.Fake{Search: staticSearch(pool...)}

	game, err := newTestSelector(fake, lastRandom, nil).Select(context.Background(), filtersFor(t, filters.RawFilters{}))
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	game.Name = "changed"
	if pool[0].Name == "changed" {
		t.Error("Select() result should not alias the candidate pool")
	}
}

func TestNewSelector_AppliesDefaults(t *testing.T) {
	s := NewSelector(&catalogtest.Fake{}, nil, Options{})
	if s.opts.RecentYearCutoff != 2024 || s.opts.Platform != 4 {
		t.Errorf("opts = %+v", s.opts)
	}
	if s.opts.Random == nil || s.opts.Now == nil {
		t.Error("Random and Now should default")
	}
	if len(s.deny) == 0 {
		t.Error("publisher denylist should default")
	}
}
