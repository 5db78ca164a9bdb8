// Indiepick - Indie Game Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiepick

// Package catalogtest provides catalog fakes for tests: an in-memory Catalog
// and an httptest server that speaks the RAWG wire format.
package catalogtest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/indiepick/internal/catalog"
	"github.com/tomtom215/indiepick/internal/models"
)

// Ensure Fake implements catalog.Catalog
var _ catalog.Catalog = (*Fake)(nil)

// SearchFunc answers a search. Returning nil results yields an empty page.
type SearchFunc func(q catalog.Query) ([]models.Game, error)

// Fake is an in-memory catalog that records every search it receives.
type Fake struct {
	mu      sync.Mutex
	Search  SearchFunc
	Games   map[int]*models.Game
	Genres  []models.Genre
	Err     error // returned by every call when set
	queries []catalog.Query
	detailN int
	genreN  int
}

// SearchGames records q and delegates to Search.
func (f *Fake) SearchGames(_ context.Context, q catalog.Query) (*models.GameList, error) {
	f.mu.Lock()
	f.queries = append(f.queries, q)
	search, ferr := f.Search, f.Err
	f.mu.Unlock()

	if ferr != nil {
		return nil, ferr
	}
	var results []models.Game
	if search != nil {
		var err error
		if results, err = search(q); err != nil {
			return nil, err
		}
	}
	if results == nil {
		results = []models.Game{}
	}
	return &models.GameList{Count: len(results), Results: results}, nil
}

// GetGame returns a game from Games or a 404 UpstreamError.
func (f *Fake) GetGame(_ context.Context, id int) (*models.Game, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.detailN++

	if f.Err != nil {
		return nil, f.Err
	}
	g, ok := f.Games[id]
	if !ok {
		return nil, &catalog.UpstreamError{Op: catalog.OpGetGame, StatusCode: http.StatusNotFound}
	}
	return g, nil
}

// GetGameRaw returns the JSON encoding of GetGame.
func (f *Fake) GetGameRaw(ctx context.Context, id int) ([]byte, error) {
	g, err := f.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}
	return json.Marshal(g)
}

// ListGenres returns Genres.
func (f *Fake) ListGenres(_ context.Context) ([]models.Genre, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.genreN++

	if f.Err != nil {
		return nil, f.Err
	}
	return f.Genres, nil
}

// Queries returns a copy of the searches received so far.
func (f *Fake) Queries() []catalog.Query {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]catalog.Query(nil), f.queries...)
}

// DetailCalls returns how many GetGame or GetGameRaw calls were made.
func (f *Fake) DetailCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.detailN
}

// GenreCalls returns how many ListGenres calls were made.
func (f *Fake) GenreCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.genreN
}

// Server is an httptest RAWG stand-in. Searches are answered by Search with
// the raw query parameters; detail and genre lookups come from Games and Genres.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	Search   func(params url.Values) (status int, results []models.Game)
	Games    map[int]json.RawMessage
	Genres   []models.Genre
	Status   int // when non-zero every request answers this status
	requests []url.Values
	paths    []string
}

// NewServer starts a fake RAWG server that is closed with the test.
func NewServer(t testing.TB) *Server {
	t.Helper()
	s := &Server{Games: map[int]json.RawMessage{}}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

// Requests returns the query parameters of every request received.
func (s *Server) Requests() []url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]url.Values(nil), s.requests...)
}

// Paths returns the path of every request received.
func (s *Server) Paths() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.paths...)
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.requests = append(s.requests, r.URL.Query())
	s.paths = append(s.paths, r.URL.Path)
	status, search, games, genres := s.Status, s.Search, s.Games, s.Genres
	s.mu.Unlock()

	if status != 0 {
		http.Error(w, `{"error":"forced failure"}`, status)
		return
	}

	switch {
	case r.URL.Path == "/games":
		code, results := http.StatusOK, []models.Game{}
		if search != nil {
			code, results = search(r.URL.Query())
		}
		if code != http.StatusOK {
			http.Error(w, `{"error":"search failed"}`, code)
			return
		}
		if results == nil {
			results = []models.Game{}
		}
		writeJSON(w, models.GameList{Count: len(results), Results: results})

	case strings.HasPrefix(r.URL.Path, "/games/"):
		id, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/games/"))
		body, ok := games[id]
		if err != nil || !ok {
			http.Error(w, `{"detail":"Not found."}`, http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)

	case r.URL.Path == "/genres":
		writeJSON(w, models.GenreList{Count: len(genres), Results: genres})

	default:
		http.NotFound(w, r)
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
