// Indiepick - Indie Game Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiepick

package catalog

import (
	"context"
	"errors"
	"strconv"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/tomtom215/indiepick/internal/cache"
	"github.com/tomtom215/indiepick/internal/models"
)

// Cache names, also used as the cache_type metric label
const (
	CacheGameRaw = "game_raw"
	CacheGenres  = "genres"
)

const genresKey = "all"

// Ensure CachedClient implements Catalog
var _ Catalog = (*CachedClient)(nil)

// CachedClient caches game details and the genre list for a fixed TTL and
// coalesces concurrent identical lookups into one upstream call.
//
// SearchGames is always passed through: the selector depends on randomized
// result pages. Errors are never cached. Returned values are shared between
// callers and must not be mutated.
type CachedClient struct {
	next   Catalog
	games  *cache.Cache[[]byte]
	genres *cache.Cache[[]models.Genre]
	group  singleflight.Group
}

// NewCachedClient wraps next with TTL caches. Call Close to stop the cache
// cleanup goroutines.
func NewCachedClient(next Catalog, ttl time.Duration) *CachedClient {
	return &CachedClient{
		next:   next,
		games:  cache.New[[]byte](CacheGameRaw, ttl),
		genres: cache.New[[]models.Genre](CacheGenres, ttl),
	}
}

// SearchGames is not cached.
func (c *CachedClient) SearchGames(ctx context.Context, q Query) (*models.GameList, error) {
	return c.next.SearchGames(ctx, q)
}

// GetGame decodes the cached raw body, so the detail endpoint and the
// recommendation composer share a single upstream fetch per game.
func (c *CachedClient) GetGame(ctx context.Context, id int) (*models.Game, error) {
	body, err := c.GetGameRaw(ctx, id)
	if err != nil {
		return nil, err
	}
	return DecodeGame(body)
}

// GetGameRaw returns a cached game body, fetching it on a miss.
func (c *CachedClient) GetGameRaw(ctx context.Context, id int) ([]byte, error) {
	key := strconv.Itoa(id)
	if body, ok := c.games.Get(key); ok {
		return body, nil
	}

	v, err := c.do(ctx, "game:"+key, func(ctx context.Context) (interface{}, error) {
		body, err := c.next.GetGameRaw(ctx, id)
		if err != nil {
			return nil, err
		}
		c.games.Set(key, body)
		return body, nil
	})
	if err != nil {
		return nil, err
	}
	body, ok := v.([]byte)
	if !ok {
		return nil, errors.New("cached client: unexpected result type for GetGameRaw")
	}
	return body, nil
}

// ListGenres returns the cached genre list, fetching it on a miss.
func (c *CachedClient) ListGenres(ctx context.Context) ([]models.Genre, error) {
	if genres, ok := c.genres.Get(genresKey); ok {
		return genres, nil
	}
	return c.RefreshGenres(ctx)
}

// RefreshGenres fetches the genre list upstream and replaces the cached copy.
func (c *CachedClient) RefreshGenres(ctx context.Context) ([]models.Genre, error) {
	v, err := c.do(ctx, "genres", func(ctx context.Context) (interface{}, error) {
		genres, err := c.next.ListGenres(ctx)
		if err != nil {
			return nil, err
		}
		c.genres.Set(genresKey, genres)
		return genres, nil
	})
	if err != nil {
		return nil, err
	}
	genres, ok := v.([]models.Genre)
	if !ok {
		return nil, errors.New("cached client: unexpected result type for ListGenres")
	}
	return genres, nil
}

// Close stops the cache cleanup goroutines.
func (c *CachedClient) Close() {
	c.games.Close()
	c.genres.Close()
}

// do coalesces calls sharing key. The shared upstream call runs detached from
// any single caller's cancellation (bounded by the HTTP client timeout), and
// each caller stops waiting when its own context ends.
func (c *CachedClient) do(ctx context.Context, key string, fn func(context.Context) (interface{}, error)) (interface{}, error) {
	ch := c.group.DoChan(key, func() (interface{}, error) {
		return fn(context.WithoutCancel(ctx))
	})

	select {
	case res := <-ch:
		return res.Val, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
