// Indiepick - Indie Game Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiepick

/*
client.go - RAWG REST API Client

This file implements the base catalog client. It issues GET requests with the
API key as the "key" query parameter, waits on an outbound token bucket before
each call, and maps non-2xx responses to *UpstreamError.

API Reference: https://api.rawg.io/docs/
*/

package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/indiepick/internal/config"
	"github.com/tomtom215/indiepick/internal/logging"
	"github.com/tomtom215/indiepick/internal/metrics"
	"github.com/tomtom215/indiepick/internal/models"
)

// maxResponseBody bounds how much of an upstream response is read.
const maxResponseBody = 10 << 20

// Ensure Client implements Catalog
var _ Catalog = (*Client)(nil)

// Client provides access to the RAWG REST API
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a catalog client from the catalog configuration.
//
// Parameters:
//   - cfg.BaseURL: API root (e.g., https://api.rawg.io/api)
//   - cfg.APIKey: RAWG API key, may be empty in development
//   - cfg.Timeout: HTTP client timeout
//   - cfg.RateLimit, cfg.RateBurst: outbound token bucket
func NewClient(cfg *config.CatalogConfig) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
	}
}

// SearchGames runs GET /games with the query parameters from q.
func (c *Client) SearchGames(ctx context.Context, q Query) (*models.GameList, error) {
	body, err := c.get(ctx, OpSearchGames, "/games", q.Values())
	if err != nil {
		return nil, err
	}

	var list models.GameList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, &UpstreamError{Op: OpSearchGames, Err: fmt.Errorf("failed to decode game list: %w", err)}
	}
	return &list, nil
}

// GetGame runs GET /games/{id} and decodes the result.
func (c *Client) GetGame(ctx context.Context, id int) (*models.Game, error) {
	body, err := c.GetGameRaw(ctx, id)
	if err != nil {
		return nil, err
	}
	return DecodeGame(body)
}

// GetGameRaw runs GET /games/{id} and returns the body unchanged.
func (c *Client) GetGameRaw(ctx context.Context, id int) ([]byte, error) {
	body, err := c.get(ctx, OpGetGame, "/games/"+strconv.Itoa(id), nil)
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, &UpstreamError{Op: OpGetGame, Err: fmt.Errorf("game %d: response is not valid JSON", id)}
	}
	return body, nil
}

// ListGenres runs GET /genres and returns its results.
func (c *Client) ListGenres(ctx context.Context) ([]models.Genre, error) {
	body, err := c.get(ctx, OpListGenres, "/genres", nil)
	if err != nil {
		return nil, err
	}

	var list models.GenreList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, &UpstreamError{Op: OpListGenres, Err: fmt.Errorf("failed to decode genre list: %w", err)}
	}
	if list.Results == nil {
		list.Results = []models.Genre{}
	}
	return list.Results, nil
}

// DecodeGame decodes a game detail body.
func DecodeGame(body []byte) (*models.Game, error) {
	var game models.Game
	if err := json.Unmarshal(body, &game); err != nil {
		return nil, &UpstreamError{Op: OpGetGame, Err: fmt.Errorf("failed to decode game: %w", err)}
	}
	return &game, nil
}

// get performs a rate-limited GET and returns the body of a 2xx response.
func (c *Client) get(ctx context.Context, op, path string, params url.Values) (body []byte, err error) {
	start := time.Now()
	defer func() {
		metrics.RecordCatalogRequest(op, time.Since(start), err)
	}()

	waitStart := time.Now()
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &UpstreamError{Op: op, Err: fmt.Errorf("rate limiter: %w", err)}
	}
	metrics.RecordCatalogRateLimitWait(time.Since(waitStart))

	if params == nil {
		params = url.Values{}
	}
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
	}
	reqURL := c.baseURL + path
	if encoded := params.Encode(); encoded != "" {
		reqURL += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, &UpstreamError{Op: op, Err: fmt.Errorf("failed to create request: %w", redactURLError(err))}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &UpstreamError{Op: op, Err: redactURLError(err)}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err = io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, &UpstreamError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		uerr := newStatusError(op, resp.StatusCode, body)
		logging.Debug().Str("op", op).Str("path", path).Int("status", resp.StatusCode).Msg("catalog request failed")
		return nil, uerr
	}

	return body, nil
}
