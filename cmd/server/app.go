// Indiepick - Indie Game Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiepick

package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/tomtom215/indiepick/internal/api"
	"github.com/tomtom215/indiepick/internal/catalog"
	"github.com/tomtom215/indiepick/internal/config"
	"github.com/tomtom215/indiepick/internal/discovery"
	"github.com/tomtom215/indiepick/internal/filters"
	"github.com/tomtom215/indiepick/internal/logging"
	"github.com/tomtom215/indiepick/internal/recency"
)

// app holds the wired components of a running server.
type app struct {
	cfg     *config.Config
	catalog catalog.Catalog
	breaker *catalog.CircuitBreakerClient
	cached  *catalog.CachedClient // nil when RAWG_CACHE_TTL is 0
	handler *api.Handler
	router  *api.Router
}

// newApp builds the catalog decorator stack and the HTTP surface:
//
//	Client -> CircuitBreakerClient -> CachedClient -> Selector / Composer -> Handler
func newApp(cfg *config.Config) *app {
	a := &app{cfg: cfg}

	client := catalog.NewClient(&cfg.Catalog)
	a.breaker = catalog.NewCircuitBreakerClient(client)
	a.catalog = a.breaker

	if cfg.Catalog.CacheTTL > 0 {
		a.cached = catalog.NewCachedClient(a.breaker, cfg.Catalog.CacheTTL)
		a.catalog = a.cached
	} else {
		logging.Info().Msg("Catalog cache disabled (RAWG_CACHE_TTL=0)")
	}

	tracker := recency.New(cfg.Selection.RecencyCapacity)
	selector := discovery.NewSelector(a.catalog, tracker, discovery.OptionsFromConfig(cfg))
	composer := discovery.NewComposer(a.catalog, cfg.Catalog.Platform)

	a.handler = api.NewHandler(a.catalog, selector, composer, filters.DefaultsFromConfig(&cfg.Selection))
	a.handler.SetCircuitBreaker(a.breaker)

	a.router = api.NewRouter(a.handler, api.NewChiMiddlewareFromConfig(&cfg.Security))
	return a
}

// httpServer returns the server for the configured address.
func (a *app) httpServer() *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf("%s:%d", a.cfg.Server.Host, a.cfg.Server.Port),
		Handler:           a.router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       a.cfg.Server.Timeout,
		WriteTimeout:      a.cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}
}

// Close releases background resources held by the catalog cache.
func (a *app) Close() {
	if a.cached != nil {
		a.cached.Close()
	}
}
