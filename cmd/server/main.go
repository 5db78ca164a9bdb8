// Indiepick - Indie Game Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiepick

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/tomtom215/indiepick/internal/config"
	"github.com/tomtom215/indiepick/internal/logging"
	"github.com/tomtom215/indiepick/internal/metrics"
	"github.com/tomtom215/indiepick/internal/supervisor"
	"github.com/tomtom215/indiepick/internal/supervisor/services"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Config not yet available, the default logger is used
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	metrics.AppInfo.WithLabelValues(Version, runtime.Version()).Set(1)

	logging.Info().
		Str("version", Version).
		Str("environment", cfg.Server.Environment).
		Str("rawg_base_url", cfg.Catalog.BaseURL).
		Bool("rawg_key_set", cfg.Catalog.APIKey != "").
		Dur("cache_ttl", cfg.Catalog.CacheTTL).
		Int("recent_year_cutoff", cfg.Selection.RecentYearCutoff).
		Msg("Starting Indiepick")

	if cfg.Catalog.APIKey == "" {
		logging.Warn().Msg("RAWG_API_KEY is not set, upstream requests will likely be rejected")
	}
	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}

	app := newApp(cfg)
	defer app.Close()

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	if app.cached != nil && cfg.Catalog.GenreWarmInterval > 0 {
		tree.AddBackgroundService(services.NewGenreWarmerService(app.cached, services.GenreWarmerConfig{
			Interval: cfg.Catalog.GenreWarmInterval,
		}, logging.WithComponent("supervisor")))
		logging.Info().Dur("interval", cfg.Catalog.GenreWarmInterval).Msg("Genre warmer added to supervisor tree")
	}

	server := app.httpServer()
	tree.AddAPIService(services.NewHTTPServerService(server, services.DefaultShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Msg("Starting supervisor tree...")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Application stopped gracefully")
	if len(unstopped) > 0 {
		os.Exit(1)
	}
}
