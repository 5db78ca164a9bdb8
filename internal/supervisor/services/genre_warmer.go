// Indiepick - Indie Game Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiepick

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/indiepick/internal/models"
)

// GenreRefresher reloads the genre list, bypassing any cached copy.
// Satisfied by *catalog.CachedClient.
type GenreRefresher interface {
	RefreshGenres(ctx context.Context) ([]models.Genre, error)
}

// GenreWarmerConfig holds configuration for the genre warmer.
type GenreWarmerConfig struct {
	// Interval between refreshes. Must be positive.
	Interval time.Duration

	// RefreshTimeout bounds a single refresh.
	// Default: 30s
	RefreshTimeout time.Duration
}

// GenreWarmerService keeps the cached genre list fresh.
// It refreshes once on start and then every Interval.
type GenreWarmerService struct {
	refresher GenreRefresher
	config    GenreWarmerConfig
	logger    zerolog.Logger
	name      string
}

// NewGenreWarmerService creates a genre warmer.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewGenreWarmerService(refresher GenreRefresher, cfg GenreWarmerConfig, logger zerolog.Logger) *GenreWarmerService {
	if cfg.RefreshTimeout <= 0 {
		cfg.RefreshTimeout = 30 * time.Second
	}
	return &GenreWarmerService{
		refresher: refresher,
		config:    cfg,
		logger:    logger.With().Str("service", "genre-warmer").Logger(),
		name:      "genre-warmer",
	}
}

// Serve implements suture.Service.
func (s *GenreWarmerService) Serve(ctx context.Context) error {
	if s.config.Interval <= 0 {
		s.logger.Warn().Msg("genre warmer started without a positive interval")
		return suture.ErrDoNotRestart
	}

	s.logger.Info().Dur("interval", s.config.Interval).Msg("genre warmer starting")
	s.refresh(ctx)

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("genre warmer shutting down")
			return ctx.Err()

		case <-ticker.C:
			s.refresh(ctx)
		}
	}
}

func (s *GenreWarmerService) refresh(ctx context.Context) {
	refreshCtx, cancel := context.WithTimeout(ctx, s.config.RefreshTimeout)
	defer cancel()

	start := time.Now()
	genres, err := s.refresher.RefreshGenres(refreshCtx)
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Warn().Err(err).Msg("genre refresh failed, keeping cached list")
		}
		return
	}

	s.logger.Debug().
		Int("genres", len(genres)).
		Dur("duration", time.Since(start)).
		Msg("genre list refreshed")
}

// String returns the service name for logging.
func (s *GenreWarmerService) String() string {
	return s.name
}
