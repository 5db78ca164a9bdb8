// Indiepick - Indie Game Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiepick

package config

import (
	"fmt"
	"net/url"
	"time"
)

const (
	minRateLimitRequests = 1           // Minimum 1 request allowed
	maxRateLimitRequests = 100000      // Maximum 100K requests per window
	minRateLimitWindow   = time.Second // Minimum 1 second window
	maxRateLimitWindow   = time.Hour   // Maximum 1 hour window

	// Release year bounds accepted by the filter normalizer
	minSelectableYear = 1990
	maxSelectableYear = 2030

	maxRecencyCapacity = 1000
)

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateCatalog(); err != nil {
		return err
	}

	if err := c.validateSelection(); err != nil {
		return err
	}

	if err := c.validateRateLimits(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}

// validateCatalog validates upstream catalog configuration
func (c *Config) validateCatalog() error {
	if err := validateHTTPURL(c.Catalog.BaseURL, "RAWG_BASE_URL"); err != nil {
		return err
	}
	if c.Catalog.APIKey == "" && c.IsProduction() {
		return fmt.Errorf("RAWG_API_KEY is required when ENVIRONMENT=production")
	}
	if c.Catalog.Timeout <= 0 {
		return fmt.Errorf("RAWG_TIMEOUT must be positive")
	}
	if c.Catalog.RateLimit <= 0 {
		return fmt.Errorf("RAWG_RATE_LIMIT must be positive")
	}
	if c.Catalog.RateBurst < 1 {
		return fmt.Errorf("RAWG_RATE_BURST must be at least 1")
	}
	if c.Catalog.CacheTTL < 0 {
		return fmt.Errorf("RAWG_CACHE_TTL must not be negative")
	}
	if c.Catalog.Platform < 1 {
		return fmt.Errorf("RAWG_PLATFORM must be a positive platform id")
	}
	if c.Catalog.GenreWarmInterval < 0 {
		return fmt.Errorf("GENRE_WARM_INTERVAL must not be negative")
	}
	return nil
}

// validateSelection validates the selection policy years and recency capacity
func (c *Config) validateSelection() error {
	s := c.Selection
	for name, year := range map[string]int{
		"SELECTION_RECENT_YEAR_CUTOFF": s.RecentYearCutoff,
		"SELECTION_DEFAULT_MIN_YEAR":   s.DefaultMinYear,
		"SELECTION_CAP_YEAR":           s.CapYear,
	} {
		if year < minSelectableYear || year > maxSelectableYear {
			return fmt.Errorf("%s must be between %d and %d", name, minSelectableYear, maxSelectableYear)
		}
	}
	if s.DefaultMinYear > s.CapYear {
		return fmt.Errorf("SELECTION_DEFAULT_MIN_YEAR (%d) must not exceed SELECTION_CAP_YEAR (%d)", s.DefaultMinYear, s.CapYear)
	}
	if s.RecencyCapacity < 1 || s.RecencyCapacity > maxRecencyCapacity {
		return fmt.Errorf("SELECTION_RECENCY_CAPACITY must be between 1 and %d", maxRecencyCapacity)
	}
	return nil
}

// validateRateLimits validates rate limiting bounds
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}

	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// validateHTTPURL checks that raw is an absolute http(s) URL with a host
func validateHTTPURL(raw, name string) error {
	if raw == "" {
		return fmt.Errorf("%s is required", name)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s is invalid: %w", name, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s must use http or https scheme, got %q", name, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%s must include a host", name)
	}
	return nil
}
