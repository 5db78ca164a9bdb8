// Indiepick - Indie Game Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiepick

/*
Package config provides centralized configuration management for Indiepick.

Configuration is layered with Koanf v2:

 1. Built-in defaults (defaultConfig)
 2. Optional YAML file (CONFIG_PATH, ./config.yaml, /etc/indiepick/config.yaml)
 3. Environment variables (highest priority)

# Configuration Structure

  - ServerConfig: HTTP listener (host, port, timeout, environment)
  - CatalogConfig: RAWG API access, outbound rate limit, cache TTL
  - SelectionConfig: release windows, recency capacity, publisher denylist
  - SecurityConfig: inbound rate limiting and CORS
  - LoggingConfig: zerolog level and output format

# Environment Variables

Server:
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 5000)
  - HTTP_TIMEOUT: Read/write timeout (default: 30s)
  - ENVIRONMENT: development, staging or production

Catalog:
  - RAWG_API_KEY: Required when ENVIRONMENT=production
  - RAWG_BASE_URL, RAWG_TIMEOUT, RAWG_RATE_LIMIT, RAWG_RATE_BURST
  - RAWG_CACHE_TTL, RAWG_PLATFORM, GENRE_WARM_INTERVAL

Selection:
  - SELECTION_RECENT_YEAR_CUTOFF (default: 2024)
  - SELECTION_DEFAULT_MIN_YEAR (default: 2015)
  - SELECTION_CAP_YEAR (default: 2025)
  - SELECTION_RECENCY_CAPACITY (default: 10)
  - SELECTION_MAJOR_PUBLISHERS: Comma-separated publisher names

Security:
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT
  - CORS_ORIGINS: Comma-separated origins (default: *)

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Usage

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}
	fmt.Println(cfg.Server.Port)

Validation runs as part of Load; an invalid configuration never reaches callers.
*/
package config
