// Indiepick - Indie Game Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiepick

package config

import (
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Selection SelectionConfig `koanf:"selection"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // "development", "staging", "production" (default: "development")
}

// CatalogConfig holds upstream game catalog (RAWG) settings.
//
// Environment Variables:
//   - RAWG_API_KEY: API key sent as the "key" query parameter (required in production)
//   - RAWG_BASE_URL: API root (default: https://api.rawg.io/api)
//   - RAWG_TIMEOUT: HTTP client timeout (default: 15s)
//   - RAWG_RATE_LIMIT: Outbound requests per second (default: 5)
//   - RAWG_RATE_BURST: Outbound burst size (default: 10)
//   - RAWG_CACHE_TTL: TTL for cached game details and genres (default: 10m)
//   - RAWG_PLATFORM: Platform id used in queries (default: 4, PC)
//   - GENRE_WARM_INTERVAL: Genre cache refresh interval, 0 disables (default: 0)
type CatalogConfig struct {
	BaseURL           string        `koanf:"base_url"`
	APIKey            string        `koanf:"api_key"`
	Timeout           time.Duration `koanf:"timeout"`
	RateLimit         float64       `koanf:"rate_limit"`
	RateBurst         int           `koanf:"rate_burst"`
	CacheTTL          time.Duration `koanf:"cache_ttl"`
	Platform          int           `koanf:"platform"`
	GenreWarmInterval time.Duration `koanf:"genre_warm_interval"`
}

// SelectionConfig holds random game selection policy.
//
// RecentYearCutoff marks the start of the "recent" release window. Queries whose
// selected year is at or above it skip rating floors and independence filtering
// and randomize paging instead, because the catalog has sparse ratings for new titles.
type SelectionConfig struct {
	RecentYearCutoff int      `koanf:"recent_year_cutoff"`
	DefaultMinYear   int      `koanf:"default_min_year"`
	CapYear          int      `koanf:"cap_year"`
	RecencyCapacity  int      `koanf:"recency_capacity"`
	MajorPublishers  []string `koanf:"major_publishers"`
}

// SecurityConfig holds request throttling and CORS settings
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// DefaultMajorPublishers lists publishers whose titles are treated as non-independent
// when a game carries no explicit indie genre or tag.
var DefaultMajorPublishers = []string{
	"Electronic Arts",
	"Ubisoft",
	"Activision",
	"Blizzard",
	"Take-Two Interactive",
	"2K Games",
	"Rockstar Games",
	"Square Enix",
	"Sony Interactive Entertainment",
	"Microsoft Game Studios",
	"Nintendo",
	"Bandai Namco",
	"Capcom",
	"SEGA",
	"THQ Nordic",
	"Warner Bros. Interactive",
	"505 Games",
	"Focus Home Interactive",
	"Devolver Digital",
}

// Load reads configuration from defaults, an optional YAML file and environment variables.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
