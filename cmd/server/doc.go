// Indiepick - Indie Game Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiepick

/*
Package main is the entry point for the Indiepick server.

Indiepick serves random indie game picks, game details, similar-game
recommendations and the genre list, backed by the RAWG catalog API.

# Application Architecture

	RootSupervisor ("indiepick")
	├── BackgroundSupervisor ("background-layer")
	│   └── Genre warmer (when GENRE_WARM_INTERVAL > 0 and the cache is on)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (chi router)

Component initialization order:

 1. Configuration: koanf v2 from defaults, optional YAML file and environment
 2. Logging: zerolog with JSON or console output
 3. Catalog: RAWG client with outbound rate limiting, wrapped in a circuit
    breaker and, unless RAWG_CACHE_TTL=0, a TTL cache
 4. Discovery: recency tracker, random game selector and recommendation composer
 5. HTTP: handlers, chi middleware and router
 6. Supervisor Tree: suture v4 runs everything until SIGINT or SIGTERM

# Configuration

Common environment variables:

	RAWG_API_KEY        RAWG API key (required in production)
	HTTP_PORT           listen port (default 5000)
	RAWG_CACHE_TTL      detail and genre cache TTL (default 10m, 0 disables)
	CORS_ORIGINS        comma-separated allowed origins (default *)
	LOG_LEVEL           trace, debug, info, warn or error
	LOG_FORMAT          json or console

See internal/config for the full list.

# Example Usage

	export RAWG_API_KEY=your-rawg-key
	export LOG_FORMAT=console
	./indiepick

	curl 'http://localhost:5000/api/games/random?genres=%5B%22puzzle%22%5D&minRating=80'

# Signal Handling

SIGINT and SIGTERM cancel the supervisor context. The HTTP server stops
accepting connections and drains in-flight requests for up to 10 seconds.
*/
package main
