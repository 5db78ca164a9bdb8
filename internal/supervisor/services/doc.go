// Indiepick - Indie Game Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiepick

/*
Package services provides suture.Service wrappers for Indiepick components.

Each wrapper implements suture.Service and fmt.Stringer:

	type Service interface {
	    Serve(ctx context.Context) error
	}

HTTPServerService turns the blocking ListenAndServe of *http.Server into a
context-aware Serve with a bounded graceful Shutdown.

GenreWarmerService refreshes the cached genre list on an interval so that
GET /api/genres is served from memory. A failed refresh is logged and the
previous list stays cached; it never returns an error to the supervisor.
*/
package services
