// Indiepick - Indie Game Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiepick

/*
Package supervisor provides process supervision for Indiepick using suture v4.

# Overview

	RootSupervisor ("indiepick")
	├── BackgroundSupervisor ("background-layer")
	│   └── GenreWarmerService (if GENRE_WARM_INTERVAL > 0)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with suture's backoff. Failures are counted
per layer, so a warmer that keeps failing against the catalog backs off on
its own while the HTTP server keeps serving.

# Usage

	logger := logging.NewSlogLogger()
	tree, err := supervisor.NewSupervisorTree(logger, supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}

	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    logging.Error().Err(err).Msg("supervisor stopped")
	}

Supervisor events are logged through the sutureslog hook, so the slog
logger passed in should be the zerolog bridge from internal/logging.

# Shutdown

Canceling the context stops every layer. Services get ShutdownTimeout to
return; UnstoppedServiceReport names any that did not.
*/
package supervisor
