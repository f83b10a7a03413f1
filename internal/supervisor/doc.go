// Waypoint - Travel Destination Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/waypoint

/*
Package supervisor runs Waypoint's long-lived services under a suture v4
supervisor tree.

The tree has two layers below the root:

	waypoint (root)
	├── data-layer   dataset refresh service (when a refresh interval is set)
	└── api-layer    HTTP server

A service that returns an error or panics is restarted by its layer with
suture's failure backoff. A crash in the data layer does not interrupt the
API, which keeps serving the last table that loaded successfully.

Supervisor events are logged through sutureslog over the zerolog slog
adapter:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	return tree.Serve(ctx)
*/
package supervisor
