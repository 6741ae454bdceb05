// Accelerator Finder - Solution Accelerator Search and Recommendation
// Copyright 2026 FlorKi610
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/FlorKi610/accelerator-finder

/*
Package supervisor runs the server's long-lived services under a suture v4
supervisor tree.

The tree has two layers so a failing background job never takes the API down:

	RootSupervisor ("accelerator-finder")
	├── BackgroundSupervisor ("background-layer")
	│   ├── CatalogRefreshService (file and url catalogs with a refresh interval)
	│   └── SessionCleanupService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with suture's backoff. Supervisor events are
logged through sutureslog, bridged to zerolog by logging.NewSlogHandler.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(srv, 10*time.Second))
	tree.AddBackgroundService(services.NewSessionCleanupService(manager, 5*time.Minute, logger))
	return tree.Serve(ctx)
*/
package supervisor
