// Accelerator Finder - Solution Accelerator Search and Recommendation
// Copyright 2026 FlorKi610
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/FlorKi610/accelerator-finder

/*
Package main is the entry point for the Accelerator Finder API server.

The server loads a catalog of Azure solution accelerators and serves search,
recommendation, wizard and cost endpoints under /api/v1.

Component initialization order:

 1. .env file (godotenv), then configuration (Koanf v2)
 2. Logging (zerolog)
 3. Catalog: embedded, file or url source, validated into a snapshot
 4. Wizard session store: memory, badger or redis
 5. Recommendation engine with its result cache
 6. HTTP router (chi) and the suture supervisor tree

The tree runs under a root supervisor:

	RootSupervisor ("accelerator-finder")
	├── BackgroundSupervisor ("background-layer")
	│   ├── CatalogRefreshService (CATALOG_REFRESH_INTERVAL > 0)
	│   └── SessionCleanupService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

SIGINT and SIGTERM cancel the root context and shut the tree down gracefully.
*/
package main
