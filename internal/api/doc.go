// Accelerator Finder - Solution Accelerator Search and Recommendation
// Copyright 2026 FlorKi610
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/FlorKi610/accelerator-finder

/*
Package api provides the HTTP REST API for Accelerator Finder.

Every endpoint lives under /api/v1 and answers with the models.APIResponse
envelope:

	{"status": "success", "data": {...}, "metadata": {"timestamp": "..."}}

Endpoint groups:

 1. Health (/api/v1/health/live, /api/v1/health/ready)
 2. Catalog browse (/api/v1/accelerators, /api/v1/tags)
 3. Recommendations (POST /api/v1/recommendations)
 4. Wizard sessions (/api/v1/wizard/sessions/...)
 5. Cost estimates (/api/v1/cost, /api/v1/cost/estimate)

Prometheus metrics are served at /metrics.

Errors map to HTTP status codes as follows: request validation failures
return 400 VALIDATION_ERROR, unknown accelerators or wizard sessions return
404 NOT_FOUND, and a missing catalog snapshot returns 503
CATALOG_UNAVAILABLE.

Usage:

	handler := api.NewHandler(store, engine, manager, api.HandlerOptions{})
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(&cfg.Security))
	srv := &http.Server{Addr: cfg.Addr(), Handler: router.SetupChi()}
*/
package api
