// Accelerator Finder - Solution Accelerator Search and Recommendation
// Copyright 2026 FlorKi610
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/FlorKi610/accelerator-finder

package api

import (
	"time"

	"github.com/FlorKi610/accelerator-finder/internal/catalog"
	"github.com/FlorKi610/accelerator-finder/internal/recommend"
	"github.com/FlorKi610/accelerator-finder/internal/wizard"
)

// Tag autocomplete limits.
const (
	defaultSuggestLimit = 10
	maxSuggestLimit     = 50
)

// HandlerOptions carries optional handler settings.
type HandlerOptions struct {
	// SessionStoreKind is reported by the readiness probe.
	SessionStoreKind string
}

// Handler serves the API endpoints.
type Handler struct {
	catalog   *catalog.Store
	engine    *recommend.Engine
	wizard    *wizard.Manager
	opts      HandlerOptions
	startTime time.Time
}

// NewHandler creates a handler over the catalog store, the recommendation
// engine and the wizard session manager.
//
// Dependencies:
//   - store: holds the active catalog snapshot, swapped on refresh
//   - engine: ranks accelerators and caches results per snapshot
//   - manager: runs wizard transitions against the session store
func NewHandler(store *catalog.Store, engine *recommend.Engine, manager *wizard.Manager, opts HandlerOptions) *Handler {
	return &Handler{
		catalog:   store,
		engine:    engine,
		wizard:    manager,
		opts:      opts,
		startTime: time.Now(),
	}
}
