// Accelerator Finder - Solution Accelerator Search and Recommendation
// Copyright 2026 FlorKi610
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/FlorKi610/accelerator-finder

package api

import (
	"net/http"
	"time"

	"github.com/FlorKi610/accelerator-finder/internal/models"
)

// HealthLive reports that the process is serving requests.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, http.StatusOK, models.HealthResponse{Status: "alive"}, time.Now(), nil)
}

// HealthReady reports whether a catalog snapshot is loaded. It answers 503
// until the first load succeeds.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	snap, err := h.catalog.Current()
	if err != nil {
		respondJSON(w, http.StatusServiceUnavailable, &models.APIResponse{
			Status: models.StatusError,
			Data: models.HealthResponse{
				Status:       "not_ready",
				SessionStore: h.opts.SessionStoreKind,
			},
			Metadata: models.Metadata{Timestamp: time.Now().UTC()},
			Error: &models.APIError{
				Code:    models.ErrCodeCatalogUnavailable,
				Message: "Catalog is not loaded",
			},
		})
		return
	}

	loadedAt := snap.LoadedAt()
	respondSuccess(w, r, http.StatusOK, models.HealthResponse{
		Status:        "ready",
		CatalogLoaded: true,
		CatalogSource: snap.Source(),
		Accelerators:  snap.Len(),
		LoadedAt:      &loadedAt,
		SessionStore:  h.opts.SessionStoreKind,
	}, start, snap)
}
