// Accelerator Finder - Solution Accelerator Search and Recommendation
// Copyright 2026 FlorKi610
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/FlorKi610/accelerator-finder

package api

import (
	"net/http"
	"time"

	"github.com/FlorKi610/accelerator-finder/internal/catalog"
	"github.com/FlorKi610/accelerator-finder/internal/models"
	"github.com/FlorKi610/accelerator-finder/internal/recommend"
)

// Recommend handles POST /api/v1/recommendations
// Body: {"text": "...", "size": "small|medium|large", "explain": true}
// Returns at most three accelerators ranked by score. Without a size the
// size is inferred from the text. Reasons are included only with explain.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.RecommendRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	snap, ok := h.currentSnapshot(w)
	if !ok {
		return
	}

	size := catalog.Size(req.Size)
	if size == "" {
		size = recommend.InferSize(req.Text)
	}

	results := h.engine.Recommend(r.Context(), snap, req.Text, size)
	if !req.Explain {
		for i := range results {
			results[i].Reasons = nil
		}
	}

	respondSuccess(w, r, http.StatusOK, models.RecommendResponse{
		Size:            size,
		Recommendations: results,
	}, start, snap)
}
