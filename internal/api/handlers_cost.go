// Accelerator Finder - Solution Accelerator Search and Recommendation
// Copyright 2026 FlorKi610
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/FlorKi610/accelerator-finder

package api

import (
	"net/http"
	"time"

	"github.com/FlorKi610/accelerator-finder/internal/catalog"
	"github.com/FlorKi610/accelerator-finder/internal/cost"
	"github.com/FlorKi610/accelerator-finder/internal/models"
)

type costRequest struct {
	Tags []string `json:"tag" validate:"max=20,dive,max=100"`
	Size string   `json:"size" validate:"omitempty,oneof=small medium large"`
}

// Cost handles GET /api/v1/cost?tag=&size=
// Size defaults to medium.
func (h *Handler) Cost(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := costRequest{
		Tags: tagParams(r),
		Size: r.URL.Query().Get("size"),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}
	size := catalog.Size(req.Size).OrDefault()

	w.Header().Set("Cache-Control", cachePublic)
	respondSuccess(w, r, http.StatusOK, models.CostResponse{
		Tags:        tags,
		Size:        size,
		Description: cost.SizeDescription(size),
		MonthlyCost: cost.MonthlyCost(tags, size),
		Breakdown:   cost.Breakdown(tags, size),
	}, start, nil)
}

// CostEstimate handles GET /api/v1/cost/estimate?tag=
// Returns the estimate for all three sizes.
func (h *Handler) CostEstimate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := costRequest{Tags: tagParams(r)}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	w.Header().Set("Cache-Control", cachePublic)
	respondSuccess(w, r, http.StatusOK, models.CostEstimateResponse{
		Tags:  tags,
		Tiers: cost.Estimate(tags),
	}, start, nil)
}
