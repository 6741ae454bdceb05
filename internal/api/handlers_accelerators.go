// Accelerator Finder - Solution Accelerator Search and Recommendation
// Copyright 2026 FlorKi610
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/FlorKi610/accelerator-finder

package api

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/FlorKi610/accelerator-finder/internal/cost"
	"github.com/FlorKi610/accelerator-finder/internal/filter"
	"github.com/FlorKi610/accelerator-finder/internal/metrics"
	"github.com/FlorKi610/accelerator-finder/internal/models"
)

type acceleratorsRequest struct {
	Query string   `json:"q" validate:"max=500"`
	Tags  []string `json:"tag" validate:"max=20,dive,max=100"`
}

type suggestRequest struct {
	Prefix string `json:"prefix" validate:"max=100"`
	Limit  int    `json:"limit" validate:"min=1,max=50"`
}

// Accelerators handles GET /api/v1/accelerators?q=&tag=
// Returns the accelerators matching the free-text query and every tag.
func (h *Handler) Accelerators(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := acceleratorsRequest{
		Query: r.URL.Query().Get("q"),
		Tags:  tagParams(r),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	snap, ok := h.currentSnapshot(w)
	if !ok {
		return
	}

	results := filter.Apply(snap.Accelerators(), filter.Query{Text: req.Query, Tags: req.Tags})
	metrics.RecordFilter(strings.TrimSpace(req.Query) != "", len(req.Tags) > 0)

	w.Header().Set("Cache-Control", cachePublic)
	respondSuccess(w, r, http.StatusOK, models.AcceleratorList{
		Total:        len(results),
		Query:        req.Query,
		Tags:         req.Tags,
		Accelerators: results,
	}, start, snap)
}

// Accelerator handles GET /api/v1/accelerators/{title}
// Returns one accelerator with its cost estimate for every size.
func (h *Handler) Accelerator(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	title := chi.URLParam(r, "title")
	if r.URL.RawPath != "" {
		unescaped, err := url.PathUnescape(title)
		if err != nil {
			respondError(w, http.StatusBadRequest, models.ErrCodeValidation, "Invalid accelerator title", nil)
			return
		}
		title = unescaped
	}

	snap, ok := h.currentSnapshot(w)
	if !ok {
		return
	}

	rec, found := snap.Lookup(title)
	if !found {
		respondError(w, http.StatusNotFound, models.ErrCodeNotFound, "Accelerator not found", nil)
		return
	}

	w.Header().Set("Cache-Control", cachePublic)
	respondSuccess(w, r, http.StatusOK, models.AcceleratorDetail{
		Accelerator: rec,
		Cost:        cost.Estimate(rec.Tags),
	}, start, snap)
}

// Tags handles GET /api/v1/tags
func (h *Handler) Tags(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	snap, ok := h.currentSnapshot(w)
	if !ok {
		return
	}

	w.Header().Set("Cache-Control", cachePublic)
	respondSuccess(w, r, http.StatusOK, models.TagList{
		Tags:        snap.AllTags(),
		DefaultTags: filter.DefaultTags(),
	}, start, snap)
}

// SuggestTags handles GET /api/v1/tags/suggest?prefix=&limit=
// Matching is case-insensitive; suggestions are ordered by how many
// accelerators carry the tag.
func (h *Handler) SuggestTags(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := suggestRequest{
		Prefix: r.URL.Query().Get("prefix"),
		Limit:  getIntParam(r, "limit", defaultSuggestLimit),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	snap, ok := h.currentSnapshot(w)
	if !ok {
		return
	}

	respondSuccess(w, r, http.StatusOK, models.TagSuggestions{
		Prefix:      req.Prefix,
		Suggestions: snap.SuggestTags(req.Prefix, req.Limit),
	}, start, snap)
}
