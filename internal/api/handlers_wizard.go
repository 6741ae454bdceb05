// Accelerator Finder - Solution Accelerator Search and Recommendation
// Copyright 2026 FlorKi610
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/FlorKi610/accelerator-finder

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/FlorKi610/accelerator-finder/internal/logging"
	"github.com/FlorKi610/accelerator-finder/internal/models"
	"github.com/FlorKi610/accelerator-finder/internal/recommend"
	"github.com/FlorKi610/accelerator-finder/internal/wizard"
)

// sessionID returns the {id} route parameter with the session ID also added
// to the logging context.
func sessionID(r *http.Request) (string, *http.Request) {
	id := chi.URLParam(r, "id")
	return id, r.WithContext(logging.ContextWithSessionID(r.Context(), id))
}

func (h *Handler) respondSession(w http.ResponseWriter, r *http.Request, status int, s *wizard.Session, start time.Time) {
	respondSuccess(w, r, status, models.NewWizardSessionResponse(s), start, nil)
}

// WizardStart handles POST /api/v1/wizard/sessions
func (h *Handler) WizardStart(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	session, err := h.wizard.Start(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	w.Header().Set("Location", "/api/v1/wizard/sessions/"+session.ID)
	h.respondSession(w, r, http.StatusCreated, session, start)
}

// WizardGet handles GET /api/v1/wizard/sessions/{id}
func (h *Handler) WizardGet(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id, r := sessionID(r)
	session, err := h.wizard.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	h.respondSession(w, r, http.StatusOK, session, start)
}

// WizardAnswers handles PUT /api/v1/wizard/sessions/{id}/answers
// Body fields are optional; only present fields change.
func (h *Handler) WizardAnswers(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id, r := sessionID(r)

	var patch wizard.AnswersPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	if apiErr := validateRequest(&patch); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	session, err := h.wizard.SetAnswers(r.Context(), id, &patch)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	h.respondSession(w, r, http.StatusOK, session, start)
}

// WizardNext handles POST /api/v1/wizard/sessions/{id}/next
// Leaving the last step ranks the catalog and ends the session; the response
// then carries the results.
func (h *Handler) WizardNext(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id, r := sessionID(r)

	snap, ok := h.currentSnapshot(w)
	if !ok {
		return
	}

	ctx := r.Context()
	session, err := h.wizard.Next(ctx, id, func(a recommend.WizardAnswers) []recommend.ScoredAccelerator {
		return h.engine.RecommendFromWizard(ctx, snap, a)
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, models.NewWizardSessionResponse(session), start, snap)
}

// WizardPrevious handles POST /api/v1/wizard/sessions/{id}/previous
func (h *Handler) WizardPrevious(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id, r := sessionID(r)
	session, err := h.wizard.Previous(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	h.respondSession(w, r, http.StatusOK, session, start)
}

// WizardReset handles POST /api/v1/wizard/sessions/{id}/reset
func (h *Handler) WizardReset(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id, r := sessionID(r)
	session, err := h.wizard.Reset(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	h.respondSession(w, r, http.StatusOK, session, start)
}

// WizardAbandon handles DELETE /api/v1/wizard/sessions/{id}
func (h *Handler) WizardAbandon(w http.ResponseWriter, r *http.Request) {
	id, r := sessionID(r)
	if err := h.wizard.Abandon(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// WizardOptions handles GET /api/v1/wizard/options
// The technology choices are the tags of the active catalog.
func (h *Handler) WizardOptions(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	snap, ok := h.currentSnapshot(w)
	if !ok {
		return
	}

	w.Header().Set("Cache-Control", cachePublic)
	respondSuccess(w, r, http.StatusOK, models.WizardOptions{
		Steps:        wizard.Steps(),
		ProjectSizes: wizard.ProjectSizes(),
		PrimaryGoals: wizard.PrimaryGoals(),
		Technologies: snap.AllTags(),
		Timeframes:   wizard.Timeframes(),
	}, start, snap)
}
