// Accelerator Finder - Solution Accelerator Search and Recommendation
// Copyright 2026 FlorKi610
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/FlorKi610/accelerator-finder

// Package models defines the JSON shapes of the HTTP API.
package models

import (
	"time"

	"github.com/FlorKi610/accelerator-finder/internal/cache"
	"github.com/FlorKi610/accelerator-finder/internal/catalog"
	"github.com/FlorKi610/accelerator-finder/internal/cost"
	"github.com/FlorKi610/accelerator-finder/internal/recommend"
	"github.com/FlorKi610/accelerator-finder/internal/wizard"
)

// Response status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Error codes.
const (
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeConflict           = "CONFLICT"
	ErrCodeCatalogUnavailable = "CATALOG_UNAVAILABLE"
	ErrCodeInternal           = "INTERNAL_ERROR"
	ErrCodeRateLimited        = "RATE_LIMIT_EXCEEDED"
)

// APIResponse is the envelope of every API response.
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"total": 2, "accelerators": [...]},
//	  "metadata": {"timestamp": "2026-01-10T12:00:00Z", "query_time_ms": 1}
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "data": null,
//	  "error": {"code": "NOT_FOUND", "message": "accelerator not found"},
//	  "metadata": {"timestamp": "2026-01-10T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string    `json:"status"`
	Data     any       `json:"data"`
	Metadata Metadata  `json:"metadata"`
	Error    *APIError `json:"error,omitempty"`
}

// Metadata accompanies every response.
type Metadata struct {
	Timestamp     time.Time `json:"timestamp"`
	QueryTimeMS   int64     `json:"query_time_ms,omitempty"`
	CatalogSource string    `json:"catalog_source,omitempty"`
	RequestID     string    `json:"request_id,omitempty"`
}

// APIError carries a machine-readable code and a human-readable message.
type APIError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// AcceleratorList is the browse result.
type AcceleratorList struct {
	Total        int                   `json:"total"`
	Query        string                `json:"query,omitempty"`
	Tags         []string              `json:"tags,omitempty"`
	Accelerators []catalog.Accelerator `json:"accelerators"`
}

// AcceleratorDetail is one accelerator with its cost estimate.
type AcceleratorDetail struct {
	catalog.Accelerator
	Cost []cost.Tier `json:"cost"`
}

// TagList lists catalog tags and the quick-filter tags.
type TagList struct {
	Tags        []string `json:"tags"`
	DefaultTags []string `json:"defaultTags"`
}

// TagSuggestions is the tag autocomplete result.
type TagSuggestions struct {
	Prefix      string             `json:"prefix"`
	Suggestions []cache.Suggestion `json:"suggestions"`
}

// RecommendRequest asks for free-text recommendations.
//
// Example:
//
//	{"text": "enterprise document search", "size": "large", "explain": true}
type RecommendRequest struct {
	Text    string `json:"text" validate:"notblank,max=2000"`
	Size    string `json:"size,omitempty" validate:"omitempty,oneof=small medium large"`
	Explain bool   `json:"explain,omitempty"`
}

// RecommendResponse carries up to three ranked accelerators.
type RecommendResponse struct {
	Size            catalog.Size                  `json:"size"`
	Recommendations []recommend.ScoredAccelerator `json:"recommendations"`
}

// CostResponse is the estimate for one size.
type CostResponse struct {
	Tags        []string     `json:"tags"`
	Size        catalog.Size `json:"size"`
	Description string       `json:"description"`
	MonthlyCost int          `json:"monthlyCost"`
	Breakdown   []cost.Entry `json:"breakdown"`
}

// CostEstimateResponse is the estimate for every size.
type CostEstimateResponse struct {
	Tags  []string    `json:"tags"`
	Tiers []cost.Tier `json:"tiers"`
}

// WizardSessionResponse is the client view of a wizard session.
type WizardSessionResponse struct {
	ID        string                        `json:"id"`
	Step      int                           `json:"step"`
	StepName  string                        `json:"stepName"`
	StepInfo  *wizard.StepInfo              `json:"stepInfo,omitempty"`
	Progress  int                           `json:"progress"`
	Complete  bool                          `json:"complete"`
	Answers   recommend.WizardAnswers       `json:"answers"`
	Results   []recommend.ScoredAccelerator `json:"results,omitempty"`
	ExpiresAt *time.Time                    `json:"expiresAt,omitempty"`
}

// NewWizardSessionResponse builds the client view of s. Completed sessions
// are already gone from the store, so they carry no expiry.
func NewWizardSessionResponse(s *wizard.Session) WizardSessionResponse {
	w := s.Wizard
	resp := WizardSessionResponse{
		ID:       s.ID,
		Step:     int(w.Step()),
		StepName: w.Step().String(),
		Progress: w.Progress(),
		Complete: w.Complete(),
		Answers:  w.Answers(),
	}
	if info, ok := w.Step().Info(); ok {
		resp.StepInfo = &info
	}
	if w.Complete() {
		resp.Results = w.Results()
	} else {
		expires := s.ExpiresAt
		resp.ExpiresAt = &expires
	}
	return resp
}

// WizardOptions lists the choices for each wizard step.
type WizardOptions struct {
	Steps        []wizard.StepInfo `json:"steps"`
	ProjectSizes []wizard.Option   `json:"projectSizes"`
	PrimaryGoals []string          `json:"primaryGoals"`
	Technologies []string          `json:"technologies"`
	Timeframes   []wizard.Option   `json:"timeframes"`
}

// HealthResponse reports liveness or readiness.
type HealthResponse struct {
	Status        string     `json:"status"`
	CatalogLoaded bool       `json:"catalogLoaded"`
	CatalogSource string     `json:"catalogSource,omitempty"`
	Accelerators  int        `json:"accelerators,omitempty"`
	LoadedAt      *time.Time `json:"loadedAt,omitempty"`
	SessionStore  string     `json:"sessionStore,omitempty"`
}
