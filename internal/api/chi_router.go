// Accelerator Finder - Solution Accelerator Search and Recommendation
// Copyright 2026 FlorKi610
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/FlorKi610/accelerator-finder

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/FlorKi610/accelerator-finder/internal/middleware"
	"github.com/FlorKi610/accelerator-finder/internal/models"
)

// Router wires handlers and middleware into a chi mux.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router. A nil middleware factory uses the defaults.
func NewRouter(handler *Handler, mw *ChiMiddleware) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	return &Router{handler: handler, chiMiddleware: mw}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to all routes in order
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // global so OPTIONS preflight is answered
	r.Use(chimiddleware.Compress(5, "application/json"))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusNotFound, models.ErrCodeNotFound, "Route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
	})

	r.Handle("/metrics", promhttp.Handler())

	// Health probes get a permissive limiter
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(middleware.SecurityHeaders)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(middleware.SecurityHeaders)
		r.Use(middleware.PrometheusMetrics)

		r.Get("/accelerators", router.handler.Accelerators)
		r.Get("/accelerators/{title}", router.handler.Accelerator)
		r.Get("/tags", router.handler.Tags)
		r.Get("/tags/suggest", router.handler.SuggestTags)

		r.Post("/recommendations", router.handler.Recommend)

		r.Get("/cost", router.handler.Cost)
		r.Get("/cost/estimate", router.handler.CostEstimate)

		r.Route("/wizard", func(r chi.Router) {
			r.Get("/options", router.handler.WizardOptions)
			r.Post("/sessions", router.handler.WizardStart)
			r.Route("/sessions/{id}", func(r chi.Router) {
				r.Get("/", router.handler.WizardGet)
				r.Delete("/", router.handler.WizardAbandon)
				r.Put("/answers", router.handler.WizardAnswers)
				r.Post("/next", router.handler.WizardNext)
				r.Post("/previous", router.handler.WizardPrevious)
				r.Post("/reset", router.handler.WizardReset)
			})
		})
	})

	return r
}
