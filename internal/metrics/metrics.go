// Accelerator Finder - Solution Accelerator Search and Recommendation
// Copyright 2026 FlorKi610
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/FlorKi610/accelerator-finder

// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "accelfind_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "route", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "accelfind_api_request_duration_seconds",
			Help:    "API request latency in seconds",
			Buckets: []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"method", "route"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "accelfind_api_active_requests",
			Help: "Number of API requests currently being served",
		},
	)

	// Recommendation and filtering
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "accelfind_recommendations_total",
			Help: "Total number of recommendation requests by mode and outcome",
		},
		[]string{"mode", "outcome"}, // mode: text|wizard, outcome: results|empty
	)

	RecommendationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "accelfind_recommendation_duration_seconds",
			Help:    "Time spent scoring the catalog",
			Buckets: []float64{.0001, .00025, .0005, .001, .0025, .005, .01, .025},
		},
		[]string{"mode"},
	)

	RecommendationCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "accelfind_recommendation_cache_hits_total",
			Help: "Recommendation responses served from cache",
		},
	)

	RecommendationCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "accelfind_recommendation_cache_misses_total",
			Help: "Recommendation responses computed because the cache had no entry",
		},
	)

	FilterRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "accelfind_filter_requests_total",
			Help: "Total number of catalog filter requests",
		},
		[]string{"has_query", "has_tags"},
	)

	// Catalog
	CatalogLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "accelfind_catalog_loads_total",
			Help: "Catalog load attempts by source and result",
		},
		[]string{"source", "result"},
	)

	CatalogSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "accelfind_catalog_accelerators",
			Help: "Number of accelerators in the current catalog snapshot",
		},
	)

	CatalogLastLoad = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "accelfind_catalog_last_load_timestamp_seconds",
			Help: "Unix time of the last successful catalog load",
		},
	)

	// Wizard
	WizardSessionEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "accelfind_wizard_session_events_total",
			Help: "Wizard session lifecycle events",
		},
		[]string{"event"}, // created, completed, reset, deleted, expired
	)

	// Circuit breaker
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "accelfind_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "accelfind_circuit_breaker_requests_total",
			Help: "Requests through a circuit breaker by result",
		},
		[]string{"name", "result"}, // success, failure, rejected
	)
)

// RecordAPIRequest records one served API request.
func RecordAPIRequest(method, route string, status int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordRecommendation records one scoring pass.
func RecordRecommendation(mode string, results int, duration time.Duration) {
	outcome := "results"
	if results == 0 {
		outcome = "empty"
	}
	RecommendationsTotal.WithLabelValues(mode, outcome).Inc()
	RecommendationDuration.WithLabelValues(mode).Observe(duration.Seconds())
}

// RecordFilter records one filter request.
func RecordFilter(hasQuery, hasTags bool) {
	FilterRequestsTotal.WithLabelValues(strconv.FormatBool(hasQuery), strconv.FormatBool(hasTags)).Inc()
}

// RecordCatalogLoad records a catalog load attempt. size is ignored on failure.
func RecordCatalogLoad(source string, size int, err error) {
	if err != nil {
		CatalogLoadsTotal.WithLabelValues(source, "failure").Inc()
		return
	}
	CatalogLoadsTotal.WithLabelValues(source, "success").Inc()
	CatalogSize.Set(float64(size))
	CatalogLastLoad.Set(float64(time.Now().Unix()))
}

// RecordWizardEvent records a session lifecycle event.
func RecordWizardEvent(event string) {
	WizardSessionEvents.WithLabelValues(event).Inc()
}
