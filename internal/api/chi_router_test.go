// Accelerator Finder - Solution Accelerator Search and Recommendation
// Copyright 2026 FlorKi610
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/FlorKi610/accelerator-finder

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/FlorKi610/accelerator-finder/internal/config"
	"github.com/FlorKi610/accelerator-finder/internal/models"
)

func TestRouterMiddlewareStack(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, true)

	t.Run("request id and security headers", func(t *testing.T) {
		rec, env := s.do(t, http.MethodGet, "/api/v1/tags", nil)
		if rec.Header().Get("X-Request-ID") == "" {
			t.Error("X-Request-ID missing")
		}
		if env.Metadata.RequestID != rec.Header().Get("X-Request-ID") {
			t.Errorf("metadata request_id = %q, header %q", env.Metadata.RequestID, rec.Header().Get("X-Request-ID"))
		}
		if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
			t.Error("security headers missing")
		}
		if rec.Header().Get("Cache-Control") != cachePublic {
			t.Errorf("Cache-Control = %q", rec.Header().Get("Cache-Control"))
		}
	})

	t.Run("wizard responses are not cached", func(t *testing.T) {
		rec, _ := s.do(t, http.MethodPost, "/api/v1/wizard/sessions", nil)
		if rec.Header().Get("Cache-Control") != cacheNoStore {
			t.Errorf("Cache-Control = %q", rec.Header().Get("Cache-Control"))
		}
	})

	t.Run("cors preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/recommendations", nil)
		req.Header.Set("Origin", "https://app.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rec := httptest.NewRecorder()
		s.handler.ServeHTTP(rec, req)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
			t.Errorf("Access-Control-Allow-Origin = %q", got)
		}
	})

	t.Run("unknown route uses the envelope", func(t *testing.T) {
		rec, env := s.do(t, http.MethodGet, "/api/v1/nope", nil)
		if rec.Code != http.StatusNotFound || env.Status != models.StatusError || env.Error.Code != models.ErrCodeNotFound {
			t.Errorf("status = %d, env = %+v", rec.Code, env)
		}
	})

	t.Run("wrong method", func(t *testing.T) {
		rec, _ := s.do(t, http.MethodDelete, "/api/v1/tags", nil)
		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("status = %d, want 405", rec.Code)
		}
	})

	t.Run("metrics endpoint", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		rec := httptest.NewRecorder()
		s.handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "accelfind_") {
			t.Errorf("metrics status = %d", rec.Code)
		}
	})
}

func TestRateLimit(t *testing.T) {
	t.Parallel()

	mw := NewChiMiddleware(&ChiMiddlewareConfig{
		RateLimitRequests: 2,
		RateLimitWindow:   time.Minute,
	})
	h := mw.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	codes := make([]int, 3)
	for i := range codes {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/tags", nil)
		req.RemoteAddr = "192.0.2.1:1234"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes[i] = rec.Code
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Errorf("codes = %v", codes)
	}
}

func TestRateLimitDisabled(t *testing.T) {
	t.Parallel()

	mw := NewChiMiddlewareFromConfig(&config.SecurityConfig{RateLimitDisabled: true})
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})
	for _, limiter := range []func(http.Handler) http.Handler{mw.RateLimit(), mw.RateLimitHealth()} {
		if got := limiter(next); got == nil {
			t.Fatal("limiter returned nil handler")
		}
	}
}
