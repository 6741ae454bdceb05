// Accelerator Finder - Solution Accelerator Search and Recommendation
// Copyright 2026 FlorKi610
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/FlorKi610/accelerator-finder

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// CatalogRefresher reloads the catalog. catalog.Refresher satisfies it.
type CatalogRefresher interface {
	Refresh(ctx context.Context) error
}

// CatalogRefreshService reloads a file or url catalog on an interval. A
// failed reload keeps the previous snapshot, so errors are logged and the
// service keeps running.
type CatalogRefreshService struct {
	refresher CatalogRefresher
	interval  time.Duration
	timeout   time.Duration
	logger    zerolog.Logger
	name      string
}

// NewCatalogRefreshService creates the service. timeout bounds one reload;
// zero means the interval.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCatalogRefreshService(refresher CatalogRefresher, interval, timeout time.Duration, logger zerolog.Logger) *CatalogRefreshService {
	if timeout <= 0 {
		timeout = interval
	}
	return &CatalogRefreshService{
		refresher: refresher,
		interval:  interval,
		timeout:   timeout,
		logger:    logger.With().Str("service", "catalog-refresh").Logger(),
		name:      "catalog-refresh",
	}
}

// Serve implements suture.Service.
func (s *CatalogRefreshService) Serve(ctx context.Context) error {
	if s.interval <= 0 {
		s.logger.Info().Msg("catalog refresh disabled")
		<-ctx.Done()
		return ctx.Err()
	}

	s.logger.Info().Dur("interval", s.interval).Msg("catalog refresh service starting")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.refresh(ctx)
		}
	}
}

func (s *CatalogRefreshService) refresh(ctx context.Context) {
	refreshCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	if err := s.refresher.Refresh(refreshCtx); err != nil {
		s.logger.Warn().Err(err).Msg("scheduled catalog refresh failed")
		return
	}
	s.logger.Debug().Dur("duration", time.Since(start)).Msg("catalog refreshed")
}

// String names the service in supervisor events.
func (s *CatalogRefreshService) String() string {
	return s.name
}
