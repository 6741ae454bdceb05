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

// SessionCleaner purges expired wizard sessions. wizard.Manager satisfies it.
type SessionCleaner interface {
	Cleanup(ctx context.Context) (int, error)
}

// SessionCleanupService purges expired wizard sessions on an interval.
type SessionCleanupService struct {
	cleaner  SessionCleaner
	interval time.Duration
	logger   zerolog.Logger
	name     string
}

// NewSessionCleanupService creates the service. A non-positive interval means 5m.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewSessionCleanupService(cleaner SessionCleaner, interval time.Duration, logger zerolog.Logger) *SessionCleanupService {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &SessionCleanupService{
		cleaner:  cleaner,
		interval: interval,
		logger:   logger.With().Str("service", "session-cleanup").Logger(),
		name:     "session-cleanup",
	}
}

// Serve implements suture.Service.
func (s *SessionCleanupService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			n, err := s.cleaner.Cleanup(ctx)
			if err != nil {
				s.logger.Warn().Err(err).Msg("session cleanup failed")
				continue
			}
			if n > 0 {
				s.logger.Info().Int("removed", n).Msg("expired sessions removed")
			}
		}
	}
}

// String names the service in supervisor events.
func (s *SessionCleanupService) String() string {
	return s.name
}
