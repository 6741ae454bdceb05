// Accelerator Finder - Solution Accelerator Search and Recommendation
// Copyright 2026 FlorKi610
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/FlorKi610/accelerator-finder

package wizard

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/FlorKi610/accelerator-finder/internal/catalog"
	"github.com/FlorKi610/accelerator-finder/internal/logging"
	"github.com/FlorKi610/accelerator-finder/internal/metrics"
	"github.com/FlorKi610/accelerator-finder/internal/recommend"
)

// Session lifecycle events, used as metric labels.
const (
	EventCreated   = "created"
	EventAdvanced  = "advanced"
	EventCompleted = "completed"
	EventReset     = "reset"
	EventAbandoned = "abandoned"
	EventExpired   = "expired"
)

// DefaultSessionTTL applies when a Manager is built with a zero TTL.
const DefaultSessionTTL = 30 * time.Minute

// Manager runs wizard transitions against a SessionStore. A session is
// deleted as soon as its wizard completes.
type Manager struct {
	store  SessionStore
	ttl    time.Duration
	logger zerolog.Logger
}

// NewManager returns a manager over store.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewManager(store SessionStore, ttl time.Duration, logger zerolog.Logger) *Manager {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Manager{
		store:  store,
		ttl:    ttl,
		logger: logger.With().Str("component", "wizard").Logger(),
	}
}

// Start creates a new session.
func (m *Manager) Start(ctx context.Context) (*Session, error) {
	session := NewSession(m.ttl)
	if err := m.store.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	metrics.RecordWizardEvent(EventCreated)
	m.logger.Debug().Str("session_id", session.ID).Msg("wizard session started")
	return session, nil
}

// Get loads a session.
func (m *Manager) Get(ctx context.Context, id string) (*Session, error) {
	return m.store.Get(ctx, id)
}

// Apply loads a session, runs fn on its wizard, and stores the result with a
// refreshed expiry.
func (m *Manager) Apply(ctx context.Context, id string, fn func(*Wizard) error) (*Session, error) {
	session, err := m.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(session.Wizard); err != nil {
		return nil, err
	}
	session.Touch(m.ttl)
	if err := m.store.Update(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SetAnswers applies a partial answer update.
func (m *Manager) SetAnswers(ctx context.Context, id string, patch *AnswersPatch) (*Session, error) {
	return m.Apply(ctx, id, patch.ApplyTo)
}

// Next advances a session. When the wizard completes, rank produces the
// recommendations and the session is removed from the store; the returned
// session carries the results.
func (m *Manager) Next(ctx context.Context, id string, rank RecommendFunc) (*Session, error) {
	session, err := m.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := session.Wizard.NextWith(rank); err != nil {
		return nil, err
	}

	if session.Wizard.Complete() {
		if err := m.store.Delete(ctx, id); err != nil {
			return nil, fmt.Errorf("delete completed session: %w", err)
		}
		metrics.RecordWizardEvent(EventCompleted)
		logging.Ctx(ctx).Info().
			Str("session_id", id).
			Int("results", len(session.Wizard.Results())).
			Msg("wizard session completed")
		return session, nil
	}

	session.Touch(m.ttl)
	if err := m.store.Update(ctx, session); err != nil {
		return nil, err
	}
	metrics.RecordWizardEvent(EventAdvanced)
	return session, nil
}

// NextOver is Next ranking over a catalog snapshot without a cache.
func (m *Manager) NextOver(ctx context.Context, id string, snap *catalog.Snapshot) (*Session, error) {
	return m.Next(ctx, id, func(a recommend.WizardAnswers) []recommend.ScoredAccelerator {
		return recommend.RecommendFromWizard(snap.Accelerators(), a)
	})
}

// Previous moves a session back one step.
func (m *Manager) Previous(ctx context.Context, id string) (*Session, error) {
	return m.Apply(ctx, id, func(w *Wizard) error {
		w.Previous()
		return nil
	})
}

// Reset clears a session's answers and returns it to the first step.
func (m *Manager) Reset(ctx context.Context, id string) (*Session, error) {
	session, err := m.Apply(ctx, id, func(w *Wizard) error {
		w.Reset()
		return nil
	})
	if err == nil {
		metrics.RecordWizardEvent(EventReset)
	}
	return session, err
}

// Abandon deletes a session.
func (m *Manager) Abandon(ctx context.Context, id string) error {
	if err := m.store.Delete(ctx, id); err != nil {
		return err
	}
	metrics.RecordWizardEvent(EventAbandoned)
	return nil
}

// Cleanup purges expired sessions.
func (m *Manager) Cleanup(ctx context.Context) (int, error) {
	n, err := m.store.CleanupExpired(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		metrics.WizardSessionEvents.WithLabelValues(EventExpired).Add(float64(n))
		m.logger.Debug().Int("removed", n).Msg("expired wizard sessions removed")
	}
	return n, nil
}
