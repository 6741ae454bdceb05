// Accelerator Finder - Solution Accelerator Search and Recommendation
// Copyright 2026 FlorKi610
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/FlorKi610/accelerator-finder

package wizard

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/FlorKi610/accelerator-finder/internal/catalog"
	"github.com/FlorKi610/accelerator-finder/internal/logging"
)

func newTestManager(t *testing.T) (*Manager, *MemorySessionStore) {
	t.Helper()
	store := NewMemorySessionStore()
	return NewManager(store, time.Hour, logging.NewTestLogger(io.Discard)), store
}

func TestManagerFullTraversal(t *testing.T) {
	ctx := context.Background()
	m, store := newTestManager(t)
	snap, err := catalog.NewSnapshot([]catalog.Accelerator{
		{Title: "Starter", Description: "getting started sample", Tags: []string{"Azure OpenAI", "Sample"}, URL: "https://example.com/s"},
		{Title: "Other", Description: "other", Tags: []string{"Kubernetes"}, URL: "https://example.com/o"},
	}, "test")
	if err != nil {
		t.Fatal(err)
	}

	session, err := m.Start(ctx)
	if err != nil {
		t.Fatal(err)
	}

	size, tf := "small", "urgent"
	if _, err := m.SetAnswers(ctx, session.ID, &AnswersPatch{ProjectSize: &size, Timeframe: &tf}); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < TotalSteps-1; i++ {
		s, err := m.NextOver(ctx, session.ID, snap)
		if err != nil {
			t.Fatal(err)
		}
		if s.Wizard.Step() != Step(i+2) {
			t.Fatalf("step = %v, want %v", s.Wizard.Step(), Step(i+2))
		}
	}

	back, err := m.Previous(ctx, session.ID)
	if err != nil || back.Wizard.Step() != StepTimeframe {
		t.Fatalf("Previous() = %v, %v", back.Wizard.Step(), err)
	}
	if _, err := m.NextOver(ctx, session.ID, snap); err != nil {
		t.Fatal(err)
	}

	done, err := m.NextOver(ctx, session.ID, snap)
	if err != nil {
		t.Fatal(err)
	}
	if !done.Wizard.Complete() {
		t.Fatal("expected completion")
	}
	results := done.Wizard.Results()
	if len(results) != 1 || results[0].Title != "Starter" {
		t.Errorf("results = %+v", results)
	}

	if store.Len() != 0 {
		t.Error("completed session should be deleted from the store")
	}
	if _, err := m.Get(ctx, session.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Get() after completion error = %v", err)
	}
}

func TestManagerResetAndAbandon(t *testing.T) {
	ctx := context.Background()
	m, store := newTestManager(t)

	session, _ := m.Start(ctx)
	goal := "Content generation"
	if _, err := m.SetAnswers(ctx, session.ID, &AnswersPatch{PrimaryGoal: &goal}); err != nil {
		t.Fatal(err)
	}
	if _, err := m.NextOver(ctx, session.ID, catalog.Default()); err != nil {
		t.Fatal(err)
	}

	reset, err := m.Reset(ctx, session.ID)
	if err != nil {
		t.Fatal(err)
	}
	if reset.Wizard.Step() != StepProjectSize || reset.Wizard.Answers().PrimaryGoal != "" {
		t.Errorf("Reset() = %v %+v", reset.Wizard.Step(), reset.Wizard.Answers())
	}

	if err := m.Abandon(ctx, session.ID); err != nil {
		t.Fatal(err)
	}
	if store.Len() != 0 {
		t.Error("abandoned session should be deleted")
	}
	if _, err := m.Previous(ctx, session.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Previous() on abandoned session error = %v", err)
	}
}

func TestManagerRejectsInvalidPatch(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)
	session, _ := m.Start(ctx)

	bad := "gigantic"
	if _, err := m.SetAnswers(ctx, session.ID, &AnswersPatch{ProjectSize: &bad}); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("SetAnswers() error = %v", err)
	}
}

func TestManagerCleanup(t *testing.T) {
	ctx := context.Background()
	m, store := newTestManager(t)

	expired := NewSession(time.Hour)
	expired.ExpiresAt = time.Now().Add(-time.Second)
	_ = store.Create(ctx, expired)
	_, _ = m.Start(ctx)

	n, err := m.Cleanup(ctx)
	if err != nil || n != 1 {
		t.Errorf("Cleanup() = %d, %v", n, err)
	}
}

func TestManagerConcurrentSessionsAreIndependent(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)

	var wg sync.WaitGroup
	ids := make([]string, 8)
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s, err := m.Start(ctx)
			if err != nil {
				t.Error(err)
				return
			}
			ids[i] = s.ID
			goal := s.ID
			if _, err := m.SetAnswers(ctx, s.ID, &AnswersPatch{PrimaryGoal: &goal}); err != nil {
				t.Error(err)
			}
		}(i)
	}
	wg.Wait()

	for _, id := range ids {
		s, err := m.Get(ctx, id)
		if err != nil {
			t.Fatal(err)
		}
		if s.Wizard.Answers().PrimaryGoal != id {
			t.Errorf("session %s has goal %q", id, s.Wizard.Answers().PrimaryGoal)
		}
	}
}
