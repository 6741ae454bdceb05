// Accelerator Finder - Solution Accelerator Search and Recommendation
// Copyright 2026 FlorKi610
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/FlorKi610/accelerator-finder

package wizard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/FlorKi610/accelerator-finder/internal/config"
)

type storeCase struct {
	name string
	open func(t *testing.T) SessionStore
	// cleansExpired is false for stores that rely on native TTLs.
	cleansExpired bool
}

func storeCases() []storeCase {
	return []storeCase{
		{
			name:          "memory",
			open:          func(t *testing.T) SessionStore { return NewMemorySessionStore() },
			cleansExpired: true,
		},
		{
			name: "badger",
			open: func(t *testing.T) SessionStore {
				db, err := OpenBadger("")
				if err != nil {
					t.Fatalf("open badger: %v", err)
				}
				t.Cleanup(func() { _ = db.Close() })
				return NewBadgerSessionStore(db)
			},
			cleansExpired: true,
		},
		{
			name: "redis",
			open: func(t *testing.T) SessionStore {
				mr := miniredis.RunT(t)
				client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
				t.Cleanup(func() { _ = client.Close() })
				return NewRedisSessionStore(client)
			},
		},
	}
}

func TestSessionStoreRoundTrip(t *testing.T) {
	for _, tc := range storeCases() {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			store := tc.open(t)

			session := NewSession(time.Hour)
			session.Wizard.SetPrimaryGoal("Data analysis and insights")
			session.Wizard.ToggleTechnology("Azure OpenAI")
			if err := store.Create(ctx, session); err != nil {
				t.Fatalf("Create() error = %v", err)
			}

			got, err := store.Get(ctx, session.ID)
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			if got.ID != session.ID || got.Wizard.Answers().PrimaryGoal != "Data analysis and insights" {
				t.Errorf("Get() = %+v", got)
			}

			// The stored copy is independent of the caller's session.
			session.Wizard.SetPrimaryGoal("changed")
			again, _ := store.Get(ctx, session.ID)
			if again.Wizard.Answers().PrimaryGoal != "Data analysis and insights" {
				t.Error("store shares state with caller")
			}

			if err := got.Wizard.Next(nil); err != nil {
				t.Fatal(err)
			}
			if err := store.Update(ctx, got); err != nil {
				t.Fatalf("Update() error = %v", err)
			}
			updated, _ := store.Get(ctx, session.ID)
			if updated.Wizard.Step() != StepPrimaryGoal {
				t.Errorf("step after update = %v", updated.Wizard.Step())
			}

			if err := store.Delete(ctx, session.ID); err != nil {
				t.Fatalf("Delete() error = %v", err)
			}
			if err := store.Delete(ctx, session.ID); err != nil {
				t.Errorf("second Delete() error = %v", err)
			}
			if _, err := store.Get(ctx, session.ID); !errors.Is(err, ErrSessionNotFound) {
				t.Errorf("Get() after delete error = %v", err)
			}
			if err := store.Update(ctx, got); !errors.Is(err, ErrSessionNotFound) {
				t.Errorf("Update() of deleted session error = %v", err)
			}
		})
	}
}

func TestSessionStoreExpiry(t *testing.T) {
	for _, tc := range storeCases() {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			store := tc.open(t)

			live := NewSession(time.Hour)
			expired := NewSession(time.Hour)
			expired.ExpiresAt = time.Now().Add(-time.Minute)
			for _, s := range []*Session{live, expired} {
				if err := store.Create(ctx, s); err != nil {
					t.Fatal(err)
				}
			}

			if _, err := store.Get(ctx, expired.ID); !errors.Is(err, ErrSessionExpired) {
				t.Errorf("Get(expired) error = %v", err)
			}

			n, err := store.CleanupExpired(ctx)
			if err != nil {
				t.Fatal(err)
			}
			want := 0
			if tc.cleansExpired {
				want = 1
			}
			if n != want {
				t.Errorf("CleanupExpired() = %d, want %d", n, want)
			}
			if _, err := store.Get(ctx, live.ID); err != nil {
				t.Errorf("live session lost: %v", err)
			}
		})
	}
}

func TestRedisTTLEvictsSession(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	store := NewRedisSessionStore(client)

	session := NewSession(time.Minute)
	if err := store.Create(ctx, session); err != nil {
		t.Fatal(err)
	}
	if ttl := mr.TTL(redisKey(session.ID)); ttl <= 0 || ttl > time.Minute {
		t.Errorf("TTL = %v", ttl)
	}
	mr.FastForward(2 * time.Minute)
	if _, err := store.Get(ctx, session.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Get() after TTL error = %v", err)
	}
}

func TestOpenSessionStore(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	tests := []struct {
		name    string
		cfg     config.WizardConfig
		wantErr bool
	}{
		{"memory", config.WizardConfig{SessionStore: config.SessionStoreMemory}, false},
		{"badger", config.WizardConfig{SessionStore: config.SessionStoreBadger, BadgerPath: t.TempDir()}, false},
		{"redis", config.WizardConfig{SessionStore: config.SessionStoreRedis, RedisAddr: mr.Addr()}, false},
		{"redis unreachable", config.WizardConfig{SessionStore: config.SessionStoreRedis, RedisAddr: "127.0.0.1:1"}, true},
		{"unknown", config.WizardConfig{SessionStore: "etcd"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opened, err := OpenSessionStore(ctx, &tt.cfg)
			if tt.wantErr {
				if err == nil {
					_ = opened.Close()
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("OpenSessionStore() error = %v", err)
			}
			defer opened.Close()
			s := NewSession(time.Minute)
			if err := opened.Store.Create(ctx, s); err != nil {
				t.Errorf("Create() error = %v", err)
			}
		})
	}
}
