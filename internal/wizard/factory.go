// Accelerator Finder - Solution Accelerator Search and Recommendation
// Copyright 2026 FlorKi610
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/FlorKi610/accelerator-finder

package wizard

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/FlorKi610/accelerator-finder/internal/config"
)

// OpenedStore is a session store plus the resources it holds open.
type OpenedStore struct {
	Store SessionStore
	Kind  string
	close func() error
}

// Close releases the database or client behind the store.
func (o *OpenedStore) Close() error {
	if o.close == nil {
		return nil
	}
	return o.close()
}

// OpenSessionStore builds the store selected by cfg.SessionStore. For redis
// it pings the server so a bad address fails at startup.
func OpenSessionStore(ctx context.Context, cfg *config.WizardConfig) (*OpenedStore, error) {
	switch cfg.SessionStore {
	case "", config.SessionStoreMemory:
		return &OpenedStore{Store: NewMemorySessionStore(), Kind: config.SessionStoreMemory}, nil

	case config.SessionStoreBadger:
		db, err := OpenBadger(cfg.BadgerPath)
		if err != nil {
			return nil, err
		}
		return &OpenedStore{Store: NewBadgerSessionStore(db), Kind: cfg.SessionStore, close: db.Close}, nil

	case config.SessionStoreRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, DB: cfg.RedisDB})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("connect to redis at %s: %w", cfg.RedisAddr, err)
		}
		return &OpenedStore{Store: NewRedisSessionStore(client), Kind: cfg.SessionStore, close: client.Close}, nil

	default:
		return nil, fmt.Errorf("unknown session store %q", cfg.SessionStore)
	}
}
