// Accelerator Finder - Solution Accelerator Search and Recommendation
// Copyright 2026 FlorKi610
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/FlorKi610/accelerator-finder

package main

import (
	"context"
	"fmt"

	"github.com/FlorKi610/accelerator-finder/internal/catalog"
	"github.com/FlorKi610/accelerator-finder/internal/config"
	"github.com/FlorKi610/accelerator-finder/internal/logging"
)

// initCatalog loads the first snapshot. A remote catalog that is down at
// startup leaves the store empty, so /health/ready reports not ready until a
// refresh succeeds; other sources must load.
func initCatalog(ctx context.Context, cfg *config.CatalogConfig) (*catalog.Store, catalog.Source, error) {
	src, err := catalog.NewSource(cfg.Source, cfg.Path, cfg.URL, cfg.FetchTimeout)
	if err != nil {
		return nil, nil, err
	}

	store := catalog.NewStore(nil)
	loadCtx, cancel := context.WithTimeout(ctx, cfg.FetchTimeout)
	defer cancel()

	if err := catalog.Refresh(loadCtx, store, src); err != nil {
		if cfg.Source == config.CatalogSourceURL && cfg.RefreshInterval > 0 {
			logging.Warn().Err(err).Msg("Initial catalog fetch failed, will retry on refresh")
			return store, src, nil
		}
		return nil, nil, fmt.Errorf("load catalog: %w", err)
	}
	return store, src, nil
}
