// Accelerator Finder - Solution Accelerator Search and Recommendation
// Copyright 2026 FlorKi610
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/FlorKi610/accelerator-finder

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/FlorKi610/accelerator-finder/internal/api"
	"github.com/FlorKi610/accelerator-finder/internal/catalog"
	"github.com/FlorKi610/accelerator-finder/internal/config"
	"github.com/FlorKi610/accelerator-finder/internal/logging"
	"github.com/FlorKi610/accelerator-finder/internal/recommend"
	"github.com/FlorKi610/accelerator-finder/internal/supervisor"
	"github.com/FlorKi610/accelerator-finder/internal/supervisor/services"
	"github.com/FlorKi610/accelerator-finder/internal/wizard"
)

func main() {
	envFile, envErr := config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	if envErr != nil {
		logging.Warn().Err(envErr).Msg("Failed to read .env file")
	} else if envFile != "" {
		logging.Info().Str("path", envFile).Msg("Loaded .env file")
	}

	logging.Info().
		Str("catalog_source", cfg.Catalog.Source).
		Str("session_store", cfg.Wizard.SessionStore).
		Str("addr", cfg.Addr()).
		Msg("Starting Accelerator Finder")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, src, err := initCatalog(ctx, &cfg.Catalog)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize catalog")
	}

	sessions, err := wizard.OpenSessionStore(ctx, &cfg.Wizard)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open wizard session store")
	}
	defer func() {
		if err := sessions.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing session store")
		}
	}()

	engine := recommend.NewEngine(recommend.EngineConfig{
		CacheEnabled: cfg.Recommend.CacheEnabled,
		CacheSize:    cfg.Recommend.CacheSize,
		CacheTTL:     cfg.Recommend.CacheTTL,
	}, logging.Logger())
	manager := wizard.NewManager(sessions.Store, cfg.Wizard.SessionTTL, logging.Logger())

	handler := api.NewHandler(store, engine, manager, api.HandlerOptions{SessionStoreKind: sessions.Kind})
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(&cfg.Security))

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	// sutureslog logs supervisor events through the zerolog bridge
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	if cfg.Catalog.Source != config.CatalogSourceEmbedded && cfg.Catalog.RefreshInterval > 0 {
		tree.AddBackgroundService(services.NewCatalogRefreshService(
			catalog.Refresher{Store: store, Source: src},
			cfg.Catalog.RefreshInterval,
			cfg.Catalog.FetchTimeout,
			logging.Logger(),
		))
		logging.Info().Dur("interval", cfg.Catalog.RefreshInterval).Msg("Catalog refresh service added")
	}
	tree.AddBackgroundService(services.NewSessionCleanupService(manager, cfg.Wizard.CleanupInterval, logging.Logger()))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}

	logging.Info().Msg("Accelerator Finder stopped")
}
