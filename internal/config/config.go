// Accelerator Finder - Solution Accelerator Search and Recommendation
// Copyright 2026 FlorKi610
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/FlorKi610/accelerator-finder

// Package config loads runtime configuration for the server and the CLI.
//
// Sources are layered with Koanf v2, highest priority last:
//
//  1. Built-in defaults (defaultConfig)
//  2. YAML file from CONFIG_PATH or one of DefaultConfigPaths
//  3. Environment variables (see envMappings)
package config

import "time"

// Config is the complete application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Wizard    WizardConfig    `koanf:"wizard"`
	Security  SecurityConfig  `koanf:"security"`
	Recommend RecommendConfig `koanf:"recommend"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Host    string        `koanf:"host"`
	Port    int           `koanf:"port"`
	Timeout time.Duration `koanf:"timeout"`
}

// LoggingConfig mirrors logging.Config.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Catalog source kinds.
const (
	CatalogSourceEmbedded = "embedded"
	CatalogSourceFile     = "file"
	CatalogSourceURL      = "url"
)

// CatalogConfig selects where accelerators are loaded from.
type CatalogConfig struct {
	// Source is embedded, file, or url.
	Source string `koanf:"source"`

	// Path is read when Source is file.
	Path string `koanf:"path"`

	// URL is fetched when Source is url.
	URL string `koanf:"url"`

	// RefreshInterval reloads file and url catalogs periodically. Zero disables refresh.
	RefreshInterval time.Duration `koanf:"refresh_interval"`

	// FetchTimeout bounds a single remote fetch.
	FetchTimeout time.Duration `koanf:"fetch_timeout"`
}

// Session store kinds.
const (
	SessionStoreMemory = "memory"
	SessionStoreBadger = "badger"
	SessionStoreRedis  = "redis"
)

// WizardConfig controls wizard session storage.
type WizardConfig struct {
	SessionStore string        `koanf:"session_store"`
	SessionTTL   time.Duration `koanf:"session_ttl"`
	BadgerPath   string        `koanf:"badger_path"`
	RedisAddr    string        `koanf:"redis_addr"`
	RedisDB      int           `koanf:"redis_db"`
	// CleanupInterval is how often expired sessions are purged.
	CleanupInterval time.Duration `koanf:"cleanup_interval"`
}

// SecurityConfig controls CORS and rate limiting.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitRequests int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// RecommendConfig controls the recommendation response cache.
type RecommendConfig struct {
	CacheEnabled bool          `koanf:"cache_enabled"`
	CacheTTL     time.Duration `koanf:"cache_ttl"`
	CacheSize    int           `koanf:"cache_size"`
}

// Load reads configuration from defaults, file, and environment.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
