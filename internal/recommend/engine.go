// Accelerator Finder - Solution Accelerator Search and Recommendation
// Copyright 2026 FlorKi610
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/FlorKi610/accelerator-finder

package recommend

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/FlorKi610/accelerator-finder/internal/cache"
	"github.com/FlorKi610/accelerator-finder/internal/catalog"
	"github.com/FlorKi610/accelerator-finder/internal/logging"
	"github.com/FlorKi610/accelerator-finder/internal/metrics"
)

// Recommendation modes, used as metric labels.
const (
	ModeText   = "text"
	ModeWizard = "wizard"
)

// EngineConfig controls the result cache.
type EngineConfig struct {
	CacheEnabled bool
	CacheSize    int
	CacheTTL     time.Duration
}

// Engine serves recommendations over catalog snapshots. Results are cached
// per snapshot, so a catalog refresh never serves stale rankings.
type Engine struct {
	logger zerolog.Logger
	cache  *cache.LRU[[]ScoredAccelerator]
}

// NewEngine returns an engine. A disabled cache leaves every call uncached.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg EngineConfig, logger zerolog.Logger) *Engine {
	e := &Engine{logger: logger.With().Str("component", "recommend").Logger()}
	if cfg.CacheEnabled {
		e.cache = cache.NewLRU[[]ScoredAccelerator](cfg.CacheSize, cfg.CacheTTL)
	}
	return e
}

// Recommend ranks snap against free text.
func (e *Engine) Recommend(ctx context.Context, snap *catalog.Snapshot, text string, size catalog.Size) []ScoredAccelerator {
	key := snapshotKey(snap) + "|t|" + string(size) + "|" + text
	return e.run(ctx, ModeText, key, func() []ScoredAccelerator {
		return Recommend(snap.Accelerators(), text, size)
	})
}

// RecommendFromWizard ranks snap against wizard answers.
func (e *Engine) RecommendFromWizard(ctx context.Context, snap *catalog.Snapshot, answers WizardAnswers) []ScoredAccelerator {
	return e.run(ctx, ModeWizard, snapshotKey(snap)+"|w|"+answersKey(&answers), func() []ScoredAccelerator {
		return RecommendFromWizard(snap.Accelerators(), answers)
	})
}

func (e *Engine) run(ctx context.Context, mode, key string, compute func() []ScoredAccelerator) []ScoredAccelerator {
	start := time.Now()
	logger := logging.Ctx(ctx).With().Str("component", "recommend").Str("mode", mode).Logger()

	if e.cache != nil {
		if cached, ok := e.cache.Get(key); ok {
			metrics.RecommendationCacheHits.Inc()
			logger.Debug().Int("returned", len(cached)).Msg("cache hit")
			return append([]ScoredAccelerator{}, cached...)
		}
		metrics.RecommendationCacheMisses.Inc()
	}

	results := compute()
	if e.cache != nil {
		e.cache.Set(key, results)
	}

	elapsed := time.Since(start)
	metrics.RecordRecommendation(mode, len(results), elapsed)
	logger.Debug().
		Int("returned", len(results)).
		Dur("latency", elapsed).
		Msg("recommendation complete")

	return append([]ScoredAccelerator{}, results...)
}

// PurgeCache drops all cached results.
func (e *Engine) PurgeCache() {
	if e.cache != nil {
		e.cache.Purge()
		e.logger.Debug().Msg("recommendation cache purged")
	}
}

// CacheLen returns the number of cached result sets.
func (e *Engine) CacheLen() int {
	if e.cache == nil {
		return 0
	}
	return e.cache.Len()
}

func snapshotKey(snap *catalog.Snapshot) string {
	return fmt.Sprintf("%s@%d", snap.Source(), snap.LoadedAt().UnixNano())
}

func answersKey(a *WizardAnswers) string {
	techs := uniqueStrings(a.SelectedTechnologies)
	sort.Strings(techs)
	return fmt.Sprintf("%s|%q|%q|%s|%q", a.ProjectSize, a.PrimaryGoal, strings.Join(techs, "\x00"), a.Timeframe, a.AdditionalContext)
}
