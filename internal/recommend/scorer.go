// Accelerator Finder - Solution Accelerator Search and Recommendation
// Copyright 2026 FlorKi610
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/FlorKi610/accelerator-finder

package recommend

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/FlorKi610/accelerator-finder/internal/catalog"
)

const (
	keywordPoints    = 1.0
	tagKeywordPoints = 2.0
	technologyPoints = 3.0
	contextPoints    = 0.5
	urgentPoints     = 2.0
	fitDivisor       = 20.0
	minTokenLength   = 4
)

var (
	largeHints = []string{"large", "enterprise", "complex"}
	smallHints = []string{"small", "simple", "basic"}

	// quickStartMarkers are matched case-sensitively inside tags.
	quickStartMarkers = []string{"Sample", "Starter", "Getting Started"}
)

// Tokens splits text on whitespace after folding and keeps tokens longer than
// three characters. Duplicates are kept; each occurrence scores.
func Tokens(text string) []string {
	fields := strings.Fields(catalog.Fold(text))
	out := fields[:0]
	for _, f := range fields {
		if utf8.RuneCountInString(f) >= minTokenLength {
			out = append(out, f)
		}
	}
	return out
}

// InferSize guesses a deployment size from free text. Large hints win over
// small ones; the default is medium.
func InferSize(text string) catalog.Size {
	folded := catalog.Fold(text)
	for _, h := range largeHints {
		if strings.Contains(folded, h) {
			return catalog.SizeLarge
		}
	}
	for _, h := range smallHints {
		if strings.Contains(folded, h) {
			return catalog.SizeSmall
		}
	}
	return catalog.SizeMedium
}

// searchable is the folded text of one record.
type searchable struct {
	haystack string
	tags     []string
}

func newSearchable(rec *catalog.Accelerator) searchable {
	tags := make([]string, len(rec.Tags))
	for i, t := range rec.Tags {
		tags[i] = catalog.Fold(t)
	}
	return searchable{
		haystack: catalog.Fold(rec.Title + " " + rec.Description + " " + strings.Join(rec.Tags, " ")),
		tags:     tags,
	}
}

func (s searchable) inAnyTag(token string) bool {
	for _, t := range s.tags {
		if strings.Contains(t, token) {
			return true
		}
	}
	return false
}

// scoreCard accumulates points and the reasons behind them.
type scoreCard struct {
	score   float64
	reasons []string
}

func (c *scoreCard) add(points float64, format string, args ...any) {
	c.score += points
	c.reasons = append(c.reasons, fmt.Sprintf("%s +%g", fmt.Sprintf(format, args...), points))
}

func (c *scoreCard) keywords(s searchable, tokens []string) {
	for _, tok := range tokens {
		if !strings.Contains(s.haystack, tok) {
			continue
		}
		c.add(keywordPoints, "keyword %q", tok)
		if s.inAnyTag(tok) {
			c.add(tagKeywordPoints, "tag keyword %q", tok)
		}
	}
}

func (c *scoreCard) sizeFit(rec *catalog.Accelerator, size catalog.Size) {
	fit, ok := rec.UseCaseFit.For(size)
	if !ok || fit == 0 {
		return
	}
	c.add(float64(fit)/fitDivisor, "%s fit %d", size, fit)
}

// resolveSize returns size when given, or infers it from text.
func resolveSize(text string, size catalog.Size) catalog.Size {
	if size == "" {
		return InferSize(text)
	}
	return size.OrDefault()
}

// ScoreText scores one record against free text. An empty size is inferred
// from text; an unknown size counts as medium.
func ScoreText(rec *catalog.Accelerator, text string, size catalog.Size) ScoredAccelerator {
	var card scoreCard
	card.keywords(newSearchable(rec), Tokens(text))
	card.sizeFit(rec, resolveSize(text, size))
	return ScoredAccelerator{Accelerator: *rec, Score: card.score, Reasons: card.reasons}
}

// ScoreWizard scores one record against wizard answers. PrimaryGoal is the
// free text and ProjectSize the explicit size.
func ScoreWizard(rec *catalog.Accelerator, answers *WizardAnswers) ScoredAccelerator {
	s := newSearchable(rec)
	var card scoreCard

	card.keywords(s, Tokens(answers.PrimaryGoal))
	card.sizeFit(rec, answers.ProjectSize.OrDefault())

	for _, tech := range uniqueStrings(answers.SelectedTechnologies) {
		if rec.HasTag(tech) {
			card.add(technologyPoints, "technology %q", tech)
		}
	}
	for _, tok := range Tokens(answers.AdditionalContext) {
		if strings.Contains(s.haystack, tok) {
			card.add(contextPoints, "context %q", tok)
		}
	}
	if answers.Timeframe == TimeframeUrgent && hasQuickStartTag(rec) {
		card.add(urgentPoints, "quick start for urgent timeframe")
	}

	return ScoredAccelerator{Accelerator: *rec, Score: card.score, Reasons: card.reasons}
}

func hasQuickStartTag(rec *catalog.Accelerator) bool {
	for _, tag := range rec.Tags {
		for _, m := range quickStartMarkers {
			if strings.Contains(tag, m) {
				return true
			}
		}
	}
	return false
}

func uniqueStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// Recommend ranks records against free text and returns at most MaxResults.
// size may be empty to infer it from text. The result is never nil.
func Recommend(records []catalog.Accelerator, text string, size catalog.Size) []ScoredAccelerator {
	return rank(records, func(rec *catalog.Accelerator) ScoredAccelerator {
		return ScoreText(rec, text, size)
	})
}

// RecommendFromWizard ranks records against completed wizard answers.
func RecommendFromWizard(records []catalog.Accelerator, answers WizardAnswers) []ScoredAccelerator {
	return rank(records, func(rec *catalog.Accelerator) ScoredAccelerator {
		return ScoreWizard(rec, &answers)
	})
}

func rank(records []catalog.Accelerator, score func(*catalog.Accelerator) ScoredAccelerator) []ScoredAccelerator {
	scored := make([]ScoredAccelerator, 0, len(records))
	for i := range records {
		if s := score(&records[i]); s.Score > 0 {
			scored = append(scored, s)
		}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > MaxResults {
		scored = scored[:MaxResults]
	}
	return scored
}
