// Accelerator Finder - Solution Accelerator Search and Recommendation
// Copyright 2026 FlorKi610
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/FlorKi610/accelerator-finder

// Package filter implements the browse view: a free-text predicate combined
// with a required-tag predicate, preserving catalog order.
package filter

import (
	"strings"

	"github.com/FlorKi610/accelerator-finder/internal/catalog"
)

// Query selects records. The zero Query matches everything.
type Query struct {
	// Text is matched case-insensitively against title, description, tags and author.
	Text string
	// Tags must all be present on a record, compared exactly.
	Tags []string
}

var defaultTags = []string{
	"Azure OpenAI",
	"Azure AI Search",
	"Azure Cognitive Services",
	"Azure AI Foundry",
	"AI Agents",
	"Azure Functions",
	"Vector Search",
	"LangChain",
	"Azure Machine Learning",
	"Azure Bot Service",
	"Document Processing",
}

// DefaultTags returns the tags offered as quick filters.
func DefaultTags() []string {
	return append([]string(nil), defaultTags...)
}

// Apply returns the records matching q in their original order. The result
// is never nil.
func Apply(records []catalog.Accelerator, q Query) []catalog.Accelerator {
	text := catalog.Fold(q.Text)
	out := make([]catalog.Accelerator, 0, len(records))
	for i := range records {
		if MatchesText(&records[i], text) && MatchesTags(&records[i], q.Tags) {
			out = append(out, records[i])
		}
	}
	return out
}

// MatchesText reports whether folded (already passed through catalog.Fold)
// occurs in any searchable field of rec. Empty text matches.
func MatchesText(rec *catalog.Accelerator, folded string) bool {
	if folded == "" {
		return true
	}
	if strings.Contains(catalog.Fold(rec.Title), folded) ||
		strings.Contains(catalog.Fold(rec.Description), folded) {
		return true
	}
	for _, tag := range rec.Tags {
		if strings.Contains(catalog.Fold(tag), folded) {
			return true
		}
	}
	return rec.Author != "" && strings.Contains(catalog.Fold(rec.Author), folded)
}

// MatchesTags reports whether rec carries every tag in required.
func MatchesTags(rec *catalog.Accelerator, required []string) bool {
	for _, want := range required {
		if !rec.HasTag(want) {
			return false
		}
	}
	return true
}
