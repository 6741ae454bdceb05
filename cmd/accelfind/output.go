// Accelerator Finder - Solution Accelerator Search and Recommendation
// Copyright 2026 FlorKi610
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/FlorKi610/accelerator-finder

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"

	"github.com/FlorKi610/accelerator-finder/internal/catalog"
	"github.com/FlorKi610/accelerator-finder/internal/recommend"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printAccelerators(w io.Writer, records []catalog.Accelerator) {
	fmt.Fprintf(w, "%d accelerator(s)\n", len(records))
	for _, rec := range records {
		fmt.Fprintf(w, "\n%s\n", rec.Title)
		if rec.Description != "" {
			fmt.Fprintf(w, "  %s\n", rec.Description)
		}
		if len(rec.Tags) > 0 {
			fmt.Fprintf(w, "  tags: %s\n", strings.Join(rec.Tags, ", "))
		}
		fmt.Fprintf(w, "  %s\n", rec.URL)
	}
}

func printRecommendations(w io.Writer, results []recommend.ScoredAccelerator, explain bool) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No matching accelerators.")
		return
	}
	for i, r := range results {
		fmt.Fprintf(w, "%d. %s (score %.1f)\n", i+1, r.Title, r.Score)
		fmt.Fprintf(w, "   %s\n", r.URL)
		if explain {
			for _, reason := range r.Reasons {
				fmt.Fprintf(w, "   - %s\n", reason)
			}
		}
	}
}
