// Accelerator Finder - Solution Accelerator Search and Recommendation
// Copyright 2026 FlorKi610
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/FlorKi610/accelerator-finder

package cost

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/goccy/go-json"
)

// Output formats accepted by NewFormatter.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// Formatter renders cost tiers.
type Formatter interface {
	Format(w io.Writer, tiers []Tier) error
}

// NewFormatter returns the formatter for name.
func NewFormatter(name string) (Formatter, error) {
	switch name {
	case "", FormatTable:
		return tableFormatter{}, nil
	case FormatJSON:
		return jsonFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q (want %s or %s)", name, FormatTable, FormatJSON)
	}
}

type tableFormatter struct{}

func (tableFormatter) Format(w io.Writer, tiers []Tier) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, tier := range tiers {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintf(tw, "%s\t%s\n", tier.Size, tier.Description)
		for _, e := range tier.Breakdown {
			fmt.Fprintf(tw, "  %s\t$%d/mo\n", e.Service, e.MonthlyCost)
		}
		fmt.Fprintf(tw, "  Total\t$%d/mo\n", tier.Total)
	}
	return tw.Flush()
}

type jsonFormatter struct{}

func (jsonFormatter) Format(w io.Writer, tiers []Tier) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(tiers)
}
