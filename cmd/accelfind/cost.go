// Accelerator Finder - Solution Accelerator Search and Recommendation
// Copyright 2026 FlorKi610
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/FlorKi610/accelerator-finder

package main

import (
	"github.com/spf13/cobra"

	"github.com/FlorKi610/accelerator-finder/internal/catalog"
	"github.com/FlorKi610/accelerator-finder/internal/cost"
)

func newCostCmd(c *cli) *cobra.Command {
	var (
		tags   []string
		size   string
		title  string
		format string
	)

	cmd := &cobra.Command{
		Use:   "cost",
		Short: "Estimate monthly Azure cost for a set of services",
		Long: `Cost estimates the monthly cost of the given service tags for each
deployment size. Use --accelerator to take the tags from a catalog entry.

Examples:
  accelfind cost --tag "Azure OpenAI" --tag "Azure AI Search"
  accelfind cost --accelerator "Enterprise ChatGPT" --size large --format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			formatter, err := cost.NewFormatter(format)
			if err != nil {
				return err
			}

			if title != "" {
				snap, err := c.snapshot(cmd.Context())
				if err != nil {
					return err
				}
				rec, ok := snap.Lookup(title)
				if !ok {
					return errUnknownAccelerator(title)
				}
				tags = append(tags, rec.Tags...)
			}

			tiers := cost.Estimate(tags)
			if size != "" {
				sz, err := catalog.ParseSize(size)
				if err != nil {
					return err
				}
				tiers = filterTier(tiers, sz)
			}
			if c.jsonOutput {
				formatter, _ = cost.NewFormatter("json")
			}
			return formatter.Format(c.out, tiers)
		},
	}
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "service tag (repeatable)")
	cmd.Flags().StringVar(&title, "accelerator", "", "use the tags of this accelerator")
	cmd.Flags().StringVar(&size, "size", "", "only this size: small, medium, large")
	cmd.Flags().StringVar(&format, "format", "table", "output format: table, json")
	return cmd
}

func filterTier(tiers []cost.Tier, size catalog.Size) []cost.Tier {
	for _, t := range tiers {
		if t.Size == size {
			return []cost.Tier{t}
		}
	}
	return []cost.Tier{}
}
