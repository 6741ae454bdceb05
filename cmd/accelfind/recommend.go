// Accelerator Finder - Solution Accelerator Search and Recommendation
// Copyright 2026 FlorKi610
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/FlorKi610/accelerator-finder

package main

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/FlorKi610/accelerator-finder/internal/catalog"
	"github.com/FlorKi610/accelerator-finder/internal/recommend"
)

func newRecommendCmd(c *cli) *cobra.Command {
	var (
		size    string
		explain bool
	)

	cmd := &cobra.Command{
		Use:   "recommend <description>",
		Short: "Recommend up to three accelerators for a project description",
		Long: `Recommend scores every accelerator against the description and prints the
three best. Without --size the size is inferred from words like "enterprise"
or "simple".`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if strings.TrimSpace(text) == "" {
				return errors.New("description must not be blank")
			}
			var sz catalog.Size
			if size != "" {
				parsed, err := catalog.ParseSize(size)
				if err != nil {
					return err
				}
				sz = parsed
			}

			snap, err := c.snapshot(cmd.Context())
			if err != nil {
				return err
			}
			results := recommend.Recommend(snap.Accelerators(), text, sz)
			if c.jsonOutput {
				if !explain {
					for i := range results {
						results[i].Reasons = nil
					}
				}
				return writeJSON(c.out, results)
			}
			printRecommendations(c.out, results, explain)
			return nil
		},
	}
	cmd.Flags().StringVar(&size, "size", "", "deployment size: small, medium, large")
	cmd.Flags().BoolVar(&explain, "explain", false, "show how each score was built")
	return cmd
}
