// Accelerator Finder - Solution Accelerator Search and Recommendation
// Copyright 2026 FlorKi610
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/FlorKi610/accelerator-finder

package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/FlorKi610/accelerator-finder/internal/filter"
)

func newSearchCmd(c *cli) *cobra.Command {
	var tags []string

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search accelerators by text and tags",
		Long: `Search matches the query case-insensitively against title, description,
tags and author. Every --tag must be present on a result.

Examples:
  accelfind search                          # list everything
  accelfind search chat --tag "Azure OpenAI"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := c.snapshot(cmd.Context())
			if err != nil {
				return err
			}
			results := filter.Apply(snap.Accelerators(), filter.Query{
				Text: strings.Join(args, " "),
				Tags: tags,
			})
			if c.jsonOutput {
				return writeJSON(c.out, results)
			}
			printAccelerators(c.out, results)
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "required tag (repeatable)")
	return cmd
}
