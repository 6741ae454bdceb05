// Accelerator Finder - Solution Accelerator Search and Recommendation
// Copyright 2026 FlorKi610
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/FlorKi610/accelerator-finder

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/FlorKi610/accelerator-finder/internal/filter"
)

func newTagsCmd(c *cli) *cobra.Command {
	var (
		prefix   string
		defaults bool
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List catalog tags",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if defaults {
				return c.printList(filter.DefaultTags())
			}

			snap, err := c.snapshot(cmd.Context())
			if err != nil {
				return err
			}
			if prefix == "" {
				return c.printList(snap.AllTags())
			}

			suggestions := snap.SuggestTags(prefix, limit)
			if c.jsonOutput {
				return writeJSON(c.out, suggestions)
			}
			for _, s := range suggestions {
				fmt.Fprintf(c.out, "%s (%d)\n", s.Value, s.Count)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&prefix, "prefix", "", "only tags starting with this prefix, most used first")
	cmd.Flags().BoolVar(&defaults, "defaults", false, "list the quick-filter tags")
	cmd.Flags().IntVar(&limit, "limit", 10, "maximum suggestions with --prefix")
	return cmd
}

func (c *cli) printList(items []string) error {
	if c.jsonOutput {
		return writeJSON(c.out, items)
	}
	for _, item := range items {
		fmt.Fprintln(c.out, item)
	}
	return nil
}
