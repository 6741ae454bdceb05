// Accelerator Finder - Solution Accelerator Search and Recommendation
// Copyright 2026 FlorKi610
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/FlorKi610/accelerator-finder

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/FlorKi610/accelerator-finder/internal/catalog"
)

func errUnknownAccelerator(title string) error {
	return fmt.Errorf("unknown accelerator %q", title)
}

func newValidateCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a catalog file",
		Long: `Validate parses a catalog YAML file and reports every record with an empty
or duplicate title, a missing or malformed URL, or an incomplete useCaseFit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			records, err := catalog.Parse(data)
			if err != nil {
				return err
			}

			if err := catalog.Validate(records); err != nil {
				var verr *catalog.ValidationError
				if errors.As(err, &verr) {
					for _, r := range verr.Records {
						fmt.Fprintf(c.out, "record %d %q: %v\n", r.Index, r.Title, r.Err)
					}
				}
				return fmt.Errorf("%s: %d invalid record(s)", args[0], countInvalid(err))
			}

			fmt.Fprintf(c.out, "%s: %d accelerator(s), OK\n", args[0], len(records))
			return nil
		},
	}
}

func countInvalid(err error) int {
	var verr *catalog.ValidationError
	if errors.As(err, &verr) {
		return len(verr.Records)
	}
	return 1
}
