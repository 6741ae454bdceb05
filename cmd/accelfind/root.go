// Accelerator Finder - Solution Accelerator Search and Recommendation
// Copyright 2026 FlorKi610
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/FlorKi610/accelerator-finder

package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/FlorKi610/accelerator-finder/internal/catalog"
	"github.com/FlorKi610/accelerator-finder/internal/config"
	"github.com/FlorKi610/accelerator-finder/internal/logging"
)

const defaultFetchTimeout = 10 * time.Second

// cli holds state shared by all subcommands.
type cli struct {
	in  io.Reader
	out io.Writer

	catalogPath string
	catalogURL  string
	logLevel    string
	jsonOutput  bool

	snap *catalog.Snapshot
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	c := &cli{in: in, out: out}

	rootCmd := &cobra.Command{
		Use:   "accelfind",
		Short: "Find Azure solution accelerators for a project",
		Long: `accelfind searches a catalog of Azure solution accelerators, recommends
the best matches for a project description, and estimates monthly cost.

The catalog defaults to the one built into the binary. Use --catalog to read a
YAML file or --catalog-url to fetch one.`,
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if _, err := config.LoadDotEnv(); err != nil {
				logging.Warn().Err(err).Msg("failed to read .env file")
			}
			logging.Init(logging.Config{Level: c.logLevel, Format: "console", Output: os.Stderr})
		},
	}
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)

	rootCmd.PersistentFlags().StringVar(&c.catalogPath, "catalog", "", "catalog YAML file (default: built-in catalog)")
	rootCmd.PersistentFlags().StringVar(&c.catalogURL, "catalog-url", "", "fetch the catalog from this URL")
	rootCmd.PersistentFlags().StringVar(&c.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&c.jsonOutput, "json", false, "print JSON instead of text")

	rootCmd.AddCommand(
		newSearchCmd(c),
		newRecommendCmd(c),
		newCostCmd(c),
		newWizardCmd(c),
		newTagsCmd(c),
		newValidateCmd(c),
	)
	return rootCmd
}

// snapshot loads the catalog selected by the flags, falling back to the
// CATALOG_* settings and then the built-in catalog.
func (c *cli) snapshot(ctx context.Context) (*catalog.Snapshot, error) {
	if c.snap != nil {
		return c.snap, nil
	}

	kind, path, url := "", c.catalogPath, c.catalogURL
	timeout := defaultFetchTimeout
	switch {
	case path != "":
		kind = config.CatalogSourceFile
	case url != "":
		kind = config.CatalogSourceURL
	default:
		if cfg, err := config.Load(); err == nil {
			kind, path, url, timeout = cfg.Catalog.Source, cfg.Catalog.Path, cfg.Catalog.URL, cfg.Catalog.FetchTimeout
		} else {
			logging.Debug().Err(err).Msg("no usable configuration, using built-in catalog")
		}
	}
	src, err := catalog.NewSource(kind, path, url, timeout)
	if err != nil {
		return nil, err
	}
	snap, err := catalog.Load(ctx, src)
	if err != nil {
		return nil, err
	}
	c.snap = snap
	return snap, nil
}
