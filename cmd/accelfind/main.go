// Accelerator Finder - Solution Accelerator Search and Recommendation
// Copyright 2026 FlorKi610
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/FlorKi610/accelerator-finder

// Command accelfind searches the accelerator catalog, recommends
// accelerators for a project description, estimates monthly cost and runs
// the recommendation wizard in the terminal.
//
// Examples:
//
//	accelfind search rag --tag "Azure OpenAI"
//	accelfind recommend "enterprise document search" --explain
//	accelfind cost --tag "Azure OpenAI" --tag "Azure AI Search" --format json
//	accelfind wizard
//	accelfind validate ./catalog.yaml
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
