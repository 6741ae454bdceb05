// Accelerator Finder - Solution Accelerator Search and Recommendation
// Copyright 2026 FlorKi610
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/FlorKi610/accelerator-finder

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/FlorKi610/accelerator-finder/internal/catalog"
	"github.com/FlorKi610/accelerator-finder/internal/recommend"
	"github.com/FlorKi610/accelerator-finder/internal/wizard"
)

// errInputClosed ends the wizard when stdin runs out before completion.
var errInputClosed = errors.New("wizard aborted: input closed")

func newWizardCmd(c *cli) *cobra.Command {
	var explain bool

	cmd := &cobra.Command{
		Use:   "wizard",
		Short: "Answer five questions and get recommendations",
		Long: `Wizard asks for project size, primary goal, technologies, timeframe and any
extra context, then recommends up to three accelerators.

Answer with an option number or a value. An empty answer keeps the current
value; "back" returns to the previous question.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap, err := c.snapshot(cmd.Context())
			if err != nil {
				return err
			}

			w, err := runWizard(c.in, c.out, snap)
			if err != nil {
				return err
			}
			if c.jsonOutput {
				return writeJSON(c.out, w.Results())
			}
			fmt.Fprintln(c.out, "\nRecommended accelerators:")
			printRecommendations(c.out, w.Results(), explain)
			return nil
		},
	}
	cmd.Flags().BoolVar(&explain, "explain", false, "show how each score was built")
	return cmd
}

// runWizard drives a wizard from line-oriented input until it completes.
func runWizard(in io.Reader, out io.Writer, snap *catalog.Snapshot) (*wizard.Wizard, error) {
	w := wizard.New()
	techs := snap.AllTags()
	sc := bufio.NewScanner(in)

	for !w.Complete() {
		step := w.Step()
		info, _ := step.Info()
		fmt.Fprintf(out, "\nStep %d of %d: %s (%d%%)\n%s\n", step, wizard.TotalSteps, info.Title, w.Progress(), info.Prompt)
		printStepOptions(out, step, techs)
		fmt.Fprint(out, "> ")

		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, err
			}
			return nil, errInputClosed
		}
		line := strings.TrimSpace(sc.Text())

		if strings.EqualFold(line, "back") {
			w.Previous()
			continue
		}
		if err := applyAnswer(w, step, line, techs); err != nil {
			fmt.Fprintf(out, "  %v\n", err)
			continue
		}
		if err := w.Next(snap.Accelerators()); err != nil {
			return nil, err
		}
	}
	return w, nil
}

func printStepOptions(out io.Writer, step wizard.Step, techs []string) {
	switch step {
	case wizard.StepProjectSize:
		for i, o := range wizard.ProjectSizes() {
			fmt.Fprintf(out, "  %d) %s: %s\n", i+1, o.Label, o.Description)
		}
	case wizard.StepPrimaryGoal:
		for i, g := range wizard.PrimaryGoals() {
			fmt.Fprintf(out, "  %d) %s\n", i+1, g)
		}
		fmt.Fprintln(out, "  or describe your goal")
	case wizard.StepTechnologies:
		for i, t := range techs {
			fmt.Fprintf(out, "  %d) %s\n", i+1, t)
		}
		fmt.Fprintln(out, "  comma-separated numbers or names")
	case wizard.StepTimeframe:
		for i, o := range wizard.Timeframes() {
			fmt.Fprintf(out, "  %d) %s\n", i+1, o.Label)
		}
	}
}

// applyAnswer records one line of input for step. Empty input changes nothing.
func applyAnswer(w *wizard.Wizard, step wizard.Step, line string, techs []string) error {
	if line == "" {
		return nil
	}

	switch step {
	case wizard.StepProjectSize:
		value, err := pickOption(line, wizard.ProjectSizes())
		if err != nil {
			return err
		}
		return w.SetProjectSize(catalog.Size(value))

	case wizard.StepPrimaryGoal:
		goals := wizard.PrimaryGoals()
		if n, err := strconv.Atoi(line); err == nil {
			if n < 1 || n > len(goals) {
				return fmt.Errorf("choose 1-%d", len(goals))
			}
			line = goals[n-1]
		}
		w.SetPrimaryGoal(line)
		return nil

	case wizard.StepTechnologies:
		selected, err := pickTechnologies(line, techs)
		if err != nil {
			return err
		}
		w.SetTechnologies(selected)
		return nil

	case wizard.StepTimeframe:
		value, err := pickOption(line, wizard.Timeframes())
		if err != nil {
			return err
		}
		return w.SetTimeframe(recommend.Timeframe(value))

	case wizard.StepAdditionalContext:
		w.SetAdditionalContext(line)
	}
	return nil
}

// pickOption accepts a 1-based option number or an option value.
func pickOption(line string, opts []wizard.Option) (string, error) {
	if n, err := strconv.Atoi(line); err == nil {
		if n < 1 || n > len(opts) {
			return "", fmt.Errorf("choose 1-%d", len(opts))
		}
		return opts[n-1].Value, nil
	}
	for _, o := range opts {
		if strings.EqualFold(o.Value, line) {
			return o.Value, nil
		}
	}
	return "", fmt.Errorf("unknown choice %q", line)
}

func pickTechnologies(line string, techs []string) ([]string, error) {
	var selected []string
	for _, part := range strings.Split(line, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if n, err := strconv.Atoi(part); err == nil {
			if n < 1 || n > len(techs) {
				return nil, fmt.Errorf("choose 1-%d", len(techs))
			}
			selected = append(selected, techs[n-1])
			continue
		}
		found := false
		for _, t := range techs {
			if strings.EqualFold(t, part) {
				selected = append(selected, t)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown technology %q", part)
		}
	}
	return selected, nil
}
