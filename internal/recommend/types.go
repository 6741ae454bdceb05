// Accelerator Finder - Solution Accelerator Search and Recommendation
// Copyright 2026 FlorKi610
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/FlorKi610/accelerator-finder

package recommend

import (
	"errors"
	"fmt"

	"github.com/FlorKi610/accelerator-finder/internal/catalog"
)

// MaxResults caps every recommendation list.
const MaxResults = 3

// Timeframe is how soon the user needs a working solution.
type Timeframe string

// Timeframes.
const (
	TimeframeUrgent   Timeframe = "urgent"
	TimeframeStandard Timeframe = "standard"
	TimeframeExtended Timeframe = "extended"
)

// Valid reports whether t is a known timeframe. The empty timeframe (not yet
// chosen) is not valid.
func (t Timeframe) Valid() bool {
	switch t {
	case TimeframeUrgent, TimeframeStandard, TimeframeExtended:
		return true
	}
	return false
}

// ErrInvalidTimeframe is returned by ParseTimeframe.
var ErrInvalidTimeframe = errors.New("invalid timeframe")

// ParseTimeframe parses a timeframe name.
func ParseTimeframe(s string) (Timeframe, error) {
	t := Timeframe(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeframe, s)
	}
	return t, nil
}

// WizardAnswers is the input collected by the recommendation wizard.
type WizardAnswers struct {
	ProjectSize          catalog.Size `json:"projectSize"`
	PrimaryGoal          string       `json:"primaryGoal"`
	SelectedTechnologies []string     `json:"selectedTechnologies"`
	Timeframe            Timeframe    `json:"timeframe"`
	AdditionalContext    string       `json:"additionalContext"`
}

// DefaultAnswers returns the answers a new wizard starts with.
func DefaultAnswers() WizardAnswers {
	return WizardAnswers{
		ProjectSize:          catalog.SizeMedium,
		SelectedTechnologies: []string{},
	}
}

// ScoredAccelerator is a catalog record with its relevance score. Reasons
// lists the contributions that produced Score.
type ScoredAccelerator struct {
	catalog.Accelerator
	Score   float64  `json:"score"`
	Reasons []string `json:"reasons,omitempty"`
}
