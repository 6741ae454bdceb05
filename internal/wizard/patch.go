// Accelerator Finder - Solution Accelerator Search and Recommendation
// Copyright 2026 FlorKi610
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/FlorKi610/accelerator-finder

package wizard

import (
	"github.com/FlorKi610/accelerator-finder/internal/catalog"
	"github.com/FlorKi610/accelerator-finder/internal/recommend"
)

// AnswersPatch is a partial answer update. Nil fields are left unchanged.
type AnswersPatch struct {
	ProjectSize          *string  `json:"projectSize,omitempty" validate:"omitempty,oneof=small medium large"`
	PrimaryGoal          *string  `json:"primaryGoal,omitempty" validate:"omitempty,max=200"`
	SelectedTechnologies []string `json:"selectedTechnologies,omitempty" validate:"omitempty,max=100,dive,max=100"`
	ToggleTechnology     *string  `json:"toggleTechnology,omitempty" validate:"omitempty,max=100"`
	Timeframe            *string  `json:"timeframe,omitempty" validate:"omitempty,oneof=urgent standard extended"`
	AdditionalContext    *string  `json:"additionalContext,omitempty" validate:"omitempty,max=2000"`
}

// ApplyTo sets every non-nil field on w. Size and timeframe are validated
// before anything is changed.
func (p *AnswersPatch) ApplyTo(w *Wizard) error {
	var size catalog.Size
	if p.ProjectSize != nil {
		s, err := catalog.ParseSize(*p.ProjectSize)
		if err != nil {
			return err
		}
		size = s
	}
	var tf recommend.Timeframe
	if p.Timeframe != nil {
		t, err := recommend.ParseTimeframe(*p.Timeframe)
		if err != nil {
			return err
		}
		tf = t
	}

	if size != "" {
		_ = w.SetProjectSize(size)
	}
	if p.PrimaryGoal != nil {
		w.SetPrimaryGoal(*p.PrimaryGoal)
	}
	if p.SelectedTechnologies != nil {
		w.SetTechnologies(p.SelectedTechnologies)
	}
	if p.ToggleTechnology != nil {
		w.ToggleTechnology(*p.ToggleTechnology)
	}
	if tf != "" {
		_ = w.SetTimeframe(tf)
	}
	if p.AdditionalContext != nil {
		w.SetAdditionalContext(*p.AdditionalContext)
	}
	return nil
}
