// Accelerator Finder - Solution Accelerator Search and Recommendation
// Copyright 2026 FlorKi610
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/FlorKi610/accelerator-finder

package models

import (
	"testing"
	"time"

	"github.com/FlorKi610/accelerator-finder/internal/catalog"
	"github.com/FlorKi610/accelerator-finder/internal/wizard"
)

func TestNewWizardSessionResponse(t *testing.T) {
	s := wizard.NewSession(time.Hour)
	resp := NewWizardSessionResponse(s)
	if resp.Step != 1 || resp.StepName != "project_size" || resp.Progress != 20 || resp.Complete {
		t.Errorf("resp = %+v", resp)
	}
	if resp.StepInfo == nil || resp.StepInfo.Title != "Project Scope" {
		t.Errorf("StepInfo = %+v", resp.StepInfo)
	}
	if resp.ExpiresAt == nil {
		t.Error("open session should carry its expiry")
	}

	for !s.Wizard.Complete() {
		_ = s.Wizard.Next([]catalog.Accelerator{})
	}
	done := NewWizardSessionResponse(s)
	if !done.Complete || done.StepInfo != nil || done.ExpiresAt != nil || done.Results == nil {
		t.Errorf("completed resp = %+v", done)
	}
}
