// Accelerator Finder - Solution Accelerator Search and Recommendation
// Copyright 2026 FlorKi610
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/FlorKi610/accelerator-finder

package wizard

import (
	"errors"
	"testing"

	"github.com/goccy/go-json"

	"github.com/FlorKi610/accelerator-finder/internal/catalog"
	"github.com/FlorKi610/accelerator-finder/internal/recommend"
)

func testRecords() []catalog.Accelerator {
	return []catalog.Accelerator{
		{Title: "Plain Chat", Description: "chat over your data", Tags: []string{"Azure Functions"}, URL: "a"},
		{Title: "OpenAI Chat", Description: "chat over your data", Tags: []string{"Azure Functions", "Azure OpenAI"}, URL: "b"},
		{Title: "Unrelated", Description: "batch jobs", Tags: []string{"Kubernetes"}, URL: "c"},
	}
}

func TestNewDefaults(t *testing.T) {
	w := New()
	if w.Step() != StepProjectSize {
		t.Errorf("Step() = %v", w.Step())
	}
	a := w.Answers()
	if a.ProjectSize != catalog.SizeMedium || a.PrimaryGoal != "" || a.Timeframe != "" ||
		a.AdditionalContext != "" || len(a.SelectedTechnologies) != 0 {
		t.Errorf("default answers = %+v", a)
	}
	if w.Progress() != 20 {
		t.Errorf("Progress() = %d, want 20", w.Progress())
	}
}

func TestTransitions(t *testing.T) {
	w := New()
	w.Previous()
	if w.Step() != StepProjectSize {
		t.Fatalf("Previous at step 1 should be a no-op, got %v", w.Step())
	}

	records := testRecords()
	for want := StepPrimaryGoal; want <= StepAdditionalContext; want++ {
		if err := w.Next(records); err != nil {
			t.Fatal(err)
		}
		if w.Step() != want {
			t.Fatalf("Step() = %v, want %v", w.Step(), want)
		}
	}
	if w.Progress() != 100 {
		t.Errorf("Progress() at step 5 = %d", w.Progress())
	}

	w.Previous()
	if w.Step() != StepTimeframe {
		t.Errorf("Previous from step 5 = %v", w.Step())
	}
	if err := w.Next(records); err != nil {
		t.Fatal(err)
	}
	if err := w.Next(records); err != nil {
		t.Fatal(err)
	}
	if !w.Complete() {
		t.Fatal("wizard should be complete")
	}
	if err := w.Next(records); !errors.Is(err, ErrSessionComplete) {
		t.Errorf("Next after complete error = %v", err)
	}
	w.Previous()
	if !w.Complete() {
		t.Error("Previous after complete should be a no-op")
	}
}

func TestPreviousKeepsAnswers(t *testing.T) {
	w := New()
	records := testRecords()
	_ = w.Next(records)
	w.SetPrimaryGoal("Conversational AI or chatbot")
	_ = w.Next(records)
	w.ToggleTechnology("Azure OpenAI")
	_ = w.Next(records)
	if err := w.SetTimeframe(recommend.TimeframeUrgent); err != nil {
		t.Fatal(err)
	}

	w.Previous()
	w.Previous()
	w.Previous()
	a := w.Answers()
	if a.PrimaryGoal == "" || len(a.SelectedTechnologies) != 1 || a.Timeframe != recommend.TimeframeUrgent {
		t.Errorf("answers lost when moving back: %+v", a)
	}
}

func TestSetters(t *testing.T) {
	w := New()
	if err := w.SetProjectSize("huge"); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("SetProjectSize(huge) error = %v", err)
	}
	if err := w.SetProjectSize(catalog.SizeLarge); err != nil {
		t.Fatal(err)
	}
	if err := w.SetTimeframe("someday"); !errors.Is(err, ErrInvalidTimeframe) {
		t.Errorf("SetTimeframe(someday) error = %v", err)
	}

	if !w.ToggleTechnology("A") || !w.ToggleTechnology("B") {
		t.Fatal("toggle on should report selected")
	}
	if w.ToggleTechnology("A") {
		t.Fatal("toggle off should report deselected")
	}
	if got := w.Answers().SelectedTechnologies; len(got) != 1 || got[0] != "B" {
		t.Errorf("SelectedTechnologies = %v", got)
	}

	w.SetTechnologies([]string{"X", "X", "", "Y"})
	if got := w.Answers().SelectedTechnologies; len(got) != 2 {
		t.Errorf("SetTechnologies dedupe = %v", got)
	}

	// Setters work regardless of step.
	w.SetAdditionalContext("needs SQL")
	if w.Answers().AdditionalContext != "needs SQL" || w.Answers().ProjectSize != catalog.SizeLarge {
		t.Errorf("answers = %+v", w.Answers())
	}
}

func TestCompletionRanksSelectedTechnology(t *testing.T) {
	w := New()
	w.ToggleTechnology("Azure OpenAI")
	w.SetPrimaryGoal("AI")
	records := testRecords()
	for !w.Complete() {
		if err := w.Next(records); err != nil {
			t.Fatal(err)
		}
	}
	results := w.Results()
	if len(results) != 1 || results[0].Title != "OpenAI Chat" {
		t.Fatalf("results = %+v", results)
	}
}

func TestResetClearsEverything(t *testing.T) {
	w := New()
	_ = w.SetProjectSize(catalog.SizeSmall)
	w.SetPrimaryGoal("goal")
	w.ToggleTechnology("Azure OpenAI")
	for !w.Complete() {
		_ = w.Next(testRecords())
	}
	w.Reset()
	if w.Step() != StepProjectSize || w.Complete() || len(w.Results()) != 0 {
		t.Errorf("Reset left state: step %v, results %d", w.Step(), len(w.Results()))
	}
	if a := w.Answers(); a.ProjectSize != catalog.SizeMedium || a.PrimaryGoal != "" || len(a.SelectedTechnologies) != 0 {
		t.Errorf("Reset answers = %+v", a)
	}
}

func TestWizardJSONRoundTrip(t *testing.T) {
	w := New()
	_ = w.Next(nil)
	w.SetPrimaryGoal("Content generation")
	data, err := json.Marshal(w)
	if err != nil {
		t.Fatal(err)
	}
	var got Wizard
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got.Step() != StepPrimaryGoal || got.Answers().PrimaryGoal != "Content generation" {
		t.Errorf("decoded = %v %+v", got.Step(), got.Answers())
	}

	if err := json.Unmarshal([]byte(`{"step":9}`), &got); err == nil {
		t.Error("out-of-range step should be rejected")
	}
}

func TestAnswersPatch(t *testing.T) {
	str := func(s string) *string { return &s }

	w := New()
	patch := AnswersPatch{
		ProjectSize:          str("small"),
		SelectedTechnologies: []string{"A"},
		ToggleTechnology:     str("B"),
		Timeframe:            str("extended"),
	}
	if err := patch.ApplyTo(w); err != nil {
		t.Fatal(err)
	}
	a := w.Answers()
	if a.ProjectSize != catalog.SizeSmall || len(a.SelectedTechnologies) != 2 || a.Timeframe != recommend.TimeframeExtended {
		t.Errorf("answers = %+v", a)
	}

	bad := AnswersPatch{PrimaryGoal: str("changed"), Timeframe: str("never")}
	if err := bad.ApplyTo(w); !errors.Is(err, ErrInvalidTimeframe) {
		t.Fatalf("ApplyTo error = %v", err)
	}
	if w.Answers().PrimaryGoal != "" {
		t.Error("a rejected patch must not change answers")
	}
}

func TestOptions(t *testing.T) {
	if len(PrimaryGoals()) != 10 || len(Timeframes()) != 3 || len(ProjectSizes()) != 3 || len(Steps()) != TotalSteps {
		t.Error("unexpected option counts")
	}
	if info, ok := StepTimeframe.Info(); !ok || info.Title != "Implementation Timeline" {
		t.Errorf("StepTimeframe.Info() = %+v, %v", info, ok)
	}
	if _, ok := StepComplete.Info(); ok {
		t.Error("StepComplete has no info")
	}
}
