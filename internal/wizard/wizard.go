// Accelerator Finder - Solution Accelerator Search and Recommendation
// Copyright 2026 FlorKi610
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/FlorKi610/accelerator-finder

// Package wizard implements the five-step recommendation wizard and the
// session stores that hold a wizard between HTTP requests.
//
// The wizard is linear: project size, primary goal, technologies, timeframe,
// additional context, then complete. Answers may be set at any step and are
// never cleared by moving backwards; only Reset clears them. Completing the
// wizard runs the wizard-weighted recommendation over the catalog.
package wizard

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/FlorKi610/accelerator-finder/internal/catalog"
	"github.com/FlorKi610/accelerator-finder/internal/recommend"
)

// Wizard errors.
var (
	ErrInvalidSize      = catalog.ErrInvalidSize
	ErrInvalidTimeframe = recommend.ErrInvalidTimeframe
	ErrSessionComplete  = errors.New("wizard already complete")
)

// Step is a wizard state.
type Step int

// Steps in order.
const (
	StepProjectSize Step = iota + 1
	StepPrimaryGoal
	StepTechnologies
	StepTimeframe
	StepAdditionalContext
	StepComplete
)

// TotalSteps is the number of input steps.
const TotalSteps = int(StepAdditionalContext)

var stepNames = map[Step]string{
	StepProjectSize:       "project_size",
	StepPrimaryGoal:       "primary_goal",
	StepTechnologies:      "technologies",
	StepTimeframe:         "timeframe",
	StepAdditionalContext: "additional_context",
	StepComplete:          "complete",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// RecommendFunc ranks the catalog for completed answers.
type RecommendFunc func(answers recommend.WizardAnswers) []recommend.ScoredAccelerator

// Wizard is one traversal of the recommendation wizard. It is not safe for
// concurrent use; a session owns its wizard.
type Wizard struct {
	step    Step
	answers recommend.WizardAnswers
	results []recommend.ScoredAccelerator
}

// New returns a wizard at the first step with default answers.
func New() *Wizard {
	return &Wizard{step: StepProjectSize, answers: recommend.DefaultAnswers()}
}

// Step returns the current step.
func (w *Wizard) Step() Step { return w.step }

// Complete reports whether recommendations have been produced.
func (w *Wizard) Complete() bool { return w.step == StepComplete }

// Progress returns the completion percentage shown in the progress bar.
func (w *Wizard) Progress() int {
	if w.step >= StepComplete {
		return 100
	}
	return int(w.step) * 100 / TotalSteps
}

// Answers returns a copy of the collected answers.
func (w *Wizard) Answers() recommend.WizardAnswers {
	a := w.answers
	a.SelectedTechnologies = append([]string{}, w.answers.SelectedTechnologies...)
	return a
}

// Results returns the recommendations once the wizard is complete, and nil
// before that.
func (w *Wizard) Results() []recommend.ScoredAccelerator {
	if w.results == nil {
		return nil
	}
	return append([]recommend.ScoredAccelerator{}, w.results...)
}

// SetProjectSize records the deployment size.
func (w *Wizard) SetProjectSize(size catalog.Size) error {
	if !size.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidSize, size)
	}
	w.answers.ProjectSize = size
	return nil
}

// SetPrimaryGoal records the main objective. Any text is accepted; the
// enumerated PrimaryGoals are suggestions.
func (w *Wizard) SetPrimaryGoal(goal string) {
	w.answers.PrimaryGoal = goal
}

// ToggleTechnology selects tag, or deselects it when already selected. It
// reports whether tag is selected afterwards.
func (w *Wizard) ToggleTechnology(tag string) bool {
	techs := w.answers.SelectedTechnologies
	for i, t := range techs {
		if t == tag {
			w.answers.SelectedTechnologies = append(techs[:i:i], techs[i+1:]...)
			return false
		}
	}
	w.answers.SelectedTechnologies = append(techs, tag)
	return true
}

// SetTechnologies replaces the selection. Duplicates are dropped.
func (w *Wizard) SetTechnologies(tags []string) {
	selected := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		if _, ok := seen[t]; ok || t == "" {
			continue
		}
		seen[t] = struct{}{}
		selected = append(selected, t)
	}
	w.answers.SelectedTechnologies = selected
}

// SetTimeframe records how soon a solution is needed.
func (w *Wizard) SetTimeframe(tf recommend.Timeframe) error {
	if !tf.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidTimeframe, tf)
	}
	w.answers.Timeframe = tf
	return nil
}

// SetAdditionalContext records free-form requirements.
func (w *Wizard) SetAdditionalContext(text string) {
	w.answers.AdditionalContext = text
}

// Next advances one step. On the last input step it completes the wizard by
// ranking records against the answers.
func (w *Wizard) Next(records []catalog.Accelerator) error {
	return w.NextWith(func(a recommend.WizardAnswers) []recommend.ScoredAccelerator {
		return recommend.RecommendFromWizard(records, a)
	})
}

// NextWith is Next with a caller-supplied ranking, such as a cached engine.
func (w *Wizard) NextWith(rank RecommendFunc) error {
	switch {
	case w.step == StepComplete:
		return ErrSessionComplete
	case w.step < StepAdditionalContext:
		w.step++
	default:
		w.results = rank(w.Answers())
		if w.results == nil {
			w.results = []recommend.ScoredAccelerator{}
		}
		w.step = StepComplete
	}
	return nil
}

// Previous moves back one step. It does nothing on the first step or once
// the wizard is complete.
func (w *Wizard) Previous() {
	if w.step > StepProjectSize && w.step < StepComplete {
		w.step--
	}
}

// Reset clears every answer and returns to the first step.
func (w *Wizard) Reset() {
	*w = *New()
}

// wizardState is the serialized form of a Wizard.
type wizardState struct {
	Step    Step                          `json:"step"`
	Answers recommend.WizardAnswers       `json:"answers"`
	Results []recommend.ScoredAccelerator `json:"results,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (w *Wizard) MarshalJSON() ([]byte, error) {
	return json.Marshal(wizardState{Step: w.step, Answers: w.answers, Results: w.results})
}

// UnmarshalJSON implements json.Unmarshaler. It rejects out-of-range steps.
func (w *Wizard) UnmarshalJSON(data []byte) error {
	var st wizardState
	if err := json.Unmarshal(data, &st); err != nil {
		return err
	}
	if st.Step < StepProjectSize || st.Step > StepComplete {
		return fmt.Errorf("wizard: invalid step %d", st.Step)
	}
	if st.Answers.SelectedTechnologies == nil {
		st.Answers.SelectedTechnologies = []string{}
	}
	w.step = st.Step
	w.answers = st.Answers
	w.results = st.Results
	return nil
}
