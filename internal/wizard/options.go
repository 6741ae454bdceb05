// Accelerator Finder - Solution Accelerator Search and Recommendation
// Copyright 2026 FlorKi610
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/FlorKi610/accelerator-finder

package wizard

import (
	"github.com/FlorKi610/accelerator-finder/internal/catalog"
	"github.com/FlorKi610/accelerator-finder/internal/recommend"
)

// Option is one selectable answer.
type Option struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

// StepInfo describes a step for clients that render the wizard.
type StepInfo struct {
	Step   Step   `json:"step"`
	Name   string `json:"name"`
	Title  string `json:"title"`
	Prompt string `json:"prompt"`
}

var steps = []StepInfo{
	{StepProjectSize, StepProjectSize.String(), "Project Scope", "What is the size of your project or implementation?"},
	{StepPrimaryGoal, StepPrimaryGoal.String(), "Primary Goal", "What is the main objective of your solution?"},
	{StepTechnologies, StepTechnologies.String(), "Technology Stack", "Which Azure technologies are you most interested in using? (Select all that apply)"},
	{StepTimeframe, StepTimeframe.String(), "Implementation Timeline", "What's your expected implementation timeline?"},
	{StepAdditionalContext, StepAdditionalContext.String(), "Additional Details", "Any specific requirements or context about your project?"},
}

// Steps returns the five input steps in order.
func Steps() []StepInfo {
	return append([]StepInfo(nil), steps...)
}

// Info returns the description of s. ok is false for StepComplete.
func (s Step) Info() (StepInfo, bool) {
	if s < StepProjectSize || s > StepAdditionalContext {
		return StepInfo{}, false
	}
	return steps[s-1], true
}

// ProjectSizes lists the size answers.
func ProjectSizes() []Option {
	return []Option{
		{string(catalog.SizeSmall), "Small Project", "Proof of concept, hobby project, or small team implementation"},
		{string(catalog.SizeMedium), "Medium Project", "Department-level solution or standard business application"},
		{string(catalog.SizeLarge), "Large Enterprise Project", "Organization-wide implementation or complex enterprise solution"},
	}
}

var primaryGoals = []string{
	"Document processing and search",
	"Conversational AI or chatbot",
	"Data analysis and insights",
	"Content generation",
	"Enterprise security and governance",
	"Voice and speech processing",
	"Image and video processing",
	"Integration with existing systems",
	"AI agent development",
	"End-to-end application",
}

// PrimaryGoals lists the suggested primary goals.
func PrimaryGoals() []string {
	return append([]string(nil), primaryGoals...)
}

// Timeframes lists the timeframe answers.
func Timeframes() []Option {
	return []Option{
		{string(recommend.TimeframeUrgent), "Urgent (Days)", "Need a quick solution to implement right away"},
		{string(recommend.TimeframeStandard), "Standard (Weeks)", "Have a reasonable timeframe for implementation"},
		{string(recommend.TimeframeExtended), "Extended (Months)", "Planning a thorough implementation with customization"},
	}
}
