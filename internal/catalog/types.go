// Accelerator Finder - Solution Accelerator Search and Recommendation
// Copyright 2026 FlorKi610
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/FlorKi610/accelerator-finder

// Package catalog defines accelerator records and loads validated catalog
// snapshots from the embedded YAML file, a local file, or a remote URL.
//
// A snapshot is immutable. Callers hand Snapshot.Accelerators() to the pure
// filter, recommend and cost functions; a refresh builds a new snapshot and
// swaps it into the Store atomically.
//
// Title is the identity key of a record. It must be non-empty and unique
// within a snapshot. URL is required but may repeat, because several
// accelerators can live in one umbrella repository.
package catalog

import "fmt"

// Size is a deployment size tier.
type Size string

// Deployment sizes.
const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// Sizes returns the tiers in ascending order.
func Sizes() []Size {
	return []Size{SizeSmall, SizeMedium, SizeLarge}
}

// Valid reports whether s is one of the three tiers.
func (s Size) Valid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return true
	}
	return false
}

// OrDefault returns s, or medium when s is not a valid tier.
func (s Size) OrDefault() Size {
	if s.Valid() {
		return s
	}
	return SizeMedium
}

// ParseSize parses a size name.
func ParseSize(s string) (Size, error) {
	size := Size(s)
	if !size.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidSize, s)
	}
	return size, nil
}

// Accelerator is one catalog record.
type Accelerator struct {
	Title       string      `yaml:"title" json:"title" validate:"notblank"`
	Description string      `yaml:"description" json:"description"`
	Tags        []string    `yaml:"tags" json:"tags"`
	URL         string      `yaml:"url" json:"url" validate:"required,url"`
	Author      string      `yaml:"author,omitempty" json:"author,omitempty"`
	UseCaseFit  *UseCaseFit `yaml:"useCaseFit,omitempty" json:"useCaseFit,omitempty" validate:"omitempty"`
}

// UseCaseFit holds suitability scores (0-100) per deployment size. The fields
// are pointers so a missing bucket can be told apart from an explicit zero;
// validation rejects a fit with any bucket missing.
type UseCaseFit struct {
	Small  *int `yaml:"small" json:"small" validate:"required,min=0,max=100"`
	Medium *int `yaml:"medium" json:"medium" validate:"required,min=0,max=100"`
	Large  *int `yaml:"large" json:"large" validate:"required,min=0,max=100"`
}

// Fit builds a complete UseCaseFit.
func Fit(small, medium, large int) *UseCaseFit {
	return &UseCaseFit{Small: &small, Medium: &medium, Large: &large}
}

// Complete reports whether all three buckets are present.
func (f *UseCaseFit) Complete() bool {
	return f != nil && f.Small != nil && f.Medium != nil && f.Large != nil
}

// For returns the score for size. ok is false when the bucket is missing.
func (f *UseCaseFit) For(size Size) (score int, ok bool) {
	if f == nil {
		return 0, false
	}
	var p *int
	switch size.OrDefault() {
	case SizeSmall:
		p = f.Small
	case SizeMedium:
		p = f.Medium
	case SizeLarge:
		p = f.Large
	}
	if p == nil {
		return 0, false
	}
	return *p, true
}

// HasTag reports whether tag is present, compared exactly.
func (a *Accelerator) HasTag(tag string) bool {
	for _, t := range a.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
