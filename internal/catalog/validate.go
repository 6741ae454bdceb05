// Accelerator Finder - Solution Accelerator Search and Recommendation
// Copyright 2026 FlorKi610
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/FlorKi610/accelerator-finder

package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/FlorKi610/accelerator-finder/internal/validation"
)

// Catalog errors.
var (
	ErrInvalidSize       = errors.New("invalid deployment size")
	ErrEmptyTitle        = errors.New("title must not be empty")
	ErrDuplicateTitle    = errors.New("duplicate title")
	ErrPartialUseCaseFit = errors.New("useCaseFit must define small, medium and large")
	ErrInvalidRecord     = errors.New("invalid record")
)

// RecordError describes one rejected record.
type RecordError struct {
	Index int
	Title string
	Err   error
}

func (e RecordError) Error() string {
	return fmt.Sprintf("record %d (%q): %v", e.Index, e.Title, e.Err)
}

func (e RecordError) Unwrap() error { return e.Err }

// ValidationError lists every record rejected by Validate.
type ValidationError struct {
	Records []RecordError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Records))
	for i, r := range e.Records {
		msgs[i] = r.Error()
	}
	return fmt.Sprintf("catalog has %d invalid record(s): %s", len(e.Records), strings.Join(msgs, "; "))
}

// Is lets errors.Is match any of the per-record causes.
func (e *ValidationError) Is(target error) bool {
	for _, r := range e.Records {
		if errors.Is(r.Err, target) {
			return true
		}
	}
	return false
}

// Validate checks every record and reports all problems at once. It returns
// nil or a *ValidationError.
func Validate(records []Accelerator) error {
	var bad []RecordError
	seen := make(map[string]int, len(records))

	for i := range records {
		rec := &records[i]

		if strings.TrimSpace(rec.Title) == "" {
			bad = append(bad, RecordError{Index: i, Title: rec.Title, Err: ErrEmptyTitle})
			continue
		}
		if first, dup := seen[rec.Title]; dup {
			bad = append(bad, RecordError{
				Index: i,
				Title: rec.Title,
				Err:   fmt.Errorf("%w: first defined at record %d", ErrDuplicateTitle, first),
			})
			continue
		}
		seen[rec.Title] = i

		if rec.UseCaseFit != nil && !rec.UseCaseFit.Complete() {
			bad = append(bad, RecordError{Index: i, Title: rec.Title, Err: ErrPartialUseCaseFit})
			continue
		}
		if verr := validation.ValidateStruct(rec); verr != nil {
			bad = append(bad, RecordError{Index: i, Title: rec.Title, Err: fmt.Errorf("%w: %s", ErrInvalidRecord, verr.Error())})
		}
	}

	if len(bad) > 0 {
		return &ValidationError{Records: bad}
	}
	return nil
}
