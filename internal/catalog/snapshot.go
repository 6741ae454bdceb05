// Accelerator Finder - Solution Accelerator Search and Recommendation
// Copyright 2026 FlorKi610
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/FlorKi610/accelerator-finder

package catalog

import (
	"errors"
	"sort"
	"sync/atomic"
	"time"

	"github.com/FlorKi610/accelerator-finder/internal/cache"
)

// ErrNotLoaded is returned by Store.Current before the first snapshot is stored.
var ErrNotLoaded = errors.New("catalog not loaded")

// Snapshot is an immutable, validated set of accelerators.
type Snapshot struct {
	accelerators []Accelerator
	byTitle      map[string]int
	tags         []string
	tagTrie      *cache.Trie
	source       string
	loadedAt     time.Time
}

// NewSnapshot validates records and builds the lookup indexes. The records are
// deep-copied, so later changes to the input do not leak into the snapshot.
func NewSnapshot(records []Accelerator, source string) (*Snapshot, error) {
	if err := Validate(records); err != nil {
		return nil, err
	}

	snap := &Snapshot{
		accelerators: make([]Accelerator, len(records)),
		byTitle:      make(map[string]int, len(records)),
		tagTrie:      cache.NewTrie(),
		source:       source,
		loadedAt:     time.Now().UTC(),
	}

	seenTags := make(map[string]struct{})
	for i := range records {
		rec := clone(records[i])
		snap.accelerators[i] = rec
		snap.byTitle[rec.Title] = i
		for _, tag := range rec.Tags {
			snap.tagTrie.Insert(tag)
			if _, ok := seenTags[tag]; !ok {
				seenTags[tag] = struct{}{}
				snap.tags = append(snap.tags, tag)
			}
		}
	}
	sort.Strings(snap.tags)
	if snap.tags == nil {
		snap.tags = []string{}
	}
	return snap, nil
}

func clone(a Accelerator) Accelerator {
	out := a
	if a.Tags != nil {
		out.Tags = append([]string(nil), a.Tags...)
	}
	if a.UseCaseFit != nil {
		s, _ := a.UseCaseFit.For(SizeSmall)
		m, _ := a.UseCaseFit.For(SizeMedium)
		l, _ := a.UseCaseFit.For(SizeLarge)
		out.UseCaseFit = Fit(s, m, l)
	}
	return out
}

// Accelerators returns a copy of the records in catalog order.
func (s *Snapshot) Accelerators() []Accelerator {
	out := make([]Accelerator, len(s.accelerators))
	for i := range s.accelerators {
		out[i] = clone(s.accelerators[i])
	}
	return out
}

// Lookup finds a record by exact title.
func (s *Snapshot) Lookup(title string) (Accelerator, bool) {
	i, ok := s.byTitle[title]
	if !ok {
		return Accelerator{}, false
	}
	return clone(s.accelerators[i]), true
}

// AllTags returns the sorted union of every record's tags.
func (s *Snapshot) AllTags() []string {
	return append([]string{}, s.tags...)
}

// SuggestTags completes a tag prefix case-insensitively. Tags carried by more
// accelerators rank first.
func (s *Snapshot) SuggestTags(prefix string, limit int) []cache.Suggestion {
	return s.tagTrie.Suggest(prefix, limit)
}

// Len returns the number of records.
func (s *Snapshot) Len() int { return len(s.accelerators) }

// Source names where the snapshot was loaded from.
func (s *Snapshot) Source() string { return s.source }

// LoadedAt is when the snapshot was built.
func (s *Snapshot) LoadedAt() time.Time { return s.loadedAt }

// Store holds the current snapshot and swaps it atomically on refresh.
// Readers never block writers.
type Store struct {
	current atomic.Pointer[Snapshot]
}

// NewStore returns a store seeded with snap, which may be nil.
func NewStore(snap *Snapshot) *Store {
	s := &Store{}
	if snap != nil {
		s.current.Store(snap)
	}
	return s
}

// Current returns the active snapshot or ErrNotLoaded.
func (s *Store) Current() (*Snapshot, error) {
	snap := s.current.Load()
	if snap == nil {
		return nil, ErrNotLoaded
	}
	return snap, nil
}

// Swap installs snap and returns the previous snapshot. A nil snap is ignored.
func (s *Store) Swap(snap *Snapshot) *Snapshot {
	if snap == nil {
		return s.current.Load()
	}
	return s.current.Swap(snap)
}

// Ready reports whether a snapshot has been stored.
func (s *Store) Ready() bool {
	return s.current.Load() != nil
}
