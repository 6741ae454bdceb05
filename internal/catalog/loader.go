// Accelerator Finder - Solution Accelerator Search and Recommendation
// Copyright 2026 FlorKi610
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/FlorKi610/accelerator-finder

package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/FlorKi610/accelerator-finder/internal/logging"
	"github.com/FlorKi610/accelerator-finder/internal/metrics"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// Source produces raw catalog records.
type Source interface {
	// Name identifies the source in logs and metrics.
	Name() string
	Load(ctx context.Context) ([]Accelerator, error)
}

type document struct {
	Accelerators []Accelerator `yaml:"accelerators"`
}

// Parse decodes a YAML (or JSON) catalog document. Unknown fields are rejected.
// Parse does not validate; use NewSnapshot or Validate for that.
func Parse(data []byte) ([]Accelerator, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return []Accelerator{}, nil
		}
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if doc.Accelerators == nil {
		doc.Accelerators = []Accelerator{}
	}
	return doc.Accelerators, nil
}

// EmbeddedSource serves the catalog compiled into the binary.
type EmbeddedSource struct{}

// Name implements Source.
func (EmbeddedSource) Name() string { return "embedded" }

// Load implements Source.
func (EmbeddedSource) Load(context.Context) ([]Accelerator, error) {
	return Parse(embeddedCatalog)
}

// FileSource reads a catalog file from disk on every Load.
type FileSource struct {
	Path string
}

// Name implements Source.
func (s FileSource) Name() string { return "file" }

// Load implements Source.
func (s FileSource) Load(ctx context.Context) ([]Accelerator, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", s.Path, err)
	}
	return Parse(data)
}

// Load reads records from src and builds a validated snapshot.
func Load(ctx context.Context, src Source) (*Snapshot, error) {
	records, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	return NewSnapshot(records, src.Name())
}

var (
	defaultOnce     sync.Once
	defaultSnapshot *Snapshot
)

// Default returns the embedded catalog. It panics if the embedded file is
// invalid, which the package tests rule out.
func Default() *Snapshot {
	defaultOnce.Do(func() {
		snap, err := Load(context.Background(), EmbeddedSource{})
		if err != nil {
			panic(fmt.Sprintf("catalog: embedded catalog is invalid: %v", err))
		}
		defaultSnapshot = snap
	})
	return defaultSnapshot
}

// NewSource builds the Source for a configured kind: embedded, file or url.
func NewSource(kind, path, url string, timeout time.Duration) (Source, error) {
	switch kind {
	case "", "embedded":
		return EmbeddedSource{}, nil
	case "file":
		return FileSource{Path: path}, nil
	case "url":
		return NewRemoteSource(url, timeout), nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q", kind)
	}
}

// Refresh loads a new snapshot from src and swaps it into store. On failure
// the previous snapshot stays active and the error is returned.
func Refresh(ctx context.Context, store *Store, src Source) error {
	snap, err := Load(ctx, src)
	if err != nil {
		metrics.RecordCatalogLoad(src.Name(), 0, err)
		logging.Ctx(ctx).Warn().Err(err).Str("source", src.Name()).Msg("Catalog refresh failed, keeping previous snapshot")
		return err
	}
	store.Swap(snap)
	metrics.RecordCatalogLoad(src.Name(), snap.Len(), nil)
	logging.Ctx(ctx).Info().Str("source", src.Name()).Int("accelerators", snap.Len()).Msg("Catalog loaded")
	return nil
}

// Refresher binds a store to its source for periodic reloads.
type Refresher struct {
	Store  *Store
	Source Source
}

// Refresh reloads the catalog; see the package-level Refresh.
func (r Refresher) Refresh(ctx context.Context) error {
	return Refresh(ctx, r.Store, r.Source)
}
