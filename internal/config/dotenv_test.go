// Accelerator Finder - Solution Accelerator Search and Recommendation
// Copyright 2026 FlorKi610
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/FlorKi610/accelerator-finder

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("ACCELFIND_TEST_FROM_FILE=file\nACCELFIND_TEST_PRESET=file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ACCELFIND_TEST_PRESET", "env")
	t.Setenv(DotEnvPathEnvVar, "")
	t.Cleanup(func() { _ = os.Unsetenv("ACCELFIND_TEST_FROM_FILE") })

	got, err := LoadDotEnv(filepath.Join(dir, "missing.env"), path)
	if err != nil {
		t.Fatalf("LoadDotEnv() error = %v", err)
	}
	if got != path {
		t.Errorf("loaded %q, want %q", got, path)
	}
	if v := os.Getenv("ACCELFIND_TEST_FROM_FILE"); v != "file" {
		t.Errorf("ACCELFIND_TEST_FROM_FILE = %q", v)
	}
	if v := os.Getenv("ACCELFIND_TEST_PRESET"); v != "env" {
		t.Errorf("existing variable overwritten: %q", v)
	}

	if got, err := LoadDotEnv(filepath.Join(dir, "nope")); err != nil || got != "" {
		t.Errorf("missing file: %q, %v", got, err)
	}
}
