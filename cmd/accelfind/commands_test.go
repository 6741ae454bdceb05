// Accelerator Finder - Solution Accelerator Search and Recommendation
// Copyright 2026 FlorKi610
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/FlorKi610/accelerator-finder

package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/FlorKi610/accelerator-finder/internal/catalog"
	"github.com/FlorKi610/accelerator-finder/internal/cost"
	"github.com/FlorKi610/accelerator-finder/internal/recommend"
)

const testCatalog = `accelerators:
  - title: Doc Search
    description: search your documents with AI
    tags: [Azure AI Search, Azure OpenAI]
    url: https://example.com/doc-search
  - title: Chat Starter
    description: A simple chat bot template
    tags: [Azure OpenAI, Azure Functions]
    url: https://example.com/chat
`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSearchCommand(t *testing.T) {
	path := writeCatalog(t, testCatalog)

	tests := []struct {
		name string
		args []string
		want []string
		not  []string
	}{
		{"all", []string{"search"}, []string{"2 accelerator(s)", "Doc Search", "Chat Starter"}, nil},
		{"text", []string{"search", "CHAT"}, []string{"1 accelerator(s)", "Chat Starter"}, []string{"Doc Search"}},
		{"tag", []string{"search", "--tag", "Azure AI Search"}, []string{"Doc Search"}, []string{"Chat Starter"}},
		{"no match", []string{"search", "blockchain"}, []string{"0 accelerator(s)"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, "", append(tt.args, "--catalog", path)...)
			if err != nil {
				t.Fatalf("error = %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output missing %q:\n%s", w, out)
				}
			}
			for _, n := range tt.not {
				if strings.Contains(out, n) {
					t.Errorf("output should not contain %q:\n%s", n, out)
				}
			}
		})
	}
}

func TestRecommendCommand(t *testing.T) {
	path := writeCatalog(t, testCatalog)

	out, err := run(t, "", "recommend", "search", "documents", "--explain", "--catalog", path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "1. Doc Search (score 4.0)") || !strings.Contains(out, `keyword "search"`) {
		t.Errorf("output:\n%s", out)
	}

	out, err = run(t, "", "recommend", "search documents", "--json", "--catalog", path)
	if err != nil {
		t.Fatal(err)
	}
	var results []recommend.ScoredAccelerator
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if len(results) != 1 || results[0].Reasons != nil {
		t.Errorf("results = %+v", results)
	}

	if _, err := run(t, "", "recommend", "chat", "--size", "huge", "--catalog", path); !errors.Is(err, catalog.ErrInvalidSize) {
		t.Errorf("bad size error = %v", err)
	}
	if _, err := run(t, "", "recommend", "--catalog", path); err == nil {
		t.Error("missing description should fail")
	}
}

func TestCostCommand(t *testing.T) {
	path := writeCatalog(t, testCatalog)

	out, err := run(t, "", "cost", "--tag", "Azure OpenAI", "--tag", "Azure AI Search")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"$120/mo", "$400/mo", "$1200/mo"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}

	out, err = run(t, "", "cost", "--accelerator", "Doc Search", "--size", "large", "--format", "json", "--catalog", path)
	if err != nil {
		t.Fatal(err)
	}
	var tiers []cost.Tier
	if err := json.Unmarshal([]byte(out), &tiers); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if len(tiers) != 1 || tiers[0].Size != catalog.SizeLarge || tiers[0].Total != 1200 {
		t.Errorf("tiers = %+v", tiers)
	}

	if _, err := run(t, "", "cost", "--format", "xml"); err == nil {
		t.Error("unknown format should fail")
	}
	if _, err := run(t, "", "cost", "--accelerator", "Nope", "--catalog", path); err == nil {
		t.Error("unknown accelerator should fail")
	}
}

func TestTagsCommand(t *testing.T) {
	path := writeCatalog(t, testCatalog)

	out, err := run(t, "", "tags", "--catalog", path)
	if err != nil {
		t.Fatal(err)
	}
	if out != "Azure AI Search\nAzure Functions\nAzure OpenAI\n" {
		t.Errorf("tags = %q", out)
	}

	out, _ = run(t, "", "tags", "--prefix", "azure o", "--catalog", path)
	if out != "Azure OpenAI (2)\n" {
		t.Errorf("suggest = %q", out)
	}

	out, _ = run(t, "", "tags", "--defaults")
	if len(strings.Split(strings.TrimSpace(out), "\n")) != 11 {
		t.Errorf("defaults = %q", out)
	}
}

func TestValidateCommand(t *testing.T) {
	good := writeCatalog(t, testCatalog)
	out, err := run(t, "", "validate", good)
	if err != nil || !strings.Contains(out, "2 accelerator(s), OK") {
		t.Errorf("validate good = %q, %v", out, err)
	}

	bad := writeCatalog(t, `accelerators:
  - title: Dup
    url: https://example.com/a
  - title: Dup
    url: https://example.com/b
  - title: ""
    url: https://example.com/c
`)
	out, err = run(t, "", "validate", bad)
	if err == nil || !strings.Contains(err.Error(), "2 invalid record(s)") {
		t.Errorf("validate bad error = %v", err)
	}
	if !strings.Contains(out, "record 1") || !strings.Contains(out, "record 2") {
		t.Errorf("output:\n%s", out)
	}
}

func TestWizardCommand(t *testing.T) {
	path := writeCatalog(t, testCatalog)

	// size, goal, a bad answer then technologies, back, timeframe again,
	// timeframe, context.
	input := strings.Join([]string{
		"1",
		"search documents",
		"99",
		"Azure OpenAI",
		"back",
		"",
		"urgent",
		"",
	}, "\n") + "\n"

	out, err := run(t, input, "wizard", "--explain", "--catalog", path)
	if err != nil {
		t.Fatalf("error = %v\n%s", err, out)
	}
	if !strings.Contains(out, "choose 1-3") {
		t.Errorf("invalid choice not reported:\n%s", out)
	}
	if !strings.Contains(out, "1. Doc Search") || !strings.Contains(out, "2. Chat Starter") {
		t.Errorf("results missing:\n%s", out)
	}

	if _, err := run(t, "1\n", "wizard", "--catalog", path); !errors.Is(err, errInputClosed) {
		t.Errorf("short input error = %v", err)
	}
}
