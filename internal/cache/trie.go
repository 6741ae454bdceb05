// Accelerator Finder - Solution Accelerator Search and Recommendation
// Copyright 2026 FlorKi610
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/FlorKi610/accelerator-finder

package cache

import (
	"sort"
	"strings"
	"sync"
)

type trieNode struct {
	children map[rune]*trieNode
	value    string // original spelling, set on terminal nodes
	count    int
}

// Trie is a case-insensitive prefix tree. Each inserted value keeps its
// original spelling and an insertion count used to rank suggestions.
type Trie struct {
	mu   sync.RWMutex
	root *trieNode
	size int
}

// Suggestion is one autocomplete match.
type Suggestion struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// NewTrie returns an empty trie.
func NewTrie() *Trie {
	return &Trie{root: &trieNode{children: map[rune]*trieNode{}}}
}

// Insert adds value, or bumps its count if already present. Empty values are ignored.
func (t *Trie) Insert(value string) {
	if value == "" {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	node := t.root
	for _, r := range strings.ToLower(value) {
		next, ok := node.children[r]
		if !ok {
			next = &trieNode{children: map[rune]*trieNode{}}
			node.children[r] = next
		}
		node = next
	}
	if node.count == 0 {
		t.size++
		node.value = value
	}
	node.count++
}

// Len returns the number of distinct values.
func (t *Trie) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.size
}

// Suggest returns up to limit values starting with prefix, most frequent
// first and alphabetical among equals. An empty prefix matches everything.
func (t *Trie) Suggest(prefix string, limit int) []Suggestion {
	t.mu.RLock()
	defer t.mu.RUnlock()

	node := t.root
	for _, r := range strings.ToLower(prefix) {
		node = node.children[r]
		if node == nil {
			return []Suggestion{}
		}
	}

	out := []Suggestion{}
	var walk func(n *trieNode)
	walk = func(n *trieNode) {
		if n.count > 0 {
			out = append(out, Suggestion{Value: n.value, Count: n.count})
		}
		for _, child := range n.children {
			walk(child)
		}
	}
	walk(node)

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
