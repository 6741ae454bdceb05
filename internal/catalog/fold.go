// Accelerator Finder - Solution Accelerator Search and Recommendation
// Copyright 2026 FlorKi610
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/FlorKi610/accelerator-finder

package catalog

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Fold prepares text for case-insensitive matching. NFKC normalization makes
// compatibility forms (full-width letters, ligatures) compare equal to their
// plain spellings before lowercasing.
func Fold(s string) string {
	return strings.ToLower(norm.NFKC.String(s))
}
