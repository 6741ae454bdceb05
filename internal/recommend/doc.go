// Accelerator Finder - Solution Accelerator Search and Recommendation
// Copyright 2026 FlorKi610
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/FlorKi610/accelerator-finder

// Package recommend ranks catalog accelerators against a described use case.
//
// # Scoring
//
// Every record starts at zero and collects additive points:
//
//   - +1 for each query token (longer than 3 characters) found in the
//     record's title, description and tags
//   - +2 more when that token is inside a single tag
//   - useCaseFit[size]/20 when the record declares a fit, where size is
//     explicit or inferred from the query ("enterprise" means large,
//     "simple" means small)
//
// The wizard path adds +3 per selected technology carried by the record,
// +0.5 per additional-context token found in the record, and +2 for sample
// or starter material when the timeframe is urgent.
//
// Records scoring zero or less are dropped. The rest are sorted by score,
// highest first, with ties kept in catalog order, and the top MaxResults are
// returned.
//
// # Usage
//
// The package-level functions are pure and safe for concurrent use:
//
//	results := recommend.Recommend(snap.Accelerators(), "search my documents", "")
//
// Engine wraps them with an LRU result cache, metrics and logging for the
// HTTP server.
package recommend
