// SPDX-License-Identifier: MIT

// Package tsv reads the tab-separated inputs of the actor graph tools and
// writes their outputs.
//
// Inputs (first line is a header and is discarded):
//
//   - credits: actor<TAB>title<TAB>year. Rows with another field count, or
//     with an empty actor name, are skipped and counted in LoadStats.Skipped.
//     A non-numeric year aborts the load with ErrMalformedYear.
//   - actors: one name per line; other shapes are skipped.
//   - pairs: from<TAB>to per line; other shapes are skipped.
//
// Outputs:
//
//   - paths: PathHeader, then one FormatPath line per query, empty when no
//     connection exists.
//   - forest: PathHeader, then one FormatEdge line per accepted edge.
//   - predictions: "Actor1,...,ActorK" header, then the ranked names of each
//     query actor joined by TAB. A row holding fewer than K names ends with one
//     extra TAB.
//
// Fields are split on TAB only; no quoting or escaping is applied.
package tsv
