// SPDX-License-Identifier: MIT

// Package predict ranks likely future collaborators for a batch of actors.
//
// Two variants share one shape. For every query actor A they score a set of
// candidates and keep the K best (default 4) in a bounded TopK queue:
//
//   - Past: candidates are A's co-stars B. Score(B) is the sum, over A's other
//     co-stars C that also worked with B, of shared(A,C) × shared(B,C), where
//     shared counts common credits (core.Actor.Neighbors). It measures how
//     strongly A and B already close triangles.
//   - New: candidates are co-stars of co-stars that never worked with A. Score
//     is the sum, over each bridging co-star B, of shared(A,B) × shared(B,cand).
//
// Ranking is score descending, then name ascending. Zero-score candidates are
// still eligible when fewer than K better ones exist.
//
// Batches halt at the first unknown actor: the rows already computed are
// returned together with core.ErrActorNotFound wrapped with that name. Callers
// that want skip-and-continue semantics should filter names with
// core.Graph.Exists first.
//
// The batch holds the graph lock; scores accumulate in core.Actor.Score and
// every touched actor is reset before returning.
package predict
