// SPDX-License-Identifier: MIT

// Package core holds the actor graph: one arena-owned Actor record per unique
// actor name, linked to the other actors it shares movie credits with.
//
// The Graph is built in two phases:
//
//  1. Ingestion. AddCredit registers one (actor, title, year) credit at a time.
//     The first credit for a name allocates its Actor record; every credit is
//     also appended to the per-(title, year) movie grouping.
//  2. Adjacency. Build walks every (title, year) group with two or more actors
//     and links every unordered pair in it symmetrically:
//
//     Edges[credit]             co-star handles for that credit
//     Neighbors[h]              number of shared-credit occurrences with h
//     NeighborsWeighted[h]      cheapest travel cost over all shared credits
//     MovieNeighborsWeighted[h] credit that achieved that cost
//
// After Build the graph is read-only. Queries (packages bfs, dijkstra,
// prim_kruskal, predict) reuse the transient fields stored on every Actor
// (Distance, Predecessor, Visited, Connector, Score) and must restore them to
// their sentinel values with ResetTraversal before returning.
//
// Handles:
//
//	Cross references between actors are Handle values: small integer indices
//	into the arena. A Handle never owns the record it points at, so the
//	adjacency maps stay hashable and trivially comparable.
//
// Travel cost:
//
//	Cost(year) = ReferenceYear - year + 1, floored at 1, so more recent
//	movies are cheaper to traverse and every edge weight is at least 1.
//
// Determinism:
//
//	Build processes titles and years in ascending order. Actor.Credits and
//	SortedNeighbors return sorted views, so every traversal built on top of
//	them produces the same output for the same input.
//
// Concurrency:
//
//	Graph implements sync.Locker. Every query package takes the lock for the
//	duration of one query, so concurrent callers are serialized and never see
//	another query's transient state.
package core
