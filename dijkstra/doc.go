// SPDX-License-Identifier: MIT

// Package dijkstra finds the cheapest connection between two actors of a
// core.Graph, where crossing a credit costs core.Graph.Cost(year): recent
// movies are cheap, old ones expensive.
//
// Overview:
//
//   - Best-first search with a min-heap ordered by (distance, actor name).
//     The name tie-break makes the returned path independent of heap
//     insertion order; it is part of the contract, not cosmetics.
//   - Every actor is settled (Visited = true) at most once. The search stops
//     as soon as the target is settled, or when the heap is exhausted.
//   - Lazy decrease-key: an improved distance pushes a new heap entry and
//     stale entries are skipped when popped.
//   - Distance, Predecessor, Connector and Visited live on the actors and are
//     reset for every touched actor before returning, on every exit path.
//
// Options:
//
//   - WithMaxDistance(d): ignore connections costing more than d (d >= 0).
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) for the heap under lazy decrease-key, O(V) touched list.
//
// Weights are always >= 1 (core floors Cost at 1), so the total cost of a
// path is never smaller than its hop count.
package dijkstra
