// SPDX-License-Identifier: MIT

// Package bfs finds the fewest-hop connection between two actors of a
// core.Graph ("degrees of separation").
//
// What
//
//   - Breadth-first search from the source actor through every credit edge.
//   - Each newly discovered actor records its hop distance, its predecessor
//     and the "[title#@year]" label of the credit that reached it.
//   - The search stops as soon as the target is discovered; the path is
//     rebuilt by walking predecessors and returned source first.
//
// Determinism
//
//	Credits are expanded in (title, year) order and co-stars in ingestion
//	order, so equal-length alternatives always resolve the same way.
//
// Traversal state
//
//	The search writes Distance/Predecessor/Connector directly on the actors
//	(no separate visited set) and resets every touched actor before it
//	returns, including on errors and cancellation. The graph lock is held for
//	the whole query.
//
// Complexity (V = actors, E = credit edges)
//
//   - Time:   O(V + E) plus the per-actor credit sort
//   - Memory: O(V) for the queue and the touched list
//
// Usage
//
//	path, err := bfs.ShortestPath(g, "Kevin Bacon", "Tom Hanks")
//	if err != nil {
//	    // ErrGraphNil, ErrOptionViolation, core.ErrNotBuilt,
//	    // core.ErrActorNotFound, ctx errors or hook errors
//	}
//	fmt.Println(path.Hops())
//
// Options
//
//   - WithContext(ctx):      cancellation.
//   - WithMaxDepth(d):       ignore connections longer than d hops (d > 0).
//   - WithOnEnqueue(fn):     hook on discovery.
//   - WithOnVisit(fn):       hook on dequeue; returning an error aborts.
package bfs
