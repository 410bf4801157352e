// Package prim_kruskal computes a minimum spanning forest over the actor graph:
// one minimum-weight tree per connected component, where each edge between two
// actors weighs the cheapest credit they share (core.Actor.NeighborsWeighted).
//
// What & Why
//
//   - A "movie traveler" wants to reach every actor at the smallest total cost,
//     moving only between co-stars. When the catalog splits into islands there
//     is no single tree, so the result is a forest and isolated actors (no
//     co-stars at all) do not appear in it.
//
// Algorithms Provided
//
//   - Kruskal(g *core.Graph) (*Forest, error)
//
//   - Strategy: collect every undirected edge once under a canonical key
//     (smaller name first), sort by (weight, first name, second name), and
//     accept an edge iff its endpoints lie in different UnionFind sets.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) space.
//
//   - Prim(g *core.Graph, root string) (*Forest, error)
//
//   - Strategy: grow one tree per component with a min-heap of frontier
//     edges. The first tree starts at root when given; every other tree
//     starts at the lexicographically smallest actor not yet reached.
//
//   - Complexity: O(E log E) time, O(V + E) space.
//
// Both produce a Forest of the same total weight. Edge order differs: Kruskal
// lists edges in acceptance order (ascending weight), Prim in growth order.
//
// UnionFind
//
//	Disjoint sets over core.Handle with path compression on every Find and
//	union by subtree size (smaller tree under larger) on every Union.
//
// Error Conditions
//
//   - ErrInvalidGraph: graph is nil.
//   - core.ErrNotBuilt: Build has not linked the adjacency yet.
//   - core.ErrActorNotFound: Prim root names no known actor.
//   - ErrUnknownMethod: Compute received a method other than MethodPrim or MethodKruskal.
//
// Both algorithms hold the graph lock for their whole run and never touch the
// transient traversal fields of core.Actor.
package prim_kruskal
