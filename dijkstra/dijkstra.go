// SPDX-License-Identifier: MIT

package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/actorgraph/core"
)

// ShortestPath returns the cheapest path from one actor to another and its
// total cost.
//
// Returns:
//
//   - path: alternating actor names and credit labels, source first; empty
//     when either actor is unknown, when from == to, or when the target is
//     unreachable within MaxDistance.
//   - cost: sum of Cost(year) over the traversed credits (0 for an empty path).
//   - err:  ErrNilGraph, core.ErrNotBuilt, or core.ErrActorNotFound wrapped
//     with the missing name.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must be built (core.ErrNotBuilt).
//  3. both actors must exist (core.ErrActorNotFound).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func ShortestPath(g *core.Graph, from, to string, opts ...Option) (core.Path, int64, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph is non-nil
	if g == nil {
		return core.Path{}, 0, ErrNilGraph
	}

	g.Lock()
	defer g.Unlock()

	// 3) Validate adjacency and endpoints
	if !g.Built() {
		return core.Path{}, 0, core.ErrNotBuilt
	}
	src, ok := g.Lookup(from)
	if !ok {
		return core.Path{}, 0, fmt.Errorf("%w: %q", core.ErrActorNotFound, from)
	}
	dst, ok := g.Lookup(to)
	if !ok {
		return core.Path{}, 0, fmt.Errorf("%w: %q", core.ErrActorNotFound, to)
	}
	if src == dst {
		return core.Path{}, 0, nil
	}

	// 4) Run, always restoring every touched actor.
	r := &runner{
		g:       g,
		options: cfg,
		target:  dst,
		pq:      make(nodePQ, 0, 16),
	}
	defer func() { g.ResetTraversal(r.touched) }()

	r.init(src)
	if !r.process() {
		return core.Path{}, 0, nil
	}

	return g.TracePath(dst), g.Actor(dst).Distance, nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g       *core.Graph
	options Options
	target  core.Handle
	pq      nodePQ
	touched []core.Handle // every actor whose Distance left Infinity
}

// init seeds the heap with the source at distance zero.
func (r *runner) init(src core.Handle) {
	a := r.g.Actor(src)
	a.Distance = 0
	r.touched = append(r.touched, src)

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{h: src, name: a.Name, dist: 0})
}

// process is the main loop. It reports whether the target was settled.
//
// Loop termination conditions:
//
//   - The target is settled.
//   - The heap becomes empty.
//   - The minimum distance in the heap exceeds MaxDistance.
func (r *runner) process() bool {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		a := r.g.Actor(item.h)

		// Stale heap entry for an already settled actor.
		if a.Visited {
			continue
		}
		if item.dist > r.options.MaxDistance {
			return false
		}

		a.Visited = true
		if item.h == r.target {
			return true
		}
		r.relax(item.h, a)
	}

	return false
}

// relax examines every credit of u and improves the distance of each unsettled co-star.
// Only a strictly shorter distance replaces the stored predecessor.
func (r *runner) relax(u core.Handle, a *core.Actor) {
	for _, c := range a.Credits() {
		w := r.g.Cost(c.Year)
		newDist := a.Distance + w
		if newDist > r.options.MaxDistance {
			continue
		}

		var label string
		for _, v := range a.Edges[c] {
			n := r.g.Actor(v)
			if n.Visited || newDist >= n.Distance {
				continue
			}
			if n.Distance == core.Infinity {
				r.touched = append(r.touched, v)
			}
			if label == "" {
				label = c.Label()
			}
			n.Distance = newDist
			n.Predecessor = u
			n.Connector = label

			heap.Push(&r.pq, &nodeItem{h: v, name: n.Name, dist: newDist})
		}
	}
}

// nodeItem represents an actor and its tentative distance from the source.
type nodeItem struct {
	h    core.Handle
	name string
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then by name.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist first, then smaller name.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].name < pq[j].name
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element of the underlying slice.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
