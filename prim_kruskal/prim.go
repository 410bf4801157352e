package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/actorgraph/core"
)

// Prim computes the minimum spanning forest of g by growing one tree per
// connected component from a min-heap of frontier edges.
//
// Error Conditions:
//   - ErrInvalidGraph      : graph is nil.
//   - core.ErrNotBuilt     : adjacency not linked.
//   - core.ErrActorNotFound: root is non-empty and unknown.
//
// Steps:
//  1. Validate graph and root.
//  2. Order start candidates: root (if any), then every actor by name.
//  3. For each start not yet reached and with at least one co-star:
//     a. Mark it reached and push its edges.
//     b. Pop the cheapest edge; skip it if its far end is reached.
//     c. Otherwise accept it, mark the far end and push its edges to unreached actors.
//
// Heap order is (weight, near name, far name), which makes the growth order
// reproducible.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(graph *core.Graph, root string) (*Forest, error) {
	// 1. Validate.
	if graph == nil {
		return nil, ErrInvalidGraph
	}
	graph.Lock()
	defer graph.Unlock()
	if !graph.Built() {
		return nil, core.ErrNotBuilt
	}

	// 2. Start order.
	starts := graph.Handles()
	if root != "" {
		h, ok := graph.Lookup(root)
		if !ok {
			return nil, fmt.Errorf("%w: %q", core.ErrActorNotFound, root)
		}
		starts = append([]core.Handle{h}, starts...)
	}

	// 3. Grow one tree per component.
	reached := make([]bool, graph.Len())
	f := &Forest{}
	pq := &edgePQ{}
	for _, s := range starts {
		if reached[s] || len(graph.Actor(s).NeighborsWeighted) == 0 {
			continue
		}
		reached[s] = true
		f.Nodes++
		pushFrontier(graph, pq, s, reached)

		for pq.Len() > 0 {
			e := heap.Pop(pq).(*frontierEdge)
			if reached[e.to] {
				continue
			}
			reached[e.to] = true
			f.Nodes++
			f.add(graph, e.from, e.to)
			pushFrontier(graph, pq, e.to, reached)
		}
	}

	return f, nil
}

// pushFrontier pushes every edge from u to an unreached co-star.
func pushFrontier(g *core.Graph, pq *edgePQ, u core.Handle, reached []bool) {
	a := g.Actor(u)
	for v, w := range a.NeighborsWeighted {
		if reached[v] {
			continue
		}
		heap.Push(pq, &frontierEdge{from: u, to: v, fromName: a.Name, toName: g.Name(v), weight: w})
	}
}

// frontierEdge is a candidate edge leaving the current tree.
type frontierEdge struct {
	from, to         core.Handle
	fromName, toName string
	weight           int64
}

// edgePQ implements heap.Interface for a min-heap of *frontierEdge.
type edgePQ []*frontierEdge

// Len returns the number of edges in the priority queue.
func (pq edgePQ) Len() int { return len(pq) }

// Less orders by weight, then near name, then far name.
func (pq edgePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	if a.fromName != b.fromName {
		return a.fromName < b.fromName
	}

	return a.toName < b.toName
}

// Swap swaps elements at indices i and j.
func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new *frontierEdge to the heap.
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(*frontierEdge)) }

// Pop removes and returns the last element of the underlying slice.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	edge := old[n-1]
	*pq = old[:n-1]

	return edge
}
