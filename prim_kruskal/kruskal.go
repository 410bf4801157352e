package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/actorgraph/core"
)

// candidate is one undirected edge keyed canonically: name(u) < name(v).
type candidate struct {
	u, v   core.Handle
	nu, nv string
	w      int64
}

// Kruskal computes the minimum spanning forest of g.
//
// Steps:
//  1. Validate: g != nil and built.
//  2. Collect each undirected edge once from NeighborsWeighted, keyed by the
//     smaller endpoint name.
//  3. Sort by (weight, first name, second name); names are unique so the order is total.
//  4. Accept an edge iff UnionFind.Union merges two different sets.
//
// Isolated actors never appear in the result. A disconnected graph yields one
// tree per component; this is not an error.
//
// Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
func Kruskal(graph *core.Graph) (*Forest, error) {
	// 1. Validate.
	if graph == nil {
		return nil, ErrInvalidGraph
	}
	graph.Lock()
	defer graph.Unlock()
	if !graph.Built() {
		return nil, core.ErrNotBuilt
	}

	// 2. Collect canonical candidates.
	n := graph.Len()
	edges := make([]candidate, 0, n)
	covered := 0
	for i := 0; i < n; i++ {
		u := core.Handle(i)
		a := graph.Actor(u)
		if len(a.NeighborsWeighted) > 0 {
			covered++
		}
		for v, w := range a.NeighborsWeighted {
			nv := graph.Name(v)
			if a.Name < nv {
				edges = append(edges, candidate{u: u, v: v, nu: a.Name, nv: nv, w: w})
			}
		}
	}

	// 3. Sort deterministically.
	sort.SliceStable(edges, func(i, j int) bool {
		if edges[i].w != edges[j].w {
			return edges[i].w < edges[j].w
		}
		if edges[i].nu != edges[j].nu {
			return edges[i].nu < edges[j].nu
		}

		return edges[i].nv < edges[j].nv
	})

	// 4. Greedy acceptance.
	uf := NewUnionFind(n)
	f := &Forest{Nodes: covered}
	for _, e := range edges {
		if uf.Union(e.u, e.v) {
			f.add(graph, e.u, e.v)
		}
	}

	return f, nil
}
