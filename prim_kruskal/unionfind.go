package prim_kruskal

import "github.com/katalvlaran/actorgraph/core"

// UnionFind implements a disjoint-set structure over core.Handle values
// 0..n-1 with path compression and union by subtree size.
type UnionFind struct {
	parent []core.Handle
	size   []int
	sets   int
}

// NewUnionFind creates n singleton sets, one per handle.
func NewUnionFind(n int) *UnionFind {
	uf := &UnionFind{
		parent: make([]core.Handle, n),
		size:   make([]int, n),
		sets:   n,
	}
	for i := range uf.parent {
		uf.parent[i] = core.Handle(i)
		uf.size[i] = 1
	}

	return uf
}

// Find returns the representative of the set containing h.
// Every handle on the walked path is re-pointed straight at the root.
func (uf *UnionFind) Find(h core.Handle) core.Handle {
	root := h
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	for uf.parent[h] != root {
		next := uf.parent[h]
		uf.parent[h] = root
		h = next
	}

	return root
}

// Union merges the sets containing a and b, attaching the smaller tree under
// the larger one. It reports false when they were already the same set.
func (uf *UnionFind) Union(a, b core.Handle) bool {
	ra, rb := uf.Find(a), uf.Find(b)
	if ra == rb {
		return false
	}
	if uf.size[ra] < uf.size[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	uf.size[ra] += uf.size[rb]
	uf.sets--

	return true
}

// Connected reports whether a and b belong to the same set.
func (uf *UnionFind) Connected(a, b core.Handle) bool {
	return uf.Find(a) == uf.Find(b)
}

// Size returns the number of handles in the set containing h.
func (uf *UnionFind) Size(h core.Handle) int {
	return uf.size[uf.Find(h)]
}

// Sets returns the current number of disjoint sets.
func (uf *UnionFind) Sets() int { return uf.sets }
