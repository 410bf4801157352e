// SPDX-License-Identifier: MIT
//
// File: methods_traversal.go
// Role: Transient traversal state shared by the query packages, and Path.

package core

// Path alternates actor names and credit labels, source first:
//
//	["Alice", "[MovieA#@2018]", "Bob", "[MovieB#@2019]", "Carol"]
//
// An empty Path means "no connection".
type Path []string

// Hops reports the number of credit edges traversed.
func (p Path) Hops() int {
	if len(p) < 3 {
		return 0
	}

	return len(p) / 2
}

// Actors returns the actor names of the path, in order.
func (p Path) Actors() []string {
	out := make([]string, 0, (len(p)+1)/2)
	for i := 0; i < len(p); i += 2 {
		out = append(out, p[i])
	}

	return out
}

// Labels returns the credit labels of the path, in order.
func (p Path) Labels() []string {
	out := make([]string, 0, len(p)/2)
	for i := 1; i < len(p); i += 2 {
		out = append(out, p[i])
	}

	return out
}

// TracePath walks Predecessor links back from target and returns the path in
// source -> target order. Connector labels are read from each visited actor.
//
// Complexity: O(hops).
func (g *Graph) TracePath(target Handle) Path {
	var rev Path
	cur := target
	for {
		a := &g.actors[cur]
		rev = append(rev, a.Name)
		if a.Predecessor == NoHandle {
			break
		}
		rev = append(rev, a.Connector)
		cur = a.Predecessor
	}
	if len(rev) < 3 {
		return Path{}
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}

// ResetTraversal restores the transient fields of every touched actor.
// Handles may repeat.
func (g *Graph) ResetTraversal(touched []Handle) {
	for _, h := range touched {
		g.actors[h].reset()
	}
}

// TraversalClean reports whether every actor holds sentinel traversal state.
// It is O(V) and meant for tests and debug assertions.
func (g *Graph) TraversalClean() bool {
	for i := range g.actors {
		if !g.actors[i].clean() {
			return false
		}
	}

	return true
}
