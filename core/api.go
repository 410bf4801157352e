// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only facade over the arena: lookups, sorted views, stats and cost.
// Policy:
//   - Accessors never take the graph lock. They are safe after Build (the
//     adjacency is immutable) and from inside a query that holds the lock.
//   - Every view that enumerates actors or credits is sorted.

package core

import "sort"

// Lock acquires the query lock. Query packages hold it for one whole query.
func (g *Graph) Lock() { g.mu.Lock() }

// Unlock releases the query lock.
func (g *Graph) Unlock() { g.mu.Unlock() }

// ReferenceYear reports the year considered "present" by Cost.
func (g *Graph) ReferenceYear() int { return g.referenceYear }

// Built reports whether Build has linked the adjacency.
func (g *Graph) Built() bool { return g.built }

// Len reports the number of actors in the arena.
func (g *Graph) Len() int { return len(g.actors) }

// Exists reports whether name appeared as the actor of at least one credit.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Exists(name string) bool {
	_, ok := g.index[name]

	return ok
}

// Lookup resolves a name to its Handle.
//
// Returns:
//   - Handle: arena slot of the actor, NoHandle when absent.
//   - bool: false when the actor was never ingested.
func (g *Graph) Lookup(name string) (Handle, bool) {
	h, ok := g.index[name]
	if !ok {
		return NoHandle, false
	}

	return h, true
}

// Actor returns the arena record behind h. It panics on an out-of-range handle,
// which can only come from another Graph.
func (g *Graph) Actor(h Handle) *Actor { return &g.actors[h] }

// Name returns the actor name behind h.
func (g *Graph) Name(h Handle) string { return g.actors[h].Name }

// Names returns every actor name, sorted ascending.
func (g *Graph) Names() []string {
	names := make([]string, 0, len(g.actors))
	for i := range g.actors {
		names = append(names, g.actors[i].Name)
	}
	sort.Strings(names)

	return names
}

// Handles returns every handle ordered by actor name.
func (g *Graph) Handles() []Handle {
	hs := make([]Handle, len(g.actors))
	for i := range hs {
		hs[i] = Handle(i)
	}
	g.sortByName(hs)

	return hs
}

// SortedNeighbors returns the handles adjacent to h ordered by actor name.
//
// Complexity:
//   - Time O(d log d), Space O(d) where d = len(Neighbors).
func (g *Graph) SortedNeighbors(h Handle) []Handle {
	nbrs := g.actors[h].Neighbors
	hs := make([]Handle, 0, len(nbrs))
	for n := range nbrs {
		hs = append(hs, n)
	}
	g.sortByName(hs)

	return hs
}

// Credits returns every credit of the actor ordered by title, then year.
func (a *Actor) Credits() []Credit {
	cs := make([]Credit, 0, len(a.Edges))
	for c := range a.Edges {
		cs = append(cs, c)
	}
	sort.Slice(cs, func(i, j int) bool { return cs[i].Less(cs[j]) })

	return cs
}

// Cast returns the actors credited in (title, year) in ingestion order,
// duplicates included. The returned slice must not be modified.
func (g *Graph) Cast(c Credit) []Handle {
	return g.movies[c.Title][c.Year]
}

// Cost is the travel cost of a credit released in year:
// ReferenceYear - year + 1, floored at 1.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Cost(year int) int64 {
	w := int64(g.referenceYear) - int64(year) + 1
	if w < 1 {
		return 1
	}

	return w
}

// GraphStats is a read-only snapshot of catalog sizes.
type GraphStats struct {
	Actors        int // unique actor names
	Credits       int // ingested credit rows
	Movies        int // distinct (title, year) groups
	Links         int // undirected actor pairs sharing at least one credit
	FutureCredits int // credits newer than the reference year
	ReferenceYear int
	Built         bool
}

// Stats produces a snapshot of catalog sizes.
// Complexity: O(T) where T is the number of distinct titles.
func (g *Graph) Stats() GraphStats {
	movies := 0
	for _, years := range g.movies {
		movies += len(years)
	}

	return GraphStats{
		Actors:        len(g.actors),
		Credits:       g.credits,
		Movies:        movies,
		Links:         g.links,
		FutureCredits: g.futureCredits,
		ReferenceYear: g.referenceYear,
		Built:         g.built,
	}
}

// sortByName orders handles by actor name; names are unique so the order is total.
func (g *Graph) sortByName(hs []Handle) {
	sort.Slice(hs, func(i, j int) bool {
		return g.actors[hs[i]].Name < g.actors[hs[j]].Name
	})
}
