// SPDX-License-Identifier: MIT
//
// File: methods_build.go
// Role: Ingestion (AddCredit) and adjacency construction (Build).
// Determinism:
//   - Build walks titles, then years, in ascending order; pairs inside a group
//     are linked in ingestion order.
// Concurrency:
//   - Both methods take the graph lock.

package core

import (
	"fmt"
	"sort"
)

// AddCredit registers one (actor, title, year) credit.
//
// Implementation:
//   - Stage 1: Reject empty names and any call after Build.
//   - Stage 2: Allocate the Actor record on first sight of the name.
//   - Stage 3: Register the credit on the actor and append the actor to the
//     (title, year) movie group.
//
// Behavior highlights:
//   - Repeating a credit is not deduplicated: the actor appears twice in the
//     group and the shared-credit counts of its co-stars grow accordingly.
//
// Errors:
//   - ErrEmptyActorName, ErrAlreadyBuilt.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddCredit(actor, title string, year int) error {
	if actor == "" {
		return ErrEmptyActorName
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.built {
		return fmt.Errorf("%w: cannot add credit for %q", ErrAlreadyBuilt, actor)
	}

	h, ok := g.index[actor]
	if !ok {
		h = Handle(len(g.actors))
		g.actors = append(g.actors, newActor(actor))
		g.index[actor] = h
	}

	c := Credit{Title: title, Year: year}
	a := &g.actors[h]
	if _, seen := a.Edges[c]; !seen {
		a.Edges[c] = []Handle{}
	}

	years, ok := g.movies[title]
	if !ok {
		years = make(map[int][]Handle)
		g.movies[title] = years
	}
	years[year] = append(years[year], h)

	g.credits++
	if year > g.referenceYear {
		g.futureCredits++
	}

	return nil
}

// Build links every pair of actors sharing a (title, year) group.
//
// Implementation:
//   - Stage 1: Surface any deferred option error; refuse a second Build.
//   - Stage 2: For every group with k >= 2 entries, in sorted (title, year)
//     order, visit every unordered pair (i < j) and call link.
//
// Behavior highlights:
//   - Groups with k <= 1 produce nothing.
//   - A pair made of the same actor (duplicate row) is skipped: no self edges.
//
// Errors:
//   - ErrBadReferenceYear (from WithReferenceYear), ErrAlreadyBuilt.
//
// Complexity:
//   - Time O(Σ k²) over groups, Space O(Σ k²) for the edge lists.
func (g *Graph) Build() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.err != nil {
		return g.err
	}
	if g.built {
		return ErrAlreadyBuilt
	}

	titles := make([]string, 0, len(g.movies))
	for t := range g.movies {
		titles = append(titles, t)
	}
	sort.Strings(titles)

	for _, title := range titles {
		groups := g.movies[title]
		years := make([]int, 0, len(groups))
		for y := range groups {
			years = append(years, y)
		}
		sort.Ints(years)

		for _, year := range years {
			cast := groups[year]
			if len(cast) < 2 {
				continue
			}
			c := Credit{Title: title, Year: year}
			w := g.Cost(year)
			for i := 0; i < len(cast)-1; i++ {
				for j := i + 1; j < len(cast); j++ {
					if cast[i] == cast[j] {
						continue
					}
					g.link(cast[i], cast[j], c, w)
				}
			}
		}
	}
	g.built = true

	return nil
}

// link records one shared credit between u and v in both directions.
// A cheaper weight replaces the stored minimum; an equal one does not.
func (g *Graph) link(u, v Handle, c Credit, w int64) {
	au, av := &g.actors[u], &g.actors[v]

	au.Edges[c] = append(au.Edges[c], v)
	av.Edges[c] = append(av.Edges[c], u)

	if au.Neighbors[v] == 0 {
		g.links++
	}
	au.Neighbors[v]++
	av.Neighbors[u]++

	if cur, ok := au.NeighborsWeighted[v]; !ok || w < cur {
		au.NeighborsWeighted[v] = w
		au.MovieNeighborsWeighted[v] = c
	}
	if cur, ok := av.NeighborsWeighted[u]; !ok || w < cur {
		av.NeighborsWeighted[u] = w
		av.MovieNeighborsWeighted[u] = c
	}
}
