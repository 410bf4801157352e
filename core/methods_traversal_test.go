// SPDX-License-Identifier: MIT

package core_test

import (
	"reflect"
	"testing"

	"github.com/katalvlaran/actorgraph/core"
)

// TestCredit_Label checks the "[title#@year]" rendering.
func TestCredit_Label(t *testing.T) {
	c := core.Credit{Title: "Heat", Year: 1995}
	if got, want := c.Label(), "[Heat#@1995]"; got != want {
		t.Errorf("Label = %q; want %q", got, want)
	}
}

// TestTracePath reconstructs a two-hop path from hand-set predecessors.
func TestTracePath(t *testing.T) {
	g := mustBuild(t, trio())
	a := mustLookup(t, g, ActorAlice)
	b := mustLookup(t, g, ActorBob)
	c := mustLookup(t, g, ActorCarol)

	g.Actor(b).Predecessor = a
	g.Actor(b).Connector = "[MovieA#@2018]"
	g.Actor(c).Predecessor = b
	g.Actor(c).Connector = "[MovieA#@2018]"

	got := g.TracePath(c)
	want := core.Path{ActorAlice, "[MovieA#@2018]", ActorBob, "[MovieA#@2018]", ActorCarol}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("TracePath = %v; want %v", got, want)
	}
	if got.Hops() != 2 {
		t.Errorf("Hops = %d; want 2", got.Hops())
	}
	if !reflect.DeepEqual(got.Actors(), []string{ActorAlice, ActorBob, ActorCarol}) {
		t.Errorf("Actors = %v", got.Actors())
	}
	if len(got.Labels()) != 2 {
		t.Errorf("Labels = %v", got.Labels())
	}

	if g.TraversalClean() {
		t.Fatal("TraversalClean = true with predecessors set")
	}
	g.ResetTraversal([]core.Handle{b, c, c})
	if !g.TraversalClean() {
		t.Fatal("TraversalClean = false after ResetTraversal")
	}
}

// TestTracePath_Source returns an empty path when the target has no predecessor.
func TestTracePath_Source(t *testing.T) {
	g := mustBuild(t, trio())
	a := mustLookup(t, g, ActorAlice)
	if p := g.TracePath(a); len(p) != 0 {
		t.Errorf("TracePath(source) = %v; want empty", p)
	}
	if (core.Path{}).Hops() != 0 {
		t.Error("empty path must have zero hops")
	}
}

// TestSortedViews checks that neighbor and credit views are ordered.
func TestSortedViews(t *testing.T) {
	g := mustBuild(t, []credit{
		{ActorCarol, MovieB, Year2019},
		{ActorAlice, MovieB, Year2019},
		{ActorBob, MovieA, Year2018},
		{ActorAlice, MovieA, Year2018},
	})
	a := mustLookup(t, g, ActorAlice)

	var names []string
	for _, h := range g.SortedNeighbors(a) {
		names = append(names, g.Name(h))
	}
	if !reflect.DeepEqual(names, []string{ActorBob, ActorCarol}) {
		t.Errorf("SortedNeighbors = %v", names)
	}

	want := []core.Credit{{Title: MovieA, Year: Year2018}, {Title: MovieB, Year: Year2019}}
	if got := g.Actor(a).Credits(); !reflect.DeepEqual(got, want) {
		t.Errorf("Credits = %v; want %v", got, want)
	}
}
