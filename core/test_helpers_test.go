// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for actorgraph/core.
//
// Purpose:
//   - Provide small, deterministic credit fixtures shared by the core tests.
//   - Fail fast on fixture construction errors.

package core_test

import (
	"testing"

	"github.com/katalvlaran/actorgraph/core"
)

// Common actor names used across core tests.
const (
	ActorAlice = "Alice"
	ActorBob   = "Bob"
	ActorCarol = "Carol"
	ActorDave  = "Dave"
	ActorEve   = "Eve"
)

// Common titles and years used across core tests.
const (
	MovieA = "MovieA"
	MovieB = "MovieB"
	MovieC = "MovieC"

	Year2018 = 2018
	Year2019 = 2019
)

// credit is one (actor, title, year) fixture row.
type credit struct {
	actor string
	title string
	year  int
}

// mustBuild ingests rows into a fresh graph and links it.
func mustBuild(t *testing.T, rows []credit, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g := core.NewGraph(opts...)
	for _, r := range rows {
		if err := g.AddCredit(r.actor, r.title, r.year); err != nil {
			t.Fatalf("AddCredit(%q,%q,%d): %v", r.actor, r.title, r.year, err)
		}
	}
	if err := g.Build(); err != nil {
		t.Fatalf("Build: %v", err)
	}

	return g
}

// mustLookup resolves name or fails the test.
func mustLookup(t *testing.T, g *core.Graph, name string) core.Handle {
	t.Helper()
	h, ok := g.Lookup(name)
	if !ok {
		t.Fatalf("Lookup(%q): not found", name)
	}

	return h
}

// trio is the three-actor single-movie fixture.
func trio() []credit {
	return []credit{
		{ActorAlice, MovieA, Year2018},
		{ActorBob, MovieA, Year2018},
		{ActorCarol, MovieA, Year2018},
	}
}
