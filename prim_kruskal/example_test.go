package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/actorgraph/core"
	"github.com/katalvlaran/actorgraph/prim_kruskal"
)

// ExampleKruskal spans three co-stars with two edges; a triangle never survives.
func ExampleKruskal() {
	g := core.NewGraph()
	g.AddCredit("Alice", "MovieA", 2018)
	g.AddCredit("Bob", "MovieA", 2018)
	g.AddCredit("Carol", "MovieA", 2018)
	if err := g.Build(); err != nil {
		fmt.Println("error:", err)
		return
	}

	f, err := prim_kruskal.Kruskal(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range f.Edges {
		fmt.Printf("(%s)--%s-->(%s)\n", e.From, e.Credit.Label(), e.To)
	}
	fmt.Println("Total:", f.TotalWeight)
	// Output:
	// (Alice)--[MovieA#@2018]-->(Bob)
	// (Alice)--[MovieA#@2018]-->(Carol)
	// Total: 4
}

// ExamplePrim grows a forest over two separate casts.
func ExamplePrim() {
	g := core.NewGraph()
	g.AddCredit("A", "Old", 2009)
	g.AddCredit("B", "Old", 2009)
	g.AddCredit("B", "New", 2019)
	g.AddCredit("C", "New", 2019)
	g.AddCredit("X", "Other", 2019)
	g.AddCredit("Y", "Other", 2019)
	if err := g.Build(); err != nil {
		fmt.Println("error:", err)
		return
	}

	f, err := prim_kruskal.Prim(g, "")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("Trees: %d, Total: %d, Edges:", f.Trees(), f.TotalWeight)
	for _, e := range f.Edges {
		fmt.Printf(" %s-%s", e.From, e.To)
	}
	fmt.Println()
	// Output: Trees: 2, Total: 13, Edges: A-B B-C X-Y
}
