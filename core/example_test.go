// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"

	"github.com/katalvlaran/actorgraph/core"
)

// ExampleGraph_Build ingests three credits of one movie and inspects the links.
func ExampleGraph_Build() {
	g := core.NewGraph()
	g.AddCredit("Alice", "MovieA", 2018)
	g.AddCredit("Bob", "MovieA", 2018)
	g.AddCredit("Carol", "MovieA", 2018)
	if err := g.Build(); err != nil {
		fmt.Println("error:", err)
		return
	}

	alice, _ := g.Lookup("Alice")
	for _, h := range g.SortedNeighbors(alice) {
		a := g.Actor(alice)
		fmt.Printf("%s shared=%d cost=%d via %s\n",
			g.Name(h), a.Neighbors[h], a.NeighborsWeighted[h], a.MovieNeighborsWeighted[h].Label())
	}
	// Output:
	// Bob shared=1 cost=2 via [MovieA#@2018]
	// Carol shared=1 cost=2 via [MovieA#@2018]
}
