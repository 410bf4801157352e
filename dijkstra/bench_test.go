// SPDX-License-Identifier: MIT

package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/actorgraph/builder"
	"github.com/katalvlaran/actorgraph/dijkstra"
)

// BenchmarkShortestPath_RandomCasts measures weighted queries over random 5-actor casts.
func BenchmarkShortestPath_RandomCasts(b *testing.B) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(42), builder.WithYearFn(builder.UniformYearFn(1950, 2019))},
		builder.RandomCasts(3000, 2000, 5),
	)
	if err != nil {
		b.Fatalf("BuildGraph: %v", err)
	}
	names := g.Names()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = dijkstra.ShortestPath(g, names[i%len(names)], names[(i*7+3)%len(names)])
	}
}

// BenchmarkShortestPath_AgingChain walks a chain whose movies get older at every hop.
func BenchmarkShortestPath_AgingChain(b *testing.B) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithIDScheme(builder.PrefixIDFn("a")), builder.WithYearFn(builder.DescendingYearFn(2019))},
		builder.Chain(1000),
	)
	if err != nil {
		b.Fatalf("BuildGraph: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = dijkstra.ShortestPath(g, "a0", "a999")
	}
}
