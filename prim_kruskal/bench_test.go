package prim_kruskal_test

import (
	"testing"

	"github.com/katalvlaran/actorgraph/prim_kruskal"
)

// BenchmarkKruskal measures performance on a random catalog of 2000 five-actor casts.
func BenchmarkKruskal(b *testing.B) {
	g := buildRandom(b, 3000, 2000, 5) // pre-build graph once
	b.ResetTimer()                     // reset timer to exclude graph construction
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.Kruskal(g)
	}
}

// BenchmarkPrim measures performance on the same catalog.
func BenchmarkPrim(b *testing.B) {
	g := buildRandom(b, 3000, 2000, 5)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.Prim(g, "")
	}
}
