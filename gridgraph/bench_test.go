package gridgraph_test

import (
	"testing"

	"github.com/katalvlaran/lvmaze/gridgraph"
)

// BenchmarkNewCandidateGraph measures building a 200×200 candidate grid.
// Complexity: O(W×H)
func BenchmarkNewCandidateGraph(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := gridgraph.NewCandidateGraph(200, 200, gridgraph.WithSeed(42)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRegions measures region discovery on a fully linked grid.
func BenchmarkRegions(b *testing.B) {
	g, err := gridgraph.NewCandidateGraph(200, 200, gridgraph.WithSeed(42))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gridgraph.Regions(g)
	}
}
