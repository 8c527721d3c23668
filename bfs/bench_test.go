package bfs_test

import (
	"testing"

	"github.com/katalvlaran/maxcut/bfs"
	"github.com/katalvlaran/maxcut/builder"
)

// BenchmarkTwoColor measures bipartite detection on a 100×100 grid.
func BenchmarkTwoColor(b *testing.B) {
	g, err := builder.Grid(100, 100)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, ok := bfs.TwoColor(g); !ok {
			b.Fatal("grid must be bipartite")
		}
	}
}
