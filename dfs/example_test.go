package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/maxcut/core"
	"github.com/katalvlaran/maxcut/dfs"
)

// ExampleComponents splits a graph of a triangle, an edge and a lone vertex.
func ExampleComponents() {
	g, _ := core.NewGraph(6, []core.Edge{
		{A: 0, B: 1}, {A: 1, B: 2}, {A: 0, B: 2}, {A: 3, B: 5},
	})
	fmt.Println(dfs.Components(g))
	// Output: [[0 1 2] [3 5] [4]]
}
