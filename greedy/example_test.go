package greedy_test

import (
	"fmt"

	"github.com/katalvlaran/maxcut/builder"
	"github.com/katalvlaran/maxcut/greedy"
)

// ExampleCut runs the greedy approximation on a 5-cycle (max cut 4).
func ExampleCut() {
	g, err := builder.Cycle(5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	cut := greedy.Cut(g)
	fmt.Println("edges:", g.EdgeSize(), "cut:", len(cut))
	fmt.Println(cut)

	// Output:
	// edges: 5 cut: 4
	// [(0, 1) (1, 2) (2, 3) (3, 4)]
}
