package graphio_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/maxcut/graphio"
)

// ExampleParse reads a PACE instance and writes it back as an edge list.
func ExampleParse() {
	const pace = `c triangle
p cut 3 3
1 2
2 3
3 1
`
	g, err := graphio.Parse(strings.NewReader(pace), graphio.PACE)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err = graphio.Write(os.Stdout, g, graphio.EdgeList); err != nil {
		fmt.Println("error:", err)
	}

	// Output:
	// # 3 vertices, 3 edges
	// 0 1
	// 1 2
	// 0 2
}
