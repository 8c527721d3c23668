package dfs

import "github.com/katalvlaran/maxcut/core"

// Components returns the connected components of g, each as an ascending
// vertex list, ordered by their smallest vertex. Isolated vertices form
// singleton components. A nil graph yields nil.
//
// Time:   O(V + E).
// Memory: O(V).
func Components(g *core.Graph) [][]int {
	if g == nil {
		return nil
	}
	// Background context and no hooks: the walk cannot fail.
	res, _ := DFS(g, 0, WithFullTraversal())

	index := make(map[int]int)
	var comps [][]int
	for v := 0; v < g.Size(); v++ {
		root := res.Root[v]
		i, ok := index[root]
		if !ok {
			i = len(comps)
			index[root] = i
			comps = append(comps, nil)
		}
		comps[i] = append(comps[i], v)
	}
	return comps
}
