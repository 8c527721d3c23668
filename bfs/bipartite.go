// SPDX-License-Identifier: MIT
//
// File: bipartite.go
// Role: two-coloring by BFS depth parity.

package bfs

import "github.com/katalvlaran/maxcut/core"

// TwoColor colors every vertex by the parity of its BFS depth from the
// smallest vertex of its component. ok is true when no edge joins two
// vertices of the same color, i.e. g is bipartite; the partition is then a
// cut containing every edge. A nil graph yields (nil, false).
//
// Complexity: O(V + E).
func TwoColor(g *core.Graph) (side core.Partition, ok bool) {
	if g == nil {
		return nil, false
	}
	w := newWalker(g, DefaultOptions())
	for v := 0; v < g.Size(); v++ {
		if w.res.Depth[v] != unreached {
			continue
		}
		w.enqueue(v, 0, unreached)
		// Background context and a no-op hook cannot fail.
		_ = w.loop()
	}

	side = core.NewPartition(g.Size())
	for v, d := range w.res.Depth {
		side[v] = d%2 == 1
	}
	for _, e := range g.AllEdges() {
		if !side.Separates(e) {
			return side, false
		}
	}
	return side, true
}
