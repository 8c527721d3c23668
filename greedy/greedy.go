// SPDX-License-Identifier: MIT
//
// File: greedy.go
// Role: improved (incremental) and basic greedy cut construction.

package greedy

import "github.com/katalvlaran/maxcut/core"

// Cut returns the cut edge set of the greedy partition of g.
// Emitted edges are canonical; see CutWithPartition for the partition itself.
func Cut(g *core.Graph) []core.Edge {
	cut, _ := CutWithPartition(g)
	return cut
}

// CutWithPartition runs the incremental greedy and returns both the cut edge
// set and the partition that induces it.
//
// Vertex v goes to side 0 iff the number of placed neighbors on side 0 is
// not greater than the number on side 1. Edges are emitted in vertex order,
// and for a fixed v in neighbor order.
func CutWithPartition(g *core.Graph) ([]core.Edge, core.Partition) {
	n := g.Size()
	side := core.NewPartition(n)
	cut := make([]core.Edge, 0, g.EdgeSize()/2+1)

	for v := 0; v < n; v++ {
		var on0, on1 int
		for _, u := range g.Neighbors(v) {
			// u > v is not placed yet.
			if u >= v {
				continue
			}
			if side[u] {
				on1++
			} else {
				on0++
			}
		}

		side[v] = on0 > on1
		for _, u := range g.Neighbors(v) {
			if u < v && side[u] != side[v] {
				cut = append(cut, core.Edge{A: u, B: v})
			}
		}
	}

	return cut, side
}

// Basic returns the cut of the basic greedy partition: vertex v joins side 0
// iff the neighbors already on side 0 do not outnumber the rest of its
// neighbors (placed or not). The whole edge list is classified afterwards.
func Basic(g *core.Graph) []core.Edge {
	n := g.Size()
	side := core.NewPartition(n)
	placed := make([]bool, n)

	for v := 0; v < n; v++ {
		var in0, rest int
		for _, u := range g.Neighbors(v) {
			if placed[u] && !side[u] {
				in0++
			} else {
				rest++
			}
		}
		side[v] = in0 > rest
		placed[v] = true
	}

	return side.CutEdges(g)
}
