package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/maxcut/core"
)

type AdjacencySuite struct {
	suite.Suite
	g *core.Graph
}

func (s *AdjacencySuite) SetupTest() {
	// A 5-vertex "house": square 0-1-2-3 with roof 2-4-3.
	g, err := core.NewGraph(5, []core.Edge{
		{A: 0, B: 1}, {A: 1, B: 2}, {A: 2, B: 3}, {A: 3, B: 0}, {A: 2, B: 4}, {A: 4, B: 3},
	})
	s.Require().NoError(err)
	s.g = g
}

func (s *AdjacencySuite) TestSymmetry() {
	require := require.New(s.T())
	for v := 0; v < s.g.Size(); v++ {
		for _, u := range s.g.Neighbors(v) {
			require.Less(u, s.g.Size(), "neighbor index must be < n")
			require.Contains(s.g.Neighbors(u), v, "adjacency must be symmetric for %d-%d", v, u)
		}
	}
}

func (s *AdjacencySuite) TestEdgeCountMatchesDegrees() {
	require := require.New(s.T())
	sum := 0
	for v := 0; v < s.g.Size(); v++ {
		sum += s.g.Degree(v)
	}
	require.Equal(2*s.g.EdgeSize(), sum, "handshake lemma")
	require.Equal(6, s.g.EdgeSize())
}

func (s *AdjacencySuite) TestAllEdgesCanonicalAndUnique() {
	require := require.New(s.T())
	seen := map[core.Edge]bool{}
	for _, e := range s.g.AllEdges() {
		require.Less(e.A, e.B, "edge %v must be canonical", e)
		require.False(seen[e], "edge %v repeated", e)
		seen[e] = true
	}
	require.Equal(core.Edge{A: 3, B: 4}, s.g.AllEdges()[5], "insertion order is preserved")
}

func (s *AdjacencySuite) TestHasEdge() {
	require := require.New(s.T())
	require.True(s.g.HasEdge(0, 1))
	require.True(s.g.HasEdge(1, 0))
	require.True(s.g.HasEdge(4, 2))
	require.False(s.g.HasEdge(0, 2))
	require.False(s.g.HasEdge(0, 0))
	require.False(s.g.HasEdge(0, 99))
	require.False(s.g.HasEdge(-1, 0))
}

func (s *AdjacencySuite) TestNeighborsOutOfRange() {
	require := require.New(s.T())
	require.Nil(s.g.Neighbors(-1))
	require.Nil(s.g.Neighbors(5))
	require.Equal(0, s.g.Degree(42))
}

func (s *AdjacencySuite) TestNeighborsStableOrder() {
	require := require.New(s.T())
	require.Equal([]int{1, 3, 4}, s.g.Neighbors(2))
	require.Equal([]int{2, 0, 4}, s.g.Neighbors(3))
}

func TestAdjacencySuite(t *testing.T) {
	suite.Run(t, new(AdjacencySuite))
}
