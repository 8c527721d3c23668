package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/maxcut/core"
)

func square(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(4, []core.Edge{{A: 0, B: 1}, {A: 1, B: 2}, {A: 2, B: 3}, {A: 3, B: 0}})
	require.NoError(t, err)
	return g
}

// TestPartition_CutEdges checks classification against hand-computed cuts.
func TestPartition_CutEdges(t *testing.T) {
	g := square(t)

	p := core.NewPartition(4)
	require.Empty(t, p.CutEdges(g), "all on one side cuts nothing")
	require.Equal(t, 0, p.CutSize(g))

	p[1], p[3] = true, true
	require.Equal(t, g.AllEdges(), p.CutEdges(g), "alternating sides cut the whole 4-cycle")
	require.Equal(t, 4, p.CutSize(g))
	require.Equal(t, 1, p.Side(1))
	require.Equal(t, 0, p.Side(2))

	p[3] = false
	require.Equal(t, []core.Edge{{A: 0, B: 1}, {A: 1, B: 2}}, p.CutEdges(g))
	require.True(t, core.SidesConsistent(g, p, p.CutEdges(g)))
}

// TestValidateCut rejects foreign, repeated and non-canonical edges.
func TestValidateCut(t *testing.T) {
	g := square(t)

	require.NoError(t, core.ValidateCut(g, nil))
	require.NoError(t, core.ValidateCut(g, []core.Edge{{A: 0, B: 1}, {A: 0, B: 3}}))
	require.ErrorIs(t, core.ValidateCut(g, []core.Edge{{A: 0, B: 2}}), core.ErrNotACut)
	require.ErrorIs(t, core.ValidateCut(g, []core.Edge{{A: 1, B: 0}}), core.ErrNotACut)
	require.ErrorIs(t, core.ValidateCut(g, []core.Edge{{A: 0, B: 1}, {A: 0, B: 1}}), core.ErrNotACut)
}

// TestSidesConsistent catches missing and extra edges.
func TestSidesConsistent(t *testing.T) {
	g := square(t)
	p := core.Partition{false, true, false, true}

	require.True(t, core.SidesConsistent(g, p, g.Edges()))
	require.False(t, core.SidesConsistent(g, p, g.AllEdges()[:3]), "missing edge")
	require.False(t, core.SidesConsistent(g, core.NewPartition(4), g.AllEdges()[:1]), "uncut edge")
	require.False(t, core.SidesConsistent(g, core.NewPartition(3), nil), "partition too short")
}
