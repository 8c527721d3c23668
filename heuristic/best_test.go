package heuristic_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/maxcut/builder"
	"github.com/katalvlaran/maxcut/core"
	"github.com/katalvlaran/maxcut/heuristic"
)

// BestOfRandomSuite drives BestOfRandom with scripted sources so that the
// round-by-round behavior is fully deterministic.
type BestOfRandomSuite struct {
	suite.Suite
	triangle *core.Graph
}

func (s *BestOfRandomSuite) SetupTest() {
	g, err := builder.Complete(3)
	s.Require().NoError(err)
	s.triangle = g
}

// lateWinner returns a factory whose first k streams put every vertex on one
// side, and whose later streams split vertex 0 from the rest.
func lateWinner(k uint64) func(uint64) heuristic.Source {
	return func(stream uint64) heuristic.Source {
		if stream < k {
			return constSource(false)
		}
		return &seqSource{sides: []bool{false, true, true}}
	}
}

// TestMonotoneRounds checks the non-decreasing best sequence and early stop.
func (s *BestOfRandomSuite) TestMonotoneRounds() {
	type round struct{ idx, best int }
	var seen []round

	cut, err := heuristic.BestOfRandom(s.triangle,
		heuristic.WithWorkers(1),
		heuristic.WithSourceFactory(lateWinner(2)),
		heuristic.WithOnRound(func(r, best int) { seen = append(seen, round{r, best}) }),
	)
	s.Require().NoError(err)
	s.Require().Equal([]round{{0, 0}, {1, 0}, {2, 2}}, seen)
	s.Require().NoError(core.ValidateCut(s.triangle, cut))
	s.Require().Len(cut, 2)
	s.Require().GreaterOrEqual(float64(len(cut)), heuristic.Target(s.triangle))
}

// TestStreamsAreUniquePerRound checks that every trial gets a fresh stream id.
func (s *BestOfRandomSuite) TestStreamsAreUniquePerRound() {
	const workers = 3
	streams := make(chan uint64, 64)

	_, err := heuristic.BestOfRandom(s.triangle,
		heuristic.WithWorkers(workers),
		heuristic.WithSourceFactory(func(stream uint64) heuristic.Source {
			streams <- stream
			return lateWinner(2*workers)(stream)
		}),
	)
	s.Require().NoError(err)
	close(streams)

	got := map[uint64]bool{}
	for id := range streams {
		s.Require().False(got[id], "stream %d reused", id)
		got[id] = true
	}
	s.Require().Len(got, 3*workers, "three rounds of %d trials", workers)
}

// TestMaxRoundsCap stops an unlucky run with an empty, error-free result.
func (s *BestOfRandomSuite) TestMaxRoundsCap() {
	rounds := 0
	cut, err := heuristic.BestOfRandom(s.triangle,
		heuristic.WithWorkers(2),
		heuristic.WithMaxRounds(5),
		heuristic.WithSourceFactory(func(uint64) heuristic.Source { return constSource(true) }),
		heuristic.WithOnRound(func(int, int) { rounds++ }),
	)
	s.Require().NoError(err)
	s.Require().Empty(cut)
	s.Require().NotNil(cut)
	s.Require().Equal(5, rounds)
}

// TestCancelledContext returns the best-so-far cut and the context error.
func (s *BestOfRandomSuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cut, err := heuristic.BestOfRandom(s.triangle,
		heuristic.WithContext(ctx),
		heuristic.WithSourceFactory(func(uint64) heuristic.Source { return constSource(false) }),
	)
	s.Require().ErrorIs(err, context.Canceled)
	s.Require().Empty(cut)
}

// TestWorkerPanic fails the whole call.
func (s *BestOfRandomSuite) TestWorkerPanic() {
	cut, err := heuristic.BestOfRandom(s.triangle,
		heuristic.WithWorkers(4),
		heuristic.WithSourceFactory(func(stream uint64) heuristic.Source {
			if stream == 1 {
				return panicSource{}
			}
			return constSource(false)
		}),
	)
	s.Require().ErrorIs(err, heuristic.ErrTaskFailed)
	s.Require().Nil(cut)
}

// TestLogsRounds emits one debug record per round.
func (s *BestOfRandomSuite) TestLogsRounds() {
	obs, logs := observer.New(zapcore.DebugLevel)
	_, err := heuristic.BestOfRandom(s.triangle,
		heuristic.WithWorkers(1),
		heuristic.WithSourceFactory(lateWinner(1)),
		heuristic.WithLogger(zap.New(obs)),
	)
	s.Require().NoError(err)
	s.Require().Equal(2, logs.FilterMessage("round done").Len())
}

func TestBestOfRandomSuite(t *testing.T) {
	suite.Run(t, new(BestOfRandomSuite))
}

// TestBestOfRandom_TinyGraphsTerminate covers the graphs where the n/2 bound
// alone would never be reached.
func TestBestOfRandom_TinyGraphsTerminate(t *testing.T) {
	for _, n := range []int{0, 1} {
		g, err := core.NewGraph(n, nil)
		require.NoError(t, err)

		called := false
		cut, err := heuristic.BestOfRandom(g, heuristic.WithOnRound(func(int, int) { called = true }))
		require.NoError(t, err)
		require.Empty(t, cut)
		require.False(t, called, "n=%d needs no rounds", n)
	}

	// n=2, one edge: target is min(1, 1) = 1, reachable.
	g, err := builder.Path(2)
	require.NoError(t, err)
	cut, err := heuristic.BestOfRandom(g, heuristic.WithSeed(3))
	require.NoError(t, err)
	require.Equal(t, []core.Edge{{A: 0, B: 1}}, cut)
}

// TestBestOfRandom_ReachesTarget runs unscripted on a sparse random graph.
func TestBestOfRandom_ReachesTarget(t *testing.T) {
	g := gnp(t, 120, 0.05, 8)
	cut, err := heuristic.BestOfRandom(g, heuristic.WithSeed(21), heuristic.WithWorkers(4))
	require.NoError(t, err)
	require.NoError(t, core.ValidateCut(g, cut))
	require.GreaterOrEqual(t, float64(len(cut)), heuristic.Target(g))
}

// TestBestOfRandom_Errors covers nil graph and option violations.
func TestBestOfRandom_Errors(t *testing.T) {
	_, err := heuristic.BestOfRandom(nil)
	require.ErrorIs(t, err, heuristic.ErrGraphNil)

	g := gnp(t, 10, 0.5, 1)
	_, err = heuristic.BestOfRandom(g, heuristic.WithWorkers(-2))
	require.ErrorIs(t, err, heuristic.ErrOptionViolation)
	_, err = heuristic.BestOfRandom(g, heuristic.WithMaxRounds(-1))
	require.ErrorIs(t, err, heuristic.ErrOptionViolation)
}

// TestTarget pins the stopping threshold.
func TestTarget(t *testing.T) {
	for _, tc := range []struct {
		name  string
		build func() (*core.Graph, error)
		want  float64
	}{
		{"empty", func() (*core.Graph, error) { return core.NewGraph(0, nil) }, 0},
		{"isolated vertex", func() (*core.Graph, error) { return core.NewGraph(1, nil) }, 0},
		{"triangle", func() (*core.Graph, error) { return builder.Complete(3) }, 1.5},
		{"sparse path", func() (*core.Graph, error) { return core.NewGraph(10, []core.Edge{{A: 0, B: 1}}) }, 1},
		{"K6", func() (*core.Graph, error) { return builder.Complete(6) }, 3},
		{"star plus isolated", func() (*core.Graph, error) {
			return core.NewGraph(10, []core.Edge{{A: 0, B: 1}, {A: 0, B: 2}, {A: 0, B: 3}, {A: 0, B: 4}, {A: 0, B: 5}})
		}, 3},
	} {
		t.Run(tc.name, func(t *testing.T) {
			g, err := tc.build()
			require.NoError(t, err)
			require.Equal(t, tc.want, heuristic.Target(g))
		})
	}
}
