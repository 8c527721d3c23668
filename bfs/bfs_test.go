package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/maxcut/bfs"
	"github.com/katalvlaran/maxcut/builder"
	"github.com/katalvlaran/maxcut/core"
)

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g, _ := core.NewGraph(2, nil)
	for _, start := range []int{-1, 2} {
		if _, err := bfs.BFS(g, start); !errors.Is(err, bfs.ErrStartOutOfRange) {
			t.Errorf("start %d: want ErrStartOutOfRange, got %v", start, err)
		}
	}
	if _, err := bfs.BFS(g, 0, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_CycleDepths covers a simple cycle and checks depths and parents.
func TestBFS_CycleDepths(t *testing.T) {
	g, err := builder.Cycle(6)
	if err != nil {
		t.Fatal(err)
	}
	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 5, 2, 4, 3}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if want := []int{0, 1, 2, 3, 2, 1}; !reflect.DeepEqual(res.Depth, want) {
		t.Errorf("Depth = %v; want %v", res.Depth, want)
	}
	path, err := res.PathTo(3)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 2, 3}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo(3) = %v; want %v", path, want)
	}
}

// TestBFS_Unreached leaves other components at depth -1.
func TestBFS_Unreached(t *testing.T) {
	g, _ := core.NewGraph(4, []core.Edge{{A: 0, B: 1}, {A: 2, B: 3}})
	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if res.Reached(2) || !res.Reached(1) || res.Reached(9) {
		t.Errorf("Reached mismatch: depth=%v", res.Depth)
	}
	if _, err = res.PathTo(3); err == nil {
		t.Error("PathTo(3): want error for unreached vertex")
	}
}

// TestBFS_MaxDepthAndHooks limits the frontier and aborts from OnVisit.
func TestBFS_MaxDepthAndHooks(t *testing.T) {
	g, _ := builder.Path(6)
	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(2))
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("MaxDepth=2 Order = %v; want %v", res.Order, want)
	}

	stop := errors.New("stop")
	_, err = bfs.BFS(g, 0, bfs.WithOnVisit(func(v, _ int) error {
		if v == 3 {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Errorf("OnVisit abort: want stop, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err = bfs.BFS(g, 0, bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled: want context.Canceled, got %v", err)
	}
}

// TestTwoColor checks bipartite detection across fixtures.
func TestTwoColor(t *testing.T) {
	cases := []struct {
		name  string
		build func() (*core.Graph, error)
		want  bool
	}{
		{"even cycle", func() (*core.Graph, error) { return builder.Cycle(8) }, true},
		{"odd cycle", func() (*core.Graph, error) { return builder.Cycle(7) }, false},
		{"grid", func() (*core.Graph, error) { return builder.Grid(4, 5) }, true},
		{"K3,3", func() (*core.Graph, error) { return builder.CompleteBipartite(3, 3) }, true},
		{"wheel", func() (*core.Graph, error) { return builder.Wheel(5) }, false},
		{"forest", func() (*core.Graph, error) {
			return core.NewGraph(7, []core.Edge{{A: 0, B: 1}, {A: 1, B: 2}, {A: 4, B: 5}})
		}, true},
		{"empty", func() (*core.Graph, error) { return core.NewGraph(0, nil) }, true},
	}
	for _, tc := range cases {
		g, err := tc.build()
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		side, ok := bfs.TwoColor(g)
		if ok != tc.want {
			t.Errorf("%s: bipartite = %v; want %v", tc.name, ok, tc.want)
			continue
		}
		if ok && side.CutSize(g) != g.EdgeSize() {
			t.Errorf("%s: coloring cuts %d of %d edges", tc.name, side.CutSize(g), g.EdgeSize())
		}
	}
	if side, ok := bfs.TwoColor(nil); side != nil || ok {
		t.Error("nil graph: want (nil, false)")
	}
}
