// Command maxcut reads a graph file and computes a (maximum) cut with the
// greedy approximation, the random heuristics or the exact solver.
//
//	maxcut [flags] FILE
//
// Exit status is 0 on success, 1 on read, parse or solve errors, and 2 when
// the exact solver runs out of time.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/katalvlaran/maxcut/config"
	"github.com/katalvlaran/maxcut/core"
	"github.com/katalvlaran/maxcut/exact"
	"github.com/katalvlaran/maxcut/graphio"
	"github.com/katalvlaran/maxcut/greedy"
	"github.com/katalvlaran/maxcut/heuristic"
	"github.com/katalvlaran/maxcut/logger"
	"github.com/katalvlaran/maxcut/report"
)

const (
	exitOK      = 0
	exitError   = 1
	exitTimeout = 2
)

// modes holds the flags that select algorithms and presentation.
type modes struct {
	approx            bool
	heuristic         bool
	heuristicParallel bool
	improved          bool
	bench             bool
	configPath        string
	format            string
}

// job is one algorithm run on the parsed graph.
type job struct {
	name  string
	solve func(ctx context.Context, g *core.Graph) ([]core.Edge, error)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func newFlagSet(m *modes, stderr io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet("maxcut", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVarP(&m.approx, "approx", "a", false, "greedy 1/2-approximation")
	fs.BoolVarP(&m.heuristic, "heuristic", "H", false, "random cut heuristic")
	fs.BoolVar(&m.heuristicParallel, "heuristic-parallel", false, "parallel random cut heuristic")
	fs.BoolVarP(&m.improved, "improved", "i", false, "improved variant: incremental greedy, best-of-random heuristics")
	fs.BoolVarP(&m.bench, "bench", "b", false, "print one 'file, n, m, cut, ms' line per algorithm")
	fs.StringVar(&m.configPath, "config", "", "YAML configuration file")
	fs.StringVar(&m.format, "format", "", "input format: rudy, pace or edgelist (default: by extension)")
	config.RegisterFlags(fs)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: maxcut [flags] FILE")
		fs.PrintDefaults()
	}
	return fs
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var m modes
	fs := newFlagSet(&m, stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitError
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return exitError
	}
	file := fs.Arg(0)

	cfg, err := config.Load(m.configPath, fs)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}
	if m.improved && cfg.ILPTimeout >= 0 {
		fmt.Fprintln(stderr, "--improved cannot be combined with --ilp")
		return exitError
	}
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}
	defer func() { _ = log.Sync() }()

	g, err := readGraph(file, m.format)
	if err != nil {
		fmt.Fprintf(stderr, "could not read '%s': %v\n", file, err)
		return exitError
	}
	log.Info("graph parsed",
		zap.String("file", file),
		zap.Int("vertices", g.Size()),
		zap.Int("edges", g.EdgeSize()),
	)
	if !m.bench && cfg.Output == config.OutputText {
		_ = report.WriteParsed(stdout, file)
	}

	out, err := report.NewWriter(stdout, cfg.Output)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}
	defer out.Close()

	for _, j := range plan(m, cfg, log) {
		start := time.Now()
		cut, err := j.solve(ctx, g)
		elapsed := time.Since(start)

		if errors.Is(err, exact.ErrTimeout) {
			log.Warn("exact solver timed out", zap.String("file", file), zap.Duration("elapsed", elapsed))
			_ = report.WriteTimeout(stdout, file)
			return exitTimeout
		}
		if err != nil {
			fmt.Fprintf(stderr, "%s error: %v\n", j.name, err)
			return exitError
		}
		log.Info("cut computed",
			zap.String("algorithm", j.name),
			zap.Int("cut", len(cut)),
			zap.Duration("elapsed", elapsed),
		)

		res := report.Result{
			File:      file,
			Algorithm: j.name,
			Vertices:  g.Size(),
			Edges:     g.EdgeSize(),
			Cut:       cut,
			Elapsed:   elapsed,
		}
		if m.bench {
			err = report.WriteBench(stdout, res)
		} else {
			err = out.Write(res)
		}
		if err != nil {
			fmt.Fprintln(stderr, err)
			return exitError
		}
	}
	return exitOK
}

// readGraph reads path in the named format, or the one its extension implies.
func readGraph(path, format string) (*core.Graph, error) {
	f, compressed := graphio.DetectFormat(path)
	if format != "" {
		var err error
		if f, err = graphio.ParseFormat(format); err != nil {
			return nil, err
		}
	}
	return graphio.ReadFileAs(path, f, compressed)
}

// plan lists the selected algorithms in a fixed order: exact, greedy,
// sequential heuristic, parallel heuristic. With nothing selected the
// incremental greedy runs.
func plan(m modes, cfg *config.Config, log *zap.Logger) []job {
	opts := func(ctx context.Context) []heuristic.Option {
		return []heuristic.Option{
			heuristic.WithContext(ctx),
			heuristic.WithSeed(cfg.Seed),
			heuristic.WithWorkers(cfg.Workers),
			heuristic.WithMaxRounds(cfg.MaxRounds),
			heuristic.WithLogger(log),
		}
	}
	bestOf := job{"best-of-random", func(ctx context.Context, g *core.Graph) ([]core.Edge, error) {
		return heuristic.BestOfRandom(g, opts(ctx)...)
	}}

	var jobs []job
	if cfg.ILPTimeout >= 0 {
		jobs = append(jobs, job{"exact", func(ctx context.Context, g *core.Graph) ([]core.Edge, error) {
			if cfg.ILPTimeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, time.Duration(cfg.ILPTimeout)*time.Second)
				defer cancel()
			}
			solver := exact.NewBranchAndBound(
				exact.WithMaxVertices(cfg.MaxVertices),
				exact.WithLogger(log),
			)
			return exact.MaxCut(ctx, g, solver)
		}})
	}
	if m.approx || (cfg.ILPTimeout < 0 && !m.heuristic && !m.heuristicParallel) {
		if m.improved || !m.approx {
			jobs = append(jobs, job{"greedy", func(_ context.Context, g *core.Graph) ([]core.Edge, error) {
				return greedy.Cut(g), nil
			}})
		} else {
			jobs = append(jobs, job{"greedy-basic", func(_ context.Context, g *core.Graph) ([]core.Edge, error) {
				return greedy.Basic(g), nil
			}})
		}
	}
	if m.heuristic {
		if m.improved {
			jobs = append(jobs, bestOf)
		} else {
			jobs = append(jobs, job{"random", func(ctx context.Context, g *core.Graph) ([]core.Edge, error) {
				return heuristic.RandomCut(g, opts(ctx)...), nil
			}})
		}
	}
	if m.heuristicParallel {
		if m.improved && !m.heuristic {
			jobs = append(jobs, bestOf)
		} else if !m.improved {
			jobs = append(jobs, job{"random-parallel", func(ctx context.Context, g *core.Graph) ([]core.Edge, error) {
				return heuristic.RandomCutParallel(g, opts(ctx)...)
			}})
		}
	}
	return jobs
}
