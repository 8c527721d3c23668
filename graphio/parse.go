// SPDX-License-Identifier: MIT
//
// File: parse.go
// Role: line-oriented readers for the supported formats.

package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/maxcut/core"
)

const maxLineBytes = 1 << 20

// Parse reads a graph in format f from r.
//
// Errors:
//   - ErrUnknownFormat for an invalid f.
//   - ErrSyntax (with the 1-based line number) or ErrNoProblemLine.
//   - core.ErrMalformedInput family for out-of-range endpoints or loops.
//   - I/O errors from r, unwrapped.
func Parse(r io.Reader, f Format) (*core.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		g   *core.Graph
		err error
	)
	switch f {
	case PACE:
		g, err = parsePACE(sc)
	case Rudy:
		g, err = parseRudy(sc)
	case EdgeList:
		g, err = parseEdgeList(sc)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, int(f))
	}
	if err != nil {
		return nil, err
	}
	if err = sc.Err(); err != nil {
		return nil, err
	}
	return g, nil
}

// lineScanner tracks the current line number for error messages.
type lineScanner struct {
	sc   *bufio.Scanner
	line int
}

// next returns the fields of the next non-blank line.
func (ls *lineScanner) next() ([]string, bool) {
	for ls.sc.Scan() {
		ls.line++
		if fields := strings.Fields(ls.sc.Text()); len(fields) > 0 {
			return fields, true
		}
	}
	return nil, false
}

func (ls *lineScanner) syntax(format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrSyntax, ls.line, fmt.Sprintf(format, args...))
}

// pair parses two integers and shifts them by -offset.
func (ls *lineScanner) pair(a, b string, offset int) (core.Edge, error) {
	x, errA := strconv.Atoi(a)
	y, errB := strconv.Atoi(b)
	if errA != nil || errB != nil {
		return core.Edge{}, ls.syntax("unrecognized edge %q %q", a, b)
	}
	return core.Edge{A: x - offset, B: y - offset}, nil
}

// count parses a non-negative header integer.
func (ls *lineScanner) count(s, what string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0, ls.syntax("bad %s %q", what, s)
	}
	return v, nil
}

// build wraps core validation errors with the file line that introduced the
// offending edge.
func build(n int, edges []core.Edge, lines []int) (*core.Graph, error) {
	if n > MaxVertices {
		return nil, fmt.Errorf("%w: %d vertices, limit %d", ErrTooLarge, n, MaxVertices)
	}
	g, err := core.NewGraph(n, edges)
	if err == nil {
		return g, nil
	}
	for i, e := range edges {
		if e.A < 0 || e.B < 0 || e.A >= n || e.B >= n || e.A == e.B {
			return nil, fmt.Errorf("line %d: %w", lines[i], err)
		}
	}
	return nil, err
}

func parsePACE(sc *bufio.Scanner) (*core.Graph, error) {
	ls := &lineScanner{sc: sc}
	n := -1
	var (
		edges []core.Edge
		lines []int
	)
	for {
		fields, ok := ls.next()
		if !ok {
			break
		}
		switch {
		case fields[0] == "c":
			continue
		case fields[0] == "p":
			if n >= 0 {
				return nil, ls.syntax("duplicate problem line")
			}
			if len(fields) != 4 {
				return nil, ls.syntax("problem line wants 'p <name> <n> <m>'")
			}
			var err error
			if n, err = ls.count(fields[2], "vertex count"); err != nil {
				return nil, err
			}
			m, err := ls.count(fields[3], "edge count")
			if err != nil {
				return nil, err
			}
			edges = make([]core.Edge, 0, min(m, edgeHint))
			lines = make([]int, 0, min(m, edgeHint))
		case len(fields) == 2:
			if n < 0 {
				return nil, fmt.Errorf("%w: line %d: edge before problem line", ErrNoProblemLine, ls.line)
			}
			e, err := ls.pair(fields[0], fields[1], 1)
			if err != nil {
				return nil, err
			}
			edges = append(edges, e)
			lines = append(lines, ls.line)
		default:
			return nil, ls.syntax("unrecognized line %q", strings.Join(fields, " "))
		}
	}
	if n < 0 {
		return nil, ErrNoProblemLine
	}
	return build(n, edges, lines)
}

func parseRudy(sc *bufio.Scanner) (*core.Graph, error) {
	ls := &lineScanner{sc: sc}
	header, ok := ls.next()
	if !ok {
		return nil, ErrNoProblemLine
	}
	if len(header) != 2 {
		return nil, ls.syntax("header wants '<n> <m>'")
	}
	n, err := ls.count(header[0], "vertex count")
	if err != nil {
		return nil, err
	}
	m, err := ls.count(header[1], "edge count")
	if err != nil {
		return nil, err
	}

	edges := make([]core.Edge, 0, min(m, edgeHint))
	lines := make([]int, 0, min(m, edgeHint))
	for {
		fields, ok := ls.next()
		if !ok {
			break
		}
		if len(fields) < 2 || len(fields) > 3 {
			return nil, ls.syntax("edge wants '<a> <b> [w]'")
		}
		if len(fields) == 3 {
			if _, err := strconv.ParseFloat(fields[2], 64); err != nil {
				return nil, ls.syntax("bad weight %q", fields[2])
			}
		}
		e, err := ls.pair(fields[0], fields[1], 1)
		if err != nil {
			return nil, err
		}
		edges = append(edges, e)
		lines = append(lines, ls.line)
	}
	return build(n, edges, lines)
}

func parseEdgeList(sc *bufio.Scanner) (*core.Graph, error) {
	ls := &lineScanner{sc: sc}
	var (
		edges []core.Edge
		lines []int
		n     int
	)
	for {
		fields, ok := ls.next()
		if !ok {
			break
		}
		if strings.HasPrefix(fields[0], "#") || strings.HasPrefix(fields[0], "%") {
			if hint, ok := vertexHint(fields); ok {
				n = max(n, hint)
			}
			continue
		}
		if len(fields) != 2 {
			return nil, ls.syntax("edge wants '<a> <b>'")
		}
		e, err := ls.pair(fields[0], fields[1], 0)
		if err != nil {
			return nil, err
		}
		edges = append(edges, e)
		lines = append(lines, ls.line)
		n = max(n, e.A+1, e.B+1)
	}
	return build(n, edges, lines)
}

// vertexHint reads the "# <n> vertices" comment written by Write.
func vertexHint(fields []string) (int, bool) {
	if len(fields) < 3 || fields[0] != "#" || !strings.HasPrefix(fields[2], "vertices") {
		return 0, false
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
