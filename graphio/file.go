// SPDX-License-Identifier: MIT
//
// File: file.go
// Role: path-based reading and writing with transparent bzip2.

package graphio

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/dsnet/compress/bzip2"

	"github.com/katalvlaran/maxcut/core"
)

// ReadFile opens path, decompresses it when it ends in ".bz2", and parses it
// in the format detected from its extension.
func ReadFile(path string) (*core.Graph, error) {
	f, compressed := DetectFormat(path)
	return ReadFileAs(path, f, compressed)
}

// ReadFileAs is ReadFile with an explicit format.
func ReadFileAs(path string, f Format, compressed bool) (*core.Graph, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var r io.Reader = file
	if compressed {
		bz, err := bzip2.NewReader(file, nil)
		if err != nil {
			return nil, err
		}
		defer bz.Close()
		r = bz
	}

	g, err := Parse(r, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Write encodes g in format f. Endpoints are written 1-based for PACE and
// Rudy (with unit weights) and 0-based for EdgeList.
func Write(w io.Writer, g *core.Graph, f Format) error {
	bw := bufio.NewWriter(w)
	switch f {
	case PACE:
		fmt.Fprintf(bw, "p cut %d %d\n", g.Size(), g.EdgeSize())
		for _, e := range g.AllEdges() {
			fmt.Fprintf(bw, "%d %d\n", e.A+1, e.B+1)
		}
	case Rudy:
		fmt.Fprintf(bw, "%d %d\n", g.Size(), g.EdgeSize())
		for _, e := range g.AllEdges() {
			fmt.Fprintf(bw, "%d %d 1\n", e.A+1, e.B+1)
		}
	case EdgeList:
		fmt.Fprintf(bw, "# %d vertices, %d edges\n", g.Size(), g.EdgeSize())
		for _, e := range g.AllEdges() {
			fmt.Fprintf(bw, "%d %d\n", e.A, e.B)
		}
	default:
		return fmt.Errorf("%w: %d", ErrUnknownFormat, int(f))
	}
	return bw.Flush()
}

// WriteFile writes g to path in the format detected from its extension,
// bzip2-compressed when the path ends in ".bz2".
func WriteFile(path string, g *core.Graph) (err error) {
	f, compressed := DetectFormat(path)

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	if !compressed {
		return Write(file, g, f)
	}

	bz, err := bzip2.NewWriter(file, &bzip2.WriterConfig{})
	if err != nil {
		return err
	}
	if err = Write(bz, g, f); err != nil {
		bz.Close()
		return err
	}
	return bz.Close()
}
