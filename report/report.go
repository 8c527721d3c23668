// Package report renders max-cut results for humans, benchmark scripts and
// machine consumers.
package report

import (
	"errors"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/maxcut/core"
)

// ErrUnknownOutput is returned for an output format other than text or yaml.
var ErrUnknownOutput = errors.New("report: unknown output format")

// Result is one solved instance.
type Result struct {
	File      string
	Algorithm string
	Vertices  int
	Edges     int
	Cut       []core.Edge
	Elapsed   time.Duration
}

// document is the YAML shape of a Result.
type document struct {
	File      string   `yaml:"file"`
	Algorithm string   `yaml:"algorithm"`
	Vertices  int      `yaml:"vertices"`
	Edges     int      `yaml:"edges"`
	CutSize   int      `yaml:"cut_size"`
	ElapsedMS int64    `yaml:"elapsed_ms"`
	Cut       [][2]int `yaml:"cut,flow"`
}

// Writer renders a sequence of results in one output format. YAML results
// share one encoder so that they form a valid multi-document stream.
type Writer struct {
	w   io.Writer
	enc *yaml.Encoder
}

// NewWriter returns a Writer for output "text" or "yaml".
func NewWriter(w io.Writer, output string) (*Writer, error) {
	rw := &Writer{w: w}
	switch output {
	case "text":
	case "yaml":
		rw.enc = yaml.NewEncoder(w)
		rw.enc.SetIndent(2)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOutput, output)
	}
	return rw, nil
}

// Write renders one result.
func (rw *Writer) Write(r Result) error {
	if rw.enc == nil {
		return WriteText(rw.w, r)
	}
	if err := rw.enc.Encode(newDocument(r)); err != nil {
		return fmt.Errorf("report: encode yaml: %w", err)
	}
	return nil
}

// Close flushes the YAML stream, if any.
func (rw *Writer) Close() error {
	if rw.enc == nil {
		return nil
	}
	return rw.enc.Close()
}

// WriteParsed prints the acknowledgement line shown before solving.
func WriteParsed(w io.Writer, file string) error {
	_, err := fmt.Fprintf(w, "parsed '%s'\n", file)
	return err
}

// WriteText prints the cut edge list under a heading.
func WriteText(w io.Writer, r Result) error {
	_, err := fmt.Fprintf(w, "Maximum cut for '%s':\n\n%v\n\n%d of %d edges (%s)\n",
		r.File, r.Cut, len(r.Cut), r.Edges, r.Algorithm)
	return err
}

// WriteBench prints one CSV-like line: file, vertices, edges, cut size, ms.
func WriteBench(w io.Writer, r Result) error {
	_, err := fmt.Fprintf(w, "%s, %d, %d, %d, %d\n",
		r.File, r.Vertices, r.Edges, len(r.Cut), r.Elapsed.Milliseconds())
	return err
}

// WriteTimeout prints the line reported when the exact solver runs out of time.
func WriteTimeout(w io.Writer, file string) error {
	_, err := fmt.Fprintf(w, "%s, timeout\n", file)
	return err
}

// WriteYAML encodes r as a single YAML document.
func WriteYAML(w io.Writer, r Result) error {
	rw, err := NewWriter(w, "yaml")
	if err != nil {
		return err
	}
	if err = rw.Write(r); err != nil {
		return err
	}
	return rw.Close()
}

func newDocument(r Result) document {
	doc := document{
		File:      r.File,
		Algorithm: r.Algorithm,
		Vertices:  r.Vertices,
		Edges:     r.Edges,
		CutSize:   len(r.Cut),
		ElapsedMS: r.Elapsed.Milliseconds(),
		Cut:       make([][2]int, len(r.Cut)),
	}
	for i, e := range r.Cut {
		doc.Cut[i] = [2]int{e.A, e.B}
	}
	return doc
}
