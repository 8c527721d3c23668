// SPDX-License-Identifier: MIT
//
// File: format.go
// Role: format enumeration, sentinel errors and extension detection.

package graphio

import (
	"errors"
	"path/filepath"
	"strings"
)

// Sentinel errors.
var (
	// ErrSyntax is returned for a line that does not fit the format.
	ErrSyntax = errors.New("graphio: syntax error")

	// ErrNoProblemLine is returned when a PACE file has no "p" line, or a
	// Rudy file has no header.
	ErrNoProblemLine = errors.New("graphio: missing problem line")

	// ErrUnknownFormat is returned for a Format value outside the enum.
	ErrUnknownFormat = errors.New("graphio: unknown format")

	// ErrTooLarge is returned when a file declares more than MaxVertices vertices.
	ErrTooLarge = errors.New("graphio: graph too large")
)

// MaxVertices bounds the vertex count accepted from a file.
const MaxVertices = 1 << 24

// edgeHint caps the edge capacity preallocated from a header.
const edgeHint = 1 << 16

// Format identifies an on-disk graph encoding.
type Format int

const (
	// Rudy is the "n m" header + 1-based weighted edge lines format.
	Rudy Format = iota
	// PACE is the DIMACS-like "p" line + 1-based edge lines format.
	PACE
	// EdgeList is a list of 0-based pairs; a "# <n> vertices" comment sets
	// the vertex count when it exceeds the largest endpoint.
	EdgeList
)

const bz2Ext = ".bz2"

func (f Format) String() string {
	switch f {
	case Rudy:
		return "rudy"
	case PACE:
		return "pace"
	case EdgeList:
		return "edgelist"
	default:
		return "unknown"
	}
}

// ParseFormat maps a format name (as printed by String) to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "rudy":
		return Rudy, nil
	case "pace", "gr":
		return PACE, nil
	case "edgelist", "el":
		return EdgeList, nil
	}
	return 0, ErrUnknownFormat
}

// DetectFormat picks the format from path's extension and reports whether
// the path names a bzip2 stream.
func DetectFormat(path string) (f Format, compressed bool) {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, bz2Ext) {
		compressed = true
		lower = strings.TrimSuffix(lower, bz2Ext)
	}
	switch filepath.Ext(lower) {
	case ".gr":
		return PACE, compressed
	case ".el", ".edges":
		return EdgeList, compressed
	default:
		return Rudy, compressed
	}
}
