// Package graphio reads and writes max-cut instances in the text formats used
// by benchmark collections, optionally bzip2-compressed.
//
// Formats
//
//   - PACE (.gr): "c ..." comment lines, one "p <name> <n> <m>" problem line,
//     then "a b" edge lines with 1-based endpoints.
//   - Rudy (.rud, .rudy, .txt and any unknown extension): a first line
//     "n m", then "a b [w]" lines with 1-based endpoints. Weights are
//     accepted and discarded.
//   - Edge list (.el, .edges): "a b" lines with 0-based endpoints, "#" or "%"
//     comments; the vertex count is the largest endpoint plus one, or the
//     "# <n> vertices" comment that Write emits if that is larger.
//
// Files declaring more than MaxVertices vertices are rejected with
// ErrTooLarge; header edge counts only size the initial buffers.
//
// A trailing ".bz2" on the path selects transparent bzip2 (de)compression
// and the format is detected from the extension before it.
//
// The declared edge count of PACE and Rudy headers is informational: files
// with more or fewer edge lines still parse. Duplicate edges collapse into
// one; self-loops and out-of-range endpoints are rejected by core.NewGraph.
package graphio
