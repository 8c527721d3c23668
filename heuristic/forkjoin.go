// Package heuristic - fork-join helpers.
package heuristic

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// span is the half-open index range [lo, hi).
type span struct {
	lo, hi int
}

func (s span) len() int { return s.hi - s.lo }

// splitRange cuts [0, total) into parts contiguous spans whose lengths differ
// by at most one; the first total%parts spans are the longer ones. Spans may
// be empty when total < parts.
func splitRange(total, parts int) []span {
	if parts < 1 {
		parts = 1
	}
	out := make([]span, parts)
	base, rem := total/parts, total%parts
	lo := 0
	for i := range out {
		size := base
		if i < rem {
			size++
		}
		out[i] = span{lo: lo, hi: lo + size}
		lo += size
	}
	return out
}

// runTasks starts parts goroutines running task(0..parts-1) and blocks until
// all of them return. A returned error or a panic in any task becomes an
// error wrapping ErrTaskFailed; the first such error is reported.
func runTasks(parts int, task func(i int) error) error {
	var g errgroup.Group
	for i := 0; i < parts; i++ {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("%w: task %d panicked: %v", ErrTaskFailed, i, r)
				}
			}()
			if terr := task(i); terr != nil {
				return fmt.Errorf("%w: task %d: %w", ErrTaskFailed, i, terr)
			}
			return nil
		})
	}
	return g.Wait()
}
