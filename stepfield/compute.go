package stepfield

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/stepnav/grid"
)

// Compute builds the step field toward dest over every present point of t.
//
// Behavior:
//  1. Sort t.Points() by squared Euclidean distance to dest (stable, so
//     equidistant points keep row-major order).
//  2. Seed every cell with Unreachable and dest with 0.
//  3. Run N passes; pass i walks the order forward when i is even and
//     backward when odd, overwriting each non-destination cell with
//     StepByNeighbors in place, so later cells see this pass's updates.
//  4. After pass N/2−1 call FillUnreachable once.
//
// Returns ErrBadIterations for N < 0 and ErrUnknownDestination when dest is
// absent from t.
func Compute(t grid.Terrain, dest grid.Point, opts ...Option) (*Field, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Iterations < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadIterations, o.Iterations)
	}
	if !t.Has(dest) {
		return nil, fmt.Errorf("%w: %v", ErrUnknownDestination, dest)
	}

	order := t.Points()
	slices.SortStableFunc(order, func(a, b grid.Point) int {
		return cmp.Compare(a.DistSq(dest), b.DistSq(dest))
	})

	f := &Field{
		dest:       dest,
		steps:      make(map[grid.Point]int, len(order)),
		order:      order,
		version:    t.Version(),
		iterations: o.Iterations,
	}
	for _, p := range order {
		f.steps[p] = Unreachable
	}
	f.steps[dest] = 0

	n := len(order)
	for i := 0; i < o.Iterations; i++ {
		for j := 0; j < n; j++ {
			k := j
			if i%2 == 1 {
				k = n - 1 - j
			}
			p := order[k]
			if p == dest {
				continue
			}
			f.steps[p] = f.StepByNeighbors(t, p)
		}

		if i == o.Iterations/2-1 {
			resolved := FillUnreachable(t, f)
			o.Logger.Debug("stepfield: filled unreachable cells",
				"dest", dest, "pass", i, "resolved", resolved)
		}
	}

	o.Logger.Debug("stepfield: computed",
		"dest", dest, "cells", n, "iterations", o.Iterations)
	return f, nil
}
