package stepfield

import (
	"maps"
	"slices"

	"github.com/katalvlaran/stepnav/grid"
)

// Field holds the step count from every present point to one destination.
// A Field returned by Compute is safe for concurrent reads.
type Field struct {
	dest       grid.Point
	steps      map[grid.Point]int
	order      []grid.Point
	version    uint64
	iterations int
}

// Destination returns the point this field leads to.
func (f *Field) Destination() grid.Point { return f.dest }

// Step returns the step count at p and whether p is part of the field.
func (f *Field) Step(p grid.Point) (int, bool) {
	s, ok := f.steps[p]
	return s, ok
}

// IsReachable reports whether p is part of the field with a finite step.
func (f *Field) IsReachable(p grid.Point) bool {
	s, ok := f.steps[p]
	return ok && s != Unreachable
}

// Len returns the number of cells in the field.
func (f *Field) Len() int { return len(f.steps) }

// Order returns the points sorted by Euclidean distance to the destination,
// the traversal order of even passes.
func (f *Field) Order() []grid.Point { return slices.Clone(f.order) }

// Version returns the terrain version the field was computed against.
func (f *Field) Version() uint64 { return f.version }

// Iterations returns the pass count the field was computed with.
func (f *Field) Iterations() int { return f.iterations }

// Range calls fn for every cell in distance order until fn returns false.
func (f *Field) Range(fn func(p grid.Point, step int) bool) {
	for _, p := range f.order {
		if !fn(p, f.steps[p]) {
			return
		}
	}
}

// Equal reports whether f and o lead to the same destination with identical steps.
func (f *Field) Equal(o *Field) bool {
	if f == nil || o == nil {
		return f == o
	}
	return f.dest == o.dest && maps.Equal(f.steps, o.steps)
}

// LowestNeighbor returns the lowest step among p's walkable axis neighbours
// and the direction to it. Ties keep the first minimum in grid.Directions
// order. If p itself is not walkable, or no walkable neighbour has a finite
// step, it returns (Unreachable, grid.None).
func (f *Field) LowestNeighbor(t grid.Walkable, p grid.Point) (int, grid.Direction) {
	best, dir := Unreachable, grid.None
	if !t.IsWalkable(p) {
		return best, dir
	}
	for _, d := range grid.Directions {
		q := p.Add(d.Offset())
		if !t.IsWalkable(q) {
			continue
		}
		if s, ok := f.steps[q]; ok && s < best {
			best, dir = s, d
		}
	}
	return best, dir
}

// StepByNeighbors returns 1 + the lowest walkable neighbour step of p, or
// Unreachable when LowestNeighbor finds nothing finite.
func (f *Field) StepByNeighbors(t grid.Walkable, p grid.Point) int {
	s, _ := f.LowestNeighbor(t, p)
	if s == Unreachable {
		return Unreachable
	}
	return s + 1
}
