package grid

import (
	"fmt"
	"math"
)

// Lattice maps world-space positions on the XZ plane to grid points.
// Cell (x, y) is centred on world (x·ux, y·uz), where Unit reports (ux, uz).
// The zero Lattice has 1×1 cells.
type Lattice struct {
	unitX, unitZ float64
}

// NewLattice validates the cell size and returns a Lattice.
func NewLattice(unitX, unitZ float64) (Lattice, error) {
	if !(unitX > 0) || !(unitZ > 0) {
		return Lattice{}, fmt.Errorf("%w: %gx%g", ErrBadUnit, unitX, unitZ)
	}
	return Lattice{unitX: unitX, unitZ: unitZ}, nil
}

// Unit returns the world size of one cell along X and Z.
func (l Lattice) Unit() (x, z float64) {
	if l.unitX == 0 || l.unitZ == 0 {
		return 1, 1
	}
	return l.unitX, l.unitZ
}

// Snap returns the point whose cell contains world position (x, z).
// Halfway positions round away from zero.
func (l Lattice) Snap(x, z float64) Point {
	ux, uz := l.Unit()
	return Point{
		X: int(math.Round(x / ux)),
		Y: int(math.Round(z / uz)),
	}
}

// Center returns the world position of p's cell centre.
func (l Lattice) Center(p Point) (x, z float64) {
	ux, uz := l.Unit()
	return float64(p.X) * ux, float64(p.Y) * uz
}

// SnapRect returns the grid rectangle covering the world box [x0,x1]×[z0,z1].
func (l Lattice) SnapRect(x0, z0, x1, z1 float64) (lo, hi Point) {
	a, b := l.Snap(x0, z0), l.Snap(x1, z1)
	lo = Point{X: min(a.X, b.X), Y: min(a.Y, b.Y)}
	hi = Point{X: max(a.X, b.X), Y: max(a.Y, b.Y)}
	return lo, hi
}

// Sample builds a sparse grid by calling fn for every point of the inclusive
// rectangle [lo, hi]. A point is inserted with the returned value when fn
// reports true and left absent otherwise.
//
// This is the shape of scene-driven builders: the caller snaps the scene
// bounds with a Lattice, then answers "what is at this cell" per point.
func Sample[V any](lo, hi Point, fn func(p Point) (V, bool)) *Grid[V] {
	g := New[V]()
	for y := lo.Y; y <= hi.Y; y++ {
		for x := lo.X; x <= hi.X; x++ {
			p := Pt(x, y)
			if v, ok := fn(p); ok {
				_ = g.Set(p, v)
			}
		}
	}
	return g
}
