package grid

import (
	"fmt"
	"slices"
)

// Grid maps Points to values of type V.
//
// A Grid built with New is sparse: any point may be inserted and the bounds
// grow to cover it. A Grid built with NewDense stores cells in a slice over a
// fixed rectangle (its extent) and rejects writes outside it.
//
// In both cases Min/Max track the present points only, so a dense grid whose
// last row is empty reports a smaller bounding box than its extent.
type Grid[V any] struct {
	// sparse storage
	cells map[Point]V

	// dense storage, row-major over [extMin, extMax]
	dense   []V
	present []bool
	extMin  Point
	extMax  Point

	min, max Point
	count    int
	version  uint64
}

// New returns an empty sparse grid.
func New[V any]() *Grid[V] {
	return &Grid[V]{cells: make(map[Point]V)}
}

// FromMap builds a sparse grid from a bulk source, computing bounds in one pass.
// The map is copied.
func FromMap[V any](m map[Point]V) *Grid[V] {
	g := &Grid[V]{cells: make(map[Point]V, len(m))}
	for p, v := range m {
		g.cells[p] = v
	}
	g.count = len(g.cells)
	g.rescan()
	g.version++
	return g
}

// NewDense returns an empty dense grid whose extent is the inclusive
// rectangle [min, max]. Returns ErrEmptyGrid if the rectangle is empty.
func NewDense[V any](min, max Point) (*Grid[V], error) {
	if max.X < min.X || max.Y < min.Y {
		return nil, fmt.Errorf("%w: extent %v..%v", ErrEmptyGrid, min, max)
	}
	n := (max.X - min.X + 1) * (max.Y - min.Y + 1)
	return &Grid[V]{
		dense:   make([]V, n),
		present: make([]bool, n),
		extMin:  min,
		extMax:  max,
	}, nil
}

// IsDense reports whether g uses fixed slice storage.
func (g *Grid[V]) IsDense() bool {
	return g.dense != nil
}

// Extent returns the fixed storage rectangle of a dense grid, or the
// current bounds of a sparse one.
func (g *Grid[V]) Extent() (min, max Point) {
	if g.IsDense() {
		return g.extMin, g.extMax
	}
	return g.min, g.max
}

// index maps p to its dense slot, or -1 if p lies outside the extent.
func (g *Grid[V]) index(p Point) int {
	if p.X < g.extMin.X || p.X > g.extMax.X || p.Y < g.extMin.Y || p.Y > g.extMax.Y {
		return -1
	}
	w := g.extMax.X - g.extMin.X + 1
	return (p.Y-g.extMin.Y)*w + (p.X - g.extMin.X)
}

// Set stores v at p. On a dense grid it returns ErrOutOfBounds when p lies
// outside the extent; sparse grids never fail.
func (g *Grid[V]) Set(p Point, v V) error {
	fresh := false
	if g.IsDense() {
		i := g.index(p)
		if i < 0 {
			return fmt.Errorf("%w: %v outside %v..%v", ErrOutOfBounds, p, g.extMin, g.extMax)
		}
		fresh = !g.present[i]
		g.dense[i] = v
		g.present[i] = true
	} else {
		_, ok := g.cells[p]
		fresh = !ok
		g.cells[p] = v
	}
	if fresh {
		g.grow(p)
		g.count++
	}
	g.version++
	return nil
}

// Delete removes p. Bounds are recomputed with a full scan, so Delete is not
// meant for hot paths.
func (g *Grid[V]) Delete(p Point) {
	if g.IsDense() {
		i := g.index(p)
		if i < 0 || !g.present[i] {
			return
		}
		var zero V
		g.dense[i] = zero
		g.present[i] = false
	} else {
		if _, ok := g.cells[p]; !ok {
			return
		}
		delete(g.cells, p)
	}
	g.count--
	g.rescan()
	g.version++
}

// Get returns the value at p, or ErrNotFound if p is absent.
func (g *Grid[V]) Get(p Point) (V, error) {
	v, ok := g.TryGet(p)
	if !ok {
		return v, fmt.Errorf("%w: %v", ErrNotFound, p)
	}
	return v, nil
}

// TryGet returns the value at p and whether p is present.
func (g *Grid[V]) TryGet(p Point) (V, bool) {
	if g.IsDense() {
		i := g.index(p)
		if i < 0 || !g.present[i] {
			var zero V
			return zero, false
		}
		return g.dense[i], true
	}
	v, ok := g.cells[p]
	return v, ok
}

// Has reports whether p is present.
func (g *Grid[V]) Has(p Point) bool {
	_, ok := g.TryGet(p)
	return ok
}

// InBounds reports whether p lies inside [Min, Max]. An empty grid has no bounds.
func (g *Grid[V]) InBounds(p Point) bool {
	if g.count == 0 {
		return false
	}
	return p.X >= g.min.X && p.X <= g.max.X && p.Y >= g.min.Y && p.Y <= g.max.Y
}

// Min returns the componentwise minimum over present points.
func (g *Grid[V]) Min() Point { return g.min }

// Max returns the componentwise maximum over present points.
func (g *Grid[V]) Max() Point { return g.max }

// Size returns Max − Min + (1,1), or (0,0) for an empty grid.
func (g *Grid[V]) Size() (width, height int) {
	if g.count == 0 {
		return 0, 0
	}
	return g.max.X - g.min.X + 1, g.max.Y - g.min.Y + 1
}

// Len returns the number of present points.
func (g *Grid[V]) Len() int { return g.count }

// Version returns a token that changes on every mutation.
func (g *Grid[V]) Version() uint64 { return g.version }

// Points returns the present points in row-major order (Y, then X).
// The returned slice is owned by the caller.
func (g *Grid[V]) Points() []Point {
	pts := make([]Point, 0, g.count)
	g.Range(func(p Point, _ V) bool {
		pts = append(pts, p)
		return true
	})
	if !g.IsDense() {
		slices.SortFunc(pts, compareRowMajor)
	}
	return pts
}

// Range calls fn for every present point until fn returns false.
// Dense grids are visited in row-major order; sparse grids in map order.
func (g *Grid[V]) Range(fn func(p Point, v V) bool) {
	if g.IsDense() {
		w := g.extMax.X - g.extMin.X + 1
		for i, ok := range g.present {
			if !ok {
				continue
			}
			p := Point{X: g.extMin.X + i%w, Y: g.extMin.Y + i/w}
			if !fn(p, g.dense[i]) {
				return
			}
		}
		return
	}
	for p, v := range g.cells {
		if !fn(p, v) {
			return
		}
	}
}

// grow extends the bounds to cover a newly inserted point.
func (g *Grid[V]) grow(p Point) {
	if g.count == 0 {
		g.min, g.max = p, p
		return
	}
	g.min = Point{X: min(g.min.X, p.X), Y: min(g.min.Y, p.Y)}
	g.max = Point{X: max(g.max.X, p.X), Y: max(g.max.Y, p.Y)}
}

// rescan recomputes the bounds from scratch. O(n).
func (g *Grid[V]) rescan() {
	seen := 0
	g.min, g.max = Point{}, Point{}
	g.Range(func(p Point, _ V) bool {
		if seen == 0 {
			g.min, g.max = p, p
		} else {
			g.min = Point{X: min(g.min.X, p.X), Y: min(g.min.Y, p.Y)}
			g.max = Point{X: max(g.max.X, p.X), Y: max(g.max.Y, p.Y)}
		}
		seen++
		return true
	})
}

func compareRowMajor(a, b Point) int {
	if a.Y != b.Y {
		return a.Y - b.Y
	}
	return a.X - b.X
}
