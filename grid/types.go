package grid

import (
	"errors"
	"strconv"
)

// Sentinel errors for grid operations.
var (
	// ErrNotFound indicates the requested point was never inserted.
	ErrNotFound = errors.New("grid: point not found")
	// ErrOutOfBounds indicates a write outside the fixed bounds of a dense grid.
	ErrOutOfBounds = errors.New("grid: point out of bounds")
	// ErrEmptyGrid indicates the input describes no cells at all.
	ErrEmptyGrid = errors.New("grid: input must describe at least one cell")
	// ErrBadUnit indicates a lattice cell size that is zero or negative.
	ErrBadUnit = errors.New("grid: lattice unit must be positive")
)

// Point is an integer grid coordinate. It is comparable and used as a map key.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p − q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// DistSq returns the squared Euclidean distance between p and q.
func (p Point) DistSq(q Point) int {
	dx, dy := p.X-q.X, p.Y-q.Y
	return dx*dx + dy*dy
}

func (p Point) String() string {
	return "(" + strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y) + ")"
}

// Direction is one of the four axis moves, or None.
type Direction int

const (
	// None marks "no direction found"; it is never used as a traversal step.
	None Direction = iota
	// Forward moves +Y.
	Forward
	// Right moves +X.
	Right
	// Back moves −Y.
	Back
	// Left moves −X.
	Left
)

// Directions lists the traversal directions in tie-break order.
// Neighbour scans walk this slice and keep the first minimum.
var Directions = [4]Direction{Forward, Right, Back, Left}

var dirOffsets = [...]Point{
	None:    {0, 0},
	Forward: {0, 1},
	Right:   {1, 0},
	Back:    {0, -1},
	Left:    {-1, 0},
}

// Offset returns the unit vector for d. None yields (0,0).
func (d Direction) Offset() Point {
	if d < None || d > Left {
		return Point{}
	}
	return dirOffsets[d]
}

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Right:
		return "right"
	case Back:
		return "back"
	case Left:
		return "left"
	default:
		return "none"
	}
}

// Walkable reports whether a point can be stood on.
type Walkable interface {
	IsWalkable(p Point) bool
}

// Terrain is the read-only view of a grid that the navigation engine needs:
// which points exist, which of them are walkable, and a version token that
// changes whenever the underlying grid is mutated.
type Terrain interface {
	Walkable
	// Points returns every present point in a stable order.
	Points() []Point
	// Has reports whether p is present, walkable or not.
	Has(p Point) bool
	// Version changes on every mutation of the underlying grid.
	Version() uint64
}
