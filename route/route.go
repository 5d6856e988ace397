package route

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stepnav/grid"
	"github.com/katalvlaran/stepnav/stepfield"
)

// Sentinel errors for route construction.
var (
	// ErrUnknownSource indicates the source point is not part of the step field.
	ErrUnknownSource = errors.New("route: source not present in step field")
	// ErrUnreachable indicates the source has no finite step to the destination.
	ErrUnreachable = errors.New("route: source cannot reach destination")
	// ErrStuck indicates descent found no strictly lower neighbour before the
	// destination. The field was not produced from the current terrain, or
	// has gaps.
	ErrStuck = errors.New("route: descent stuck before destination")
)

// Route is an ordered list of waypoints from source to destination.
type Route []grid.Point

// Len returns the number of waypoints.
func (r Route) Len() int { return len(r) }

// Reaches reports whether r is non-empty and ends at dest.
func (r Route) Reaches(dest grid.Point) bool {
	return len(r) > 0 && r[len(r)-1] == dest
}

// Descend builds an orthogonal route from `from` to f's destination by
// greedy descent over f.
//
// Returns ErrUnknownSource or ErrUnreachable with a nil route when `from`
// cannot start a descent, and the partial route with ErrStuck when descent
// stalls.
func Descend(t grid.Walkable, f *stepfield.Field, from grid.Point) (Route, error) {
	step, ok := f.Step(from)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownSource, from)
	}
	if step == stepfield.Unreachable {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, from)
	}

	dest := f.Destination()
	r := Route{from}
	cur := from
	for cur != dest {
		next, dir := f.LowestNeighbor(t, cur)
		if dir == grid.None || next >= step {
			return r, fmt.Errorf("%w: at %v (step %d)", ErrStuck, cur, step)
		}
		cur = cur.Add(dir.Offset())
		step = next
		r = append(r, cur)
	}
	return r, nil
}

// Simplify drops the corner waypoint of every right-angle turn whose two
// corner cells are both walkable, turning two axis moves into one diagonal
// move. r is modified in place and the shortened slice is returned.
//
// For each window (i, i+1, i+2) with d = r[i+2] − r[i]: windows with
// |d.X| ≥ 2 or |d.Y| ≥ 2 are skipped; otherwise r[i+1] is removed when both
// r[i]+(d.X,0) and r[i]+(0,d.Y) are walkable. Scanning continues at i+1.
func Simplify(t grid.Walkable, r Route) Route {
	for i := 0; i < len(r)-2; i++ {
		now, next2 := r[i], r[i+2]
		d := next2.Sub(now)
		if abs(d.X) >= 2 || abs(d.Y) >= 2 {
			continue
		}
		a := now.Add(grid.Pt(d.X, 0))
		b := now.Add(grid.Pt(0, d.Y))
		if t.IsWalkable(a) && t.IsWalkable(b) {
			r = append(r[:i+1], r[i+2:]...)
		}
	}
	return r
}

// Build descends from `from` over f and, when slant is set, simplifies the
// result. Errors are those of Descend; a stuck partial route is simplified too.
func Build(t grid.Walkable, f *stepfield.Field, from grid.Point, slant bool) (Route, error) {
	r, err := Descend(t, f, from)
	if r == nil {
		return nil, err
	}
	if slant {
		r = Simplify(t, r)
	}
	return r, err
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
