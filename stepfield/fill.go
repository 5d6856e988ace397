package stepfield

import "github.com/katalvlaran/stepnav/grid"

// FillUnreachable resolves cells of f still at Unreachable by repeatedly
// recomputing StepByNeighbors over them. Resolved steps are written back
// immediately, so a cell resolved early in a sweep can unlock later ones in
// the same sweep. It stops at the first sweep that resolves nothing and
// returns the number of cells resolved.
//
// f is mutated in place; do not call it on a Field shared with other readers.
func FillUnreachable(t grid.Walkable, f *Field) int {
	var pending []grid.Point
	for _, p := range f.order {
		if f.steps[p] == Unreachable {
			pending = append(pending, p)
		}
	}
	total := len(pending)

	for len(pending) > 0 {
		left := pending[:0]
		for _, p := range pending {
			s := f.StepByNeighbors(t, p)
			if s == Unreachable {
				left = append(left, p)
				continue
			}
			f.steps[p] = s
		}
		if len(left) == len(pending) {
			break
		}
		pending = left
	}
	return total - len(pending)
}
