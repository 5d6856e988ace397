package maze

import "github.com/katalvlaran/stepnav/grid"

// Distances returns exact 4-connected BFS distances from `from` to every
// walkable cell of t that can reach it. It is the reference that bounded
// relaxation converges to once given enough passes.
func Distances(t grid.Walkable, from grid.Point) map[grid.Point]int {
	dist := map[grid.Point]int{}
	if !t.IsWalkable(from) {
		return dist
	}
	dist[from] = 0
	queue := []grid.Point{from}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, d := range grid.Directions {
			v := u.Add(d.Offset())
			if _, seen := dist[v]; seen || !t.IsWalkable(v) {
				continue
			}
			dist[v] = dist[u] + 1
			queue = append(queue, v)
		}
	}
	return dist
}
