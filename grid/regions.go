package grid

import "github.com/zyedidia/generic/mapset"

// Regions finds every 4-connected component of walkable cells in t.
// Components are ordered by their first point in row-major order; each
// component lists its points in BFS order starting from that point.
//
// Time:   O(n·4), n = number of present points.
// Memory: O(n) for the visited set and output.
func Regions(t Terrain) [][]Point {
	seen := mapset.New[Point]()
	var comps [][]Point

	for _, start := range t.Points() {
		if seen.Has(start) || !t.IsWalkable(start) {
			continue
		}
		queue := []Point{start}
		seen.Put(start)

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, d := range Directions {
				v := u.Add(d.Offset())
				if seen.Has(v) || !t.IsWalkable(v) {
					continue
				}
				seen.Put(v)
				queue = append(queue, v)
			}
		}
		comps = append(comps, queue)
	}
	return comps
}

// RegionOf returns the index into regions of the component holding p, or -1.
func RegionOf(regions [][]Point, p Point) int {
	for i, comp := range regions {
		for _, q := range comp {
			if q == p {
				return i
			}
		}
	}
	return -1
}
