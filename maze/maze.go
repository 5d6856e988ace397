// Package maze generates walkability grids with long corridors: perfect
// mazes (a spanning tree of rooms) and braided mazes (cycles added by
// knocking out dead-end walls). They are the worst case for step field
// relaxation, whose pass count must grow with corridor length.
package maze

import (
	"errors"
	"math/rand"
	"time"

	"github.com/katalvlaran/stepnav/grid"
)

// ErrTooSmall indicates the requested maze cannot hold a single room.
var ErrTooSmall = errors.New("maze: width and height must be at least 3")

// Config controls Generate.
type Config struct {
	// Width and Height are rounded down to odd numbers so walls enclose every room.
	Width, Height int

	// Braiding in [0,1]: probability that a dead end is opened into a loop.
	// 0 yields a perfect maze with exactly one route between any two rooms.
	Braiding float64

	// Seed for the RNG; 0 picks a time-based seed.
	Seed int64
}

// Result is a generated maze.
type Result struct {
	// Grid is dense over (0,0)..(W−1,H−1); true marks a passage.
	Grid *grid.Grid[bool]
	// Start and End are opposite corner rooms.
	Start, End grid.Point
}

// Generate builds a maze with a recursive backtracker, then applies braiding.
func Generate(cfg Config) (Result, error) {
	if cfg.Width < 3 || cfg.Height < 3 {
		return Result{}, ErrTooSmall
	}
	cols, rows := roundOdd(cfg.Width), roundOdd(cfg.Height)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	open := make([][]bool, rows)
	for y := range open {
		open[y] = make([]bool, cols)
	}

	start := grid.Pt(1, 1)
	end := grid.Pt(cols-2, rows-2)
	carve(open, start, rng)
	if cfg.Braiding > 0 {
		braid(open, cfg.Braiding, rng)
	}

	g, err := grid.NewDense[bool](grid.Pt(0, 0), grid.Pt(cols-1, rows-1))
	if err != nil {
		return Result{}, err
	}
	for y, row := range open {
		for x, v := range row {
			_ = g.Set(grid.Pt(x, y), v)
		}
	}
	return Result{Grid: g, Start: start, End: end}, nil
}

var (
	jumps = [4]grid.Point{{X: 0, Y: -2}, {X: 0, Y: 2}, {X: -2, Y: 0}, {X: 2, Y: 0}}
	steps = [4]grid.Point{{X: 0, Y: -1}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 1, Y: 0}}
)

// carve opens a spanning tree of rooms (odd coordinates) from start.
func carve(open [][]bool, start grid.Point, rng *rand.Rand) {
	rows, cols := len(open), len(open[0])
	stack := []grid.Point{start}
	open[start.Y][start.X] = true

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		candidates := make([]grid.Point, 0, 4)
		for _, d := range jumps {
			n := cur.Add(d)
			if n.X > 0 && n.X < cols-1 && n.Y > 0 && n.Y < rows-1 && !open[n.Y][n.X] {
				candidates = append(candidates, d)
			}
		}
		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		d := candidates[rng.Intn(len(candidates))]
		open[cur.Y+d.Y/2][cur.X+d.X/2] = true
		next := cur.Add(d)
		open[next.Y][next.X] = true
		stack = append(stack, next)
	}
}

// braid opens one wall of each dead-end room with the given probability,
// skipping walls whose removal would leave a 2×2 open plaza or an isolated
// wall pillar.
func braid(open [][]bool, p float64, rng *rand.Rand) {
	rows, cols := len(open), len(open[0])
	for y := 1; y < rows-1; y += 2 {
		for x := 1; x < cols-1; x += 2 {
			if !open[y][x] {
				continue
			}
			exits := 0
			for _, d := range steps {
				if open[y+d.Y][x+d.X] {
					exits++
				}
			}
			if exits != 1 || rng.Float64() >= p {
				continue
			}

			var candidates []grid.Point
			for _, d := range jumps {
				n := grid.Pt(x+d.X, y+d.Y)
				w := grid.Pt(x+d.X/2, y+d.Y/2)
				if n.X <= 0 || n.X >= cols-1 || n.Y <= 0 || n.Y >= rows-1 {
					continue
				}
				if open[n.Y][n.X] && !open[w.Y][w.X] && safeToOpen(open, w) {
					candidates = append(candidates, w)
				}
			}
			if len(candidates) > 0 {
				c := candidates[rng.Intn(len(candidates))]
				open[c.Y][c.X] = true
			}
		}
	}
}

func safeToOpen(open [][]bool, w grid.Point) bool {
	rows, cols := len(open), len(open[0])
	isOpen := func(x, y int) bool {
		return x >= 0 && x < cols && y >= 0 && y < rows && open[y][x]
	}
	x, y := w.X, w.Y

	// plazas
	if isOpen(x-1, y-1) && isOpen(x, y-1) && isOpen(x-1, y) ||
		isOpen(x, y-1) && isOpen(x+1, y-1) && isOpen(x+1, y) ||
		isOpen(x-1, y) && isOpen(x-1, y+1) && isOpen(x, y+1) ||
		isOpen(x+1, y) && isOpen(x, y+1) && isOpen(x+1, y+1) {
		return false
	}

	// pillars
	for _, d := range steps {
		nx, ny := x+d.X, y+d.Y
		if nx < 0 || nx >= cols || ny < 0 || ny >= rows || open[ny][nx] {
			continue
		}
		walls := 0
		for _, d2 := range steps {
			mx, my := nx+d2.X, ny+d2.Y
			if mx == x && my == y {
				continue
			}
			if mx >= 0 && mx < cols && my >= 0 && my < rows && !open[my][mx] {
				walls++
			}
		}
		if walls == 0 {
			return false
		}
	}
	return true
}

func roundOdd(n int) int {
	if n%2 == 0 {
		return n - 1
	}
	return n
}
