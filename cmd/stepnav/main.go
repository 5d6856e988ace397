// Command stepnav computes step fields and routes over a text map or a
// generated maze, either printing them or showing them in a terminal viewer.
//
//	stepnav -map level.txt -from 0,0 -to 9,4 -slant
//	stepnav -maze 41x21 -braid 0.3 -iter 16 -view
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/stepnav/grid"
	"github.com/katalvlaran/stepnav/maze"
	"github.com/katalvlaran/stepnav/navigator"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "stepnav:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	logger, err := newLogger(stderr, cfg.logLevel)
	if err != nil {
		return err
	}
	if cfg.view {
		// the screen owns the terminal
		logger = slog.New(slog.DiscardHandler)
	}

	g, from, to, err := load(cfg)
	if err != nil {
		return err
	}
	if cfg.from != "" {
		if from, err = parsePoint(cfg.from); err != nil {
			return err
		}
	}
	if cfg.to != "" {
		if to, err = parsePoint(cfg.to); err != nil {
			return err
		}
	}

	t := grid.BoolTerrain(g)
	nav := navigator.New(t,
		navigator.WithLogger(logger),
		navigator.WithIterations(cfg.iterations),
	)
	defer nav.Close()

	if cfg.view {
		return runViewer(nav, g, from, to, cfg.slant)
	}
	return report(stdout, nav, g, from, to, cfg.slant)
}

// load returns the grid and default endpoints: the maze corners, or the first
// and last walkable cells of a text map.
func load(cfg config) (*grid.Grid[bool], grid.Point, grid.Point, error) {
	if cfg.mazeSize != "" {
		w, h, err := parseSize(cfg.mazeSize)
		if err != nil {
			return nil, grid.Point{}, grid.Point{}, err
		}
		m, err := maze.Generate(maze.Config{Width: w, Height: h, Braiding: cfg.braid, Seed: cfg.seed})
		if err != nil {
			return nil, grid.Point{}, grid.Point{}, err
		}
		return m.Grid, m.Start, m.End, nil
	}

	raw, err := os.ReadFile(cfg.mapPath)
	if err != nil {
		return nil, grid.Point{}, grid.Point{}, err
	}
	g, err := grid.ParseText(string(raw))
	if err != nil {
		return nil, grid.Point{}, grid.Point{}, fmt.Errorf("%s: %w", cfg.mapPath, err)
	}
	var walkable []grid.Point
	g.Range(func(p grid.Point, v bool) bool {
		if v {
			walkable = append(walkable, p)
		}
		return true
	})
	if len(walkable) == 0 {
		return g, grid.Point{}, grid.Point{}, nil
	}
	return g, walkable[0], walkable[len(walkable)-1], nil
}

func report(w io.Writer, nav *navigator.Navigator, g *grid.Grid[bool], from, to grid.Point, slant bool) error {
	width, height := g.Size()
	regions := grid.Regions(nav.Terrain())
	fmt.Fprintf(w, "map %dx%d, %d cells, %d walkable regions\n", width, height, g.Len(), len(regions))
	fmt.Fprint(w, grid.FormatText(g))

	f, err := nav.StepField(to)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\nsteps to %v (%d passes):\n", to, f.Iterations())
	fmt.Fprint(w, f.Text())

	var opts []navigator.QueryOption
	if slant {
		opts = append(opts, navigator.Slant())
	}
	r, err := nav.Route(from, to, opts...)
	if err != nil {
		fmt.Fprintf(w, "\nno route %v -> %v: %v\n", from, to, err)
		return nil
	}
	fmt.Fprintf(w, "\nroute %v -> %v, %d waypoints:\n", from, to, r.Len())
	for _, p := range r {
		fmt.Fprintf(w, "  %v\n", p)
	}
	return nil
}
