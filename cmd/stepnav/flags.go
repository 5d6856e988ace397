package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/katalvlaran/stepnav/grid"
	"github.com/katalvlaran/stepnav/stepfield"
)

var errNoSource = errors.New("one of -map or -maze is required")

type config struct {
	mapPath    string
	mazeSize   string
	seed       int64
	braid      float64
	from, to   string
	iterations int
	slant      bool
	view       bool
	logLevel   string
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("stepnav", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.mapPath, "map", "", "text map file, '-' marks walkable cells")
	fs.StringVar(&cfg.mazeSize, "maze", "", "generate a WxH maze instead of reading a map")
	fs.Int64Var(&cfg.seed, "seed", 1, "maze seed (0 = time based)")
	fs.Float64Var(&cfg.braid, "braid", 0, "maze braiding probability in [0,1]")
	fs.StringVar(&cfg.from, "from", "", "route source as x,y")
	fs.StringVar(&cfg.to, "to", "", "route destination as x,y")
	fs.IntVar(&cfg.iterations, "iter", stepfield.DefaultIterations, "relaxation passes")
	fs.BoolVar(&cfg.slant, "slant", false, "allow diagonal corner cutting")
	fs.BoolVar(&cfg.view, "view", false, "open the interactive terminal viewer")
	fs.StringVar(&cfg.logLevel, "log-level", "warn", "debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.mapPath == "" && cfg.mazeSize == "" {
		return cfg, errNoSource
	}
	return cfg, nil
}

func parsePoint(s string) (grid.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return grid.Point{}, fmt.Errorf("point %q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return grid.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return grid.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	return grid.Pt(x, y), nil
}

func parseSize(s string) (w, h int, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("size %q: want WxH", s)
	}
	if w, err = strconv.Atoi(ws); err != nil {
		return 0, 0, fmt.Errorf("size %q: %w", s, err)
	}
	if h, err = strconv.Atoi(hs); err != nil {
		return 0, 0, fmt.Errorf("size %q: %w", s, err)
	}
	return w, h, nil
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
