package navigator_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepnav/grid"
	"github.com/katalvlaran/stepnav/navigator"
	"github.com/katalvlaran/stepnav/route"
	"github.com/katalvlaran/stepnav/stepfield"
)

const (
	openRoom = "-----\n-----\n-----\n-----\n-----"
	gapWall  = "--#--\n--#--\n-----\n--#--\n--#--"
	island   = "-----\n--#--\n-#-#-\n--#--\n-----"
)

// newNav parses text and returns a Navigator over it together with the grid.
func newNav(t *testing.T, text string, opts ...navigator.Option) (*navigator.Navigator, *grid.Grid[bool]) {
	t.Helper()
	g, err := grid.ParseText(text)
	require.NoError(t, err)
	n := navigator.New(grid.BoolTerrain(g), opts...)
	t.Cleanup(n.Close)
	return n, g
}

func TestRoute_Success(t *testing.T) {
	n, _ := newNav(t, gapWall)

	r, err := n.Route(grid.Pt(0, 0), grid.Pt(4, 4))
	require.NoError(t, err)
	assert.Equal(t, grid.Pt(0, 0), r[0])
	assert.True(t, r.Reaches(grid.Pt(4, 4)))
	assert.Contains(t, r, grid.Pt(2, 2))
	assert.Equal(t, 9, r.Len())

	slanted, err := n.Route(grid.Pt(0, 0), grid.Pt(4, 4), navigator.Slant())
	require.NoError(t, err)
	assert.Equal(t, 7, slanted.Len())
	assert.Contains(t, slanted, grid.Pt(2, 2))
}

// TestRoute_Failures checks the error chains and that no full route leaks out.
func TestRoute_Failures(t *testing.T) {
	n, _ := newNav(t, island)

	cases := []struct {
		name     string
		from, to grid.Point
		cause    error
	}{
		{"IsolatedDestination", grid.Pt(0, 0), grid.Pt(2, 2), route.ErrUnreachable},
		{"UnknownDestination", grid.Pt(0, 0), grid.Pt(8, 8), stepfield.ErrUnknownDestination},
		{"UnknownSource", grid.Pt(-1, 0), grid.Pt(4, 4), route.ErrUnknownSource},
		{"SourceIsWall", grid.Pt(2, 1), grid.Pt(4, 4), route.ErrUnreachable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := n.Route(tc.from, tc.to)
			require.Error(t, err)
			assert.ErrorIs(t, err, navigator.ErrNoRoute)
			assert.ErrorIs(t, err, tc.cause)
			assert.Nil(t, r)

			r, ok := n.TryRoute(tc.from, tc.to)
			assert.False(t, ok)
			assert.Nil(t, r)
		})
	}
}

// TestRoute_AtDestination distinguishes "already there" from "no route".
func TestRoute_AtDestination(t *testing.T) {
	n, _ := newNav(t, openRoom)
	r, ok := n.TryRoute(grid.Pt(3, 3), grid.Pt(3, 3))
	assert.True(t, ok)
	assert.Equal(t, route.Route{grid.Pt(3, 3)}, r)
}

// TestRoute_BadIterations surfaces the option error through ErrNoRoute.
func TestRoute_BadIterations(t *testing.T) {
	n, _ := newNav(t, openRoom)
	_, err := n.Route(grid.Pt(0, 0), grid.Pt(4, 4), navigator.Iterations(-2))
	assert.ErrorIs(t, err, navigator.ErrNoRoute)
	assert.ErrorIs(t, err, stepfield.ErrBadIterations)
}

// TestStepField_Cache covers hits, misses, NoCache and Reset.
func TestStepField_Cache(t *testing.T) {
	n, _ := newNav(t, openRoom)
	dest := grid.Pt(4, 4)

	a, err := n.StepField(dest)
	require.NoError(t, err)
	b, err := n.StepField(dest)
	require.NoError(t, err)
	assert.Same(t, a, b, "second lookup is served from the cache")
	assert.Equal(t, navigator.Stats{Entries: 1, Hits: 1, Misses: 1}, n.Stats())

	// A different destination never reuses another destination's field.
	c, err := n.StepField(grid.Pt(4, 3))
	require.NoError(t, err)
	assert.Equal(t, grid.Pt(4, 3), c.Destination())
	assert.Equal(t, navigator.Stats{Entries: 2, Hits: 1, Misses: 2}, n.Stats())

	fresh, err := n.StepField(dest, navigator.NoCache())
	require.NoError(t, err)
	assert.NotSame(t, a, fresh)
	assert.True(t, a.Equal(fresh), "fresh computation is identical")
	assert.Equal(t, navigator.Stats{Entries: 2, Hits: 1, Misses: 2}, n.Stats(), "NoCache skips the lookup")

	again, err := n.StepField(dest)
	require.NoError(t, err)
	assert.Same(t, fresh, again, "the fresh field replaced the cached one")

	n.Reset()
	assert.Equal(t, navigator.Stats{}, n.Stats())
}

// TestStepField_StaleVersion recomputes after the grid is mutated.
func TestStepField_StaleVersion(t *testing.T) {
	n, g := newNav(t, openRoom)
	dest := grid.Pt(4, 4)

	before, err := n.StepField(dest)
	require.NoError(t, err)
	s, _ := before.Step(grid.Pt(0, 4))
	assert.Equal(t, 4, s)

	// Wall off the bottom row except its ends.
	for x := 1; x <= 3; x++ {
		require.NoError(t, g.Set(grid.Pt(x, 4), false))
	}

	after, err := n.StepField(dest)
	require.NoError(t, err)
	assert.NotSame(t, before, after)
	assert.Equal(t, g.Version(), after.Version())
	s, _ = after.Step(grid.Pt(0, 4))
	assert.Equal(t, 6, s)
	assert.Equal(t, navigator.Stats{Entries: 1, Hits: 0, Misses: 2}, n.Stats())

	r, err := n.Route(grid.Pt(0, 4), dest)
	require.NoError(t, err)
	assert.Equal(t, 7, r.Len())
}

// TestStepField_IterationsOption runs fewer passes for a single query.
func TestStepField_IterationsOption(t *testing.T) {
	n, _ := newNav(t, gapWall, navigator.WithIterations(1))

	f, err := n.StepField(grid.Pt(4, 4))
	require.NoError(t, err)
	assert.Equal(t, 1, f.Iterations())
	assert.False(t, f.IsReachable(grid.Pt(0, 4)), "one pass never fills behind the wall")

	f, err = n.StepField(grid.Pt(4, 4), navigator.NoCache(), navigator.Iterations(4))
	require.NoError(t, err)
	assert.True(t, f.IsReachable(grid.Pt(0, 4)))
}

func TestReachableCells(t *testing.T) {
	n, _ := newNav(t, island)

	cells, err := n.ReachableCells(grid.Pt(0, 0))
	require.NoError(t, err)
	assert.Equal(t, 20, cells.Size())
	assert.True(t, cells.Has(grid.Pt(0, 0)))
	assert.True(t, cells.Has(grid.Pt(4, 4)))
	assert.False(t, cells.Has(grid.Pt(2, 2)), "walled-in cell")
	assert.False(t, cells.Has(grid.Pt(2, 1)), "wall")

	cells, err = n.ReachableCells(grid.Pt(2, 2))
	require.NoError(t, err)
	assert.Equal(t, 1, cells.Size())
	assert.True(t, cells.Has(grid.Pt(2, 2)))

	cells, err = n.ReachableCells(grid.Pt(9, 9))
	assert.ErrorIs(t, err, stepfield.ErrUnknownDestination)
	assert.Zero(t, cells.Size())
	assert.NotPanics(t, func() { cells.Put(grid.Pt(9, 9)) }, "empty set is usable")
	assert.True(t, cells.Has(grid.Pt(9, 9)))
}

func TestPrepare(t *testing.T) {
	n, _ := newNav(t, gapWall)
	require.NoError(t, n.Prepare(context.Background()))
	assert.Equal(t, 25, n.Stats().Entries)

	_, ok := n.TryRoute(grid.Pt(0, 0), grid.Pt(4, 4))
	assert.True(t, ok)
	assert.Equal(t, 1, n.Stats().Hits)

	n.Reset()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := n.Prepare(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, n.Stats().Entries)
}

// TestLogger_CacheHit checks diagnostics reach the configured logger.
func TestLogger_CacheHit(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	n, _ := newNav(t, openRoom, navigator.WithLogger(log))

	_, err := n.StepField(grid.Pt(0, 0))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "stepfield: computed")
	assert.NotContains(t, buf.String(), "cache hit")

	_, err = n.StepField(grid.Pt(0, 0))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "navigator: step field cache hit")
}
