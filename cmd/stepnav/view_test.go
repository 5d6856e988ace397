package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepnav/grid"
	"github.com/katalvlaran/stepnav/navigator"
)

const gapWall = "--#--\n--#--\n-----\n--#--\n--#--"

func newTestViewer(t *testing.T) *viewer {
	t.Helper()
	g, err := grid.ParseText(gapWall)
	require.NoError(t, err)
	nav := navigator.New(grid.BoolTerrain(g))
	t.Cleanup(nav.Close)

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(20, 10)
	t.Cleanup(screen.Fini)

	return &viewer{screen: screen, nav: nav, g: g, from: grid.Pt(0, 0)}
}

// TestViewer_StaleResult drops a result answered for an earlier destination
// and labels a current one with the endpoints it was requested for.
func TestViewer_StaleResult(t *testing.T) {
	v := newTestViewer(t)
	v.selectDestination(grid.Pt(4, 4))
	r, err := v.nav.Route(grid.Pt(0, 0), grid.Pt(4, 4))
	require.NoError(t, err)
	stale := routeDone{seq: v.seq, from: grid.Pt(0, 0), to: grid.Pt(4, 4), ok: true, route: r}

	v.selectDestination(grid.Pt(0, 4))
	assert.False(t, v.applyResult(stale))
	assert.Nil(t, v.route)
	assert.Equal(t, "destination (0,4)", v.status)

	r, err = v.nav.Route(grid.Pt(4, 4), grid.Pt(0, 4))
	require.NoError(t, err)
	v.pending = true
	v.from = grid.Pt(1, 1) // moved on since the request
	current := routeDone{seq: v.seq, from: grid.Pt(4, 4), to: grid.Pt(0, 4), ok: true, route: r}
	assert.True(t, v.applyResult(current))
	assert.False(t, v.pending)
	assert.Equal(t, r, v.route)
	assert.Equal(t, "route (4,4) -> (0,4): 9 waypoints", v.status)

	assert.False(t, v.applyResult(routeDone{seq: v.seq - 1, from: grid.Pt(9, 9)}))
	assert.Equal(t, r, v.route)
}

// TestViewer_RequestRoute queues two requests; only the later one is shown.
func TestViewer_RequestRoute(t *testing.T) {
	v := newTestViewer(t)
	v.selectDestination(grid.Pt(4, 4))

	v.requestRoute()
	v.slant = true
	v.requestRoute()
	assert.True(t, v.pending)

	timer := time.AfterFunc(5*time.Second, v.screen.Fini)
	defer timer.Stop()

	var results []routeDone
	for len(results) < 2 {
		ev := v.screen.PollEvent()
		require.NotNil(t, ev, "route results never arrived")
		if in, ok := ev.(*tcell.EventInterrupt); ok {
			if res, ok := in.Data().(routeDone); ok {
				results = append(results, res)
			}
		}
	}

	assert.False(t, v.applyResult(results[0]), "superseded by the slanted request")
	assert.True(t, v.pending)
	assert.True(t, v.applyResult(results[1]))
	assert.False(t, v.pending)
	assert.Equal(t, 7, v.route.Len())
	assert.Equal(t, "route (0,0) -> (4,4): 7 waypoints", v.status)
}
