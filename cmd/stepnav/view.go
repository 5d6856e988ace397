package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/stepnav/grid"
	"github.com/katalvlaran/stepnav/navigator"
	"github.com/katalvlaran/stepnav/route"
	"github.com/katalvlaran/stepnav/stepfield"
)

var (
	styleWall    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleFloor   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleBlocked = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleRoute   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleCursor  = tcell.StyleDefault.Reverse(true)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// routeDone carries a queued route result back onto the UI goroutine,
// tagged with the request it answers.
type routeDone struct {
	seq      uint64
	from, to grid.Point
	ok       bool
	route    route.Route
}

type viewer struct {
	screen tcell.Screen
	nav    *navigator.Navigator
	g      *grid.Grid[bool]

	cursor   grid.Point
	from, to grid.Point
	slant    bool

	field   *stepfield.Field
	route   route.Route
	seq     uint64 // latest request; results for older ones are dropped
	pending bool
	status  string
}

func runViewer(nav *navigator.Navigator, g *grid.Grid[bool], from, to grid.Point, slant bool) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	v := &viewer{
		screen: screen,
		nav:    nav,
		g:      g,
		cursor: from,
		from:   from,
		to:     to,
		slant:  slant,
		status: "arrows move, space: destination, enter: route, s: slant, q: quit",
	}
	v.selectDestination(to)
	v.draw()

	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventInterrupt:
			if res, ok := ev.Data().(routeDone); ok {
				v.applyResult(res)
			}
		case *tcell.EventKey:
			if !v.handleKey(ev) {
				return nil
			}
		}
		v.draw()
	}
}

func (v *viewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		v.move(grid.Back)
	case tcell.KeyDown:
		v.move(grid.Forward)
	case tcell.KeyLeft:
		v.move(grid.Left)
	case tcell.KeyRight:
		v.move(grid.Right)
	case tcell.KeyEnter:
		v.from = v.cursor
		v.requestRoute()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			v.selectDestination(v.cursor)
		case 's':
			v.slant = !v.slant
			v.requestRoute()
		}
	}
	return true
}

// move steps the cursor; screen rows grow downward with Y.
func (v *viewer) move(d grid.Direction) {
	next := v.cursor.Add(d.Offset())
	if v.g.InBounds(next) {
		v.cursor = next
	}
}

func (v *viewer) selectDestination(p grid.Point) {
	f, err := v.nav.StepField(p)
	if err != nil {
		v.status = err.Error()
		return
	}
	v.to = p
	v.field = f
	v.route = nil
	v.seq++
	v.pending = false
	v.status = fmt.Sprintf("destination %v", p)
}

// requestRoute queues the route on the navigator worker; the handler wakes
// the UI loop with an interrupt event.
func (v *viewer) requestRoute() {
	var opts []navigator.QueryOption
	if v.slant {
		opts = append(opts, navigator.Slant())
	}
	v.seq++
	req := routeDone{seq: v.seq, from: v.from, to: v.to}
	screen := v.screen
	_, err := v.nav.RouteAsync(req.from, req.to, func(ok bool, r route.Route) {
		req.ok, req.route = ok, r
		_ = screen.PostEvent(tcell.NewEventInterrupt(req))
	}, opts...)
	if err != nil {
		v.status = err.Error()
		return
	}
	v.pending = true
	v.status = "routing..."
}

// applyResult shows res unless a newer request or destination superseded it.
func (v *viewer) applyResult(res routeDone) bool {
	if res.seq != v.seq {
		return false
	}
	v.pending = false
	v.route = res.route
	if res.ok {
		v.status = fmt.Sprintf("route %v -> %v: %d waypoints", res.from, res.to, res.route.Len())
	} else {
		v.status = fmt.Sprintf("no route %v -> %v", res.from, res.to)
	}
	return true
}

func (v *viewer) draw() {
	v.screen.Clear()
	origin := v.g.Min()
	onRoute := make(map[grid.Point]bool, len(v.route))
	for _, p := range v.route {
		onRoute[p] = true
	}

	w, h := v.g.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := origin.Add(grid.Pt(x, y))
			r, style := v.cell(p)
			if onRoute[p] {
				r, style = '*', styleRoute
			}
			if p == v.cursor {
				style = styleCursor
			}
			v.screen.SetContent(x, y, r, nil, style)
		}
	}

	status := v.status
	if v.pending {
		status += " (queued)"
	}
	if v.slant {
		status += " [slant]"
	}
	for i, r := range []rune(status) {
		v.screen.SetContent(i, h+1, r, nil, styleStatus)
	}
	v.screen.Show()
}

// cell returns the glyph for p: walls '#', cells with a step show its last
// digit, unreachable walkable cells '-'.
func (v *viewer) cell(p grid.Point) (rune, tcell.Style) {
	walkable, ok := v.g.TryGet(p)
	if !ok {
		return ' ', tcell.StyleDefault
	}
	if !walkable {
		return '#', styleWall
	}
	if v.field == nil {
		return '.', styleFloor
	}
	s, _ := v.field.Step(p)
	if s == stepfield.Unreachable {
		return '-', styleBlocked
	}
	return rune('0' + s%10), styleFloor
}
