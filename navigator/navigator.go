package navigator

import (
	"context"
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/stepnav/grid"
	"github.com/katalvlaran/stepnav/route"
	"github.com/katalvlaran/stepnav/stepfield"
)

// Navigator answers step field and route queries over one terrain.
// Create it with New and discard it (after Close) when the terrain is rebuilt.
type Navigator struct {
	terrain grid.Terrain
	opts    Options
	cache   *stepCache
	queue   *requestQueue
}

// New returns a Navigator over t.
func New(t grid.Terrain, opts ...Option) *Navigator {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	n := &Navigator{
		terrain: t,
		opts:    o,
		cache:   newStepCache(),
	}
	n.queue = newRequestQueue(n)
	return n
}

// Terrain returns the terrain n navigates.
func (n *Navigator) Terrain() grid.Terrain { return n.terrain }

// StepField returns the step field toward dest. With the cache enabled (the
// default) a field already computed for dest against the current terrain
// version is returned as is; otherwise a fresh one is computed and cached.
// The returned field is shared and must be treated as read-only.
func (n *Navigator) StepField(dest grid.Point, opts ...QueryOption) (*stepfield.Field, error) {
	q := n.query(opts)
	version := n.terrain.Version()
	if q.UseCache {
		if f, ok := n.cache.lookup(dest, version); ok {
			n.opts.Logger.Debug("navigator: step field cache hit", "dest", dest)
			return f, nil
		}
	}

	f, err := stepfield.Compute(n.terrain, dest,
		stepfield.WithIterations(q.Iterations),
		stepfield.WithLogger(n.opts.Logger),
	)
	if err != nil {
		return nil, err
	}
	n.cache.store(f)
	return f, nil
}

// Route computes a route from `from` to `to`.
//
// Every failure wraps ErrNoRoute together with its cause. When descent
// stalls (route.ErrStuck) the truncated route is returned with the error;
// otherwise the route is nil on failure.
func (n *Navigator) Route(from, to grid.Point, opts ...QueryOption) (route.Route, error) {
	q := n.query(opts)
	f, err := n.StepField(to, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoRoute, err)
	}
	r, err := route.Build(n.terrain, f, from, q.Slant)
	if err != nil {
		if errors.Is(err, route.ErrStuck) {
			n.opts.Logger.Warn("navigator: descent stuck",
				"from", from, "to", to, "reached", r[len(r)-1], "err", err)
		}
		return r, fmt.Errorf("%w: %w", ErrNoRoute, err)
	}
	return r, nil
}

// TryRoute is Route reduced to a success flag: ok is true only for a route
// that ends at `to`. A truncated route is still returned with ok == false.
func (n *Navigator) TryRoute(from, to grid.Point, opts ...QueryOption) (route.Route, bool) {
	r, err := n.Route(from, to, opts...)
	return r, err == nil && r.Reaches(to)
}

// ReachableCells returns every walkable cell with a finite step toward `from`,
// `from` included when it is walkable. On error the set is empty and usable.
func (n *Navigator) ReachableCells(from grid.Point, opts ...QueryOption) (mapset.Set[grid.Point], error) {
	f, err := n.StepField(from, opts...)
	if err != nil {
		return mapset.New[grid.Point](), err
	}
	cells := mapset.New[grid.Point]()
	f.Range(func(p grid.Point, step int) bool {
		if step != stepfield.Unreachable && n.terrain.IsWalkable(p) {
			cells.Put(p)
		}
		return true
	})
	return cells, nil
}

// Prepare computes and caches the step field of every present point.
// It checks ctx between destinations and returns ctx.Err() when cancelled.
func (n *Navigator) Prepare(ctx context.Context, opts ...QueryOption) error {
	for _, p := range n.terrain.Points() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := n.StepField(p, opts...); err != nil {
			return err
		}
	}
	return nil
}

// Reset drops every cached step field and zeroes the cache statistics.
func (n *Navigator) Reset() {
	n.cache.reset()
}

// Stats returns cache statistics.
func (n *Navigator) Stats() Stats {
	return n.cache.stats()
}

// RouteAsync queues a route request and returns its Ticket. h, if non-nil, is
// called on the worker goroutine with the same (route, ok) pair TryRoute
// would return, once the Ticket is done. Returns ErrClosed after Close.
func (n *Navigator) RouteAsync(from, to grid.Point, h Handler, opts ...QueryOption) (*Ticket, error) {
	return n.queue.submit(Request{From: from, To: to, Options: opts, Handler: h})
}

// Submit queues a prepared request. See RouteAsync.
func (n *Navigator) Submit(req Request) (*Ticket, error) {
	return n.queue.submit(req)
}

// Close stops accepting requests and blocks until queued ones have run.
// Called while a Handler is running, including from inside one, it returns
// at once; the worker still serves every request queued before Close.
func (n *Navigator) Close() {
	n.queue.close()
}
