package navigator

import (
	"sync"

	"github.com/katalvlaran/stepnav/grid"
	"github.com/katalvlaran/stepnav/route"
)

// Handler receives the outcome of a queued route request. It runs on the
// worker goroutine after the request's Ticket is done, so it may Wait on its
// own Ticket, queue further requests or Close the Navigator. The next queued
// request starts only after it returns.
type Handler func(ok bool, r route.Route)

// Request describes one queued route computation.
type Request struct {
	From, To grid.Point
	Options  []QueryOption
	Handler  Handler
}

// Ticket tracks a queued request.
type Ticket struct {
	req   Request
	done  chan struct{}
	route route.Route
	ok    bool
}

// Done reports, without blocking, whether the request has completed.
func (t *Ticket) Done() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

// C returns a channel closed once the request has completed.
func (t *Ticket) C() <-chan struct{} { return t.done }

// Wait blocks until the request completes and returns its result.
func (t *Ticket) Wait() (route.Route, bool) {
	<-t.done
	return t.route, t.ok
}

// requestQueue runs tickets FIFO on at most one goroutine at a time. The
// worker is started on demand and exits when the queue runs dry.
type requestQueue struct {
	nav *Navigator

	mu      sync.Mutex
	pending []*Ticket
	running  bool
	closed   bool
	handling bool // a Handler is running on the worker
	wg       sync.WaitGroup
}

func newRequestQueue(n *Navigator) *requestQueue {
	return &requestQueue{nav: n}
}

func (q *requestQueue) submit(req Request) (*Ticket, error) {
	t := &Ticket{req: req, done: make(chan struct{})}

	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return nil, ErrClosed
	}
	q.pending = append(q.pending, t)
	if !q.running {
		q.running = true
		q.wg.Add(1)
		go q.work()
	}
	return t, nil
}

func (q *requestQueue) work() {
	defer q.wg.Done()
	log := q.nav.opts.Logger
	log.Debug("navigator: queue worker started")

	for served := 0; ; served++ {
		q.mu.Lock()
		if len(q.pending) == 0 {
			q.running = false
			q.mu.Unlock()
			log.Debug("navigator: queue worker idle", "served", served)
			return
		}
		t := q.pending[0]
		q.pending[0] = nil
		q.pending = q.pending[1:]
		q.mu.Unlock()

		q.run(t)
	}
}

func (q *requestQueue) run(t *Ticket) {
	t.route, t.ok = q.nav.TryRoute(t.req.From, t.req.To, t.req.Options...)
	close(t.done)
	if t.req.Handler == nil {
		return
	}

	q.setHandling(true)
	defer q.setHandling(false)
	t.req.Handler(t.ok, t.route)
}

func (q *requestQueue) setHandling(v bool) {
	q.mu.Lock()
	q.handling = v
	q.mu.Unlock()
}

// close rejects further submissions and waits for the worker to drain the
// queue. While a Handler is running it returns without waiting: the caller
// may be that Handler, and the worker cannot finish before it returns.
func (q *requestQueue) close() {
	q.mu.Lock()
	q.closed = true
	handling := q.handling
	q.mu.Unlock()
	if handling {
		return
	}
	q.wg.Wait()
}
