// Package navigator is the consumer-facing entry point of stepnav.
//
// A Navigator binds a grid.Terrain to a per-destination step field cache and
// a single-worker request queue:
//
//   - StepField computes (or reuses) the step field toward a destination.
//   - Route / TryRoute descend that field from a source, optionally cutting
//     corners (Slant).
//   - ReachableCells lists every walkable cell with a finite step to a point.
//   - Prepare warms the cache for every present point.
//   - RouteAsync queues a route request; requests run one at a time in
//     submission order on a background goroutine.
//
// Cache:
//
//	Entries are keyed by destination only and tagged with the terrain version
//	they were built against. An entry whose version no longer matches the
//	terrain is treated as a miss and replaced. There is no eviction; call
//	Reset to drop everything.
//
// Queue:
//
//	RouteAsync is a serialization mechanism, not parallelism: at most one
//	request is in flight per Navigator, which bounds the background work to a
//	single computation. Handlers run on the worker goroutine once their Ticket
//	is done, and may call back into the Navigator, Close included. A Ticket can
//	be polled with Done or blocked on with Wait. Queued work cannot be
//	cancelled; Close stops accepting requests and waits for the queue to drain,
//	except when called while a Handler runs, where it returns at once.
//
// Concurrency:
//
//	The cache is guarded by a mutex, so synchronous calls may run while the
//	worker is busy. The terrain itself is not locked and must not be mutated
//	while any computation is in flight.
//
// Errors:
//
//   - ErrNoRoute wraps every route failure; errors.Is also matches the cause
//     (route.ErrUnreachable, route.ErrUnknownSource, route.ErrStuck,
//     stepfield.ErrUnknownDestination, ...).
//   - ErrClosed: RouteAsync after Close.
package navigator
