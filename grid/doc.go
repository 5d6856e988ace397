// Package grid models a 2D walkability map keyed by integer coordinates.
//
// What:
//
//   - Point is the coordinate value type used as a key everywhere in stepnav.
//   - Grid[V] maps Points to an arbitrary payload V, backed either by a map
//     (sparse, bounds grow on insert) or by a slice with a presence bitmap
//     (dense, fixed rectangular extent).
//   - Terrain is the read-only capability the navigation engine depends on:
//     the set of present points plus an IsWalkable predicate.
//   - Regions groups walkable cells into 4-connected components.
//   - ParseText, Lattice and Sample are builder helpers that populate a Grid
//     from a text block, a world-space lattice, or an arbitrary sampling function.
//
// Why:
//
//   - One Grid type serves fixed rooms and open-ended sparse worlds alike.
//   - A small capability interface keeps the step field engine agnostic of V.
//
// Bounds:
//
//   - Min and Max are the componentwise min/max over present points, updated
//     incrementally on Set. Size = Max − Min + (1,1).
//   - A point may be in bounds yet absent; TryGet distinguishes "absent" from
//     "present and zero".
//
// Versioning:
//
//   - Every mutation bumps Version(). Consumers that memoize results derived
//     from a Grid tag them with the version and treat a mismatch as stale.
//
// Concurrency:
//
//   - Grid is not synchronized. Build it once, then treat it as read-only while
//     computations are in flight.
//
// Errors:
//
//   - ErrNotFound: Get on an absent point.
//   - ErrOutOfBounds: Set outside the fixed bounds of a dense grid.
//   - ErrEmptyGrid: ParseText or NewDense given no cells.
//   - ErrBadUnit: Lattice with a non-positive cell size.
package grid
