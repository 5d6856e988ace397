// Package stepfield computes step fields: for a destination cell, the number
// of axis moves from every cell of a grid.Terrain to that destination.
//
// What:
//
//   - Compute runs a bounded number of in-place relaxation passes over every
//     present point, sorted by Euclidean distance to the destination.
//     Even passes walk the order forward, odd passes walk it backward.
//   - Halfway through (after pass N/2−1) FillUnreachable sweeps the cells still
//     at Unreachable until a sweep makes no progress.
//   - Field exposes the result plus the distance-sorted order it was built
//     from, so callers can cache both.
//
// Why:
//
//   - Cost is O(N·cells) with no priority queue, which keeps per-query work
//     predictable.
//   - It is an approximation: a field is exact only once N covers the
//     corridor structure of the map. Mazes need larger N than open rooms.
//
// Invariants:
//
//   - field[destination] == 0.
//   - Every other cell holds a finite step ≥ 1 or Unreachable.
//   - Non-walkable cells (other than the destination) are always Unreachable.
//   - Every finite non-destination cell has a walkable neighbour with a
//     strictly lower step, so descent always terminates at the destination.
//     Steps only ever decrease, so this holds after any number of passes.
//   - Once the pass count reaches the grid's diameter (the cell count always
//     does) every finite step is the exact distance, and the lower neighbour
//     is exactly one step lower. Fewer passes on winding maps may leave a cell
//     several steps above its lowest neighbour.
//   - Compute is a pure function of the terrain and the options.
//
// Complexity:
//
//   - Compute: O(n log n + N·n·4) time, O(n) memory, n = present points.
//   - FillUnreachable: O(u²·4) worst case, u = cells at Unreachable.
//
// Errors:
//
//   - ErrUnknownDestination: destination is not present in the terrain.
//   - ErrBadIterations: negative pass count.
package stepfield
