// Package stepnav is a grid navigation engine built on step fields.
//
// What is a step field?
//
//	For a destination cell, the number of axis moves from every other cell
//	of a walkability grid, found by a fixed number of in-place relaxation
//	passes rather than a priority-queue search. Routes fall out of it by
//	greedy descent: from any cell, keep stepping to the lowest neighbour.
//
// Why?
//
//   - Predictable cost: O(N·cells) per destination, no heap.
//   - One field serves every source heading to the same destination, so
//     fields are cached per destination.
//   - Good enough for open rooms with the default N = 4; mazes need N that
//     grows with corridor length.
//
// Subpackages:
//
//	grid/       Point, Direction, Grid[V] (dense or sparse), Terrain,
//	            regions, text parser, lattice snapping, sample builder
//	stepfield/  Compute (relaxation), FillUnreachable, Field
//	route/      Descend, Simplify (diagonal corner cutting), Build
//	navigator/  Navigator: cache, Route/TryRoute, ReachableCells,
//	            Prepare, single-worker RouteAsync queue
//	maze/       maze generator and BFS reference distances
//	cmd/stepnav CLI and terminal viewer
//
// Quick ASCII example ('-' walkable, '#' blocked, destination at (4,0)):
//
//	- - # - -        8 7 - 1 0
//	- - # - -   →    7 6 - 2 1
//	- - - - -        6 5 4 3 2
//
//	go get github.com/katalvlaran/stepnav
package stepnav
