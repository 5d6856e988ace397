// Package route turns a step field into a concrete route.
//
// Descend walks from a source cell to the field's destination, always
// moving to the walkable axis neighbour with the strictly lowest step. Ties
// are broken by grid.Directions order (Forward, Right, Back, Left): the first
// minimum wins, so routes are reproducible.
//
// Simplify is an optional post-pass over an orthogonal route. It looks at
// every window of three consecutive waypoints and, when the outer two form a
// one-cell diagonal whose two corner cells are both walkable, drops the
// middle waypoint so the route cuts the corner.
//
// Errors:
//
//   - ErrUnknownSource: the source is not part of the field.
//   - ErrUnreachable:   the source has no finite step.
//   - ErrStuck:         no lower neighbour was found before reaching the
//     destination; the partial route is returned alongside the error.
package route
