// Package linkpath decides whether two tiles on a tile-matching board can be
// connected under the classic match-two rules, and returns the connecting path.
//
// What
//
//   - FindPath(g, a, b) tries three path classes in a fixed priority order and
//     returns the first legal one, or a nil Path when none exists:
//
//     1. Direct:   a and b share a row or column and nothing lies between them.
//     2. One bend: an L through corner (a.Row, b.Col), then corner (b.Row, a.Col).
//     3. Two bends through the border: a U that leaves the grid, runs along a
//     virtual line just outside one edge, and comes back in. Edges are tried
//     top (row -1), bottom (row Rows), left (col -1), right (col Cols).
//
//   - A Path is the ordered list of waypoints [a, bends..., b]. Consecutive
//     waypoints always share a row or a column.
//
// Free cells
//
//	A cell is free when it lies outside the grid, when it is one of the two
//	queried endpoints, or when the snapshot reports it unoccupied. Matched
//	tiles must be reported as unoccupied by the grid owner.
//
// Determinism
//
//	FindPath is a pure function of (grid, a, b). Given the same snapshot it
//	always returns the same path; the tie-break order above is part of the
//	contract. FindPath(g, b, a) returns a path of the same Class, though not
//	necessarily through the same corners.
//
// Complexity (R = rows, C = cols)
//
//   - Time:   O(R + C). Each class scans a bounded number of straight runs.
//   - Memory: O(1) besides the returned Path (at most four points).
//
// Errors
//
//   - ErrNilGrid       if the snapshot is nil.
//   - ErrSamePosition  if a == b.
//   - ErrOutOfBounds   if a or b lies outside the grid.
//   - ErrEndpointFree  if a or b is not occupied.
//   - ErrInvalidPath   from Path.Validate when a path breaks the routing rules.
//
// A nil Path with a nil error means "not connectable" and is not a failure.
package linkpath
