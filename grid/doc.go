// Package grid provides the immutable occupancy snapshot that tile-matching
// path queries run against.
//
// What:
//
//   - Position is a plain (Row, Col) pair. Rows grow downward, columns grow rightward.
//   - Grid wraps a rectangular rows×cols matrix of occupied/free flags.
//   - A Grid is deep-copied on construction and never mutated afterwards, so a
//     query always observes one consistent board state.
//
// Why:
//
//   - The grid owner mutates its own tiles; the path engine only needs a
//     read-only view that cannot change mid-query.
//   - Matched tiles are reported as free, so removed pairs open new routes.
//
// Complexity:
//
//   - New / FromValues / Clone: O(R×C) time and memory.
//   - InBounds / Occupied:      O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package grid
