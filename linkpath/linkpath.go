// Package linkpath implements the match-two connectivity search: direct,
// one-bend and border-routed two-bend paths, tried in that order.
package linkpath

import (
	"fmt"

	"github.com/katalvlaran/lianlian/grid"
)

// search holds the immutable inputs of one FindPath query.
type search struct {
	g          Occupancy
	rows, cols int
	a, b       grid.Position
}

// FindPath returns the highest-priority legal path from a to b on g, or a nil
// Path when the pair cannot be connected. The returned path always starts at
// a and ends at b.
//
// Behavior:
//  1. Validate preconditions (non-nil grid, distinct in-bounds occupied endpoints).
//  2. Direct:   only when a and b share a row or column.
//  3. One bend: corner (a.Row, b.Col) first, then (b.Row, a.Col).
//  4. Two bends: virtual lines top, bottom, left, right, in that order.
//
// FindPath never mutates g and keeps no state between calls.
// Complexity: O(R + C) time, O(1) extra memory.
func FindPath(g Occupancy, a, b grid.Position) (Path, error) {
	s, err := newSearch(g, a, b)
	if err != nil {
		return nil, err
	}
	if p := s.direct(); p != nil {
		return p, nil
	}
	if p := s.oneBend(); p != nil {
		return p, nil
	}
	return s.twoBend(), nil
}

// CanConnect reports whether FindPath finds a path between a and b.
// Precondition violations are returned as FindPath returns them, with false.
func CanConnect(g Occupancy, a, b grid.Position) (bool, error) {
	p, err := FindPath(g, a, b)
	if err != nil {
		return false, err
	}
	return p != nil, nil
}

// newSearch validates the query and captures grid dimensions once.
func newSearch(g Occupancy, a, b grid.Position) (*search, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	s := &search{g: g, rows: g.Rows(), cols: g.Cols(), a: a, b: b}
	if a == b {
		return nil, fmt.Errorf("%w: %s", ErrSamePosition, a)
	}
	for _, p := range [...]grid.Position{a, b} {
		if !s.inBounds(p) {
			return nil, fmt.Errorf("%w: %s in %dx%d grid", ErrOutOfBounds, p, s.rows, s.cols)
		}
		if !g.Occupied(p) {
			return nil, fmt.Errorf("%w: %s", ErrEndpointFree, p)
		}
	}
	return s, nil
}

// direct tries the straight line between the endpoints.
func (s *search) direct() Path {
	if s.a.Row != s.b.Row && s.a.Col != s.b.Col {
		return nil
	}
	return s.try(s.a, s.b)
}

// oneBend tries the two L-shaped candidates, corner (a.Row, b.Col) first.
func (s *search) oneBend() Path {
	if p := s.try(s.a, grid.At(s.a.Row, s.b.Col), s.b); p != nil {
		return p
	}
	return s.try(s.a, grid.At(s.b.Row, s.a.Col), s.b)
}

// twoBend tries U-shaped routes along the virtual lines just outside each border.
func (s *search) twoBend() Path {
	for _, side := range borderOrder {
		if p := s.try(s.a, s.exit(side, s.a), s.exit(side, s.b), s.b); p != nil {
			return p
		}
	}
	return nil
}

// exit projects p onto the virtual line outside the given border.
func (s *search) exit(side Side, p grid.Position) grid.Position {
	switch side {
	case Top:
		return grid.At(-1, p.Col)
	case Bottom:
		return grid.At(s.rows, p.Col)
	case Left:
		return grid.At(p.Row, -1)
	default:
		return grid.At(p.Row, s.cols)
	}
}

// try returns pts as a Path when every interior waypoint is free and every
// leg between consecutive waypoints is clear, or nil otherwise.
func (s *search) try(pts ...grid.Position) Path {
	for i := 1; i < len(pts)-1; i++ {
		if !s.free(pts[i]) {
			return nil
		}
	}
	for i := 1; i < len(pts); i++ {
		if !s.legClear(pts[i-1], pts[i]) {
			return nil
		}
	}
	return append(Path(nil), pts...)
}
