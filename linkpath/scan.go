package linkpath

import "github.com/katalvlaran/lianlian/grid"

// inBounds reports whether p addresses a real cell.
func (s *search) inBounds(p grid.Position) bool {
	return p.Row >= 0 && p.Row < s.rows && p.Col >= 0 && p.Col < s.cols
}

// free is the routing predicate: cells outside the grid, the two endpoints,
// and unoccupied cells can be crossed.
func (s *search) free(p grid.Position) bool {
	if !s.inBounds(p) || p == s.a || p == s.b {
		return true
	}
	return !s.g.Occupied(p)
}

// rowClear reports whether every cell strictly between columns c1 and c2 on
// row r is free. The bounds themselves are not checked.
func (s *search) rowClear(r, c1, c2 int) bool {
	if c1 > c2 {
		c1, c2 = c2, c1
	}
	for c := c1 + 1; c < c2; c++ {
		if !s.free(grid.At(r, c)) {
			return false
		}
	}
	return true
}

// colClear reports whether every cell strictly between rows r1 and r2 on
// column c is free. The bounds themselves are not checked.
func (s *search) colClear(c, r1, r2 int) bool {
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	for r := r1 + 1; r < r2; r++ {
		if !s.free(grid.At(r, c)) {
			return false
		}
	}
	return true
}

// legClear checks one axis-aligned leg. Diagonal legs are never clear.
func (s *search) legClear(from, to grid.Position) bool {
	switch {
	case from.Row == to.Row:
		return s.rowClear(from.Row, from.Col, to.Col)
	case from.Col == to.Col:
		return s.colClear(from.Col, from.Row, to.Row)
	default:
		return false
	}
}
