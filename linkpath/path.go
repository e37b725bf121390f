package linkpath

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lianlian/grid"
)

// maxPoints is the longest legal path: two endpoints plus two bends.
const maxPoints = 4

// Path is an ordered list of grid-aligned waypoints from the first selected
// tile to the second. Interior points are bends; two-bend paths may have
// bends one step outside the grid.
type Path []grid.Position

// Class classifies p by its number of bends. Paths shorter than two points,
// or with more than two bends, classify as None.
func (p Path) Class() Class {
	if len(p) < 2 || len(p) > maxPoints {
		return None
	}
	return Class(len(p) - 2)
}

// Start returns the first waypoint. It panics on an empty path.
func (p Path) Start() grid.Position { return p[0] }

// End returns the last waypoint. It panics on an empty path.
func (p Path) End() grid.Position { return p[len(p)-1] }

// Bends returns the interior waypoints.
func (p Path) Bends() []grid.Position {
	if len(p) <= 2 {
		return nil
	}
	return p[1 : len(p)-1]
}

// Reverse returns a new path with the waypoints in reverse order.
func (p Path) Reverse() Path {
	if p == nil {
		return nil
	}
	r := make(Path, len(p))
	for i, pt := range p {
		r[len(p)-1-i] = pt
	}
	return r
}

// Len returns the number of cell steps the path covers, summing the
// Manhattan length of every leg.
func (p Path) Len() int {
	n := 0
	for i := 1; i < len(p); i++ {
		n += abs(p[i].Row-p[i-1].Row) + abs(p[i].Col-p[i-1].Col)
	}
	return n
}

// Border reports which virtual border line a two-bend path was routed along.
// ok is false for other classes or when the bends are not on a border line of g.
func (p Path) Border(g Occupancy) (side Side, ok bool) {
	if p.Class() != TwoBend || g == nil {
		return 0, false
	}
	b1, b2 := p[1], p[2]
	switch {
	case b1.Row == -1 && b2.Row == -1:
		return Top, true
	case b1.Row == g.Rows() && b2.Row == g.Rows():
		return Bottom, true
	case b1.Col == -1 && b2.Col == -1:
		return Left, true
	case b1.Col == g.Cols() && b2.Col == g.Cols():
		return Right, true
	}
	return 0, false
}

// Validate checks p against the routing rules on snapshot g: at least two
// and at most four points, distinct in-bounds endpoints, axis-aligned
// non-empty legs, bends no further than one step outside the grid, in-grid
// bends free, and no occupied cell crossed by any leg.
// Returns nil or an error wrapping ErrInvalidPath.
func (p Path) Validate(g Occupancy) error {
	if g == nil {
		return ErrNilGrid
	}
	if len(p) < 2 || len(p) > maxPoints {
		return fmt.Errorf("%w: %d points", ErrInvalidPath, len(p))
	}
	s := &search{g: g, rows: g.Rows(), cols: g.Cols(), a: p.Start(), b: p.End()}
	if s.a == s.b {
		return fmt.Errorf("%w: endpoints coincide at %s", ErrInvalidPath, s.a)
	}
	if !s.inBounds(s.a) || !s.inBounds(s.b) {
		return fmt.Errorf("%w: endpoint outside grid", ErrInvalidPath)
	}
	for _, bend := range p.Bends() {
		if bend.Row < -1 || bend.Row > s.rows || bend.Col < -1 || bend.Col > s.cols {
			return fmt.Errorf("%w: bend %s beyond border", ErrInvalidPath, bend)
		}
		if !s.free(bend) {
			return fmt.Errorf("%w: bend %s occupied", ErrInvalidPath, bend)
		}
	}
	for i := 1; i < len(p); i++ {
		from, to := p[i-1], p[i]
		if from == to {
			return fmt.Errorf("%w: empty leg at %s", ErrInvalidPath, from)
		}
		if from.Row != to.Row && from.Col != to.Col {
			return fmt.Errorf("%w: diagonal leg %s->%s", ErrInvalidPath, from, to)
		}
		if !s.legClear(from, to) {
			return fmt.Errorf("%w: leg %s->%s blocked", ErrInvalidPath, from, to)
		}
	}
	return nil
}

// String renders p as "(r,c)->(r,c)->...".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, pt := range p {
		parts[i] = pt.String()
	}
	return strings.Join(parts, "->")
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
