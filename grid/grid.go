package grid

import "strings"

// New constructs a Grid from a non-empty, rectangular 2D slice of occupancy flags.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if occupied has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(R×C) time and memory.
func New(occupied [][]bool) (*Grid, error) {
	h, w, err := shape(len(occupied), func(i int) int { return len(occupied[i]) })
	if err != nil {
		return nil, err
	}
	g := alloc(h, w)
	for r := 0; r < h; r++ {
		copy(g.cells[r], occupied[r])
		for _, busy := range occupied[r] {
			if busy {
				g.occupied++
			}
		}
	}
	return g, nil
}

// FromValues constructs a Grid from integer cell values: FreeValue (0) and
// negatives are free, values ≥ 1 are occupied. Symbol IDs can be passed directly.
// Same errors and complexity as New.
func FromValues(values [][]int) (*Grid, error) {
	h, w, err := shape(len(values), func(i int) int { return len(values[i]) })
	if err != nil {
		return nil, err
	}
	g := alloc(h, w)
	for r := 0; r < h; r++ {
		for c, v := range values[r] {
			if v > FreeValue {
				g.cells[r][c] = true
				g.occupied++
			}
		}
	}
	return g, nil
}

// shape validates row count and per-row length, returning (rows, cols).
func shape(n int, rowLen func(int) int) (int, int, error) {
	if n == 0 || rowLen(0) == 0 {
		return 0, 0, ErrEmptyGrid
	}
	w := rowLen(0)
	for i := 1; i < n; i++ {
		if rowLen(i) != w {
			return 0, 0, ErrNonRectangular
		}
	}
	return n, w, nil
}

func alloc(h, w int) *Grid {
	cells := make([][]bool, h)
	for r := range cells {
		cells[r] = make([]bool, w)
	}
	return &Grid{rows: h, cols: w, cells: cells}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// Occupied reports whether p holds an unmatched tile.
// Positions outside the grid are never occupied.
// Complexity: O(1).
func (g *Grid) Occupied(p Position) bool {
	return g.InBounds(p) && g.cells[p.Row][p.Col]
}

// OccupiedCount returns the number of occupied cells.
func (g *Grid) OccupiedCount() int { return g.occupied }

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	c := alloc(g.rows, g.cols)
	for r := range g.cells {
		copy(c.cells[r], g.cells[r])
	}
	c.occupied = g.occupied
	return c
}

// String renders the grid one row per line: '#' occupied, '.' free.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r, row := range g.cells {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, busy := range row {
			if busy {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
