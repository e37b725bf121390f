package grid

import "fmt"

// Parse builds a Grid from text rows, one string per row: '#' or 'X' marks an
// occupied cell, '.' marks a free one. It is the inverse of Grid.String and is
// mostly useful for fixtures.
func Parse(rows ...string) (*Grid, error) {
	flags := make([][]bool, len(rows))
	for r, line := range rows {
		flags[r] = make([]bool, len(line))
		for c := 0; c < len(line); c++ {
			switch line[c] {
			case '#', 'X':
				flags[r][c] = true
			case '.':
			default:
				return nil, fmt.Errorf("%w: %q at %s", ErrBadCell, line[c], At(r, c))
			}
		}
	}
	return New(flags)
}

// MustParse is like Parse but panics on error.
func MustParse(rows ...string) *Grid {
	g, err := Parse(rows...)
	if err != nil {
		panic(err)
	}
	return g
}
