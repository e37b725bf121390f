package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lianlian/grid"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New and FromValues reject empty or ragged inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name   string
		flags  [][]bool
		values [][]int
		err    error
	}{
		{"EmptyRows", [][]bool{}, [][]int{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]bool{{}}, [][]int{{}}, grid.ErrEmptyGrid},
		{"NonRectangular", [][]bool{{true, false}, {true}}, [][]int{{1, 2}, {3}}, grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.flags)
			assert.ErrorIs(t, err, tc.err)
			_, err = grid.FromValues(tc.values)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNew_DeepCopy ensures later mutation of the input does not leak into the Grid.
func TestNew_DeepCopy(t *testing.T) {
	flags := [][]bool{{true, false}, {false, true}}
	g, err := grid.New(flags)
	require.NoError(t, err)

	flags[0][1] = true
	flags[1][1] = false
	assert.False(t, g.Occupied(grid.At(0, 1)))
	assert.True(t, g.Occupied(grid.At(1, 1)))
	assert.Equal(t, 2, g.OccupiedCount())
}

// TestFromValues maps symbol IDs to occupancy: ≥1 occupied, 0 free.
func TestFromValues(t *testing.T) {
	g, err := grid.FromValues([][]int{
		{3, 0, 1},
		{0, 7, 0},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 3, g.Cols())
	assert.Equal(t, 3, g.OccupiedCount())
	assert.Equal(t, "#.#\n.#.", g.String())
}

//----------------------------------------------------------------------------//
// Queries
//----------------------------------------------------------------------------//

// TestInBoundsAndOccupied checks bounds on a 2×3 grid and that cells outside
// the grid are never occupied.
func TestInBoundsAndOccupied(t *testing.T) {
	g := grid.MustParse(
		"###",
		"###",
	)

	for _, p := range []grid.Position{{0, 0}, {1, 2}, {1, 1}} {
		assert.Truef(t, g.InBounds(p), "InBounds%s", p)
		assert.Truef(t, g.Occupied(p), "Occupied%s", p)
	}
	for _, p := range []grid.Position{{-1, 0}, {0, 3}, {2, 1}, {1, -1}} {
		assert.Falsef(t, g.InBounds(p), "InBounds%s", p)
		assert.Falsef(t, g.Occupied(p), "Occupied%s", p)
	}
}

// TestClone verifies Clone produces an equal, independent snapshot.
func TestClone(t *testing.T) {
	g := grid.MustParse("#.", ".#")
	c := g.Clone()
	assert.Equal(t, g.String(), c.String())
	assert.Equal(t, g.OccupiedCount(), c.OccupiedCount())
	assert.NotSame(t, g, c)
}

// TestParse covers both occupied markers and the round trip through String.
func TestParse(t *testing.T) {
	g, err := grid.Parse("X.#", "...")
	require.NoError(t, err)
	assert.Equal(t, "#.#\n...", g.String())

	_, err = grid.Parse("#?")
	assert.ErrorIs(t, err, grid.ErrBadCell)

	_, err = grid.Parse("##", "#")
	assert.ErrorIs(t, err, grid.ErrNonRectangular)

	assert.Panics(t, func() { grid.MustParse() })
}

// TestPosition covers the small Position helpers.
func TestPosition(t *testing.T) {
	p := grid.At(2, 3)
	assert.Equal(t, grid.Position{Row: 2, Col: 3}, p)
	assert.Equal(t, grid.At(1, 5), p.Add(-1, 2))
	assert.True(t, p.Equal(grid.Position{Row: 2, Col: 3}))
	assert.False(t, p.Equal(grid.At(3, 2)))
	assert.Equal(t, "(-1,0)", grid.At(-1, 0).String())
}
