// File: grid/example_test.go
package grid_test

import (
	"fmt"

	"github.com/katalvlaran/lianlian/grid"
)

// ExampleFromValues builds a snapshot from symbol IDs, where 0 marks an
// empty or already-matched cell.
func ExampleFromValues() {
	g, _ := grid.FromValues([][]int{
		{1, 0, 2},
		{0, 0, 0},
		{2, 0, 1},
	})
	fmt.Println(g)
	fmt.Println("occupied:", g.OccupiedCount())
	fmt.Println("(0,1) occupied:", g.Occupied(grid.At(0, 1)))
	fmt.Println("(-1,0) occupied:", g.Occupied(grid.At(-1, 0)))

	// Output:
	// #.#
	// ...
	// #.#
	// occupied: 4
	// (0,1) occupied: false
	// (-1,0) occupied: false
}
