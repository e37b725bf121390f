// File: linkpath/example_test.go
package linkpath_test

import (
	"fmt"

	"github.com/katalvlaran/lianlian/grid"
	"github.com/katalvlaran/lianlian/linkpath"
)

////////////////////////////////////////////////////////////////////////////////
// Example: FindPath, one bend
////////////////////////////////////////////////////////////////////////////////

// ExampleFindPath connects opposite corners of a 3×3 board. Both L-shaped
// corners are free; the corner on the first tile's row is tried first.
func ExampleFindPath() {
	g, _ := grid.Parse(
		"#..",
		"...",
		"..#",
	)
	path, err := linkpath.FindPath(g, grid.At(0, 0), grid.At(2, 2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path.Class(), path)

	// Output:
	// one-bend (0,0)->(0,2)->(2,2)
}

////////////////////////////////////////////////////////////////////////////////
// Example: FindPath, routed through the border
////////////////////////////////////////////////////////////////////////////////

// ExampleFindPath_border shows a U-shaped route: the tiles sit behind a wall
// on the bottom row, so the path leaves over the top edge and comes back in.
func ExampleFindPath_border() {
	g, _ := grid.Parse(
		"...",
		"###",
	)
	path, _ := linkpath.FindPath(g, grid.At(1, 0), grid.At(1, 2))
	side, _ := path.Border(g)
	fmt.Println(path.Class(), side, path)
	fmt.Println("bends:", path.Bends())

	// Output:
	// two-bend top (1,0)->(-1,0)->(-1,2)->(1,2)
	// bends: [(-1,0) (-1,2)]
}

////////////////////////////////////////////////////////////////////////////////
// Example: no path
////////////////////////////////////////////////////////////////////////////////

// ExampleFindPath_none shows the non-exceptional negative outcome.
func ExampleFindPath_none() {
	g, _ := grid.Parse(
		"###",
		"###",
		"###",
	)
	path, err := linkpath.FindPath(g, grid.At(1, 1), grid.At(0, 0))
	fmt.Println(path == nil, err)

	// Output:
	// true <nil>
}
