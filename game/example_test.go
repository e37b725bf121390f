// File: game/example_test.go
package game_test

import (
	"fmt"

	"github.com/katalvlaran/lianlian/board"
	"github.com/katalvlaran/lianlian/game"
	"github.com/katalvlaran/lianlian/grid"
)

////////////////////////////////////////////////////////////////////////////////
// Scenario: two pairs on one row. The inner pair is adjacent; once it is
// gone the outer pair has a clear straight line.
//
//	A B B A
////////////////////////////////////////////////////////////////////////////////

// ExampleSession_Select plays a level to completion.
func ExampleSession_Select() {
	b, _ := board.FromCells([][]string{{"A", "B", "B", "A"}})
	s, _ := game.NewSession(b)

	for _, p := range []grid.Position{
		grid.At(0, 0), grid.At(0, 1), // mismatch
		grid.At(0, 2),                // B-B
		grid.At(0, 0), grid.At(0, 3), // A-A
	} {
		out, _ := s.Select(p)
		if out.Path != nil {
			fmt.Println(out.Kind, out.Path)
			continue
		}
		fmt.Println(out.Kind)
	}
	fmt.Println("score:", s.Score(), "completed:", s.Completed())

	// Output:
	// selected
	// mismatch
	// matched (0,1)->(0,2)
	// selected
	// matched (0,0)->(0,3)
	// score: 200 completed: true
}

////////////////////////////////////////////////////////////////////////////////
// Scenario: the C pair is split by a B tile, so the link runs above the
// board along the virtual row -1.
//
//	C B C
//	B A B
//	. B A
////////////////////////////////////////////////////////////////////////////////

// ExampleSession_Select_border shows a blocked pair and a border route.
func ExampleSession_Select_border() {
	b, _ := board.FromCells([][]string{
		{"C", "B", "C"},
		{"B", "A", "B"},
		{"", "B", "A"},
	})
	s, _ := game.NewSession(b)

	_, _ = s.Select(grid.At(1, 1))
	out, _ := s.Select(grid.At(2, 2))
	fmt.Println(out.Kind)

	_, _ = s.Select(grid.At(0, 0))
	out, _ = s.Select(grid.At(0, 2))
	fmt.Println(out.Kind, out.Path.Class(), out.Path)

	// Output:
	// no-path
	// matched two-bend (0,0)->(-1,0)->(-1,2)->(0,2)
}
