// Package linkpath defines the occupancy view, path classes and sentinel
// errors used by the connectivity engine.
package linkpath

import (
	"errors"

	"github.com/katalvlaran/lianlian/grid"
)

// Sentinel errors for FindPath preconditions and path validation.
var (
	// ErrNilGrid is returned when a nil occupancy view is passed.
	ErrNilGrid = errors.New("linkpath: grid is nil")

	// ErrSamePosition is returned when both endpoints address the same cell.
	ErrSamePosition = errors.New("linkpath: endpoints must be distinct")

	// ErrOutOfBounds is returned when an endpoint lies outside the grid.
	ErrOutOfBounds = errors.New("linkpath: endpoint out of bounds")

	// ErrEndpointFree is returned when an endpoint holds no unmatched tile.
	ErrEndpointFree = errors.New("linkpath: endpoint is not occupied")

	// ErrInvalidPath is returned by Path.Validate for paths that break the routing rules.
	ErrInvalidPath = errors.New("linkpath: invalid path")
)

// Occupancy is the read-only grid view the engine needs.
// Occupied must report false for empty and matched cells.
// *grid.Grid satisfies it.
type Occupancy interface {
	Rows() int
	Cols() int
	Occupied(p grid.Position) bool
}

var _ Occupancy = (*grid.Grid)(nil)

// Class identifies a path by its number of bends.
type Class int

const (
	// None marks the absence of a path.
	None Class = iota - 1
	// Direct is a straight horizontal or vertical line (0 bends).
	Direct
	// OneBend is an L-shaped path (1 bend).
	OneBend
	// TwoBend is a U-shaped path routed through a virtual border line (2 bends).
	TwoBend
)

// String returns a short lowercase name for c.
func (c Class) String() string {
	switch c {
	case Direct:
		return "direct"
	case OneBend:
		return "one-bend"
	case TwoBend:
		return "two-bend"
	default:
		return "none"
	}
}

// Side names the border a two-bend path is routed through.
type Side int

const (
	// Top routes along the virtual row -1.
	Top Side = iota
	// Bottom routes along the virtual row Rows().
	Bottom
	// Left routes along the virtual column -1.
	Left
	// Right routes along the virtual column Cols().
	Right
)

// borderOrder is the tie-break order for two-bend routing.
var borderOrder = [...]Side{Top, Bottom, Left, Right}

// String returns the lowercase side name.
func (s Side) String() string {
	switch s {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}
