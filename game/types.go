// Package game defines outcomes, session state, options and sentinel errors.
package game

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lianlian/grid"
	"github.com/katalvlaran/lianlian/linkpath"
)

// Sentinel errors for session operations.
var (
	// ErrNilBoard is returned when a session is created without a board.
	ErrNilBoard = errors.New("game: board is nil")
	// ErrNotSelectable is returned for empty, matched or out-of-bounds cells.
	ErrNotSelectable = errors.New("game: cell is not selectable")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("game: invalid option supplied")
)

// DefaultPointsPerMatch is the score awarded for each removed pair.
const DefaultPointsPerMatch = 100

// OutcomeKind classifies the result of one selection.
type OutcomeKind int

const (
	// Selected means the cell became the pending selection.
	Selected OutcomeKind = iota
	// Deselected means the pending cell was selected again and cleared.
	Deselected
	// Mismatch means the symbols differ; the new cell is now pending.
	Mismatch
	// NoPath means the symbols match but cannot be connected; the new cell is now pending.
	NoPath
	// Matched means the pair was connected and removed.
	Matched
)

var outcomeNames = [...]string{"selected", "deselected", "mismatch", "no-path", "matched"}

// String returns the lowercase outcome name.
func (k OutcomeKind) String() string {
	if k < 0 || int(k) >= len(outcomeNames) {
		return fmt.Sprintf("OutcomeKind(%d)", int(k))
	}
	return outcomeNames[k]
}

// MarshalText encodes the kind by name.
func (k OutcomeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Outcome reports what one Select did.
type Outcome struct {
	Kind OutcomeKind   `json:"kind"`
	Pos  grid.Position `json:"pos"`
	// Prev is the previously pending cell for two-cell outcomes.
	Prev   *grid.Position `json:"prev,omitempty"`
	Symbol string         `json:"symbol"`
	// Path is set for Matched outcomes only.
	Path linkpath.Path `json:"path,omitempty"`
	// Unlocked is true when this match was the first for its symbol.
	Unlocked  bool `json:"unlocked,omitempty"`
	Completed bool `json:"completed,omitempty"`
}

// State is a point-in-time view of a session for presentation layers.
type State struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
	// Cells holds the symbol of each unmatched tile; "" marks empty or matched cells.
	Cells        [][]string     `json:"cells"`
	Pending      *grid.Position `json:"pending,omitempty"`
	Score        int            `json:"score"`
	Clicks       int            `json:"clicks"`
	MatchedPairs int            `json:"matched_pairs"`
	TotalPairs   int            `json:"total_pairs"`
	Unlocked     []string       `json:"unlocked"`
	Completed    bool           `json:"completed"`
	LastPath     linkpath.Path  `json:"last_path,omitempty"`
	Seed         int64          `json:"seed"`
}

// Option configures a Session via functional arguments.
type Option func(*Options)

// Options holds session parameters.
type Options struct {
	// Logger receives session events. Defaults to a no-op logger.
	Logger *zap.Logger
	// PointsPerMatch is added to the score for every removed pair.
	PointsPerMatch int

	err error
}

// DefaultOptions returns a no-op logger and DefaultPointsPerMatch.
func DefaultOptions() Options {
	return Options{
		Logger:         zap.NewNop(),
		PointsPerMatch: DefaultPointsPerMatch,
	}
}

// WithLogger sets the session logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithPointsPerMatch sets the score per removed pair.
//
//	n >= 0: award n points
//	n < 0:  invalid option → ErrOptionViolation
func WithPointsPerMatch(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: points per match %d", ErrOptionViolation, n)
			return
		}
		o.PointsPerMatch = n
	}
}
