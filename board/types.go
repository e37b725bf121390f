// Package board defines layouts, tiles, options and sentinel errors.
package board

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lianlian/grid"
)

// Sentinel errors for layout validation and board mutation.
var (
	// ErrBadLayout indicates the layout document could not be decoded.
	ErrBadLayout = errors.New("board: malformed layout")
	// ErrBadDimensions indicates non-positive rows or columns.
	ErrBadDimensions = errors.New("board: rows and cols must be positive")
	// ErrNoSymbols indicates a layout without any symbol.
	ErrNoSymbols = errors.New("board: layout has no symbols")
	// ErrEmptySymbol indicates a blank symbol name.
	ErrEmptySymbol = errors.New("board: symbol must be non-empty")
	// ErrDuplicateSymbol indicates the same symbol listed twice.
	ErrDuplicateSymbol = errors.New("board: duplicate symbol")
	// ErrOddCount indicates a symbol count that is not a positive even number.
	ErrOddCount = errors.New("board: symbol count must be positive and even")
	// ErrTooManyTiles indicates more tiles than cells.
	ErrTooManyTiles = errors.New("board: more tiles than cells")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("board: invalid option supplied")

	// ErrOutOfBounds indicates a position outside the board.
	ErrOutOfBounds = errors.New("board: position out of bounds")
	// ErrSamePosition indicates both positions of a pair are the same cell.
	ErrSamePosition = errors.New("board: pair must use two distinct cells")
	// ErrNoTile indicates an empty cell.
	ErrNoTile = errors.New("board: no tile at position")
	// ErrAlreadyMatched indicates a tile that was already removed from play.
	ErrAlreadyMatched = errors.New("board: tile already matched")
	// ErrSymbolMismatch indicates two tiles with different symbols.
	ErrSymbolMismatch = errors.New("board: tiles carry different symbols")
)

// SymbolCount is how many tiles of one symbol a layout places.
type SymbolCount struct {
	Symbol string `json:"symbol"`
	Count  int    `json:"count"`
}

// Layout describes board dimensions and tile supply.
type Layout struct {
	Rows    int           `json:"rows"`
	Cols    int           `json:"cols"`
	Symbols []SymbolCount `json:"symbols"`
}

// DefaultLayout returns the classic 6×6 board: eight characters, every cell filled.
func DefaultLayout() Layout {
	return Layout{
		Rows: 6,
		Cols: 6,
		Symbols: []SymbolCount{
			{"星", 4}, {"河", 4}, {"流", 4}, {"转", 4},
			{"依", 6}, {"如", 6}, {"初", 4}, {"见", 4},
		},
	}
}

// Tiles returns the total number of tiles the layout places.
func (l Layout) Tiles() int {
	n := 0
	for _, s := range l.Symbols {
		n += s.Count
	}
	return n
}

// Validate checks dimensions, symbol names and counts.
func (l Layout) Validate() error {
	if l.Rows <= 0 || l.Cols <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrBadDimensions, l.Rows, l.Cols)
	}
	if len(l.Symbols) == 0 {
		return ErrNoSymbols
	}
	seen := make(map[string]struct{}, len(l.Symbols))
	for _, s := range l.Symbols {
		if s.Symbol == "" {
			return ErrEmptySymbol
		}
		if _, dup := seen[s.Symbol]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateSymbol, s.Symbol)
		}
		seen[s.Symbol] = struct{}{}
		if s.Count <= 0 || s.Count%2 != 0 {
			return fmt.Errorf("%w: %q has %d", ErrOddCount, s.Symbol, s.Count)
		}
	}
	if n := l.Tiles(); n > l.Rows*l.Cols {
		return fmt.Errorf("%w: %d tiles for %d cells", ErrTooManyTiles, n, l.Rows*l.Cols)
	}
	return nil
}

// Tile is one placed symbol. Matched tiles keep their position but no longer
// block paths.
type Tile struct {
	ID      string        `json:"id"`
	Symbol  string        `json:"symbol"`
	Pos     grid.Position `json:"pos"`
	Matched bool          `json:"matched"`
}

// FillMode selects how tiles are distributed over the cells.
type FillMode int

const (
	// Scatter places tiles on uniformly shuffled cells of the whole grid.
	Scatter FillMode = iota
	// Packed shuffles the tiles and fills cells row-major from the top-left.
	Packed
)

// Option configures board generation via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds generation parameters.
type Options struct {
	// Seed drives the shuffle. Zero selects a fixed default seed.
	Seed int64
	// Fill chooses Scatter or Packed placement.
	Fill FillMode

	err error
}

// DefaultOptions returns Seed 0 (deterministic default stream) and Scatter placement.
func DefaultOptions() Options {
	return Options{Seed: 0, Fill: Scatter}
}

// WithSeed sets the shuffle seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithFill selects the placement mode. Unknown modes are an option violation.
func WithFill(m FillMode) Option {
	return func(o *Options) {
		if m != Scatter && m != Packed {
			o.err = fmt.Errorf("%w: fill mode %d", ErrOptionViolation, m)
			return
		}
		o.Fill = m
	}
}
