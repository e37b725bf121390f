package board

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lianlian/grid"
)

// Board is the authoritative, mutable tile grid of one game.
// It is not safe for concurrent use; game.Session serializes access.
type Board struct {
	layout  Layout
	opts    Options
	cells   [][]*Tile // nil marks an empty cell
	tiles   []*Tile   // generation order
	matched int       // matched tiles
}

// New validates layout and options and places the tiles.
// Complexity: O(R×C) time and memory.
func New(layout Layout, opts ...Option) (*Board, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	b := &Board{layout: cloneLayout(layout), opts: o}
	b.deal(o.Seed)
	return b, nil
}

// tileID names the i-th tile of a symbol, e.g. "星-0".
func tileID(symbol string, i int) string {
	return fmt.Sprintf("%s-%d", symbol, i)
}

func cloneLayout(l Layout) Layout {
	l.Symbols = append([]SymbolCount(nil), l.Symbols...)
	return l
}

// deal creates fresh tiles and places them according to the fill mode.
func (b *Board) deal(seed int64) {
	rows, cols := b.layout.Rows, b.layout.Cols
	b.cells = make([][]*Tile, rows)
	for r := range b.cells {
		b.cells[r] = make([]*Tile, cols)
	}
	b.tiles = make([]*Tile, 0, b.layout.Tiles())
	for _, s := range b.layout.Symbols {
		for i := 0; i < s.Count; i++ {
			b.tiles = append(b.tiles, &Tile{ID: tileID(s.Symbol, i), Symbol: s.Symbol})
		}
	}
	b.matched = 0

	rng := rngFromSeed(seed)
	cells := make([]grid.Position, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cells = append(cells, grid.At(r, c))
		}
	}
	switch b.opts.Fill {
	case Packed:
		shuffle(len(b.tiles), rng, func(i, j int) { b.tiles[i], b.tiles[j] = b.tiles[j], b.tiles[i] })
	default:
		shuffle(len(cells), rng, func(i, j int) { cells[i], cells[j] = cells[j], cells[i] })
	}
	for i, t := range b.tiles {
		t.Pos = cells[i]
		b.cells[t.Pos.Row][t.Pos.Col] = t
	}
}

// Reset deals a fresh board from the same layout with a new seed.
func (b *Board) Reset(seed int64) {
	b.opts.Seed = seed
	b.deal(seed)
}

// Layout returns a copy of the board's layout.
func (b *Board) Layout() Layout { return cloneLayout(b.layout) }

// Seed returns the seed of the current deal.
func (b *Board) Seed() int64 { return b.opts.Seed }

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.layout.Rows }

// Cols returns the number of columns.
func (b *Board) Cols() int { return b.layout.Cols }

// InBounds reports whether p addresses a cell of the board.
func (b *Board) InBounds(p grid.Position) bool {
	return p.Row >= 0 && p.Row < b.layout.Rows && p.Col >= 0 && p.Col < b.layout.Cols
}

// At returns a copy of the tile at p. ok is false for empty or out-of-bounds cells.
func (b *Board) At(p grid.Position) (t Tile, ok bool) {
	if !b.InBounds(p) || b.cells[p.Row][p.Col] == nil {
		return Tile{}, false
	}
	return *b.cells[p.Row][p.Col], true
}

// Tiles returns copies of all tiles in row-major board order.
func (b *Board) Tiles() []Tile {
	out := make([]Tile, 0, len(b.tiles))
	for _, row := range b.cells {
		for _, t := range row {
			if t != nil {
				out = append(out, *t)
			}
		}
	}
	return out
}

// Snapshot returns an immutable occupancy grid: cells with an unmatched tile
// are occupied, empty and matched cells are free. Later Match calls do not
// affect snapshots already taken.
// Complexity: O(R×C).
func (b *Board) Snapshot() *grid.Grid {
	flags := make([][]bool, len(b.cells))
	for r, row := range b.cells {
		flags[r] = make([]bool, len(row))
		for c, t := range row {
			flags[r][c] = t != nil && !t.Matched
		}
	}
	g, _ := grid.New(flags) // dimensions validated by Layout
	return g
}

// Match marks the tiles at p and q as matched. Both must be distinct,
// unmatched and carry the same symbol. Match does not check connectivity;
// that is the caller's job.
func (b *Board) Match(p, q grid.Position) error {
	tp, err := b.live(p)
	if err != nil {
		return err
	}
	tq, err := b.live(q)
	if err != nil {
		return err
	}
	if p == q {
		return fmt.Errorf("%w: %s", ErrSamePosition, p)
	}
	if tp.Symbol != tq.Symbol {
		return fmt.Errorf("%w: %q at %s, %q at %s", ErrSymbolMismatch, tp.Symbol, p, tq.Symbol, q)
	}
	tp.Matched, tq.Matched = true, true
	b.matched += 2
	return nil
}

// live returns the unmatched tile at p.
func (b *Board) live(p grid.Position) (*Tile, error) {
	if !b.InBounds(p) {
		return nil, fmt.Errorf("%w: %s", ErrOutOfBounds, p)
	}
	t := b.cells[p.Row][p.Col]
	if t == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoTile, p)
	}
	if t.Matched {
		return nil, fmt.Errorf("%w: %s at %s", ErrAlreadyMatched, t.ID, p)
	}
	return t, nil
}

// Remaining returns the number of unmatched tiles.
func (b *Board) Remaining() int { return len(b.tiles) - b.matched }

// TotalPairs returns the number of pairs dealt.
func (b *Board) TotalPairs() int { return len(b.tiles) / 2 }

// MatchedPairs returns the number of pairs removed so far.
func (b *Board) MatchedPairs() int { return b.matched / 2 }

// Cleared reports whether every tile has been matched.
func (b *Board) Cleared() bool { return b.matched == len(b.tiles) }

// String renders one row per line with cells separated by spaces; empty and
// matched cells print as '.'.
func (b *Board) String() string {
	var sb strings.Builder
	for r, row := range b.cells {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c, t := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if t == nil || t.Matched {
				sb.WriteByte('.')
			} else {
				sb.WriteString(t.Symbol)
			}
		}
	}
	return sb.String()
}
