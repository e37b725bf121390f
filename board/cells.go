package board

import "github.com/katalvlaran/lianlian/grid"

// FromCells builds a board from an explicit symbol matrix, for fixed levels
// and fixtures. "" marks an empty cell. The layout is derived from the
// matrix in first-seen symbol order and validated as usual, so every symbol
// must appear an even number of times. Reset reshuffles with Scatter fill.
func FromCells(cells [][]string) (*Board, error) {
	rows := len(cells)
	cols := 0
	if rows > 0 {
		cols = len(cells[0])
	}
	for _, row := range cells {
		if len(row) != cols {
			return nil, grid.ErrNonRectangular
		}
	}

	layout := Layout{Rows: rows, Cols: cols}
	index := map[string]int{}
	for _, row := range cells {
		for _, sym := range row {
			if sym == "" {
				continue
			}
			i, ok := index[sym]
			if !ok {
				i = len(layout.Symbols)
				index[sym] = i
				layout.Symbols = append(layout.Symbols, SymbolCount{Symbol: sym})
			}
			layout.Symbols[i].Count++
		}
	}
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	b := &Board{layout: layout, opts: DefaultOptions()}
	b.cells = make([][]*Tile, rows)
	seq := make(map[string]int, len(index))
	for r, row := range cells {
		b.cells[r] = make([]*Tile, cols)
		for c, sym := range row {
			if sym == "" {
				continue
			}
			t := &Tile{ID: tileID(sym, seq[sym]), Symbol: sym, Pos: grid.At(r, c)}
			seq[sym]++
			b.cells[r][c] = t
			b.tiles = append(b.tiles, t)
		}
	}
	return b, nil
}
