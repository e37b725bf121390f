// Package board owns the tiles of one tile-matching game: it lays paired
// symbols out on a rectangular grid, records which pairs have been matched,
// and hands out immutable occupancy snapshots for path queries.
//
// What:
//
//   - Layout describes the board: dimensions plus how many tiles of each
//     symbol to place. Layouts can be decoded from JSON with ParseLayout.
//   - New places the tiles using a deterministic, seeded Fisher–Yates shuffle.
//     Scatter mode spreads tiles over random cells of the whole grid; Packed
//     mode shuffles the tiles and fills cells row-major from the top-left.
//   - Match marks two tiles of the same symbol as matched. Matched tiles stay
//     indexed on the board but are free for every later snapshot.
//
// Why:
//
//   - The path engine must never observe a half-mutated board, so callers take
//     a Snapshot per query and mutate only through Match afterwards.
//   - A fixed seed reproduces the same board across runs and platforms.
//
// Complexity:
//
//   - New / Reset / Snapshot: O(R×C).
//   - At / Match:             O(1).
//
// Errors:
//
//   - Layout validation: ErrBadDimensions, ErrNoSymbols, ErrEmptySymbol,
//     ErrDuplicateSymbol, ErrOddCount, ErrTooManyTiles; ErrBadLayout for
//     undecodable JSON.
//   - ErrOptionViolation for invalid options.
//   - Match: ErrOutOfBounds, ErrSamePosition, ErrNoTile, ErrAlreadyMatched,
//     ErrSymbolMismatch.
package board
