// Package lianlian is an in-memory engine for "link-link" tile-matching
// puzzles: a rectangular board of symbol tiles where two equal tiles can be
// removed when a connecting line with at most two bends runs between them.
//
// 🚀 What is in the box?
//
//	A small, deterministic library that brings together:
//		• Occupancy grids: build, parse and snapshot boards of occupied cells
//		• Path search: direct, one-bend and border-routed two-bend links
//		• Boards: symbol layouts, seeded shuffles, pair removal
//		• Sessions: selection flow, scoring, unlocks, JSON state for UIs
//
// ✨ Why lianlian?
//
//   - Deterministic: the same seed always deals the same board, and the path
//     search always prefers the same route
//   - Pure queries: FindPath never mutates the grid it is given
//   - Thread-safe sessions: one lock per selection
//
// Packages:
//
//	grid/     Position and Grid, the occupancy model shared by everything else
//	linkpath/ FindPath, CanConnect, Path classification and validation
//	board/    Layout, seeded dealing, tiles and Match
//	game/     Session: pending selection, outcomes, score, zap logging
//
// Quick ASCII example, a two-bend link over the top border:
//
//	  ┌───┐      row -1 (virtual)
//	  A # A      row 0
//
//	go get github.com/katalvlaran/lianlian
package lianlian
