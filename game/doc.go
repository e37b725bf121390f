// Package game runs a single tile-matching session on top of a board: it
// tracks the pending selection, asks linkpath whether a same-symbol pair can
// be connected, removes connected pairs, and keeps score.
//
// Flow of Select(p):
//
//  1. Empty, matched or out-of-bounds cells are rejected with ErrNotSelectable.
//  2. With nothing pending, p becomes the pending selection (Selected).
//  3. Selecting the pending cell again clears it (Deselected).
//  4. A different symbol replaces the pending selection (Mismatch).
//  5. The same symbol triggers a path query on a fresh snapshot. A path
//     removes the pair and scores it (Matched); no path replaces the pending
//     selection (NoPath).
//
// The first match of each symbol unlocks it; unlocked symbols are reported in
// match order. The session is complete once every tile is matched.
//
// Concurrency:
//
//	A Session is safe for concurrent use. Each Select runs under one lock, so
//	the snapshot, the path query and the board mutation of a match are atomic
//	with respect to the next selection.
//
// Logging:
//
//	Sessions log through a *zap.Logger (no-op by default): selections at debug
//	level, matches, restarts and completion at info level.
package game
