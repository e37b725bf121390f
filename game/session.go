package game

import (
	"fmt"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/katalvlaran/lianlian/board"
	"github.com/katalvlaran/lianlian/grid"
	"github.com/katalvlaran/lianlian/linkpath"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Session is one game in progress. It owns its board exclusively; callers
// must not mutate the board after handing it to NewSession.
type Session struct {
	mu       sync.Mutex
	board    *board.Board
	opts     Options
	log      *zap.Logger
	pending  *grid.Position
	score    int
	clicks   int
	unlocked []string
	seen     map[string]struct{}
	lastPath linkpath.Path
	history  []Outcome
}

// NewSession starts a session on b.
// Returns ErrNilBoard or ErrOptionViolation for invalid input.
func NewSession(b *board.Board, opts ...Option) (*Session, error) {
	if b == nil {
		return nil, ErrNilBoard
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	s := &Session{
		board: b,
		opts:  o,
		log:   o.Logger.With(zap.Int64("seed", b.Seed())),
		seen:  make(map[string]struct{}),
	}
	s.log.Info("session started",
		zap.Int("rows", b.Rows()),
		zap.Int("cols", b.Cols()),
		zap.Int("pairs", b.TotalPairs()),
	)
	return s, nil
}

// Select processes a click on p and reports what happened.
func (s *Session) Select(p grid.Position) (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tile, ok := s.board.At(p)
	if !ok || tile.Matched {
		return Outcome{}, fmt.Errorf("%w: %s", ErrNotSelectable, p)
	}
	s.clicks++

	if s.pending == nil {
		s.pending = &p
		s.log.Debug("tile selected", zap.Stringer("pos", p), zap.String("symbol", tile.Symbol))
		return s.record(Outcome{Kind: Selected, Pos: p, Symbol: tile.Symbol}), nil
	}

	prev := *s.pending
	if prev == p {
		s.pending = nil
		s.log.Debug("tile deselected", zap.Stringer("pos", p))
		return s.record(Outcome{Kind: Deselected, Pos: p, Symbol: tile.Symbol}), nil
	}

	first, _ := s.board.At(prev)
	out := Outcome{Pos: p, Prev: &prev, Symbol: tile.Symbol}
	if first.Symbol != tile.Symbol {
		s.pending = &p
		out.Kind = Mismatch
		s.log.Debug("symbols differ",
			zap.Stringer("first", prev), zap.String("first_symbol", first.Symbol),
			zap.Stringer("second", p), zap.String("second_symbol", tile.Symbol),
		)
		return s.record(out), nil
	}

	path, err := linkpath.FindPath(s.board.Snapshot(), prev, p)
	if err != nil {
		return Outcome{}, fmt.Errorf("game: path query %s->%s: %w", prev, p, err)
	}
	if path == nil {
		s.pending = &p
		out.Kind = NoPath
		s.log.Debug("no path", zap.Stringer("first", prev), zap.Stringer("second", p))
		return s.record(out), nil
	}

	if err := s.board.Match(prev, p); err != nil {
		return Outcome{}, fmt.Errorf("game: match %s->%s: %w", prev, p, err)
	}
	s.pending = nil
	s.score += s.opts.PointsPerMatch
	s.lastPath = path
	out.Kind = Matched
	out.Path = path
	out.Unlocked = s.unlock(tile.Symbol)
	out.Completed = s.board.Cleared()

	s.log.Info("pair matched",
		zap.String("symbol", tile.Symbol),
		zap.Stringer("class", path.Class()),
		zap.Stringer("path", path),
		zap.Int("score", s.score),
		zap.Int("matched_pairs", s.board.MatchedPairs()),
	)
	if out.Unlocked {
		s.log.Info("symbol unlocked", zap.String("symbol", tile.Symbol), zap.Int("unlocked", len(s.unlocked)))
	}
	if out.Completed {
		s.log.Info("board cleared", zap.Int("score", s.score), zap.Int("clicks", s.clicks))
	}
	return s.record(out), nil
}

// unlock records the first match of symbol and reports whether it was new.
func (s *Session) unlock(symbol string) bool {
	if _, ok := s.seen[symbol]; ok {
		return false
	}
	s.seen[symbol] = struct{}{}
	s.unlocked = append(s.unlocked, symbol)
	return true
}

func (s *Session) record(o Outcome) Outcome {
	s.history = append(s.history, o)
	return o
}

// Restart deals a fresh board with seed and clears all bookkeeping.
func (s *Session) Restart(seed int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.board.Reset(seed)
	s.pending = nil
	s.score, s.clicks = 0, 0
	s.unlocked = nil
	s.seen = make(map[string]struct{})
	s.lastPath = nil
	s.history = nil
	s.log = s.opts.Logger.With(zap.Int64("seed", seed))
	s.log.Info("session restarted")
}

// Pending returns the pending selection, if any.
func (s *Session) Pending() (grid.Position, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		return grid.Position{}, false
	}
	return *s.pending, true
}

// Score returns the current score.
func (s *Session) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}

// Completed reports whether every pair has been removed.
func (s *Session) Completed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Cleared()
}

// Unlocked returns the unlocked symbols in the order they were first matched.
func (s *Session) Unlocked() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.unlocked...)
}

// History returns every outcome since the session started or restarted.
func (s *Session) History() []Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Outcome(nil), s.history...)
}

// Tile returns a copy of the tile at p.
func (s *Session) Tile(p grid.Position) (board.Tile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.At(p)
}

// Snapshot returns the current occupancy grid.
func (s *Session) Snapshot() *grid.Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Snapshot()
}

// State returns a presentation view of the session.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := State{
		Rows:         s.board.Rows(),
		Cols:         s.board.Cols(),
		Cells:        make([][]string, s.board.Rows()),
		Score:        s.score,
		Clicks:       s.clicks,
		MatchedPairs: s.board.MatchedPairs(),
		TotalPairs:   s.board.TotalPairs(),
		Unlocked:     append([]string{}, s.unlocked...),
		Completed:    s.board.Cleared(),
		LastPath:     append(linkpath.Path(nil), s.lastPath...),
		Seed:         s.board.Seed(),
	}
	for r := range st.Cells {
		st.Cells[r] = make([]string, st.Cols)
		for c := range st.Cells[r] {
			if t, ok := s.board.At(grid.At(r, c)); ok && !t.Matched {
				st.Cells[r][c] = t.Symbol
			}
		}
	}
	if s.pending != nil {
		p := *s.pending
		st.Pending = &p
	}
	return st
}

// MarshalState encodes State() as JSON.
func (s *Session) MarshalState() ([]byte, error) {
	return json.Marshal(s.State())
}
