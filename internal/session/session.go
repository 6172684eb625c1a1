// Package session drives one game at a time for a presentation layer:
// it owns the game state, caches the legal moves, matches clicked
// coordinates against them and reports results.
package session

import (
	"fmt"
	"log"
	"time"

	petname "github.com/dustinkirkland/golang-petname"
	"golang.org/x/exp/slices"

	"github.com/hailam/chessrules/internal/board"
)

// Status describes where the current game stands.
type Status int

const (
	StatusPlaying Status = iota
	StatusCheck
	StatusCheckmate
	StatusStalemate
)

// String returns a short status label.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusCheck:
		return "check"
	case StatusCheckmate:
		return "checkmate"
	case StatusStalemate:
		return "stalemate"
	default:
		return "unknown"
	}
}

// GameRecord summarises a finished game.
type GameRecord struct {
	ID       string
	Result   Status
	Winner   board.Color // NoColor for stalemate
	Plies    int
	Moves    []string // SAN
	Duration time.Duration
	Finished time.Time
}

// Recorder receives finished games.
type Recorder interface {
	RecordGame(rec GameRecord) error
}

// Session is a single game driven by coordinate input. It is not safe for
// concurrent use; the owning UI loop serialises all calls.
type Session struct {
	id    string
	state *board.GameState
	legal []board.Move
	san   []string

	selector Selector

	recorder Recorder
	recorded bool
	started  time.Time

	now func() time.Time
}

// New starts a game at the standard position. rec may be nil.
func New(rec Recorder) *Session {
	s := &Session{
		recorder: rec,
		now:      time.Now,
	}
	s.Reset()
	return s
}

// Reset abandons the current game and starts a new one with a fresh ID.
func (s *Session) Reset() {
	s.id = petname.Generate(2, "-")
	s.state = board.NewGameState()
	s.san = nil
	s.selector.Clear()
	s.recorded = false
	s.started = s.now()
	s.refresh()
}

// refresh recomputes the cached legal moves and terminal flags.
func (s *Session) refresh() {
	s.legal = s.state.LegalMoves()
}

// ID returns the human readable game identifier.
func (s *Session) ID() string {
	return s.id
}

// Board returns a copy of the current board.
func (s *Session) Board() board.Board {
	return s.state.Board()
}

// SideToMove returns the color to move.
func (s *Session) SideToMove() board.Color {
	return s.state.SideToMove()
}

// KingSquare returns the king square of color c.
func (s *Session) KingSquare(c board.Color) board.Square {
	return s.state.KingSquare(c)
}

// LastMove returns the most recent move, if any.
func (s *Session) LastMove() (board.Move, bool) {
	return s.state.LastMove()
}

// FEN returns the FEN of the current position.
func (s *Session) FEN() string {
	return s.state.FEN()
}

// LegalMoves returns a copy of the cached legal moves.
func (s *Session) LegalMoves() []board.Move {
	return slices.Clone(s.legal)
}

// LegalMovesFrom returns the legal moves starting on sq.
func (s *Session) LegalMovesFrom(sq board.Square) []board.Move {
	var moves []board.Move
	for _, m := range s.legal {
		if m.From == sq {
			moves = append(moves, m)
		}
	}
	return moves
}

// SANHistory returns the moves played so far in SAN.
func (s *Session) SANHistory() []string {
	return slices.Clone(s.san)
}

// Ply returns the number of moves played.
func (s *Session) Ply() int {
	return s.state.Ply()
}

// Status reports whether the game is over and whether the side to move
// is in check.
func (s *Session) Status() Status {
	switch {
	case s.state.IsCheckmate():
		return StatusCheckmate
	case s.state.IsStalemate():
		return StatusStalemate
	case s.state.InCheck():
		return StatusCheck
	default:
		return StatusPlaying
	}
}

// Over reports whether the game has reached a terminal position.
func (s *Session) Over() bool {
	st := s.Status()
	return st == StatusCheckmate || st == StatusStalemate
}

// ResultText returns the end-of-game message, or "" while play continues.
func (s *Session) ResultText() string {
	switch s.Status() {
	case StatusCheckmate:
		if s.state.SideToMove() == board.White {
			return "Black wins by checkmate"
		}
		return "White wins by checkmate"
	case StatusStalemate:
		return "Stalemate"
	default:
		return ""
	}
}

// Play commits the legal move from one square to another.
func (s *Session) Play(from, to board.Square) (board.Move, error) {
	if s.Over() {
		return board.NoMove, ErrGameOver
	}
	if !from.IsValid() || !to.IsValid() {
		return board.NoMove, fmt.Errorf("%w: %v to %v is off the board", ErrIllegalMove, from, to)
	}

	b := s.state.Board()
	candidate := board.NewMove(from, to, &b)
	i := slices.IndexFunc(s.legal, candidate.Equal)
	if i < 0 {
		return board.NoMove, fmt.Errorf("%w: %v", ErrIllegalMove, candidate)
	}

	m := s.legal[i]
	s.san = append(s.san, s.state.SAN(m))
	s.state.MakeMove(m)
	s.refresh()

	if s.Over() {
		s.finish()
	}
	return m, nil
}

// Undo takes back the last move.
func (s *Session) Undo() error {
	if !s.state.UndoMove() {
		return ErrNothingToUndo
	}
	s.san = s.state.MovesToSAN()
	s.selector.Clear()
	s.refresh()
	return nil
}

// Selected returns the square awaiting a second click, or NoSquare.
func (s *Session) Selected() board.Square {
	return s.selector.Selected()
}

// Click feeds one board click through the selector. It reports the move
// played when the click completed a legal pair. Clicks are ignored once
// the game is over.
func (s *Session) Click(sq board.Square) (board.Move, bool) {
	if s.Over() {
		return board.NoMove, false
	}

	from, to, ok := s.selector.Click(sq)
	if !ok {
		return board.NoMove, false
	}

	m, err := s.Play(from, to)
	if err != nil {
		s.selector.Reject()
		return board.NoMove, false
	}
	s.selector.Accept()
	return m, true
}

// finish logs and records a game that just ended. Each game is recorded
// at most once, even if it is undone and finished again.
func (s *Session) finish() {
	if s.recorded {
		return
	}
	s.recorded = true

	rec := GameRecord{
		ID:       s.id,
		Result:   s.Status(),
		Winner:   board.NoColor,
		Plies:    s.state.Ply(),
		Moves:    slices.Clone(s.san),
		Duration: s.now().Sub(s.started),
		Finished: s.now(),
	}
	if rec.Result == StatusCheckmate {
		rec.Winner = s.state.SideToMove().Other()
	}

	log.Printf("[GAME] %s %s after %d plies: %s", rec.ID, rec.Result, rec.Plies, s.ResultText())

	if s.recorder == nil {
		return
	}
	if err := s.recorder.RecordGame(rec); err != nil {
		log.Printf("Warning: Failed to record game %s: %v", rec.ID, err)
	}
}
