package session

import "github.com/hailam/chessrules/internal/board"

// Selector turns single square clicks into origin/destination pairs.
//
// Clicking the selected square again clears the selection. A second click
// on any other square completes a pair. If the pair is rejected the second
// click becomes the new first click, so clicking another own piece simply
// switches the selection.
type Selector struct {
	clicks []board.Square
}

// Selected returns the pending first click, or NoSquare.
func (s *Selector) Selected() board.Square {
	if len(s.clicks) == 0 {
		return board.NoSquare
	}
	return s.clicks[len(s.clicks)-1]
}

// Click registers a click on sq. It returns a completed pair when this
// click is the second of two.
func (s *Selector) Click(sq board.Square) (from, to board.Square, ok bool) {
	if s.Selected() == sq {
		s.Clear()
		return board.NoSquare, board.NoSquare, false
	}

	s.clicks = append(s.clicks, sq)
	if len(s.clicks) < 2 {
		return board.NoSquare, board.NoSquare, false
	}
	return s.clicks[0], s.clicks[1], true
}

// Accept clears the selection after a pair turned into a move.
func (s *Selector) Accept() {
	s.Clear()
}

// Reject keeps only the last click as the new selection.
func (s *Selector) Reject() {
	if len(s.clicks) > 1 {
		s.clicks = s.clicks[len(s.clicks)-1:]
	}
}

// Clear drops any selection.
func (s *Selector) Clear() {
	s.clicks = s.clicks[:0]
}
