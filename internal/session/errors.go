package session

import "errors"

var (
	// ErrIllegalMove is returned when a coordinate pair matches no legal move.
	ErrIllegalMove = errors.New("illegal move")

	// ErrGameOver is returned when a move is attempted after checkmate or stalemate.
	ErrGameOver = errors.New("game is over")

	// ErrNothingToUndo is returned by Undo when no move has been played.
	ErrNothingToUndo = errors.New("nothing to undo")
)
