package board

import (
	"strconv"
	"strings"
)

// StartFEN is the FEN of the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FEN returns the Forsyth-Edwards Notation of the current position.
// Only export is supported; games always start from a GameState.
func (s *GameState) FEN() string {
	var sb strings.Builder

	// Piece placement, rank 8 first, which is row 0
	for r := 0; r < 8; r++ {
		empty := 0
		for c := 0; c < 8; c++ {
			piece := s.board[r][c]
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r < 7 {
			sb.WriteByte('/')
		}
	}

	// Side to move
	sb.WriteByte(' ')
	if s.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	// Castling rights
	sb.WriteByte(' ')
	sb.WriteString(s.castling.String())

	// En passant
	sb.WriteByte(' ')
	sb.WriteString(s.enPassant.String())

	// Half-move clock and full-move number
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(s.halfMoveClock()))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(s.fullMoveNumber()))

	return sb.String()
}

// halfMoveClock counts plies since the last pawn move or capture in the log.
func (s *GameState) halfMoveClock() int {
	n := 0
	for i := len(s.moveLog) - 1; i >= 0; i-- {
		m := s.moveLog[i]
		if m.Moved.Type() == Pawn || m.IsCapture() {
			break
		}
		n++
	}
	return n
}

// fullMoveNumber starts at 1 and increments after each black move.
func (s *GameState) fullMoveNumber() int {
	plies := len(s.moveLog)
	if s.startSide == Black {
		plies++
	}
	return 1 + plies/2
}
