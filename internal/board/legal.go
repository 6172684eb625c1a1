package board

// LegalMoves returns every legal move for the side to move and updates the
// checkmate and stalemate flags. Moves come out in board-scan order with
// castling moves last. The call leaves board, rights, en passant target
// and move log exactly as it found them.
func (s *GameState) LegalMoves() []Move {
	moves := s.legalMoves()

	if len(moves) == 0 {
		inCheck := s.InCheck()
		s.checkmate = inCheck
		s.stalemate = !inCheck
	} else {
		s.checkmate = false
		s.stalemate = false
	}

	return moves
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func (s *GameState) HasLegalMoves() bool {
	return len(s.legalMoves()) > 0
}

// legalMoves is LegalMoves without touching the terminal flags.
func (s *GameState) legalMoves() []Move {
	savedEnPassant := s.enPassant
	savedCastling := s.castling
	us := s.sideToMove

	moves := GeneratePseudoLegalMoves(&s.board, us, s.enPassant)
	moves = s.appendCastleMoves(moves)

	// Try each move with the real make/undo and keep it only if our king
	// is not attacked afterwards.
	legal := moves[:0]
	for _, m := range moves {
		s.MakeMove(m)
		if !s.kingAttacked(us) {
			legal = append(legal, m)
		}
		s.UndoMove()
	}

	s.enPassant = savedEnPassant
	s.castling = savedCastling
	return legal
}

// appendCastleMoves adds the castling moves available to the side to move.
// Castling needs the right, an empty path to the rook, and the king's
// square, the square it crosses and its destination all unattacked.
func (s *GameState) appendCastleMoves(moves []Move) []Move {
	us := s.sideToMove
	from := s.kingSquare[us]
	if s.board.At(from) != NewPiece(King, us) || s.kingAttacked(us) {
		return moves
	}
	if s.castling.CanCastle(us, true) {
		moves = s.appendCastle(moves, us, from, true)
	}
	if s.castling.CanCastle(us, false) {
		moves = s.appendCastle(moves, us, from, false)
	}
	return moves
}

func (s *GameState) appendCastle(moves []Move, us Color, from Square, kingSide bool) []Move {
	dc, between := 1, 2
	if !kingSide {
		dc, between = -1, 3
	}

	for i := 1; i <= between; i++ {
		sq, ok := from.offset(0, dc*i)
		if !ok || s.board.At(sq) != NoPiece {
			return moves
		}
	}
	if rook, ok := from.offset(0, dc*(between+1)); !ok || s.board.At(rook) != NewPiece(Rook, us) {
		return moves
	}

	them := us.Other()
	for i := 1; i <= 2; i++ {
		sq, _ := from.offset(0, dc*i)
		if SquareAttacked(&s.board, them, sq) {
			return moves
		}
	}

	to, _ := from.offset(0, 2*dc)
	return append(moves, NewCastling(from, to, &s.board))
}
