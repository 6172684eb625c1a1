package board

// SquareAttacked reports whether any piece of color by attacks sq.
//
// This answers the same question as generating every pseudo-legal move
// for by and looking for one that lands on sq, except that pawns count
// only for their diagonals (occupied or not) and never for pushes. It
// never consults legality, so kings attack adjacent squares as usual.
func SquareAttacked(b *Board, by Color, sq Square) bool {
	// A pawn attacks from one row behind sq, seen from its own direction.
	pawn := NewPiece(Pawn, by)
	back := -by.forward()
	for _, dc := range [2]int{-1, 1} {
		if from, ok := sq.offset(back, dc); ok && b.At(from) == pawn {
			return true
		}
	}

	if stepAttacked(b, sq, NewPiece(Knight, by), knightOffsets[:]) {
		return true
	}
	if stepAttacked(b, sq, NewPiece(King, by), kingOffsets[:]) {
		return true
	}

	queen := NewPiece(Queen, by)
	if rayAttacked(b, sq, NewPiece(Rook, by), queen, rookDirections[:]) {
		return true
	}
	return rayAttacked(b, sq, NewPiece(Bishop, by), queen, bishopDirections[:])
}

func stepAttacked(b *Board, sq Square, attacker Piece, offsets [][2]int) bool {
	for _, off := range offsets {
		if from, ok := sq.offset(off[0], off[1]); ok && b.At(from) == attacker {
			return true
		}
	}
	return false
}

// rayAttacked walks out from sq and returns true if the first piece met in
// any direction is slider or queen.
func rayAttacked(b *Board, sq Square, slider, queen Piece, directions [][2]int) bool {
	for _, d := range directions {
		for i := 1; i < 8; i++ {
			from, ok := sq.offset(d[0]*i, d[1]*i)
			if !ok {
				break
			}
			p := b.At(from)
			if p == NoPiece {
				continue
			}
			if p == slider || p == queen {
				return true
			}
			break
		}
	}
	return false
}
