package board

import "fmt"

// Offset tables, in the order moves are emitted.
var (
	knightOffsets = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [8][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 1}, {-1, 1}, {1, -1}, {1, 1}, {-1, -1}}

	rookDirections   = [4][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 1}}
	bishopDirections = [4][2]int{{-1, 1}, {1, -1}, {1, 1}, {-1, -1}}
)

// GeneratePseudoLegalMoves generates all moves for side us that obey piece
// movement rules, ignoring whether the mover's king is left attacked.
// Castling is not included; it depends on attack queries and castling
// rights and is added by GameState. Moves come out in row-major board
// order, then in each piece's generation order.
func GeneratePseudoLegalMoves(b *Board, us Color, enPassant Square) []Move {
	moves := make([]Move, 0, 64)
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			p := b[r][c]
			if p == NoPiece || p.Color() != us {
				continue
			}
			moves = appendPieceMoves(moves, b, Square(r*8+c), p, enPassant)
		}
	}
	return moves
}

// appendPieceMoves dispatches on piece kind.
func appendPieceMoves(moves []Move, b *Board, from Square, p Piece, enPassant Square) []Move {
	switch p.Type() {
	case Pawn:
		return appendPawnMoves(moves, b, from, p.Color(), enPassant)
	case Knight:
		return appendStepMoves(moves, b, from, p.Color(), knightOffsets[:])
	case Bishop:
		return appendSlidingMoves(moves, b, from, p.Color(), bishopDirections[:])
	case Rook:
		return appendSlidingMoves(moves, b, from, p.Color(), rookDirections[:])
	case Queen:
		moves = appendSlidingMoves(moves, b, from, p.Color(), bishopDirections[:])
		return appendSlidingMoves(moves, b, from, p.Color(), rookDirections[:])
	case King:
		return appendStepMoves(moves, b, from, p.Color(), kingOffsets[:])
	}
	panic(fmt.Sprintf("board: no generator for piece %d on %v", p, from))
}

// appendPawnMoves generates pushes, double pushes, captures and en passant.
func appendPawnMoves(moves []Move, b *Board, from Square, us Color, enPassant Square) []Move {
	dir := us.forward()

	if one, ok := from.offset(dir, 0); ok && b.At(one) == NoPiece {
		moves = append(moves, NewMove(from, one, b))
		if from.Row() == us.homeRow()+dir {
			if two, ok := from.offset(2*dir, 0); ok && b.At(two) == NoPiece {
				moves = append(moves, NewMove(from, two, b))
			}
		}
	}

	for _, dc := range [2]int{-1, 1} {
		to, ok := from.offset(dir, dc)
		if !ok {
			continue
		}
		target := b.At(to)
		if target != NoPiece && target.Color() != us {
			moves = append(moves, NewMove(from, to, b))
		} else if to == enPassant {
			moves = append(moves, NewEnPassant(from, to, b))
		}
	}

	return moves
}

// appendStepMoves handles fixed-offset movers (knight and king).
func appendStepMoves(moves []Move, b *Board, from Square, us Color, offsets [][2]int) []Move {
	for _, off := range offsets {
		to, ok := from.offset(off[0], off[1])
		if !ok {
			continue
		}
		if target := b.At(to); target == NoPiece || target.Color() != us {
			moves = append(moves, NewMove(from, to, b))
		}
	}
	return moves
}

// appendSlidingMoves ray-casts in each direction. An own piece stops the
// ray before its square; an enemy piece stops it after the capture.
func appendSlidingMoves(moves []Move, b *Board, from Square, us Color, directions [][2]int) []Move {
	for _, d := range directions {
		for i := 1; i < 8; i++ {
			to, ok := from.offset(d[0]*i, d[1]*i)
			if !ok {
				break
			}
			target := b.At(to)
			if target == NoPiece {
				moves = append(moves, NewMove(from, to, b))
				continue
			}
			if target.Color() != us {
				moves = append(moves, NewMove(from, to, b))
			}
			break
		}
	}
	return moves
}
