package board

import (
	"testing"
)

// boardFromRows builds a board from eight strings of eight characters,
// rank 8 first. '.' marks an empty square, letters are FEN piece letters.
func boardFromRows(t *testing.T, rows [8]string) Board {
	t.Helper()
	b := EmptyBoard()
	for r, row := range rows {
		if len(row) != 8 {
			t.Fatalf("row %d has %d cells, want 8", r, len(row))
		}
		for c := 0; c < 8; c++ {
			if row[c] == '.' {
				continue
			}
			p := PieceFromChar(row[c])
			if p == NoPiece {
				t.Fatalf("row %d col %d: bad piece %q", r, c, row[c])
			}
			b[r][c] = p
		}
	}
	return b
}

// play finds each "e2e4"-style move among the legal moves and commits it.
func play(t *testing.T, s *GameState, moves ...string) {
	t.Helper()
	for _, str := range moves {
		m, ok := findLegal(s, str)
		if !ok {
			t.Fatalf("move %s is not legal in position:%s", str, s)
		}
		s.MakeMove(m)
	}
}

// findLegal returns the legal move matching an origin/destination string.
func findLegal(s *GameState, str string) (Move, bool) {
	candidate := mustParseMove(str, s)
	for _, m := range s.LegalMoves() {
		if m.Equal(candidate) {
			return m, true
		}
	}
	return NoMove, false
}

func mustParseMove(str string, s *GameState) Move {
	from, err := ParseSquare(str[0:2])
	if err != nil {
		panic(err)
	}
	to, err := ParseSquare(str[2:4])
	if err != nil {
		panic(err)
	}
	b := s.Board()
	return NewMove(from, to, &b)
}

// stateKey captures everything make/undo must restore.
type stateKey struct {
	board     Board
	side      Color
	kings     [2]Square
	enPassant Square
	castling  CastlingRights
	ply       int
	history   int
}

func keyOf(s *GameState) stateKey {
	return stateKey{
		board:     s.board,
		side:      s.sideToMove,
		kings:     s.kingSquare,
		enPassant: s.enPassant,
		castling:  s.castling,
		ply:       len(s.moveLog),
		history:   len(s.history),
	}
}
