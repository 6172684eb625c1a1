package board

import (
	"math/rand"
	"testing"
)

func TestStartingPosition(t *testing.T) {
	s := NewGameState()

	if got := len(s.LegalMoves()); got != 20 {
		t.Errorf("expected 20 legal moves, got %d", got)
	}
	if s.KingSquare(White) != E1 || s.KingSquare(Black) != E8 {
		t.Errorf("king squares = %v/%v, want e1/e8", s.KingSquare(White), s.KingSquare(Black))
	}
	if s.CastlingRights() != AllCastling {
		t.Errorf("castling = %v, want KQkq", s.CastlingRights())
	}
	if s.EnPassant() != NoSquare {
		t.Errorf("en passant = %v, want none", s.EnPassant())
	}
	if _, ok := s.LastMove(); ok {
		t.Error("new game should have no last move")
	}
}

func TestGamesDoNotShareBoards(t *testing.T) {
	a := NewGameState()
	b := NewGameState()
	play(t, a, "e2e4")

	if b.PieceAt(E2) != WhitePawn || b.PieceAt(E4) != NoPiece {
		t.Error("moving in one game changed another game's board")
	}
	if sb := StartingBoard(); sb.At(E2) != WhitePawn {
		t.Error("starting template was modified")
	}
}

func TestUndoOnEmptyLogIsNoop(t *testing.T) {
	s := NewGameState()
	before := keyOf(s)
	if s.UndoMove() {
		t.Error("UndoMove on an empty log should report false")
	}
	if keyOf(s) != before {
		t.Error("UndoMove on an empty log changed the state")
	}
}

// TestMakeUndoRoundTrip walks deterministic random games and checks that
// every legal move in every visited position is exactly undone.
func TestMakeUndoRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	games, plies := 200, 200
	if testing.Short() {
		games, plies = 12, 120
	}

	for game := 0; game < games; game++ {
		s := NewGameState()
		for ply := 0; ply < plies; ply++ {
			before := keyOf(s)
			moves := s.LegalMoves()
			if keyOf(s) != before {
				t.Fatalf("game %d ply %d: LegalMoves changed the state", game, ply)
			}
			if len(moves) == 0 {
				break
			}

			for _, m := range moves {
				s.MakeMove(m)
				s.UndoMove()
				if got := keyOf(s); got != before {
					t.Fatalf("game %d ply %d: make/undo of %v did not restore state\ngot:%s\nwant:%s",
						game, ply, m, got.board.String(), before.board.String())
				}
			}

			s.MakeMove(moves[rng.Intn(len(moves))])
		}
	}
}

func TestPieceLetters(t *testing.T) {
	for p := WhitePawn; p < NoPiece; p++ {
		if got := PieceFromChar(p.String()[0]); got != p {
			t.Errorf("PieceFromChar(%q) = %v, want %v", p.String(), got, p)
		}
		if got := NewPiece(p.Type(), p.Color()); got != p {
			t.Errorf("NewPiece(%v, %v) = %v, want %v", p.Type(), p.Color(), got, p)
		}
	}
	if PieceFromChar('.') != NoPiece || PieceFromChar('x') != NoPiece {
		t.Error("non-piece letters should map to NoPiece")
	}
	if WhiteKing.Code() != "wK" || BlackPawn.Code() != "bP" || NoPiece.Code() != "--" {
		t.Errorf("codes = %s %s %s", WhiteKing.Code(), BlackPawn.Code(), NoPiece.Code())
	}
}

func TestStartingTemplate(t *testing.T) {
	b := StartingBoard()
	tests := []struct {
		sq   Square
		want Piece
	}{
		{A8, BlackRook}, {E8, BlackKing}, {D8, BlackQueen}, {G7, BlackPawn},
		{E4, NoPiece}, {B2, WhitePawn}, {D1, WhiteQueen}, {E1, WhiteKing}, {H1, WhiteRook},
	}
	for _, tt := range tests {
		if got := b.At(tt.sq); got != tt.want {
			t.Errorf("%v = %v, want %v", tt.sq, got, tt.want)
		}
	}
}

func TestLegalMovesIsIdempotent(t *testing.T) {
	s := NewGameState()
	play(t, s, "e2e4", "d7d5", "e4d5", "c7c5")

	first := s.LegalMoves()
	second := s.LegalMoves()
	if len(first) != len(second) {
		t.Fatalf("move count changed between calls: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("move %d differs: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestCastlingScenario(t *testing.T) {
	s := NewGameState()
	play(t, s, "e2e4", "e7e5")

	if _, ok := findLegal(s, "e1g1"); ok {
		t.Fatal("king-side castling must be illegal while f1/g1 are occupied")
	}

	play(t, s, "g1f3", "b8c6", "f1c4", "g8f6")

	castle, ok := findLegal(s, "e1g1")
	if !ok {
		t.Fatal("king-side castling should be legal once f1/g1 are clear")
	}
	if !castle.IsCastle {
		t.Fatalf("e1g1 should be flagged as castling: %+v", castle)
	}

	s.MakeMove(castle)

	if s.PieceAt(G1) != WhiteKing || s.PieceAt(F1) != WhiteRook {
		t.Errorf("expected Kg1 + Rf1, got g1=%v f1=%v", s.PieceAt(G1), s.PieceAt(F1))
	}
	if s.PieceAt(E1) != NoPiece || s.PieceAt(H1) != NoPiece {
		t.Errorf("e1 and h1 should be empty, got e1=%v h1=%v", s.PieceAt(E1), s.PieceAt(H1))
	}
	if s.KingSquare(White) != G1 {
		t.Errorf("king cache = %v, want g1", s.KingSquare(White))
	}
	cr := s.CastlingRights()
	if cr.CanCastle(White, true) || cr.CanCastle(White, false) {
		t.Errorf("white should have lost both rights, got %v", cr)
	}
	if !cr.CanCastle(Black, true) || !cr.CanCastle(Black, false) {
		t.Errorf("black rights should be untouched, got %v", cr)
	}

	s.UndoMove()
	if s.PieceAt(E1) != WhiteKing || s.PieceAt(H1) != WhiteRook || s.PieceAt(F1) != NoPiece {
		t.Error("undo did not put king and rook back")
	}
	if s.CastlingRights() != AllCastling {
		t.Errorf("undo should restore rights, got %v", s.CastlingRights())
	}
}

func TestQueenSideCastling(t *testing.T) {
	s := NewFromBoard(boardFromRows(t, [8]string{
		"r...k..r",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"R...K..R",
	}), Black, AllCastling, NoSquare)

	castle, ok := findLegal(s, "e8c8")
	if !ok {
		t.Fatal("black queen-side castling should be legal")
	}
	s.MakeMove(castle)
	if s.PieceAt(C8) != BlackKing || s.PieceAt(D8) != BlackRook || s.PieceAt(A8) != NoPiece {
		t.Errorf("expected Kc8 + Rd8, board:%s", s.board.String())
	}
}

func TestCastlingBlockedByAttack(t *testing.T) {
	tests := []struct {
		name string
		rows [8]string
	}{
		{
			// Rook on f8 covers f1, the square the king crosses.
			name: "through check",
			rows: [8]string{"....kr..", "........", "........", "........", "........", "........", "........", "....K..R"},
		},
		{
			// Rook on e8 gives check.
			name: "out of check",
			rows: [8]string{"k...r...", "........", "........", "........", "........", "........", "........", "....K..R"},
		},
		{
			// Bishop on c5 covers g1, the destination.
			name: "into check",
			rows: [8]string{"k.......", "........", "........", "..b.....", "........", "........", "........", "....K..R"},
		},
		{
			// Pawn on h2 covers g1 diagonally even though g1 is empty.
			name: "pawn covers destination",
			rows: [8]string{"k.......", "........", "........", "........", "........", "........", ".......p", "....K..R"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewFromBoard(boardFromRows(t, tc.rows), White, WhiteKingSideCastle, NoSquare)
			for _, m := range s.LegalMoves() {
				if m.IsCastle {
					t.Errorf("castling should be illegal, got %v", m)
				}
			}
		})
	}
}

func TestCastlingNeedsEmptyPath(t *testing.T) {
	// b1 is occupied: queen-side castling needs b1, c1 and d1 empty.
	s := NewFromBoard(boardFromRows(t, [8]string{
		"k.......",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"RN..K...",
	}), White, WhiteQueenSideCastle, NoSquare)

	if _, ok := findLegal(s, "e1c1"); ok {
		t.Error("queen-side castling must be illegal with a piece on b1")
	}
}

func TestCastlingRightsRevocation(t *testing.T) {
	t.Run("rook move", func(t *testing.T) {
		s := NewFromBoard(boardFromRows(t, [8]string{
			"r...k..r", "........", "........", "........", "........", "........", "........", "R...K..R",
		}), White, AllCastling, NoSquare)
		play(t, s, "h1h2")
		if s.CastlingRights() != AllCastling.Without(White, true) {
			t.Errorf("got %v, want Qkq", s.CastlingRights())
		}
		// Returning the rook does not restore the right.
		play(t, s, "a8a7", "h2h1")
		if s.CastlingRights().CanCastle(White, true) {
			t.Error("right must not come back when the rook returns")
		}
		if s.CastlingRights().CanCastle(Black, false) {
			t.Error("black queen-side right should be gone after a8a7")
		}
	})

	t.Run("king move", func(t *testing.T) {
		s := NewFromBoard(boardFromRows(t, [8]string{
			"r...k..r", "........", "........", "........", "........", "........", "........", "R...K..R",
		}), White, AllCastling, NoSquare)
		play(t, s, "e1d1")
		if got := s.CastlingRights(); got != BlackKingSideCastle|BlackQueenSideCastle {
			t.Errorf("got %v, want kq", got)
		}
	})

	t.Run("rook captured on its corner", func(t *testing.T) {
		s := NewFromBoard(boardFromRows(t, [8]string{
			"r...k..r", "........", "........", "........", "........", "........", "........", "R...K..R",
		}), White, AllCastling, NoSquare)
		play(t, s, "a1a8")
		got := s.CastlingRights()
		if got.CanCastle(Black, false) || got.CanCastle(White, false) {
			t.Errorf("both queen-side rights should be gone, got %v", got)
		}
		if !got.CanCastle(Black, true) {
			t.Errorf("black king-side right should remain, got %v", got)
		}

		hist := s.CastlingHistory()
		if len(hist) != 2 || hist[0] != AllCastling || hist[1] != got {
			t.Errorf("unexpected history %v", hist)
		}
	})
}

func TestEnPassant(t *testing.T) {
	s := NewGameState()
	play(t, s, "a2a3", "d7d5", "a3a4", "d5d4", "e2e4")

	if s.EnPassant() != E3 {
		t.Fatalf("en passant target = %v, want e3", s.EnPassant())
	}

	ep, ok := findLegal(s, "d4e3")
	if !ok {
		t.Fatal("black should be able to capture en passant")
	}
	if !ep.IsEnPassant || ep.Captured != WhitePawn {
		t.Fatalf("d4e3 should be an en passant capture of a white pawn: %+v", ep)
	}

	before := keyOf(s)
	s.MakeMove(ep)
	if s.PieceAt(E4) != NoPiece || s.PieceAt(E3) != BlackPawn || s.PieceAt(D4) != NoPiece {
		t.Errorf("unexpected board after en passant:%s", s.board.String())
	}
	s.UndoMove()
	if keyOf(s) != before {
		t.Error("undo of en passant did not restore the position")
	}

	// Any other pair of moves drops the opportunity.
	play(t, s, "h7h6", "h2h3")
	if _, ok := findLegal(s, "d4e3"); ok {
		t.Error("en passant must expire after one ply")
	}
	if s.EnPassant() != NoSquare {
		t.Errorf("en passant target should be cleared, got %v", s.EnPassant())
	}
}

func TestPromotion(t *testing.T) {
	rows := [8]string{
		".r..k...",
		"P.......",
		"........",
		"........",
		"........",
		"........",
		"......p.",
		"....K...",
	}

	t.Run("push", func(t *testing.T) {
		s := NewFromBoard(boardFromRows(t, rows), White, NoCastling, NoSquare)
		m, ok := findLegal(s, "a7a8")
		if !ok || !m.IsPromotion {
			t.Fatalf("a7a8 should be a legal promotion: %+v", m)
		}
		s.MakeMove(m)
		if s.PieceAt(A8) != WhiteQueen {
			t.Errorf("expected white queen on a8, got %v", s.PieceAt(A8))
		}
		s.UndoMove()
		if s.PieceAt(A7) != WhitePawn || s.PieceAt(A8) != NoPiece {
			t.Error("undo should restore the pawn")
		}
	})

	t.Run("capture", func(t *testing.T) {
		s := NewFromBoard(boardFromRows(t, rows), White, NoCastling, NoSquare)
		play(t, s, "a7b8")
		if s.PieceAt(B8) != WhiteQueen {
			t.Errorf("expected white queen on b8, got %v", s.PieceAt(B8))
		}
		last, _ := s.LastMove()
		if last.Captured != BlackRook || !last.IsPromotion {
			t.Errorf("unexpected last move %+v", last)
		}
	})

	t.Run("black", func(t *testing.T) {
		s := NewFromBoard(boardFromRows(t, rows), Black, NoCastling, NoSquare)
		play(t, s, "g2g1")
		if s.PieceAt(G1) != BlackQueen {
			t.Errorf("expected black queen on g1, got %v", s.PieceAt(G1))
		}
	})
}

func TestKingNeverMovesIntoAttack(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for game := 0; game < 8; game++ {
		s := NewGameState()
		for ply := 0; ply < 150; ply++ {
			moves := s.LegalMoves()
			if len(moves) == 0 {
				break
			}
			us := s.SideToMove()
			for _, m := range moves {
				if m.Moved.Type() != King {
					continue
				}
				s.MakeMove(m)
				if SquareAttacked(&s.board, us.Other(), m.To) {
					t.Fatalf("king move %v lands on an attacked square", m)
				}
				s.UndoMove()
			}
			s.MakeMove(moves[rng.Intn(len(moves))])
		}
	}
}
