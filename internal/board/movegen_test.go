package board

import (
	"testing"
)

func movesFrom(moves []Move, from Square) []Move {
	var out []Move
	for _, m := range moves {
		if m.From == from {
			out = append(out, m)
		}
	}
	return out
}

func TestPseudoLegalPerPiece(t *testing.T) {
	// White pieces on an otherwise sparse board, black pieces as blockers.
	b := boardFromRows(t, [8]string{
		"....k...",
		"........",
		"........",
		"..p.....",
		"...Q....",
		"........",
		".P....N.",
		"R...K..B",
	})

	tests := []struct {
		name string
		from Square
		want int
	}{
		// Queen on d4: the c5 capture counts but b6 is behind it, and
		// own pawn on b2 stops the a7-g1 diagonal at c3.
		{"queen", D4, 23},
		// Knight on g2: e1 holds own king, so e3, f4, h4.
		{"knight", G2, 3},
		// Pawn on b2: b3, b4.
		{"pawn", B2, 2},
		// Rook on a1: a2..a8 (7) + b1, c1, d1 (3).
		{"rook", A1, 10},
		// Bishop on h1: g2 is own knight.
		{"bishop", H1, 0},
		// King on e1: d1, d2, e2, f1, f2 (no castling in pseudo-legal).
		{"king", E1, 5},
	}

	all := GeneratePseudoLegalMoves(&b, White, NoSquare)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := movesFrom(all, tc.from)
			if len(got) != tc.want {
				t.Errorf("%v: got %d moves %v, want %d", tc.from, len(got), got, tc.want)
			}
		})
	}
}

func TestSlidingRayStops(t *testing.T) {
	b := boardFromRows(t, [8]string{
		"....k...",
		"........",
		"...p....",
		"........",
		"...R.P..",
		"........",
		"........",
		"....K...",
	})
	got := map[Square]bool{}
	for _, m := range movesFrom(GeneratePseudoLegalMoves(&b, White, NoSquare), D4) {
		got[m.To] = true
	}

	if !got[D6] {
		t.Error("capture of enemy pawn on d6 should be generated")
	}
	if got[D7] {
		t.Error("ray must stop after the capture on d6")
	}
	if !got[E4] || got[F4] || got[G4] {
		t.Error("ray must stop before own pawn on f4")
	}
}

func TestPawnMoves(t *testing.T) {
	b := boardFromRows(t, [8]string{
		"....k...",
		"........",
		"........",
		"........",
		"........",
		".n......",
		"PP......",
		"....K...",
	})
	moves := GeneratePseudoLegalMoves(&b, White, NoSquare)

	// a2: a3, a4 and capture b3. b2: blocked ahead, no double push.
	if got := len(movesFrom(moves, A2)); got != 3 {
		t.Errorf("a2 pawn: got %d moves, want 3", got)
	}
	if got := len(movesFrom(moves, B2)); got != 0 {
		t.Errorf("b2 pawn: got %d moves, want 0", got)
	}

	// Double push needs both squares empty.
	b.Put(A3, BlackKnight)
	moves = GeneratePseudoLegalMoves(&b, White, NoSquare)
	for _, m := range movesFrom(moves, A2) {
		if m.To == A4 {
			t.Error("a2a4 must not jump over a piece on a3")
		}
	}
}

func TestPawnEnPassantGeneration(t *testing.T) {
	b := boardFromRows(t, [8]string{
		"....k...",
		"........",
		"........",
		"...Pp...",
		"........",
		"........",
		"........",
		"....K...",
	})
	moves := movesFrom(GeneratePseudoLegalMoves(&b, White, E6), D5)

	var ep *Move
	for i := range moves {
		if moves[i].IsEnPassant {
			ep = &moves[i]
		}
	}
	if ep == nil {
		t.Fatalf("expected en passant from d5, got %v", moves)
	}
	if ep.To != E6 || ep.Captured != BlackPawn {
		t.Errorf("unexpected en passant move %+v", *ep)
	}
}

func TestEveryPieceKindHasAGenerator(t *testing.T) {
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			b := EmptyBoard()
			b.Put(D4, NewPiece(pt, c))
			// Must not panic.
			_ = appendPieceMoves(nil, &b, D4, NewPiece(pt, c), NoSquare)
		}
	}
}

func TestGenerationOrderIsRowMajor(t *testing.T) {
	s := NewGameState()
	moves := s.LegalMoves()
	for i := 1; i < len(moves); i++ {
		if moves[i].From < moves[i-1].From {
			t.Fatalf("move %v comes after %v", moves[i], moves[i-1])
		}
	}
	// Row 6 pawns come first: a2a3 then a2a4.
	if moves[0].String() != "a2a3" || moves[1].String() != "a2a4" {
		t.Errorf("unexpected first moves %v %v", moves[0], moves[1])
	}
}

func TestSquareAttacked(t *testing.T) {
	b := boardFromRows(t, [8]string{
		"....k...",
		"........",
		"........",
		"........",
		"....p...",
		"........",
		"........",
		"N...K...",
	})

	tests := []struct {
		name string
		by   Color
		sq   Square
		want bool
	}{
		{"pawn diagonal", Black, D3, true},
		{"pawn push square", Black, E3, false},
		{"knight", White, B3, true},
		{"king adjacent", Black, D7, true},
		{"nothing", White, H8, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SquareAttacked(&b, tc.by, tc.sq); got != tc.want {
				t.Errorf("SquareAttacked(%v, %v) = %v, want %v", tc.by, tc.sq, got, tc.want)
			}
		})
	}
}

func TestMoveEquality(t *testing.T) {
	b := StartingBoard()
	a := NewMove(E2, E4, &b)
	if a.ID() != 6444 {
		t.Errorf("ID = %d, want 6444", a.ID())
	}

	// Equality is by origin and destination only.
	flagged := a
	flagged.IsEnPassant = true
	if !a.Equal(flagged) {
		t.Error("moves with the same squares should be equal")
	}
	if a.Equal(NewMove(E2, E3, &b)) {
		t.Error("moves with different destinations should differ")
	}
	if a.String() != "e2e4" {
		t.Errorf("String = %q, want e2e4", a.String())
	}
}

func TestSquareNotation(t *testing.T) {
	tests := []struct {
		sq       Square
		row, col int
		name     string
	}{
		{A8, 0, 0, "a8"},
		{H1, 7, 7, "h1"},
		{E2, 6, 4, "e2"},
		{D5, 3, 3, "d5"},
	}
	for _, tc := range tests {
		if tc.sq.Row() != tc.row || tc.sq.Col() != tc.col || tc.sq.String() != tc.name {
			t.Errorf("%d: got (%d,%d,%s)", tc.sq, tc.sq.Row(), tc.sq.Col(), tc.sq)
		}
		parsed, err := ParseSquare(tc.name)
		if err != nil || parsed != tc.sq {
			t.Errorf("ParseSquare(%q) = %v, %v", tc.name, parsed, err)
		}
	}

	for _, bad := range []string{"", "i1", "a9", "a0", "e22"} {
		if _, err := ParseSquare(bad); err == nil {
			t.Errorf("ParseSquare(%q) should fail", bad)
		}
	}
}
