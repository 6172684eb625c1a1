package board

// CastlingRights represents the available castling options.
type CastlingRights uint8

const (
	WhiteKingSideCastle  CastlingRights = 1 << iota // K
	WhiteQueenSideCastle                            // Q
	BlackKingSideCastle                             // k
	BlackQueenSideCastle                            // q
	NoCastling           CastlingRights = 0
	AllCastling          CastlingRights = WhiteKingSideCastle | WhiteQueenSideCastle | BlackKingSideCastle | BlackQueenSideCastle
)

// String returns the FEN castling rights string.
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	s := ""
	if cr&WhiteKingSideCastle != 0 {
		s += "K"
	}
	if cr&WhiteQueenSideCastle != 0 {
		s += "Q"
	}
	if cr&BlackKingSideCastle != 0 {
		s += "k"
	}
	if cr&BlackQueenSideCastle != 0 {
		s += "q"
	}
	return s
}

// castleFlag returns the single right for a side and flank.
func castleFlag(c Color, kingSide bool) CastlingRights {
	switch {
	case c == White && kingSide:
		return WhiteKingSideCastle
	case c == White:
		return WhiteQueenSideCastle
	case kingSide:
		return BlackKingSideCastle
	default:
		return BlackQueenSideCastle
	}
}

// CanCastle returns true if the given side can castle in the given direction.
func (cr CastlingRights) CanCastle(c Color, kingSide bool) bool {
	return cr&castleFlag(c, kingSide) != 0
}

// Without returns the rights with the given side/flank revoked.
func (cr CastlingRights) Without(c Color, kingSide bool) CastlingRights {
	return cr &^ castleFlag(c, kingSide)
}

// afterMove returns the rights left once m has been played.
// A king move drops both flanks; a rook leaving its corner, or being
// captured on it, drops that flank.
func (cr CastlingRights) afterMove(m Move) CastlingRights {
	us := m.Moved.Color()
	switch m.Moved.Type() {
	case King:
		cr = cr.Without(us, true).Without(us, false)
	case Rook:
		cr = cr.dropCorner(us, m.From)
	}
	if m.Captured.Type() == Rook && !m.IsEnPassant {
		cr = cr.dropCorner(m.Captured.Color(), m.To)
	}
	return cr
}

// dropCorner revokes the flank whose rook starts on sq, if any.
func (cr CastlingRights) dropCorner(c Color, sq Square) CastlingRights {
	if sq.Row() != c.homeRow() {
		return cr
	}
	switch sq.Col() {
	case 0:
		return cr.Without(c, false)
	case 7:
		return cr.Without(c, true)
	}
	return cr
}
